package env

import (
	"os"
	"path/filepath"
)

const (
	defaultXDGConfigDirname = ".config"
	defaultXDGDataDirname   = ".local/share"

	appDirname = "brm"
)

var (
	BRM_CONFIG_PATH string

	BRM_RECORD_PATH string

	BRM_LOG_PATH string

	// BRM_TRASH_PATH is the trash directory written into a freshly created config file
	BRM_TRASH_PATH string
)

func init() {
	// https://github.com/charmbracelet/log/issues/35
	os.Setenv("CLICOLOR_FORCE", "1")
	Load()
}

// Load (re)computes every path from the environment.
// Follow https://specifications.freedesktop.org/basedir-spec/latest/
func Load() {
	configDir := filepath.Join(xdgDir("XDG_CONFIG_HOME", defaultXDGConfigDirname), appDirname)
	dataDir := filepath.Join(xdgDir("XDG_DATA_HOME", defaultXDGDataDirname), appDirname)

	BRM_CONFIG_PATH = lookup("BRM_CONFIG_PATH", filepath.Join(configDir, "config.toml"))
	BRM_RECORD_PATH = lookup("BRM_RECORD_PATH", filepath.Join(configDir, "original_path.toml"))
	BRM_LOG_PATH = lookup("BRM_LOG_PATH", filepath.Join(dataDir, "debug.log"))
	BRM_TRASH_PATH = filepath.Join(dataDir, "trash")
}

func lookup(key, fallback string) string {
	if e := os.Getenv(key); e != "" {
		return e
	}
	return fallback
}

func xdgDir(key, fallback string) string {
	if dir := os.Getenv(key); dir != "" {
		return dir
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// $HOME is required to locate anything; nothing sensible to fall back to
		panic(err)
	}
	return filepath.Join(homeDir, fallback)
}
