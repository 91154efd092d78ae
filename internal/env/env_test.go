package env

import (
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Cleanup(Load)

	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	t.Setenv("BRM_CONFIG_PATH", "")
	t.Setenv("BRM_RECORD_PATH", "")
	t.Setenv("BRM_LOG_PATH", "")
	Load()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{"config", BRM_CONFIG_PATH, "/xdg/config/brm/config.toml"},
		{"record", BRM_RECORD_PATH, "/xdg/config/brm/original_path.toml"},
		{"log", BRM_LOG_PATH, "/xdg/data/brm/debug.log"},
		{"trash", BRM_TRASH_PATH, "/xdg/data/brm/trash"},
	}
	for _, tt := range tests {
		if tt.got != filepath.FromSlash(tt.want) {
			t.Errorf("%s path = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Cleanup(Load)

	t.Setenv("BRM_CONFIG_PATH", "/tmp/brm.toml")
	t.Setenv("BRM_RECORD_PATH", "/tmp/records.toml")
	t.Setenv("BRM_LOG_PATH", "/tmp/brm.log")
	Load()

	if BRM_CONFIG_PATH != "/tmp/brm.toml" {
		t.Errorf("BRM_CONFIG_PATH = %q", BRM_CONFIG_PATH)
	}
	if BRM_RECORD_PATH != "/tmp/records.toml" {
		t.Errorf("BRM_RECORD_PATH = %q", BRM_RECORD_PATH)
	}
	if BRM_LOG_PATH != "/tmp/brm.log" {
		t.Errorf("BRM_LOG_PATH = %q", BRM_LOG_PATH)
	}
}

func TestXDGDirFallsBackToHome(t *testing.T) {
	t.Setenv("HOME", "/home/someone")
	t.Setenv("XDG_DATA_HOME", "")

	if got := xdgDir("XDG_DATA_HOME", ".local/share"); got != filepath.Join("/home/someone", ".local/share") {
		t.Errorf("xdgDir() = %q", got)
	}
}
