package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/babarot/brm/internal/env"
	"github.com/babarot/brm/internal/fs"
	"github.com/pelletier/go-toml/v2"
)

// SetTrashPath persists trashPath as path_to_trash, keeping every other
// key of the file as it is. An empty path means the default location.
func SetTrashPath(path, trashPath string) error {
	if path == "" {
		path = env.BRM_CONFIG_PATH
	}

	settings := map[string]any{}
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		data = []byte(defaultContents())
	case err != nil:
		return fmt.Errorf("failed to read config file: %w", err)
	}
	if err := toml.Unmarshal(data, &settings); err != nil {
		return parsingError{err: err}
	}

	settings[KeyPathToTrash] = trashPath

	content, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := ensureDirExists(filepath.Dir(path)); err != nil {
		return err
	}
	if err := fs.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	slog.Info("trash path updated", "config-file", path, "path_to_trash", trashPath)
	return nil
}

// Reset overwrites the config file with the default contents
func Reset(path string) error {
	if path == "" {
		path = env.BRM_CONFIG_PATH
	}
	if err := ensureDirExists(filepath.Dir(path)); err != nil {
		return err
	}
	if err := fs.WriteFile(path, []byte(defaultContents()), 0644); err != nil {
		return fmt.Errorf("failed to reset config file: %w", err)
	}
	slog.Warn("config file reset to defaults", "config-file", path)
	return nil
}
