// Package location turns configuration into the absolute paths every
// trash and restore operation works against.
package location

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/babarot/brm/internal/config"
	"github.com/babarot/brm/internal/fs"
	"github.com/babarot/brm/internal/shell"
)

// Locations is passed explicitly to the engines
type Locations struct {
	// TrashDir is the absolute trash directory; it exists and is a directory
	TrashDir string

	// RecordPath is the absolute restore record file; its parent exists
	RecordPath string
}

// ConfigurationError means the configured locations are unusable
type ConfigurationError struct {
	Key   string
	Value string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Key, e.Value, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// Resolve expands cfg.PathToTrash, ensures the trash directory exists and
// prepares the parent directory of recordPath
func Resolve(cfg config.Config, recordPath string) (Locations, error) {
	trashDir, err := TrashDir(cfg.PathToTrash)
	if err != nil {
		return Locations{}, err
	}

	if recordPath == "" || !filepath.IsAbs(recordPath) {
		return Locations{}, &ConfigurationError{
			Key:   "record path",
			Value: recordPath,
			Err:   fmt.Errorf("must be an absolute path"),
		}
	}
	recordPath = filepath.Clean(recordPath)
	if err := os.MkdirAll(filepath.Dir(recordPath), 0755); err != nil {
		return Locations{}, &ConfigurationError{Key: "record path", Value: recordPath, Err: err}
	}

	slog.Debug("locations resolved",
		"trash_dir", trashDir,
		"trash_mount", fs.MountPoint(trashDir),
		"record_path", recordPath,
	)

	return Locations{
		TrashDir:   trashDir,
		RecordPath: recordPath,
	}, nil
}

// TrashDir expands path and makes sure a directory exists there
func TrashDir(path string) (string, error) {
	expanded, err := shell.ExpandHome(path)
	if err != nil {
		return "", &ConfigurationError{Key: config.KeyPathToTrash, Value: path, Err: err}
	}
	if expanded == "" || !filepath.IsAbs(expanded) {
		return "", &ConfigurationError{
			Key:   config.KeyPathToTrash,
			Value: path,
			Err:   fmt.Errorf("must be an absolute path"),
		}
	}
	expanded = filepath.Clean(expanded)

	fi, err := os.Stat(expanded)
	switch {
	case err == nil && !fi.IsDir():
		return "", &ConfigurationError{
			Key:   config.KeyPathToTrash,
			Value: path,
			Err:   fmt.Errorf("%s is not a directory", expanded),
		}
	case os.IsNotExist(err):
		slog.Warn("creating trash directory as it does not exist", "dir", expanded)
		if err := os.MkdirAll(expanded, 0755); err != nil {
			return "", &ConfigurationError{Key: config.KeyPathToTrash, Value: path, Err: err}
		}
	case err != nil:
		return "", &ConfigurationError{Key: config.KeyPathToTrash, Value: path, Err: err}
	}

	return expanded, nil
}
