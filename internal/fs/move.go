package fs

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	cp "github.com/otiai10/copy"
)

// MoveOptions specifies options for move operations
type MoveOptions struct {
	AllowCrossDev bool // Fall back to copy and delete across devices
	Force         bool // Replace an existing destination
}

// Move renames src to dst. When both sides live on different devices and
// AllowCrossDev is set it copies src recursively and removes it afterwards.
// Unless Force is set an existing dst is never replaced.
func Move(src, dst string, opts MoveOptions) error {
	// 1. Validate paths
	if err := validatePaths(src, dst); err != nil {
		return err
	}

	// 2. Ensure parent directory exists
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return moveError("create_parent", src, dst, err)
	}

	// 3. Check destination existence if not force mode
	if !opts.Force && Exists(dst) {
		return moveError("check_destination", src, dst, ErrDestinationExists)
	}

	// 4. Same device: a plain rename is all it takes
	samePartition, err := isSamePartition(src, filepath.Dir(dst))
	if err != nil {
		slog.Debug("cannot compare partitions, trying rename", "error", err)
		samePartition = true
	}
	if samePartition {
		err := os.Rename(src, dst)
		if err == nil {
			slog.Debug("file moved", "from", src, "to", dst)
			return nil
		}
		if !IsCrossDevice(err) {
			return moveError("rename", src, dst, err)
		}
	}

	if !opts.AllowCrossDev {
		return moveError("rename", src, dst, ErrCrossDeviceMove)
	}

	// 5. Fall back to copy and delete
	slog.Debug("different partitions detected, falling back to copy-and-delete",
		"src_mount", MountPoint(src),
		"dst_mount", MountPoint(filepath.Dir(dst)),
	)
	return copyAndDelete(src, dst)
}

// copyAndDelete copies a file or directory and then deletes the original
func copyAndDelete(src, dst string) error {
	opts := cp.Options{
		OnSymlink: func(src string) cp.SymlinkAction {
			return cp.Shallow // a symlink is moved as a symlink
		},
		PreserveTimes: true,
		Sync:          true,
	}

	if err := cp.Copy(src, dst, opts); err != nil {
		// a partial copy must not be left behind
		_ = os.RemoveAll(dst)
		return moveError("copy", src, dst, err)
	}

	// If copy succeeds, remove source
	if err := os.RemoveAll(src); err != nil {
		if rmErr := os.RemoveAll(dst); rmErr != nil {
			return moveError("cleanup", src, dst,
				fmt.Errorf("failed to remove both source and destination: %v, %v", err, rmErr))
		}
		return moveError("remove_source", src, dst, err)
	}

	slog.Debug("file copied and source removed", "from", src, "to", dst)
	return nil
}

// validatePaths performs basic path validation
func validatePaths(src, dst string) error {
	if src == "" || dst == "" {
		return ErrInvalidPath
	}

	if _, err := os.Lstat(src); err != nil {
		if os.IsNotExist(err) {
			return moveError("stat_source", src, dst, ErrSourceNotFound)
		}
		return moveError("stat_source", src, dst, err)
	}

	return nil
}

// Exists reports whether anything, including a dangling symlink, is at path
func Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}
