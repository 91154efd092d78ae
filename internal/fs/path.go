package fs

import (
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/moby/sys/mountinfo"
)

// IsUnsafePath checks if the given path is unsafe to remove
func IsUnsafePath(path string) bool {
	// First check the original path before any normalization
	// This preserves the original input like "." or ".."
	originalBase := filepath.Base(path)
	if originalBase == "." || originalBase == ".." {
		return true
	}

	// Check root path
	if filepath.Clean(path) == string(filepath.Separator) {
		return true
	}

	// Check double slashes and similar patterns
	return strings.HasPrefix(path, "//")
}

// IsWithin reports whether path equals dir or lives below it.
// Both must be absolute and clean.
func IsWithin(path, dir string) bool {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// DirSize returns the total size of path; directories are walked
// recursively and symlinks are not followed.
func DirSize(path string) (int64, error) {
	var size int64
	err := filepath.WalkDir(path, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		if !info.IsDir() {
			size += info.Size()
		}
		return nil
	})
	return size, err
}

// MountPoint returns the mount point path resides on, or "" if it cannot be determined
func MountPoint(path string) string {
	mounts, err := mountinfo.GetMounts(mountinfo.ParentsFilter(path))
	if err != nil {
		slog.Debug("failed to get mount info", "path", path, "error", err)
		return ""
	}

	var longest string
	for _, m := range mounts {
		if len(m.Mountpoint) > len(longest) {
			longest = m.Mountpoint
		}
	}
	return longest
}
