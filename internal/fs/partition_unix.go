//go:build !windows

package fs

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// isSamePartition compares the devices of src (not followed) and the
// existing directory dst
func isSamePartition(src, dst string) (bool, error) {
	var s, d unix.Stat_t
	if err := unix.Lstat(src, &s); err != nil {
		return false, fmt.Errorf("stat %s: %w", src, err)
	}
	if err := unix.Stat(dst, &d); err != nil {
		return false, fmt.Errorf("stat %s: %w", dst, err)
	}
	return s.Dev == d.Dev, nil
}
