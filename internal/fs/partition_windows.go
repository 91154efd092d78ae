//go:build windows

package fs

import (
	"fmt"
	"strings"

	"golang.org/x/sys/windows"
)

// isSamePartition compares the volume mount points of src and dst, which
// also covers volumes mounted into folders
func isSamePartition(src, dst string) (bool, error) {
	srcVolume, err := volumePath(src)
	if err != nil {
		return false, err
	}
	dstVolume, err := volumePath(dst)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(srcVolume, dstVolume), nil
}

func volumePath(path string) (string, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return "", err
	}
	buf := make([]uint16, windows.MAX_PATH+1)
	if err := windows.GetVolumePathName(p, &buf[0], uint32(len(buf))); err != nil {
		return "", fmt.Errorf("volume of %s: %w", path, err)
	}
	return windows.UTF16ToString(buf), nil
}
