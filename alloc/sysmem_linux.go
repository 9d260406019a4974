//go:build linux

package alloc

import "golang.org/x/sys/unix"

// physicalMemory returns the installed RAM in bytes, or 0 if unknown.
func physicalMemory() uint64 {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0
	}
	return uint64(info.Totalram) * uint64(info.Unit) //nolint:unconvert // field widths differ per GOARCH
}
