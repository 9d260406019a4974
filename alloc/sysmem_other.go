//go:build !linux

package alloc

func physicalMemory() uint64 { return 0 }
