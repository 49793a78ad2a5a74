package mpool

import (
	"fmt"

	s "github.com/prataprc/gosettings"
)

// Config carries construction-time parameters for a Pool, mirroring the
// settings-map convention this package's sibling storage packages use for
// their own arenas and pools.
//
// Recognised keys:
//
//	"blocksize" (int64, required)
//		Size, in bytes, of each block acquired from the SystemAllocator.
//
//	"allocator" (string, default: "mmap")
//		SystemAllocator implementation to use, "mmap" or "heap".
//
//	"diagnostics.ring" (int64, default: 0)
//		Capacity of the bounded recent-operations ring. 0 disables it.
type Config s.Settings

// DefaultSettings returns the default configuration for a given blocksize.
func DefaultSettings(blocksize int64) Config {
	return Config{
		"blocksize":        blocksize,
		"allocator":        "mmap",
		"diagnostics.ring": int64(0),
	}
}

func (c Config) blocksize() int64 {
	v, ok := c["blocksize"]
	if !ok {
		panic(fmt.Errorf("mpool: config missing %q", "blocksize"))
	}
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	default:
		panic(fmt.Errorf("mpool: config %q is not a number", "blocksize"))
	}
}

func (c Config) allocatorName() string {
	if v, ok := c["allocator"]; ok {
		if name, ok := v.(string); ok && name != "" {
			return name
		}
	}
	return "mmap"
}

func (c Config) ringCapacity() int {
	if v, ok := c["diagnostics.ring"]; ok {
		switch n := v.(type) {
		case int64:
			return int(n)
		case int:
			return n
		}
	}
	return 0
}

func (c Config) systemAllocator() SystemAllocator {
	switch c.allocatorName() {
	case "heap":
		return &HeapAllocator{}
	case "mmap":
		return &MmapAllocator{}
	default:
		panic(fmt.Errorf("mpool: unknown allocator %q", c.allocatorName()))
	}
}
