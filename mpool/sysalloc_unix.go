//go:build !windows

package mpool

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// MmapAllocator acquires blocks via an anonymous, private mmap mapping so
// that pool blocks live outside the Go heap: the garbage collector never
// scans or moves them, which is the property the "system allocator"
// language in the allocate/deallocate contract is really asking for.
//
// mmap always returns page-aligned memory, which satisfies any T whose
// alignment does not exceed the platform page size.
type MmapAllocator struct{}

// Acquire implements SystemAllocator.
func (MmapAllocator) Acquire(size, alignment uintptr) (unsafe.Pointer, error) {
	b, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap: %v", ErrAllocationFailure, err)
	}
	ptr := unsafe.Pointer(&b[0])
	if uintptr(ptr)%alignment != 0 {
		unix.Munmap(b)
		return nil, fmt.Errorf("%w: mmap returned misaligned block", ErrAllocationFailure)
	}
	return ptr, nil
}

// Release implements SystemAllocator.
func (MmapAllocator) Release(ptr unsafe.Pointer, size uintptr) {
	b := unsafe.Slice((*byte)(ptr), int(size))
	unix.Munmap(b)
}
