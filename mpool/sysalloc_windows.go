//go:build windows

package mpool

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// MmapAllocator acquires blocks via VirtualAlloc, the Windows analogue of
// an anonymous mmap: committed, reserved memory outside any Go-heap
// region, so the garbage collector never scans or relocates it.
type MmapAllocator struct{}

// Acquire implements SystemAllocator.
func (MmapAllocator) Acquire(size, alignment uintptr) (unsafe.Pointer, error) {
	addr, err := windows.VirtualAlloc(0, size, windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, fmt.Errorf("%w: VirtualAlloc: %v", ErrAllocationFailure, err)
	}
	if addr%alignment != 0 {
		_ = windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
		return nil, fmt.Errorf("%w: VirtualAlloc returned misaligned block", ErrAllocationFailure)
	}
	return unsafe.Pointer(addr), nil
}

// Release implements SystemAllocator.
func (MmapAllocator) Release(ptr unsafe.Pointer, size uintptr) {
	_ = windows.VirtualFree(uintptr(ptr), 0, windows.MEM_RELEASE)
}
