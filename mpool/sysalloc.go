package mpool

import "unsafe"

// SystemAllocator is the external collaborator a Pool asks for raw,
// block-sized memory. It stands in for "the underlying system allocator"
// referenced throughout the allocate/deallocate and block-ledger design.
//
// Acquire and Release must be called in matched pairs with the same size;
// a Pool never mixes sizes for a single block across the two calls.
type SystemAllocator interface {
	// Acquire returns size bytes, aligned to at least alignment. It
	// returns a non-nil error, and a nil pointer, on failure; no retry
	// or backoff is attempted by the caller.
	Acquire(size, alignment uintptr) (unsafe.Pointer, error)

	// Release returns memory previously obtained from Acquire with the
	// same size. Implementations must tolerate being the last reference
	// to ptr; Release is only ever called once per successful Acquire.
	Release(ptr unsafe.Pointer, size uintptr)
}

// HeapAllocator backs blocks with ordinary Go-heap byte slices, kept
// alive by retaining a reference alongside the returned pointer. The
// buffers are []byte, so the garbage collector keeps them alive but does
// not scan their contents for pointers; this trades the "outside the GC heap" property of
// MmapAllocator for portability (no mmap/VirtualAlloc dependency) and for
// straightforward use under the race detector.
type HeapAllocator struct {
	blocks map[unsafe.Pointer][]byte
}

// Acquire implements SystemAllocator.
func (a *HeapAllocator) Acquire(size, alignment uintptr) (unsafe.Pointer, error) {
	// Over-allocate by alignment so an aligned pointer can always be
	// found inside the slice, then keep the whole slice reachable from
	// a.blocks so it survives for the matching Release.
	buf := make([]byte, size+alignment)
	base := uintptr(unsafe.Pointer(&buf[0]))
	aligned := (base + alignment - 1) &^ (alignment - 1)
	ptr := unsafe.Pointer(aligned)
	if a.blocks == nil {
		a.blocks = make(map[unsafe.Pointer][]byte)
	}
	a.blocks[ptr] = buf
	return ptr, nil
}

// Release implements SystemAllocator.
func (a *HeapAllocator) Release(ptr unsafe.Pointer, size uintptr) {
	delete(a.blocks, ptr)
}
