package mpool

import "errors"

// ErrAllocationFailure is returned when the underlying SystemAllocator
// could not satisfy a block acquisition.
var ErrAllocationFailure = errors.New("mpool.allocationfailure")

// ErrConstructionFailure is returned by NewObject when the caller-supplied
// constructor fails; the slot has already been returned to the pool's
// free list before this error reaches the caller.
var ErrConstructionFailure = errors.New("mpool.constructionfailure")

// ErrSelfTransfer is raised when TransferFree or TransferAll is called
// with src and dst referring to the same Pool.
var ErrSelfTransfer = errors.New("mpool.selftransfer")

// ErrInvalidBlockSize is raised by New when blocksize cannot hold even
// one slot of T.
var ErrInvalidBlockSize = errors.New("mpool.invalidblocksize")
