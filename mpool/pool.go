package mpool

import (
	"fmt"
	"unsafe"
)

// Pool hands out storage slots for a single value of T at a time,
// carved from fixed-size blocks obtained from a SystemAllocator. A Pool
// is single-writer: no method on it is safe to call concurrently with
// any other method on the same instance.
//
// Pools are non-copyable by convention (copying would duplicate the
// block ledger without duplicating the underlying memory); always hold
// and pass *Pool[T].
type Pool[T any] struct {
	sys       SystemAllocator
	blockSize uintptr // B
	slotSize  uintptr // sizeof(T)
	slotAlign uintptr // alignof(T)
	slotsPer  int64   // S = B / sizeof(T)

	blocks blockLedger
	bump   bumpTier
	free   freeList

	diag *opRing
}

// New constructs an empty Pool for T, backed by the SystemAllocator and
// block size named in cfg. It panics if blocksize cannot hold at least
// one slot of T — the runtime substitute for the compile-time
// `static_assert(S >= 1)` a non-generic language can express.
func New[T any](cfg Config) *Pool[T] {
	var zero T
	slotSize := unsafe.Sizeof(zero)
	slotAlign := unsafe.Alignof(zero)
	if slotSize == 0 {
		slotSize = 1
	}

	blockSize := uintptr(cfg.blocksize())
	slotsPer := int64(blockSize / slotSize)
	if slotsPer < 1 {
		panic(fmt.Errorf("%w: blocksize %d cannot hold one slot of size %d", ErrInvalidBlockSize, blockSize, slotSize))
	}

	return &Pool[T]{
		sys:       cfg.systemAllocator(),
		blockSize: blockSize,
		slotSize:  slotSize,
		slotAlign: slotAlign,
		slotsPer:  slotsPer,
		diag:      newOpRing(cfg.ringCapacity()),
	}
}

// Allocate returns a pointer to an uninitialized, properly aligned slot
// for one T. It never returns nil on success. The selection order is:
// free list, then bump tier, then a freshly acquired block.
func (p *Pool[T]) Allocate() (*T, error) {
	ptr, err := p.allocateSlot()
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(ptr)), nil
}

func (p *Pool[T]) allocateSlot() (uintptr, error) {
	if ptr, ok := p.free.pop(); ok {
		p.record(OpAllocate)
		return ptr, nil
	}
	if ptr, ok := p.bump.allocateOne(); ok {
		p.record(OpAllocate)
		return ptr, nil
	}

	raw, err := p.sys.Acquire(p.blockSize, p.slotAlign)
	if err != nil {
		return 0, err
	}
	p.blocks.append(block{ptr: raw, size: p.blockSize})
	base := uintptr(raw)
	p.bump.initOver(base, p.slotSize, p.slotsPer)

	ptr, _ := p.bump.allocateOne()
	p.record(OpAllocate)
	return ptr, nil
}

// Deallocate returns a previously allocated slot to the pool's free
// list. deallocate(nil) is a no-op. Passing a pointer not obtained from
// this pool (directly, or via the transfer protocol) is undefined
// behavior; the pool does not validate ownership.
func (p *Pool[T]) Deallocate(slot *T) {
	if slot == nil {
		return
	}
	p.free.push(uintptr(unsafe.Pointer(slot)))
	p.record(OpDeallocate)
}

// Close returns every block this Pool owns to its SystemAllocator. It
// does not run T's destructor on any live slot; it is the caller's
// responsibility that no payload value remains live, or that its
// resources have already been released, before calling Close.
func (p *Pool[T]) Close() {
	p.blocks.releaseAll(p.sys)
	p.bump = bumpTier{}
	p.free.slots = nil
}

// AllocatedBytes returns |Blocks| * blocksize.
func (p *Pool[T]) AllocatedBytes() int64 {
	return p.blocks.bytes()
}

// NumSlotsAvailable returns the number of slots on the free list.
func (p *Pool[T]) NumSlotsAvailable() int64 {
	return p.free.size()
}

// NumBumpAvailable returns the bump tier's remaining, never-yet-carved
// slots in the current block (0 if there is no current block).
func (p *Pool[T]) NumBumpAvailable() int64 {
	return p.bump.remaining()
}

func (p *Pool[T]) record(kind OpKind) {
	if p.diag == nil {
		return
	}
	p.diag.record(OpRecord{
		Kind:             kind,
		AllocatedBytes:   p.AllocatedBytes(),
		NumSlotsFree:     p.NumSlotsAvailable(),
		NumBumpAvailable: p.NumBumpAvailable(),
	})
}

// Recent returns a snapshot of the bounded operation ring, oldest first.
// It is empty unless cfg's "diagnostics.ring" was set to a positive
// capacity at construction time.
func (p *Pool[T]) Recent() []OpRecord {
	return p.diag.snapshot()
}
