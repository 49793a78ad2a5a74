package mpool

// bumpTier carves slots from the current block in address order. It
// never returns a slot once handed out; the only ways its state changes
// are allocateOne, drainRemainder, and initOver (which re-anchors it onto
// a freshly acquired block).
type bumpTier struct {
	next uintptr // next uncarved slot, 0 when absent
	end  uintptr // one past the last slot of the current block
	size uintptr // slot stride, needed to advance next
}

// initOver re-anchors the bump tier onto a freshly acquired block of
// count slots of size bytes, starting at base.
func (b *bumpTier) initOver(base uintptr, size uintptr, count int64) {
	b.next = base
	b.end = base + uintptr(count)*size
	b.size = size
}

// allocateOne returns the next uncarved slot, or ok=false if the current
// block is exhausted (or absent).
func (b *bumpTier) allocateOne() (ptr uintptr, ok bool) {
	if b.next == b.end {
		return 0, false
	}
	ptr = b.next
	b.next += b.size
	return ptr, true
}

// remaining reports the number of slots the bump tier can still carve
// from the current block.
func (b *bumpTier) remaining() int64 {
	if b.size == 0 {
		return 0
	}
	return int64((b.end - b.next) / b.size)
}

// drainRemainder returns every uncarved slot of the current block as a
// slice, in address order, then empties the bump tier (next becomes
// end). Used when converting the remainder to free slots, e.g. during
// ExportAll.
func (b *bumpTier) drainRemainder() []uintptr {
	var out []uintptr
	for p := b.next; p != b.end; p += b.size {
		out = append(out, p)
	}
	b.next = b.end
	return out
}
