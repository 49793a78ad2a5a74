package mpool

import "testing"

func TestBumpTierInitAndAllocate(t *testing.T) {
	var b bumpTier
	if x := b.remaining(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}

	base := uintptr(0x1000)
	b.initOver(base, 4, 16)
	if x := b.remaining(); x != 16 {
		t.Errorf("expected %v, got %v", 16, x)
	}

	for i := int64(0); i < 16; i++ {
		ptr, ok := b.allocateOne()
		if !ok {
			t.Fatalf("unable to allocate slot %v", i)
		}
		if want := base + uintptr(i)*4; ptr != want {
			t.Errorf("expected %v, got %v", want, ptr)
		}
		if x := b.remaining(); x != 16-(i+1) {
			t.Errorf("expected %v, got %v", 16-(i+1), x)
		}
	}
	if _, ok := b.allocateOne(); ok {
		t.Errorf("expected exhausted bump tier")
	}
}

func TestBumpTierDrainRemainder(t *testing.T) {
	var b bumpTier
	b.initOver(100, 4, 10)
	for i := 0; i < 4; i++ {
		b.allocateOne()
	}
	rem := b.drainRemainder()
	if len(rem) != 6 {
		t.Errorf("expected %v, got %v", 6, len(rem))
	}
	if x := b.remaining(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}
	for i, p := range rem {
		if want := uintptr(100) + uintptr(4+i)*4; p != want {
			t.Errorf("expected %v, got %v", want, p)
		}
	}
}
