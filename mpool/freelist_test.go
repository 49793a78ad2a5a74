package mpool

import "testing"

func TestFreeListLIFO(t *testing.T) {
	var f freeList
	for _, p := range []uintptr{10, 20, 30} {
		f.push(p)
	}
	if x := f.size(); x != 3 {
		t.Errorf("expected %v, got %v", 3, x)
	}
	for _, want := range []uintptr{30, 20, 10} {
		got, ok := f.pop()
		if !ok {
			t.Fatalf("expected a value")
		}
		if got != want {
			t.Errorf("expected %v, got %v", want, got)
		}
	}
	if _, ok := f.pop(); ok {
		t.Errorf("expected empty free list")
	}
}

func TestFreeListDrainAndAbsorb(t *testing.T) {
	var f freeList
	f.push(1)
	f.push(2)
	drained := f.drain()
	if len(drained) != 2 {
		t.Errorf("expected %v, got %v", 2, len(drained))
	}
	if x := f.size(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}

	var g freeList
	g.absorb(drained)
	if x := g.size(); x != 2 {
		t.Errorf("expected %v, got %v", 2, x)
	}
}
