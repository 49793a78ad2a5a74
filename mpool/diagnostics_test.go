package mpool

import "testing"

func TestRecentOperationsRingIsBounded(t *testing.T) {
	cfg := heapConfig(64)
	cfg["diagnostics.ring"] = int64(3)
	p := New[int32](cfg)
	defer p.Close()

	for i := 0; i < 5; i++ {
		p.Allocate()
	}

	recent := p.Recent()
	if len(recent) != 3 {
		t.Fatalf("expected ring capped at %v, got %v", 3, len(recent))
	}
	for _, r := range recent {
		if r.Kind != OpAllocate {
			t.Errorf("expected %v, got %v", OpAllocate, r.Kind)
		}
	}
}

func TestRecentIsEmptyWhenDisabled(t *testing.T) {
	p := New[int32](heapConfig(64))
	defer p.Close()

	p.Allocate()
	if x := p.Recent(); len(x) != 0 {
		t.Errorf("expected no diagnostics ring, got %v entries", len(x))
	}
}
