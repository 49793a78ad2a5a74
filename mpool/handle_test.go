package mpool

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type widget struct {
	id     int
	closed bool
}

func TestNewObjectConstructsInPlace(t *testing.T) {
	p := New[widget](heapConfig(256))
	defer p.Close()

	v, err := NewObject(p, func(w *widget) error {
		w.id = 7
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, 7, v.id)
	require.Equal(t, int64(0), p.NumSlotsAvailable())

	DeleteObject(p, v, func(w *widget) { w.closed = true })
	require.True(t, v.closed)
	require.Equal(t, int64(1), p.NumSlotsAvailable())
}

func TestNewObjectConstructionFailureReturnsSlot(t *testing.T) {
	p := New[widget](heapConfig(256))
	defer p.Close()

	boom := errors.New("boom")
	_, err := NewObject(p, func(w *widget) error {
		return boom
	})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrConstructionFailure)

	// the slot went back to the free list, not lost.
	require.Equal(t, int64(1), p.NumSlotsAvailable())
	require.Equal(t, int64(15), p.NumBumpAvailable())
}

func TestMakeUniqueHandleCloseIsIdempotent(t *testing.T) {
	p := New[widget](heapConfig(256))
	defer p.Close()

	h, err := MakeUnique(p, func(w *widget) error {
		w.id = 3
		return nil
	}, func(w *widget) {
		w.closed = true
	})
	require.NoError(t, err)
	require.Equal(t, 3, h.Get().id)

	h.Close()
	require.True(t, h.Get().closed)
	require.Equal(t, int64(1), p.NumSlotsAvailable())

	h.Close() // idempotent: must not double-free.
	require.Equal(t, int64(1), p.NumSlotsAvailable())
}
