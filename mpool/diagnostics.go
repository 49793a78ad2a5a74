package mpool

import "github.com/eapache/queue"

// OpKind names the pool operation a recent OpRecord describes.
type OpKind int

const (
	OpAllocate OpKind = iota
	OpDeallocate
	OpTransferFreeOut
	OpTransferFreeIn
	OpTransferAllOut
	OpTransferAllIn
)

func (k OpKind) String() string {
	switch k {
	case OpAllocate:
		return "allocate"
	case OpDeallocate:
		return "deallocate"
	case OpTransferFreeOut:
		return "transfer_free:src"
	case OpTransferFreeIn:
		return "transfer_free:dst"
	case OpTransferAllOut:
		return "transfer_all:src"
	case OpTransferAllIn:
		return "transfer_all:dst"
	default:
		return "unknown"
	}
}

// OpRecord is one entry of a Pool's bounded recent-operations ring: a
// diagnostic snapshot, not part of the allocate/deallocate control flow.
type OpRecord struct {
	Kind             OpKind
	AllocatedBytes   int64
	NumSlotsFree     int64
	NumBumpAvailable int64
}

// opRing is a fixed-capacity FIFO of OpRecord, built on eapache/queue so
// that the diagnostic trail never grows unbounded: once full, the oldest
// record is dropped to make room for the newest.
type opRing struct {
	capacity int
	q        *queue.Queue
}

func newOpRing(capacity int) *opRing {
	if capacity <= 0 {
		return nil
	}
	return &opRing{capacity: capacity, q: queue.New()}
}

func (r *opRing) record(rec OpRecord) {
	if r == nil {
		return
	}
	r.q.Add(rec)
	for r.q.Length() > r.capacity {
		r.q.Remove()
	}
}

func (r *opRing) snapshot() []OpRecord {
	if r == nil {
		return nil
	}
	out := make([]OpRecord, r.q.Length())
	for i := range out {
		out[i] = r.q.Get(i).(OpRecord)
	}
	return out
}
