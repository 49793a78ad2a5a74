package mpool

// NewObject allocates a slot from p and runs ctor over it in place. If
// ctor fails, the slot is returned to p's free list (the same list
// Deallocate would push it onto) and the error is re-raised wrapped in
// ErrConstructionFailure; the caller never sees a half-constructed
// value.
func NewObject[T any](p *Pool[T], ctor func(*T) error) (*T, error) {
	v, err := p.Allocate()
	if err != nil {
		return nil, err
	}
	if ctor == nil {
		return v, nil
	}
	if err := ctor(v); err != nil {
		p.Deallocate(v)
		return nil, &constructionError{cause: err}
	}
	return v, nil
}

// DeleteObject runs dtor over v in place, then returns it to p's free
// list. dtor may be nil if T needs no teardown.
func DeleteObject[T any](p *Pool[T], v *T, dtor func(*T)) {
	if v == nil {
		return
	}
	if dtor != nil {
		dtor(v)
	}
	p.Deallocate(v)
}

type constructionError struct {
	cause error
}

func (e *constructionError) Error() string {
	return ErrConstructionFailure.Error() + ": " + e.cause.Error()
}

func (e *constructionError) Unwrap() error {
	return ErrConstructionFailure
}

// Handle is a scoped, non-copyable owner of one slot allocated from a
// Pool: the "make_unique" layer over NewObject/DeleteObject. Its Close
// method is the disposer, capturing the pool reference and destructor
// the value was constructed with.
type Handle[T any] struct {
	pool  *Pool[T]
	value *T
	dtor  func(*T)
	freed bool
}

// MakeUnique allocates and constructs a value of T from p, returning a
// Handle that owns it. Close (or a deferred call to it) returns the
// slot to p once the destructor, if any, has run.
func MakeUnique[T any](p *Pool[T], ctor func(*T) error, dtor func(*T)) (*Handle[T], error) {
	v, err := NewObject(p, ctor)
	if err != nil {
		return nil, err
	}
	return &Handle[T]{pool: p, value: v, dtor: dtor}, nil
}

// Get returns the owned value. It is valid only until Close is called.
func (h *Handle[T]) Get() *T {
	return h.value
}

// Close runs the destructor, if any, and returns the slot to the pool.
// Close is idempotent; calling it more than once is a no-op after the
// first call.
func (h *Handle[T]) Close() {
	if h.freed {
		return
	}
	DeleteObject(h.pool, h.value, h.dtor)
	h.freed = true
}
