package alloc

// Strategy acquires and releases raw element storage and builds or tears
// down individual elements in place.
//
// The slot slices returned by Allocate are uninitialized storage from the
// container's point of view: no slot is live until Construct succeeds on it,
// and a slot must not be read or destroyed while dead. Deallocate retires a
// buffer previously returned by Allocate; calling it with nil is a no-op.
type Strategy[T any] interface {
	// Allocate obtains storage for exactly n element slots.
	// Returns ErrAllocationFailure if storage cannot be obtained,
	// ErrNegativeCount if n < 0. Allocate(0) returns a nil buffer.
	Allocate(n int) ([]T, error)

	// Deallocate retires a buffer obtained from Allocate.
	// Must not be called twice for the same buffer. Nil is a no-op.
	Deallocate(buf []T)

	// Construct builds a copy of value inside the dead slot dst.
	// On failure the slot remains dead and no resources are retained.
	Construct(dst *T, value T) error

	// Destroy tears down the live element in dst, leaving the slot dead.
	// Destroy never fails.
	Destroy(dst *T)
}

// Relocator is the optional capability of a Strategy to move an element
// between slots with a guarantee that the move never fails. After Relocate
// the src slot is dead and dst is live.
//
// CanRelocate exists so that wrapper strategies (Counting, Limited) can
// forward the capability of the strategy they wrap; callers must resolve
// the capability through RelocatorOf rather than a bare type assertion.
type Relocator[T any] interface {
	// CanRelocate reports whether Relocate is actually usable.
	CanRelocate() bool

	// Relocate moves the live element in src into the dead slot dst.
	Relocate(dst, src *T)
}

// RelocatorOf resolves the non-failing relocation capability of s.
// It returns (nil, false) when s cannot relocate; bulk operations call it
// once and commit to either the relocation fast path or the copy fallback.
// Complexity: O(1).
func RelocatorOf[T any](s Strategy[T]) (Relocator[T], bool) {
	r, ok := s.(Relocator[T])
	if !ok || !r.CanRelocate() {
		return nil, false
	}

	return r, true
}

// Heap is the default Strategy: slots come straight from the Go heap,
// Construct is plain assignment and never fails, and relocation is a
// trivial move. Heap is stateless and freely shareable.
type Heap[T any] struct{}

// NewHeap returns the default heap strategy.
// Complexity: O(1).
func NewHeap[T any]() Heap[T] { return Heap[T]{} }

// Allocate obtains n zeroed slots from the Go heap.
func (Heap[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if n == 0 {
		return nil, nil
	}

	return make([]T, n), nil
}

// Deallocate releases the buffer to the garbage collector.
func (Heap[T]) Deallocate(buf []T) {}

// Construct copies value into dst. Never fails.
func (Heap[T]) Construct(dst *T, value T) error {
	*dst = value

	return nil
}

// Destroy zeroes dst so the dead slot pins no references.
func (Heap[T]) Destroy(dst *T) {
	var zero T
	*dst = zero
}

// CanRelocate reports true: heap moves are plain assignments.
func (Heap[T]) CanRelocate() bool { return true }

// Relocate moves src into dst and kills the source slot.
func (h Heap[T]) Relocate(dst, src *T) {
	*dst = *src
	h.Destroy(src)
}
