package alloc

// Limited wraps another Strategy with a quota on the total number of slots
// outstanding at any moment. Once the quota is reached further Allocate
// calls fail with ErrAllocationFailure, which models storage exhaustion
// without exhausting anything real. Deallocate returns slots to the quota.
//
// Limited is not safe for concurrent use, matching the single-threaded
// contract of the containers it serves.
type Limited[T any] struct {
	inner Strategy[T]
	quota int // maximum outstanding slots
	used  int // currently outstanding slots
}

// NewLimited wraps inner with a quota of at most quota outstanding slots.
// A nil inner falls back to the Heap strategy. Complexity: O(1).
func NewLimited[T any](inner Strategy[T], quota int) *Limited[T] {
	if inner == nil {
		inner = Heap[T]{}
	}

	return &Limited[T]{inner: inner, quota: quota}
}

// Used reports the number of slots currently outstanding.
func (l *Limited[T]) Used() int { return l.used }

// Quota reports the configured slot quota.
func (l *Limited[T]) Quota() int { return l.quota }

// Allocate obtains n slots from the wrapped strategy if the quota admits them.
func (l *Limited[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if l.used+n > l.quota {
		return nil, ErrAllocationFailure
	}
	buf, err := l.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	l.used += n

	return buf, nil
}

// Deallocate retires buf and returns its slots to the quota.
func (l *Limited[T]) Deallocate(buf []T) {
	if buf == nil {
		return
	}
	l.used -= len(buf)
	l.inner.Deallocate(buf)
}

// Construct delegates to the wrapped strategy.
func (l *Limited[T]) Construct(dst *T, value T) error {
	return l.inner.Construct(dst, value)
}

// Destroy delegates to the wrapped strategy.
func (l *Limited[T]) Destroy(dst *T) {
	l.inner.Destroy(dst)
}

// CanRelocate forwards the wrapped strategy's relocation capability.
func (l *Limited[T]) CanRelocate() bool {
	_, ok := RelocatorOf(l.inner)

	return ok
}

// Relocate delegates to the wrapped strategy's relocator.
// Must only be called when CanRelocate reports true.
func (l *Limited[T]) Relocate(dst, src *T) {
	r, _ := RelocatorOf(l.inner)
	r.Relocate(dst, src)
}
