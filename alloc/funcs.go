package alloc

// Funcs is a Strategy assembled from caller-supplied hooks. Its Construct
// may fail, which makes it the strategy of choice for element types whose
// copies do real work (deep copies, handle duplication) and for tests that
// inject construction failures into bulk container operations.
//
// A Funcs strategy relocates only when an explicit relocate hook is set;
// otherwise containers fall back to their copy paths.
type Funcs[T any] struct {
	construct func(dst *T, value T) error
	destroy   func(dst *T)
	relocate  func(dst, src *T)
}

// FuncsOption configures a Funcs strategy before creation.
type FuncsOption[T any] func(*Funcs[T])

// WithDestroy sets the hook run when a live element is torn down.
func WithDestroy[T any](destroy func(dst *T)) FuncsOption[T] {
	return func(f *Funcs[T]) { f.destroy = destroy }
}

// WithRelocate sets a never-failing move hook, enabling the relocation
// fast path in bulk container operations.
func WithRelocate[T any](relocate func(dst, src *T)) FuncsOption[T] {
	return func(f *Funcs[T]) { f.relocate = relocate }
}

// NewFuncs builds a hook-based strategy around the given construct hook.
// Returns ErrNilConstruct if construct is nil. Complexity: O(1).
func NewFuncs[T any](construct func(dst *T, value T) error, opts ...FuncsOption[T]) (*Funcs[T], error) {
	if construct == nil {
		return nil, ErrNilConstruct
	}
	f := &Funcs[T]{construct: construct}
	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

// Allocate obtains n zeroed slots from the Go heap.
func (f *Funcs[T]) Allocate(n int) ([]T, error) {
	if n < 0 {
		return nil, ErrNegativeCount
	}
	if n == 0 {
		return nil, nil
	}

	return make([]T, n), nil
}

// Deallocate releases the buffer to the garbage collector.
func (f *Funcs[T]) Deallocate(buf []T) {}

// Construct runs the construct hook.
func (f *Funcs[T]) Construct(dst *T, value T) error {
	return f.construct(dst, value)
}

// Destroy runs the destroy hook if set, then zeroes the slot.
func (f *Funcs[T]) Destroy(dst *T) {
	if f.destroy != nil {
		f.destroy(dst)
	}
	var zero T
	*dst = zero
}

// CanRelocate reports whether a relocate hook was configured.
func (f *Funcs[T]) CanRelocate() bool { return f.relocate != nil }

// Relocate runs the configured relocate hook.
// Must only be called when CanRelocate reports true.
func (f *Funcs[T]) Relocate(dst, src *T) {
	f.relocate(dst, src)
}
