package alloc

// Stats is a snapshot of the operation counters kept by Counting.
type Stats struct {
	// Allocs is the number of successful Allocate calls.
	Allocs int
	// Slots is the total number of slots handed out across all Allocate calls.
	Slots int
	// Deallocs is the number of non-nil Deallocate calls.
	Deallocs int
	// Constructs is the number of successful Construct calls.
	Constructs int
	// Destroys is the number of Destroy calls.
	Destroys int
	// Relocates is the number of Relocate calls.
	Relocates int
}

// Moves reports the total element-movement work performed: constructions
// plus relocations. Useful for asserting amortized growth bounds.
func (s Stats) Moves() int { return s.Constructs + s.Relocates }

// Counting wraps another Strategy and counts every operation that passes
// through it. It is the instrumentation used to verify the library's
// complexity and exception-safety claims: zero-copy swaps, no-op inserts,
// amortized O(1) growth.
//
// Counting is not safe for concurrent use.
type Counting[T any] struct {
	inner Strategy[T]
	stats Stats
}

// NewCounting wraps inner with operation counters.
// A nil inner falls back to the Heap strategy. Complexity: O(1).
func NewCounting[T any](inner Strategy[T]) *Counting[T] {
	if inner == nil {
		inner = Heap[T]{}
	}

	return &Counting[T]{inner: inner}
}

// Stats returns a snapshot of the counters.
func (c *Counting[T]) Stats() Stats { return c.stats }

// Reset zeroes all counters.
func (c *Counting[T]) Reset() { c.stats = Stats{} }

// Allocate delegates and counts successful allocations.
func (c *Counting[T]) Allocate(n int) ([]T, error) {
	buf, err := c.inner.Allocate(n)
	if err != nil {
		return nil, err
	}
	c.stats.Allocs++
	c.stats.Slots += n

	return buf, nil
}

// Deallocate delegates and counts non-nil releases.
func (c *Counting[T]) Deallocate(buf []T) {
	if buf == nil {
		return
	}
	c.stats.Deallocs++
	c.inner.Deallocate(buf)
}

// Construct delegates and counts successful constructions.
func (c *Counting[T]) Construct(dst *T, value T) error {
	if err := c.inner.Construct(dst, value); err != nil {
		return err
	}
	c.stats.Constructs++

	return nil
}

// Destroy delegates and counts.
func (c *Counting[T]) Destroy(dst *T) {
	c.stats.Destroys++
	c.inner.Destroy(dst)
}

// CanRelocate forwards the wrapped strategy's relocation capability.
func (c *Counting[T]) CanRelocate() bool {
	_, ok := RelocatorOf(c.inner)

	return ok
}

// Relocate delegates and counts.
// Must only be called when CanRelocate reports true.
func (c *Counting[T]) Relocate(dst, src *T) {
	r, _ := RelocatorOf(c.inner)
	c.stats.Relocates++
	r.Relocate(dst, src)
}
