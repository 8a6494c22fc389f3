// Package vector: type definition, configuration options, and constructors
// for the dynamic array.
//
// The Vector owns exactly one buffer obtained from its allocation strategy.
// Invariants maintained by every operation in this package:
//
//	0 <= size <= len(buf)
//	buf == nil  iff  capacity == 0
//	slots [0, size) live; slots [size, len(buf)) dead
package vector

import (
	"iter"
	"math"

	"github.com/katalvlaran/vessel/alloc"
)

// maxLen is the implementation-defined maximum element count: half the
// int ceiling, so size+count sums and one doubling step cannot overflow.
const maxLen = math.MaxInt / growthFactor

// Vector is a generic dynamic array over a contiguous buffer.
//
// The zero Vector is not ready for use; construct one with New and friends
// so that an allocation strategy is attached.
type Vector[T any] struct {
	buf   []T               // owned storage; len(buf) is the capacity
	size  int               // live element count
	strat alloc.Strategy[T] // injected allocation strategy
	gen   uint64            // bumped on reallocation and shifting mutations
}

// Option configures a Vector before creation.
type Option[T any] func(*config[T])

type config[T any] struct {
	strat    alloc.Strategy[T]
	stratSet bool
	capacity int
}

// WithStrategy injects the allocation strategy the vector will use for
// raw storage and element construction. The strategy may be shared with
// other containers; the buffer never is.
func WithStrategy[T any](s alloc.Strategy[T]) Option[T] {
	return func(c *config[T]) {
		c.strat = s
		c.stratSet = true
	}
}

// WithCapacity pre-reserves storage for at least n elements.
func WithCapacity[T any](n int) Option[T] {
	return func(c *config[T]) { c.capacity = n }
}

// New creates an empty vector.
// Returns alloc.ErrNilStrategy if WithStrategy(nil) was supplied,
// ErrLength or ErrAllocation if WithCapacity cannot be honored.
// Complexity: O(1) (O(n) with WithCapacity(n)).
func New[T any](opts ...Option[T]) (*Vector[T], error) {
	var c config[T]
	for _, opt := range opts {
		opt(&c)
	}
	if c.stratSet && c.strat == nil {
		return nil, alloc.ErrNilStrategy
	}
	if c.strat == nil {
		c.strat = alloc.Heap[T]{}
	}

	v := &Vector[T]{strat: c.strat}
	if c.capacity > 0 {
		if err := v.Reserve(c.capacity); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// NewSize creates a vector holding n zero-value elements.
// Complexity: O(n).
func NewSize[T any](n int, opts ...Option[T]) (*Vector[T], error) {
	var zero T

	return NewFill(n, zero, opts...)
}

// NewFill creates a vector holding n copies of value.
// Returns ErrLength for negative n; on any allocation or construction
// failure no storage is retained.
// Complexity: O(n).
func NewFill[T any](n int, value T, opts ...Option[T]) (*Vector[T], error) {
	if n < 0 {
		return nil, ErrLength
	}
	v, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err = v.Assign(n, value); err != nil {
		return nil, err
	}

	return v, nil
}

// NewFrom creates a vector from a literal sequence of values, preserving
// their order. Uses the default heap strategy.
// Complexity: O(len(values)).
func NewFrom[T any](values ...T) (*Vector[T], error) {
	v, err := New[T]()
	if err != nil {
		return nil, err
	}
	if err = v.AssignFrom(values...); err != nil {
		return nil, err
	}

	return v, nil
}

// NewRange creates a vector by draining seq in order.
// Complexity: O(n) amortized, n = number of produced values.
func NewRange[T any](seq iter.Seq[T], opts ...Option[T]) (*Vector[T], error) {
	v, err := New(opts...)
	if err != nil {
		return nil, err
	}
	if err = v.AssignRange(seq); err != nil {
		return nil, err
	}

	return v, nil
}

// Clone returns a deep copy of v sharing the same allocation strategy.
// The copy's capacity is exactly v.Len(). On failure nothing is allocated
// and v is untouched (strong guarantee).
// Complexity: O(n).
func (v *Vector[T]) Clone() (*Vector[T], error) {
	out := &Vector[T]{strat: v.strat}
	if v.size == 0 {
		return out, nil
	}

	buf, err := v.buildCopy(v.size, v.buf[:v.size])
	if err != nil {
		return nil, err
	}
	out.buf = buf
	out.size = v.size

	return out, nil
}

// CopyFrom replaces v's contents with a deep copy of other, copy-then-swap:
// the copy is fully built with v's own strategy before v's old state is
// torn down, so a failure leaves v exactly as it was (strong guarantee).
// v keeps its allocation strategy; the copy's capacity is other.Len().
// Complexity: O(len(other) + Len()).
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}
	buf, err := v.buildCopy(other.size, other.buf[:other.size])
	if err != nil {
		return err
	}
	v.release()
	v.buf, v.size = buf, other.size
	v.gen++

	return nil
}

// MoveFrom destroys v's contents and adopts other's buffer, capacity, size,
// and strategy. other is left empty but usable.
// Complexity: O(v.Len()) for the teardown, O(1) for the transfer.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.release()
	v.buf, v.size, v.strat = other.buf, other.size, other.strat
	v.gen++
	other.buf, other.size = nil, 0
	other.gen++
}

// Strategy returns the allocation strategy the vector was built with.
func (v *Vector[T]) Strategy() alloc.Strategy[T] { return v.strat }

// release destroys all live elements and retires the buffer.
func (v *Vector[T]) release() {
	if v.buf == nil {
		return
	}
	destroyRange(v.strat, v.buf[:v.size])
	v.strat.Deallocate(v.buf)
	v.buf, v.size = nil, 0
}
