// Package vector: random-access iteration over the buffer.
//
// Iterator is a lightweight non-owning cursor. It stays valid from creation
// until the vector reallocates (growth via insert, reserve, or resize) or
// until any insert/erase shifts elements at or before its position. Checked
// accessors detect staleness via the vector's generation counter; unchecked
// ones are the caller's contract.
package vector

import "iter"

// Iterator is a random-access cursor over a vector's live elements.
// Iterators are values: advancing returns a new cursor. A reverse iterator
// walks from the back; Next moves it toward the front.
type Iterator[T any] struct {
	vec *Vector[T]
	idx int // absolute buffer index
	rev bool
	gen uint64 // vector generation at creation
}

// Begin returns an iterator at the first element (equal to End when empty).
// Complexity: O(1).
func (v *Vector[T]) Begin() Iterator[T] {
	return Iterator[T]{vec: v, idx: 0, gen: v.gen}
}

// End returns the past-the-end iterator.
// Complexity: O(1).
func (v *Vector[T]) End() Iterator[T] {
	return Iterator[T]{vec: v, idx: v.size, gen: v.gen}
}

// RBegin returns a reverse iterator at the last element.
// Complexity: O(1).
func (v *Vector[T]) RBegin() Iterator[T] {
	return Iterator[T]{vec: v, idx: v.size - 1, rev: true, gen: v.gen}
}

// REnd returns the before-the-front reverse iterator.
// Complexity: O(1).
func (v *Vector[T]) REnd() Iterator[T] {
	return Iterator[T]{vec: v, idx: -1, rev: true, gen: v.gen}
}

// Iter returns an iterator at index i of v. i may equal Len(), yielding End.
func (v *Vector[T]) Iter(i int) Iterator[T] {
	return Iterator[T]{vec: v, idx: i, gen: v.gen}
}

// Index reports the absolute element index the cursor points at.
func (it Iterator[T]) Index() int { return it.idx }

// Valid reports whether the cursor points at a live element of a vector
// that has not reallocated or shifted since the cursor was created.
// Complexity: O(1).
func (it Iterator[T]) Valid() bool {
	return it.vec != nil && it.gen == it.vec.gen && it.idx >= 0 && it.idx < it.vec.size
}

// Next returns the cursor advanced by one position (toward the front for a
// reverse iterator).
func (it Iterator[T]) Next() Iterator[T] {
	if it.rev {
		it.idx--
	} else {
		it.idx++
	}

	return it
}

// Prev returns the cursor moved back by one position.
func (it Iterator[T]) Prev() Iterator[T] {
	if it.rev {
		it.idx++
	} else {
		it.idx--
	}

	return it
}

// Add returns the cursor advanced by n positions (random access).
func (it Iterator[T]) Add(n int) Iterator[T] {
	if it.rev {
		it.idx -= n
	} else {
		it.idx += n
	}

	return it
}

// Sub reports the distance, in positions, from other to it. Both cursors
// must reference the same vector with the same orientation.
func (it Iterator[T]) Sub(other Iterator[T]) int {
	if it.rev {
		return other.idx - it.idx
	}

	return it.idx - other.idx
}

// Equal reports whether two cursors reference the same position of the
// same vector.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return it.vec == other.vec && it.idx == other.idx && it.rev == other.rev
}

// Value returns the element under the cursor without validity checking.
// The caller must guarantee Valid(); anything else is undefined.
func (it Iterator[T]) Value() T { return it.vec.buf[it.idx] }

// Get returns the element under the cursor with full validity checking.
// Returns ErrStaleIterator after a reallocation or shift, ErrOutOfRange
// outside the live range.
// Complexity: O(1).
func (it Iterator[T]) Get() (T, error) {
	var zero T
	if it.vec == nil || it.gen != it.vec.gen {
		return zero, ErrStaleIterator
	}
	if it.idx < 0 || it.idx >= it.vec.size {
		return zero, ErrOutOfRange
	}

	return it.vec.buf[it.idx], nil
}

// Set overwrites the element under the cursor with full validity checking.
// Complexity: O(1).
func (it Iterator[T]) Set(value T) error {
	if it.vec == nil || it.gen != it.vec.gen {
		return ErrStaleIterator
	}
	if it.idx < 0 || it.idx >= it.vec.size {
		return ErrOutOfRange
	}
	it.vec.buf[it.idx] = value

	return nil
}

// All returns a front-to-back index/value sequence over the live elements.
// The vector must not be mutated during iteration.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Values returns a front-to-back value sequence over the live elements.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// Backward returns a back-to-front index/value sequence over the live
// elements.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}
