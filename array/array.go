// Package array implements fixed-size one- and two-dimensional arrays.
//
// Unlike vector, an Array's element count is fixed at construction: there
// is no growth, no spare capacity, and every slot is always live. Swap is
// an O(1) exchange of storage between arrays of identical shape.
//
// Errors:
//
//	ErrBadShape     - negative or zero dimension at construction.
//	ErrOutOfRange   - checked accessor given an invalid index.
//	ErrShapeMismatch - swap between arrays of different shape.
package array

import (
	"cmp"
	"errors"
	"iter"
)

// Sentinel errors for fixed-size arrays.
var (
	// ErrBadShape indicates a negative dimension at construction.
	ErrBadShape = errors.New("array: invalid dimensions")

	// ErrOutOfRange indicates a checked accessor was given an invalid index.
	ErrOutOfRange = errors.New("array: index out of range")

	// ErrShapeMismatch indicates a swap between arrays of different shape.
	ErrShapeMismatch = errors.New("array: shape mismatch")
)

// Array is a fixed-size sequence of n elements, all live for its lifetime.
type Array[T any] struct {
	data []T
}

// New creates an array of n zero-value elements.
// Returns ErrBadShape for negative n.
// Complexity: O(n).
func New[T any](n int) (*Array[T], error) {
	if n < 0 {
		return nil, ErrBadShape
	}

	return &Array[T]{data: make([]T, n)}, nil
}

// From creates an array holding the given values in order.
// Complexity: O(len(values)).
func From[T any](values ...T) *Array[T] {
	data := make([]T, len(values))
	copy(data, values)

	return &Array[T]{data: data}
}

// Len reports the fixed element count.
// Complexity: O(1).
func (a *Array[T]) Len() int { return len(a.data) }

// Empty reports whether the array has zero elements.
func (a *Array[T]) Empty() bool { return len(a.data) == 0 }

// At returns the element at index i with bounds checking.
// Complexity: O(1).
func (a *Array[T]) At(i int) (T, error) {
	if i < 0 || i >= len(a.data) {
		var zero T

		return zero, ErrOutOfRange
	}

	return a.data[i], nil
}

// SetAt overwrites the element at index i with bounds checking.
// Complexity: O(1).
func (a *Array[T]) SetAt(i int, value T) error {
	if i < 0 || i >= len(a.data) {
		return ErrOutOfRange
	}
	a.data[i] = value

	return nil
}

// Get returns the element at index i without bounds checking.
// The caller must guarantee 0 <= i < Len().
func (a *Array[T]) Get(i int) T { return a.data[i] }

// Set overwrites the element at index i without bounds checking.
// The caller must guarantee 0 <= i < Len().
func (a *Array[T]) Set(i int, value T) { a.data[i] = value }

// Front returns the first element. Undefined (panics) on an empty array.
func (a *Array[T]) Front() T { return a.data[0] }

// Back returns the last element. Undefined (panics) on an empty array.
func (a *Array[T]) Back() T { return a.data[len(a.data)-1] }

// Data returns the elements as a slice sharing the array's storage.
func (a *Array[T]) Data() []T { return a.data }

// Fill overwrites every element with value.
// Complexity: O(n).
func (a *Array[T]) Fill(value T) {
	for i := range a.data {
		a.data[i] = value
	}
}

// Swap exchanges storage with another array of the same length in O(1).
// Returns ErrShapeMismatch when the lengths differ.
func (a *Array[T]) Swap(other *Array[T]) error {
	if len(a.data) != len(other.data) {
		return ErrShapeMismatch
	}
	a.data, other.data = other.data, a.data

	return nil
}

// All returns a front-to-back index/value sequence.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range a.data {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values returns a front-to-back value sequence.
func (a *Array[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range a.data {
			if !yield(x) {
				return
			}
		}
	}
}

// Backward returns a back-to-front index/value sequence.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := len(a.data) - 1; i >= 0; i-- {
			if !yield(i, a.data[i]) {
				return
			}
		}
	}
}

// Equal reports whether a and b hold the same elements in the same order.
// Complexity: O(n).
func Equal[T comparable](a, b *Array[T]) bool {
	if len(a.data) != len(b.data) {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}

	return true
}

// Compare orders a and b lexicographically. Returns -1, 0, or +1.
// Complexity: O(min(len a, len b)).
func Compare[T cmp.Ordered](a, b *Array[T]) int {
	n := min(len(a.data), len(b.data))
	for i := 0; i < n; i++ {
		if c := cmp.Compare(a.data[i], b.data[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a.data), len(b.data))
}
