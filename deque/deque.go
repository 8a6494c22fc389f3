// Package deque provides a double-ended adapter over a doubly linked
// list. Elements enter and leave at either end in O(1) and pointers to
// the remaining elements stay valid across every mutation.
//
// Errors returned by this package:
//   - ErrEmptyDeque: an end is requested from a deque with no elements.
package deque

import (
	"errors"
	"iter"

	"github.com/katalvlaran/vessel/list"
)

// ErrEmptyDeque is returned when an element is requested from an empty deque.
var ErrEmptyDeque = errors.New("deque: empty deque")

// Deque is a double-ended queue. The zero value is not usable; build
// deques with New or From.
type Deque[T any] struct {
	elems *list.List[T]
}

// New returns an empty deque.
func New[T any]() *Deque[T] {
	return &Deque[T]{elems: list.New[T]()}
}

// From returns a deque holding values front to back.
func From[T any](values ...T) *Deque[T] {
	return &Deque[T]{elems: list.From(values...)}
}

// Len reports the number of elements.
func (d *Deque[T]) Len() int { return d.elems.Len() }

// Empty reports whether the deque holds no elements.
func (d *Deque[T]) Empty() bool { return d.elems.Empty() }

// PushFront prepends value.
// Complexity: O(1).
func (d *Deque[T]) PushFront(value T) {
	d.elems.PushFront(value)
}

// PushBack appends value.
// Complexity: O(1).
func (d *Deque[T]) PushBack(value T) {
	d.elems.PushBack(value)
}

// Front returns the first element without removing it.
func (d *Deque[T]) Front() (T, error) {
	front, err := d.elems.Front()
	if err != nil {
		var zero T

		return zero, ErrEmptyDeque
	}

	return front, nil
}

// Back returns the last element without removing it.
func (d *Deque[T]) Back() (T, error) {
	back, err := d.elems.Back()
	if err != nil {
		var zero T

		return zero, ErrEmptyDeque
	}

	return back, nil
}

// PopFront removes and returns the first element.
// Complexity: O(1).
func (d *Deque[T]) PopFront() (T, error) {
	front, err := d.elems.PopFront()
	if err != nil {
		var zero T

		return zero, ErrEmptyDeque
	}

	return front, nil
}

// PopBack removes and returns the last element.
// Complexity: O(1).
func (d *Deque[T]) PopBack() (T, error) {
	back, err := d.elems.PopBack()
	if err != nil {
		var zero T

		return zero, ErrEmptyDeque
	}

	return back, nil
}

// Clear removes every element.
func (d *Deque[T]) Clear() { d.elems.Clear() }

// Swap exchanges the contents of two deques in O(1).
func (d *Deque[T]) Swap(other *Deque[T]) {
	d.elems.Swap(other.elems)
}

// Values yields every element front to back.
func (d *Deque[T]) Values() iter.Seq[T] { return d.elems.Values() }

// Backward yields every element back to front.
func (d *Deque[T]) Backward() iter.Seq[T] { return d.elems.Backward() }

// Equal reports whether two deques hold the same elements in the same
// order.
func Equal[T comparable](a, b *Deque[T]) bool {
	if a.Len() != b.Len() {
		return false
	}
	ca, cb := a.elems.Begin(), b.elems.Begin()
	for ca.Valid() {
		va, _ := ca.Value()
		vb, _ := cb.Value()
		if va != vb {
			return false
		}
		ca, cb = ca.Next(), cb.Next()
	}

	return true
}
