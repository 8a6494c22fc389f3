// Package queue provides a FIFO adapter over a doubly linked list.
// Elements enter at the back and leave at the front in O(1) with no
// reallocation, so pushes never invalidate earlier elements.
//
// Errors returned by this package:
//   - ErrEmptyQueue: Front, Back or Pop on a queue with no elements.
package queue

import (
	"errors"

	"github.com/katalvlaran/vessel/list"
)

// ErrEmptyQueue is returned when an element is requested from an empty queue.
var ErrEmptyQueue = errors.New("queue: empty queue")

// Queue is a first-in-first-out adapter. The zero value is not usable;
// build queues with New or From.
type Queue[T any] struct {
	elems *list.List[T]
}

// New returns an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{elems: list.New[T]()}
}

// From returns a queue that pops values in the given order.
func From[T any](values ...T) *Queue[T] {
	return &Queue[T]{elems: list.From(values...)}
}

// Len reports the number of queued elements.
func (q *Queue[T]) Len() int { return q.elems.Len() }

// Empty reports whether the queue holds no elements.
func (q *Queue[T]) Empty() bool { return q.elems.Empty() }

// Push appends value at the back of the queue.
// Complexity: O(1).
func (q *Queue[T]) Push(value T) {
	q.elems.PushBack(value)
}

// Front returns the oldest element without removing it.
func (q *Queue[T]) Front() (T, error) {
	front, err := q.elems.Front()
	if err != nil {
		var zero T

		return zero, ErrEmptyQueue
	}

	return front, nil
}

// Back returns the most recently pushed element without removing it.
func (q *Queue[T]) Back() (T, error) {
	back, err := q.elems.Back()
	if err != nil {
		var zero T

		return zero, ErrEmptyQueue
	}

	return back, nil
}

// Pop removes and returns the oldest element.
// Complexity: O(1).
func (q *Queue[T]) Pop() (T, error) {
	front, err := q.elems.PopFront()
	if err != nil {
		var zero T

		return zero, ErrEmptyQueue
	}

	return front, nil
}

// Clear removes every element.
func (q *Queue[T]) Clear() { q.elems.Clear() }

// Swap exchanges the contents of two queues in O(1).
func (q *Queue[T]) Swap(other *Queue[T]) {
	q.elems.Swap(other.elems)
}

// Equal reports whether two queues hold the same elements in the same
// order.
func Equal[T comparable](a, b *Queue[T]) bool {
	if a.elems.Len() != b.elems.Len() {
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
