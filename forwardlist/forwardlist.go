// Package forwardlist implements a generic singly linked list.
//
// Every mutation is a local pointer relink: no element ever moves in
// memory, so cursors stay valid until the node they reference is erased.
// The list is single-threaded; concurrent mutation is undefined.
//
// Errors:
//
//	ErrEmptyList - front access or pop on an empty list.
//	ErrBadCursor - an operation received an exhausted or foreign cursor.
//	ErrLength    - negative length requested.
package forwardlist

import (
	"errors"
	"iter"
)

// Sentinel errors for singly linked list operations.
var (
	// ErrEmptyList indicates front access or pop on an empty list.
	ErrEmptyList = errors.New("forwardlist: list is empty")

	// ErrBadCursor indicates an exhausted or nil cursor.
	ErrBadCursor = errors.New("forwardlist: invalid cursor")

	// ErrLength indicates a negative length was requested.
	ErrLength = errors.New("forwardlist: invalid length")
)

type node[T any] struct {
	value T
	next  *node[T]
}

// ForwardList is a singly linked list with head access only.
type ForwardList[T any] struct {
	head *node[T]
	size int
}

// New creates an empty list.
// Complexity: O(1).
func New[T any]() *ForwardList[T] { return &ForwardList[T]{} }

// From creates a list holding the given values in order.
// Complexity: O(len(values)).
func From[T any](values ...T) *ForwardList[T] {
	l := New[T]()
	l.Assign(values...)

	return l
}

// Len reports the number of elements.
// Complexity: O(1).
func (l *ForwardList[T]) Len() int { return l.size }

// Empty reports whether the list has no elements.
func (l *ForwardList[T]) Empty() bool { return l.size == 0 }

// Front returns the first element.
// Returns ErrEmptyList on an empty list.
// Complexity: O(1).
func (l *ForwardList[T]) Front() (T, error) {
	if l.head == nil {
		var zero T

		return zero, ErrEmptyList
	}

	return l.head.value, nil
}

// PushFront prepends value.
// Complexity: O(1).
func (l *ForwardList[T]) PushFront(value T) {
	l.head = &node[T]{value: value, next: l.head}
	l.size++
}

// PopFront removes and returns the first element.
// Returns ErrEmptyList on an empty list.
// Complexity: O(1).
func (l *ForwardList[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T

		return zero, ErrEmptyList
	}
	value := l.head.value
	l.head = l.head.next
	l.size--

	return value, nil
}

// Assign replaces the contents with the given values in order.
// Complexity: O(len(values)).
func (l *ForwardList[T]) Assign(values ...T) {
	l.Clear()
	// Build back-to-front so the result reads front-to-back.
	for i := len(values) - 1; i >= 0; i-- {
		l.PushFront(values[i])
	}
}

// Clear removes every element.
// Complexity: O(1) — nodes are reclaimed by the garbage collector.
func (l *ForwardList[T]) Clear() {
	l.head = nil
	l.size = 0
}

// Resize adjusts the element count to n, appending zero values or cutting
// the tail. Returns ErrLength for negative n.
// Complexity: O(n).
func (l *ForwardList[T]) Resize(n int) error {
	if n < 0 {
		return ErrLength
	}
	if n == 0 {
		l.Clear()

		return nil
	}

	var zero T
	if l.head == nil {
		l.PushFront(zero)
	}
	cur := l.head
	for i := 1; i < n; i++ {
		if cur.next == nil {
			cur.next = &node[T]{value: zero}
			l.size++
		}
		cur = cur.next
	}
	if cur.next != nil {
		cur.next = nil
		l.size = n
	}

	return nil
}

// Reverse relinks the list back-to-front in place.
// Complexity: O(n).
func (l *ForwardList[T]) Reverse() {
	var prev *node[T]
	for cur := l.head; cur != nil; {
		next := cur.next
		cur.next = prev
		prev, cur = cur, next
	}
	l.head = prev
}

// RemoveIf unlinks every element matching pred and reports how many went.
// Complexity: O(n).
func (l *ForwardList[T]) RemoveIf(pred func(T) bool) int {
	removed := 0
	for l.head != nil && pred(l.head.value) {
		l.head = l.head.next
		removed++
	}
	for cur := l.head; cur != nil && cur.next != nil; {
		if pred(cur.next.value) {
			cur.next = cur.next.next
			removed++
		} else {
			cur = cur.next
		}
	}
	l.size -= removed

	return removed
}

// UniqueFunc unlinks consecutive elements considered equal by eq, keeping
// the first of each run, and reports how many went.
// Complexity: O(n).
func (l *ForwardList[T]) UniqueFunc(eq func(a, b T) bool) int {
	removed := 0
	for cur := l.head; cur != nil && cur.next != nil; {
		if eq(cur.value, cur.next.value) {
			cur.next = cur.next.next
			removed++
		} else {
			cur = cur.next
		}
	}
	l.size -= removed

	return removed
}

// Swap exchanges contents with another list in O(1).
func (l *ForwardList[T]) Swap(other *ForwardList[T]) {
	l.head, other.head = other.head, l.head
	l.size, other.size = other.size, l.size
}

// All returns a front-to-back index/value sequence.
func (l *ForwardList[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(i, cur.value) {
				return
			}
			i++
		}
	}
}

// Values returns a front-to-back value sequence.
func (l *ForwardList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}

// Remove unlinks every element equal to value and reports how many went.
// Complexity: O(n).
func Remove[T comparable](l *ForwardList[T], value T) int {
	return l.RemoveIf(func(x T) bool { return x == value })
}

// Unique removes consecutive duplicates, keeping the first of each run.
// Complexity: O(n).
func Unique[T comparable](l *ForwardList[T]) int {
	return l.UniqueFunc(func(a, b T) bool { return a == b })
}
