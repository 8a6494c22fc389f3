// Package list implements a generic doubly linked list.
//
// Mutations are local pointer relinks: elements never move in memory, so a
// cursor stays valid until the node it references is unlinked. The list is
// single-threaded; concurrent mutation is undefined.
//
// Errors:
//
//	ErrEmptyList - front/back access or pop on an empty list.
//	ErrBadCursor - an operation received an exhausted or foreign cursor.
package list

import (
	"errors"
	"iter"
)

// Sentinel errors for doubly linked list operations.
var (
	// ErrEmptyList indicates front/back access or pop on an empty list.
	ErrEmptyList = errors.New("list: list is empty")

	// ErrBadCursor indicates an exhausted or nil cursor.
	ErrBadCursor = errors.New("list: invalid cursor")
)

type node[T any] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

// List is a doubly linked list with O(1) access at both ends.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	size int
}

// New creates an empty list.
// Complexity: O(1).
func New[T any]() *List[T] { return &List[T]{} }

// From creates a list holding the given values in order.
// Complexity: O(len(values)).
func From[T any](values ...T) *List[T] {
	l := New[T]()
	l.Assign(values...)

	return l
}

// Len reports the number of elements.
// Complexity: O(1).
func (l *List[T]) Len() int { return l.size }

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool { return l.size == 0 }

// Front returns the first element.
// Returns ErrEmptyList on an empty list.
// Complexity: O(1).
func (l *List[T]) Front() (T, error) {
	if l.head == nil {
		var zero T

		return zero, ErrEmptyList
	}

	return l.head.value, nil
}

// Back returns the last element.
// Returns ErrEmptyList on an empty list.
// Complexity: O(1).
func (l *List[T]) Back() (T, error) {
	if l.tail == nil {
		var zero T

		return zero, ErrEmptyList
	}

	return l.tail.value, nil
}

// PushFront prepends value.
// Complexity: O(1).
func (l *List[T]) PushFront(value T) {
	n := &node[T]{value: value, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.size++
}

// PushBack appends value.
// Complexity: O(1).
func (l *List[T]) PushBack(value T) {
	n := &node[T]{value: value, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size++
}

// PopFront removes and returns the first element.
// Returns ErrEmptyList on an empty list.
// Complexity: O(1).
func (l *List[T]) PopFront() (T, error) {
	if l.head == nil {
		var zero T

		return zero, ErrEmptyList
	}
	value := l.head.value
	l.unlink(l.head)

	return value, nil
}

// PopBack removes and returns the last element.
// Returns ErrEmptyList on an empty list.
// Complexity: O(1).
func (l *List[T]) PopBack() (T, error) {
	if l.tail == nil {
		var zero T

		return zero, ErrEmptyList
	}
	value := l.tail.value
	l.unlink(l.tail)

	return value, nil
}

// Assign replaces the contents with the given values in order.
// Complexity: O(len(values)).
func (l *List[T]) Assign(values ...T) {
	l.Clear()
	for _, v := range values {
		l.PushBack(v)
	}
}

// Clear removes every element.
// Complexity: O(1) — nodes are reclaimed by the garbage collector.
func (l *List[T]) Clear() {
	l.head, l.tail, l.size = nil, nil, 0
}

// Reverse relinks the list back-to-front in place.
// Complexity: O(n).
func (l *List[T]) Reverse() {
	for cur := l.head; cur != nil; {
		next := cur.next
		cur.next, cur.prev = cur.prev, cur.next
		cur = next
	}
	l.head, l.tail = l.tail, l.head
}

// RemoveIf unlinks every element matching pred and reports how many went.
// Complexity: O(n).
func (l *List[T]) RemoveIf(pred func(T) bool) int {
	removed := 0
	for cur := l.head; cur != nil; {
		next := cur.next
		if pred(cur.value) {
			l.unlink(cur)
			removed++
		}
		cur = next
	}

	return removed
}

// UniqueFunc unlinks consecutive elements considered equal by eq, keeping
// the first of each run, and reports how many went.
// Complexity: O(n).
func (l *List[T]) UniqueFunc(eq func(a, b T) bool) int {
	removed := 0
	for cur := l.head; cur != nil && cur.next != nil; {
		if eq(cur.value, cur.next.value) {
			l.unlink(cur.next)
			removed++
		} else {
			cur = cur.next
		}
	}

	return removed
}

// Swap exchanges contents with another list in O(1).
func (l *List[T]) Swap(other *List[T]) {
	l.head, other.head = other.head, l.head
	l.tail, other.tail = other.tail, l.tail
	l.size, other.size = other.size, l.size
}

// All returns a front-to-back index/value sequence.
func (l *List[T]) All() iter.Seq2[int, T] {
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
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.head; cur != nil; cur = cur.next {
			if !yield(cur.value) {
				return
			}
		}
	}
}

// Backward returns a back-to-front value sequence.
func (l *List[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := l.tail; cur != nil; cur = cur.prev {
			if !yield(cur.value) {
				return
			}
		}
	}
}

// unlink detaches n from the chain and fixes head/tail/size.
func (l *List[T]) unlink(n *node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = nil, nil
	l.size--
}

// Remove unlinks every element equal to value and reports how many went.
// Complexity: O(n).
func Remove[T comparable](l *List[T], value T) int {
	return l.RemoveIf(func(x T) bool { return x == value })
}

// Unique removes consecutive duplicates, keeping the first of each run.
// Complexity: O(n).
func Unique[T comparable](l *List[T]) int {
	return l.UniqueFunc(func(a, b T) bool { return a == b })
}
