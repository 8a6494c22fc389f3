// Package stack provides a LIFO adapter over a vector. Elements enter
// and leave at the back, so every operation is O(1) amortized and the
// underlying storage stays contiguous.
//
// Errors returned by this package:
//   - ErrEmptyStack: Top or Pop on a stack with no elements.
//
// Push forwards the vector's allocation errors unchanged.
package stack

import (
	"errors"

	"github.com/katalvlaran/vessel/vector"
)

// ErrEmptyStack is returned when the top is requested from an empty stack.
var ErrEmptyStack = errors.New("stack: empty stack")

// Stack is a last-in-first-out adapter. Build stacks with New or From.
type Stack[T any] struct {
	elems *vector.Vector[T]
}

// New returns an empty stack. Options configure the backing vector, so
// a custom allocation strategy or an initial capacity carry through.
func New[T any](opts ...vector.Option[T]) (*Stack[T], error) {
	v, err := vector.New(opts...)
	if err != nil {
		return nil, err
	}

	return &Stack[T]{elems: v}, nil
}

// From returns a stack whose top is the last of values.
func From[T any](values ...T) (*Stack[T], error) {
	v, err := vector.NewFrom(values...)
	if err != nil {
		return nil, err
	}

	return &Stack[T]{elems: v}, nil
}

// Len reports the number of stacked elements.
func (s *Stack[T]) Len() int { return s.elems.Len() }

// Empty reports whether the stack holds no elements.
func (s *Stack[T]) Empty() bool { return s.elems.Empty() }

// Push places value on top of the stack.
// Complexity: O(1) amortized.
func (s *Stack[T]) Push(value T) error {
	return s.elems.PushBack(value)
}

// Top returns the most recently pushed element without removing it.
func (s *Stack[T]) Top() (T, error) {
	if s.elems.Empty() {
		var zero T

		return zero, ErrEmptyStack
	}

	return s.elems.Back(), nil
}

// Pop removes and returns the most recently pushed element.
// Complexity: O(1).
func (s *Stack[T]) Pop() (T, error) {
	top, err := s.Top()
	if err != nil {
		return top, err
	}
	s.elems.PopBack()

	return top, nil
}

// Clear removes every element but keeps the allocated storage.
func (s *Stack[T]) Clear() { s.elems.Clear() }

// Swap exchanges the contents of two stacks in O(1).
func (s *Stack[T]) Swap(other *Stack[T]) {
	s.elems.Swap(other.elems)
}

// Equal reports whether two stacks hold the same elements in the same
// order.
func Equal[T comparable](a, b *Stack[T]) bool {
	return vector.Equal(a.elems, b.elems)
}
