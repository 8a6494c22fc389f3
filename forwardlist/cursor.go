package forwardlist

// Cursor is a non-owning reference to a list node. It stays valid until
// the node it references is unlinked; it does not observe relinks around
// itself.
type Cursor[T any] struct {
	n *node[T]
}

// Begin returns a cursor at the first element (invalid when empty).
// Complexity: O(1).
func (l *ForwardList[T]) Begin() Cursor[T] { return Cursor[T]{n: l.head} }

// Valid reports whether the cursor references a node.
func (c Cursor[T]) Valid() bool { return c.n != nil }

// Next returns the cursor advanced by one node (invalid past the tail).
func (c Cursor[T]) Next() Cursor[T] {
	if c.n == nil {
		return c
	}

	return Cursor[T]{n: c.n.next}
}

// Value returns the element under the cursor.
// Returns ErrBadCursor on an invalid cursor.
func (c Cursor[T]) Value() (T, error) {
	if c.n == nil {
		var zero T

		return zero, ErrBadCursor
	}

	return c.n.value, nil
}

// Set overwrites the element under the cursor.
// Returns ErrBadCursor on an invalid cursor.
func (c Cursor[T]) Set(value T) error {
	if c.n == nil {
		return ErrBadCursor
	}
	c.n.value = value

	return nil
}

// InsertAfter links value in directly after the cursor position and
// returns a cursor at the new element.
// Returns ErrBadCursor on an invalid cursor.
// Complexity: O(1).
func (l *ForwardList[T]) InsertAfter(c Cursor[T], value T) (Cursor[T], error) {
	if c.n == nil {
		return Cursor[T]{}, ErrBadCursor
	}
	n := &node[T]{value: value, next: c.n.next}
	c.n.next = n
	l.size++

	return Cursor[T]{n: n}, nil
}

// SpliceAfter moves every element of other into l directly after the
// cursor position, preserving their order. No elements are copied, only
// links move; other is left empty. Splicing a list into itself or
// splicing an empty other is a no-op.
// Returns ErrBadCursor on an invalid cursor.
// Complexity: O(len(other)) to locate other's tail.
func (l *ForwardList[T]) SpliceAfter(c Cursor[T], other *ForwardList[T]) error {
	if c.n == nil {
		return ErrBadCursor
	}
	if other == l || other.head == nil {
		return nil
	}

	tail := other.head
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = c.n.next
	c.n.next = other.head
	l.size += other.size
	other.head, other.size = nil, 0

	return nil
}

// EraseAfter unlinks and returns the element directly after the cursor.
// Returns ErrBadCursor when the cursor is invalid or has no successor.
// Complexity: O(1).
func (l *ForwardList[T]) EraseAfter(c Cursor[T]) (T, error) {
	if c.n == nil || c.n.next == nil {
		var zero T

		return zero, ErrBadCursor
	}
	victim := c.n.next
	c.n.next = victim.next
	l.size--

	return victim.value, nil
}
