package list

// Cursor is a non-owning reference to a list node. It stays valid until
// the node it references is unlinked.
type Cursor[T any] struct {
	n *node[T]
}

// Begin returns a cursor at the first element (invalid when empty).
// Complexity: O(1).
func (l *List[T]) Begin() Cursor[T] { return Cursor[T]{n: l.head} }

// RBegin returns a cursor at the last element (invalid when empty).
// Complexity: O(1).
func (l *List[T]) RBegin() Cursor[T] { return Cursor[T]{n: l.tail} }

// Valid reports whether the cursor references a node.
func (c Cursor[T]) Valid() bool { return c.n != nil }

// Next returns the cursor advanced toward the back.
func (c Cursor[T]) Next() Cursor[T] {
	if c.n == nil {
		return c
	}

	return Cursor[T]{n: c.n.next}
}

// Prev returns the cursor moved toward the front.
func (c Cursor[T]) Prev() Cursor[T] {
	if c.n == nil {
		return c
	}

	return Cursor[T]{n: c.n.prev}
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

// Insert links value in directly before the cursor position and returns a
// cursor at the new element.
// Returns ErrBadCursor on an invalid cursor.
// Complexity: O(1).
func (l *List[T]) Insert(c Cursor[T], value T) (Cursor[T], error) {
	if c.n == nil {
		return Cursor[T]{}, ErrBadCursor
	}
	n := &node[T]{value: value, prev: c.n.prev, next: c.n}
	if c.n.prev != nil {
		c.n.prev.next = n
	} else {
		l.head = n
	}
	c.n.prev = n
	l.size++

	return Cursor[T]{n: n}, nil
}

// Splice moves every element of other into l directly before the cursor
// position, preserving their order. No elements are copied, only links
// move; other is left empty. Splicing a list into itself or splicing an
// empty other is a no-op.
// Returns ErrBadCursor on an invalid cursor.
// Complexity: O(1).
func (l *List[T]) Splice(c Cursor[T], other *List[T]) error {
	if c.n == nil {
		return ErrBadCursor
	}
	if other == l || other.head == nil {
		return nil
	}

	other.head.prev = c.n.prev
	if c.n.prev != nil {
		c.n.prev.next = other.head
	} else {
		l.head = other.head
	}
	other.tail.next = c.n
	c.n.prev = other.tail
	l.size += other.size
	other.head, other.tail, other.size = nil, nil, 0

	return nil
}

// Erase unlinks the element under the cursor and returns a cursor at its
// successor (invalid when the erased element was last).
// Returns ErrBadCursor on an invalid cursor.
// Complexity: O(1).
func (l *List[T]) Erase(c Cursor[T]) (Cursor[T], error) {
	if c.n == nil {
		return Cursor[T]{}, ErrBadCursor
	}
	next := c.n.next
	l.unlink(c.n)

	return Cursor[T]{n: next}, nil
}
