package vector

// Len reports the number of live elements.
// Complexity: O(1).
func (v *Vector[T]) Len() int { return v.size }

// Cap reports the number of slots for which storage is allocated.
// Complexity: O(1).
func (v *Vector[T]) Cap() int { return len(v.buf) }

// MaxLen reports the implementation-defined maximum element count.
func (v *Vector[T]) MaxLen() int { return maxLen }

// Empty reports whether the vector holds no live elements.
// Complexity: O(1).
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// At returns the element at index i with bounds checking.
// Returns ErrOutOfRange when i is outside [0, Len()).
// Complexity: O(1).
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= v.size {
		var zero T

		return zero, ErrOutOfRange
	}

	return v.buf[i], nil
}

// SetAt overwrites the element at index i with bounds checking.
// Returns ErrOutOfRange when i is outside [0, Len()).
// Complexity: O(1).
func (v *Vector[T]) SetAt(i int, value T) error {
	if i < 0 || i >= v.size {
		return ErrOutOfRange
	}
	v.buf[i] = value

	return nil
}

// Get returns the element at index i without bounds checking.
// The caller must guarantee 0 <= i < Len(); anything else is undefined.
func (v *Vector[T]) Get(i int) T { return v.buf[i] }

// Set overwrites the element at index i without bounds checking.
// The caller must guarantee 0 <= i < Len(); anything else is undefined.
func (v *Vector[T]) Set(i int, value T) { v.buf[i] = value }

// Front returns the first element. Undefined (panics) on an empty vector.
func (v *Vector[T]) Front() T { return v.buf[:v.size][0] }

// Back returns the last element. Undefined (panics) on an empty vector.
func (v *Vector[T]) Back() T { return v.buf[v.size-1] }

// Data returns the live elements as a slice sharing the vector's buffer.
// The slice is a view: writes through it are visible to the vector, and it
// is invalidated by the same mutations that invalidate iterators. Returns
// nil when the vector is empty. The view's capacity is clipped so that
// appending to it cannot touch the vector's spare slots.
// Complexity: O(1).
func (v *Vector[T]) Data() []T {
	if v.size == 0 {
		return nil
	}

	return v.buf[:v.size:v.size]
}
