package array

import "iter"

// Array2D is a fixed-shape two-dimensional array stored row-major in one
// contiguous buffer.
type Array2D[T any] struct {
	rows, cols int
	data       []T
}

// New2D creates a rows x cols array of zero-value elements.
// Returns ErrBadShape when either dimension is negative, or when exactly
// one of them is zero.
// Complexity: O(rows*cols).
func New2D[T any](rows, cols int) (*Array2D[T], error) {
	if rows < 0 || cols < 0 || (rows == 0) != (cols == 0) {
		return nil, ErrBadShape
	}

	return &Array2D[T]{rows: rows, cols: cols, data: make([]T, rows*cols)}, nil
}

// Rows reports the number of rows.
func (a *Array2D[T]) Rows() int { return a.rows }

// Cols reports the number of columns.
func (a *Array2D[T]) Cols() int { return a.cols }

// Len reports the total element count.
func (a *Array2D[T]) Len() int { return len(a.data) }

// At returns the element at row r, column c with bounds checking.
// Complexity: O(1).
func (a *Array2D[T]) At(r, c int) (T, error) {
	if r < 0 || r >= a.rows || c < 0 || c >= a.cols {
		var zero T

		return zero, ErrOutOfRange
	}

	return a.data[r*a.cols+c], nil
}

// SetAt overwrites the element at row r, column c with bounds checking.
// Complexity: O(1).
func (a *Array2D[T]) SetAt(r, c int, value T) error {
	if r < 0 || r >= a.rows || c < 0 || c >= a.cols {
		return ErrOutOfRange
	}
	a.data[r*a.cols+c] = value

	return nil
}

// Row returns row r as a slice sharing the array's storage.
// Complexity: O(1).
func (a *Array2D[T]) Row(r int) ([]T, error) {
	if r < 0 || r >= a.rows {
		return nil, ErrOutOfRange
	}

	return a.data[r*a.cols : (r+1)*a.cols : (r+1)*a.cols], nil
}

// Fill overwrites every element with value.
// Complexity: O(rows*cols).
func (a *Array2D[T]) Fill(value T) {
	for i := range a.data {
		a.data[i] = value
	}
}

// Swap exchanges storage with another array of the same shape in O(1).
// Returns ErrShapeMismatch when the shapes differ.
func (a *Array2D[T]) Swap(other *Array2D[T]) error {
	if a.rows != other.rows || a.cols != other.cols {
		return ErrShapeMismatch
	}
	a.data, other.data = other.data, a.data

	return nil
}

// RowsSeq returns a top-to-bottom sequence of row index and row view.
func (a *Array2D[T]) RowsSeq() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for r := 0; r < a.rows; r++ {
			if !yield(r, a.data[r*a.cols:(r+1)*a.cols:(r+1)*a.cols]) {
				return
			}
		}
	}
}
