package array_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vessel/array"
)

// TestNew verifies construction and the negative-dimension edge.
func TestNew(t *testing.T) {
	a, err := array.New[int](3)
	require.NoError(t, err)
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, []int{0, 0, 0}, a.Data())

	_, err = array.New[int](-1)
	assert.ErrorIs(t, err, array.ErrBadShape)
}

// TestAccessors verifies checked and unchecked element access.
func TestAccessors(t *testing.T) {
	a := array.From(10, 20, 30)

	got, err := a.At(1)
	require.NoError(t, err)
	assert.Equal(t, 20, got)
	_, err = a.At(3)
	assert.ErrorIs(t, err, array.ErrOutOfRange)

	require.NoError(t, a.SetAt(2, 33))
	assert.Equal(t, 33, a.Get(2))
	assert.ErrorIs(t, a.SetAt(-1, 0), array.ErrOutOfRange)

	assert.Equal(t, 10, a.Front())
	assert.Equal(t, 33, a.Back())
}

// TestFillSwap verifies bulk overwrite and the O(1) storage exchange.
func TestFillSwap(t *testing.T) {
	a := array.From(1, 2, 3)
	b := array.From(7, 8, 9)

	a.Fill(5)
	assert.Equal(t, []int{5, 5, 5}, a.Data())

	require.NoError(t, a.Swap(b))
	assert.Equal(t, []int{7, 8, 9}, a.Data())
	assert.Equal(t, []int{5, 5, 5}, b.Data())

	short := array.From(1)
	assert.ErrorIs(t, a.Swap(short), array.ErrShapeMismatch)
}

// TestIteration verifies forward and backward traversal.
func TestIteration(t *testing.T) {
	a := array.From(1, 2, 3, 4)

	var forward, reverse []int
	for _, x := range a.All() {
		forward = append(forward, x)
	}
	for _, x := range a.Backward() {
		reverse = append(reverse, x)
	}

	assert.Equal(t, []int{1, 2, 3, 4}, forward)
	assert.Equal(t, []int{4, 3, 2, 1}, reverse)
}

// TestEqualCompare verifies element-wise equality and lexicographic order.
func TestEqualCompare(t *testing.T) {
	assert.True(t, array.Equal(array.From(1, 2), array.From(1, 2)))
	assert.False(t, array.Equal(array.From(1, 2), array.From(2, 1)))
	assert.False(t, array.Equal(array.From(1), array.From(1, 0)))

	assert.Equal(t, -1, array.Compare(array.From(1, 2), array.From(1, 3)))
	assert.Equal(t, 0, array.Compare(array.From(1, 2), array.From(1, 2)))
	assert.Equal(t, 1, array.Compare(array.From(1, 2, 0), array.From(1, 2)))
}

// TestArray2D verifies shape, indexing, row views, and swap.
func TestArray2D(t *testing.T) {
	m, err := array.New2D[int](2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 6, m.Len())

	require.NoError(t, m.SetAt(1, 2, 42))
	got, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, array.ErrOutOfRange)
	_, err = m.At(0, 3)
	assert.ErrorIs(t, err, array.ErrOutOfRange)

	row, err := m.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 42}, row)

	m.Fill(1)
	var sum int
	for _, r := range m.RowsSeq() {
		for _, x := range r {
			sum += x
		}
	}
	assert.Equal(t, 6, sum)

	n, err := array.New2D[int](2, 3)
	require.NoError(t, err)
	require.NoError(t, m.Swap(n))
	got, err = m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	bad, err := array.New2D[int](3, 2)
	require.NoError(t, err)
	assert.ErrorIs(t, m.Swap(bad), array.ErrShapeMismatch)

	_, err = array.New2D[int](0, 3)
	assert.ErrorIs(t, err, array.ErrBadShape)
}
