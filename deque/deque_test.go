package deque_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vessel/deque"
)

func contents[T any](d *deque.Deque[T]) []T {
	out := make([]T, 0, d.Len())
	for x := range d.Values() {
		out = append(out, x)
	}

	return out
}

// TestBothEnds verifies growth and shrinkage at either end.
func TestBothEnds(t *testing.T) {
	d := deque.New[int]()

	d.PushBack(2)
	d.PushFront(1)
	d.PushBack(3)
	assert.Equal(t, []int{1, 2, 3}, contents(d))

	front, err := d.PopFront()
	require.NoError(t, err)
	assert.Equal(t, 1, front)

	back, err := d.PopBack()
	require.NoError(t, err)
	assert.Equal(t, 3, back)

	assert.Equal(t, 1, d.Len())
	only, err := d.Front()
	require.NoError(t, err)
	assert.Equal(t, 2, only)
	only, err = d.Back()
	require.NoError(t, err)
	assert.Equal(t, 2, only)
}

// TestEmptyErrors verifies every accessor fails the same way.
func TestEmptyErrors(t *testing.T) {
	d := deque.New[int]()

	_, err := d.Front()
	assert.ErrorIs(t, err, deque.ErrEmptyDeque)
	_, err = d.Back()
	assert.ErrorIs(t, err, deque.ErrEmptyDeque)
	_, err = d.PopFront()
	assert.ErrorIs(t, err, deque.ErrEmptyDeque)
	_, err = d.PopBack()
	assert.ErrorIs(t, err, deque.ErrEmptyDeque)
}

// TestIterationOrders verifies both traversal directions.
func TestIterationOrders(t *testing.T) {
	d := deque.From(1, 2, 3)

	assert.Equal(t, []int{1, 2, 3}, contents(d))

	var rev []int
	for x := range d.Backward() {
		rev = append(rev, x)
	}
	assert.Equal(t, []int{3, 2, 1}, rev)
}

// TestClearSwapEqual covers the remaining surface.
func TestClearSwapEqual(t *testing.T) {
	a := deque.From(1, 2)
	b := deque.From(1, 2)
	c := deque.From(2, 1)

	assert.True(t, deque.Equal(a, b))
	assert.False(t, deque.Equal(a, c))

	a.Swap(c)
	assert.True(t, deque.Equal(c, b))
	assert.Equal(t, []int{2, 1}, contents(a))

	a.Clear()
	assert.True(t, a.Empty())
}
