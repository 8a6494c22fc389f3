package queue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vessel/queue"
)

// TestFIFO verifies push/pop ordering.
func TestFIFO(t *testing.T) {
	q := queue.New[string]()

	q.Push("a")
	q.Push("b")
	q.Push("c")
	assert.Equal(t, 3, q.Len())

	front, err := q.Front()
	require.NoError(t, err)
	assert.Equal(t, "a", front)
	back, err := q.Back()
	require.NoError(t, err)
	assert.Equal(t, "c", back)

	for _, want := range []string{"a", "b", "c"} {
		got, popErr := q.Pop()
		require.NoError(t, popErr)
		assert.Equal(t, want, got)
	}
	assert.True(t, q.Empty())
}

// TestEmptyErrors verifies every accessor fails the same way.
func TestEmptyErrors(t *testing.T) {
	q := queue.New[int]()

	_, err := q.Front()
	assert.ErrorIs(t, err, queue.ErrEmptyQueue)
	_, err = q.Back()
	assert.ErrorIs(t, err, queue.ErrEmptyQueue)
	_, err = q.Pop()
	assert.ErrorIs(t, err, queue.ErrEmptyQueue)
}

// TestFromClearSwapEqual covers the remaining surface.
func TestFromClearSwapEqual(t *testing.T) {
	a := queue.From(1, 2, 3)
	b := queue.From(1, 2, 3)
	c := queue.From(3, 2, 1)

	assert.True(t, queue.Equal(a, b))
	assert.False(t, queue.Equal(a, c), "same elements, different order")

	a.Swap(c)
	assert.False(t, queue.Equal(a, b))
	assert.True(t, queue.Equal(c, b))

	front, err := a.Pop()
	require.NoError(t, err)
	assert.Equal(t, 3, front)

	a.Clear()
	assert.True(t, a.Empty())
	q := queue.New[int]()
	assert.True(t, queue.Equal(a, q))
}
