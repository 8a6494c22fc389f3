package avltree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vessel/avltree"
)

func keys[K any](seq func(func(K) bool)) []K {
	var out []K
	seq(func(k K) bool {
		out = append(out, k)

		return true
	})

	return out
}

// TestInsertContains verifies membership and duplicate rejection.
func TestInsertContains(t *testing.T) {
	tr := avltree.New[int]()

	assert.True(t, tr.Insert(5))
	assert.True(t, tr.Insert(3))
	assert.True(t, tr.Insert(8))
	assert.False(t, tr.Insert(5), "duplicate keys are rejected")

	assert.Equal(t, 3, tr.Len())
	assert.True(t, tr.Contains(3))
	assert.False(t, tr.Contains(7))
}

// TestInOrder_Sorted verifies the BST invariant over every rotation case.
func TestInOrder_Sorted(t *testing.T) {
	cases := map[string][]int{
		"ascending":  {1, 2, 3, 4, 5, 6, 7},
		"descending": {7, 6, 5, 4, 3, 2, 1},
		"zigzag_LR":  {5, 1, 3},
		"zigzag_RL":  {1, 5, 3},
		"mixed":      {8, 3, 10, 1, 6, 14, 4, 7, 13},
	}

	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			tr := avltree.From(input...)
			got := keys(tr.InOrder())
			require.Len(t, got, len(input))
			assert.IsIncreasing(t, got)
		})
	}
}

// TestBalanced verifies rotations keep the tree shallow. A sequential
// insert of n keys into an unbalanced BST would yield a chain; the AVL
// shape bounds the root-first walk so PreOrder starts near the median.
func TestBalanced(t *testing.T) {
	tr := avltree.New[int]()
	for i := 0; i < 1023; i++ {
		require.True(t, tr.Insert(i))
	}

	root := keys(tr.PreOrder())[0]
	assert.InDelta(t, 511, root, 256, "root of a balanced tree sits near the median")
}

// TestDelete covers leaf, one-child and two-children removal.
func TestDelete(t *testing.T) {
	tr := avltree.From(8, 3, 10, 1, 6, 14, 4, 7, 13)

	assert.False(t, tr.Delete(99), "absent key")

	assert.True(t, tr.Delete(1), "leaf")
	assert.True(t, tr.Delete(14), "one child")
	assert.True(t, tr.Delete(3), "two children")

	assert.Equal(t, 6, tr.Len())
	assert.Equal(t, []int{4, 6, 7, 8, 10, 13}, keys(tr.InOrder()))
	assert.False(t, tr.Contains(3))

	for _, k := range []int{4, 6, 7, 8, 10, 13} {
		assert.True(t, tr.Delete(k))
	}
	assert.True(t, tr.Empty())
}

// TestMinMax verifies extrema and the empty-tree error.
func TestMinMax(t *testing.T) {
	tr := avltree.New[int]()
	_, err := tr.Min()
	assert.ErrorIs(t, err, avltree.ErrEmptyTree)
	_, err = tr.Max()
	assert.ErrorIs(t, err, avltree.ErrEmptyTree)

	tr = avltree.From(5, 2, 9, 1, 7)
	lo, err := tr.Min()
	require.NoError(t, err)
	assert.Equal(t, 1, lo)
	hi, err := tr.Max()
	require.NoError(t, err)
	assert.Equal(t, 9, hi)
}

// TestTraversalOrders pins the three walk orders on a known shape.
func TestTraversalOrders(t *testing.T) {
	// Inserting 2, 1, 3 needs no rotation: root 2, leaves 1 and 3.
	tr := avltree.From(2, 1, 3)

	assert.Equal(t, []int{1, 2, 3}, keys(tr.InOrder()))
	assert.Equal(t, []int{2, 1, 3}, keys(tr.PreOrder()))
	assert.Equal(t, []int{1, 3, 2}, keys(tr.PostOrder()))
}

// TestTraversal_EarlyStop verifies a consumer can break out of a walk.
func TestTraversal_EarlyStop(t *testing.T) {
	tr := avltree.From(1, 2, 3, 4, 5)

	var seen []int
	for k := range tr.InOrder() {
		seen = append(seen, k)
		if len(seen) == 2 {
			break
		}
	}

	assert.Equal(t, []int{1, 2}, seen)
}

// TestCloneSwap verifies deep copies and O(1) exchange.
func TestCloneSwap(t *testing.T) {
	a := avltree.From(1, 2, 3)
	b := a.Clone()

	require.True(t, b.Insert(4))
	assert.Equal(t, 3, a.Len(), "clone mutations do not leak back")
	assert.False(t, a.Contains(4))

	a.Swap(b)
	assert.Equal(t, []int{1, 2, 3, 4}, keys(a.InOrder()))
	assert.Equal(t, []int{1, 2, 3}, keys(b.InOrder()))
}

// TestNewFunc verifies a custom comparator drives the ordering.
func TestNewFunc(t *testing.T) {
	tr := avltree.NewFunc[string](func(a, b string) int {
		return len(a) - len(b)
	})

	assert.True(t, tr.Insert("a"))
	assert.True(t, tr.Insert("ccc"))
	assert.True(t, tr.Insert("bb"))
	assert.False(t, tr.Insert("zz"), "same length compares equal")

	assert.Equal(t, []string{"a", "bb", "ccc"}, keys(tr.InOrder()))
}

// TestClear keeps the comparator usable after a wipe.
func TestClear(t *testing.T) {
	tr := avltree.From(1, 2, 3)
	tr.Clear()
	assert.True(t, tr.Empty())

	assert.True(t, tr.Insert(42))
	assert.True(t, tr.Contains(42))
}
