package vector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vessel/alloc"
	"github.com/katalvlaran/vessel/vector"
)

// TestPushBack_OrderPreserved is the append property: after N appends the
// size is N and element i equals the i-th appended value.
func TestPushBack_OrderPreserved(t *testing.T) {
	const n = 257

	v, err := vector.New[int]()
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		require.NoError(t, v.PushBack(i * 3))
	}

	require.Equal(t, n, v.Len())
	for i := 0; i < n; i++ {
		assert.Equal(t, i*3, v.Get(i), "element %d", i)
	}
}

// TestPopBack verifies removal from the back.
func TestPopBack(t *testing.T) {
	v := mustVec(t, 1, 2, 3)

	v.PopBack()
	assert.Equal(t, []int{1, 2}, contents(v))
	v.PopBack()
	v.PopBack()
	assert.True(t, v.Empty())

	assert.Panics(t, func() { v.PopBack() }, "pop on empty is undefined")
}

// TestInsert_Positions verifies insertion at front, middle, and end.
func TestInsert_Positions(t *testing.T) {
	cases := []struct {
		name string
		pos  int
		want []int
	}{
		{"Front", 0, []int{9, 1, 2, 3}},
		{"Middle", 1, []int{1, 9, 2, 3}},
		{"BeforeLast", 2, []int{1, 2, 9, 3}},
		{"End", 3, []int{1, 2, 3, 9}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := mustVec(t, 1, 2, 3)
			got, err := v.Insert(tc.pos, 9)
			require.NoError(t, err)
			assert.Equal(t, tc.pos, got)
			assert.Equal(t, tc.want, contents(v))
		})
	}
}

// TestInsert_OutOfRange verifies positional bounds: [0, Len()] is legal.
func TestInsert_OutOfRange(t *testing.T) {
	v := mustVec(t, 1, 2)

	_, err := v.Insert(3, 9)
	assert.ErrorIs(t, err, vector.ErrOutOfRange)
	_, err = v.Insert(-1, 9)
	assert.ErrorIs(t, err, vector.ErrOutOfRange)
}

// TestInsertN_ZeroCount is the no-op property: position returned unchanged,
// zero allocation, construction, or destruction.
func TestInsertN_ZeroCount(t *testing.T) {
	c := alloc.NewCounting[int](nil)
	v, err := vector.New(vector.WithStrategy[int](c))
	require.NoError(t, err)
	require.NoError(t, v.Append(1, 2, 3))

	before := c.Stats()
	pos, err := v.InsertN(1, 0, 9)
	require.NoError(t, err)

	assert.Equal(t, 1, pos, "count==0 must return the original position")
	assert.Equal(t, before, c.Stats(), "count==0 must perform no element or storage work")
	assert.Equal(t, []int{1, 2, 3}, contents(v))
}

// TestInsertN_Bulk verifies multi-element insertion in the middle, both
// within capacity and across a growth.
func TestInsertN_Bulk(t *testing.T) {
	v := mustVec(t, 1, 2, 3, 4)
	require.NoError(t, v.Reserve(16))

	pos, err := v.InsertN(2, 3, 7)
	require.NoError(t, err)
	assert.Equal(t, 2, pos)
	assert.Equal(t, []int{1, 2, 7, 7, 7, 3, 4}, contents(v))

	tight := mustVec(t, 1, 2)
	require.NoError(t, tight.ShrinkToFit())
	pos, err = tight.InsertN(1, 4, 5)
	require.NoError(t, err)
	assert.Equal(t, 1, pos)
	assert.Equal(t, []int{1, 5, 5, 5, 5, 2}, contents(tight))
}

// TestInsertN_EqualityBoundary verifies that size+count == capacity stays
// in place: an insert that exactly fills the spare slots must not reallocate.
func TestInsertN_EqualityBoundary(t *testing.T) {
	v := mustVec(t, 1, 2, 3)
	require.NoError(t, v.Reserve(5))

	addr := &v.Data()[0]
	_, err := v.InsertN(1, 2, 8) // 3 + 2 == capacity 5
	require.NoError(t, err)

	assert.Equal(t, []int{1, 8, 8, 2, 3}, contents(v))
	assert.Equal(t, 5, v.Cap())
	assert.Same(t, addr, &v.Data()[0], "exact fit must not reallocate")
}

// TestInsertFrom verifies ordered multi-value insertion.
func TestInsertFrom(t *testing.T) {
	v := mustVec(t, 1, 4)
	pos, err := v.InsertFrom(1, 2, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, pos)
	assert.Equal(t, []int{1, 2, 3, 4}, contents(v))
}

// TestInsert_FailureRestores verifies the strong guarantee on a shifting
// insert whose value construction fails, with and without spare capacity.
func TestInsert_FailureRestores(t *testing.T) {
	var f fuse
	v, err := vector.New(vector.WithStrategy[int](fusedStrategy(&f)))
	require.NoError(t, err)
	require.NoError(t, v.Append(1, 2, 3, 4))
	require.NoError(t, v.Reserve(16))

	elems := contents(v)
	capBefore := v.Cap()

	f.Arm(1)
	_, err = v.Insert(2, 9)
	assert.ErrorIs(t, err, vector.ErrConstruct)
	f.Disarm()

	assert.Equal(t, elems, contents(v), "failed insert must restore contents")
	assert.Equal(t, capBefore, v.Cap())
	assert.Equal(t, len(elems), v.Len())
}

// TestErase_FailureKeepsValidPrefix pins the erase downgrade: when a
// shifting copy fails mid-erase, the already shifted prefix survives,
// the not-yet-shifted tail is dropped, and the vector stays usable at
// the shorter length.
func TestErase_FailureKeepsValidPrefix(t *testing.T) {
	var f fuse
	v, err := vector.New(vector.WithStrategy[int](fusedStrategy(&f)))
	require.NoError(t, err)
	require.NoError(t, v.Append(1, 2, 3, 4, 5))

	// Second copy of the shift (4 moving down) fails: 3 has already
	// moved into the erased slot, 4 and 5 are dropped.
	f.Arm(2)
	_, err = v.Erase(1)
	assert.ErrorIs(t, err, vector.ErrConstruct)
	assert.ErrorIs(t, err, errBoom)
	f.Disarm()

	assert.Equal(t, []int{1, 3}, contents(v))
	assert.Equal(t, 2, v.Len())

	require.NoError(t, v.PushBack(9))
	assert.Equal(t, []int{1, 3, 9}, contents(v), "vector stays usable after the downgrade")
}

// TestErase_Single verifies single-slot erasure and the returned position.
func TestErase_Single(t *testing.T) {
	v := mustVec(t, 1, 2, 3)

	pos, err := v.Erase(1)
	require.NoError(t, err)
	assert.Equal(t, 1, pos, "position of the element now occupying the slot")
	assert.Equal(t, []int{1, 3}, contents(v))

	pos, err = v.Erase(1) // erase last element
	require.NoError(t, err)
	assert.Equal(t, v.Len(), pos, "erasing the last element returns the new end")
	assert.Equal(t, []int{1}, contents(v))

	_, err = v.Erase(5)
	assert.ErrorIs(t, err, vector.ErrOutOfRange)
}

// TestEraseRange verifies range erasure semantics including the
// last == end property.
func TestEraseRange(t *testing.T) {
	cases := []struct {
		name        string
		first, last int
		want        []int
		wantPos     int
	}{
		{"Middle", 1, 3, []int{1, 4, 5}, 1},
		{"Front", 0, 2, []int{3, 4, 5}, 0},
		{"TailToEnd", 2, 5, []int{1, 2}, 2}, // last == end: returns new end
		{"All", 0, 5, []int{}, 0},
		{"EmptyRange", 2, 2, []int{1, 2, 3, 4, 5}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := mustVec(t, 1, 2, 3, 4, 5)
			sizeBefore := v.Len()

			pos, err := v.EraseRange(tc.first, tc.last)
			require.NoError(t, err)

			assert.Equal(t, tc.wantPos, pos)
			assert.Equal(t, tc.want, contents(v))
			assert.Equal(t, sizeBefore-(tc.last-tc.first), v.Len(),
				"size must shrink by exactly the range width")
		})
	}
}

// TestEraseRange_Malformed verifies range validation.
func TestEraseRange_Malformed(t *testing.T) {
	v := mustVec(t, 1, 2, 3)

	_, err := v.EraseRange(2, 1)
	assert.ErrorIs(t, err, vector.ErrBadRange)
	_, err = v.EraseRange(-1, 2)
	assert.ErrorIs(t, err, vector.ErrBadRange)
	_, err = v.EraseRange(0, 4)
	assert.ErrorIs(t, err, vector.ErrBadRange)
}

// TestResize verifies shrink, growth, and the fill variant.
func TestResize(t *testing.T) {
	v := mustVec(t, 1, 2, 3, 4)

	require.NoError(t, v.Resize(2))
	assert.Equal(t, []int{1, 2}, contents(v))

	require.NoError(t, v.ResizeWith(5, 7))
	assert.Equal(t, []int{1, 2, 7, 7, 7}, contents(v))

	require.NoError(t, v.Resize(5), "resize to current size is a no-op")
	assert.Equal(t, 5, v.Len())

	require.NoError(t, v.Resize(0))
	assert.True(t, v.Empty())

	assert.ErrorIs(t, v.Resize(-1), vector.ErrLength)
}

// TestSwap_ConstantTime verifies swap exchanges contents with zero
// element-level construction or destruction.
func TestSwap_ConstantTime(t *testing.T) {
	ca := alloc.NewCounting[int](nil)
	cb := alloc.NewCounting[int](nil)

	a, err := vector.New(vector.WithStrategy[int](ca))
	require.NoError(t, err)
	require.NoError(t, a.Append(1, 2, 3))

	b, err := vector.New(vector.WithStrategy[int](cb))
	require.NoError(t, err)
	require.NoError(t, b.Append(9, 8))

	beforeA, beforeB := ca.Stats(), cb.Stats()
	a.Swap(b)

	assert.Equal(t, []int{9, 8}, contents(a))
	assert.Equal(t, []int{1, 2, 3}, contents(b))
	assert.Equal(t, beforeA, ca.Stats(), "swap must move no elements")
	assert.Equal(t, beforeB, cb.Stats(), "swap must move no elements")

	// The strategy travels with its buffer.
	assert.Same(t, cb, a.Strategy())
	assert.Same(t, ca, b.Strategy())
}
