package vector_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vessel/alloc"
	"github.com/katalvlaran/vessel/vector"
)

// errBoom is the failure injected by the fused strategies below.
var errBoom = errors.New("boom")

// fuse arms a construction failure: once Arm(k) is called, the k-th
// subsequent construction fails with errBoom.
type fuse struct {
	armed     bool
	remaining int
}

// Arm schedules the k-th construction from now (1-based) to fail.
func (f *fuse) Arm(k int) {
	f.armed = true
	f.remaining = k
}

// Disarm cancels any scheduled failure.
func (f *fuse) Disarm() { f.armed = false }

// fusedStrategy returns a hook-based strategy (copies can fail, no
// relocation) wired to the given fuse.
func fusedStrategy(f *fuse) alloc.Strategy[int] {
	s, err := alloc.NewFuncs(func(dst *int, v int) error {
		if f.armed {
			f.remaining--
			if f.remaining == 0 {
				return errBoom
			}
		}
		*dst = v

		return nil
	})
	if err != nil {
		panic(err)
	}

	return s
}

// mustVec builds a vector from a literal sequence, failing the test on error.
func mustVec(t *testing.T, values ...int) *vector.Vector[int] {
	t.Helper()
	v, err := vector.NewFrom(values...)
	require.NoError(t, err)

	return v
}

// contents drains a vector front-to-back into a plain slice.
func contents(v *vector.Vector[int]) []int {
	out := make([]int, 0, v.Len())
	for _, x := range v.All() {
		out = append(out, x)
	}

	return out
}
