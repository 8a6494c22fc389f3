// Package vector: construction/destruction helpers over contiguous ranges.
//
// These helpers are the exception-safety kernel: every bulk operation is
// phrased in terms of them so that a mid-range construction failure always
// unwinds exactly the elements it built and nothing else.
package vector

import (
	"fmt"

	"github.com/katalvlaran/vessel/alloc"
)

// constructFill copy-constructs value into every dead slot of dst.
// On failure at slot k the already-built slots [0, k) are destroyed before
// the error propagates; dst is entirely dead again.
func constructFill[T any](s alloc.Strategy[T], dst []T, value T) error {
	for i := range dst {
		if err := s.Construct(&dst[i], value); err != nil {
			destroyRange(s, dst[:i])

			return fmt.Errorf("%w: %w", ErrConstruct, err)
		}
	}

	return nil
}

// constructCopy copy-constructs src[i] into the dead slot dst[i], in index
// order. len(dst) must equal len(src). On failure the built prefix of dst
// is destroyed; src is never touched.
func constructCopy[T any](s alloc.Strategy[T], dst, src []T) error {
	for i := range src {
		if err := s.Construct(&dst[i], src[i]); err != nil {
			destroyRange(s, dst[:i])

			return fmt.Errorf("%w: %w", ErrConstruct, err)
		}
	}

	return nil
}

// destroyRange destroys every live element of the range. Never fails.
func destroyRange[T any](s alloc.Strategy[T], live []T) {
	for i := range live {
		s.Destroy(&live[i])
	}
}

// relocateRange moves src[i] into the dead slot dst[i] in index order using
// a never-failing relocator. Afterwards src is entirely dead.
func relocateRange[T any](r alloc.Relocator[T], dst, src []T) {
	for i := range src {
		r.Relocate(&dst[i], &src[i])
	}
}

// buildCopy allocates a buffer of the given capacity and copy-constructs
// src into its head. On any failure the new buffer is fully unwound and
// released before the error propagates — no leaked partial state.
func (v *Vector[T]) buildCopy(capacity int, src []T) ([]T, error) {
	buf, err := v.allocate(capacity)
	if err != nil {
		return nil, err
	}
	if err = constructCopy(v.strat, buf[:len(src)], src); err != nil {
		v.strat.Deallocate(buf)

		return nil, err
	}

	return buf, nil
}

// allocate obtains capacity slots from the strategy, mapping failures to
// the package error taxonomy.
func (v *Vector[T]) allocate(capacity int) ([]T, error) {
	buf, err := v.strat.Allocate(capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocation, err)
	}

	return buf, nil
}
