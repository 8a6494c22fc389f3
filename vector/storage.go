// Package vector: storage manager and growth policy.
//
// Reallocation here is THE core algorithm of the package: the old buffer is
// never released, and old elements are never destroyed, before every live
// element exists in the new buffer. That ordering is what upgrades the
// guarantee from best-effort to strong.
package vector

import "github.com/katalvlaran/vessel/alloc"

// growthFactor is the geometric growth multiplier. Doubling keeps the total
// relocation work across N sequential appends at O(N).
const growthFactor = 2

// grownCapacity returns the smallest capacity in the doubling sequence
// max(1, current*2), current*4, ... that admits target elements.
func grownCapacity(current, target int) int {
	next := current
	if next == 0 {
		next = 1
	}
	for next < target {
		if next > maxLen/growthFactor {
			return maxLen
		}
		next *= growthFactor
	}

	return next
}

// reallocate transfers the live elements into a freshly allocated buffer of
// the given capacity and adopts it, preserving the strong guarantee:
//
//  1. allocate the new buffer; on failure the vector is untouched;
//  2. relocate (never-failing move) when the strategy supports it — the
//     fast path — otherwise copy-construct each element, unwinding the new
//     buffer completely on a mid-copy failure;
//  3. only once every element exists in the new buffer, destroy the old
//     elements, release the old buffer, and adopt the new state.
//
// capacity must be >= v.size. Complexity: O(n).
func (v *Vector[T]) reallocate(capacity int) error {
	newBuf, err := v.allocate(capacity)
	if err != nil {
		return err
	}

	live := v.buf[:v.size]
	if r, ok := alloc.RelocatorOf(v.strat); ok {
		// Relocation cannot fail, so the old slots simply become dead.
		relocateRange(r, newBuf[:v.size], live)
	} else {
		if err = constructCopy(v.strat, newBuf[:v.size], live); err != nil {
			v.strat.Deallocate(newBuf)

			return err // old buffer still fully valid
		}
		destroyRange(v.strat, live)
	}

	v.strat.Deallocate(v.buf)
	v.buf = newBuf
	v.gen++

	return nil
}

// grow ensures capacity for at least target elements, using the geometric
// growth policy. No-op when the current capacity already suffices.
func (v *Vector[T]) grow(target int) error {
	if target <= len(v.buf) {
		return nil
	}

	return v.reallocate(grownCapacity(len(v.buf), target))
}

// Reserve guarantees capacity for at least n elements. A no-op when
// n <= Cap(); otherwise a strong-guarantee reallocation to exactly n.
// Returns ErrLength for n outside [0, MaxLen], ErrAllocation or ErrConstruct
// on a failed reallocation (vector unchanged).
// Complexity: O(n) on growth, O(1) otherwise.
func (v *Vector[T]) Reserve(n int) error {
	if n < 0 || n > maxLen {
		return ErrLength
	}
	if n <= len(v.buf) {
		return nil
	}

	return v.reallocate(n)
}

// ShrinkToFit reduces capacity to exactly Len() via a strong-guarantee
// reallocation; a no-op when the capacity already matches.
// Complexity: O(n).
func (v *Vector[T]) ShrinkToFit() error {
	if len(v.buf) == v.size {
		return nil
	}

	return v.reallocate(v.size)
}

// Clear destroys every live element and resets the size to zero.
// Capacity is retained. Invalidates all iterators.
// Complexity: O(n).
func (v *Vector[T]) Clear() {
	destroyRange(v.strat, v.buf[:v.size])
	v.size = 0
	v.gen++
}
