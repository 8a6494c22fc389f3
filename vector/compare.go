// Package vector: free functions — equality, lexicographic ordering, and
// value-based erasure.
package vector

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/vessel/alloc"
)

// Equal reports whether a and b hold the same elements in the same order.
// Complexity: O(n).
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if a.buf[i] != b.buf[i] {
			return false
		}
	}

	return true
}

// EqualFunc is Equal with a caller-supplied element equality predicate.
// Complexity: O(n).
func EqualFunc[T any](a, b *Vector[T], eq func(x, y T) bool) bool {
	if a.size != b.size {
		return false
	}
	for i := 0; i < a.size; i++ {
		if !eq(a.buf[i], b.buf[i]) {
			return false
		}
	}

	return true
}

// Compare orders a and b lexicographically: the first unequal element pair
// decides; otherwise the shorter vector is smaller. Returns -1, 0, or +1.
// Complexity: O(min(len a, len b)).
func Compare[T cmp.Ordered](a, b *Vector[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare with a caller-supplied three-way element compare.
// Complexity: O(min(len a, len b)).
func CompareFunc[T any](a, b *Vector[T], compare func(x, y T) int) int {
	n := min(a.size, b.size)
	for i := 0; i < n; i++ {
		if c := compare(a.buf[i], b.buf[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(a.size, b.size)
}

// EraseValue removes every element equal to value, preserving the order of
// the survivors, and returns the number removed. The removal is a single
// compacting pass (remove-then-truncate); surviving elements relocate or
// copy-construct into the vacated slots exactly once.
// Complexity: O(n).
func EraseValue[T comparable](v *Vector[T], value T) (int, error) {
	return EraseIf(v, func(x T) bool { return x == value })
}

// EraseIf removes every element matching pred, preserving the order of the
// survivors, and returns the number removed. Under a strategy whose copies
// can fail, a mid-pass failure drops the not-yet-compacted tail and keeps
// the vector valid (basic guarantee), mirroring EraseRange.
// Complexity: O(n).
func EraseIf[T any](v *Vector[T], pred func(T) bool) (int, error) {
	reloc, canReloc := alloc.RelocatorOf(v.strat)

	removed, write := 0, 0
	for read := 0; read < v.size; read++ {
		if pred(v.buf[read]) {
			// Destroy matches eagerly so every slot in [write, read) is
			// dead by the time a survivor moves down into it.
			v.strat.Destroy(&v.buf[read])
			removed++

			continue
		}
		if write != read {
			if canReloc {
				reloc.Relocate(&v.buf[write], &v.buf[read])
			} else {
				if err := v.strat.Construct(&v.buf[write], v.buf[read]); err != nil {
					destroyRange(v.strat, v.buf[read:v.size])
					v.size = write
					v.gen++

					return removed, fmt.Errorf("%w: %w", ErrConstruct, err)
				}
				v.strat.Destroy(&v.buf[read])
			}
		}
		write++
	}
	if removed > 0 {
		v.size = write
		v.gen++
	}

	return removed, nil
}
