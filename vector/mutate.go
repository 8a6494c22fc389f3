// Package vector: the mutation surface — push/pop, positional insert,
// erase, resize, assign, swap.
//
// Positional insertion has three disjoint paths:
//
//   - append fast path: position == Len() and capacity suffices; constructs
//     straight into the dead tail, no shifting, no invalidation;
//   - in-place shift: capacity suffices and the strategy relocates; the tail
//     moves up in reverse order so no unread slot is overwritten, and a
//     failed value construction rolls the tail back exactly;
//   - rebuild: capacity is insufficient, or element copies can fail. One new
//     buffer is populated in three contiguous phases — the new values first
//     (so a failure leaves the old buffer untouched), then prefix, then
//     suffix — avoiding any double shift.
//
// Erase under a strategy whose copies can fail provides the basic guarantee
// only (the vector stays valid, trailing elements past the failure point are
// dropped); every other fallible operation here is strong.
package vector

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/vessel/alloc"
)

// PushBack appends value to the end, growing the capacity geometrically
// when required. Strong guarantee: on failure the vector is unchanged.
// Complexity: amortized O(1).
func (v *Vector[T]) PushBack(value T) error {
	_, err := v.InsertN(v.size, 1, value)

	return err
}

// Append appends every value in order. Strong guarantee.
// Complexity: amortized O(len(values)).
func (v *Vector[T]) Append(values ...T) error {
	_, err := v.InsertFrom(v.size, values...)

	return err
}

// PopBack destroys the last element without bounds checking.
// Undefined (panics) on an empty vector. Never invalidates iterators
// before the removed position.
// Complexity: O(1).
func (v *Vector[T]) PopBack() {
	v.strat.Destroy(&v.buf[v.size-1])
	v.size--
}

// Insert inserts value before position i, shifting the tail one slot
// toward the end. Returns the index of the inserted element.
// Returns ErrOutOfRange when i is outside [0, Len()].
// Complexity: O(n - i), plus O(n) on growth.
func (v *Vector[T]) Insert(i int, value T) (int, error) {
	return v.InsertN(i, 1, value)
}

// InsertN inserts count copies of value before position i. count == 0 is a
// no-op returning i: no allocation, construction, or destruction happens.
// Returns the index of the first inserted element (i) and any failure, with
// the vector unchanged on failure (strong guarantee).
// Complexity: O(n - i + count), plus O(n) on growth.
func (v *Vector[T]) InsertN(i, count int, value T) (int, error) {
	if i < 0 || i > v.size {
		return 0, ErrOutOfRange
	}
	if count < 0 || count > maxLen-v.size {
		return 0, ErrLength
	}
	if count == 0 {
		return i, nil
	}

	return i, v.insert(i, count, func(dst []T) error {
		return constructFill(v.strat, dst, value)
	})
}

// InsertFrom inserts the given values, in order, before position i.
// Semantics match InsertN.
// Complexity: O(n - i + len(values)), plus O(n) on growth.
func (v *Vector[T]) InsertFrom(i int, values ...T) (int, error) {
	if i < 0 || i > v.size {
		return 0, ErrOutOfRange
	}
	if len(values) > maxLen-v.size {
		return 0, ErrLength
	}
	if len(values) == 0 {
		return i, nil
	}

	return i, v.insert(i, len(values), func(dst []T) error {
		return constructCopy(v.strat, dst, values)
	})
}

// insert dispatches one of the three insertion paths. fill constructs the
// count new elements into a dead destination range and fully unwinds it on
// failure.
func (v *Vector[T]) insert(i, count int, fill func(dst []T) error) error {
	inPlace := v.size+count <= len(v.buf)

	// Dedicated append fast path: no shift logic at all.
	if inPlace && i == v.size {
		if err := fill(v.buf[i : i+count]); err != nil {
			return err
		}
		v.size += count

		return nil
	}

	if inPlace {
		if r, ok := alloc.RelocatorOf(v.strat); ok {
			return v.insertShift(r, i, count, fill)
		}
		// Copies can fail: an in-place shift could not be rolled back, so
		// rebuild into a fresh buffer to keep the guarantee strong.
	}

	return v.insertRebuild(i, count, fill)
}

// insertShift opens a count-wide gap at i by relocating the tail in reverse
// order (highest index first), then constructs the new values into the gap.
// If the construction fails, the tail is relocated back — relocation never
// fails, so the rollback restores the exact pre-call state.
func (v *Vector[T]) insertShift(r alloc.Relocator[T], i, count int, fill func(dst []T) error) error {
	for j := v.size - 1; j >= i; j-- {
		r.Relocate(&v.buf[j+count], &v.buf[j])
	}
	if err := fill(v.buf[i : i+count]); err != nil {
		for j := i; j < v.size; j++ {
			r.Relocate(&v.buf[j], &v.buf[j+count])
		}

		return err
	}
	v.size += count
	v.gen++

	return nil
}

// insertRebuild populates one freshly allocated buffer in three contiguous
// phases: the new values, the prefix [0, i), the suffix [i, size). The new
// values go first so that any construction failure is unwound while the old
// buffer is still complete and untouched.
func (v *Vector[T]) insertRebuild(i, count int, fill func(dst []T) error) error {
	newBuf, err := v.allocate(grownCapacity(len(v.buf), v.size+count))
	if err != nil {
		return err
	}

	gap := newBuf[i : i+count]
	if err = fill(gap); err != nil {
		v.strat.Deallocate(newBuf)

		return err
	}

	prefix, suffix := newBuf[:i], newBuf[i+count:i+count+v.size-i]
	if r, ok := alloc.RelocatorOf(v.strat); ok {
		relocateRange(r, prefix, v.buf[:i])
		relocateRange(r, suffix, v.buf[i:v.size])
	} else {
		if err = constructCopy(v.strat, prefix, v.buf[:i]); err != nil {
			destroyRange(v.strat, gap)
			v.strat.Deallocate(newBuf)

			return err
		}
		if err = constructCopy(v.strat, suffix, v.buf[i:v.size]); err != nil {
			destroyRange(v.strat, prefix)
			destroyRange(v.strat, gap)
			v.strat.Deallocate(newBuf)

			return err
		}
		destroyRange(v.strat, v.buf[:v.size])
	}

	v.strat.Deallocate(v.buf)
	v.buf = newBuf
	v.size += count
	v.gen++

	return nil
}

// Erase destroys the element at position i and shifts every subsequent
// element one slot toward the front. Returns the index of the element now
// occupying the slot, which equals Len() when the erased element was last.
// Returns ErrOutOfRange when i is outside [0, Len()).
// Complexity: O(n - i).
func (v *Vector[T]) Erase(i int) (int, error) {
	if i < 0 || i >= v.size {
		return 0, ErrOutOfRange
	}

	return v.eraseRange(i, i+1)
}

// EraseRange destroys the elements in [first, last) and shifts the
// remainder toward the front by last-first slots. Returns Len() when
// last == Len(), otherwise the index of the first surviving element
// (first). Returns ErrBadRange for a malformed range.
// Complexity: O(n - first).
func (v *Vector[T]) EraseRange(first, last int) (int, error) {
	if first < 0 || last < first || last > v.size {
		return 0, ErrBadRange
	}
	if first == last {
		return first, nil
	}

	return v.eraseRange(first, last)
}

// eraseRange does the destroy-then-shift. With a relocating strategy the
// shift is a sequence of never-failing moves into dead slots. With failing
// copies, a mid-shift failure drops the not-yet-shifted tail to keep the
// vector in a valid state (basic guarantee).
func (v *Vector[T]) eraseRange(first, last int) (int, error) {
	n := last - first
	destroyRange(v.strat, v.buf[first:last])

	if r, ok := alloc.RelocatorOf(v.strat); ok {
		for j := last; j < v.size; j++ {
			r.Relocate(&v.buf[j-n], &v.buf[j])
		}
	} else {
		for j := last; j < v.size; j++ {
			// Slot j-n is dead: it was either destroyed above or vacated as
			// an earlier source in this loop.
			if err := v.strat.Construct(&v.buf[j-n], v.buf[j]); err != nil {
				destroyRange(v.strat, v.buf[j:v.size])
				v.size = j - n
				v.gen++

				return 0, fmt.Errorf("%w: %w", ErrConstruct, err)
			}
			v.strat.Destroy(&v.buf[j])
		}
	}

	atEnd := last == v.size
	v.size -= n
	v.gen++
	if atEnd {
		return v.size, nil
	}

	return first, nil
}

// Resize adjusts the element count to n, value-constructing zero values
// into new trailing slots or destroying surplus ones.
// Complexity: O(|n - Len()|), plus O(n) on growth.
func (v *Vector[T]) Resize(n int) error {
	var zero T

	return v.ResizeWith(n, zero)
}

// ResizeWith adjusts the element count to n, constructing copies of value
// into new trailing slots. When shrinking, the trailing elements are
// destroyed and capacity is retained. On a failed growth the size and every
// element are unchanged; the capacity may already have grown.
// Returns ErrLength for negative n.
// Complexity: O(|n - Len()|), plus O(n) on growth.
func (v *Vector[T]) ResizeWith(n int, value T) error {
	if n < 0 || n > maxLen {
		return ErrLength
	}
	if n <= v.size {
		destroyRange(v.strat, v.buf[n:v.size])
		if n < v.size {
			v.size = n
			v.gen++
		}

		return nil
	}

	if err := v.grow(n); err != nil {
		return err
	}
	if err := constructFill(v.strat, v.buf[v.size:n], value); err != nil {
		return err // constructFill unwound the partial tail
	}
	v.size = n

	return nil
}

// Assign replaces the contents with n copies of value. The replacement is
// built in full before the old state is torn down, so a failure leaves the
// vector unchanged (strong guarantee). Capacity becomes exactly n.
// Returns ErrLength for negative n.
// Complexity: O(n + Len()).
func (v *Vector[T]) Assign(n int, value T) error {
	if n < 0 || n > maxLen {
		return ErrLength
	}

	return v.adopt(n, func(dst []T) error {
		return constructFill(v.strat, dst, value)
	})
}

// AssignFrom replaces the contents with the given values in order.
// Strong guarantee; capacity becomes exactly len(values).
// Complexity: O(len(values) + Len()).
func (v *Vector[T]) AssignFrom(values ...T) error {
	return v.adopt(len(values), func(dst []T) error {
		return constructCopy(v.strat, dst, values)
	})
}

// AssignRange replaces the contents by draining seq in order.
// Strong guarantee: the incoming elements are staged in a scratch vector
// and adopted with an O(1) swap only once the drain has fully succeeded.
// Complexity: O(n + Len()), n = number of produced values.
func (v *Vector[T]) AssignRange(seq iter.Seq[T]) error {
	tmp := &Vector[T]{strat: v.strat}
	for value := range seq {
		if err := tmp.PushBack(value); err != nil {
			tmp.release()

			return err
		}
	}
	v.Swap(tmp)
	tmp.release()

	return nil
}

// adopt builds a fresh n-slot buffer via fill and swaps it in, tearing the
// old state down only after the build fully succeeded.
func (v *Vector[T]) adopt(n int, fill func(dst []T) error) error {
	newBuf, err := v.allocate(n)
	if err != nil {
		return err
	}
	if err = fill(newBuf); err != nil {
		v.strat.Deallocate(newBuf)

		return err
	}

	destroyRange(v.strat, v.buf[:v.size])
	v.strat.Deallocate(v.buf)
	v.buf, v.size = newBuf, n
	v.gen++

	return nil
}

// Swap exchanges the buffers, sizes, and allocation strategies of v and
// other in O(1), with zero element-level construction or destruction.
// The strategy travels with its buffer: a buffer must always be retired by
// the strategy that allocated it. Invalidates all iterators of both vectors.
func (v *Vector[T]) Swap(other *Vector[T]) {
	if v == other {
		return
	}
	v.buf, other.buf = other.buf, v.buf
	v.size, other.size = other.size, v.size
	v.strat, other.strat = other.strat, v.strat
	v.gen++
	other.gen++
}
