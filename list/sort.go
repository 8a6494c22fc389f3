package list

import "cmp"

// SortFunc sorts the list in place with a stable bottom-up merge sort
// driven by the three-way compare. Only links move, never elements.
// Complexity: O(n log n) time, O(1) extra space.
func (l *List[T]) SortFunc(compare func(a, b T) int) {
	if l.size < 2 {
		return
	}

	// Bottom-up merge: repeatedly merge runs of width 1, 2, 4, ...
	for width := 1; width < l.size; width *= 2 {
		var newHead, newTail *node[T]
		cur := l.head
		for cur != nil {
			left := cur
			right := cut(left, width)
			cur = cut(right, width)
			merged, mergedTail := mergeRuns(left, right, compare)
			if newHead == nil {
				newHead = merged
			} else {
				newTail.next = merged
				merged.prev = newTail
			}
			newTail = mergedTail
		}
		l.head, l.tail = newHead, newTail
	}
}

// Sort sorts the list ascending by the natural order of T.
// Complexity: O(n log n).
func Sort[T cmp.Ordered](l *List[T]) {
	l.SortFunc(cmp.Compare[T])
}

// MergeFunc moves every element of other into l so that, when both inputs
// are sorted under compare, the result is sorted and stable (elements of l
// precede equal elements of other). other is left empty.
// Complexity: O(len(l) + len(other)).
func (l *List[T]) MergeFunc(other *List[T], compare func(a, b T) int) {
	if l == other || other.head == nil {
		return
	}
	if l.head == nil {
		l.Swap(other)

		return
	}

	head, tail := mergeRuns(l.head, other.head, compare)
	l.head, l.tail = head, tail
	l.size += other.size
	other.head, other.tail, other.size = nil, nil, 0
}

// Merge is MergeFunc under the natural order of T.
func Merge[T cmp.Ordered](l, other *List[T]) {
	l.MergeFunc(other, cmp.Compare[T])
}

// cut severs the chain after the first width nodes starting at n and
// returns the head of the remainder (nil when the run was short).
func cut[T any](n *node[T], width int) *node[T] {
	for i := 1; n != nil && i < width; i++ {
		n = n.next
	}
	if n == nil {
		return nil
	}
	rest := n.next
	n.next = nil
	if rest != nil {
		rest.prev = nil
	}

	return rest
}

// mergeRuns merges two detached, nil-terminated runs and returns the head
// and tail of the merged run. Left-run elements win ties for stability.
func mergeRuns[T any](a, b *node[T], compare func(x, y T) int) (*node[T], *node[T]) {
	var head, tail *node[T]
	appendNode := func(n *node[T]) {
		n.prev = tail
		if tail == nil {
			head = n
		} else {
			tail.next = n
		}
		tail = n
	}

	for a != nil && b != nil {
		if compare(b.value, a.value) < 0 {
			next := b.next
			appendNode(b)
			b = next
		} else {
			next := a.next
			appendNode(a)
			a = next
		}
	}
	for rest := a; rest != nil; {
		next := rest.next
		appendNode(rest)
		rest = next
	}
	for rest := b; rest != nil; {
		next := rest.next
		appendNode(rest)
		rest = next
	}
	tail.next = nil

	return head, tail
}
