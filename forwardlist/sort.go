package forwardlist

import "cmp"

// SortFunc sorts the list in place with a stable insertion sort driven
// by the three-way compare. Only links move, never elements, so cursors
// keep referencing the same values at their new positions.
// Complexity: O(n^2) time, O(1) extra space.
func (l *ForwardList[T]) SortFunc(compare func(a, b T) int) {
	var sorted *node[T]
	cur := l.head
	for cur != nil {
		next := cur.next
		sorted = sortedInsert(sorted, cur, compare)
		cur = next
	}
	l.head = sorted
}

// Sort sorts the list ascending by the natural order of T.
// Complexity: O(n^2).
func Sort[T cmp.Ordered](l *ForwardList[T]) {
	l.SortFunc(cmp.Compare[T])
}

// sortedInsert links n into the sorted chain after every element that
// compares less than or equal, which keeps equal elements in arrival
// order.
func sortedInsert[T any](sorted, n *node[T], compare func(a, b T) int) *node[T] {
	if sorted == nil || compare(n.value, sorted.value) < 0 {
		n.next = sorted

		return n
	}

	cur := sorted
	for cur.next != nil && compare(cur.next.value, n.value) <= 0 {
		cur = cur.next
	}
	n.next = cur.next
	cur.next = n

	return sorted
}
