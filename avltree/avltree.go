// Package avltree provides an ordered set backed by a self-balancing
// AVL binary search tree. Duplicate keys are rejected on insert, so the
// tree always holds each key at most once.
//
// Lookup, insert and delete run in O(log n). Every node caches its
// subtree height, so rebalancing after a mutation touches only the
// nodes on the search path.
//
// Errors returned by this package:
//   - ErrEmptyTree: Min or Max on a tree with no elements.
package avltree

import (
	"cmp"
	"errors"
	"iter"
)

// ErrEmptyTree is returned when an extremum is requested from an empty tree.
var ErrEmptyTree = errors.New("avltree: empty tree")

type node[K any] struct {
	left, right *node[K]
	key         K
	height      int
}

// Tree is an ordered set of keys. The zero value is not usable; build
// trees with New, NewFunc or From.
type Tree[K any] struct {
	root    *node[K]
	size    int
	compare func(a, b K) int
}

// New returns an empty tree ordered by the natural order of K.
func New[K cmp.Ordered]() *Tree[K] {
	return NewFunc[K](cmp.Compare[K])
}

// NewFunc returns an empty tree ordered by the three-way compare.
func NewFunc[K any](compare func(a, b K) int) *Tree[K] {
	return &Tree[K]{compare: compare}
}

// From returns a tree holding the given keys, duplicates dropped.
func From[K cmp.Ordered](keys ...K) *Tree[K] {
	t := New[K]()
	for _, k := range keys {
		t.Insert(k)
	}

	return t
}

// Len reports the number of keys in the tree.
func (t *Tree[K]) Len() int { return t.size }

// Empty reports whether the tree holds no keys.
func (t *Tree[K]) Empty() bool { return t.size == 0 }

// Contains reports whether key is present.
// Complexity: O(log n).
func (t *Tree[K]) Contains(key K) bool {
	cur := t.root
	for cur != nil {
		c := t.compare(key, cur.key)
		switch {
		case c < 0:
			cur = cur.left
		case c > 0:
			cur = cur.right
		default:
			return true
		}
	}

	return false
}

// Insert adds key to the tree and reports whether it was absent.
// Complexity: O(log n).
func (t *Tree[K]) Insert(key K) bool {
	var added bool
	t.root, added = t.insert(t.root, key)
	if added {
		t.size++
	}

	return added
}

func (t *Tree[K]) insert(cur *node[K], key K) (*node[K], bool) {
	if cur == nil {
		return &node[K]{key: key}, true
	}

	var added bool
	switch c := t.compare(key, cur.key); {
	case c < 0:
		cur.left, added = t.insert(cur.left, key)
	case c > 0:
		cur.right, added = t.insert(cur.right, key)
	default:
		return cur, false
	}
	if !added {
		return cur, false
	}

	return rebalance(cur), true
}

// Delete removes key from the tree and reports whether it was present.
// Complexity: O(log n).
func (t *Tree[K]) Delete(key K) bool {
	var removed bool
	t.root, removed = t.delete(t.root, key)
	if removed {
		t.size--
	}

	return removed
}

func (t *Tree[K]) delete(cur *node[K], key K) (*node[K], bool) {
	if cur == nil {
		return nil, false
	}

	var removed bool
	switch c := t.compare(key, cur.key); {
	case c < 0:
		cur.left, removed = t.delete(cur.left, key)
	case c > 0:
		cur.right, removed = t.delete(cur.right, key)
	default:
		removed = true
		switch {
		case cur.left == nil:
			return cur.right, true
		case cur.right == nil:
			return cur.left, true
		default:
			// Two children: adopt the in-order successor's key, then
			// delete that successor from the right subtree.
			successor := cur.right
			for successor.left != nil {
				successor = successor.left
			}
			cur.key = successor.key
			cur.right, _ = t.delete(cur.right, successor.key)
		}
	}
	if !removed {
		return cur, false
	}

	return rebalance(cur), true
}

// Min returns the smallest key.
func (t *Tree[K]) Min() (K, error) {
	if t.root == nil {
		var zero K

		return zero, ErrEmptyTree
	}
	cur := t.root
	for cur.left != nil {
		cur = cur.left
	}

	return cur.key, nil
}

// Max returns the largest key.
func (t *Tree[K]) Max() (K, error) {
	if t.root == nil {
		var zero K

		return zero, ErrEmptyTree
	}
	cur := t.root
	for cur.right != nil {
		cur = cur.right
	}

	return cur.key, nil
}

// Clear removes every key. The comparator is kept.
func (t *Tree[K]) Clear() {
	t.root = nil
	t.size = 0
}

// Clone returns an independent deep copy sharing the comparator.
// Complexity: O(n).
func (t *Tree[K]) Clone() *Tree[K] {
	return &Tree[K]{root: clone(t.root), size: t.size, compare: t.compare}
}

func clone[K any](cur *node[K]) *node[K] {
	if cur == nil {
		return nil
	}

	return &node[K]{
		left:   clone(cur.left),
		right:  clone(cur.right),
		key:    cur.key,
		height: cur.height,
	}
}

// Swap exchanges the contents of two trees in O(1). Comparators travel
// with their keys.
func (t *Tree[K]) Swap(other *Tree[K]) {
	t.root, other.root = other.root, t.root
	t.size, other.size = other.size, t.size
	t.compare, other.compare = other.compare, t.compare
}

// InOrder yields every key in ascending order.
func (t *Tree[K]) InOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		inOrder(t.root, yield)
	}
}

func inOrder[K any](cur *node[K], yield func(K) bool) bool {
	if cur == nil {
		return true
	}

	return inOrder(cur.left, yield) && yield(cur.key) && inOrder(cur.right, yield)
}

// PreOrder yields every key root-first.
func (t *Tree[K]) PreOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		preOrder(t.root, yield)
	}
}

func preOrder[K any](cur *node[K], yield func(K) bool) bool {
	if cur == nil {
		return true
	}

	return yield(cur.key) && preOrder(cur.left, yield) && preOrder(cur.right, yield)
}

// PostOrder yields every key children-first.
func (t *Tree[K]) PostOrder() iter.Seq[K] {
	return func(yield func(K) bool) {
		postOrder(t.root, yield)
	}
}

func postOrder[K any](cur *node[K], yield func(K) bool) bool {
	if cur == nil {
		return true
	}

	return postOrder(cur.left, yield) && postOrder(cur.right, yield) && yield(cur.key)
}

// height of a possibly nil subtree; a leaf has height 0.
func height[K any](n *node[K]) int {
	if n == nil {
		return -1
	}

	return n.height
}

func update[K any](n *node[K]) {
	n.height = max(height(n.left), height(n.right)) + 1
}

func balance[K any](n *node[K]) int {
	return height(n.left) - height(n.right)
}

func rotateRight[K any](n *node[K]) *node[K] {
	pivot := n.left
	n.left = pivot.right
	pivot.right = n
	update(n)
	update(pivot)

	return pivot
}

func rotateLeft[K any](n *node[K]) *node[K] {
	pivot := n.right
	n.right = pivot.left
	pivot.left = n
	update(n)
	update(pivot)

	return pivot
}

// rebalance restores the AVL invariant at n after a child mutation,
// applying one of the LL, LR, RR, RL rotations when the subtree heights
// differ by more than one.
func rebalance[K any](n *node[K]) *node[K] {
	update(n)
	switch b := balance(n); {
	case b > 1:
		if balance(n.left) < 0 {
			n.left = rotateLeft(n.left)
		}

		return rotateRight(n)
	case b < -1:
		if balance(n.right) > 0 {
			n.right = rotateRight(n.right)
		}

		return rotateLeft(n)
	}

	return n
}
