// Package vessel is a family of generic containers built around one
// idea: a mutation either fully succeeds or leaves the container
// exactly as it was.
//
// 🚀 What is vessel?
//
//	A modern generics-based container library that brings together:
//		• vector/      — dynamic array with pluggable allocation strategies
//		• array/       — fixed-length array plus a row-major 2D variant
//		• forwardlist/ — singly linked list with after-cursor splicing
//		• list/        — doubly linked list with stable merge sort
//		• avltree/     — self-balancing ordered set
//		• hashtable/   — separately chained hash map with injected hashers
//		• stack/, queue/, deque/ — adapters over the sequence containers
//		• alloc/       — the Strategy interface the vector allocates through
//
// ✨ Why choose vessel?
//
//   - All-or-nothing mutations – a failed insert, resize or assign
//     leaves the container untouched, reported through sentinel errors
//   - Pluggable allocation – quota-limited, instrumented or hook-driven
//     strategies slot into any vector without changing call sites
//   - Range-over-func iteration – every container yields iter.Seq views
//   - Pure Go – generics only, no cgo, no reflection
//
// The vector is the heart of the module: geometric growth, explicit
// capacity control (Reserve, ShrinkToFit), positional insert and erase,
// and cursors that detect staleness after a reallocation. The remaining
// containers follow the same error discipline and the same O(1) Swap
// convention.
//
// Quick taste:
//
//	v, _ := vector.NewFrom(1, 2, 3)
//	_ = v.PushBack(4)
//	for _, x := range v.All() {
//		fmt.Println(x)
//	}
//
//	go get github.com/katalvlaran/vessel
package vessel
