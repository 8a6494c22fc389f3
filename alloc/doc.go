// Package alloc defines the pluggable allocation strategy used by the
// vessel containers.
//
// A Strategy is responsible for the two layers of a container's storage:
//
//	• raw storage  — Allocate/Deallocate hand out and retire uninitialized
//	  element slots; slots are never constructed by the storage layer.
//	• element life — Construct/Destroy build and tear down a single element
//	  inside a slot; Construct may fail, Destroy never does.
//
// Containers are handed a Strategy at construction time and never touch the
// Go heap directly. A Strategy value may be shared between containers; the
// buffers it hands out are exclusively owned by one container at a time.
//
// Relocation:
//
// Some strategies can move an element between slots with a guarantee that
// the move never fails. Such strategies additionally implement Relocator.
// Bulk operations query this capability once, up front, via RelocatorOf and
// pick the non-failing fast path when it is available.
//
// Strategies:
//
//	Heap     - default; slots come from make, Construct is plain assignment.
//	Limited  - wraps another strategy with a slot quota (bounded containers).
//	Counting - wraps another strategy and counts every operation.
//	Funcs    - strategy assembled from caller-supplied hooks; its Construct
//	           may fail, exercising the copy-fallback paths of containers.
//
// Errors:
//
//	ErrAllocationFailure - storage cannot be obtained.
//	ErrNegativeCount     - Allocate called with a negative slot count.
//	ErrNilStrategy       - a nil Strategy was supplied where one is required.
//	ErrNilConstruct      - Funcs built without a construct hook.
package alloc
