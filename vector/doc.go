// Package vector implements a generic dynamic array: a resizable contiguous
// buffer with explicit size and capacity, a pluggable allocation strategy,
// and a strong exception-safety contract on every bulk operation.
//
// Storage model:
//
//	slots [0, Len())      hold live, constructed elements
//	slots [Len(), Cap())  are allocated but dead; never read or destroyed
//
// The buffer is exclusively owned by one Vector and is obtained from an
// alloc.Strategy injected at construction (alloc.Heap by default). Capacity
// grows geometrically (doubling) so that appending N elements from empty
// performs O(N) total relocation work, and shrinks only via ShrinkToFit.
//
// Strong guarantee:
//
// Every fallible bulk operation — reallocation, positional insert, assign,
// resize growth — either completes fully or leaves the vector exactly as it
// was before the call. The central rule is ordering: old storage is never
// released, and old elements are never destroyed, until every element exists
// in the new storage. When the strategy relocates (a never-failing move,
// queried once per operation via alloc.RelocatorOf), transfers take the fast
// path; otherwise elements are copy-constructed and a mid-copy failure
// unwinds the partially built buffer, leaving the original untouched.
//
// Iterators are non-owning cursors. Any reallocation, and any insert or
// erase that shifts elements, invalidates every iterator at or after the
// mutation point; checked iterator accessors detect staleness through a
// generation counter.
//
// The vector is single-threaded: concurrent mutation is undefined and must
// be prevented externally.
//
// Errors:
//
//	ErrOutOfRange    - checked accessor given an invalid index.
//	ErrLength        - requested size/capacity negative or above MaxLen.
//	ErrAllocation    - the strategy could not provide storage.
//	ErrConstruct     - an element construction failed mid bulk operation.
//	ErrBadRange      - malformed erase range.
//	ErrStaleIterator - checked access through an invalidated iterator.
package vector
