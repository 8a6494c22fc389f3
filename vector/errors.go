package vector

import "errors"

// Sentinel errors for vector operations.
var (
	// ErrOutOfRange indicates a checked accessor or mutation position lies
	// outside the live element range.
	ErrOutOfRange = errors.New("vector: index out of range")

	// ErrLength indicates a requested size or capacity is negative or
	// exceeds MaxLen.
	ErrLength = errors.New("vector: length exceeds maximum")

	// ErrAllocation indicates the allocation strategy could not provide
	// storage. The container is unchanged.
	ErrAllocation = errors.New("vector: allocation failed")

	// ErrConstruct indicates an element construction failed mid bulk
	// operation. Strong-guarantee operations report it with the container
	// restored to its pre-call state.
	ErrConstruct = errors.New("vector: element construction failed")

	// ErrBadRange indicates an erase range with first > last or bounds
	// outside [0, Len()].
	ErrBadRange = errors.New("vector: invalid range")

	// ErrStaleIterator indicates a checked iterator access after the
	// underlying buffer was reallocated or shifted.
	ErrStaleIterator = errors.New("vector: iterator invalidated")
)
