package alloc

import "errors"

// Sentinel errors for allocation strategies.
var (
	// ErrAllocationFailure indicates raw storage could not be obtained.
	ErrAllocationFailure = errors.New("alloc: storage exhausted")

	// ErrNegativeCount indicates Allocate was asked for a negative slot count.
	ErrNegativeCount = errors.New("alloc: negative slot count")

	// ErrNilStrategy indicates a nil Strategy was supplied where one is required.
	ErrNilStrategy = errors.New("alloc: nil strategy")

	// ErrNilConstruct indicates Funcs was built without a construct hook.
	ErrNilConstruct = errors.New("alloc: nil construct hook")
)
