package pool

import "errors"

var (
	// ErrAllocation indicates the slot source could not provide memory.
	ErrAllocation = errors.New("pool: allocation failed")

	// ErrInvalidCapacity indicates a negative capacity.
	ErrInvalidCapacity = errors.New("pool: capacity must not be negative")
)
