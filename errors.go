package xycoll

import "errors"

var (
	// ErrEmpty is returned by removal and inspection operations when the
	// container holds fewer elements than the operation requires.
	ErrEmpty = errors.New("xycoll: not enough elements")

	// ErrInvalidCount is returned by bulk removal operations when the
	// requested count is not a positive integer.
	ErrInvalidCount = errors.New("xycoll: count must be a positive integer")
)
