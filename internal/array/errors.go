package array

import "errors"

// Contract violations surfaced by the array layer. Call sites wrap
// these with the offending shapes, axes, or dtype names.
var (
	ErrUnknownDtype    = errors.New("unknown dtype")
	ErrShapeMismatch   = errors.New("shape mismatch")
	ErrReshape         = errors.New("reshape element count mismatch")
	ErrAxis            = errors.New("axis out of range")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotImplemented  = errors.New("not implemented")
)
