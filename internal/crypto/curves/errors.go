package curves

import "errors"

// Errors returned by the curve engine.
var (
	ErrInvalidScalar = errors.New("curves: scalar is zero or out of range")
	ErrInvalidPoint  = errors.New("curves: point is at infinity or not on the curve")
)
