package heap

import "errors"

// Common errors that can be returned by heap operations.
var (
	ErrEmpty         = errors.New("heap: heap is empty")
	ErrInvalidConfig = errors.New("heap: invalid configuration")
)
