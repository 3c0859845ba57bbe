package validator

import "errors"

// ErrValidationFailed is returned by helpers that need a plain sentinel for
// a failed validation, e.g. when wrapping a tree for logging.
var ErrValidationFailed = errors.New("validation failed")

// Is lets errors.Is(err, ErrValidationFailed) match a validation tree.
func (n *StructNode) Is(target error) bool {
	return target == ErrValidationFailed
}
