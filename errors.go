package ravl

import "errors"

var (
	// ErrInvalidTree signals a structural invariant violation detected by Check.
	ErrInvalidTree = errors.New("ravl: invalid tree structure")
)
