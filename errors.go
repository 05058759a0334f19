package parti

import "errors"

var (
	// ErrInvalidConfig signals an invalid splitting configuration, i.e. a
	// non-positive maximum leaf size.
	ErrInvalidConfig = errors.New("parti: invalid configuration")
	// ErrIllegalArguments is flagged whenever function parameters are invalid.
	ErrIllegalArguments = errors.New("parti: illegal arguments")

	// errStopIteration terminates an EachLeaf walk early; never surfaced.
	errStopIteration = errors.New("parti: stop iteration")
)
