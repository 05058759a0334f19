package flat

import "errors"

var (
	// ErrBadStructure signals a record list violating the linkage invariants:
	// duplicate ids, missing siblings, ambiguous sides, or an ill-defined root.
	ErrBadStructure = errors.New("flat: structural integrity violation")
)
