package parti

import "fmt"

// Build constructs a partition tree over elems by recursive midpoint
// splitting.
//
// While a fragment holds more than maxElems elements it is split at
// len/2 (floor); the left half keeps [0,mid), the right half [mid,len).
// A fragment that fits becomes a leaf holding it verbatim. The empty
// sequence yields a single empty root leaf.
//
// Build fails fast with ErrInvalidConfig for maxElems < 1.
func Build[T any](elems []T, maxElems int) (*Tree[T], error) {
	if maxElems < 1 {
		return nil, fmt.Errorf("%w: max leaf size must be positive, got %d", ErrInvalidConfig, maxElems)
	}
	tree := &Tree[T]{root: splitFragment(elems, maxElems)}
	tracer().Debugf("parti: built tree of height %d over %d element(s)", tree.Height(), len(elems))
	return tree, nil
}

// splitFragment is the recursive reference construction; package flat holds
// the iterative equivalent.
func splitFragment[T any](elems []T, maxElems int) Subtree[T] {
	assert(maxElems > 0, "splitFragment requires a positive max leaf size")
	if len(elems) <= maxElems {
		return &Leaf[T]{elems: elems}
	}
	mid := len(elems) / 2
	return &Node[T]{
		left:  splitFragment(elems[:mid], maxElems),
		right: splitFragment(elems[mid:], maxElems),
	}
}
