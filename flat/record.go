package flat

import "math"

// Kind distinguishes leaf records from internal-node records.
type Kind uint8

const (
	// KindLeaf marks a record carrying an element fragment.
	KindLeaf Kind = iota
	// KindNode marks a record for an internal node; it carries no elements.
	KindNode
)

func (k Kind) String() string {
	if k == KindLeaf {
		return "leaf"
	}
	return "node"
}

// Side tells which side of its parent a record hangs off.
type Side uint8

const (
	// SideLeft marks a left child. The root record carries SideLeft as well;
	// its side is not meaningful and consumers must ignore it.
	SideLeft Side = iota
	// SideRight marks a right child.
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "L"
	}
	return "R"
}

// NoParent is the Parent value of the unique root record.
const NoParent uint32 = math.MaxUint32

// Record is the flat description of one tree node.
//
// Ids are unique within one record list; the root always has id 0 and
// Parent == NoParent. Every other record references its parent's id, and
// each referenced parent has exactly one SideLeft and one SideRight child.
// Elements is present if and only if Kind is KindLeaf.
type Record[T any] struct {
	ID       uint32 `json:"id"`
	Kind     Kind   `json:"kind"`
	Side     Side   `json:"side"`
	Parent   uint32 `json:"parent"`
	Elements []T    `json:"elements,omitempty"`
}

// IsRoot reports whether the record describes the tree root.
func (r Record[T]) IsRoot() bool {
	return r.Parent == NoParent
}
