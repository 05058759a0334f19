package flat

import (
	"fmt"

	"github.com/trevnik/parti"
)

// halfNode is a parent still missing at least one child during reassembly.
type halfNode[T any] struct {
	left, right parti.Subtree[T]
}

// Rebuild reconstructs a partition tree from its record list.
//
// Records are consumed in reverse list order, the order Flatten is designed
// to be undone in: every node record precedes its descendants in the list,
// so walking backwards always sees both children of a node before the node
// itself. Assembly is iterative and bottom-up, tracked by two maps keyed by
// parent id: "pending" holds parents still missing a child, "completed"
// holds fully assembled subtrees awaiting attachment one level up. When the
// second child of a pending parent arrives, the finished node moves from
// pending to completed. The single surviving completed entry is the root.
//
// A list violating the linkage invariants is rejected with ErrBadStructure,
// wrapped with the specific violation: duplicate ids, an ill-defined root,
// elements on a node record, ambiguous sides, or missing siblings.
func Rebuild[T any](recs []Record[T]) (*parti.Tree[T], error) {
	if len(recs) == 0 {
		return nil, fmt.Errorf("%w: empty record list", ErrBadStructure)
	}
	seen := make(map[uint32]struct{}, len(recs))
	rootIdx := -1
	for i, r := range recs {
		if _, dup := seen[r.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate id %d", ErrBadStructure, r.ID)
		}
		seen[r.ID] = struct{}{}
		if r.Kind == KindNode && len(r.Elements) > 0 {
			return nil, fmt.Errorf("%w: node record %d carries elements", ErrBadStructure, r.ID)
		}
		if r.IsRoot() {
			if rootIdx >= 0 {
				return nil, fmt.Errorf("%w: multiple roots (ids %d and %d)", ErrBadStructure, recs[rootIdx].ID, r.ID)
			}
			rootIdx = i
		}
	}
	if rootIdx < 0 {
		return nil, fmt.Errorf("%w: no root record", ErrBadStructure)
	}
	root := recs[rootIdx]
	if root.Kind == KindLeaf {
		// Degenerate tree: the input fit into a single leaf.
		if len(recs) > 1 {
			return nil, fmt.Errorf("%w: root %d is a leaf but %d records follow it", ErrBadStructure, root.ID, len(recs)-1)
		}
		return parti.NewTree[T](parti.NewLeaf(root.Elements)), nil
	}

	pending := make(map[uint32]*halfNode[T])
	completed := make(map[uint32]parti.Subtree[T])
	for i := len(recs) - 1; i >= 0; i-- {
		if i == rootIdx {
			continue
		}
		r := recs[i]
		if _, ok := seen[r.Parent]; !ok {
			return nil, fmt.Errorf("%w: record %d references unknown parent %d", ErrBadStructure, r.ID, r.Parent)
		}
		var sub parti.Subtree[T]
		if r.Kind == KindLeaf {
			sub = parti.NewLeaf(r.Elements)
		} else {
			assembled, ok := completed[r.ID]
			if !ok {
				return nil, fmt.Errorf("%w: node %d consumed before its children were assembled", ErrBadStructure, r.ID)
			}
			delete(completed, r.ID)
			sub = assembled
		}
		parent := pending[r.Parent]
		if parent == nil {
			parent = &halfNode[T]{}
			pending[r.Parent] = parent
		}
		switch r.Side {
		case SideLeft:
			if parent.left != nil {
				return nil, fmt.Errorf("%w: two left children under parent %d", ErrBadStructure, r.Parent)
			}
			parent.left = sub
		case SideRight:
			if parent.right != nil {
				return nil, fmt.Errorf("%w: two right children under parent %d", ErrBadStructure, r.Parent)
			}
			parent.right = sub
		default:
			return nil, fmt.Errorf("%w: record %d has invalid side %d", ErrBadStructure, r.ID, r.Side)
		}
		if parent.left != nil && parent.right != nil {
			node, err := parti.NewNode[T](parent.left, parent.right)
			assert(err == nil, "Rebuild: both children are present")
			delete(pending, r.Parent)
			completed[r.Parent] = node
		}
	}

	for id := range pending {
		return nil, fmt.Errorf("%w: parent %d is missing a child", ErrBadStructure, id)
	}
	rootSub, ok := completed[root.ID]
	if !ok {
		return nil, fmt.Errorf("%w: no children reference root %d", ErrBadStructure, root.ID)
	}
	if len(completed) != 1 {
		return nil, fmt.Errorf("%w: %d disconnected subtrees remain", ErrBadStructure, len(completed)-1)
	}
	tracer().Debugf("flat: rebuilt tree from %d record(s)", len(recs))
	return parti.NewTree[T](rootSub), nil
}

// Verify checks a record list against the linkage invariants, reporting the
// first violation as an ErrBadStructure and discarding the assembled tree.
func Verify[T any](recs []Record[T]) error {
	_, err := Rebuild(recs)
	return err
}
