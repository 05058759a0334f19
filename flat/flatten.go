package flat

import (
	"fmt"

	"github.com/trevnik/parti"
)

// task is one queued fragment awaiting a split-or-emit decision. Its id is
// assigned when the parent splits, before the fragment is processed.
type task[T any] struct {
	id     uint32
	side   Side
	parent uint32
	elems  []T
}

// Flatten builds the record list of the partition tree over elems without
// constructing the tree and without recursion.
//
// Flatten produces a list topologically equivalent to parti.Build on the
// same inputs. It drives an explicit LIFO work stack: splitting a fragment
// emits its node record and queues both halves, right below left, so the
// left half is processed first. The root receives id 0 and each split hands
// its children the next two unused ids, left strictly below right. The
// resulting emission order interleaves sides and is neither breadth-first
// nor strictly depth-first; consumers must rely on the parent/side linkage
// only.
//
// An input that already fits into one leaf emits the single root-leaf
// record. Flatten fails fast with parti.ErrInvalidConfig for maxElems < 1.
func Flatten[T any](elems []T, maxElems int) ([]Record[T], error) {
	if maxElems < 1 {
		return nil, fmt.Errorf("%w: max leaf size must be positive, got %d", parti.ErrInvalidConfig, maxElems)
	}
	if len(elems) <= maxElems {
		return []Record[T]{{ID: 0, Kind: KindLeaf, Side: SideLeft, Parent: NoParent, Elements: elems}}, nil
	}
	mid := len(elems) / 2
	records := []Record[T]{{ID: 0, Kind: KindNode, Side: SideLeft, Parent: NoParent}}
	stack := []task[T]{
		{id: 2, side: SideRight, parent: 0, elems: elems[mid:]},
		{id: 1, side: SideLeft, parent: 0, elems: elems[:mid]},
	}
	nextID := uint32(2)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(cur.elems) <= maxElems {
			records = append(records, Record[T]{
				ID: cur.id, Kind: KindLeaf, Side: cur.side, Parent: cur.parent, Elements: cur.elems,
			})
			continue
		}
		m := len(cur.elems) / 2
		records = append(records, Record[T]{
			ID: cur.id, Kind: KindNode, Side: cur.side, Parent: cur.parent,
		})
		stack = append(stack,
			task[T]{id: nextID + 2, side: SideRight, parent: cur.id, elems: cur.elems[m:]},
			task[T]{id: nextID + 1, side: SideLeft, parent: cur.id, elems: cur.elems[:m]},
		)
		nextID += 2
	}
	tracer().Debugf("flat: flattened %d element(s) into %d record(s)", len(elems), len(records))
	return records, nil
}

// walkTask queues one already-built subtree during FlattenTree.
type walkTask[T any] struct {
	id     uint32
	side   Side
	parent uint32
	sub    parti.Subtree[T]
}

// FlattenTree linearizes an existing partition tree.
//
// The id assignment and emission order match Flatten on the tree's element
// sequence and splitting threshold, so both paths produce identical record
// lists for equivalent trees.
func FlattenTree[T any](tree *parti.Tree[T]) []Record[T] {
	root := tree.Root()
	if leaf, ok := root.(*parti.Leaf[T]); ok {
		return []Record[T]{{ID: 0, Kind: KindLeaf, Side: SideLeft, Parent: NoParent, Elements: leaf.Elements()}}
	}
	node := root.(*parti.Node[T])
	records := []Record[T]{{ID: 0, Kind: KindNode, Side: SideLeft, Parent: NoParent}}
	stack := []walkTask[T]{
		{id: 2, side: SideRight, parent: 0, sub: node.Right()},
		{id: 1, side: SideLeft, parent: 0, sub: node.Left()},
	}
	nextID := uint32(2)
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if leaf, ok := cur.sub.(*parti.Leaf[T]); ok {
			records = append(records, Record[T]{
				ID: cur.id, Kind: KindLeaf, Side: cur.side, Parent: cur.parent, Elements: leaf.Elements(),
			})
			continue
		}
		records = append(records, Record[T]{
			ID: cur.id, Kind: KindNode, Side: cur.side, Parent: cur.parent,
		})
		inner := cur.sub.(*parti.Node[T])
		stack = append(stack,
			walkTask[T]{id: nextID + 2, side: SideRight, parent: cur.id, sub: inner.Right()},
			walkTask[T]{id: nextID + 1, side: SideLeft, parent: cur.id, sub: inner.Left()},
		)
		nextID += 2
	}
	return records
}
