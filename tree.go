package parti

import "iter"

// Subtree is the node of a partition tree: either a *Leaf or a *Node.
//
// Clients receive subtrees from Tree.Root and from node accessors; they never
// construct partial trees themselves, except through NewLeaf/NewNode.
type Subtree[T any] interface {
	// IsLeaf reports whether this subtree is a terminal leaf.
	IsLeaf() bool
}

// Leaf is a terminal tree node holding a contiguous fragment of the original
// element sequence, in original order.
type Leaf[T any] struct {
	elems []T
}

// NewLeaf creates a leaf holding the given elements.
//
// The slice is referenced, not copied; callers must not modify it afterwards.
func NewLeaf[T any](elems []T) *Leaf[T] {
	return &Leaf[T]{elems: elems}
}

// IsLeaf returns true.
func (l *Leaf[T]) IsLeaf() bool { return true }

// Elements returns the leaf's element fragment. Callers must treat the
// returned slice as immutable.
func (l *Leaf[T]) Elements() []T {
	if l == nil {
		return nil
	}
	return l.elems
}

// Len returns the number of elements in the leaf.
func (l *Leaf[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.elems)
}

// Node is an internal tree node with exactly two children and no element
// payload of its own.
type Node[T any] struct {
	left, right Subtree[T]
}

// NewNode creates an internal node from two complete subtrees.
//
// Both children are required; internal nodes never have dangling sides.
func NewNode[T any](left, right Subtree[T]) (*Node[T], error) {
	if left == nil || right == nil {
		return nil, ErrIllegalArguments
	}
	return &Node[T]{left: left, right: right}, nil
}

// IsLeaf returns false.
func (n *Node[T]) IsLeaf() bool { return false }

// Left returns the left child.
func (n *Node[T]) Left() Subtree[T] { return n.left }

// Right returns the right child.
func (n *Node[T]) Right() Subtree[T] { return n.right }

// Tree is a balanced binary partition tree over an ordered element sequence.
//
// A tree owns a single root, which is either a *Leaf or a *Node. Trees are
// immutable after construction. The zero value behaves like a tree over the
// empty sequence.
type Tree[T any] struct {
	root Subtree[T]
}

// NewTree wraps a complete subtree as a tree root. A nil root yields the
// empty tree.
func NewTree[T any](root Subtree[T]) *Tree[T] {
	return &Tree[T]{root: root}
}

// Root returns the root subtree. For the zero-value tree this is a single
// empty leaf.
func (t *Tree[T]) Root() Subtree[T] {
	if t == nil || t.root == nil {
		return &Leaf[T]{}
	}
	return t.root
}

// EachLeaf visits all leaves in logical (in-order) sequence.
//
// The callback receives each leaf and its depth below the root. Iteration
// stops at the first callback error and returns that error to the caller.
func (t *Tree[T]) EachLeaf(f func(leaf *Leaf[T], depth int) error) error {
	return eachLeaf[T](t.Root(), 0, f)
}

func eachLeaf[T any](sub Subtree[T], depth int, f func(*Leaf[T], int) error) error {
	if leaf, ok := sub.(*Leaf[T]); ok {
		return f(leaf, depth)
	}
	node := sub.(*Node[T])
	if err := eachLeaf[T](node.left, depth+1, f); err != nil {
		return err
	}
	return eachLeaf[T](node.right, depth+1, f)
}

// Leaves returns an iterator over all leaves in logical order.
func (t *Tree[T]) Leaves() iter.Seq[*Leaf[T]] {
	return func(yield func(*Leaf[T]) bool) {
		_ = t.EachLeaf(func(leaf *Leaf[T], _ int) error {
			if !yield(leaf) {
				return errStopIteration
			}
			return nil
		})
	}
}

// Elements returns the original element sequence, concatenated left to right
// across all leaves. For a tree produced by Build this is the build input.
func (t *Tree[T]) Elements() []T {
	var out []T
	_ = t.EachLeaf(func(leaf *Leaf[T], _ int) error {
		out = append(out, leaf.elems...)
		return nil
	})
	return out
}

// Height returns the number of levels in the tree; a lone root leaf has
// height 1.
func (t *Tree[T]) Height() int {
	return subtreeHeight[T](t.Root())
}

func subtreeHeight[T any](sub Subtree[T]) int {
	node, ok := sub.(*Node[T])
	if !ok {
		return 1
	}
	return 1 + max(subtreeHeight[T](node.left), subtreeHeight[T](node.right))
}

// LeafCount returns the number of leaves in the tree.
func (t *Tree[T]) LeafCount() int {
	count := 0
	_ = t.EachLeaf(func(*Leaf[T], int) error {
		count++
		return nil
	})
	return count
}

// Equal reports whether two trees have identical shape and identical leaf
// contents.
func Equal[T comparable](a, b *Tree[T]) bool {
	return equalSubtree[T](a.Root(), b.Root())
}

func equalSubtree[T comparable](a, b Subtree[T]) bool {
	aLeaf, aIsLeaf := a.(*Leaf[T])
	bLeaf, bIsLeaf := b.(*Leaf[T])
	if aIsLeaf != bIsLeaf {
		return false
	}
	if aIsLeaf {
		if len(aLeaf.elems) != len(bLeaf.elems) {
			return false
		}
		for i, e := range aLeaf.elems {
			if bLeaf.elems[i] != e {
				return false
			}
		}
		return true
	}
	aNode := a.(*Node[T])
	bNode := b.(*Node[T])
	return equalSubtree[T](aNode.left, bNode.left) && equalSubtree[T](aNode.right, bNode.right)
}
