package parti

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes an indentation-based rendering of a tree to w.
//
// Internal nodes are rendered as @L/@R markers annotated with their level;
// leaves print their element fragment. A small tree renders as
//
//	@L:(0)
//		[1 2]
//	@R:(0)
//		@L:(1)
//			[3]
//		@R:(1)
//			[4 5]
//
// with tab indentation per level. A lone root leaf prints just its fragment.
func Fprint[T any](w io.Writer, tree *Tree[T]) error {
	root := tree.Root()
	if leaf, ok := root.(*Leaf[T]); ok {
		_, err := fmt.Fprintf(w, "%v\n", leaf.elems)
		return err
	}
	return fprintNode(w, root.(*Node[T]), 0)
}

func fprintNode[T any](w io.Writer, node *Node[T], level int) error {
	if err := fprintSide[T](w, node.left, "L", level); err != nil {
		return err
	}
	return fprintSide[T](w, node.right, "R", level)
}

func fprintSide[T any](w io.Writer, sub Subtree[T], side string, level int) error {
	indent := strings.Repeat("\t", level)
	if _, err := fmt.Fprintf(w, "%s@%s:(%d)\n", indent, side, level); err != nil {
		return err
	}
	if leaf, ok := sub.(*Leaf[T]); ok {
		_, err := fmt.Fprintf(w, "%s\t%v\n", indent, leaf.elems)
		return err
	}
	return fprintNode(w, sub.(*Node[T]), level+1)
}

// Sprint returns the Fprint rendering of a tree as a string.
func Sprint[T any](tree *Tree[T]) string {
	var sb strings.Builder
	err := Fprint(&sb, tree)
	assert(err == nil, "Sprint: string builder cannot fail")
	return sb.String()
}
