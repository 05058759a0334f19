package parti

import (
	"fmt"
	"io"
)

type nodeids[T any] struct {
	idTable map[Subtree[T]]int
	max     int
}

func newtable[T any]() nodeids[T] {
	return nodeids[T]{
		idTable: make(map[Subtree[T]]int),
		max:     1,
	}
}

func (ids nodeids[T]) find(sub Subtree[T]) int {
	return ids.idTable[sub]
}

func (ids *nodeids[T]) alloc(sub Subtree[T]) int {
	if id := ids.find(sub); id > 0 {
		return id
	}
	ids.idTable[sub] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the structure of a partition tree in Graphviz DOT format
// (for debugging purposes).
func Dot[T any](w io.Writer, tree *Tree[T]) {
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[T]()
	nodelist, edgelist := "", ""
	dotSubtree(tree.Root(), &ids, &nodelist, &edgelist)
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func dotSubtree[T any](sub Subtree[T], ids *nodeids[T], nodelist, edgelist *string) {
	ID := ids.alloc(sub)
	if leaf, ok := sub.(*Leaf[T]); ok {
		label := fmt.Sprintf("%v", leaf.elems)
		*nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, dotStyles(true))
		return
	}
	node := sub.(*Node[T])
	*nodelist += fmt.Sprintf("\"%d\" [label=\"\" %s];\n", ID, dotStyles(false))
	*edgelist += fmt.Sprintf("\"%d\" -> \"%d\" [label=\"L\"];\n", ID, ids.alloc(node.left))
	*edgelist += fmt.Sprintf("\"%d\" -> \"%d\" [label=\"R\"];\n", ID, ids.alloc(node.right))
	dotSubtree(node.left, ids, nodelist, edgelist)
	dotSubtree(node.right, ids, nodelist, edgelist)
}

func dotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
