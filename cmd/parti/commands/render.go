package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/trevnik/parti"
)

var (
	leftMarker  = color.New(color.FgCyan)
	rightMarker = color.New(color.FgMagenta)
	leafStyle   = color.New(color.Faint)
)

// fprintColored mirrors parti.Fprint with colored side markers. Color is
// disabled automatically when w is not a terminal.
func fprintColored(w io.Writer, tree *parti.Tree[string]) error {
	root := tree.Root()
	if leaf, ok := root.(*parti.Leaf[string]); ok {
		_, err := fmt.Fprintf(w, "%v\n", leaf.Elements())
		return err
	}
	return colorNode(w, root.(*parti.Node[string]), 0)
}

func colorNode(w io.Writer, node *parti.Node[string], level int) error {
	if err := colorSide(w, node.Left(), leftMarker, "L", level); err != nil {
		return err
	}
	return colorSide(w, node.Right(), rightMarker, "R", level)
}

func colorSide(w io.Writer, sub parti.Subtree[string], marker *color.Color, side string, level int) error {
	indent := strings.Repeat("\t", level)
	if _, err := fmt.Fprintf(w, "%s%s\n", indent, marker.Sprintf("@%s:(%d)", side, level)); err != nil {
		return err
	}
	if leaf, ok := sub.(*parti.Leaf[string]); ok {
		_, err := fmt.Fprintf(w, "%s\t%s\n", indent, leafStyle.Sprintf("%v", leaf.Elements()))
		return err
	}
	return colorNode(w, sub.(*parti.Node[string]), level+1)
}
