package commands

import (
	"github.com/spf13/cobra"

	"github.com/trevnik/parti"
)

// NewBuildCommand creates the `parti build` command.
func NewBuildCommand() *cobra.Command {
	var maxElems int
	var asDot bool

	cmd := &cobra.Command{
		Use:   "build [elements...]",
		Short: "Build a partition tree from elements and render it",
		Long: `Build constructs a balanced binary partition tree over the given
elements (or over whitespace-separated tokens from stdin) by recursive
midpoint splitting, and prints it with level and side annotations.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			elems, err := readElements(cmd, args)
			if err != nil {
				return err
			}
			tree, err := parti.Build(elems, maxElems)
			if err != nil {
				return err
			}
			return renderTree(cmd.OutOrStdout(), tree, asDot)
		},
	}

	cmd.Flags().IntVarP(&maxElems, "max-elems", "m", 2, "maximum number of elements per leaf")
	cmd.Flags().BoolVar(&asDot, "dot", false, "emit Graphviz DOT instead of annotated text")

	return cmd
}
