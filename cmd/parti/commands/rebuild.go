package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/trevnik/parti/flat"
	"github.com/trevnik/parti/flatfile"
)

// NewRebuildCommand creates the `parti rebuild` command.
func NewRebuildCommand() *cobra.Command {
	var codecName string
	var asDot bool

	cmd := &cobra.Command{
		Use:   "rebuild <record-file>",
		Short: "Reconstruct and render a tree from a record file",
		Long: `Rebuild loads a flat record list, reconstructs the partition tree it
describes, and renders the tree. Files violating the record linkage
invariants are rejected with the specific violation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			var codec flatfile.Codec
			var err error
			if codecName != "" {
				// An explicit codec still respects a compressed file.
				codec, err = codecFor(codecName, strings.HasSuffix(path, ".lz4"))
			} else {
				codec, err = inferCodec(path)
			}
			if err != nil {
				return err
			}
			records, err := flatfile.Load[string](path, codec)
			if err != nil {
				return err
			}
			tree, err := flat.Rebuild(records)
			if err != nil {
				return err
			}
			return renderTree(cmd.OutOrStdout(), tree, asDot)
		},
	}

	cmd.Flags().StringVar(&codecName, "codec", "", "record file codec (default: inferred from extension)")
	cmd.Flags().BoolVar(&asDot, "dot", false, "emit Graphviz DOT instead of annotated text")

	return cmd
}
