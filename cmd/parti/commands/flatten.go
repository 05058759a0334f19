package commands

import (
	"github.com/spf13/cobra"

	"github.com/trevnik/parti/flatfile"
)

// NewFlattenCommand creates the `parti flatten` command.
func NewFlattenCommand() *cobra.Command {
	var maxElems int
	var out string
	var codecName string
	var compress bool

	cmd := &cobra.Command{
		Use:   "flatten [elements...]",
		Short: "Emit the flat record list for an element sequence",
		Long: `Flatten linearizes the partition tree over the given elements into a
flat, parent-indexed record list, without building the tree. The list is
written to --out with the selected codec, or as JSON to stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := flattenElements(cmd, args, maxElems)
			if err != nil {
				return err
			}
			if out == "" {
				return flatfile.NewJSONCodec().Encode(cmd.OutOrStdout(), records)
			}
			codec, err := codecFor(codecName, compress)
			if err != nil {
				return err
			}
			return flatfile.Save(out, codec, records)
		},
	}

	cmd.Flags().IntVarP(&maxElems, "max-elems", "m", 2, "maximum number of elements per leaf")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: JSON to stdout)")
	cmd.Flags().StringVar(&codecName, "codec", "json", "record file codec: json or gob")
	cmd.Flags().BoolVar(&compress, "compress", false, "LZ4-compress the record file")

	return cmd
}
