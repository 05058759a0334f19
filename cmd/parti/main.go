// Package main provides the entry point for the parti CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/trevnik/parti/cmd/parti/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "parti",
		Short: "parti - balanced binary partition trees with a flat serialized form",
		Long: `parti builds balanced binary partition trees over ordered element
sequences and converts them to and from a flat, parent-indexed record list.

Commands:
  build     Build a tree from elements and render it
  flatten   Emit the flat record list for an element sequence
  rebuild   Reconstruct and render a tree from a record file`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewBuildCommand())
	rootCmd.AddCommand(commands.NewFlattenCommand())
	rootCmd.AddCommand(commands.NewRebuildCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
