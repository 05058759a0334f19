// Package commands implements the parti CLI subcommands.
package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trevnik/parti"
	"github.com/trevnik/parti/flat"
	"github.com/trevnik/parti/flatfile"
)

// readElements collects the element sequence for a command: positional args
// when given, otherwise whitespace-separated tokens from stdin. Commas count
// as separators so "1,2,3" works as a single argument.
func readElements(cmd *cobra.Command, args []string) ([]string, error) {
	raw := args
	if len(raw) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read elements from stdin: %w", err)
		}
		raw = strings.Fields(string(data))
	}
	var elems []string
	for _, token := range raw {
		for _, part := range strings.Split(token, ",") {
			if part != "" {
				elems = append(elems, part)
			}
		}
	}
	return elems, nil
}

// codecFor maps a --codec flag value to a flatfile codec.
func codecFor(name string, compress bool) (flatfile.Codec, error) {
	var codec flatfile.Codec
	switch name {
	case "json":
		codec = flatfile.NewJSONCodec()
	case "gob":
		codec = flatfile.NewGobCodec()
	default:
		return nil, fmt.Errorf("unknown codec %q (want json or gob)", name)
	}
	if compress {
		codec = flatfile.NewLZ4Codec(codec)
	}
	return codec, nil
}

// inferCodec picks a codec from a record file's extension chain, e.g.
// "tree.gob.lz4" selects LZ4-wrapped gob.
func inferCodec(path string) (flatfile.Codec, error) {
	name := path
	compress := false
	if strings.HasSuffix(name, ".lz4") {
		compress = true
		name = strings.TrimSuffix(name, ".lz4")
	}
	switch {
	case strings.HasSuffix(name, ".json"):
		return codecFor("json", compress)
	case strings.HasSuffix(name, ".gob"):
		return codecFor("gob", compress)
	}
	return nil, fmt.Errorf("cannot infer codec from %q; use --codec", path)
}

// renderTree prints a tree, as DOT when requested, colored text otherwise.
func renderTree(w io.Writer, tree *parti.Tree[string], asDot bool) error {
	if asDot {
		parti.Dot(w, tree)
		return nil
	}
	return fprintColored(w, tree)
}

// flattenElements is the shared build-input path of the flatten command.
func flattenElements(cmd *cobra.Command, args []string, maxElems int) ([]flat.Record[string], error) {
	elems, err := readElements(cmd, args)
	if err != nil {
		return nil, err
	}
	return flat.Flatten(elems, maxElems)
}
