/*
Package parti builds balanced binary partition trees over ordered element
sequences and converts them to and from a flat, parent-indexed record form.

# Partition trees

A partition tree splits an ordered sequence recursively at the midpoint until
every fragment fits into a leaf of at most a configured number of elements.
Elements are never reordered; each leaf holds a contiguous sub-slice of the
input, and an in-order walk over the leaves yields the input sequence exactly.
This is the construction used by bounding-volume hierarchies and similar
hierarchical indexes, with the payload semantics left entirely to the caller:
package parti interprets elements only by their position.

Trees are built once and never mutated. The module offers two independent
construction paths:

  - Build (this package) constructs a tree directly by recursive splitting.
  - Package flat constructs the same topology iteratively, emitting a list of
    parent-indexed records suitable for storage or transmission, and rebuilds
    a tree from such a list without recursion.

The two paths produce identical topologies and are cross-checked in the
package tests.

Rendering helpers (Fprint, Dot) produce human-readable and Graphviz views of
a tree for debugging.

_________________________________________________________________________

# BSD 3-Clause License

Please refer to the License file in the repository root.
*/
package parti

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'parti'
func tracer() tracing.Trace {
	return tracing.Select("parti")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
