/*
Package flat linearizes partition trees into parent-indexed record lists and
reconstructs trees from them.

A record list is a flat, order-independent description of a tree: every node
becomes one record carrying a stable integer id, its kind (leaf or node), the
side it hangs off its parent, the parent's id, and, for leaves, the element
fragment. The list fully determines the tree through the parent/side linkage
alone; list position carries no meaning beyond the emission order documented
on Flatten.

Both directions are iterative by design. Flatten drives an explicit work
stack instead of recursing, and Rebuild assembles subtrees bottom-up through
two id-keyed maps, so arbitrarily deep trees never touch the call stack.
This makes the record list the natural serialization unit for partition
trees; package flatfile persists it.

_________________________________________________________________________

# BSD 3-Clause License

Please refer to the License file in the repository root.
*/
package flat

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
