/*
Package flatfile persists flat record lists to files.

Serialization is codec-based: JSON for interchange and inspection, gob for
compact binary storage, and an LZ4 wrapper that stream-compresses either.
Loading verifies the linkage invariants of the record list before handing it
to the caller, so a file that decodes but describes a malformed tree is
rejected here rather than during Rebuild.

_________________________________________________________________________

# BSD 3-Clause License

Please refer to the License file in the repository root.
*/
package flatfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'parti'
func tracer() tracing.Trace {
	return tracing.Select("parti")
}
