package flatfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/trevnik/parti/flat"
)

// Filename joins a directory and basename with the codec's conventional
// extension, e.g. Filename("idx", "tree", codec) -> "idx/tree.json".
func Filename(dir, basename string, codec Codec) string {
	return filepath.Join(dir, basename+codec.Extension())
}

// Save writes a record list to path using the given codec.
func Save[T any](path string, codec Codec, records []flat.Record[T]) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create record file: %w", err)
	}
	defer file.Close()
	if err := codec.Encode(file, records); err != nil {
		return fmt.Errorf("encode record file %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close record file: %w", err)
	}
	tracer().Debugf("flatfile: saved %d record(s) to %s", len(records), path)
	return nil
}

// Load reads a record list from path using the given codec.
//
// The list is checked against the flat linkage invariants before being
// returned; a well-encoded file describing a malformed tree fails here with
// flat.ErrBadStructure.
func Load[T any](path string, codec Codec) ([]flat.Record[T], error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open record file: %w", err)
	}
	defer file.Close()
	var records []flat.Record[T]
	if err := codec.Decode(file, &records); err != nil {
		return nil, fmt.Errorf("decode record file %s: %w", path, err)
	}
	if err := flat.Verify(records); err != nil {
		return nil, fmt.Errorf("record file %s: %w", path, err)
	}
	tracer().Debugf("flatfile: loaded %d record(s) from %s", len(records), path)
	return records, nil
}
