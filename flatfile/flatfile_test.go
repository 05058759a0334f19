package flatfile

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/trevnik/parti"
	"github.com/trevnik/parti/flat"
)

func sampleRecords(t *testing.T) []flat.Record[string] {
	t.Helper()
	elems := []string{"a", "b", "c", "d", "e", "f", "g"}
	records, err := flat.Flatten(elems, 2)
	require.NoError(t, err)
	return records
}

func TestFilename(t *testing.T) {
	require.Equal(t, filepath.Join("idx", "tree.json"), Filename("idx", "tree", NewJSONCodec()))
	require.Equal(t, filepath.Join("idx", "tree.gob.lz4"), Filename("idx", "tree", NewLZ4Codec(NewGobCodec())))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	codecs := map[string]Codec{
		"json":     NewJSONCodec(),
		"compact":  &JSONCodec{},
		"gob":      NewGobCodec(),
		"json.lz4": NewLZ4Codec(NewJSONCodec()),
		"gob.lz4":  NewLZ4Codec(NewGobCodec()),
	}
	records := sampleRecords(t)
	for name, codec := range codecs {
		t.Run(name, func(t *testing.T) {
			path := Filename(t.TempDir(), "tree", codec)
			require.NoError(t, Save(path, codec, records))
			loaded, err := Load[string](path, codec)
			require.NoError(t, err)
			require.Equal(t, records, loaded)
		})
	}
}

func TestSaveLoadRebuildsEquivalentTree(t *testing.T) {
	elems := []string{"a", "b", "c", "d", "e"}
	reference, err := parti.Build(elems, 2)
	require.NoError(t, err)
	records, err := flat.Flatten(elems, 2)
	require.NoError(t, err)

	codec := NewLZ4Codec(NewGobCodec())
	path := Filename(t.TempDir(), "tree", codec)
	require.NoError(t, Save(path, codec, records))

	loaded, err := Load[string](path, codec)
	require.NoError(t, err)
	rebuilt, err := flat.Rebuild(loaded)
	require.NoError(t, err)
	require.True(t, parti.Equal(reference, rebuilt))
}

func TestLoadRejectsMalformedList(t *testing.T) {
	records := sampleRecords(t)
	records[1].ID = records[2].ID // duplicate id

	codec := NewJSONCodec()
	path := Filename(t.TempDir(), "tree", codec)
	require.NoError(t, Save(path, codec, records))

	_, err := Load[string](path, codec)
	require.ErrorIs(t, err, flat.ErrBadStructure)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load[string](filepath.Join(t.TempDir(), "nope.json"), NewJSONCodec())
	require.Error(t, err)
}

func TestLoadWrongCodecFails(t *testing.T) {
	path := Filename(t.TempDir(), "tree", NewJSONCodec())
	require.NoError(t, Save(path, NewJSONCodec(), sampleRecords(t)))
	// Decoding a JSON file with the gob codec must surface a decode error.
	_, err := Load[string](path, NewGobCodec())
	require.Error(t, err)
}
