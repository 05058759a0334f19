package flatfile

import (
	"encoding/gob"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pierrec/lz4/v4"
)

// File extensions for supported codecs.
const (
	jsonExtension = ".json"
	gobExtension  = ".gob"
	lz4Extension  = ".lz4"
)

// Default indentation for pretty-printed JSON.
const defaultIndent = "  "

// Codec defines how a record list is serialized and deserialized.
type Codec interface {
	// Encode writes the record list to the writer.
	Encode(w io.Writer, records any) error
	// Decode reads the record list from the reader.
	Decode(r io.Reader, records any) error
	// Extension returns the conventional file extension for this codec.
	Extension() string
}

// JSONCodec implements Codec using JSON encoding with optional indentation.
type JSONCodec struct {
	// Indent specifies the indentation string. Empty string means compact JSON.
	Indent string
}

// NewJSONCodec creates a JSON codec with pretty-printing (2-space indent).
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{Indent: defaultIndent}
}

// Encode implements Codec.Encode using JSON encoding.
func (c *JSONCodec) Encode(w io.Writer, records any) error {
	encoder := json.NewEncoder(w)
	if c.Indent != "" {
		encoder.SetIndent("", c.Indent)
	}
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("json encode: %w", err)
	}
	return nil
}

// Decode implements Codec.Decode using JSON decoding.
func (c *JSONCodec) Decode(r io.Reader, records any) error {
	if err := json.NewDecoder(r).Decode(records); err != nil {
		return fmt.Errorf("json decode: %w", err)
	}
	return nil
}

// Extension implements Codec.Extension for JSON files.
func (c *JSONCodec) Extension() string {
	return jsonExtension
}

// GobCodec implements Codec using gob encoding.
type GobCodec struct{}

// NewGobCodec creates a gob codec.
func NewGobCodec() *GobCodec {
	return &GobCodec{}
}

// Encode implements Codec.Encode using gob encoding.
func (c *GobCodec) Encode(w io.Writer, records any) error {
	if err := gob.NewEncoder(w).Encode(records); err != nil {
		return fmt.Errorf("gob encode: %w", err)
	}
	return nil
}

// Decode implements Codec.Decode using gob decoding.
func (c *GobCodec) Decode(r io.Reader, records any) error {
	if err := gob.NewDecoder(r).Decode(records); err != nil {
		return fmt.Errorf("gob decode: %w", err)
	}
	return nil
}

// Extension implements Codec.Extension for gob files.
func (c *GobCodec) Extension() string {
	return gobExtension
}

// LZ4Codec wraps another codec with LZ4 frame compression.
type LZ4Codec struct {
	// Inner is the codec applied to the decompressed stream.
	Inner Codec
}

// NewLZ4Codec wraps inner with LZ4 compression.
func NewLZ4Codec(inner Codec) *LZ4Codec {
	return &LZ4Codec{Inner: inner}
}

// Encode compresses the inner codec's output with an LZ4 frame writer.
func (c *LZ4Codec) Encode(w io.Writer, records any) error {
	zw := lz4.NewWriter(w)
	if err := c.Inner.Encode(zw, records); err != nil {
		_ = zw.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("lz4 close: %w", err)
	}
	return nil
}

// Decode decompresses an LZ4 frame and decodes with the inner codec.
func (c *LZ4Codec) Decode(r io.Reader, records any) error {
	return c.Inner.Decode(lz4.NewReader(r), records)
}

// Extension appends ".lz4" to the inner codec's extension.
func (c *LZ4Codec) Extension() string {
	return c.Inner.Extension() + lz4Extension
}
