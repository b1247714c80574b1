// SPDX-License-Identifier: MIT

package store

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format selects the document encoding.
type Format int

const (
	// JSON encodes with bytedance/sonic (std-compatible config).
	JSON Format = iota
	// YAML encodes with goccy/go-yaml.
	YAML
	// TOML encodes with pelletier/go-toml/v2.
	TOML
)

// Compression selects an optional byte-stream wrapper around the document.
type Compression int

const (
	// NoCompression writes the document as-is.
	NoCompression Compression = iota
	// Gzip wraps the document in a gzip stream.
	Gzip
	// Zstd wraps the document in a zstd frame.
	Zstd
)

// Defaults (single source of truth for zero-option behavior).
const (
	DefaultFormat      = JSON
	DefaultCompression = NoCompression
)

const (
	panicFormatInvalid      = "store: WithFormat: unsupported format"
	panicCompressionInvalid = "store: WithCompression: unsupported compression"
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// String returns the lowercase compression name.
func (c Compression) String() string {
	switch c {
	case NoCompression:
		return "none"
	case Gzip:
		return "gzip"
	case Zstd:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", int(c))
	}
}

// ParseFormat maps "json", "yaml"/"yml" or "toml" (any case) to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	}

	return 0, fmt.Errorf("ParseFormat(%q): %w", s, ErrUnknownFormat)
}

// ParseCompression maps "none"/"", "gzip"/"gz" or "zstd"/"zst" to a Compression.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return NoCompression, nil
	case "gzip", "gz":
		return Gzip, nil
	case "zstd", "zst":
		return Zstd, nil
	}

	return 0, fmt.Errorf("ParseCompression(%q): %w", s, ErrUnknownCompression)
}

// Option configures Encode/Decode/WriteFile/ReadFile.
// Constructors panic only on values outside the declared enums (programmer error).
type Option func(*options)

type options struct {
	format      Format
	compression Compression
}

// WithFormat selects the document encoding.
func WithFormat(f Format) Option {
	if f < JSON || f > TOML {
		panic(panicFormatInvalid)
	}

	return func(o *options) { o.format = f }
}

// WithCompression selects the stream compression.
func WithCompression(c Compression) Option {
	if c < NoCompression || c > Zstd {
		panic(panicCompressionInvalid)
	}

	return func(o *options) { o.compression = c }
}

// gatherOptions resolves opts on top of the defaults; later options win.
func gatherOptions(opts ...Option) options {
	o := options{format: DefaultFormat, compression: DefaultCompression}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// InferOptions derives format and compression from a file name such as
// "model.yaml", "stats.json.gz" or "model.toml.zst".
// It fails with ErrUnknownFormat when the document extension is not recognised.
func InferOptions(path string) ([]Option, error) {
	name := strings.ToLower(filepath.Base(path))
	comp := NoCompression
	switch ext := filepath.Ext(name); ext {
	case ".gz":
		comp = Gzip
		name = strings.TrimSuffix(name, ext)
	case ".zst", ".zstd":
		comp = Zstd
		name = strings.TrimSuffix(name, ext)
	}

	format, err := ParseFormat(strings.TrimPrefix(filepath.Ext(name), "."))
	if err != nil {
		return nil, fmt.Errorf("InferOptions(%q): %w", path, ErrUnknownFormat)
	}

	return []Option{WithFormat(format), WithCompression(comp)}, nil
}
