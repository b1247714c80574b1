// SPDX-License-Identifier: MIT

package store

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pelletier/go-toml/v2"
)

// marshal encodes the tree rooted at g.
func marshal(format Format, g *group) ([]byte, error) {
	switch format {
	case JSON:
		return sonic.ConfigStd.MarshalIndent(g, "", "  ")
	case YAML:
		return yaml.Marshal(g)
	case TOML:
		return toml.Marshal(g)
	}

	return nil, ErrUnknownFormat
}

// unmarshal decodes data into a fresh tree.
func unmarshal(format Format, data []byte) (*group, error) {
	root := newGroup()
	var err error
	switch format {
	case JSON:
		err = sonic.ConfigStd.Unmarshal(data, root)
	case YAML:
		err = yaml.Unmarshal(data, root)
	case TOML:
		err = toml.Unmarshal(data, root)
	default:
		err = ErrUnknownFormat
	}
	if err != nil {
		return nil, err
	}

	return root, nil
}

// Encode writes the whole tree of f (independent of its cursor) to w.
func Encode(w io.Writer, f *File, opts ...Option) error {
	o := gatherOptions(opts...)
	data, err := marshal(o.format, f.root)
	if err != nil {
		return fmt.Errorf("store.Encode(%s): %w", o.format, err)
	}

	switch o.compression {
	case Gzip:
		zw := gzip.NewWriter(w)
		if _, err = zw.Write(data); err != nil {
			_ = zw.Close()
			return fmt.Errorf("store.Encode(gzip): %w", err)
		}
		if err = zw.Close(); err != nil {
			return fmt.Errorf("store.Encode(gzip): %w", err)
		}
	case Zstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return fmt.Errorf("store.Encode(zstd): %w", err)
		}
		if _, err = zw.Write(data); err != nil {
			_ = zw.Close()
			return fmt.Errorf("store.Encode(zstd): %w", err)
		}
		if err = zw.Close(); err != nil {
			return fmt.Errorf("store.Encode(zstd): %w", err)
		}
	default:
		if _, err = w.Write(data); err != nil {
			return fmt.Errorf("store.Encode: %w", err)
		}
	}

	return nil
}

// Decode reads a tree written by Encode with the same options.
// The returned File is positioned at the root group.
func Decode(r io.Reader, opts ...Option) (*File, error) {
	o := gatherOptions(opts...)

	var (
		data []byte
		err  error
	)
	switch o.compression {
	case Gzip:
		zr, zerr := gzip.NewReader(r)
		if zerr != nil {
			return nil, fmt.Errorf("store.Decode(gzip): %w", zerr)
		}
		data, err = io.ReadAll(zr)
		_ = zr.Close()
	case Zstd:
		zr, zerr := zstd.NewReader(r)
		if zerr != nil {
			return nil, fmt.Errorf("store.Decode(zstd): %w", zerr)
		}
		data, err = io.ReadAll(zr)
		zr.Close()
	default:
		data, err = io.ReadAll(r)
	}
	if err != nil {
		return nil, fmt.Errorf("store.Decode(%s): %w", o.compression, err)
	}

	root, err := unmarshal(o.format, data)
	if err != nil {
		return nil, fmt.Errorf("store.Decode(%s): %w", o.format, err)
	}

	return newFileFromRoot(root), nil
}

// WriteFile encodes f into path. Format and compression are inferred from
// the extension when possible (see InferOptions); explicit opts override
// the inferred ones. The document is written to a temporary sibling and
// renamed into place, so readers never observe a half-written file.
func WriteFile(path string, f *File, opts ...Option) error {
	var buf bytes.Buffer
	if err := Encode(&buf, f, resolveFileOptions(path, opts)...); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("store.WriteFile(%q): %w", path, err)
	}
	tmpName := tmp.Name()
	if _, err = tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("store.WriteFile(%q): %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("store.WriteFile(%q): %w", path, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("store.WriteFile(%q): %w", path, err)
	}

	return nil
}

// ReadFile decodes the document at path; options resolve as in WriteFile.
func ReadFile(path string, opts ...Option) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("store.ReadFile(%q): %w", path, err)
	}
	defer fh.Close()

	return Decode(fh, resolveFileOptions(path, opts)...)
}

// resolveFileOptions puts inferred options first so explicit ones win.
// An unrecognised extension simply contributes nothing.
func resolveFileOptions(path string, opts []Option) []Option {
	inferred, err := InferOptions(path)
	if err != nil {
		return opts
	}

	return append(inferred, opts...)
}
