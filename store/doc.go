// SPDX-License-Identifier: MIT

// Package store is a small hierarchical key/value container used to persist
// model parameters.
//
// A File is a tree of groups. Every group holds typed leaves (int scalars,
// float scalars, float arrays) and child groups, all addressed by name.
// A cursor tracks the current group; CreateGroup/EnterGroup descend and
// LeaveGroup climbs back, much like `cd name` / `cd ..` in a shell.
//
//	f := store.NewFile()
//	_ = f.AppendInt("n_inputs", 2)
//	_ = f.CreateGroup("component0")
//	_ = f.AppendArray("mean", []float64{0, 1})
//	_ = f.LeaveGroup()
//
// Persistence:
//   - Encode/Decode serialise the whole tree as JSON (bytedance/sonic),
//     YAML (goccy/go-yaml) or TOML (pelletier/go-toml/v2), optionally
//     wrapped in gzip or zstd (klauspost/compress).
//   - WriteFile/ReadFile infer format and compression from the path
//     extension (".json", ".yaml", ".toml", optional ".gz"/".zst").
//   - Floats are written with shortest round-trip formatting, so a value
//     read back is bit-identical to the value written.
//
// Key rules:
//   - Names are unique within a group across all leaf kinds and groups;
//     writing an existing name fails with ErrKeyExists.
//   - Reading a missing name fails with ErrKeyNotFound; reading a leaf as
//     the wrong kind fails with ErrTypeMismatch.
//
// Readers and writers consume the Reader and Writer interfaces so any other
// hierarchical container (HDF5 bindings, a database) can stand in for File.
package store
