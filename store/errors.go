// SPDX-License-Identifier: MIT

package store

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "store: ". Call sites wrap with
// storeErrorf so errors.Is keeps matching the sentinel.
var (
	// ErrKeyNotFound is returned when a leaf is read that does not exist in the current group.
	ErrKeyNotFound = errors.New("store: key not found")

	// ErrKeyExists is returned when a name is written twice in the same group.
	ErrKeyExists = errors.New("store: key already exists")

	// ErrGroupNotFound is returned by EnterGroup for a missing child group.
	ErrGroupNotFound = errors.New("store: group not found")

	// ErrNoParentGroup is returned by LeaveGroup at the root.
	ErrNoParentGroup = errors.New("store: already at root group")

	// ErrTypeMismatch is returned when a leaf is read as a different kind than it was written.
	ErrTypeMismatch = errors.New("store: value type mismatch")

	// ErrEmptyKey rejects empty names.
	ErrEmptyKey = errors.New("store: empty key")

	// ErrUnknownFormat is returned for an unsupported encoding name or extension.
	ErrUnknownFormat = errors.New("store: unknown format")

	// ErrUnknownCompression is returned for an unsupported compression name.
	ErrUnknownCompression = errors.New("store: unknown compression")
)

// storeErrorf tags err with the operation and the key it concerns.
func storeErrorf(method, key string, err error) error {
	return fmt.Errorf("File.%s(%q): %w", method, key, err)
}
