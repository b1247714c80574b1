// SPDX-License-Identifier: MIT

package store_test

import (
	"testing"

	"github.com/katalvlaran/gaussmix/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFile_ScalarsAndArrays writes every leaf kind and reads it back.
func TestFile_ScalarsAndArrays(t *testing.T) {
	f := store.NewFile()
	require.NoError(t, f.AppendInt("n", 3))
	require.NoError(t, f.AppendFloat("ll", -12.5))
	require.NoError(t, f.AppendArray("w", []float64{0.25, 0.75}))

	n, err := f.ReadInt("n")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	ll, err := f.ReadFloat("ll")
	require.NoError(t, err)
	assert.Equal(t, -12.5, ll)

	w, err := f.ReadArray("w")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.75}, w)

	assert.Equal(t, []string{"ll", "n", "w"}, f.Keys())
}

// TestFile_ArraysAreCopied guards against aliasing between caller slices and stored data.
func TestFile_ArraysAreCopied(t *testing.T) {
	f := store.NewFile()
	src := []float64{1, 2}
	require.NoError(t, f.AppendArray("a", src))
	src[0] = 99

	got, err := f.ReadArray("a")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, got)

	got[1] = -1
	again, err := f.ReadArray("a")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, again)
}

// TestFile_Groups walks into nested groups and back out.
func TestFile_Groups(t *testing.T) {
	f := store.NewFile()
	require.NoError(t, f.CreateGroup("component0"))
	assert.Equal(t, "/component0", f.Path())
	require.NoError(t, f.AppendInt("n_inputs", 2))
	require.NoError(t, f.CreateGroup("inner"))
	assert.Equal(t, "/component0/inner", f.Path())
	require.NoError(t, f.LeaveGroup())
	require.NoError(t, f.LeaveGroup())
	assert.Equal(t, "/", f.Path())

	_, err := f.ReadInt("n_inputs")
	assert.ErrorIs(t, err, store.ErrKeyNotFound, "leaf lives in the child group only")

	require.NoError(t, f.EnterGroup("component0"))
	v, err := f.ReadInt("n_inputs")
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)

	f.Rewind()
	assert.Equal(t, "/", f.Path())
	assert.True(t, f.Has("component0"))
}

// TestFile_Errors covers every sentinel the File surface can return.
func TestFile_Errors(t *testing.T) {
	f := store.NewFile()
	require.NoError(t, f.AppendInt("k", 1))

	assert.ErrorIs(t, f.AppendInt("k", 2), store.ErrKeyExists)
	assert.ErrorIs(t, f.AppendArray("k", nil), store.ErrKeyExists, "names are unique across kinds")
	assert.ErrorIs(t, f.CreateGroup("k"), store.ErrKeyExists)
	assert.ErrorIs(t, f.AppendFloat("", 1), store.ErrEmptyKey)

	_, err := f.ReadFloat("k")
	assert.ErrorIs(t, err, store.ErrTypeMismatch)
	_, err = f.ReadArray("missing")
	assert.ErrorIs(t, err, store.ErrKeyNotFound)

	assert.ErrorIs(t, f.EnterGroup("nope"), store.ErrGroupNotFound)
	assert.ErrorIs(t, f.LeaveGroup(), store.ErrNoParentGroup)
}
