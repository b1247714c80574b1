// SPDX-License-Identifier: MIT

package store

import (
	"sort"
	"strings"
)

// Writer is the write half of a hierarchical store.
type Writer interface {
	AppendInt(key string, v int64) error
	AppendFloat(key string, v float64) error
	AppendArray(key string, v []float64) error
	// CreateGroup creates a child group of the current group and enters it.
	CreateGroup(name string) error
	LeaveGroup() error
}

// Reader is the read half of a hierarchical store.
type Reader interface {
	ReadInt(key string) (int64, error)
	ReadFloat(key string) (float64, error)
	ReadArray(key string) ([]float64, error)
	// EnterGroup moves the cursor into an existing child group.
	EnterGroup(name string) error
	LeaveGroup() error
}

// group is one node of the tree. The exported fields and tags define the
// persisted document; empty maps are omitted.
type group struct {
	Ints   map[string]int64     `json:"ints,omitempty" yaml:"ints,omitempty" toml:"ints,omitempty"`
	Floats map[string]float64   `json:"floats,omitempty" yaml:"floats,omitempty" toml:"floats,omitempty"`
	Arrays map[string][]float64 `json:"arrays,omitempty" yaml:"arrays,omitempty" toml:"arrays,omitempty"`
	Groups map[string]*group    `json:"groups,omitempty" yaml:"groups,omitempty" toml:"groups,omitempty"`
}

func newGroup() *group { return &group{} }

// has reports whether name is taken by any leaf or child group.
func (g *group) has(name string) bool {
	if _, ok := g.Ints[name]; ok {
		return true
	}
	if _, ok := g.Floats[name]; ok {
		return true
	}
	if _, ok := g.Arrays[name]; ok {
		return true
	}
	_, ok := g.Groups[name]

	return ok
}

// File is an in-memory hierarchical store with a group cursor.
// The zero value is not usable; call NewFile. A File is not safe for
// concurrent use.
type File struct {
	root  *group
	stack []*group // stack[len-1] is the current group; stack[0] == root
	names []string // names[i] is the name of stack[i+1] in its parent
}

// Compile-time checks.
var (
	_ Writer = (*File)(nil)
	_ Reader = (*File)(nil)
)

// NewFile returns an empty File positioned at the root group.
func NewFile() *File {
	return newFileFromRoot(newGroup())
}

func newFileFromRoot(root *group) *File {
	return &File{root: root, stack: []*group{root}}
}

func (f *File) cur() *group { return f.stack[len(f.stack)-1] }

// Path returns the slash-separated path of the current group ("/" at root).
func (f *File) Path() string {
	return "/" + strings.Join(f.names, "/")
}

// Rewind moves the cursor back to the root group.
func (f *File) Rewind() {
	f.stack = f.stack[:1]
	f.names = f.names[:0]
}

// checkNew validates a name about to be written into the current group.
func (f *File) checkNew(method, key string) error {
	if key == "" {
		return storeErrorf(method, key, ErrEmptyKey)
	}
	if f.cur().has(key) {
		return storeErrorf(method, key, ErrKeyExists)
	}

	return nil
}

// AppendInt stores an integer scalar under key in the current group.
func (f *File) AppendInt(key string, v int64) error {
	if err := f.checkNew("AppendInt", key); err != nil {
		return err
	}
	g := f.cur()
	if g.Ints == nil {
		g.Ints = make(map[string]int64)
	}
	g.Ints[key] = v

	return nil
}

// AppendFloat stores a float scalar under key in the current group.
func (f *File) AppendFloat(key string, v float64) error {
	if err := f.checkNew("AppendFloat", key); err != nil {
		return err
	}
	g := f.cur()
	if g.Floats == nil {
		g.Floats = make(map[string]float64)
	}
	g.Floats[key] = v

	return nil
}

// AppendArray stores a copy of v under key in the current group.
func (f *File) AppendArray(key string, v []float64) error {
	if err := f.checkNew("AppendArray", key); err != nil {
		return err
	}
	g := f.cur()
	if g.Arrays == nil {
		g.Arrays = make(map[string][]float64)
	}
	g.Arrays[key] = append(make([]float64, 0, len(v)), v...)

	return nil
}

// CreateGroup adds an empty child group and makes it current.
func (f *File) CreateGroup(name string) error {
	if err := f.checkNew("CreateGroup", name); err != nil {
		return err
	}
	g := f.cur()
	if g.Groups == nil {
		g.Groups = make(map[string]*group)
	}
	child := newGroup()
	g.Groups[name] = child
	f.push(name, child)

	return nil
}

// EnterGroup makes an existing child group current.
func (f *File) EnterGroup(name string) error {
	child, ok := f.cur().Groups[name]
	if !ok || child == nil {
		return storeErrorf("EnterGroup", name, ErrGroupNotFound)
	}
	f.push(name, child)

	return nil
}

// LeaveGroup makes the parent group current.
func (f *File) LeaveGroup() error {
	if len(f.stack) == 1 {
		return storeErrorf("LeaveGroup", "..", ErrNoParentGroup)
	}
	f.stack = f.stack[:len(f.stack)-1]
	f.names = f.names[:len(f.names)-1]

	return nil
}

func (f *File) push(name string, g *group) {
	f.stack = append(f.stack, g)
	f.names = append(f.names, name)
}

// lookupErr classifies a missing key as ErrTypeMismatch when the name exists
// as another kind, ErrKeyNotFound otherwise.
func (f *File) lookupErr(method, key string) error {
	if f.cur().has(key) {
		return storeErrorf(method, key, ErrTypeMismatch)
	}

	return storeErrorf(method, key, ErrKeyNotFound)
}

// ReadInt returns the integer scalar stored under key.
func (f *File) ReadInt(key string) (int64, error) {
	v, ok := f.cur().Ints[key]
	if !ok {
		return 0, f.lookupErr("ReadInt", key)
	}

	return v, nil
}

// ReadFloat returns the float scalar stored under key.
func (f *File) ReadFloat(key string) (float64, error) {
	v, ok := f.cur().Floats[key]
	if !ok {
		return 0, f.lookupErr("ReadFloat", key)
	}

	return v, nil
}

// ReadArray returns a copy of the array stored under key.
func (f *File) ReadArray(key string) ([]float64, error) {
	v, ok := f.cur().Arrays[key]
	if !ok {
		return nil, f.lookupErr("ReadArray", key)
	}

	return append(make([]float64, 0, len(v)), v...), nil
}

// Has reports whether key names a leaf or a child group of the current group.
func (f *File) Has(key string) bool {
	return f.cur().has(key)
}

// Keys lists every name in the current group, sorted.
func (f *File) Keys() []string {
	g := f.cur()
	keys := make([]string, 0, len(g.Ints)+len(g.Floats)+len(g.Arrays)+len(g.Groups))
	for k := range g.Ints {
		keys = append(keys, k)
	}
	for k := range g.Floats {
		keys = append(keys, k)
	}
	for k := range g.Arrays {
		keys = append(keys, k)
	}
	for k := range g.Groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
