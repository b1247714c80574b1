// SPDX-License-Identifier: MIT

package gmm

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/gaussmix/gaussian"
	"github.com/katalvlaran/gaussmix/store"
	"go.uber.org/zap"
)

// Persisted keys of Machine.
const (
	keyNComponents     = "n_components"
	keyNInputs         = "n_inputs"
	keyWeights         = "weights"
	keyComponentPrefix = "component"
)

// componentKey names the group of component i ("component0", "component1", …).
func componentKey(i int) string {
	return keyComponentPrefix + strconv.Itoa(i)
}

// NewFromStore builds a Machine from the current group of r.
func NewFromStore(r store.Reader, opts ...Option) (*Machine, error) {
	m := New(opts...)
	if err := m.Load(r); err != nil {
		return nil, err
	}

	return m, nil
}

// Save writes m into the current group of w: n_components, n_inputs, one
// group per component in order, then weights. The empty Machine cannot be
// saved (ErrDegenerateMixture).
func (m *Machine) Save(w store.Writer) error {
	if m.nComponents == 0 {
		return gmmErrorf("Save", ErrDegenerateMixture)
	}
	if err := m.validateComponents(); err != nil {
		return gmmErrorf("Save", err)
	}
	if err := w.AppendInt(keyNComponents, int64(m.nComponents)); err != nil {
		return gmmErrorf("Save", err)
	}
	if err := w.AppendInt(keyNInputs, int64(m.nInputs)); err != nil {
		return gmmErrorf("Save", err)
	}
	for i := range m.components {
		if err := w.CreateGroup(componentKey(i)); err != nil {
			return gmmErrorf("Save", err)
		}
		if err := m.components[i].Save(w); err != nil {
			return gmmErrorf("Save", fmt.Errorf("%s: %w", componentKey(i), err))
		}
		if err := w.LeaveGroup(); err != nil {
			return gmmErrorf("Save", err)
		}
	}
	if err := w.AppendArray(keyWeights, m.weights); err != nil {
		return gmmErrorf("Save", err)
	}
	m.log().Debug("gmm: saved", zap.Int("components", m.nComponents), zap.Int("inputs", m.nInputs))

	return nil
}

// Load replaces m with the mixture stored in the current group of r. The
// stored shape is trusted only after the weights array confirms K, so a
// corrupt document yields an error rather than a huge allocation. Store
// errors are returned wrapped and unchanged; m keeps its previous
// parameters on any error.
func (m *Machine) Load(r store.Reader) error {
	storedK, err := r.ReadInt(keyNComponents)
	if err != nil {
		return gmmErrorf("Load", err)
	}
	storedD, err := r.ReadInt(keyNInputs)
	if err != nil {
		return gmmErrorf("Load", err)
	}
	k, d, err := validateStoredShape(storedK, storedD)
	if err != nil {
		return gmmErrorf("Load", err)
	}

	weights, err := r.ReadArray(keyWeights)
	if err != nil {
		return gmmErrorf("Load", err)
	}
	if len(weights) != k {
		return gmmErrorf("Load", fmt.Errorf("%s: len=%d, components=%d: %w", keyWeights, len(weights), k, ErrBadShape))
	}

	components := make([]gaussian.Gaussian, 0, len(weights))
	for i := 0; i < k; i++ {
		var g gaussian.Gaussian
		if err = loadComponent(r, componentKey(i), &g); err != nil {
			return gmmErrorf("Load", err)
		}
		if g.NInputs() != d {
			return gmmErrorf("Load", fmt.Errorf("%s has %d inputs, want %d: %w",
				componentKey(i), g.NInputs(), d, ErrBadShape))
		}
		components = append(components, g)
	}

	m.nComponents, m.nInputs = k, d
	m.components, m.weights = components, weights
	m.log().Debug("gmm: loaded", zap.Int("components", m.nComponents), zap.Int("inputs", m.nInputs))

	return nil
}

// loadComponent enters group name, loads g from it and leaves again, also
// when loading fails, so the reader's cursor is restored.
func loadComponent(r store.Reader, name string, g *gaussian.Gaussian) error {
	if err := r.EnterGroup(name); err != nil {
		return err
	}
	if err := g.Load(r); err != nil {
		_ = r.LeaveGroup()
		return fmt.Errorf("%s: %w", name, err)
	}

	return r.LeaveGroup()
}

// SaveFile persists m to path via store.WriteFile (format and compression
// inferred from the extension unless opts say otherwise).
func (m *Machine) SaveFile(path string, opts ...store.Option) error {
	f := store.NewFile()
	if err := m.Save(f); err != nil {
		return gmmErrorf("SaveFile", err)
	}
	if err := store.WriteFile(path, f, opts...); err != nil {
		return gmmErrorf("SaveFile", err)
	}

	return nil
}

// LoadFile replaces m with the mixture persisted at path. m is unchanged on error.
func (m *Machine) LoadFile(path string, opts ...store.Option) error {
	f, err := store.ReadFile(path, opts...)
	if err != nil {
		return gmmErrorf("LoadFile", err)
	}

	return m.Load(f)
}
