// SPDX-License-Identifier: MIT

package gmm

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/gaussmix/gaussian"
	"github.com/katalvlaran/gaussmix/sampler"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
)

// Scorer maps a labeled feature vector to a scalar score.
// Evaluation pipelines depend on this interface rather than on *Machine.
type Scorer interface {
	Forward(frame sampler.Frame) (float64, error)
}

// Machine is a Gaussian mixture: K weighted diagonal Gaussians over D inputs.
//
// A Machine exclusively owns its weights and components; Clone and CopyFrom
// produce independent deep copies. The zero value behaves like New().
type Machine struct {
	nComponents int
	nInputs     int
	weights     []float64           // len == nComponents
	components  []gaussian.Gaussian // len == nComponents, each NInputs() == nInputs
	logger      *zap.Logger
	metrics     *Metrics // nil: disabled
}

// Compile-time checks.
var (
	_ Scorer       = (*Machine)(nil)
	_ fmt.Stringer = (*Machine)(nil)
)

// New returns the empty (0,0) Machine. It is meant as a Load target;
// Resize it before use.
func New(opts ...Option) *Machine {
	o := gatherOptions(opts...)

	return &Machine{logger: o.logger, metrics: o.metrics}
}

// NewMachine returns a Machine with k components over d inputs, uniform
// weights 1/k and standard-normal components.
//
// Errors: ErrDegenerateMixture (k <= 0), ErrBadShape (d <= 0).
func NewMachine(k, d int, opts ...Option) (*Machine, error) {
	m := New(opts...)
	if err := m.Resize(k, d); err != nil {
		return nil, err
	}

	return m, nil
}

// log never returns nil, so a zero-value Machine is usable.
func (m *Machine) log() *zap.Logger {
	if m.logger == nil {
		return zap.NewNop()
	}

	return m.logger
}

// Resize reshapes m to k components over d inputs. Previous weights and
// component parameters are discarded. m is unchanged on error.
func (m *Machine) Resize(k, d int) error {
	if err := validateShape(k, d); err != nil {
		return gmmErrorf("Resize", err)
	}

	weights := make([]float64, k)
	floats.AddConst(1/float64(k), weights)
	components := make([]gaussian.Gaussian, k)
	for i := range components {
		if err := components[i].Resize(d); err != nil {
			return gmmErrorf("Resize", err)
		}
	}

	m.nComponents, m.nInputs = k, d
	m.weights, m.components = weights, components
	m.log().Debug("gmm: resized", zap.Int("components", k), zap.Int("inputs", d))

	return nil
}

// SetNInputs is Resize(NComponents(), d).
func (m *Machine) SetNInputs(d int) error {
	return m.Resize(m.nComponents, d)
}

// NComponents returns K.
func (m *Machine) NComponents() int { return m.nComponents }

// NInputs returns D.
func (m *Machine) NInputs() int { return m.nInputs }

// Gaussian returns component i, or nil when i is outside [0, K).
// The pointer aliases m's storage: mutations through it change m, and the
// parameter setters of m are visible through it. Resize, Load and CopyFrom
// replace the storage and detach earlier pointers. Reshaping a component
// through the pointer (Resize, or Load of another dimensionality) makes
// scoring, accumulation and Save fail with ErrBadShape until it is undone.
func (m *Machine) Gaussian(i int) *gaussian.Gaussian {
	if i < 0 || i >= m.nComponents {
		return nil
	}

	return &m.components[i]
}

// Clone returns an independent deep copy of m sharing only the logger and
// metrics.
func (m *Machine) Clone() *Machine {
	c := &Machine{logger: m.logger, metrics: m.metrics}
	c.copyParams(m)

	return c
}

// CopyFrom replaces m's parameters with a deep copy of other's.
// Copying a Machine onto itself is a no-op. m keeps its own logger and metrics.
func (m *Machine) CopyFrom(other *Machine) {
	if m == other {
		return
	}
	m.copyParams(other)
}

func (m *Machine) copyParams(other *Machine) {
	m.nComponents = other.nComponents
	m.nInputs = other.nInputs
	m.weights = append(make([]float64, 0, len(other.weights)), other.weights...)
	m.components = make([]gaussian.Gaussian, len(other.components))
	for i := range other.components {
		m.components[i] = other.components[i].Clone()
	}
}

// Equal reports whether m and other have the same shape, pairwise equal
// components and equal weights. Both loops stop at the first mismatch.
func (m *Machine) Equal(other *Machine) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.nComponents != other.nComponents || m.nInputs != other.nInputs {
		return false
	}
	for i := range m.components {
		if !m.components[i].Equal(&other.components[i]) {
			return false
		}
	}
	for i := range m.weights {
		if m.weights[i] != other.weights[i] {
			return false
		}
	}

	return true
}

// String renders the weights followed by every component.
func (m *Machine) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Weights = %v\n", m.weights)
	for i := range m.components {
		fmt.Fprintf(&sb, "Gaussian %d:\n%s", i, m.components[i].String())
	}

	return sb.String()
}
