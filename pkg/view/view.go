// Package view implements the structural view engine: a lossless,
// bidirectional correspondence between a flat ordered terminal sequence and
// a structured record of the same leaf shape. A Mapping is validated fully
// at construction, is immutable afterwards, and transforms structure only:
// terminals are aliased through it, never copied.
package view

import (
	"fmt"

	"github.com/gatewire-labs/gatewire/pkg/hw"
)

// Mapping is a validated bidirectional view between a flat terminal
// sequence shape and a structured record shape.
type Mapping struct {
	template *hw.Record
	declared []hw.Terminal
	reversed bool
}

// Option configures a Mapping.
type Option func(*Mapping)

// WithReversal makes the mapping traverse the physical flat sequence in
// reverse declared order, on both the forward and the inverse direction.
// Directional terminals are frequently laid out opposite to their
// declaration order; reversal keeps ToFlat and ToStructured mutual
// inverses over such layouts.
func WithReversal() Option {
	return func(m *Mapping) { m.reversed = true }
}

// NewMapping validates flat against the template's declared leaf shape and
// returns the mapping. Fails with hw.ErrShapeMismatch on a leaf-count
// mismatch and hw.ErrTypeMismatch on the first position whose leaf types
// are incompatible.
func NewMapping(flat []hw.Terminal, template *hw.Record, opts ...Option) (*Mapping, error) {
	m := &Mapping{template: template, declared: template.Leaves()}
	for _, opt := range opts {
		opt(m)
	}
	if err := m.check(flat); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Mapping) check(flat []hw.Terminal) error {
	if len(flat) != len(m.declared) {
		return fmt.Errorf("%w: flat sequence has %d terminals, record shape has %d leaves",
			hw.ErrShapeMismatch, len(flat), len(m.declared))
	}
	for i, want := range m.declared {
		got := flat[m.physical(i)]
		if !got.TypeEquals(want) {
			return fmt.Errorf("%w: leaf %d: flat terminal %v, record leaf %v",
				hw.ErrTypeMismatch, i, got, want)
		}
	}
	return nil
}

// physical maps a declared leaf index to its position in the flat sequence.
func (m *Mapping) physical(declared int) int {
	if m.reversed {
		return len(m.declared) - 1 - declared
	}
	return declared
}

// Reversed reports whether the mapping applies the reversal policy.
func (m *Mapping) Reversed() bool { return m.reversed }

// LeafCount returns the number of leaf terminals the mapping covers.
func (m *Mapping) LeafCount() int { return len(m.declared) }

// ToFlat flattens r into a terminal sequence in the mapping's physical
// order. r must be type-equal to the mapping's record shape. The returned
// terminals are r's own leaves, aliased.
func (m *Mapping) ToFlat(r *hw.Record) ([]hw.Terminal, error) {
	if !r.TypeEquals(m.template) {
		return nil, fmt.Errorf("%w: record %v does not match view shape %v",
			hw.ErrTypeMismatch, r, m.template)
	}
	leaves := r.Leaves()
	out := make([]hw.Terminal, len(leaves))
	for i, lf := range leaves {
		out[m.physical(i)] = lf
	}
	return out, nil
}

// ToStructured reassembles flat into a fresh instance of the record shape.
// Each leaf slot of the result aliases the corresponding flat terminal; no
// terminal is copied. The sequence is validated the same way as at
// construction.
func (m *Mapping) ToStructured(flat []hw.Terminal) (*hw.Record, error) {
	if err := m.check(flat); err != nil {
		return nil, err
	}
	ordered := make([]hw.Terminal, len(flat))
	for i := range ordered {
		ordered[i] = flat[m.physical(i)]
	}
	return m.template.BindLeaves(ordered)
}
