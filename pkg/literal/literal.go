// Package literal builds immutable, fully specified aggregate values by
// binding constant values to a template's leaves. Record literals address
// leaves through selector functions against the template; vec literals
// address them by index and promote all elements to the widest supplied
// value. Either a fully valid aggregate is produced or nothing is; no
// partial results escape.
package literal

import (
	"errors"
	"fmt"

	"github.com/gatewire-labs/gatewire/pkg/hw"
)

var (
	// ErrNotALeafOfTemplate is returned when a selector resolves to a
	// terminal that is not a leaf of the template aggregate.
	ErrNotALeafOfTemplate = errors.New("selector result is not a leaf of the template")
	// ErrDuplicateAssignment is returned when two bindings resolve to the
	// same leaf.
	ErrDuplicateAssignment = errors.New("duplicate literal assignment")
	// ErrEmptySequence is returned when an indexed literal is built from
	// zero values.
	ErrEmptySequence = errors.New("empty literal sequence")
)

// Binding assigns a constant value to one leaf of a record template. The
// selector receives the template and returns one of its leaf terminals.
type Binding struct {
	Select func(*hw.Record) hw.Terminal
	Value  uint64
}

// RecordLit resolves each binding's selector against the template and
// returns a frozen record with those values bound. Unassigned leaves become
// don't-care placeholders. Fails with ErrNotALeafOfTemplate,
// ErrDuplicateAssignment or hw.ErrValueOutOfRange; the template is never
// modified.
func RecordLit(template *hw.Record, bindings ...Binding) (*hw.Record, error) {
	leaves := template.Leaves()
	pos := make(map[hw.Terminal]int, len(leaves))
	for i, lf := range leaves {
		pos[lf] = i
	}

	assigned := make(map[int]uint64, len(bindings))
	for i, b := range bindings {
		if b.Select == nil {
			return nil, fmt.Errorf("binding %d: nil selector", i)
		}
		target := b.Select(template)
		idx, ok := pos[target]
		if !ok {
			return nil, fmt.Errorf("binding %d: %w", i, ErrNotALeafOfTemplate)
		}
		if _, dup := assigned[idx]; dup {
			return nil, fmt.Errorf("binding %d resolves to leaf %d: %w", i, idx, ErrDuplicateAssignment)
		}
		assigned[idx] = b.Value
	}

	bound := make([]hw.Terminal, len(leaves))
	for i, lf := range leaves {
		v, ok := assigned[i]
		if !ok {
			bound[i] = lf.AsDontCare()
			continue
		}
		bt, err := lf.WithLit(v)
		if err != nil {
			return nil, fmt.Errorf("leaf %d: %w", i, err)
		}
		bound[i] = bt
	}

	out, err := template.BindLeaves(bound)
	if err != nil {
		return nil, err
	}
	out.Freeze()
	return out, nil
}
