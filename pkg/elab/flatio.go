package elab

import (
	"fmt"
	"strings"

	"github.com/gatewire-labs/gatewire/pkg/hw"
	"github.com/gatewire-labs/gatewire/pkg/view"
)

// FlatIO materializes the record produced by gen as loose flat terminals,
// one per leaf in reverse declared order, and returns a structured handle
// whose leaves alias those same terminals. Each flat terminal is
// independently direction-coerced by dir (the direction gen's result was
// specified with) and suggested its field name through the run's active
// naming scope. An empty record yields an empty handle and no terminals.
func FlatIO(c *Context, dir hw.Direction, gen func() *hw.Record) (*hw.Record, []hw.Terminal, error) {
	r := gen()
	if r == nil {
		return nil, nil, fmt.Errorf("flat io: generator returned nil record")
	}

	leaves := r.Leaves()
	paths := r.LeafPaths()
	flat := make([]hw.Terminal, 0, len(leaves))
	for i := len(leaves) - 1; i >= 0; i-- {
		t := hw.ApplyDirection(leaves[i], dir).(hw.Terminal)
		t.SuggestName(c.names.Resolve(strings.ReplaceAll(paths[i], ".", "_")))
		flat = append(flat, t)
	}

	m, err := view.NewMapping(flat, r, view.WithReversal())
	if err != nil {
		return nil, nil, fmt.Errorf("flat io: %w", err)
	}
	handle, err := m.ToStructured(flat)
	if err != nil {
		return nil, nil, fmt.Errorf("flat io: %w", err)
	}
	c.log.Debug("flat io materialized", "leaves", len(flat))
	return handle, flat, nil
}

// SnapshotPorts returns a read-only record describing an elaborated
// module's boundary: one field per port, named and ordered as declared,
// whose leaves alias the module's real port terminals. The module is not
// re-elaborated or modified; connections through the snapshot target the
// actual hardware.
func SnapshotPorts(m *Module) (*hw.Record, error) {
	fields := make([]hw.Field, len(m.ports))
	for i, p := range m.ports {
		fields[i] = hw.Field{Name: p.Name, Value: p.Value}
	}
	rec, err := hw.NewRecord(fields...)
	if err != nil {
		return nil, fmt.Errorf("snapshot of module %q: %w", m.name, err)
	}
	rec.Freeze()
	return rec, nil
}
