// Package tuple provides fixed-arity positional aggregates, arity 2
// through 10. A TupleN is a structured record whose fields are named
// _1.._n in declared order; its static type is fully determined by the
// ordered list of its field types. Tuples exist so the view engine in
// pkg/view can interoperate with plain Go values of known arity; they
// carry no behavior beyond the Value contract. Go has no variadic
// generics, so the family is one generic type per arity sharing a common
// positional-record backbone.
package tuple

import (
	"fmt"

	"github.com/gatewire-labs/gatewire/pkg/hw"
)

// recorder is satisfied by every TupleN.
type recorder interface {
	Record() *hw.Record
}

// positional builds the backing record with fields _1.._n.
func positional(vals ...hw.Value) *hw.Record {
	fields := make([]hw.Field, len(vals))
	for i, v := range vals {
		fields[i] = hw.Field{Name: fmt.Sprintf("_%d", i+1), Value: v}
	}
	return hw.MustRecord(fields...)
}

// shapeOf extracts the structural record of a value for type comparison.
func shapeOf(o hw.Value) (*hw.Record, bool) {
	switch t := o.(type) {
	case recorder:
		return t.Record(), true
	case *hw.Record:
		return t, true
	default:
		return nil, false
	}
}

func tupleTypeEquals(rec *hw.Record, o hw.Value) bool {
	or, ok := shapeOf(o)
	return ok && rec.TypeEquals(or)
}
