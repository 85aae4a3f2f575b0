package tuple_test

import (
	"testing"

	"github.com/gatewire-labs/gatewire/pkg/hw"
	"github.com/gatewire-labs/gatewire/pkg/tuple"
	"github.com/gatewire-labs/gatewire/pkg/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTuple3_ArityFidelity(t *testing.T) {
	v1 := hw.UInt(8)
	v2 := hw.Bool()
	v3 := hw.SInt(4)
	tp := tuple.New3(v1, v2, v3)

	fields := tp.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "_1", fields[0].Name)
	assert.Equal(t, "_2", fields[1].Name)
	assert.Equal(t, "_3", fields[2].Name)
	assert.Same(t, v1, fields[0].Value.(*hw.Signal))
	assert.Same(t, v2, fields[1].Value.(*hw.Signal))
	assert.Same(t, v3, fields[2].Value.(*hw.Signal))
}

func TestTuple_Values_StaticTypes(t *testing.T) {
	inner := hw.MustRecord(hw.Field{Name: "x", Value: hw.UInt(8)})
	tp := tuple.New2(hw.UInt(4), inner)

	a, b := tp.Values()
	assert.Equal(t, 4, a.Width())
	assert.Equal(t, 1, b.NumFields(), "nested aggregate keeps its concrete type")
}

func TestTuple_CloneAsType(t *testing.T) {
	tp := tuple.New2(hw.UInt(8), hw.Bool())
	c := tp.CloneAsType().(*tuple.Tuple2[*hw.Signal, *hw.Signal])

	require.True(t, c.TypeEquals(tp))

	orig := tp.Leaves()
	cloned := c.Leaves()
	require.Len(t, cloned, 2)
	for i := range orig {
		assert.NotSame(t, orig[i], cloned[i], "field %d must be independently cloned", i)
	}
}

func TestTuple_TypeEquals_RecordShape(t *testing.T) {
	tp := tuple.New2(hw.UInt(8), hw.Bool())
	rec := hw.MustRecord(
		hw.Field{Name: "_1", Value: hw.UInt(8)},
		hw.Field{Name: "_2", Value: hw.Bool()},
	)
	assert.True(t, tp.TypeEquals(rec))
	assert.True(t, tp.TypeEquals(tuple.New2(hw.UInt(8), hw.Bool())))
	assert.False(t, tp.TypeEquals(tuple.New2(hw.UInt(9), hw.Bool())))
	assert.False(t, tp.TypeEquals(hw.UInt(9)))
}

func TestTuple_ViewInterop(t *testing.T) {
	tp := tuple.New3(hw.UInt(4), hw.UInt(8), hw.Bool())

	m, err := view.NewMapping(tp.Leaves(), tp.Record())
	require.NoError(t, err)

	flat, err := m.ToFlat(tp.Record())
	require.NoError(t, err)
	require.Len(t, flat, 3)

	back, err := m.ToStructured(flat)
	require.NoError(t, err)
	rebuilt := back.Leaves()
	for i, lf := range tp.Leaves() {
		assert.Same(t, lf, rebuilt[i], "leaf %d", i)
	}
}

func TestTuple10(t *testing.T) {
	tp := tuple.New10(
		hw.UInt(1), hw.UInt(2), hw.UInt(3), hw.UInt(4), hw.UInt(5),
		hw.UInt(6), hw.UInt(7), hw.UInt(8), hw.UInt(9), hw.UInt(10),
	)
	fields := tp.Fields()
	require.Len(t, fields, 10)
	assert.Equal(t, "_10", fields[9].Name)
	assert.Equal(t, 55, tp.Width())
}
