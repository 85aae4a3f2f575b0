package literal_test

import (
	"errors"
	"testing"

	"github.com/gatewire-labs/gatewire/pkg/hw"
	"github.com/gatewire-labs/gatewire/pkg/literal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pair() *hw.Record {
	return hw.MustRecord(
		hw.Field{Name: "_1", Value: hw.UInt(8)},
		hw.Field{Name: "_2", Value: hw.UInt(4)},
	)
}

func leaf(name string) func(*hw.Record) hw.Terminal {
	return func(r *hw.Record) hw.Terminal {
		v, ok := r.Get(name)
		if !ok {
			return nil
		}
		return v.(hw.Terminal)
	}
}

func TestRecordLit(t *testing.T) {
	out, err := literal.RecordLit(pair(),
		literal.Binding{Select: leaf("_1"), Value: 0xAB},
		literal.Binding{Select: leaf("_2"), Value: 7},
	)
	require.NoError(t, err)
	assert.True(t, out.Frozen())

	leaves := out.Leaves()
	require.Len(t, leaves, 2)
	v1, ok := leaves[0].Lit()
	require.True(t, ok)
	assert.Equal(t, uint64(0xAB), v1)
	v2, ok := leaves[1].Lit()
	require.True(t, ok)
	assert.Equal(t, uint64(7), v2)
}

func TestRecordLit_PartialLeavesDontCare(t *testing.T) {
	out, err := literal.RecordLit(pair(),
		literal.Binding{Select: leaf("_1"), Value: 1},
	)
	require.NoError(t, err)

	leaves := out.Leaves()
	_, ok := leaves[0].Lit()
	assert.True(t, ok)
	_, ok = leaves[1].Lit()
	assert.False(t, ok)
	assert.True(t, leaves[1].DontCare(), "unassigned leaf becomes don't-care")
}

func TestRecordLit_DuplicateAssignment(t *testing.T) {
	out, err := literal.RecordLit(pair(),
		literal.Binding{Select: leaf("_2"), Value: 1},
		literal.Binding{Select: leaf("_2"), Value: 2},
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, literal.ErrDuplicateAssignment))
	assert.Nil(t, out, "no partial aggregate on failure")
}

func TestRecordLit_NotALeafOfTemplate(t *testing.T) {
	stray := hw.UInt(8)
	_, err := literal.RecordLit(pair(),
		literal.Binding{Select: func(*hw.Record) hw.Terminal { return stray }, Value: 1},
	)
	assert.True(t, errors.Is(err, literal.ErrNotALeafOfTemplate))
}

func TestRecordLit_ValueOutOfRange(t *testing.T) {
	_, err := literal.RecordLit(pair(),
		literal.Binding{Select: leaf("_2"), Value: 16},
	)
	assert.True(t, errors.Is(err, hw.ErrValueOutOfRange))
}

func TestRecordLit_TemplateUntouched(t *testing.T) {
	tpl := pair()
	_, err := literal.RecordLit(tpl,
		literal.Binding{Select: leaf("_1"), Value: 3},
	)
	require.NoError(t, err)

	for _, lf := range tpl.Leaves() {
		_, bound := lf.Lit()
		assert.False(t, bound)
		assert.False(t, lf.DontCare())
	}
	assert.False(t, tpl.Frozen())
}

func TestVecLit_WidthPromotion(t *testing.T) {
	// Widths 4, 8 and 2 promote the element type to width 8.
	v, err := literal.VecLit([]literal.Lit{
		literal.LW(9, 4),
		literal.LW(200, 8),
		literal.LW(2, 2),
	})
	require.NoError(t, err)
	require.Equal(t, 3, v.Len())
	for i := 0; i < v.Len(); i++ {
		assert.Equal(t, 8, v.At(i).Width(), "element %d", i)
	}

	// Values survive promotion unmodified (zero extension, no truncation).
	got, ok := v.At(0).(hw.Terminal).Lit()
	require.True(t, ok)
	assert.Equal(t, uint64(9), got)
}

func TestVecLit_ElemWidthCap(t *testing.T) {
	_, err := literal.VecLit([]literal.Lit{
		literal.LW(9, 4),
		literal.LW(1, 9),
	}, literal.WithElemWidth(8))
	require.Error(t, err)
	assert.True(t, errors.Is(err, hw.ErrValueOutOfRange))
}

func TestVecLit_DeclaredWidthTooNarrow(t *testing.T) {
	_, err := literal.VecLit([]literal.Lit{literal.LW(300, 4)})
	assert.True(t, errors.Is(err, hw.ErrValueOutOfRange))
}

func TestVecLit_Empty(t *testing.T) {
	_, err := literal.VecLit(nil)
	assert.True(t, errors.Is(err, literal.ErrEmptySequence))
}

func TestVecLitIndexed(t *testing.T) {
	v, err := literal.VecLitIndexed([]literal.IndexedLit{
		{Index: 2, Lit: literal.L(5)},
		{Index: 0, Lit: literal.L(1)},
	})
	require.NoError(t, err)
	require.Equal(t, 3, v.Len(), "length defaults to highest index plus one")

	got, ok := v.At(0).(hw.Terminal).Lit()
	require.True(t, ok)
	assert.Equal(t, uint64(1), got)
	assert.True(t, v.At(1).(hw.Terminal).DontCare(), "gap becomes don't-care")
	got, ok = v.At(2).(hw.Terminal).Lit()
	require.True(t, ok)
	assert.Equal(t, uint64(5), got)
}

func TestVecLitIndexed_DuplicateIndex(t *testing.T) {
	_, err := literal.VecLitIndexed([]literal.IndexedLit{
		{Index: 1, Lit: literal.L(1)},
		{Index: 1, Lit: literal.L(2)},
	})
	assert.True(t, errors.Is(err, literal.ErrDuplicateAssignment))
}

func TestVecLitIndexed_ExplicitLength(t *testing.T) {
	v, err := literal.VecLitIndexed([]literal.IndexedLit{
		{Index: 0, Lit: literal.L(1)},
	}, literal.WithLength(4))
	require.NoError(t, err)
	assert.Equal(t, 4, v.Len())

	_, err = literal.VecLitIndexed([]literal.IndexedLit{
		{Index: 7, Lit: literal.L(1)},
	}, literal.WithLength(4))
	assert.Error(t, err, "index outside explicit length")
}
