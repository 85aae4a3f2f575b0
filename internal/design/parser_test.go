package design

import (
	"testing"

	"github.com/gatewire-labs/gatewire/pkg/hw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType_Leaves(t *testing.T) {
	tests := []struct {
		src    string
		width  int
		signed bool
		dir    hw.Direction
	}{
		{src: "uint8", width: 8},
		{src: "uint 8", width: 8},
		{src: "uint[7:0]", width: 8},
		{src: "uint[15:8]", width: 8},
		{src: "sint16", width: 16, signed: true},
		{src: "sint[3:0]", width: 4, signed: true},
		{src: "bool", width: 1},
		{src: "in uint8", width: 8, dir: hw.Input},
		{src: "out uint[3:0]", width: 4, dir: hw.Output},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			v, err := ParseType(tt.src)
			require.NoError(t, err)
			s, ok := v.(*hw.Signal)
			require.True(t, ok, "expected a leaf signal")
			assert.Equal(t, tt.width, s.Width())
			assert.Equal(t, tt.signed, s.Signed())
			assert.Equal(t, tt.dir, s.Direction())
		})
	}
}

func TestParseType_Record(t *testing.T) {
	v, err := ParseType("{valid: bool, bits: uint8, resp: sint[1:0]}")
	require.NoError(t, err)

	r, ok := v.(*hw.Record)
	require.True(t, ok)
	fields := r.Fields()
	require.Len(t, fields, 3)
	assert.Equal(t, "valid", fields[0].Name)
	assert.Equal(t, "bits", fields[1].Name)
	assert.Equal(t, "resp", fields[2].Name)
	assert.Equal(t, 11, r.Width())
}

func TestParseType_Vec(t *testing.T) {
	v, err := ParseType("vec<4, uint8>")
	require.NoError(t, err)

	vec, ok := v.(*hw.Vec)
	require.True(t, ok)
	assert.Equal(t, 4, vec.Len())
	assert.Equal(t, 32, vec.Width())
}

func TestParseType_FlipRecord(t *testing.T) {
	v, err := ParseType("flip {req: out uint8, ack: in bool}")
	require.NoError(t, err)

	leaves := v.Leaves()
	require.Len(t, leaves, 2)
	assert.Equal(t, hw.Input, leaves[0].Direction(), "out flips to in")
	assert.Equal(t, hw.Output, leaves[1].Direction(), "in flips to out")
}

func TestParseType_Nested(t *testing.T) {
	v, err := ParseType("{lanes: vec<2, {data: uint8, last: bool}>}")
	require.NoError(t, err)
	assert.Len(t, v.Leaves(), 4)
	assert.Equal(t, 18, v.Width())
}

func TestParseType_Errors(t *testing.T) {
	bad := []string{
		"",
		"uint",
		"uint[0:7]",
		"uint[7:0] trailing",
		"vec<4 uint8>",
		"{valid bool}",
		"{valid: bool",
		"wire8",
	}
	for _, src := range bad {
		t.Run(src, func(t *testing.T) {
			_, err := ParseType(src)
			assert.Error(t, err)
		})
	}
}
