package design

import (
	"context"
	"errors"
	"testing"

	"github.com/gatewire-labs/gatewire/internal/dag"
	"github.com/gatewire-labs/gatewire/internal/testutil"
	"github.com/gatewire-labs/gatewire/pkg/hw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElaborate_SingleDesign(t *testing.T) {
	e := NewElaborator(testutil.NewTestLogger(t))
	res, err := e.Elaborate(context.Background(), []Design{{
		Name: "alu",
		Ports: []PortSpec{
			{Name: "a", Type: "in uint8"},
			{Name: "b", Type: "in uint8"},
			{Name: "out", Type: "out uint[8:0]"},
		},
	}}, false)
	require.NoError(t, err)

	m, ok := res.Module("alu")
	require.True(t, ok)
	ports := m.Ports()
	require.Len(t, ports, 3)
	assert.Equal(t, "a", ports[0].Name)
	assert.Equal(t, "out", ports[2].Name)
	assert.Equal(t, 9, ports[2].Value.Width())
	assert.Equal(t, hw.Output, ports[2].Value.Leaves()[0].Direction())
}

func TestElaborate_InstancesOrderedAndSnapshotted(t *testing.T) {
	e := NewElaborator(testutil.NewTestLogger(t))
	designs := []Design{
		{
			Name:      "top",
			Ports:     []PortSpec{{Name: "clk", Type: "in bool"}},
			Instances: []InstanceSpec{{Name: "u0", Design: "uart"}},
		},
		{
			Name:  "uart",
			Ports: []PortSpec{{Name: "tx", Type: "out bool"}, {Name: "rx", Type: "in bool"}},
		},
	}
	res, err := e.Elaborate(context.Background(), designs, false)
	require.NoError(t, err)

	order := res.Order()
	require.Equal(t, []string{"uart", "top"}, order)

	insts := res.Instances("top")
	require.Contains(t, insts, "u0")
	snap := insts["u0"]
	assert.True(t, snap.Frozen())

	uart, _ := res.Module("uart")
	fields := snap.Fields()
	require.Len(t, fields, 2)
	assert.Equal(t, "tx", fields[0].Name)
	assert.Same(t,
		uart.Ports()[0].Value.Leaves()[0],
		fields[0].Value.Leaves()[0],
		"snapshot aliases the uart's real tx terminal")
}

func TestElaborate_RecursiveInstantiation(t *testing.T) {
	e := NewElaborator(nil)
	_, err := e.Elaborate(context.Background(), []Design{
		{Name: "a", Instances: []InstanceSpec{{Name: "i", Design: "b"}}},
		{Name: "b", Instances: []InstanceSpec{{Name: "i", Design: "a"}}},
	}, false)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dag.ErrCycle))
}

func TestElaborate_FlattenedPort(t *testing.T) {
	e := NewElaborator(testutil.NewTestLogger(t))
	res, err := e.Elaborate(context.Background(), []Design{{
		Name: "fifo",
		Ports: []PortSpec{
			{Name: "enq", Type: "{valid: bool, bits: uint8}", Flatten: true},
		},
	}}, false)
	require.NoError(t, err)

	m, _ := res.Module("fifo")
	ports := m.Ports()
	require.Len(t, ports, 2, "flattened record contributes one port per leaf")
	// Reverse declared order, scope-prefixed names.
	assert.Equal(t, "enq_bits", ports[0].Name)
	assert.Equal(t, "enq_valid", ports[1].Name)
}

func TestElaborate_Parallel(t *testing.T) {
	e := NewElaborator(testutil.NewTestLogger(t))
	designs := []Design{
		{Name: "top", Instances: []InstanceSpec{
			{Name: "u", Design: "uart"},
			{Name: "s", Design: "spi"},
		}},
		{Name: "uart", Ports: []PortSpec{{Name: "tx", Type: "out bool"}}},
		{Name: "spi", Ports: []PortSpec{{Name: "sck", Type: "out bool"}}},
	}
	res, err := e.Elaborate(context.Background(), designs, true)
	require.NoError(t, err)

	for _, name := range []string{"uart", "spi", "top"} {
		_, ok := res.Module(name)
		assert.True(t, ok, "module %s elaborated", name)
	}
	assert.Len(t, res.Instances("top"), 2)
}

func TestElaborate_UnknownInstanceDesign(t *testing.T) {
	e := NewElaborator(nil)
	_, err := e.Elaborate(context.Background(), []Design{
		{Name: "top", Instances: []InstanceSpec{{Name: "u", Design: "ghost"}}},
	}, false)
	assert.Error(t, err)
}

func TestElaborate_BadPortType(t *testing.T) {
	e := NewElaborator(nil)
	_, err := e.Elaborate(context.Background(), []Design{
		{Name: "m", Ports: []PortSpec{{Name: "p", Type: "wire8"}}},
	}, false)
	assert.Error(t, err)
}
