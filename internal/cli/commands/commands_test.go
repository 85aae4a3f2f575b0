package commands

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gatewire-labs/gatewire/internal/config"
	"github.com/gatewire-labs/gatewire/internal/design"
	"github.com/gatewire-labs/gatewire/internal/testutil"
)

func testRuntime(t *testing.T) *Runtime {
	t.Helper()
	return &Runtime{
		Cfg: &config.Config{
			Project: "test",
			Designs: []design.Design{
				{
					Name: "uart",
					Ports: []design.PortSpec{
						{Name: "tx", Type: "out bool"},
						{Name: "rx", Type: "in bool"},
					},
				},
				{
					Name:      "top",
					Ports:     []design.PortSpec{{Name: "clk", Type: "in bool"}},
					Instances: []design.InstanceSpec{{Name: "u0", Design: "uart"}},
				},
			},
		},
		Log: testutil.NewTestLogger(t),
	}
}

func testCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetContext(context.Background())
	return cmd, &out
}

func TestRunElaborate(t *testing.T) {
	cmd, out := testCommand()

	err := runElaborate(cmd, testRuntime(t))
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Elaborated 2 design(s)")
	assert.Contains(t, out.String(), "uart: 2 port(s)")
	assert.Contains(t, out.String(), "top: 1 port(s)")
}

func TestRunElaborate_NoDesigns(t *testing.T) {
	cmd, _ := testCommand()
	rt := &Runtime{Cfg: &config.Config{}, Log: testutil.NewTestLogger(t)}

	err := runElaborate(cmd, rt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no designs declared")
}

func TestRunPorts(t *testing.T) {
	cmd, out := testCommand()

	err := runPorts(cmd, testRuntime(t), "uart")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Ports of uart")
	assert.Contains(t, out.String(), "tx")
	assert.Contains(t, out.String(), "output")
	assert.Contains(t, out.String(), "input")
}

func TestRunPorts_UnknownDesign(t *testing.T) {
	cmd, _ := testCommand()

	err := runPorts(cmd, testRuntime(t), "ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `design "ghost" is not declared`)
}

func TestRuntimeFrom_Missing(t *testing.T) {
	cmd, _ := testCommand()
	_, err := RuntimeFrom(cmd)
	assert.Error(t, err)
}
