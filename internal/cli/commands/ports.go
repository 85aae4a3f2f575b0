package commands

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/gatewire-labs/gatewire/internal/cli/output"
	"github.com/gatewire-labs/gatewire/internal/design"
	"github.com/gatewire-labs/gatewire/pkg/hw"
)

// NewPortsCommand creates the ports command.
func NewPortsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ports <design>",
		Short: "Show a design's elaborated port boundary",
		Long: `Elaborate the project and print the named design's ports: one row per
leaf terminal with its resolved name, type, width and direction.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := RuntimeFrom(cmd)
			if err != nil {
				return err
			}
			return runPorts(cmd, rt, args[0])
		},
	}
}

func runPorts(cmd *cobra.Command, rt *Runtime, name string) error {
	if _, ok := rt.Cfg.Design(name); !ok {
		return fmt.Errorf("design %q is not declared (config: %s)", name, orNone(rt.Cfg.File))
	}

	e := design.NewElaborator(rt.Log)
	res, err := e.Elaborate(cmd.Context(), rt.Cfg.Designs, rt.Cfg.Parallel)
	if err != nil {
		return err
	}
	m, ok := res.Module(name)
	if !ok {
		return fmt.Errorf("design %q was not elaborated", name)
	}

	w := cmd.OutOrStdout()
	output.Header(w, fmt.Sprintf("Ports of %s", name))

	t := output.NewTable(w, "Port", "Leaf", "Type", "Width", "Direction")
	for _, p := range m.Ports() {
		leaves := p.Value.Leaves()
		for _, lf := range leaves {
			t.AppendRow(table.Row{
				p.Name,
				leafName(lf),
				fmt.Sprintf("%v", lf),
				lf.Width(),
				lf.Direction().String(),
			})
		}
		if len(leaves) == 0 {
			t.AppendRow(table.Row{p.Name, "-", "(empty)", 0, hw.Unspecified.String()})
		}
	}
	t.Render()
	return nil
}

func leafName(t hw.Terminal) string {
	if n := t.Name(); n != "" {
		return n
	}
	return "-"
}
