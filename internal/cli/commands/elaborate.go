package commands

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/gatewire-labs/gatewire/internal/cli/output"
	"github.com/gatewire-labs/gatewire/internal/config"
	"github.com/gatewire-labs/gatewire/internal/design"
)

// NewElaborateCommand creates the elaborate command.
func NewElaborateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "elaborate",
		Short: "Elaborate all designs in the project",
		Long: `Elaborate every design declared in gatewire.yaml, ordering them so
instantiated designs are built before their parents, and print a summary
of each resulting module boundary.`,
		Example: `  # Elaborate the project
  gatewire elaborate

  # Elaborate independent designs concurrently
  gatewire elaborate --parallel

  # Re-elaborate whenever the config file changes
  gatewire elaborate --watch`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			watch, _ := cmd.Flags().GetBool("watch")
			rt, err := RuntimeFrom(cmd)
			if err != nil {
				return err
			}
			if err := runElaborate(cmd, rt); err != nil {
				if !watch {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			}
			if watch {
				return watchAndElaborate(cmd, rt)
			}
			return nil
		},
	}
	cmd.Flags().Bool("watch", false, "re-elaborate when the config file changes")
	return cmd
}

func runElaborate(cmd *cobra.Command, rt *Runtime) error {
	if len(rt.Cfg.Designs) == 0 {
		return fmt.Errorf("no designs declared (config: %s)", orNone(rt.Cfg.File))
	}

	e := design.NewElaborator(rt.Log)
	res, err := e.Elaborate(cmd.Context(), rt.Cfg.Designs, rt.Cfg.Parallel)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	output.Header(w, fmt.Sprintf("Elaborated %d design(s)", len(res.Order())))
	for _, name := range res.Order() {
		m, _ := res.Module(name)
		width := 0
		for _, p := range m.Ports() {
			width += p.Value.Width()
		}
		fmt.Fprintf(w, "  %s: %d port(s), %d bit(s), %d instance(s)\n",
			name, len(m.Ports()), width, len(res.Instances(name)))
	}
	return nil
}

// watchAndElaborate re-runs elaboration whenever the config file changes,
// reloading it each time. It returns when the command context is done or
// the watcher fails.
func watchAndElaborate(cmd *cobra.Command, rt *Runtime) error {
	if rt.Cfg.File == "" {
		return fmt.Errorf("--watch requires a config file")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(rt.Cfg.File); err != nil {
		return err
	}
	output.Dim(cmd.OutOrStdout(), fmt.Sprintf("Watching %s", rt.Cfg.File))

	for {
		select {
		case <-cmd.Context().Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			cfg, err := config.Load(rt.Cfg.File, nil)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
				continue
			}
			rt.Cfg = cfg
			if err := runElaborate(cmd, rt); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

func orNone(s string) string {
	if s == "" {
		return "none found"
	}
	return s
}
