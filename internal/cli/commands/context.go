package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/gatewire-labs/gatewire/internal/config"
)

// Runtime carries the per-invocation state commands run with.
type Runtime struct {
	Cfg *config.Config
	Log *slog.Logger
}

type runtimeKey struct{}

// IntoContext stores the runtime in a context.
func IntoContext(ctx context.Context, rt *Runtime) context.Context {
	return context.WithValue(ctx, runtimeKey{}, rt)
}

// RuntimeFrom retrieves the runtime prepared by the root command.
func RuntimeFrom(cmd *cobra.Command) (*Runtime, error) {
	rt, ok := cmd.Context().Value(runtimeKey{}).(*Runtime)
	if !ok || rt == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	return rt, nil
}
