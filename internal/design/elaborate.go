package design

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/gatewire-labs/gatewire/internal/dag"
	"github.com/gatewire-labs/gatewire/pkg/elab"
	"github.com/gatewire-labs/gatewire/pkg/hw"
)

// Result holds the outcome of elaborating a project's designs.
type Result struct {
	mu        sync.Mutex
	modules   map[string]*elab.Module
	instances map[string]map[string]*hw.Record
	order     []string
}

// Module returns an elaborated module by design name.
func (r *Result) Module(name string) (*elab.Module, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.modules[name]
	return m, ok
}

// Order returns design names in elaboration order.
func (r *Result) Order() []string {
	return append([]string(nil), r.order...)
}

// Instances returns the port snapshots of the designs instantiated by the
// named design, keyed by instance label.
func (r *Result) Instances(name string) map[string]*hw.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]*hw.Record, len(r.instances[name]))
	for k, v := range r.instances[name] {
		out[k] = v
	}
	return out
}

func (r *Result) put(m *elab.Module, instances map[string]*hw.Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.modules[m.Name()] = m
	if len(instances) > 0 {
		r.instances[m.Name()] = instances
	}
}

// Elaborator runs designs through pkg/elab. Each design gets its own
// elab.Context, so independent designs can be elaborated concurrently.
type Elaborator struct {
	log *slog.Logger
}

// NewElaborator returns an elaborator logging to log.
func NewElaborator(log *slog.Logger) *Elaborator {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Elaborator{log: log}
}

// Elaborate builds every design, ordering them so instantiated designs are
// elaborated before their parents. With parallel set, designs on the same
// instantiation level run concurrently.
func (e *Elaborator) Elaborate(ctx context.Context, designs []Design, parallel bool) (*Result, error) {
	g := dag.New[Design]()
	for _, d := range designs {
		if d.Name == "" {
			return nil, fmt.Errorf("design with empty name")
		}
		if _, dup := g.Get(d.Name); dup {
			return nil, fmt.Errorf("design %q declared twice", d.Name)
		}
		g.Add(d.Name, d)
	}
	for _, d := range designs {
		for _, inst := range d.Instances {
			if err := g.Instantiates(d.Name, inst.Design); err != nil {
				return nil, fmt.Errorf("design %q, instance %q: %w", d.Name, inst.Name, err)
			}
		}
	}

	order, err := g.ElaborationOrder()
	if err != nil {
		return nil, err
	}

	res := &Result{
		modules:   make(map[string]*elab.Module),
		instances: make(map[string]map[string]*hw.Record),
		order:     order,
	}

	if !parallel {
		for _, name := range order {
			d, _ := g.Get(name)
			if err := e.elaborateOne(ctx, d, res); err != nil {
				return nil, err
			}
		}
		return res, nil
	}

	levels, err := g.Levels()
	if err != nil {
		return nil, err
	}
	for _, level := range levels {
		eg, egctx := errgroup.WithContext(ctx)
		for _, name := range level {
			d, _ := g.Get(name)
			eg.Go(func() error {
				return e.elaborateOne(egctx, d, res)
			})
		}
		if err := eg.Wait(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// elaborateOne builds a single design in a fresh elaboration context.
func (e *Elaborator) elaborateOne(ctx context.Context, d Design, res *Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	log := e.log.With("design", d.Name)
	ectx := elab.NewContext(elab.WithLogger(log))
	b := ectx.NewModule(d.Name)

	for _, ps := range d.Ports {
		if ps.Name == "" {
			return fmt.Errorf("design %q: port with empty name", d.Name)
		}
		v, err := ParseType(ps.Type)
		if err != nil {
			return fmt.Errorf("design %q, port %q: %w", d.Name, ps.Name, err)
		}

		if ps.Flatten {
			if err := e.addFlattened(ectx, b, ps.Name, v); err != nil {
				return fmt.Errorf("design %q, port %q: %w", d.Name, ps.Name, err)
			}
			continue
		}
		if _, err := b.AddPort(ps.Name, v); err != nil {
			return fmt.Errorf("design %q: %w", d.Name, err)
		}
	}

	instances := make(map[string]*hw.Record, len(d.Instances))
	for _, inst := range d.Instances {
		child, ok := res.Module(inst.Design)
		if !ok {
			return fmt.Errorf("design %q, instance %q: design %q not elaborated", d.Name, inst.Name, inst.Design)
		}
		snap, err := elab.SnapshotPorts(child)
		if err != nil {
			return fmt.Errorf("design %q, instance %q: %w", d.Name, inst.Name, err)
		}
		instances[inst.Name] = snap
		log.Debug("instance bound", "instance", inst.Name, "of", inst.Design, "ports", snap.NumFields())
	}

	m, err := b.Build()
	if err != nil {
		return fmt.Errorf("design %q: %w", d.Name, err)
	}
	res.put(m, instances)
	log.Info("design elaborated", "ports", len(m.Ports()), "instances", len(instances))
	return nil
}

// addFlattened exposes a record-typed port as loose flat terminals through
// the flattened-port reinterpretation, registering each terminal as its
// own module port under the record port's naming scope.
func (e *Elaborator) addFlattened(ectx *elab.Context, b *elab.ModuleBuilder, name string, v hw.Value) error {
	rec, ok := v.(*hw.Record)
	if !ok {
		return fmt.Errorf("flatten requires a record type, got %v", v)
	}
	return ectx.Naming().Scope(name, func() error {
		_, flat, err := elab.FlatIO(ectx, rec.Direction(), func() *hw.Record { return rec })
		if err != nil {
			return err
		}
		for _, t := range flat {
			if err := b.AddNamedPort(t.Name(), t); err != nil {
				return err
			}
		}
		return nil
	})
}
