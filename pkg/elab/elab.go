// Package elab holds per-run elaboration state: the naming stack, the
// modules built so far, and the operations that cross between flat
// terminal sequences and structured records at module boundaries. A
// Context is single threaded; independent runs get independent Contexts
// and may proceed concurrently.
package elab

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gatewire-labs/gatewire/pkg/hw"
	"github.com/gatewire-labs/gatewire/pkg/naming"
)

var (
	// ErrDuplicatePort is returned when a builder receives two ports with
	// the same name.
	ErrDuplicatePort = errors.New("duplicate port name")
	// ErrDuplicateModule is returned when two modules of the same name are
	// built in one run.
	ErrDuplicateModule = errors.New("duplicate module name")
	// ErrSealed is returned when a sealed builder receives another port.
	ErrSealed = errors.New("module builder is sealed")
)

// Context is the state of one elaboration run.
type Context struct {
	names   *naming.Stack
	log     *slog.Logger
	modules map[string]*Module
	order   []string
}

// Option configures a Context.
type Option func(*Context)

// WithLogger attaches a structured logger to the run.
func WithLogger(log *slog.Logger) Option {
	return func(c *Context) { c.log = log }
}

// NewContext starts a fresh elaboration run with an empty naming stack.
func NewContext(opts ...Option) *Context {
	c := &Context{
		log:     slog.New(slog.DiscardHandler),
		modules: make(map[string]*Module),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.names = naming.NewStack(naming.WithLogger(c.log))
	return c
}

// Naming returns the run's naming stack.
func (c *Context) Naming() *naming.Stack { return c.names }

// Logger returns the run's logger.
func (c *Context) Logger() *slog.Logger { return c.log }

// Module returns a previously built module by name.
func (c *Context) Module(name string) (*Module, bool) {
	m, ok := c.modules[name]
	return m, ok
}

// Modules returns the run's modules in build order.
func (c *Context) Modules() []*Module {
	out := make([]*Module, 0, len(c.order))
	for _, name := range c.order {
		out = append(out, c.modules[name])
	}
	return out
}

// Port is one named, typed module port.
type Port struct {
	Name  string
	Value hw.Value
}

// Module is a sealed, elaborated module: a name and its ports in
// declaration order.
type Module struct {
	name  string
	ports []Port
}

// Name returns the module name.
func (m *Module) Name() string { return m.name }

// Ports returns the ports in declaration order. The slice is a copy; the
// port values are the module's own.
func (m *Module) Ports() []Port {
	out := make([]Port, len(m.ports))
	copy(out, m.ports)
	return out
}

// ModuleBuilder accumulates ports for one module under construction.
type ModuleBuilder struct {
	ctx    *Context
	name   string
	ports  []Port
	seen   map[string]struct{}
	sealed bool
}

// NewModule starts building a module in this run.
func (c *Context) NewModule(name string) *ModuleBuilder {
	c.log.Debug("module under construction", "module", name)
	return &ModuleBuilder{ctx: c, name: name, seen: make(map[string]struct{})}
}

// AddPort materializes an instance of the port type v, suggests
// scope-resolved names to its leaves, and registers it in declaration
// order. The returned value is the port instance the caller connects to.
func (b *ModuleBuilder) AddPort(name string, v hw.Value) (hw.Value, error) {
	if b.sealed {
		return nil, fmt.Errorf("module %q: %w", b.name, ErrSealed)
	}
	if _, dup := b.seen[name]; dup {
		return nil, fmt.Errorf("module %q, port %q: %w", b.name, name, ErrDuplicatePort)
	}

	inst := v.CloneAsType()
	leaves := inst.Leaves()
	paths := leafNames(name, inst)
	for i, lf := range leaves {
		lf.SuggestName(b.ctx.names.Resolve(paths[i]))
	}

	b.seen[name] = struct{}{}
	b.ports = append(b.ports, Port{Name: name, Value: inst})
	b.ctx.log.Debug("port added", "module", b.name, "port", name, "width", inst.Width())
	return inst, nil
}

// AddNamedPort registers an existing, already named value as a port
// without cloning or renaming it. Used for flattened boundaries whose
// terminals already carry scope-resolved names.
func (b *ModuleBuilder) AddNamedPort(name string, v hw.Value) error {
	if b.sealed {
		return fmt.Errorf("module %q: %w", b.name, ErrSealed)
	}
	if _, dup := b.seen[name]; dup {
		return fmt.Errorf("module %q, port %q: %w", b.name, name, ErrDuplicatePort)
	}
	b.seen[name] = struct{}{}
	b.ports = append(b.ports, Port{Name: name, Value: v})
	b.ctx.log.Debug("port added", "module", b.name, "port", name, "width", v.Width())
	return nil
}

// Build seals the module and registers it with the run.
func (b *ModuleBuilder) Build() (*Module, error) {
	if b.sealed {
		return nil, fmt.Errorf("module %q: %w", b.name, ErrSealed)
	}
	if _, dup := b.ctx.modules[b.name]; dup {
		return nil, fmt.Errorf("module %q: %w", b.name, ErrDuplicateModule)
	}
	b.sealed = true
	m := &Module{name: b.name, ports: b.ports}
	b.ctx.modules[b.name] = m
	b.ctx.order = append(b.ctx.order, b.name)
	b.ctx.log.Debug("module sealed", "module", b.name, "ports", len(b.ports))
	return m, nil
}

// leafNames returns underscore-joined leaf names under the given root,
// parallel to v.Leaves().
func leafNames(root string, v hw.Value) []string {
	wrapped := hw.MustRecord(hw.Field{Name: root, Value: v})
	paths := wrapped.LeafPaths()
	for i, p := range paths {
		paths[i] = strings.ReplaceAll(p, ".", "_")
	}
	return paths
}
