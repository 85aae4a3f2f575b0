// Package dag provides the design instantiation graph: which design
// instantiates which. It supports cycle detection (recursive instantiation
// is an error), deterministic topological ordering for elaboration, and
// level grouping so independent designs can be elaborated in parallel.
package dag

import (
	"errors"
	"fmt"
	"sort"
)

// ErrCycle is returned when designs instantiate each other recursively.
var ErrCycle = errors.New("recursive instantiation")

// Graph is a directed acyclic graph of design names carrying per-node data
// of type T.
type Graph[T any] struct {
	data     map[string]T
	children map[string][]string // design -> designs that instantiate it
	parents  map[string][]string // design -> designs it instantiates
}

// New returns an empty graph.
func New[T any]() *Graph[T] {
	return &Graph[T]{
		data:     make(map[string]T),
		children: make(map[string][]string),
		parents:  make(map[string][]string),
	}
}

// Add registers a design. Adding an existing name replaces its data.
func (g *Graph[T]) Add(name string, data T) {
	if _, ok := g.data[name]; !ok {
		g.children[name] = nil
		g.parents[name] = nil
	}
	g.data[name] = data
}

// Instantiates records that parent instantiates child, so child must be
// elaborated first. Both designs must already be registered.
func (g *Graph[T]) Instantiates(parent, child string) error {
	if _, ok := g.data[parent]; !ok {
		return fmt.Errorf("design %q is not registered", parent)
	}
	if _, ok := g.data[child]; !ok {
		return fmt.Errorf("design %q is not registered", child)
	}
	if parent == child {
		return fmt.Errorf("design %q: %w (self-instantiation)", parent, ErrCycle)
	}
	if !contains(g.parents[parent], child) {
		g.parents[parent] = append(g.parents[parent], child)
	}
	if !contains(g.children[child], parent) {
		g.children[child] = append(g.children[child], parent)
	}
	return nil
}

// Get returns a design's data.
func (g *Graph[T]) Get(name string) (T, bool) {
	d, ok := g.data[name]
	return d, ok
}

// Len returns the number of registered designs.
func (g *Graph[T]) Len() int { return len(g.data) }

// Names returns all design names, sorted.
func (g *Graph[T]) Names() []string {
	names := make([]string, 0, len(g.data))
	for n := range g.data {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Instantiated returns the designs that name instantiates.
func (g *Graph[T]) Instantiated(name string) []string {
	return append([]string(nil), g.parents[name]...)
}

// cycle performs a depth-first search over instantiation edges and returns
// the first cycle path found, if any.
func (g *Graph[T]) cycle() []string {
	visited := make(map[string]bool)
	inStack := make(map[string]bool)
	cameFrom := make(map[string]string)

	var found []string
	var dfs func(name string) bool
	dfs = func(name string) bool {
		visited[name] = true
		inStack[name] = true
		for _, dep := range g.parents[name] {
			if !visited[dep] {
				cameFrom[dep] = name
				if dfs(dep) {
					return true
				}
			} else if inStack[dep] {
				found = []string{dep}
				for cur := name; cur != dep; cur = cameFrom[cur] {
					found = append([]string{cur}, found...)
				}
				found = append([]string{dep}, found...)
				return true
			}
		}
		inStack[name] = false
		return false
	}

	for _, name := range g.Names() {
		if !visited[name] {
			if dfs(name) {
				return found
			}
		}
	}
	return nil
}

// ElaborationOrder returns design names so every design appears after the
// designs it instantiates. The order is deterministic. Fails with ErrCycle
// when instantiation is recursive.
func (g *Graph[T]) ElaborationOrder() ([]string, error) {
	if path := g.cycle(); path != nil {
		return nil, fmt.Errorf("%w: %v", ErrCycle, path)
	}

	visited := make(map[string]bool)
	var order []string
	var visit func(name string)
	visit = func(name string) {
		if visited[name] {
			return
		}
		visited[name] = true
		deps := append([]string(nil), g.parents[name]...)
		sort.Strings(deps)
		for _, dep := range deps {
			visit(dep)
		}
		order = append(order, name)
	}
	for _, name := range g.Names() {
		visit(name)
	}
	return order, nil
}

// Levels groups design names by elaboration level: level 0 holds designs
// that instantiate nothing, and every design sits one level above the
// deepest design it instantiates. Designs within a level are independent
// and may be elaborated in parallel. Names within a level are sorted.
func (g *Graph[T]) Levels() ([][]string, error) {
	if path := g.cycle(); path != nil {
		return nil, fmt.Errorf("%w: %v", ErrCycle, path)
	}
	if len(g.data) == 0 {
		return nil, nil
	}

	level := make(map[string]int)
	var levelOf func(name string) int
	levelOf = func(name string) int {
		if l, ok := level[name]; ok {
			return l
		}
		max := -1
		for _, dep := range g.parents[name] {
			if l := levelOf(dep); l > max {
				max = l
			}
		}
		level[name] = max + 1
		return max + 1
	}

	depth := 0
	for name := range g.data {
		if l := levelOf(name); l > depth {
			depth = l
		}
	}
	out := make([][]string, depth+1)
	for name, l := range level {
		out[l] = append(out[l], name)
	}
	for _, names := range out {
		sort.Strings(names)
	}
	return out, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
