// Package design turns declarative design descriptions (from the project
// configuration) into elaborated hardware: it parses port type syntax into
// pkg/hw values, orders designs by instantiation, and drives pkg/elab.
package design

// Design describes one module to elaborate.
type Design struct {
	// Name is the module name, unique within a project.
	Name string `koanf:"name"`
	// Ports are the module's boundary, in declaration order.
	Ports []PortSpec `koanf:"ports"`
	// Instances are other designs this design instantiates.
	Instances []InstanceSpec `koanf:"instances"`
}

// PortSpec declares one port by name and type syntax, e.g.
// "in uint[7:0]" or "flip {valid: bool, bits: uint8}".
type PortSpec struct {
	Name string `koanf:"name"`
	Type string `koanf:"type"`
	// Flatten exposes a record-typed port as loose flat terminals, one
	// module port per leaf in reverse declared order.
	Flatten bool `koanf:"flatten"`
}

// InstanceSpec names one submodule instantiation.
type InstanceSpec struct {
	// Name is the instance label within the parent design.
	Name string `koanf:"name"`
	// Design is the name of the instantiated design.
	Design string `koanf:"design"`
}
