package hw

import (
	"errors"

	"github.com/google/uuid"
)

// Sentinel errors for structural and range violations. All are reported
// synchronously at the call that violates a contract; no operation in this
// package produces a partial result.
var (
	// ErrShapeMismatch indicates a leaf-count or structural incompatibility
	// between two aggregate shapes.
	ErrShapeMismatch = errors.New("shape mismatch")
	// ErrTypeMismatch indicates a leaf-type incompatibility at a given
	// position.
	ErrTypeMismatch = errors.New("type mismatch")
	// ErrValueOutOfRange indicates a literal value that is not representable
	// in a terminal's declared width.
	ErrValueOutOfRange = errors.New("value out of range")
)

// Value is a typed hardware value: a single Terminal or an aggregate tree
// whose leaves are Terminals.
type Value interface {
	// Width returns the total bit width of the value.
	Width() int
	// Direction returns the value's declared direction.
	Direction() Direction
	// CloneAsType returns a fresh, unbound value of the identical type and
	// direction. Aggregates clone each field independently, preserving
	// declared order.
	CloneAsType() Value
	// Leaves returns the value's terminals in declared order, depth first.
	Leaves() []Terminal
	// TypeEquals reports whether o has the identical structural type:
	// same shape, same leaf widths and signedness, field names included.
	TypeEquals(o Value) bool
}

// Terminal is the atomic typed unit all aggregates bottom out in. Identity
// is by reference: two Terminal values are the same terminal only if they
// alias the same underlying signal.
type Terminal interface {
	Value

	// ID returns a stable identifier, useful for debugging and logging.
	ID() uuid.UUID
	// Name returns the currently suggested name, or "" if none.
	Name() string
	// SuggestName records a naming hint for the terminal. Later suggestions
	// win; elaboration reads the final hint.
	SuggestName(name string)
	// WithDirection returns an unbound clone carrying direction d.
	WithDirection(d Direction) Terminal
	// Lit returns the bound literal value, if any.
	Lit() (uint64, bool)
	// WithLit returns a clone of the terminal carrying the literal v.
	// Fails with ErrValueOutOfRange if v does not fit the declared width.
	WithLit(v uint64) (Terminal, error)
	// DontCare reports whether the terminal is an explicit don't-care
	// placeholder.
	DontCare() bool
	// AsDontCare returns a clone marked as a don't-care placeholder.
	AsDontCare() Terminal
}
