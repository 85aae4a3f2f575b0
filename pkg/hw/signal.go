package hw

import (
	"fmt"
	"math/bits"

	"github.com/google/uuid"
)

type signalKind int

const (
	kindUInt signalKind = iota
	kindSInt
	kindBool
)

func (k signalKind) String() string {
	switch k {
	case kindSInt:
		return "sint"
	case kindBool:
		return "bool"
	default:
		return "uint"
	}
}

// Signal is the concrete leaf terminal: a fixed-width bit vector or a
// boolean. The zero value is not usable; construct with UInt, SInt or Bool.
type Signal struct {
	id       uuid.UUID
	kind     signalKind
	width    int
	dir      Direction
	name     string
	lit      uint64
	hasLit   bool
	dontCare bool
}

// UInt returns an unbound unsigned signal of the given width in bits.
func UInt(width int) *Signal {
	return &Signal{id: uuid.New(), kind: kindUInt, width: width}
}

// SInt returns an unbound signed (two's complement) signal of the given
// width in bits.
func SInt(width int) *Signal {
	return &Signal{id: uuid.New(), kind: kindSInt, width: width}
}

// Bool returns an unbound single-bit boolean signal.
func Bool() *Signal {
	return &Signal{id: uuid.New(), kind: kindBool, width: 1}
}

// Width returns the signal width in bits.
func (s *Signal) Width() int { return s.width }

// Direction returns the signal's declared direction.
func (s *Signal) Direction() Direction { return s.dir }

// Signed reports whether the signal is two's complement signed.
func (s *Signal) Signed() bool { return s.kind == kindSInt }

// ID returns the signal's debug identifier.
func (s *Signal) ID() uuid.UUID { return s.id }

// Name returns the currently suggested name, or "".
func (s *Signal) Name() string { return s.name }

// SuggestName records a naming hint. Later suggestions win.
func (s *Signal) SuggestName(name string) { s.name = name }

// Lit returns the bound literal value, if any.
func (s *Signal) Lit() (uint64, bool) { return s.lit, s.hasLit }

// DontCare reports whether the signal is a don't-care placeholder.
func (s *Signal) DontCare() bool { return s.dontCare }

// CloneAsType returns a fresh unbound signal of the same kind, width and
// direction. The clone has a new identity and carries no name or literal.
func (s *Signal) CloneAsType() Value {
	return &Signal{id: uuid.New(), kind: s.kind, width: s.width, dir: s.dir}
}

// WithDirection returns an unbound clone carrying direction d.
func (s *Signal) WithDirection(d Direction) Terminal {
	c := s.CloneAsType().(*Signal)
	c.dir = d
	return c
}

// WithLit returns a clone of the signal with the literal v bound. The raw
// bit pattern of v must fit the declared width; see ErrValueOutOfRange.
func (s *Signal) WithLit(v uint64) (Terminal, error) {
	if bits.Len64(v) > s.width {
		return nil, fmt.Errorf("%w: value %d needs %d bits, %s has %d",
			ErrValueOutOfRange, v, bits.Len64(v), s, s.width)
	}
	c := s.CloneAsType().(*Signal)
	c.lit = v
	c.hasLit = true
	return c, nil
}

// AsDontCare returns a clone marked as a don't-care placeholder.
func (s *Signal) AsDontCare() Terminal {
	c := s.CloneAsType().(*Signal)
	c.dontCare = true
	return c
}

// Leaves returns the signal itself as a one-element slice.
func (s *Signal) Leaves() []Terminal { return []Terminal{s} }

// TypeEquals reports kind and width equality. Direction, names and bound
// literals do not participate in type identity.
func (s *Signal) TypeEquals(o Value) bool {
	so, ok := o.(*Signal)
	return ok && so.kind == s.kind && so.width == s.width
}

// String renders the signal type for diagnostics, e.g. "uint<8>".
func (s *Signal) String() string {
	if s.kind == kindBool {
		return "bool"
	}
	return fmt.Sprintf("%s<%d>", s.kind, s.width)
}
