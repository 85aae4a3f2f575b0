package hw

// Direction describes how a value crosses a module boundary.
type Direction int

const (
	// Unspecified leaves the direction to be decided by context.
	Unspecified Direction = iota
	// Input marks a value driven from outside the module.
	Input
	// Output marks a value driven by the module.
	Output
	// Flipped marks an aggregate whose leaf directions are inverted.
	Flipped
)

// String returns the lowercase name of the direction.
func (d Direction) String() string {
	switch d {
	case Input:
		return "input"
	case Output:
		return "output"
	case Flipped:
		return "flipped"
	default:
		return "unspecified"
	}
}

// Flip inverts Input and Output. Flipped and Unspecified are returned
// unchanged; flipping is meaningful only for resolved leaf directions.
func (d Direction) Flip() Direction {
	switch d {
	case Input:
		return Output
	case Output:
		return Input
	default:
		return d
	}
}

// ApplyDirection returns a clone of v with directions coerced by d:
// Flipped inverts each leaf's direction, Input and Output force it, and
// Unspecified leaves it unchanged. The clone is unbound; the original is
// not modified.
func ApplyDirection(v Value, d Direction) Value {
	switch t := v.(type) {
	case Terminal:
		c := t.CloneAsType().(Terminal)
		return c.WithDirection(coerce(t.Direction(), d))
	case *Record:
		fields := make([]Field, len(t.fields))
		for i, f := range t.fields {
			fields[i] = Field{Name: f.Name, Value: ApplyDirection(f.Value, d)}
		}
		r := MustRecord(fields...)
		r.dir = coerce(t.dir, d)
		return r
	case *Vec:
		elems := make([]Value, len(t.elems))
		for i, e := range t.elems {
			elems[i] = ApplyDirection(e, d)
		}
		nv, _ := VecOf(elems...)
		nv.dir = coerce(t.dir, d)
		return nv
	default:
		return v.CloneAsType()
	}
}

func coerce(own, spec Direction) Direction {
	switch spec {
	case Flipped:
		return own.Flip()
	case Input, Output:
		return spec
	default:
		return own
	}
}

// AsInput returns an unbound clone of v with every leaf forced to Input.
func AsInput(v Value) Value { return ApplyDirection(v, Input) }

// AsOutput returns an unbound clone of v with every leaf forced to Output.
func AsOutput(v Value) Value { return ApplyDirection(v, Output) }

// Flip returns an unbound clone of v with every leaf direction inverted.
func Flip(v Value) Value { return ApplyDirection(v, Flipped) }
