package hw

import (
	"fmt"
	"strings"
)

// Field is one named member of a Record.
type Field struct {
	Name  string
	Value Value
}

// Record is an ordered mapping from field name to sub-value. Declaration
// order is authoritative: it drives default naming and the positional
// correspondence with flat terminal sequences. Records are immutable after
// construction.
type Record struct {
	fields []Field
	index  map[string]int
	dir    Direction
	frozen bool
}

// NewRecord builds a record from fields in declared order. Field names must
// be non-empty and unique.
func NewRecord(fields ...Field) (*Record, error) {
	r := &Record{
		fields: make([]Field, len(fields)),
		index:  make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("record field %d: empty name", i)
		}
		if f.Value == nil {
			return nil, fmt.Errorf("record field %q: nil value", f.Name)
		}
		if _, dup := r.index[f.Name]; dup {
			return nil, fmt.Errorf("record field %q: duplicate name", f.Name)
		}
		r.fields[i] = f
		r.index[f.Name] = i
	}
	return r, nil
}

// MustRecord is NewRecord but panics on invalid fields. Intended for
// statically known shapes.
func MustRecord(fields ...Field) *Record {
	r, err := NewRecord(fields...)
	if err != nil {
		panic(err)
	}
	return r
}

// NumFields returns the number of declared fields.
func (r *Record) NumFields() int { return len(r.fields) }

// Fields returns the fields in declared order. The returned slice is a
// copy; the field values are not.
func (r *Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Get returns the named field's value.
func (r *Record) Get(name string) (Value, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.fields[i].Value, true
}

// Width returns the sum of all field widths.
func (r *Record) Width() int {
	w := 0
	for _, f := range r.fields {
		w += f.Value.Width()
	}
	return w
}

// Direction returns the record's own declared direction, set when the
// record was built through a direction coercion such as Flip or AsInput.
func (r *Record) Direction() Direction { return r.dir }

// Frozen reports whether the record is a read-only result (a literal or a
// port snapshot).
func (r *Record) Frozen() bool { return r.frozen }

// Freeze marks the record read-only. Freezing is advisory and one-way.
func (r *Record) Freeze() { r.frozen = true }

// CloneAsType returns a fresh unbound record cloning each field
// independently, preserving declared order and the record's direction.
func (r *Record) CloneAsType() Value {
	fields := make([]Field, len(r.fields))
	for i, f := range r.fields {
		fields[i] = Field{Name: f.Name, Value: f.Value.CloneAsType()}
	}
	c := MustRecord(fields...)
	c.dir = r.dir
	return c
}

// Leaves returns all terminals in declared order, depth first.
func (r *Record) Leaves() []Terminal {
	var out []Terminal
	for _, f := range r.fields {
		out = append(out, f.Value.Leaves()...)
	}
	return out
}

// LeafPaths returns the dotted field path of each leaf, parallel to
// Leaves(). Vec elements contribute their decimal index as a path segment.
func (r *Record) LeafPaths() []string {
	var out []string
	for _, f := range r.fields {
		appendPaths(&out, f.Name, f.Value)
	}
	return out
}

func appendPaths(out *[]string, prefix string, v Value) {
	switch t := v.(type) {
	case *Record:
		for _, f := range t.fields {
			appendPaths(out, prefix+"."+f.Name, f.Value)
		}
	case *Vec:
		for i, e := range t.elems {
			appendPaths(out, fmt.Sprintf("%s.%d", prefix, i), e)
		}
	case Terminal:
		*out = append(*out, prefix)
	case interface{ Record() *Record }:
		// Positional aggregates (tuples) expose their record shape.
		for _, f := range t.Record().fields {
			appendPaths(out, prefix+"."+f.Name, f.Value)
		}
	default:
		// Unknown aggregate: number the leaves positionally.
		for i := range v.Leaves() {
			*out = append(*out, fmt.Sprintf("%s.%d", prefix, i))
		}
	}
}

// TypeEquals reports structural type equality: same field names in the same
// order, with pairwise type-equal values.
func (r *Record) TypeEquals(o Value) bool {
	ro, ok := o.(*Record)
	if !ok || len(ro.fields) != len(r.fields) {
		return false
	}
	for i, f := range r.fields {
		if ro.fields[i].Name != f.Name || !f.Value.TypeEquals(ro.fields[i].Value) {
			return false
		}
	}
	return true
}

// BindLeaves returns a structural clone of the record whose leaf slots are
// the supplied terminals, in declared order. The terminals are aliased, not
// copied. Fails with ErrShapeMismatch on a count mismatch and
// ErrTypeMismatch when a terminal is incompatible with its slot.
func (r *Record) BindLeaves(leaves []Terminal) (*Record, error) {
	want := len(r.Leaves())
	if len(leaves) != want {
		return nil, fmt.Errorf("%w: record has %d leaves, got %d terminals",
			ErrShapeMismatch, want, len(leaves))
	}
	rest := leaves
	v, err := bindValue(r, &rest)
	if err != nil {
		return nil, err
	}
	return v.(*Record), nil
}

func bindValue(v Value, rest *[]Terminal) (Value, error) {
	switch t := v.(type) {
	case *Record:
		fields := make([]Field, len(t.fields))
		for i, f := range t.fields {
			bv, err := bindValue(f.Value, rest)
			if err != nil {
				return nil, fmt.Errorf("field %q: %w", f.Name, err)
			}
			fields[i] = Field{Name: f.Name, Value: bv}
		}
		nr := MustRecord(fields...)
		nr.dir = t.dir
		return nr, nil
	case *Vec:
		elems := make([]Value, len(t.elems))
		for i, e := range t.elems {
			bv, err := bindValue(e, rest)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			elems[i] = bv
		}
		return VecOf(elems...)
	case Terminal:
		next := (*rest)[0]
		*rest = (*rest)[1:]
		if !next.TypeEquals(t) {
			return nil, fmt.Errorf("%w: cannot bind %v into slot of type %v",
				ErrTypeMismatch, next, t)
		}
		return next, nil
	default:
		return nil, fmt.Errorf("%w: unsupported value kind %T", ErrTypeMismatch, v)
	}
}

// String renders the record type for diagnostics.
func (r *Record) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, f := range r.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", f.Name, f.Value)
	}
	b.WriteString("}")
	return b.String()
}
