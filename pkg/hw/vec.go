package hw

import "fmt"

// Vec is a homogeneous indexed aggregate: n elements of one element type.
type Vec struct {
	elems []Value
	dir   Direction
}

// NewVec builds a vec of n independent clones of the element type.
func NewVec(elem Value, n int) (*Vec, error) {
	if elem == nil {
		return nil, fmt.Errorf("vec element type is nil")
	}
	if n < 0 {
		return nil, fmt.Errorf("vec length %d is negative", n)
	}
	elems := make([]Value, n)
	for i := range elems {
		elems[i] = elem.CloneAsType()
	}
	return &Vec{elems: elems}, nil
}

// VecOf builds a vec from explicit elements, which must be pairwise
// type-equal. The elements are aliased, not cloned.
func VecOf(elems ...Value) (*Vec, error) {
	for i := 1; i < len(elems); i++ {
		if !elems[0].TypeEquals(elems[i]) {
			return nil, fmt.Errorf("%w: vec element %d has type %v, element 0 has %v",
				ErrTypeMismatch, i, elems[i], elems[0])
		}
	}
	return &Vec{elems: elems}, nil
}

// Len returns the number of elements.
func (v *Vec) Len() int { return len(v.elems) }

// At returns the element at index i.
func (v *Vec) At(i int) Value { return v.elems[i] }

// Width returns the sum of all element widths.
func (v *Vec) Width() int {
	w := 0
	for _, e := range v.elems {
		w += e.Width()
	}
	return w
}

// Direction returns the vec's own declared direction.
func (v *Vec) Direction() Direction { return v.dir }

// CloneAsType returns a fresh unbound vec cloning each element.
func (v *Vec) CloneAsType() Value {
	elems := make([]Value, len(v.elems))
	for i, e := range v.elems {
		elems[i] = e.CloneAsType()
	}
	return &Vec{elems: elems, dir: v.dir}
}

// Leaves returns all terminals in index order, depth first.
func (v *Vec) Leaves() []Terminal {
	var out []Terminal
	for _, e := range v.elems {
		out = append(out, e.Leaves()...)
	}
	return out
}

// TypeEquals reports same length and pairwise type-equal elements.
func (v *Vec) TypeEquals(o Value) bool {
	vo, ok := o.(*Vec)
	if !ok || len(vo.elems) != len(v.elems) {
		return false
	}
	for i, e := range v.elems {
		if !e.TypeEquals(vo.elems[i]) {
			return false
		}
	}
	return true
}

// String renders the vec type for diagnostics, e.g. "vec<4, uint<8>>".
func (v *Vec) String() string {
	if len(v.elems) == 0 {
		return "vec<0>"
	}
	return fmt.Sprintf("vec<%d, %v>", len(v.elems), v.elems[0])
}
