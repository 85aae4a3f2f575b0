package tuple

import "github.com/gatewire-labs/gatewire/pkg/hw"

// The per-arity declarations below are mechanical; Tuple2 is the fully
// documented exemplar for the family.

// Tuple2 is the arity-2 positional aggregate; its fields enumerate as
// _1.._2 in declared order.
type Tuple2[T1 hw.Value, T2 hw.Value] struct{ rec *hw.Record }

// New2 builds a Tuple2 from its fields in declared order. Arguments are
// constrained to hw.Value, so a non-value argument is a compile error.
func New2[T1 hw.Value, T2 hw.Value](v1 T1, v2 T2) *Tuple2[T1, T2] {
	return &Tuple2[T1, T2]{rec: positional(v1, v2)}
}

// Values destructures the tuple into its statically typed fields.
func (t *Tuple2[T1, T2]) Values() (T1, T2) {
	f := t.rec.Fields()
	return f[0].Value.(T1), f[1].Value.(T2)
}

// Record returns the backing positional record.
func (t *Tuple2[T1, T2]) Record() *hw.Record { return t.rec }

// Fields enumerates the (name, value) pairs in declared order.
func (t *Tuple2[T1, T2]) Fields() []hw.Field { return t.rec.Fields() }

func (t *Tuple2[T1, T2]) Width() int { return t.rec.Width() }

func (t *Tuple2[T1, T2]) Direction() hw.Direction { return t.rec.Direction() }

func (t *Tuple2[T1, T2]) Leaves() []hw.Terminal { return t.rec.Leaves() }

// TypeEquals reports whether o has the same positional record shape.
func (t *Tuple2[T1, T2]) TypeEquals(o hw.Value) bool { return tupleTypeEquals(t.rec, o) }

// CloneAsType re-clones each field independently, preserving declared
// order and the static field types.
func (t *Tuple2[T1, T2]) CloneAsType() hw.Value {
	v1, v2 := t.Values()
	return New2(v1.CloneAsType().(T1), v2.CloneAsType().(T2))
}

type Tuple3[T1 hw.Value, T2 hw.Value, T3 hw.Value] struct{ rec *hw.Record }

func New3[T1 hw.Value, T2 hw.Value, T3 hw.Value](v1 T1, v2 T2, v3 T3) *Tuple3[T1, T2, T3] {
	return &Tuple3[T1, T2, T3]{rec: positional(v1, v2, v3)}
}

func (t *Tuple3[T1, T2, T3]) Values() (T1, T2, T3) {
	f := t.rec.Fields()
	return f[0].Value.(T1), f[1].Value.(T2), f[2].Value.(T3)
}

func (t *Tuple3[T1, T2, T3]) Record() *hw.Record { return t.rec }

func (t *Tuple3[T1, T2, T3]) Fields() []hw.Field { return t.rec.Fields() }

func (t *Tuple3[T1, T2, T3]) Width() int { return t.rec.Width() }

func (t *Tuple3[T1, T2, T3]) Direction() hw.Direction { return t.rec.Direction() }

func (t *Tuple3[T1, T2, T3]) Leaves() []hw.Terminal { return t.rec.Leaves() }

func (t *Tuple3[T1, T2, T3]) TypeEquals(o hw.Value) bool { return tupleTypeEquals(t.rec, o) }

func (t *Tuple3[T1, T2, T3]) CloneAsType() hw.Value {
	v1, v2, v3 := t.Values()
	return New3(v1.CloneAsType().(T1), v2.CloneAsType().(T2), v3.CloneAsType().(T3))
}

type Tuple4[T1 hw.Value, T2 hw.Value, T3 hw.Value, T4 hw.Value] struct{ rec *hw.Record }

func New4[T1 hw.Value, T2 hw.Value, T3 hw.Value, T4 hw.Value](v1 T1, v2 T2, v3 T3, v4 T4) *Tuple4[T1, T2, T3, T4] {
	return &Tuple4[T1, T2, T3, T4]{rec: positional(v1, v2, v3, v4)}
}

func (t *Tuple4[T1, T2, T3, T4]) Values() (T1, T2, T3, T4) {
	f := t.rec.Fields()
	return f[0].Value.(T1), f[1].Value.(T2), f[2].Value.(T3), f[3].Value.(T4)
}

func (t *Tuple4[T1, T2, T3, T4]) Record() *hw.Record { return t.rec }

func (t *Tuple4[T1, T2, T3, T4]) Fields() []hw.Field { return t.rec.Fields() }

func (t *Tuple4[T1, T2, T3, T4]) Width() int { return t.rec.Width() }

func (t *Tuple4[T1, T2, T3, T4]) Direction() hw.Direction { return t.rec.Direction() }

func (t *Tuple4[T1, T2, T3, T4]) Leaves() []hw.Terminal { return t.rec.Leaves() }

func (t *Tuple4[T1, T2, T3, T4]) TypeEquals(o hw.Value) bool { return tupleTypeEquals(t.rec, o) }

func (t *Tuple4[T1, T2, T3, T4]) CloneAsType() hw.Value {
	v1, v2, v3, v4 := t.Values()
	return New4(v1.CloneAsType().(T1), v2.CloneAsType().(T2), v3.CloneAsType().(T3), v4.CloneAsType().(T4))
}

type Tuple5[T1 hw.Value, T2 hw.Value, T3 hw.Value, T4 hw.Value, T5 hw.Value] struct{ rec *hw.Record }

func New5[T1 hw.Value, T2 hw.Value, T3 hw.Value, T4 hw.Value, T5 hw.Value](v1 T1, v2 T2, v3 T3, v4 T4, v5 T5) *Tuple5[T1, T2, T3, T4, T5] {
	return &Tuple5[T1, T2, T3, T4, T5]{rec: positional(v1, v2, v3, v4, v5)}
}

func (t *Tuple5[T1, T2, T3, T4, T5]) Values() (T1, T2, T3, T4, T5) {
	f := t.rec.Fields()
	return f[0].Value.(T1), f[1].Value.(T2), f[2].Value.(T3), f[3].Value.(T4), f[4].Value.(T5)
}

func (t *Tuple5[T1, T2, T3, T4, T5]) Record() *hw.Record { return t.rec }

func (t *Tuple5[T1, T2, T3, T4, T5]) Fields() []hw.Field { return t.rec.Fields() }

func (t *Tuple5[T1, T2, T3, T4, T5]) Width() int { return t.rec.Width() }

func (t *Tuple5[T1, T2, T3, T4, T5]) Direction() hw.Direction { return t.rec.Direction() }

func (t *Tuple5[T1, T2, T3, T4, T5]) Leaves() []hw.Terminal { return t.rec.Leaves() }

func (t *Tuple5[T1, T2, T3, T4, T5]) TypeEquals(o hw.Value) bool { return tupleTypeEquals(t.rec, o) }

func (t *Tuple5[T1, T2, T3, T4, T5]) CloneAsType() hw.Value {
	v1, v2, v3, v4, v5 := t.Values()
	return New5(v1.CloneAsType().(T1), v2.CloneAsType().(T2), v3.CloneAsType().(T3), v4.CloneAsType().(T4), v5.CloneAsType().(T5))
}

type Tuple6[T1 hw.Value, T2 hw.Value, T3 hw.Value, T4 hw.Value, T5 hw.Value, T6 hw.Value] struct{ rec *hw.Record }

func New6[T1 hw.Value, T2 hw.Value, T3 hw.Value, T4 hw.Value, T5 hw.Value, T6 hw.Value](v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6) *Tuple6[T1, T2, T3, T4, T5, T6] {
	return &Tuple6[T1, T2, T3, T4, T5, T6]{rec: positional(v1, v2, v3, v4, v5, v6)}
}

func (t *Tuple6[T1, T2, T3, T4, T5, T6]) Values() (T1, T2, T3, T4, T5, T6) {
	f := t.rec.Fields()
	return f[0].Value.(T1), f[1].Value.(T2), f[2].Value.(T3), f[3].Value.(T4), f[4].Value.(T5), f[5].Value.(T6)
}

func (t *Tuple6[T1, T2, T3, T4, T5, T6]) Record() *hw.Record { return t.rec }

func (t *Tuple6[T1, T2, T3, T4, T5, T6]) Fields() []hw.Field { return t.rec.Fields() }

func (t *Tuple6[T1, T2, T3, T4, T5, T6]) Width() int { return t.rec.Width() }

func (t *Tuple6[T1, T2, T3, T4, T5, T6]) Direction() hw.Direction { return t.rec.Direction() }

func (t *Tuple6[T1, T2, T3, T4, T5, T6]) Leaves() []hw.Terminal { return t.rec.Leaves() }

func (t *Tuple6[T1, T2, T3, T4, T5, T6]) TypeEquals(o hw.Value) bool { return tupleTypeEquals(t.rec, o) }

func (t *Tuple6[T1, T2, T3, T4, T5, T6]) CloneAsType() hw.Value {
	v1, v2, v3, v4, v5, v6 := t.Values()
	return New6(v1.CloneAsType().(T1), v2.CloneAsType().(T2), v3.CloneAsType().(T3), v4.CloneAsType().(T4), v5.CloneAsType().(T5), v6.CloneAsType().(T6))
}

type Tuple7[T1 hw.Value, T2 hw.Value, T3 hw.Value, T4 hw.Value, T5 hw.Value, T6 hw.Value, T7 hw.Value] struct{ rec *hw.Record }

func New7[T1 hw.Value, T2 hw.Value, T3 hw.Value, T4 hw.Value, T5 hw.Value, T6 hw.Value, T7 hw.Value](v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7) *Tuple7[T1, T2, T3, T4, T5, T6, T7] {
	return &Tuple7[T1, T2, T3, T4, T5, T6, T7]{rec: positional(v1, v2, v3, v4, v5, v6, v7)}
}

func (t *Tuple7[T1, T2, T3, T4, T5, T6, T7]) Values() (T1, T2, T3, T4, T5, T6, T7) {
	f := t.rec.Fields()
	return f[0].Value.(T1), f[1].Value.(T2), f[2].Value.(T3), f[3].Value.(T4), f[4].Value.(T5), f[5].Value.(T6), f[6].Value.(T7)
}

func (t *Tuple7[T1, T2, T3, T4, T5, T6, T7]) Record() *hw.Record { return t.rec }

func (t *Tuple7[T1, T2, T3, T4, T5, T6, T7]) Fields() []hw.Field { return t.rec.Fields() }

func (t *Tuple7[T1, T2, T3, T4, T5, T6, T7]) Width() int { return t.rec.Width() }

func (t *Tuple7[T1, T2, T3, T4, T5, T6, T7]) Direction() hw.Direction { return t.rec.Direction() }

func (t *Tuple7[T1, T2, T3, T4, T5, T6, T7]) Leaves() []hw.Terminal { return t.rec.Leaves() }

func (t *Tuple7[T1, T2, T3, T4, T5, T6, T7]) TypeEquals(o hw.Value) bool { return tupleTypeEquals(t.rec, o) }

func (t *Tuple7[T1, T2, T3, T4, T5, T6, T7]) CloneAsType() hw.Value {
	v1, v2, v3, v4, v5, v6, v7 := t.Values()
	return New7(v1.CloneAsType().(T1), v2.CloneAsType().(T2), v3.CloneAsType().(T3), v4.CloneAsType().(T4), v5.CloneAsType().(T5), v6.CloneAsType().(T6), v7.CloneAsType().(T7))
}

type Tuple8[T1 hw.Value, T2 hw.Value, T3 hw.Value, T4 hw.Value, T5 hw.Value, T6 hw.Value, T7 hw.Value, T8 hw.Value] struct{ rec *hw.Record }

func New8[T1 hw.Value, T2 hw.Value, T3 hw.Value, T4 hw.Value, T5 hw.Value, T6 hw.Value, T7 hw.Value, T8 hw.Value](v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7, v8 T8) *Tuple8[T1, T2, T3, T4, T5, T6, T7, T8] {
	return &Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]{rec: positional(v1, v2, v3, v4, v5, v6, v7, v8)}
}

func (t *Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]) Values() (T1, T2, T3, T4, T5, T6, T7, T8) {
	f := t.rec.Fields()
	return f[0].Value.(T1), f[1].Value.(T2), f[2].Value.(T3), f[3].Value.(T4), f[4].Value.(T5), f[5].Value.(T6), f[6].Value.(T7), f[7].Value.(T8)
}

func (t *Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]) Record() *hw.Record { return t.rec }

func (t *Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]) Fields() []hw.Field { return t.rec.Fields() }

func (t *Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]) Width() int { return t.rec.Width() }

func (t *Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]) Direction() hw.Direction { return t.rec.Direction() }

func (t *Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]) Leaves() []hw.Terminal { return t.rec.Leaves() }

func (t *Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]) TypeEquals(o hw.Value) bool { return tupleTypeEquals(t.rec, o) }

func (t *Tuple8[T1, T2, T3, T4, T5, T6, T7, T8]) CloneAsType() hw.Value {
	v1, v2, v3, v4, v5, v6, v7, v8 := t.Values()
	return New8(v1.CloneAsType().(T1), v2.CloneAsType().(T2), v3.CloneAsType().(T3), v4.CloneAsType().(T4), v5.CloneAsType().(T5), v6.CloneAsType().(T6), v7.CloneAsType().(T7), v8.CloneAsType().(T8))
}

type Tuple9[T1 hw.Value, T2 hw.Value, T3 hw.Value, T4 hw.Value, T5 hw.Value, T6 hw.Value, T7 hw.Value, T8 hw.Value, T9 hw.Value] struct{ rec *hw.Record }

func New9[T1 hw.Value, T2 hw.Value, T3 hw.Value, T4 hw.Value, T5 hw.Value, T6 hw.Value, T7 hw.Value, T8 hw.Value, T9 hw.Value](v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7, v8 T8, v9 T9) *Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9] {
	return &Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]{rec: positional(v1, v2, v3, v4, v5, v6, v7, v8, v9)}
}

func (t *Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) Values() (T1, T2, T3, T4, T5, T6, T7, T8, T9) {
	f := t.rec.Fields()
	return f[0].Value.(T1), f[1].Value.(T2), f[2].Value.(T3), f[3].Value.(T4), f[4].Value.(T5), f[5].Value.(T6), f[6].Value.(T7), f[7].Value.(T8), f[8].Value.(T9)
}

func (t *Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) Record() *hw.Record { return t.rec }

func (t *Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) Fields() []hw.Field { return t.rec.Fields() }

func (t *Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) Width() int { return t.rec.Width() }

func (t *Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) Direction() hw.Direction { return t.rec.Direction() }

func (t *Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) Leaves() []hw.Terminal { return t.rec.Leaves() }

func (t *Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) TypeEquals(o hw.Value) bool { return tupleTypeEquals(t.rec, o) }

func (t *Tuple9[T1, T2, T3, T4, T5, T6, T7, T8, T9]) CloneAsType() hw.Value {
	v1, v2, v3, v4, v5, v6, v7, v8, v9 := t.Values()
	return New9(v1.CloneAsType().(T1), v2.CloneAsType().(T2), v3.CloneAsType().(T3), v4.CloneAsType().(T4), v5.CloneAsType().(T5), v6.CloneAsType().(T6), v7.CloneAsType().(T7), v8.CloneAsType().(T8), v9.CloneAsType().(T9))
}

type Tuple10[T1 hw.Value, T2 hw.Value, T3 hw.Value, T4 hw.Value, T5 hw.Value, T6 hw.Value, T7 hw.Value, T8 hw.Value, T9 hw.Value, T10 hw.Value] struct{ rec *hw.Record }

func New10[T1 hw.Value, T2 hw.Value, T3 hw.Value, T4 hw.Value, T5 hw.Value, T6 hw.Value, T7 hw.Value, T8 hw.Value, T9 hw.Value, T10 hw.Value](v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, v7 T7, v8 T8, v9 T9, v10 T10) *Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10] {
	return &Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]{rec: positional(v1, v2, v3, v4, v5, v6, v7, v8, v9, v10)}
}

func (t *Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Values() (T1, T2, T3, T4, T5, T6, T7, T8, T9, T10) {
	f := t.rec.Fields()
	return f[0].Value.(T1), f[1].Value.(T2), f[2].Value.(T3), f[3].Value.(T4), f[4].Value.(T5), f[5].Value.(T6), f[6].Value.(T7), f[7].Value.(T8), f[8].Value.(T9), f[9].Value.(T10)
}

func (t *Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Record() *hw.Record { return t.rec }

func (t *Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Fields() []hw.Field { return t.rec.Fields() }

func (t *Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Width() int { return t.rec.Width() }

func (t *Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Direction() hw.Direction { return t.rec.Direction() }

func (t *Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) Leaves() []hw.Terminal { return t.rec.Leaves() }

func (t *Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) TypeEquals(o hw.Value) bool { return tupleTypeEquals(t.rec, o) }

func (t *Tuple10[T1, T2, T3, T4, T5, T6, T7, T8, T9, T10]) CloneAsType() hw.Value {
	v1, v2, v3, v4, v5, v6, v7, v8, v9, v10 := t.Values()
	return New10(v1.CloneAsType().(T1), v2.CloneAsType().(T2), v3.CloneAsType().(T3), v4.CloneAsType().(T4), v5.CloneAsType().(T5), v6.CloneAsType().(T6), v7.CloneAsType().(T7), v8.CloneAsType().(T8), v9.CloneAsType().(T9), v10.CloneAsType().(T10))
}
