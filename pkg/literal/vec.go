package literal

import (
	"fmt"
	"math/bits"

	"github.com/gatewire-labs/gatewire/pkg/hw"
)

// Lit is one literal value with an optional declared width. A zero Width
// means "minimal": the fewest bits that represent the value, at least one.
type Lit struct {
	Value uint64
	Width int
}

// L returns a literal of minimal width.
func L(v uint64) Lit { return Lit{Value: v} }

// LW returns a literal with an explicit declared width.
func LW(v uint64, w int) Lit { return Lit{Value: v, Width: w} }

func (l Lit) width() int {
	if l.Width > 0 {
		return l.Width
	}
	w := bits.Len64(l.Value)
	if w == 0 {
		w = 1
	}
	return w
}

// IndexedLit assigns a literal to one slot of an indexed aggregate.
type IndexedLit struct {
	Index int
	Lit   Lit
}

type vecConfig struct {
	length    int
	elemWidth int
}

// VecOption configures vec literal construction.
type VecOption func(*vecConfig)

// WithLength forces the produced vec's length. Slots without a literal are
// filled with don't-care leaves.
func WithLength(n int) VecOption {
	return func(c *vecConfig) { c.length = n }
}

// WithElemWidth caps the element width instead of deriving it from the
// widest supplied value. Any literal wider than the cap fails with
// hw.ErrValueOutOfRange rather than being truncated.
func WithElemWidth(w int) VecOption {
	return func(c *vecConfig) { c.elemWidth = w }
}

// VecLit builds an immutable homogeneous indexed aggregate from values in
// positional order. The uniform element width is the maximum over all
// supplied literal widths (promotion, never truncation); narrower values
// are zero-extended. Fails with ErrEmptySequence when no values are given.
func VecLit(lits []Lit, opts ...VecOption) (*hw.Vec, error) {
	indexed := make([]IndexedLit, len(lits))
	for i, l := range lits {
		indexed[i] = IndexedLit{Index: i, Lit: l}
	}
	return VecLitIndexed(indexed, opts...)
}

// VecLitIndexed builds an immutable homogeneous indexed aggregate from
// (index, value) pairs. The length defaults to the highest index plus one.
// Duplicate indices fail with ErrDuplicateAssignment; unassigned slots
// become don't-care leaves.
func VecLitIndexed(lits []IndexedLit, opts ...VecOption) (*hw.Vec, error) {
	if len(lits) == 0 {
		return nil, ErrEmptySequence
	}

	var cfg vecConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// Promote first, then validate every literal against the promoted type.
	elemWidth := 0
	for _, il := range lits {
		if il.Lit.Width > 0 && bits.Len64(il.Lit.Value) > il.Lit.Width {
			return nil, fmt.Errorf("%w: value %d does not fit declared width %d",
				hw.ErrValueOutOfRange, il.Lit.Value, il.Lit.Width)
		}
		if w := il.Lit.width(); w > elemWidth {
			elemWidth = w
		}
	}
	if cfg.elemWidth > 0 {
		if elemWidth > cfg.elemWidth {
			return nil, fmt.Errorf("%w: literal width %d exceeds element width %d",
				hw.ErrValueOutOfRange, elemWidth, cfg.elemWidth)
		}
		elemWidth = cfg.elemWidth
	}

	length := cfg.length
	byIndex := make(map[int]Lit, len(lits))
	for _, il := range lits {
		if il.Index < 0 {
			return nil, fmt.Errorf("literal index %d is negative", il.Index)
		}
		if _, dup := byIndex[il.Index]; dup {
			return nil, fmt.Errorf("index %d: %w", il.Index, ErrDuplicateAssignment)
		}
		byIndex[il.Index] = il.Lit
		if cfg.length == 0 && il.Index+1 > length {
			length = il.Index + 1
		}
	}
	if cfg.length > 0 {
		for idx := range byIndex {
			if idx >= cfg.length {
				return nil, fmt.Errorf("literal index %d outside explicit length %d", idx, cfg.length)
			}
		}
	}

	elem := hw.UInt(elemWidth)
	elems := make([]hw.Value, length)
	for i := range elems {
		l, ok := byIndex[i]
		if !ok {
			elems[i] = elem.AsDontCare()
			continue
		}
		slot := elem.CloneAsType().(hw.Terminal)
		bt, err := slot.WithLit(l.Value)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		elems[i] = bt
	}
	return hw.VecOf(elems...)
}
