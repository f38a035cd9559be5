package t3

import (
	"github.com/fiber-space/t3/internal/numeric"
	"github.com/fiber-space/t3/internal/pattern"
)

// Bitset is a finite mapping from fixed-width bit-patterns to symbolic
// names (spec.md §4.6). As a Pattern it matches any value of its
// declared width; NameOf reports the symbolic name of a matched value,
// if it is one of the defined patterns. Bitset is stateless between
// matches (the name lookup is done on demand from the matched Value, not
// cached), so a *Bitset can be shared as a prototype pattern across
// Table copies without breaking copy isolation.
type Bitset struct {
	width int
	names map[string]numeric.Value
	order []string
}

// NewBitset builds an empty Bitset matching exactly width bits.
func NewBitset(width int) *Bitset {
	return &Bitset{width: width, names: map[string]numeric.Value{}}
}

// Define associates name with the bit pattern described by value,
// zero-padded to the bitset's declared width.
func (b *Bitset) Define(name string, value Value) (*Bitset, error) {
	padded, err := padBin(value, b.width)
	if err != nil {
		return nil, err
	}
	if _, exists := b.names[name]; !exists {
		b.order = append(b.order, name)
	}
	b.names[name] = padded.raw()
	return b, nil
}

// Match implements Pattern: it consumes exactly b.width bits regardless
// of how much data remains (spec.md §4.6: "Bitset widths are exact;
// longer input consumes only the declared width").
func (b *Bitset) Match(_ pattern.Env, data numeric.Value) pattern.Match {
	if data.Len() < b.width {
		return pattern.Match{Fail: true}
	}
	val := data.DigitSlice(0, b.width)
	rest := data.DigitSlice(b.width, data.Len())
	return pattern.Match{Value: val, Rest: rest, Pos: b.width}
}

// NameOf reports v's symbolic name, if v equals one of b's defined bit
// patterns.
func (b *Bitset) NameOf(v Value) (string, bool) {
	raw := v.raw()
	for _, name := range b.order {
		if b.names[name].Equal(raw) {
			return name, true
		}
	}
	return "", false
}
