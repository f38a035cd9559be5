package numeric

import (
	"math/big"
	"strings"
)

// Subst begins a fluent digit substitution against a single digit i,
// modeling spec.md §4.1's `subst[i](v)`.
func (v Value) Subst(i int) DigitRef { return DigitRef{base: v, i: i, j: i + 1} }

// SubstRange begins a fluent digit-range substitution over [i, j), modeling
// `subst[i:j](v)`.
func (v Value) SubstRange(i, j int) DigitRef { return DigitRef{base: v, i: i, j: j} }

// DigitRef names a digit (or contiguous digit range) of a Value pending
// substitution.
type DigitRef struct {
	base Value
	i, j int
}

// Set replaces the referenced digit range with nv, returning the resulting
// Value. nv is truncated/left-padded with zeros to fit the referenced
// width.
func (d DigitRef) Set(nv Value) (Value, error) {
	if d.i < 0 || d.j > d.base.Len() || d.i >= d.j {
		return Value{}, ErrIndexRange
	}
	width := d.j - d.i
	repl := nv.s
	if nv.IsNull() {
		repl = strings.Repeat("0", width)
	}
	if len(repl) > width {
		repl = repl[len(repl)-width:]
	} else if len(repl) < width {
		repl = strings.Repeat("0", width-len(repl)) + repl
	}
	s := d.base.s[:d.i] + strings.ToUpper(repl) + d.base.s[d.j:]
	return New(s, d.base.base)
}

// SetFunc replaces the referenced digit range with f applied to its current
// value.
func (d DigitRef) SetFunc(f func(Value) Value) (Value, error) {
	cur := d.base.DigitSlice(d.i, d.j)
	return d.Set(f(cur))
}

// bitsPerDigit returns log2(base); substitution-by-bit requires base to be
// a power of two (spec.md §4.1: "width = log2(base)").
func bitsPerDigit(base int) (int, error) {
	for b, n := base, 0; ; n++ {
		if b == 1 {
			return n, nil
		}
		if b%2 != 0 {
			return 0, ErrBadBase
		}
		b /= 2
	}
}

// Bit narrows this single-digit reference to bit index k (1-based, MSB=1),
// modeling `subst[i][k](v)`. Bit only applies to a single-digit DigitRef.
func (d DigitRef) Bit(k int) BitRef { return BitRef{digit: d, k: k, m: k + 1} }

// BitRange narrows to bit range [k, m) (1-based), modeling `subst[i][k:m](v)`.
func (d DigitRef) BitRange(k, m int) BitRef { return BitRef{digit: d, k: k, m: m} }

// BitRef names a contiguous bit range within a single digit, pending
// substitution.
type BitRef struct {
	digit DigitRef
	k, m  int
}

// Set replaces the referenced bit range with the low bits of val, raising
// ErrIndexRange if k/m fall outside [1, bitsPerDigit].
func (b BitRef) Set(val int) (Value, error) {
	bits, err := bitsPerDigit(b.digit.base.base)
	if err != nil {
		return Value{}, err
	}
	if b.k < 1 || b.m-1 > bits || b.k >= b.m {
		return Value{}, ErrIndexRange
	}
	width := b.m - b.k

	cur := b.digit.base.DigitSlice(b.digit.i, b.digit.j)
	curN := cur.Magnitude()

	shift := uint(bits - (b.m - 1))
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(width)), big.NewInt(1))
	mask.Lsh(mask, shift)

	cleared := new(big.Int).AndNot(curN, mask)
	insert := new(big.Int).And(big.NewInt(int64(val)), new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(width)), big.NewInt(1)))
	insert.Lsh(insert, shift)
	result := new(big.Int).Or(cleared, insert)

	nv, err := FromMagnitude(result, b.digit.base.base, b.digit.j-b.digit.i)
	if err != nil {
		return Value{}, err
	}
	return b.digit.Set(nv)
}

// SetFunc replaces the referenced bit range with f applied to its current
// integer value.
func (b BitRef) SetFunc(f func(int) int) (Value, error) {
	bits, err := bitsPerDigit(b.digit.base.base)
	if err != nil {
		return Value{}, err
	}
	if b.k < 1 || b.m-1 > bits || b.k >= b.m {
		return Value{}, ErrIndexRange
	}
	cur := b.digit.base.DigitSlice(b.digit.i, b.digit.j).Magnitude()
	shift := uint(bits - (b.m - 1))
	width := b.m - b.k
	mask := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(width)), big.NewInt(1))
	bitVal := new(big.Int).Rsh(cur, shift)
	bitVal.And(bitVal, mask)
	return b.Set(f(int(bitVal.Int64())))
}
