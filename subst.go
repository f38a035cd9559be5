package t3

import "github.com/fiber-space/t3/internal/numeric"

// Subst begins a fluent digit substitution against digit i, modeling
// spec.md §4.1's `subst[i](v)`.
func (x Value) Subst(i int) DigitRef { return DigitRef{x.v.Subst(i)} }

// SubstRange begins a fluent digit-range substitution over [i, j),
// modeling `subst[i:j](v)`.
func (x Value) SubstRange(i, j int) DigitRef { return DigitRef{x.v.SubstRange(i, j)} }

// DigitRef names a digit (or digit range) pending substitution.
type DigitRef struct{ ref numeric.DigitRef }

// Set replaces the referenced digits with nv.
func (d DigitRef) Set(nv Value) (Value, error) {
	r, err := d.ref.Set(nv.v)
	if err != nil {
		return Value{}, numericErr(err)
	}
	return wrap(r), nil
}

// SetFunc replaces the referenced digits with f applied to their current
// value.
func (d DigitRef) SetFunc(f func(Value) Value) (Value, error) {
	r, err := d.ref.SetFunc(func(v numeric.Value) numeric.Value { return f(wrap(v)).v })
	if err != nil {
		return Value{}, numericErr(err)
	}
	return wrap(r), nil
}

// Bit narrows a single-digit reference to bit index k (1-based, MSB=1),
// modeling `subst[i][k](v)`.
func (d DigitRef) Bit(k int) BitRef { return BitRef{d.ref.Bit(k)} }

// BitRange narrows to bit range [k, m), modeling `subst[i][k:m](v)`.
func (d DigitRef) BitRange(k, m int) BitRef { return BitRef{d.ref.BitRange(k, m)} }

// BitRef names a contiguous bit range within a single digit, pending
// substitution.
type BitRef struct{ ref numeric.BitRef }

// Set replaces the referenced bits with the low bits of val, erroring on
// an out-of-range bit index (spec.md §7).
func (b BitRef) Set(val int) (Value, error) {
	r, err := b.ref.Set(val)
	if err != nil {
		return Value{}, numericErr(err)
	}
	return wrap(r), nil
}

// SetFunc replaces the referenced bits with f applied to their current
// integer value.
func (b BitRef) SetFunc(f func(int) int) (Value, error) {
	r, err := b.ref.SetFunc(f)
	if err != nil {
		return Value{}, numericErr(err)
	}
	return wrap(r), nil
}
