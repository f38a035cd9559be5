package numeric

import "math/big"

// Concat implements `A // B` (spec.md §4.1): digit-string concatenation.
// NULL is the identity on either side; otherwise the bases must match.
func (v Value) Concat(other Value) (Value, error) {
	if v.IsNull() {
		return other, nil
	}
	if other.IsNull() {
		return v, nil
	}
	if v.base != other.base {
		return Value{}, ErrBaseMismatch
	}
	return New(v.s+other.s, v.base)
}

// binary applies op to the magnitudes of a and b (treating NULL as zero in
// the receiver's effective base), then widens the result per spec.md §4.1.
func binary(a, b Value, op func(z, x, y *big.Int) *big.Int) (Value, error) {
	base := resultBase(a, b)
	if base == 0 {
		base = 16
	}
	width := widen(a, b)
	z := new(big.Int)
	op(z, a.Magnitude(), b.Magnitude())
	if z.Sign() < 0 {
		z.SetInt64(0)
	}
	return FromMagnitude(z, base, width)
}

// Add implements `+`.
func (v Value) Add(other Value) (Value, error) {
	return binary(v, other, func(z, x, y *big.Int) *big.Int { return z.Add(x, y) })
}

// Sub implements `-`. Underflow clamps to zero rather than going negative
// (spec.md §4.1, §2 Non-goals: no signed arithmetic).
func (v Value) Sub(other Value) (Value, error) {
	return binary(v, other, func(z, x, y *big.Int) *big.Int {
		z.Sub(x, y)
		return z
	})
}

// Mul implements `*`. NULL behaves as multiplicative zero via Magnitude().
func (v Value) Mul(other Value) (Value, error) {
	return binary(v, other, func(z, x, y *big.Int) *big.Int { return z.Mul(x, y) })
}

// Div implements `/`. Division by zero returns an error.
func (v Value) Div(other Value) (Value, error) {
	if other.Magnitude().Sign() == 0 {
		return Value{}, ErrBadDigit
	}
	return binary(v, other, func(z, x, y *big.Int) *big.Int { return z.Div(x, y) })
}

// Mod implements `%`.
func (v Value) Mod(other Value) (Value, error) {
	if other.Magnitude().Sign() == 0 {
		return Value{}, ErrBadDigit
	}
	return binary(v, other, func(z, x, y *big.Int) *big.Int { return z.Mod(x, y) })
}

// Shl implements `<<`.
func (v Value) Shl(bits uint) (Value, error) {
	base := v.Base()
	if base == 0 {
		base = 16
	}
	z := new(big.Int).Lsh(v.Magnitude(), bits)
	return FromMagnitude(z, base, v.Len())
}

// Shr implements `>>`.
func (v Value) Shr(bits uint) (Value, error) {
	base := v.Base()
	if base == 0 {
		base = 16
	}
	z := new(big.Int).Rsh(v.Magnitude(), bits)
	return FromMagnitude(z, base, v.Len())
}

// And implements `&`.
func (v Value) And(other Value) (Value, error) {
	return binary(v, other, func(z, x, y *big.Int) *big.Int { return z.And(x, y) })
}

// Or implements `|`.
func (v Value) Or(other Value) (Value, error) {
	return binary(v, other, func(z, x, y *big.Int) *big.Int { return z.Or(x, y) })
}

// Xor implements `^`.
func (v Value) Xor(other Value) (Value, error) {
	return binary(v, other, func(z, x, y *big.Int) *big.Int { return z.Xor(x, y) })
}

// Not implements bitwise NOT as `base^len - 1 - N`: the complement
// relative to the largest value representable in v's own width.
func (v Value) Not() (Value, error) {
	if v.IsNull() {
		return Null, nil
	}
	max := maxForWidth(v.base, v.Len())
	z := new(big.Int).Sub(max, v.n)
	return FromMagnitude(z, v.base, v.Len())
}

// Cmp compares magnitudes; cross-base comparison is legal (spec.md §4.1).
// NULL compares as if it had magnitude 0.
func (v Value) Cmp(other Value) int {
	return v.Magnitude().Cmp(other.Magnitude())
}

// Equal reports value equality: equal magnitudes, independent of base or
// digit-string width (spec.md §3). NULL equals only NULL.
func (v Value) Equal(other Value) bool {
	if v.IsNull() || other.IsNull() {
		return v.IsNull() == other.IsNull()
	}
	return v.Cmp(other) == 0
}
