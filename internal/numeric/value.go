// Package numeric implements the polymorphic numeric value described in
// spec.md §4.1: a triple (N, S, b) of a non-negative magnitude, a digit
// string over the alphabet of base b, and the base itself, with mixed-radix
// arithmetic, concatenation, and leading-zero-preserving base conversion.
//
// Two values compare equal iff their magnitudes are equal, regardless of
// digit-string width or base (spec.md §3). A distinguished Null value
// absorbs concatenation and acts as additive identity / multiplicative zero.
package numeric

import (
	"math/big"
	"strings"
)

const alphabet = "0123456789ABCDEF"

// Value is the (N, S, b) triple. The zero Value is not meaningful; use Null
// or one of the constructors.
type Value struct {
	n    *big.Int
	s    string
	base int
	null bool
}

// Null is the distinguished NULL value (spec.md §3): it absorbs
// concatenation, is the additive identity, the multiplicative zero, has
// length 0, and compares equal only to itself.
var Null = Value{null: true}

// IsNull reports whether v is the NULL value.
func (v Value) IsNull() bool { return v.null }

// Base returns v's base, or 0 for NULL.
func (v Value) Base() int {
	if v.null {
		return 0
	}
	return v.base
}

// Digits returns v's canonical (uppercase) digit string, or "" for NULL.
func (v Value) Digits() string {
	if v.null {
		return ""
	}
	return v.s
}

// Len returns the number of digits in v, or 0 for NULL.
func (v Value) Len() int { return len(v.Digits()) }

// Magnitude returns v's underlying non-negative integer value. Callers must
// not mutate the result.
func (v Value) Magnitude() *big.Int {
	if v.null || v.n == nil {
		return new(big.Int)
	}
	return v.n
}

// Int64 returns v's magnitude truncated to an int64, mainly for small
// length/count fields.
func (v Value) Int64() int64 {
	if v.null {
		return 0
	}
	return v.n.Int64()
}

// digitsPerByte returns how many base-b digits make up one 8-bit byte,
// rounded up: 2 for hex, 8 for binary, 3 for decimal/BCD (spec.md §3).
func digitsPerByte(base int) int {
	switch base {
	case 16:
		return 2
	case 2:
		return 8
	case 10:
		return 3
	}
	// General case: ceil(8 / floor(log2(base))).
	bits := 0.0
	for b := base; b > 1; b /= 2 {
		bits++
	}
	if bits == 0 {
		bits = 1
	}
	n := 8
	digits := (n + int(bits) - 1) / int(bits)
	if digits < 1 {
		digits = 1
	}
	return digits
}

func validBase(base int) error {
	if base < 2 || base > 16 {
		return ErrBadBase
	}
	return nil
}

// New builds a Value from a digit string already known to be valid for
// base (no literal-grammar parsing: see Parse for that). Digits are
// upper-cased; leading zeros are preserved verbatim in S.
func New(digits string, base int) (Value, error) {
	if err := validBase(base); err != nil {
		return Value{}, err
	}
	digits = strings.ToUpper(digits)
	if digits == "" {
		digits = "0"
	}
	for _, c := range digits {
		if strings.IndexRune(alphabet[:base], c) < 0 {
			return Value{}, ErrBadDigit
		}
	}
	n := new(big.Int)
	if _, ok := n.SetString(digits, base); !ok {
		return Value{}, ErrBadDigit
	}
	return Value{n: n, s: digits, base: base}, nil
}

// FromMagnitude builds a Value representing n in the given base, left-padded
// with zeros to at least width digits. n must be non-negative.
func FromMagnitude(n *big.Int, base, width int) (Value, error) {
	if err := validBase(base); err != nil {
		return Value{}, err
	}
	if n.Sign() < 0 {
		return Value{}, ErrNegative
	}
	digits := strings.ToUpper(n.Text(base))
	if len(digits) < width {
		digits = strings.Repeat("0", width-len(digits)) + digits
	}
	return Value{n: new(big.Int).Set(n), s: digits, base: base}, nil
}

// FromUint builds a Value from a host unsigned integer, left-padded to
// width digits (spec.md §4.1: values interoperate with host integer
// literals).
func FromUint(v uint64, base, width int) (Value, error) {
	return FromMagnitude(new(big.Int).SetUint64(v), base, width)
}

// maxForWidth returns the largest magnitude representable in `width` digits
// of `base`, i.e. base^width - 1.
func maxForWidth(base, width int) *big.Int {
	max := new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(width)), nil)
	return max.Sub(max, big.NewInt(1))
}

// widen returns the larger of a and b's digit-string lengths, per the
// "width is zero-padded to max(len(A.S), len(B.S))" rule (spec.md §4.1).
func widen(a, b Value) int {
	la, lb := a.Len(), b.Len()
	if la > lb {
		return la
	}
	return lb
}

// resultBase returns max(A.base, B.base), the rule governing arithmetic
// results (spec.md §4.1). NULL operands contribute no base preference.
func resultBase(a, b Value) int {
	ab, bb := a.Base(), b.Base()
	if ab == 0 {
		return bb
	}
	if bb == 0 {
		return ab
	}
	if ab > bb {
		return ab
	}
	return bb
}

// CoerceBase reinterprets v's magnitude in a different base, producing a
// fresh digit string of the minimum width (at least 1 digit). Used by the
// pattern engine to implement spec.md §9's open question: matchers that
// receive a numeric of a base different from the table's preferred base
// coerce to that base before matching.
func CoerceBase(v Value, base int) (Value, error) {
	if v.IsNull() {
		return Null, nil
	}
	if v.base == base {
		return v, nil
	}
	return Rebase(v, base)
}

// Rebase converts v to a new base, preserving leading zeros according to
// the byte-digit-ratio rescaling rule in spec.md §3: if the source has k
// leading zero digits and one byte occupies K1 source digits and K2 target
// digits, the target is padded so that floor(k/K1) bytes of zero prefix
// survive, then padded further so the total length is a multiple of K2.
func Rebase(v Value, base int) (Value, error) {
	if v.IsNull() {
		return Null, nil
	}
	if err := validBase(base); err != nil {
		return Value{}, err
	}

	k := leadingZeros(v.s)
	k1 := digitsPerByte(v.base)
	k2 := digitsPerByte(base)

	zeroBytes := k / k1
	targetZeroDigits := zeroBytes * k2

	min := minDigitsFor(v.n, base)
	if v.n.Sign() == 0 && zeroBytes > 0 {
		// An all-zero source is fully carried by its surviving zero bytes.
		min = 0
	}
	total := targetZeroDigits + min
	if rem := total % k2; rem != 0 {
		total += k2 - rem
	}
	if total < 1 {
		total = 1
	}
	return FromMagnitude(v.n, base, total)
}

// minDigitsFor returns the minimum number of base-b digits needed to write
// n, treating zero as needing a single digit.
func minDigitsFor(n *big.Int, base int) int {
	if n.Sign() == 0 {
		return 1
	}
	return len(new(big.Int).Abs(n).Text(base))
}

// leadingZeros counts the run of '0' characters at the front of s. A fully
// zero string counts its whole length.
func leadingZeros(s string) int {
	i := 0
	for i < len(s) && s[i] == '0' {
		i++
	}
	return i
}
