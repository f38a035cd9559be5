package t3

import (
	"iter"
	"reflect"

	"github.com/fiber-space/t3/internal/numeric"
)

// Value is the polymorphic numeric value described in spec.md §4.1: a
// triple of a non-negative magnitude, a digit string, and a base in
// [2, 16]. Two Values are equal iff their magnitudes are equal, regardless
// of digit-string width or base. The zero Value is not meaningful; use
// NULL or one of Hex/Bin/Bcd.
type Value struct{ v numeric.Value }

// NULL is the distinguished value that absorbs concatenation, is the
// additive identity and multiplicative zero, has length 0, and compares
// equal only to itself (spec.md §3).
var NULL = Value{numeric.Null}

func wrap(v numeric.Value) Value { return Value{v} }

// raw exposes the underlying numeric.Value to the rest of this package
// (pattern adapters, table matching) without making it part of the public
// API.
func (x Value) raw() numeric.Value { return x.v }

func rebase(x Value, base int) (Value, error) {
	if x.v.IsNull() || x.v.Base() == base {
		return x, nil
	}
	nv, err := numeric.Rebase(x.v, base)
	if err != nil {
		return Value{}, numericErr(err)
	}
	return wrap(nv), nil
}

func asUint(x any) (uint64, bool) {
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := rv.Int()
		if n < 0 {
			return 0, false
		}
		return uint64(n), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), true
	}
	return 0, false
}

// Hex builds (or coerces) a Value in base 16 from x, which may be a
// string literal (spec.md §4.1/§6 grammar, including `{...}` ASCII
// escapes), a host integer, or an existing Value/numeric literal.
// Construction from an integer always left-pads to an even digit count;
// construction from a string rejects an odd digit count.
func Hex(x any) (Value, error) {
	switch v := x.(type) {
	case Value:
		return rebase(v, 16)
	case string:
		nv, err := numeric.Parse(v, 16, true)
		if err != nil {
			return Value{}, numericErr(err)
		}
		if nv.Base() == 16 && nv.Len()%2 != 0 {
			return Value{}, numericErr(numeric.ErrOddHex)
		}
		return wrap(nv), nil
	}
	if n, ok := asUint(x); ok {
		nv, err := numeric.NewHexFromUint(n, 0)
		if err != nil {
			return Value{}, numericErr(err)
		}
		return wrap(nv), nil
	}
	return Value{}, ErrBadPattern
}

// MustHex is Hex, panicking on error; for use building example tables and
// test fixtures where the literal is known-good.
func MustHex(x any) Value {
	v, err := Hex(x)
	if err != nil {
		panic(err)
	}
	return v
}

// Bin builds (or coerces) a Value in base 2 from x.
func Bin(x any) (Value, error) {
	switch v := x.(type) {
	case Value:
		return rebase(v, 2)
	case string:
		nv, err := numeric.Parse(v, 2, false)
		if err != nil {
			return Value{}, numericErr(err)
		}
		return wrap(nv), nil
	}
	if n, ok := asUint(x); ok {
		nv, err := numeric.NewBinFromUint(n, 0)
		if err != nil {
			return Value{}, numericErr(err)
		}
		return wrap(nv), nil
	}
	return Value{}, ErrBadPattern
}

// MustBin is Bin, panicking on error.
func MustBin(x any) Value {
	v, err := Bin(x)
	if err != nil {
		panic(err)
	}
	return v
}

// Bcd builds (or coerces) a Value in base 10 with the BCD specialization's
// always-even digit count (spec.md §4.1).
func Bcd(x any) (Value, error) {
	switch v := x.(type) {
	case Value:
		return rebase(v, 10)
	case string:
		nv, err := numeric.Parse(v, 10, false)
		if err != nil {
			return Value{}, numericErr(err)
		}
		if nv.Len()%2 != 0 {
			nv, err = numeric.New("0"+nv.Digits(), 10)
			if err != nil {
				return Value{}, numericErr(err)
			}
		}
		return wrap(nv), nil
	}
	if n, ok := asUint(x); ok {
		nv, err := numeric.NewBCDFromUint(n, 0)
		if err != nil {
			return Value{}, numericErr(err)
		}
		return wrap(nv), nil
	}
	return Value{}, ErrBadPattern
}

// MustBcd is Bcd, panicking on error.
func MustBcd(x any) Value {
	v, err := Bcd(x)
	if err != nil {
		panic(err)
	}
	return v
}

// BcdFromBytes unpacks BCD-encoded bytes, erroring on a nibble > 9
// (spec.md §4.1, §7).
func BcdFromBytes(b []byte) (Value, error) {
	nv, err := numeric.NewBCDFromBytes(b)
	if err != nil {
		return Value{}, numericErr(err)
	}
	return wrap(nv), nil
}

// IsNull reports whether x is NULL.
func (x Value) IsNull() bool { return x.v.IsNull() }

// Base returns x's base, or 0 for NULL.
func (x Value) Base() int { return x.v.Base() }

// Digits returns x's canonical digit string, or "" for NULL.
func (x Value) Digits() string { return x.v.Digits() }

// Len returns the number of digits in x (generic granularity: one digit
// per base unit; Hex values measure in hex digits, not bytes).
func (x Value) Len() int { return x.v.Len() }

// Int64 returns x's magnitude truncated to an int64.
func (x Value) Int64() int64 { return x.v.Int64() }

// String implements fmt.Stringer, rendering x's digit string (or "NULL").
func (x Value) String() string {
	if x.IsNull() {
		return "NULL"
	}
	return x.v.Digits()
}

// Concat implements `A // B` (spec.md §4.1).
func (x Value) Concat(other Value) (Value, error) {
	nv, err := x.v.Concat(other.v)
	if err != nil {
		return Value{}, numericErr(err)
	}
	return wrap(nv), nil
}

// Add implements `+`.
func (x Value) Add(other Value) (Value, error) { return lift2(x, other, numeric.Value.Add) }

// Sub implements `-`; underflow clamps to zero (spec.md §4.1).
func (x Value) Sub(other Value) (Value, error) { return lift2(x, other, numeric.Value.Sub) }

// Mul implements `*`.
func (x Value) Mul(other Value) (Value, error) { return lift2(x, other, numeric.Value.Mul) }

// Div implements `/`.
func (x Value) Div(other Value) (Value, error) { return lift2(x, other, numeric.Value.Div) }

// Mod implements `%`.
func (x Value) Mod(other Value) (Value, error) { return lift2(x, other, numeric.Value.Mod) }

// And implements `&`.
func (x Value) And(other Value) (Value, error) { return lift2(x, other, numeric.Value.And) }

// Or implements `|`.
func (x Value) Or(other Value) (Value, error) { return lift2(x, other, numeric.Value.Or) }

// Xor implements `^`.
func (x Value) Xor(other Value) (Value, error) { return lift2(x, other, numeric.Value.Xor) }

func lift2(a, b Value, op func(numeric.Value, numeric.Value) (numeric.Value, error)) (Value, error) {
	nv, err := op(a.v, b.v)
	if err != nil {
		return Value{}, numericErr(err)
	}
	return wrap(nv), nil
}

// Shl implements `<<`.
func (x Value) Shl(bits uint) (Value, error) {
	nv, err := x.v.Shl(bits)
	if err != nil {
		return Value{}, numericErr(err)
	}
	return wrap(nv), nil
}

// Shr implements `>>`.
func (x Value) Shr(bits uint) (Value, error) {
	nv, err := x.v.Shr(bits)
	if err != nil {
		return Value{}, numericErr(err)
	}
	return wrap(nv), nil
}

// Not implements bitwise NOT: `base^len - 1 - N`, each digit replaced by
// its complement to base-1.
func (x Value) Not() (Value, error) {
	nv, err := x.v.Not()
	if err != nil {
		return Value{}, numericErr(err)
	}
	return wrap(nv), nil
}

// Cmp compares magnitudes; cross-base comparison is legal.
func (x Value) Cmp(other Value) int { return x.v.Cmp(other.v) }

// Equal reports value equality (spec.md §3): equal magnitudes regardless
// of base or width. NULL equals only NULL.
func (x Value) Equal(other Value) bool { return x.v.Equal(other.v) }

// DigitAt returns the i-th digit (0-indexed, most significant first).
// Out of range yields NULL.
func (x Value) DigitAt(i int) Value { return wrap(x.v.DigitAt(i)) }

// DigitSlice returns digits [i, j). Out of range clamps; an empty result
// is NULL.
func (x Value) DigitSlice(i, j int) Value { return wrap(x.v.DigitSlice(i, j)) }

// ByteAt is the Hex specialization of indexing: one index is one byte. It
// errors when the index is beyond the byte length (spec.md §7).
func (x Value) ByteAt(i int) (Value, error) {
	nv, err := x.v.ByteAt(i)
	if err != nil {
		return Value{}, numericErr(err)
	}
	return wrap(nv), nil
}

// ByteSlice is the Hex specialization of slicing, operating on byte
// bounds [i, j).
func (x Value) ByteSlice(i, j int) Value { return wrap(x.v.ByteSlice(i, j)) }

// SeqDigits iterates one digit at a time.
func (x Value) SeqDigits() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for d := range x.v.SeqDigits() {
			if !yield(wrap(d)) {
				return
			}
		}
	}
}

// SeqBytes iterates one byte at a time for Hex values (digit-wise for
// other bases).
func (x Value) SeqBytes() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		for d := range x.v.SeqBytes() {
			if !yield(wrap(d)) {
				return
			}
		}
	}
}

// Bytes returns x's big-endian byte representation (rebasing to hex
// first if needed), preserving leading-zero bytes per the rescaling rule
// in spec.md §3.
func (x Value) Bytes() ([]byte, error) {
	b, err := x.v.Bytes()
	if err != nil {
		return nil, numericErr(err)
	}
	return b, nil
}

// SignedBytes returns the same bytes as Bytes reinterpreted as signed
// 8-bit values (spec.md §4.1).
func (x Value) SignedBytes() ([]int8, error) {
	b, err := x.v.SignedBytes()
	if err != nil {
		return nil, numericErr(err)
	}
	return b, nil
}

// BCDBytes packs x's decimal digits two per byte, high nibble first.
func (x Value) BCDBytes() ([]byte, error) {
	b, err := x.v.BCDBytes()
	if err != nil {
		return nil, numericErr(err)
	}
	return b, nil
}
