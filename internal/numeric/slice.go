package numeric

import (
	"iter"
	"math/big"
)

// DigitAt returns the i-th digit (0-indexed from the most significant end)
// as its own single-digit Value. Out of range yields NULL (spec.md §4.1:
// "a slice out of range yields NULL").
func (v Value) DigitAt(i int) Value {
	if v.IsNull() || i < 0 || i >= v.Len() {
		return Null
	}
	d, _ := New(v.s[i:i+1], v.base)
	return d
}

// DigitSlice returns digits [i, j) as a Value. Out-of-range bounds clamp;
// an empty or fully out-of-range slice yields NULL.
func (v Value) DigitSlice(i, j int) Value {
	if v.IsNull() {
		return Null
	}
	if i < 0 {
		i = 0
	}
	if j > v.Len() {
		j = v.Len()
	}
	if i >= j {
		return Null
	}
	d, _ := New(v.s[i:j], v.base)
	return d
}

// ByteAt is the Hex specialization of indexing: one index is one byte (two
// hex digits). It raises ErrIndexRange when the index is beyond the byte
// length, per spec.md §7 (the hex specialization raises; generic indexing
// does not).
func (v Value) ByteAt(i int) (Value, error) {
	if v.base != 16 {
		return v.DigitAt(i), nil
	}
	bytes := v.Len() / 2
	if i < 0 || i >= bytes {
		return Value{}, ErrIndexRange
	}
	return v.DigitSlice(i*2, i*2+2), nil
}

// ByteSlice is the Hex specialization of slicing, operating on byte bounds
// [i, j). Out of range clamps and yields NULL like the generic case.
func (v Value) ByteSlice(i, j int) Value {
	if v.base != 16 {
		return v.DigitSlice(i, j)
	}
	return v.DigitSlice(i*2, j*2)
}

// SeqDigits iterates one digit at a time (the generic case).
func (v Value) SeqDigits() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		if v.IsNull() {
			yield(Null)
			return
		}
		for i := range v.Len() {
			if !yield(v.DigitAt(i)) {
				return
			}
		}
	}
}

// SeqBytes iterates one byte at a time for the Hex specialization; for
// other bases it falls back to digit iteration.
func (v Value) SeqBytes() iter.Seq[Value] {
	if v.base != 16 {
		return v.SeqDigits()
	}
	return func(yield func(Value) bool) {
		if v.IsNull() {
			yield(Null)
			return
		}
		for i := range v.Len() / 2 {
			b, _ := v.ByteAt(i)
			if !yield(b) {
				return
			}
		}
	}
}

// Bytes returns v's byte representation (big-endian), honoring leading-zero
// bytes as preserved by the rescaling rule: the digit string is first
// rebased to hex (if it is not already), then split two digits at a time.
func (v Value) Bytes() ([]byte, error) {
	if v.IsNull() {
		return nil, nil
	}
	hv := v
	if v.base != 16 {
		var err error
		hv, err = Rebase(v, 16)
		if err != nil {
			return nil, err
		}
	}
	if len(hv.s)%2 != 0 {
		hv.s = "0" + hv.s
	}
	out := make([]byte, len(hv.s)/2)
	for i := range out {
		b, _ := new(big.Int).SetString(hv.s[i*2:i*2+2], 16)
		out[i] = byte(b.Uint64())
	}
	return out, nil
}

// SignedBytes returns the same byte sequence as Bytes, reinterpreted as
// signed 8-bit values (spec.md §4.1: "bytes() returns signed 8-bit bytes").
func (v Value) SignedBytes() ([]int8, error) {
	raw, err := v.Bytes()
	if err != nil {
		return nil, err
	}
	out := make([]int8, len(raw))
	for i, b := range raw {
		out[i] = int8(b)
	}
	return out, nil
}
