package t3

import (
	"strings"

	"github.com/fiber-space/t3/internal/numeric"
)

// NewBitmap builds an empty Bitmap: a table whose fields are measured in
// bits over a virtual bit stream overlaying bytes (spec.md §4.6). Fields
// are zero-padded to their declared bit width on synthesis.
func NewBitmap(name string) *Table {
	return &Table{name: name, base: 2, padFields: true}
}

// padBin rebases v to binary and zero-pads (or truncates, keeping the
// low-order bits) its digit string to width bits, per spec.md §4.6: "each
// field's value is zero-padded to its declared bit width and
// concatenated."
func padBin(v Value, width int) (Value, error) {
	rv, err := rebase(v, 2)
	if err != nil {
		return Value{}, err
	}
	digits := rv.Digits()
	switch {
	case len(digits) < width:
		digits = strings.Repeat("0", width-len(digits)) + digits
	case len(digits) > width:
		digits = digits[len(digits)-width:]
	}
	nv, err := numeric.New(digits, 2)
	if err != nil {
		return Value{}, numericErr(err)
	}
	return wrap(nv), nil
}
