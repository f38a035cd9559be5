package numeric

import "errors"

// Sentinel errors for the taxonomy described in spec.md §7. Callers can
// match against these with errors.Is.
var (
	// ErrBaseMismatch is returned by Concat when two non-NULL operands
	// carry different bases.
	ErrBaseMismatch = errors.New("numeric: concatenation requires matching bases")

	// ErrNegative is returned when constructing a value from a negative
	// integer or big.Int; this package has no signed arithmetic.
	ErrNegative = errors.New("numeric: negative values are not representable")

	// ErrOddHex is returned constructing a Hex value from an odd number of
	// digits without an explicit left-pad.
	ErrOddHex = errors.New("numeric: odd-length hex digit string without left-pad")

	// ErrBadDigit is returned when a digit string contains a character not
	// valid in the given base.
	ErrBadDigit = errors.New("numeric: invalid digit for base")

	// ErrBadEscape is returned for an unbalanced `{...}` ASCII escape.
	ErrBadEscape = errors.New("numeric: unbalanced { } escape")

	// ErrBadNibble is returned when a BCD byte contains a nibble > 9.
	ErrBadNibble = errors.New("numeric: non-BCD nibble in BCD byte")

	// ErrIndexRange is returned by byte-granular indexing past the end of
	// a Hex value, and by bit-substitution indices outside [1, bitsPerDigit].
	ErrIndexRange = errors.New("numeric: index out of range")

	// ErrBadBase is returned for a base outside [2, 16].
	ErrBadBase = errors.New("numeric: base must be in [2, 16]")
)
