package numeric

// NewBin builds a base-2 Value from a digit string. Iteration and slicing
// over a Bin value are bit-granular, which falls out of the generic
// digit-level operations since a Bin digit is already a single bit.
func NewBin(digits string) (Value, error) {
	return New(digits, 2)
}

// NewBinFromUint builds a base-2 Value from a host integer, left-padded to
// width bits.
func NewBinFromUint(v uint64, width int) (Value, error) {
	return FromUint(v, 2, width)
}
