package t3_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fiber-space/t3"
)

// TestSubstDigitReplacesSingleDigit grounds spec.md §4.1's subst[i](v),
// exercised through the public Value.Subst wrapper.
func TestSubstDigitReplacesSingleDigit(t *testing.T) {
	t.Parallel()

	v := t3.MustHex("AB")
	out, err := v.Subst(0).Set(t3.MustHex(2))
	require.NoError(t, err)
	require.Equal(t, "2B", out.Digits())
}

// TestSubstRangeReplacesRange grounds spec.md §4.1's subst[i:j](v).
func TestSubstRangeReplacesRange(t *testing.T) {
	t.Parallel()

	v := t3.MustHex("ABCD")
	out, err := v.SubstRange(1, 3).Set(t3.MustHex("FF"))
	require.NoError(t, err)
	require.Equal(t, "AFFD", out.Digits())
}

// TestSubstSetFuncAppliesFunction grounds the SetFunc variant, deriving
// the replacement from the digit's current value.
func TestSubstSetFuncAppliesFunction(t *testing.T) {
	t.Parallel()

	v := t3.MustHex("AB")
	out, err := v.Subst(1).SetFunc(func(cur t3.Value) t3.Value {
		return t3.MustHex(cur.Int64() + 1)
	})
	require.NoError(t, err)
	require.Equal(t, "AC", out.Digits())
}

// TestBitRangeSubstSetsWithinADigit grounds spec.md §4.1's subst[i][k:m](v):
// bit indices are 1-based with bit 1 the most significant bit of the digit.
func TestBitRangeSubstSetsWithinADigit(t *testing.T) {
	t.Parallel()

	v := t3.MustHex("AB") // 'A' = 1010
	out, err := v.Subst(0).BitRange(1, 3).Set(0b11)
	require.NoError(t, err)
	require.Equal(t, "EB", out.Digits(), "bits 1-2 of 1010 become 11, yielding 1110 = E")
}

// TestSubstOutOfRangeErrors grounds spec.md §7's indexing error.
func TestSubstOutOfRangeErrors(t *testing.T) {
	t.Parallel()

	v := t3.MustHex("AB")
	_, err := v.Subst(5).Set(t3.MustHex(0))
	require.Error(t, err)
}
