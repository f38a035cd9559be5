package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fiber-space/t3/internal/numeric"
)

func TestConcatNullIdentity(t *testing.T) {
	t.Parallel()

	v, err := numeric.New("AB", 16)
	require.NoError(t, err)

	left, err := numeric.Null.Concat(v)
	require.NoError(t, err)
	require.True(t, left.Equal(v))

	right, err := v.Concat(numeric.Null)
	require.NoError(t, err)
	require.True(t, right.Equal(v))
}

func TestConcatBaseMismatch(t *testing.T) {
	t.Parallel()

	hex, err := numeric.New("AB", 16)
	require.NoError(t, err)
	bin, err := numeric.New("01", 2)
	require.NoError(t, err)

	_, err = hex.Concat(bin)
	require.ErrorIs(t, err, numeric.ErrBaseMismatch)
}

func TestConcatAppendsDigits(t *testing.T) {
	t.Parallel()

	a, err := numeric.New("82", 16)
	require.NoError(t, err)
	b, err := numeric.New("01", 16)
	require.NoError(t, err)
	got, err := a.Concat(b)
	require.NoError(t, err)
	require.Equal(t, "8201", got.Digits())
}

func TestAddWidensToLargerOperand(t *testing.T) {
	t.Parallel()

	a, err := numeric.New("00FF", 16)
	require.NoError(t, err)
	b, err := numeric.New("01", 16)
	require.NoError(t, err)
	got, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, 4, got.Len(), "result width matches the wider operand")
	require.True(t, got.Equal(mustNew(t, "0100", 16)))
}

func TestSubClampsToZero(t *testing.T) {
	t.Parallel()

	a, err := numeric.New("01", 16)
	require.NoError(t, err)
	b, err := numeric.New("02", 16)
	require.NoError(t, err)
	got, err := a.Sub(b)
	require.NoError(t, err)
	require.True(t, got.Equal(mustNew(t, "00", 16)), "underflow clamps rather than going negative")
}

func TestDivModByZero(t *testing.T) {
	t.Parallel()

	a, err := numeric.New("0A", 16)
	require.NoError(t, err)

	_, err = a.Div(numeric.Null)
	require.Error(t, err)
	_, err = a.Mod(numeric.Null)
	require.Error(t, err)
}

func TestBitwiseOps(t *testing.T) {
	t.Parallel()

	a, err := numeric.New("0F", 16)
	require.NoError(t, err)
	b, err := numeric.New("F0", 16)
	require.NoError(t, err)

	and, err := a.And(b)
	require.NoError(t, err)
	require.True(t, and.Equal(mustNew(t, "00", 16)))

	or, err := a.Or(b)
	require.NoError(t, err)
	require.True(t, or.Equal(mustNew(t, "FF", 16)))

	xor, err := a.Xor(b)
	require.NoError(t, err)
	require.True(t, xor.Equal(mustNew(t, "FF", 16)))
}

func TestNotComplementsWithinOwnWidth(t *testing.T) {
	t.Parallel()

	v, err := numeric.New("0F", 16)
	require.NoError(t, err)
	got, err := v.Not()
	require.NoError(t, err)
	require.True(t, got.Equal(mustNew(t, "F0", 16)))
	require.Equal(t, v.Len(), got.Len())
}

func TestShlShr(t *testing.T) {
	t.Parallel()

	v, err := numeric.New("01", 16)
	require.NoError(t, err)
	up, err := v.Shl(4)
	require.NoError(t, err)
	require.True(t, up.Equal(mustNew(t, "10", 16)))

	down, err := up.Shr(4)
	require.NoError(t, err)
	require.True(t, down.Equal(v))
}

func TestResultBaseFollowsHigherOperand(t *testing.T) {
	t.Parallel()

	hex, err := numeric.New("0F", 16)
	require.NoError(t, err)
	bin, err := numeric.New("01", 2)
	require.NoError(t, err)
	got, err := hex.Add(bin)
	require.NoError(t, err)
	require.Equal(t, 16, got.Base(), "result base is max(A.base, B.base)")
}
