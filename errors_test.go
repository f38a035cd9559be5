package t3_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fiber-space/t3"
)

// TestMatchingFailureErrorMessage grounds errors.go's MatchingFailure.Error,
// spec.md §4.9/§7: the message names the table and the longest matched
// prefix.
func TestMatchingFailureErrorMessage(t *testing.T) {
	t.Parallel()

	tbl := t3.NewTable("Frame")
	tbl, err := tbl.Add(1, "A", t3.MustHex(0))
	require.NoError(t, err)
	tbl, err = tbl.Add(2, "B", t3.MustHex(0))
	require.NoError(t, err)

	_, err = tbl.Parse(t3.MustHex("AA BB"))
	require.Error(t, err)
	require.Equal(t, "t3: Frame did not match input (matched up to digit 2)", err.Error())

	var mf *t3.MatchingFailure
	require.True(t, errors.As(err, &mf))
	require.Equal(t, "<no trace>", mf.Trace(), "Trace without WithTrace reports no recording was made")
}

// TestAddRejectsUnsupportedPatternArgument grounds ErrBadPattern, raised
// by Table.Add for a pattern argument that is neither an int, FnPattern,
// string/Value, nor a Pattern.
func TestAddRejectsUnsupportedPatternArgument(t *testing.T) {
	t.Parallel()

	tbl := t3.NewTable("T")
	_, err := tbl.Add(3.14, "X", t3.MustHex(0))
	require.ErrorIs(t, err, t3.ErrBadPattern)
}

// TestNumericErrorsSurfaceWithT3Prefix grounds errors.go's numericErr:
// internal/numeric errors are wrapped so callers only see this package's
// own error surface.
func TestNumericErrorsSurfaceWithT3Prefix(t *testing.T) {
	t.Parallel()

	_, err := t3.Hex("G")
	require.Error(t, err)
	require.Contains(t, err.Error(), "t3:")
}
