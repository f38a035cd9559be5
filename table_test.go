package t3_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fiber-space/t3"
)

// TestAddRejectsReservedNames grounds spec.md §4.4's "Name must not
// collide with a built-in attribute name".
func TestAddRejectsReservedNames(t *testing.T) {
	t.Parallel()

	tbl := t3.NewTable("T")
	_, err := tbl.Add(1, "Parse", t3.MustHex(0))
	require.ErrorIs(t, err, t3.ErrNameCollision)

	_, err = tbl.Add(1, "get", t3.MustHex(0))
	require.ErrorIs(t, err, t3.ErrNameCollision, "the check is case-insensitive")
}

func TestGetReturnsSliceForRepeatedNames(t *testing.T) {
	t.Parallel()

	tbl := t3.NewTable("T")
	tbl, err := tbl.Add(1, "X", t3.MustHex(0))
	require.NoError(t, err)
	tbl, err = tbl.Add(1, "X", t3.MustHex(0))
	require.NoError(t, err)

	got, err := tbl.Parse(t3.MustHex("AA BB"))
	require.NoError(t, err)

	v, ok := got.Get("X")
	require.True(t, ok)
	vs, ok := v.([]any)
	require.True(t, ok, "a repeated field name yields a slice of values")
	require.Len(t, vs, 2)
	require.True(t, vs[0].(t3.Value).Equal(t3.MustHex(0xAA)))
	require.True(t, vs[1].(t3.Value).Equal(t3.MustHex(0xBB)))
}

// TestFindSearchesNestedTablesBreadthFirst grounds spec.md §4.4's Find,
// distinct from Get (which only looks at t's own direct fields).
func TestFindSearchesNestedTablesBreadthFirst(t *testing.T) {
	t.Parallel()

	inner := t3.NewTable("Inner")
	inner, err := inner.Add(1, "Deep", t3.MustHex(0))
	require.NoError(t, err)

	outer := t3.NewTable("Outer")
	outer, err = outer.Add(nil, "Nested", inner)
	require.NoError(t, err)

	got, err := outer.Parse(t3.MustHex("7F"))
	require.NoError(t, err)

	_, ok := got.Get("Deep")
	require.False(t, ok, "Get only looks at direct fields")

	v, ok := got.Find("Deep")
	require.True(t, ok)
	require.True(t, v.(t3.Value).Equal(t3.MustHex(0x7F)))
}

// TestCopyIsIndependent grounds spec.md §4.4's Copy: the copy is a
// distinct tree holding the same values, and Call-ing the copy to a new
// value never touches the original's own field values.
func TestCopyIsIndependent(t *testing.T) {
	t.Parallel()

	tbl := t3.NewTable("T")
	tbl, err := tbl.Add(1, "X", t3.MustHex(0))
	require.NoError(t, err)

	got, err := tbl.Parse(t3.MustHex("AA"))
	require.NoError(t, err)

	cp := got.Copy()
	require.NotSame(t, got, cp)

	origVal, ok := got.Get("X")
	require.True(t, ok)
	cpVal, ok := cp.Get("X")
	require.True(t, ok)
	require.True(t, origVal.(t3.Value).Equal(cpVal.(t3.Value)), "Copy preserves field values")

	recalled, err := cp.Call(map[string]t3.Value{"X": t3.MustHex(0xFF)})
	require.NoError(t, err)
	recalledVal, ok := recalled.Get("X")
	require.True(t, ok)
	require.True(t, recalledVal.(t3.Value).Equal(t3.MustHex(0xFF)))

	origStillVal, ok := got.Get("X")
	require.True(t, ok)
	require.True(t, origStillVal.(t3.Value).Equal(t3.MustHex(0xAA)), "Call on the copy's tree must not mutate the original")
}

// TestParseFailureReportsLongestPrefix grounds spec.md §4.9/§7's
// MatchingFailure: a match that fails partway reports how far it got.
func TestParseFailureReportsLongestPrefix(t *testing.T) {
	t.Parallel()

	tbl := t3.NewTable("T")
	tbl, err := tbl.Add(1, "A", t3.MustHex(0))
	require.NoError(t, err)
	tbl, err = tbl.Add(2, "B", t3.MustHex(0))
	require.NoError(t, err)

	_, err = tbl.Parse(t3.MustHex("AA BB"))
	require.Error(t, err)
	var mf *t3.MatchingFailure
	require.ErrorAs(t, err, &mf)
	require.Equal(t, "T", mf.Table)
	require.Equal(t, 2, mf.Pos, "A (1 byte = 2 hex digits) matched before B failed for want of a second byte")
}

func TestParseWithTraceRecordsSteps(t *testing.T) {
	t.Parallel()

	tbl := t3.NewTable("T")
	tbl, err := tbl.Add(1, "A", t3.MustHex(0))
	require.NoError(t, err)
	tbl, err = tbl.Add(2, "B", t3.MustHex(0))
	require.NoError(t, err)

	_, err = tbl.Parse(t3.MustHex("AA BB"), t3.WithTrace())
	require.Error(t, err)
	var mf *t3.MatchingFailure
	require.ErrorAs(t, err, &mf)
	require.Contains(t, mf.Trace(), "A@")
	require.Contains(t, mf.Trace(), "fail")
}

func TestParseFailsOnTrailingData(t *testing.T) {
	t.Parallel()

	tbl := t3.NewTable("T")
	tbl, err := tbl.Add(1, "A", t3.MustHex(0))
	require.NoError(t, err)

	_, err = tbl.Parse(t3.MustHex("AA BB"))
	require.Error(t, err, "Parse must fail when data remains unconsumed")
}
