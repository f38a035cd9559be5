package t3_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fiber-space/t3"
)

func newByte(t *testing.T, name string) *t3.Table {
	t.Helper()
	tbl := t3.NewTable(name)
	tbl, err := tbl.Add(1, "V", t3.MustHex(0))
	require.NoError(t, err)
	return tbl
}

// TestRepeaterStopsAtFirstFailure grounds spec.md §4.7: a Repeater stops
// on the first failed repetition rather than erroring, as long as at
// least Min repetitions succeeded; leftover data that doesn't fit
// another repetition is simply left for whatever field follows.
func TestRepeaterStopsAtFirstFailure(t *testing.T) {
	t.Parallel()

	tbl := t3.NewTable("Outer")
	tbl, err := tbl.Add(t3.FnPattern(func(_ t3.Env, _ t3.Value) (any, error) {
		return t3.NewRepeater(newByte(t, "Elem"), 0, 0), nil
	}), "Elems", t3.MustHex(0))
	require.NoError(t, err)

	got, err := tbl.Parse(t3.MustHex("AA BB CC"))
	require.NoError(t, err)

	elems, ok := got.Get("Elems")
	require.True(t, ok)
	list, ok := elems.(*t3.List)
	require.True(t, ok)
	require.Equal(t, 3, list.Len(), "unbounded max consumes every full repetition available")
}

// TestRepeaterEnforcesMinimum grounds §4.7's "if fewer than min
// successes... the whole repeater fails".
func TestRepeaterEnforcesMinimum(t *testing.T) {
	t.Parallel()

	tbl := t3.NewTable("Outer")
	tbl, err := tbl.Add(t3.FnPattern(func(_ t3.Env, _ t3.Value) (any, error) {
		return t3.NewRepeater(newByte(t, "Elem"), 3, 0), nil
	}), "Elems", t3.MustHex(0))
	require.NoError(t, err)

	_, err = tbl.Parse(t3.MustHex("AA BB"))
	require.Error(t, err, "only 2 bytes available, fewer than the required 3 repetitions")
}

// TestRepeaterMaxBoundsRepetitionCount grounds §4.7's max parameter.
func TestRepeaterMaxBoundsRepetitionCount(t *testing.T) {
	t.Parallel()

	tbl := t3.NewTable("Outer")
	tbl, err := tbl.Add(t3.FnPattern(func(_ t3.Env, _ t3.Value) (any, error) {
		return t3.NewRepeater(newByte(t, "Elem"), 0, 2), nil
	}), "Elems", t3.MustHex(0))
	require.NoError(t, err)
	tbl, err = tbl.Add(1, "Trailer", t3.MustHex(0))
	require.NoError(t, err)

	got, err := tbl.Parse(t3.MustHex("AA BB CC"))
	require.NoError(t, err)

	elems, ok := got.Get("Elems")
	require.True(t, ok)
	list, ok := elems.(*t3.List)
	require.True(t, ok)
	require.Equal(t, 2, list.Len(), "max=2 caps repetition even though more data remained")

	trailer, ok := got.Get("Trailer")
	require.True(t, ok)
	require.True(t, trailer.(t3.Value).Equal(t3.MustHex(0xCC)))
}

// TestListFixedElementsMatchInOrder grounds spec.md §4.7(b): a List built
// from fixed element protos applies them in order.
func TestListFixedElementsMatchInOrder(t *testing.T) {
	t.Parallel()

	list := t3.NewList()
	list.Add(newByte(t, "First")).Add(newByte(t, "Second"))

	tbl := t3.NewTable("Outer")
	tbl, err := tbl.Add(list, "Elems", t3.MustHex(0))
	require.NoError(t, err)

	got, err := tbl.Parse(t3.MustHex("AA BB"))
	require.NoError(t, err)

	elems, ok := got.Get("Elems")
	require.True(t, ok)
	populated, ok := elems.(*t3.List)
	require.True(t, ok)
	require.Equal(t, 2, populated.Len())

	first := populated.Elems()[0]
	v, ok := first.Get("V")
	require.True(t, ok)
	require.True(t, v.(t3.Value).Equal(t3.MustHex(0xAA)))
}

// TestListSynthesizeConcatenatesAsHex grounds §4.7(a): List.Synthesize
// concatenates every element's value as hex regardless of the element's
// own base.
func TestListSynthesizeConcatenatesAsHex(t *testing.T) {
	t.Parallel()

	elem := t3.NewTable("Elem")
	elem, err := elem.Add(1, "V", t3.MustHex(0))
	require.NoError(t, err)

	rep := t3.NewRepeater(elem, 0, 0)
	outer := t3.NewTable("Outer")
	outer, err = outer.Add(rep, "Elems", t3.MustHex(0))
	require.NoError(t, err)

	got, err := outer.Parse(t3.MustHex("11 22 33"))
	require.NoError(t, err)
	out, err := got.Synthesize()
	require.NoError(t, err)
	require.True(t, out.Equal(t3.MustHex("112233")))
}
