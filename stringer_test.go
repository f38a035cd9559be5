package t3_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fiber-space/t3"
)

// TestTableGoStringWrapsString grounds stringer.go's GoString, used for
// %#v-style debugging: it wraps Table.String in a type-qualified form.
func TestTableGoStringWrapsString(t *testing.T) {
	t.Parallel()

	tbl := t3.NewTable("T")
	tbl, err := tbl.Add(1, "A", t3.MustHex(0))
	require.NoError(t, err)

	got, err := tbl.Parse(t3.MustHex(0xAA))
	require.NoError(t, err)

	require.Equal(t, "T{A=AA}", got.String())
	require.Equal(t, "t3.Table(T{A=AA})", got.GoString())
}

// TestListStringRendersElementsInOrder grounds stringer.go's List.String:
// each element renders via its own Table.String, in match order.
func TestListStringRendersElementsInOrder(t *testing.T) {
	t.Parallel()

	elem := t3.NewTable("Elem")
	elem, err := elem.Add(1, "V", t3.MustHex(0))
	require.NoError(t, err)

	outer := t3.NewTable("Outer")
	outer, err = outer.Add(t3.NewRepeater(elem, 0, 0), "Elems", t3.MustHex(0))
	require.NoError(t, err)

	got, err := outer.Parse(t3.MustHex("11 22"))
	require.NoError(t, err)

	elems, ok := got.Get("Elems")
	require.True(t, ok)
	list, ok := elems.(*t3.List)
	require.True(t, ok)

	require.Equal(t, "[Elem{V=11}, Elem{V=22}]", list.String())
}
