package t3

import (
	"fmt"
	"strings"
)

// String renders t for debugging: its name and each field's current
// value in order (spec.md §4.4). Bindings are resolved; a field whose
// binding errors renders as "<err>" rather than panicking, since String
// must never fail.
func (t *Table) String() string {
	var b strings.Builder
	b.WriteString(t.name)
	b.WriteByte('{')
	for i, f := range t.fields {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(f.name)
		b.WriteByte('=')
		b.WriteString(f.Format())
	}
	b.WriteByte('}')
	return b.String()
}

// GoString implements fmt.GoStringer for %#v-style debugging.
func (t *Table) GoString() string { return fmt.Sprintf("t3.Table(%s)", t.String()) }

// String renders l as its elements' formatted values, in match order.
func (l *List) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range l.elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteByte(']')
	return b.String()
}
