package t3

import "github.com/fiber-space/t3/internal/pattern"

// Field is one named slot in a Table: a Pattern describing its width, an
// authoritative value (or a Binding that derives it), and an optional
// display formatter (spec.md §4.3).
type Field struct {
	name    string
	pat     pattern.Pattern
	prefix  *Value // set only for Set members (spec.md §4.5)
	data    any    // one of Value | *Table | *List
	binding *Binding
	format  func(Value) string
	owner   *Table
}

// Name returns the field's name.
func (f *Field) Name() string { return f.name }

// Pattern returns the field's compiled pattern.
func (f *Field) Pattern() Pattern { return f.pat }

func (f *Field) clone(owner *Table, memo map[any]any) *Field {
	nf := &Field{
		name:    f.name,
		pat:     f.pat,
		prefix:  f.prefix,
		binding: f.binding,
		format:  f.format,
		owner:   owner,
	}
	switch d := f.data.(type) {
	case *Table:
		nc := d.copyInto(memo)
		nc.parent = owner
		nf.data = nc
	case *List:
		nf.data = d.copyIntoOwned(owner, memo)
	default:
		nf.data = f.data
	}
	return nf
}

// freshData resets a field's data to its prototype default for a new
// match attempt: NULL for ordinary fields, the (unmatched) prototype
// itself for nested composites, which will be replaced wholesale once
// that field is matched.
func freshData(f *Field) any {
	switch d := f.data.(type) {
	case *Table:
		return d
	case *List:
		return d
	default:
		return NULL
	}
}

// currentValue reduces the field's stored data to a numeric Value,
// recursing into nested tables/lists via Synthesize (spec.md §4.4).
func (f *Field) currentValue() Value {
	switch d := f.data.(type) {
	case Value:
		return d
	case *Table:
		v, _ := d.Synthesize()
		return v
	case *List:
		v, _ := d.Synthesize()
		return v
	default:
		return NULL
	}
}

// Value returns the field's current value, firing its Binding if the
// stored value is NULL and a Binding is present (spec.md §4.3).
func (f *Field) Value() (Value, error) {
	cur := f.currentValue()
	if f.binding != nil && cur.IsNull() {
		return f.owner.evalBinding(f)
	}
	return cur, nil
}

// SetValue overwrites the field's authoritative value, makes it the
// source of truth (clearing any Binding), and marks every bound field in
// the whole root tree dirty so the next read recomputes it (spec.md
// §4.3).
func (f *Field) SetValue(v Value) {
	f.data = v
	f.binding = nil
	f.owner.invalidate()
}

// Table returns the nested table held by this field, if any.
func (f *Field) Table() (*Table, bool) {
	t, ok := f.data.(*Table)
	return t, ok
}

// List returns the list held by this field, if any.
func (f *Field) List() (*List, bool) {
	l, ok := f.data.(*List)
	return l, ok
}

// Format renders the field's current value (firing its Binding if needed)
// through its formatter, or its plain Value.String() if no formatter is
// set. A Binding that errors renders as "<err>".
func (f *Field) Format() string {
	v, err := f.Value()
	if err != nil {
		return "<err>"
	}
	if f.format != nil {
		return f.format(v)
	}
	return v.String()
}

// exposedValue is what Find/Get hand back to callers: the nested
// *Table/*List by reference so further mutation propagates, or the plain
// computed Value otherwise (spec.md §4.4).
func (f *Field) exposedValue() (any, bool) {
	switch d := f.data.(type) {
	case *Table:
		return d, true
	case *List:
		return d, true
	default:
		v, err := f.Value()
		if err != nil {
			return nil, false
		}
		return v, true
	}
}

// sectionWidth reports the declared digit width of a Section-patterned
// field, used by Bitmap's zero-pad-on-synthesis rule (spec.md §4.6).
func (f *Field) sectionWidth() (int, bool) {
	s, ok := f.pat.(pattern.Section)
	if !ok {
		return 0, false
	}
	return s.K, true
}
