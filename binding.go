package t3

import "fmt"

// Binding derives a field's value from another named field, or from the
// concatenation of every field positioned after it in the same table
// (source == "*"), evaluated lazily and coerced to the owning table's
// base (spec.md §4.3).
type Binding struct {
	f      func(Value) Value
	source string
}

// NewBinding builds a Binding that applies f to the value named by
// source. source == "*" means "everything after me" (spec.md §4.3): the
// concatenation of every sibling field positioned strictly after the
// bound field in the same table — how a Length field computes from the
// following Value.
func NewBinding(f func(Value) Value, source string) *Binding {
	return &Binding{f: f, source: source}
}

// evalBinding resolves f's binding, pushing it onto the root's
// evaluation stack for cycle detection (spec.md §4.3). t is f's owning
// table.
func (t *Table) evalBinding(f *Field) (Value, error) {
	stk := t.rootTable().stack()
	pop, err := stk.Push(f)
	if err != nil {
		return Value{}, ErrCircularBinding
	}
	defer pop()

	var src Value
	if f.binding.source == "*" {
		v, err := t.concatAfter(f)
		if err != nil {
			return Value{}, err
		}
		src = v
	} else {
		sib := -1
		for i, x := range t.fields {
			if x.name == f.binding.source {
				sib = i
				break
			}
		}
		if sib < 0 {
			return Value{}, fmt.Errorf("t3: binding source %q not found in table %q", f.binding.source, t.name)
		}
		// The source's own error (ErrCircularBinding on a cycle) is passed
		// on unchanged.
		v, err := t.fields[sib].Value()
		if err != nil {
			return Value{}, err
		}
		src = v
	}
	result := f.binding.f(src)
	return rebase(result, t.base)
}

// concatAfter implements the "*" binding source: the concatenation of
// every field positioned strictly after f in t (spec.md §4.3).
func (t *Table) concatAfter(f *Field) (Value, error) {
	idx := t.indexOf(f)
	acc := NULL
	for _, sib := range t.fields[idx+1:] {
		v, err := sib.Value()
		if err != nil {
			return Value{}, err
		}
		var cerr error
		acc, cerr = acc.Concat(v)
		if cerr != nil {
			return Value{}, cerr
		}
	}
	return acc, nil
}

// siblingValue looks up a direct child field of t by name, firing its
// binding if needed (spec.md §4.3: "looks up sibling field s").
func (t *Table) siblingValue(name string) (Value, bool) {
	for _, f := range t.fields {
		if f.name == name {
			v, err := f.Value()
			if err != nil {
				return NULL, false
			}
			return v, true
		}
	}
	return NULL, false
}

func (t *Table) indexOf(f *Field) int {
	for i, x := range t.fields {
		if x == f {
			return i
		}
	}
	return -1
}
