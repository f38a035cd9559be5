package t3

import (
	"fmt"
	"strings"

	"github.com/fiber-space/t3/internal/bindctx"
	"github.com/fiber-space/t3/internal/numeric"
	"github.com/fiber-space/t3/internal/pattern"
	"github.com/fiber-space/t3/internal/trace"
	"golang.org/x/exp/slices"
)

// reservedNames are built-in Table operations that cannot be used as
// field names (spec.md §4.4: "Name must not collide with a built-in
// attribute name").
var reservedNames = []string{
	"name", "find", "get", "add", "addprefixed", "match", "parse",
	"synthesize", "copy", "call",
}

func isReservedName(name string) bool {
	return slices.ContainsFunc(reservedNames, func(r string) bool {
		return r == strings.ToLower(name)
	})
}

// structural is implemented by pattern kinds whose match result must be
// preserved as a Go value (a populated *Table or *List copy) rather than
// flattened to a bare numeric value: nested Table, Repeater, List
// (spec.md §4.4, §4.7).
type structural interface {
	matchStructural(data numeric.Value, tr *trace.Recorder) (result any, rest numeric.Value, pos int, ok bool)
}

// Table is the ordered sequence of Fields described in spec.md §4.4: the
// composite that matches raw data, synthesizes it back, and supports
// named lookup, nested parent linkage and binding re-evaluation. Set
// (spec.md §4.5) and Bitmap (spec.md §4.6) are both built on Table.
type Table struct {
	name      string
	base      int // 16 for an ordinary table, 2 for a Bitmap
	setMode   bool
	padFields bool // true for a Bitmap: zero-pad each field to its declared width on synthesis

	fields []*Field

	parent    *Table
	bindStack *bindctx.Stack
}

// NewTable builds an empty table named name, matched and synthesized in
// hex (spec.md §4.4).
func NewTable(name string) *Table { return &Table{name: name, base: 16} }

// Name returns t's name.
func (t *Table) Name() string { return t.name }

// Base implements Env: the base (16, or 2 for a Bitmap) that Literal and
// Prefixed patterns coerce operands to before matching (spec.md §9).
func (t *Table) Base() int { return t.base }

// Resolve implements Env: it looks up a direct child field by name (a
// sibling, from a Function pattern's or a Binding's point of view),
// firing its binding if needed (spec.md §4.2, §4.3).
func (t *Table) Resolve(name string) (numeric.Value, bool) {
	v, ok := t.siblingValue(name)
	if !ok {
		return numeric.Value{}, false
	}
	return v.raw(), true
}

func (t *Table) unitDigits() int {
	if t.base == 2 {
		return 1
	}
	return 2
}

// digitsPerUnit is digitsPerByte from internal/numeric, duplicated here
// (only base 2 and base 16 ever appear as a Table's own base) so
// matchOneField can convert a nested composite's consumed-digit count
// back into its parent's digit units after a base rebase.
func digitsPerUnit(base int) int {
	if base == 2 {
		return 8
	}
	return 2
}

func (t *Table) rootTable() *Table {
	r := t
	for r.parent != nil {
		r = r.parent
	}
	return r
}

func (t *Table) stack() *bindctx.Stack {
	r := t.rootTable()
	if r.bindStack == nil {
		r.bindStack = &bindctx.Stack{}
	}
	return r.bindStack
}

// invalidate clears every bound field's cache across the whole root tree
// (spec.md §4.3: "Setting field.value on any node clears all bound-field
// caches in the root's entire subtree").
func (t *Table) invalidate() {
	t.rootTable().clearBoundCaches()
}

func (t *Table) clearBoundCaches() {
	for _, f := range t.fields {
		if f.binding != nil {
			f.data = NULL
		}
		switch d := f.data.(type) {
		case *Table:
			d.clearBoundCaches()
		case *List:
			d.clearBoundCaches()
		}
	}
}

// compilePattern turns an Add pattern argument into a Pattern, per
// spec.md §4.4's dispatch: an int is a Section (measured in bytes for an
// ordinary table/Set, or bits for a Bitmap), an FnPattern a Function, a
// string/Value a Literal, any Pattern is used as-is.
func (t *Table) compilePattern(arg any) (pattern.Pattern, error) {
	switch v := arg.(type) {
	case int:
		return pattern.Section{K: v * t.unitDigits()}, nil
	case FnPattern:
		return v.toInternal(), nil
	case string:
		nv, err := numeric.Parse(v, t.base, t.base == 16)
		if err != nil {
			return nil, numericErr(err)
		}
		return pattern.Literal{V: nv}, nil
	case Value:
		return pattern.Literal{V: v.raw()}, nil
	case pattern.Pattern:
		return v, nil
	default:
		return nil, ErrBadPattern
	}
}

// Add appends a field to t (spec.md §4.4). patArg may be an int
// (Section), an FnPattern (Function), a string or Value (Literal), or any
// Pattern. def is the field's default: nil, a Value, a *List, a *Binding,
// another *Field (copied), or a nested *Table, which installs itself as
// both the pattern and the default value (patArg is then ignored) so it
// matches recursively.
// Add returns t so calls can be chained.
func (t *Table) Add(patArg any, name string, def any) (*Table, error) {
	if t.setMode {
		return nil, fmt.Errorf("t3: use AddPrefixed to build a Set")
	}
	if isReservedName(name) {
		return nil, ErrNameCollision
	}

	if fld, ok := def.(*Field); ok {
		cp := fld.clone(t, map[any]any{})
		cp.name = name
		t.fields = append(t.fields, cp)
		return t, nil
	}

	f := &Field{name: name, owner: t}
	if nt, ok := def.(*Table); ok {
		nt.parent = t
		f.pat = nt
		f.data = nt
		t.fields = append(t.fields, f)
		return t, nil
	}

	pat, err := t.compilePattern(patArg)
	if err != nil {
		return nil, err
	}
	f.pat = pat
	if bs, ok := patArg.(*Bitset); ok {
		f.format = func(v Value) string {
			if n, ok := bs.NameOf(v); ok {
				return n
			}
			return v.String()
		}
	}

	switch d := def.(type) {
	case nil:
		f.data = NULL
	case Value:
		f.data = d
	case *List:
		f.data = d
	case *Binding:
		f.binding = d
		f.data = NULL
	default:
		return nil, ErrBadPattern
	}
	t.fields = append(t.fields, f)
	return t, nil
}

func (t *Table) shallowCopy() *Table {
	nt := &Table{name: t.name, base: t.base, setMode: t.setMode, padFields: t.padFields}
	nt.fields = make([]*Field, len(t.fields))
	for i, f := range t.fields {
		nf := &Field{name: f.name, pat: f.pat, prefix: f.prefix, binding: f.binding, format: f.format, owner: nt}
		nf.data = freshData(f)
		nt.fields[i] = nf
	}
	return nt
}

// matchOneField matches a single field's pattern against *rest, updating
// the field's data and consuming the matched portion. Nested composites
// (Table, Repeater, List) are matched structurally so their populated
// copy is preserved rather than flattened to a number.
func (t *Table) matchOneField(f *Field, rest *numeric.Value, tr *trace.Recorder) (int, bool) {
	resolved := f.pat
	if fn, ok := f.pat.(pattern.Fn); ok {
		// A Function pattern may itself resolve to a nested composite
		// (a Table, Repeater, List, or Bounded wrapping one): resolve it
		// up front so the structural branch below can preserve that
		// composite's populated result instead of flattening it to a
		// number (spec.md §4.2's Function pattern, extended to nesting).
		res, err := fn.F(t, *rest)
		if err != nil {
			tr.Record(trace.Step{Name: f.name, Failed: true})
			return 0, false
		}
		p, err := pattern.Resolve(res, t)
		if err != nil {
			tr.Record(trace.Step{Name: f.name, Failed: true})
			return 0, false
		}
		resolved = p
	}
	if sp, ok := resolved.(structural); ok {
		// A nested composite may declare its own base (a Bitmap nested in
		// an ordinary hex table, most commonly): rebase the remaining
		// data into it before matching and the unconsumed remainder back
		// afterward, per spec.md §4.6's "reinterpreted as a binary value
		// ... residual bits ... converted back to the base of the
		// incoming data".
		subBase := t.base
		if be, ok := resolved.(interface{ Base() int }); ok {
			subBase = be.Base()
		}
		in := *rest
		if subBase != t.base {
			cv, err := coerceBase(in, subBase)
			if err != nil {
				tr.Record(trace.Step{Name: f.name, Failed: true})
				return 0, false
			}
			in = cv
		}
		result, nrest, pos, ok2 := sp.matchStructural(in, tr)
		if !ok2 {
			tr.Record(trace.Step{Name: f.name, Failed: true})
			return 0, false
		}
		if subBase != t.base {
			back, err := coerceBase(nrest, t.base)
			if err != nil {
				tr.Record(trace.Step{Name: f.name, Failed: true})
				return 0, false
			}
			nrest = back
			pos = pos / digitsPerUnit(subBase) * digitsPerUnit(t.base)
		}
		tr.Record(trace.Step{Name: f.name, Length: pos, Failed: false})
		switch r := result.(type) {
		case *Table:
			r.parent = t
		case *List:
			r.setParent(t)
		}
		f.data = result
		*rest = nrest
		return pos, true
	}
	m := resolved.Match(t, *rest)
	tr.Record(trace.Step{Name: f.name, Length: m.Pos, Failed: m.Fail})
	if m.Fail {
		return 0, false
	}
	f.data = wrap(m.Value)
	*rest = m.Rest
	return m.Pos, true
}

// Match implements Pattern, so a Table can be nested directly inside
// another pattern's operand (Alt, a Function's return value, Prefixed's
// Inner). The structural result (the populated copy) is discarded in
// favor of its flattened numeric value; matchOneField calls
// matchStructural directly instead, to keep the structured copy.
func (t *Table) Match(_ pattern.Env, data numeric.Value) pattern.Match {
	result, rest, pos, ok := t.matchStructural(data, nil)
	if !ok {
		return pattern.Match{Fail: true, Pos: pos}
	}
	nv, _ := result.(*Table).Synthesize()
	return pattern.Match{Value: nv.raw(), Rest: rest, Pos: pos}
}

// matchStructural is t's own sequential matcher (spec.md §4.2, §4.4):
// left-to-right, no backtracking except for the single Any field, which
// is assigned the shortest prefix (non-greedy) that lets the remaining
// fields succeed. A table whose combined match consumed zero bytes is a
// failure.
func (t *Table) matchStructural(data numeric.Value, tr *trace.Recorder) (any, numeric.Value, int, bool) {
	if t.setMode {
		return t.matchSet(data, tr)
	}

	cp := t.shallowCopy()

	anyIdx := -1
	for i, f := range cp.fields {
		if pattern.IsAny(f.pat) {
			anyIdx = i
			break
		}
	}

	upto := len(cp.fields)
	if anyIdx >= 0 {
		upto = anyIdx
	}

	rest := data
	pos := 0
	for _, f := range cp.fields[:upto] {
		consumed, ok := cp.matchOneField(f, &rest, tr)
		if !ok {
			return nil, data, pos, false
		}
		pos += consumed
	}

	if anyIdx < 0 {
		if pos == 0 {
			return nil, data, 0, false
		}
		return cp, rest, pos, true
	}

	total := rest.Len()
	for n := 0; n <= total; n++ {
		for _, f := range cp.fields[anyIdx:] {
			f.data = freshData(f)
		}
		cp.fields[anyIdx].data = wrap(rest.DigitSlice(0, n))
		after := rest.DigitSlice(n, total)
		tpos := n
		ok := true
		for _, f := range cp.fields[anyIdx+1:] {
			consumed, ok2 := cp.matchOneField(f, &after, tr)
			if !ok2 {
				ok = false
				break
			}
			tpos += consumed
		}
		if ok {
			total := pos + tpos
			if total == 0 {
				return nil, data, 0, false
			}
			return cp, after, total, true
		}
	}
	return nil, data, pos, false
}

// Synthesize reduces t to a Number by concatenating each field's value
// in order; nested tables and lists recurse via Field.Value. An empty
// table synthesizes to NULL (spec.md §4.4).
func (t *Table) Synthesize() (Value, error) {
	acc := NULL
	for _, f := range t.fields {
		v, err := f.Value()
		if err != nil {
			return Value{}, err
		}
		if t.padFields && !v.IsNull() {
			if w, ok := f.sectionWidth(); ok {
				v, err = padBin(v, w)
				if err != nil {
					return Value{}, err
				}
			}
		} else if !t.padFields {
			// A nested Bitmap synthesizes in base 2; bring it into t's base
			// so it concatenates with its siblings.
			v, err = rebase(v, t.base)
			if err != nil {
				return Value{}, err
			}
		}
		var cerr error
		acc, cerr = acc.Concat(v)
		if cerr != nil {
			return Value{}, cerr
		}
	}
	return acc, nil
}

// Find performs a breadth-first search over t's entire subtree for the
// first field named name, returning its value by reference: a nested
// *Table/*List is returned directly, so further mutation propagates
// (spec.md §4.4).
func (t *Table) Find(name string) (any, bool) {
	queue := []*Table{t}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, f := range cur.fields {
			if f.name == name {
				return f.exposedValue()
			}
		}
		for _, f := range cur.fields {
			if nt, ok := f.data.(*Table); ok {
				queue = append(queue, nt)
			}
		}
	}
	return nil, false
}

// Get returns the value(s) of t's own direct field(s) named name: a
// single value, or a []any if the name repeats (spec.md §4.4's
// `__getattr__`).
func (t *Table) Get(name string) (any, bool) {
	var matches []*Field
	for _, f := range t.fields {
		if f.name == name {
			matches = append(matches, f)
		}
	}
	switch len(matches) {
	case 0:
		return nil, false
	case 1:
		return matches[0].exposedValue()
	default:
		out := make([]any, len(matches))
		for i, f := range matches {
			out[i], _ = f.exposedValue()
		}
		return out, true
	}
}

// Copy deep-copies t's entire root tree, preserving parent links via an
// identity-keyed memo, and returns the new root (spec.md §4.4).
func (t *Table) Copy() *Table {
	root, _ := t.copyWithMemo()
	return root
}

func (t *Table) copyWithMemo() (*Table, map[any]any) {
	memo := map[any]any{}
	root := t.rootTable().copyInto(memo)
	return root, memo
}

func (t *Table) copyInto(memo map[any]any) *Table {
	if v, ok := memo[t]; ok {
		return v.(*Table)
	}
	nt := &Table{name: t.name, base: t.base, setMode: t.setMode, padFields: t.padFields}
	memo[t] = nt
	nt.fields = make([]*Field, len(t.fields))
	for i, f := range t.fields {
		nt.fields[i] = f.clone(nt, memo)
	}
	return nt
}

// Call deep-copies the root tree and assigns new values to t's own named
// fields in the copy, returning the new root: because the root is
// returned and not the subtree t was called on, mutating a deep child
// produces a fresh whole tree (spec.md §4.4).
func (t *Table) Call(assignments map[string]Value) (*Table, error) {
	root, memo := t.copyWithMemo()
	selfAny, ok := memo[t]
	if !ok {
		return nil, fmt.Errorf("t3: internal: copy memo missing source table")
	}
	self := selfAny.(*Table)
	for name, v := range assignments {
		matched := false
		for _, f := range self.fields {
			if f.name == name {
				f.SetValue(v)
				matched = true
			}
		}
		if !matched {
			return nil, fmt.Errorf("t3: no field named %q", name)
		}
	}
	return root, nil
}

// Parse matches data against t (the `<<` operator of spec.md §4.9): it
// deep-copies t, matches sequentially, and returns the populated copy.
// It fails if the match does not consume all of data, or if zero bytes
// were consumed.
func (t *Table) Parse(data Value, opts ...MatchOption) (*Table, error) {
	cfg := defaultMatchConfig()
	for _, o := range opts {
		o(&cfg)
	}
	var tr *trace.Recorder
	if cfg.trace {
		tr = trace.New()
	}

	raw, err := coerceBase(data.raw(), t.base)
	if err != nil {
		return nil, err
	}

	result, rest, pos, ok := t.matchStructural(raw, tr)
	if !ok || rest.Len() > 0 {
		return nil, &MatchingFailure{Table: t.name, Pos: pos, trace: tr}
	}
	nt := result.(*Table)
	if cfg.maxBindingDepth != defaultMaxBindingDepth {
		nt.bindStack = &bindctx.Stack{Threshold: cfg.maxBindingDepth}
	}
	return nt, nil
}
