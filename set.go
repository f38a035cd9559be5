package t3

import (
	"fmt"

	"github.com/fiber-space/t3/internal/numeric"
	"github.com/fiber-space/t3/internal/pattern"
	"github.com/fiber-space/t3/internal/trace"
)

// NewSet builds an empty Set: a table whose fields are matched by prefix
// dispatch in any order (spec.md §4.5).
func NewSet(name string) *Table { return &Table{name: name, base: 16, setMode: true} }

// AddPrefixed installs a Set member: data must start with prefix, which
// dispatches to value's own pattern (spec.md §4.5: "converts (prefix,
// value) into Prefixed(prefix, value.pattern)"). value is itself a table
// built from the public primitives, so it carries its own pattern.
func (t *Table) AddPrefixed(prefix Value, name string, value *Table) (*Table, error) {
	if !t.setMode {
		return nil, fmt.Errorf("t3: AddPrefixed is only valid on a Set")
	}
	if isReservedName(name) {
		return nil, ErrNameCollision
	}
	value.parent = t
	pfx := prefix
	f := &Field{
		name:   name,
		pat:    pattern.Prefixed{Prefix: prefix.raw(), Inner: value},
		prefix: &pfx,
		data:   value,
		owner:  t,
	}
	t.fields = append(t.fields, f)
	return t, nil
}

// matchSet implements spec.md §4.5: try each remaining candidate's
// prefix against the current position, dispatch to the first match,
// remove it from the candidate list, and repeat until either no data
// remains (success) or no candidate matches remaining non-empty data
// (failure).
func (t *Table) matchSet(data numeric.Value, tr *trace.Recorder) (any, numeric.Value, int, bool) {
	cp := t.shallowCopy()
	remaining := make([]int, len(t.fields))
	for i := range remaining {
		remaining[i] = i
	}

	rest := data
	pos := 0
	for rest.Len() > 0 && len(remaining) > 0 {
		matchedAt := -1
		var consumed int
		var nrest numeric.Value
		var result any

		for ri, fi := range remaining {
			proto := t.fields[fi]
			nt, ok := proto.data.(*Table)
			if !ok || proto.prefix == nil {
				continue
			}
			pfx, err := numeric.CoerceBase(proto.prefix.raw(), t.base)
			if err != nil {
				continue
			}
			n := pfx.Len()
			if rest.Len() < n || rest.DigitSlice(0, n).Digits() != pfx.Digits() {
				continue
			}
			body := rest.DigitSlice(n, rest.Len())
			sres, srest, spos, sok := nt.matchStructural(body, tr)
			if !sok {
				continue
			}
			result = sres
			nrest = srest
			consumed = n + spos
			matchedAt = ri
			break
		}

		if matchedAt < 0 {
			tr.Record(trace.Step{Name: t.name, Failed: true})
			break
		}
		fi := remaining[matchedAt]
		tr.Record(trace.Step{Name: t.fields[fi].name, Length: consumed})
		if r, ok := result.(*Table); ok {
			r.parent = cp
		}
		cp.fields[fi].data = result
		remaining = append(remaining[:matchedAt], remaining[matchedAt+1:]...)
		rest = nrest
		pos += consumed
	}

	if rest.Len() > 0 || pos == 0 {
		return nil, data, pos, false
	}
	return cp, rest, pos, true
}
