package t3

import (
	"github.com/fiber-space/t3/internal/numeric"
	"github.com/fiber-space/t3/internal/pattern"
	"github.com/fiber-space/t3/internal/trace"
)

// List is the ordered collection described in spec.md §4.7: it
// synthesizes by concatenating each element's value as hex (regardless
// of the element's own base) and, when built from explicit element
// patterns via Add, matches by applying those patterns in order. Each
// element is itself a *Table acting as a pattern — this is how a DOL
// (Data Object List) is modeled: a repeated or fixed sequence of
// sub-tables.
type List struct {
	protos []*Table // fixed element patterns, for direct List.Match use
	elems  []*Table // populated elements, once matched
	parent *Table
}

// NewList builds an empty List; element patterns are supplied via Add.
func NewList() *List { return &List{} }

// Add appends a fixed element pattern to the list's sequence.
func (l *List) Add(proto *Table) *List {
	l.protos = append(l.protos, proto)
	return l
}

// Elems returns the list's populated elements in match order.
func (l *List) Elems() []*Table { return l.elems }

// Len returns the number of populated elements.
func (l *List) Len() int { return len(l.elems) }

func (l *List) setParent(t *Table) {
	l.parent = t
	for _, e := range l.elems {
		e.parent = t
	}
}

func (l *List) copyIntoOwned(owner *Table, memo map[any]any) *List {
	nl := l.copyInto(memo)
	nl.parent = owner
	for _, e := range nl.elems {
		e.parent = owner
	}
	return nl
}

func (l *List) copyInto(memo map[any]any) *List {
	if v, ok := memo[l]; ok {
		return v.(*List)
	}
	nl := &List{protos: l.protos}
	memo[l] = nl
	nl.elems = make([]*Table, len(l.elems))
	for i, e := range l.elems {
		nl.elems[i] = e.copyInto(memo)
	}
	return nl
}

func (l *List) clearBoundCaches() {
	for _, e := range l.elems {
		e.clearBoundCaches()
	}
}

// Synthesize concatenates every element's value, rebased to hex, in
// order (spec.md §4.7). An empty list synthesizes to NULL.
func (l *List) Synthesize() (Value, error) {
	acc := NULL
	for _, e := range l.elems {
		v, err := e.Synthesize()
		if err != nil {
			return Value{}, err
		}
		hv, err := rebase(v, 16)
		if err != nil {
			return Value{}, err
		}
		acc, err = acc.Concat(hv)
		if err != nil {
			return Value{}, err
		}
	}
	return acc, nil
}

// Match implements Pattern: it applies each of l's fixed element protos
// in order against data (spec.md §4.7(b)).
func (l *List) Match(_ pattern.Env, data numeric.Value) pattern.Match {
	result, rest, pos, ok := l.matchStructural(data, nil)
	if !ok {
		return pattern.Match{Fail: true, Pos: pos}
	}
	v, _ := result.(*List).Synthesize()
	return pattern.Match{Value: v.raw(), Rest: rest, Pos: pos}
}

func (l *List) matchStructural(data numeric.Value, tr *trace.Recorder) (any, numeric.Value, int, bool) {
	nl := &List{protos: l.protos}
	rest := data
	pos := 0
	for _, proto := range l.protos {
		result, nrest, p, ok := proto.matchStructural(rest, tr)
		if !ok {
			return nil, data, pos, false
		}
		nt := result.(*Table)
		nl.elems = append(nl.elems, nt)
		rest = nrest
		pos += p
	}
	if pos == 0 && len(l.protos) > 0 {
		return nil, data, 0, false
	}
	return nl, rest, pos, true
}
