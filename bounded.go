package t3

import (
	"github.com/fiber-space/t3/internal/numeric"
	"github.com/fiber-space/t3/internal/pattern"
	"github.com/fiber-space/t3/internal/trace"
)

// bounded restricts a structural pattern (a Table, Repeater or List) to
// matching only within the first width digits of data, regardless of how
// much data actually remains: the classic BER-TLV shape where a
// constructed value's declared length must be carved off before the
// nested Tlv list is parsed recursively (spec.md §4.7, §8's BER
// example).
type bounded struct {
	inner Pattern
	width int
}

// Bounded wraps inner (a structural Pattern such as a *Repeater, *Table
// or *List) so that, when used as a Function pattern's result, it
// consumes exactly width digits: inner must fully match that slice, with
// nothing left over, or the whole field fails.
func Bounded(inner Pattern, width int) Pattern {
	return bounded{inner: inner, width: width}
}

// Match implements Pattern.
func (b bounded) Match(_ pattern.Env, data numeric.Value) pattern.Match {
	result, rest, pos, ok := b.matchStructural(data, nil)
	if !ok {
		return pattern.Match{Fail: true, Pos: pos}
	}
	switch r := result.(type) {
	case *Table:
		v, _ := r.Synthesize()
		return pattern.Match{Value: v.raw(), Rest: rest, Pos: pos}
	case *List:
		v, _ := r.Synthesize()
		return pattern.Match{Value: v.raw(), Rest: rest, Pos: pos}
	}
	return pattern.Match{Fail: true, Pos: pos}
}

func (b bounded) matchStructural(data numeric.Value, tr *trace.Recorder) (any, numeric.Value, int, bool) {
	if data.Len() < b.width {
		return nil, data, 0, false
	}
	head := data.DigitSlice(0, b.width)
	tail := data.DigitSlice(b.width, data.Len())

	sp, ok := b.inner.(structural)
	if !ok {
		return nil, data, 0, false
	}
	result, innerRest, _, ok2 := sp.matchStructural(head, tr)
	if !ok2 || innerRest.Len() > 0 {
		return nil, data, 0, false
	}
	return result, tail, b.width, true
}
