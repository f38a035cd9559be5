package t3

import (
	"github.com/fiber-space/t3/internal/numeric"
	"github.com/fiber-space/t3/internal/pattern"
	"github.com/fiber-space/t3/internal/trace"
)

// Repeater matches a sub-table repeatedly, stopping at the first
// failure (spec.md §4.7). If fewer than Min repetitions succeeded, the
// whole repeater fails; otherwise it produces a List of the matched
// table copies and the unconsumed rest.
type Repeater struct {
	proto *Table
	min   int
	max   int // 0 means unbounded
}

// NewRepeater builds a Repeater over proto, matching at least min times
// and at most max times; max <= 0 means unbounded (spec.md §4.7's
// "max=∞").
func NewRepeater(proto *Table, min, max int) *Repeater {
	return &Repeater{proto: proto, min: min, max: max}
}

// Match implements Pattern.
func (r *Repeater) Match(_ pattern.Env, data numeric.Value) pattern.Match {
	result, rest, pos, ok := r.matchStructural(data, nil)
	if !ok {
		return pattern.Match{Fail: true, Pos: pos}
	}
	v, _ := result.(*List).Synthesize()
	return pattern.Match{Value: v.raw(), Rest: rest, Pos: pos}
}

func (r *Repeater) matchStructural(data numeric.Value, tr *trace.Recorder) (any, numeric.Value, int, bool) {
	list := &List{}
	rest := data
	pos := 0
	count := 0
	for r.max <= 0 || count < r.max {
		result, nrest, p, ok := r.proto.matchStructural(rest, tr)
		if !ok {
			break
		}
		nt := result.(*Table)
		list.elems = append(list.elems, nt)
		rest = nrest
		pos += p
		count++
		if p == 0 {
			break
		}
	}
	if count < r.min {
		return nil, data, pos, false
	}
	return list, rest, pos, true
}
