package pattern

import "github.com/fiber-space/t3/internal/numeric"

// Literal succeeds iff data starts with V, consuming len(V) digits
// (spec.md §4.2).
type Literal struct{ V numeric.Value }

// Match implements Pattern.
func (l Literal) Match(env Env, data numeric.Value) Match {
	want, err := numeric.CoerceBase(l.V, env.Base())
	if err != nil {
		return Match{Fail: true}
	}
	n := want.Len()
	if data.Len() < n || data.DigitSlice(0, n).Digits() != want.Digits() {
		return Match{Fail: true}
	}
	return Match{Value: data.DigitSlice(0, n), Rest: data.DigitSlice(n, data.Len()), Pos: n}
}

// Section consumes exactly K digits, failing if fewer are available
// (spec.md §4.2).
type Section struct{ K int }

// Match implements Pattern.
func (s Section) Match(_ Env, data numeric.Value) Match {
	if data.Len() < s.K {
		return Match{Fail: true}
	}
	return Match{Value: data.DigitSlice(0, s.K), Rest: data.DigitSlice(s.K, data.Len()), Pos: s.K}
}

// Any consumes all remaining digits; Rest is NULL. Inside a table, an Any
// field is non-greedy: the table backtracks, assigning it the shortest
// prefix that lets the remaining fields succeed (spec.md §4.2, §9;
// implemented by the root package's table matcher, see IsAny).
type Any struct{}

// Match implements Pattern.
func (Any) Match(_ Env, data numeric.Value) Match {
	return Match{Value: data, Rest: numeric.Null, Pos: data.Len()}
}

// Alt tries patterns left-to-right; the first success wins (spec.md §4.2).
type Alt struct{ Patterns []Pattern }

// Match implements Pattern.
func (a Alt) Match(env Env, data numeric.Value) Match {
	best := Match{Fail: true}
	for _, p := range a.Patterns {
		m := p.Match(env, data)
		if !m.Fail {
			return m
		}
		if m.Pos > best.Pos {
			best = m
		}
	}
	return best
}

// Prefixed requires data to start with Prefix; Inner is then matched
// against data itself (not the suffix after Prefix), since Inner
// re-consumes the prefix (spec.md §4.2).
type Prefixed struct {
	Prefix numeric.Value
	Inner  Pattern
}

// Match implements Pattern.
func (p Prefixed) Match(env Env, data numeric.Value) Match {
	want, err := numeric.CoerceBase(p.Prefix, env.Base())
	if err != nil {
		return Match{Fail: true}
	}
	n := want.Len()
	if data.Len() < n || data.DigitSlice(0, n).Digits() != want.Digits() {
		return Match{Fail: true}
	}
	return p.Inner.Match(env, data)
}

// Fn calls F at match time; F must resolve to an int (Section), a
// string/numeric (Literal), "*" (Any), or another Pattern, which is then
// matched against data (spec.md §4.2). This is how a length field controls
// a value field's width.
type Fn struct {
	F func(env Env, data numeric.Value) (any, error)
}

// Match implements Pattern.
func (fn Fn) Match(env Env, data numeric.Value) Match {
	res, err := fn.F(env, data)
	if err != nil {
		return Match{Fail: true}
	}
	p, err := Resolve(res, env)
	if err != nil {
		return Match{Fail: true}
	}
	return p.Match(env, data)
}

// Resolve converts a Function-pattern return value into a concrete
// Pattern, per the dispatch rules in spec.md §4.2.
func Resolve(res any, env Env) (Pattern, error) {
	switch v := res.(type) {
	case Pattern:
		return v, nil
	case int:
		return Section{K: v}, nil
	case int64:
		return Section{K: int(v)}, nil
	case string:
		if v == "*" {
			return Any{}, nil
		}
		nv, err := numeric.Parse(v, env.Base(), env.Base() == 16)
		if err != nil {
			return nil, err
		}
		return Literal{V: nv}, nil
	case numeric.Value:
		return Literal{V: v}, nil
	default:
		return nil, errBadFnResult
	}
}
