package t3

import (
	"github.com/fiber-space/t3/internal/numeric"
	"github.com/fiber-space/t3/internal/pattern"
)

// Pattern is the closed sum-type matcher interface from spec.md §4.2:
// Literal, Section, Any, Alt, Fn, Prefixed, plus Table, Repeater, Bitset
// and List, which all implement Pattern so they nest inside one another.
type Pattern = pattern.Pattern

// Env lets a Function pattern's callback reach sibling field values and
// the containing table's preferred base (spec.md §4.2's Function pattern,
// §9's base-mismatch coercion). *Table implements Env.
type Env = pattern.Env

// AnyPattern is the non-greedy remaining-data matcher (spec.md §4.2):
// inside a Table it consumes the shortest prefix that lets the fields
// after it succeed.
func AnyPattern() Pattern { return pattern.Any{} }

// AltPattern tries each of ps left-to-right; the first success wins
// (spec.md §4.2).
func AltPattern(ps ...Pattern) Pattern { return pattern.Alt{Patterns: ps} }

// PrefixedPattern requires data to start with prefix, then matches inner
// against data itself, not the suffix after prefix (spec.md §4.2): inner
// re-consumes the prefix.
func PrefixedPattern(prefix Value, inner Pattern) Pattern {
	return pattern.Prefixed{Prefix: prefix.raw(), Inner: inner}
}

// FnPattern is a Function pattern's callback (spec.md §4.2): at match time
// it is called with the containing table and the remaining data, and must
// return an int (Section), a string or Value (Literal), "*" (AnyPattern),
// or another Pattern, which is then matched against data. This is how a
// length field controls a value field's width.
type FnPattern func(env Env, data Value) (any, error)

func (f FnPattern) toInternal() pattern.Fn {
	return pattern.Fn{F: func(env pattern.Env, data numeric.Value) (any, error) {
		res, err := f(env, wrap(data))
		if err != nil {
			return nil, err
		}
		if v, ok := res.(Value); ok {
			return v.raw(), nil
		}
		return res, nil
	}}
}
