// Package pattern implements the matching engine described in spec.md
// §4.2: a closed set of matchers that consume bytes (or bits) from a
// numeric value and produce a Match(value, rest, fail).
package pattern

import "github.com/fiber-space/t3/internal/numeric"

// Match is the result of matching a Pattern against data (spec.md §4.2).
// Value is the consumed portion, Rest is the unconsumed suffix, and Fail
// signals no progress was made.
type Match struct {
	Value numeric.Value
	Rest  numeric.Value
	Fail  bool

	// Pos is the length (in digits) of the longest successful prefix
	// reached before failure, used for the diagnostic "deepest non-fail
	// intermediate value" described in spec.md §4.9/§7.
	Pos int
}

// Env abstracts the table a pattern is matching within, so that Fn and
// base-coercion can reach sibling field values and the table's preferred
// base (spec.md §4.2's Function pattern, §9's base-mismatch coercion).
// The root package's Table implements this interface.
type Env interface {
	// Resolve looks up a sibling field's value by name, for Fn callbacks
	// and Binding source resolution.
	Resolve(name string) (numeric.Value, bool)
	// Base is the base (hex for ordinary tables, binary for bitmaps)
	// that numeric operands coerce to before matching.
	Base() int
}

// Pattern is the closed sum type of matchers (spec.md §9): Literal,
// Section, Any, Alt, Fn, Prefixed, plus host types (Table, Repeater,
// Bitset) that implement Pattern themselves.
type Pattern interface {
	Match(env Env, data numeric.Value) Match
}

// IsAny reports whether p is the non-greedy Any matcher, so that a table
// can give it the special reverse-scan treatment from spec.md §4.2/§9.
func IsAny(p Pattern) bool {
	_, ok := p.(Any)
	return ok
}
