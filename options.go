package t3

// defaultMaxBindingDepth is the stack depth at which binding evaluation
// is considered circular (spec.md §4.3: "e.g. 10").
const defaultMaxBindingDepth = 10

// matchConfig holds the options a MatchOption can set.
type matchConfig struct {
	trace           bool
	maxBindingDepth int
}

func defaultMatchConfig() matchConfig {
	return matchConfig{maxBindingDepth: defaultMaxBindingDepth}
}

// MatchOption configures a single Table.Parse call (spec.md §4.9).
type MatchOption func(*matchConfig)

// WithTrace enables per-field match tracing on the returned
// *MatchingFailure, retrievable via its Trace method (spec.md §4.9/§7).
func WithTrace() MatchOption {
	return func(c *matchConfig) { c.trace = true }
}

// WithMaxBindingDepth overrides the binding-evaluation stack's
// cycle-detection threshold (spec.md §4.3's "e.g. 10") for the table
// tree this Parse call produces. An n that is not positive leaves the
// default of 10 in place. Bindings that fire during the match
// itself (e.g. from a Function pattern reading an earlier bound field)
// still use the package default; this only affects reads performed
// after Parse returns.
func WithMaxBindingDepth(n int) MatchOption {
	return func(c *matchConfig) { c.maxBindingDepth = n }
}

// synthesizeConfig holds the options a SynthesizeOption can set. Reserved
// for future formatting hooks; Table.Synthesize does not currently take
// any.
type synthesizeConfig struct{}

// SynthesizeOption configures synthesis. None are defined yet.
type SynthesizeOption func(*synthesizeConfig)
