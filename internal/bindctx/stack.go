// Package bindctx implements the per-root binding-evaluation stack from
// spec.md §4.3/§5 (named T3TableContext in the original source): cycle
// detection for field bindings that must be per-root-table state, not
// process-global, so that concurrent use of distinct table trees is safe.
package bindctx

import "errors"

// ErrCircular is returned when a binding revisits itself on the stack,
// spec.md §4.3's "circular binding" error.
var ErrCircular = errors.New("t3: circular binding")

// threshold is the stack depth (spec.md §4.3: "e.g. 10") beyond which a
// repeated binding on the stack is treated as a cycle. A non-cyclic chain
// of up to threshold bindings still resolves.
const threshold = 10

// Stack tracks the bindings currently being evaluated for one root table.
// The zero value is ready to use.
type Stack struct {
	active []any

	// Threshold overrides the package default (10) when positive; set by
	// callers that want a non-default cycle-detection depth (t3's
	// WithMaxBindingDepth).
	Threshold int
}

// Push enters evaluation of the binding identified by id. If the stack
// already exceeds threshold entries and id is already present, it returns
// ErrCircular. Otherwise it returns a function that must be called to pop
// this entry once evaluation completes (including on error paths).
func (s *Stack) Push(id any) (pop func(), err error) {
	t := threshold
	if s.Threshold > 0 {
		t = s.Threshold
	}
	if len(s.active) > t {
		for _, a := range s.active {
			if a == id {
				return nil, ErrCircular
			}
		}
	}
	s.active = append(s.active, id)
	idx := len(s.active) - 1
	return func() {
		s.active = s.active[:idx]
	}, nil
}

// Depth reports the number of bindings currently being evaluated.
func (s *Stack) Depth() int { return len(s.active) }
