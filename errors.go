package t3

import (
	"errors"
	"fmt"

	"github.com/fiber-space/t3/internal/bindctx"
	"github.com/fiber-space/t3/internal/numeric"
	"github.com/fiber-space/t3/internal/trace"
)

// Sentinel errors matching the taxonomy in spec.md §7. Use errors.Is to
// test for these; MatchingFailure additionally carries position
// information (see below).
var (
	// ErrCircularBinding is raised when binding evaluation revisits
	// itself at stack depth > 10 (spec.md §4.3, §7).
	ErrCircularBinding = bindctx.ErrCircular

	// ErrNameCollision is raised by Table.Add when a field name collides
	// with a built-in attribute name (spec.md §4.4).
	ErrNameCollision = errors.New("t3: field name collides with a built-in attribute")

	// ErrBadPattern is raised by Table.Add for a pattern argument that is
	// neither an integer, a callback, a string/numeric, nor a Pattern.
	ErrBadPattern = errors.New("t3: unsupported pattern argument")
)

// MatchingFailure is raised by Table.Parse (the Go analogue of the `<<`
// operator, spec.md §4.9) when input does not conform to the table. It
// carries the position of the longest successful prefix, for error
// reporting.
type MatchingFailure struct {
	// Table is the name of the table that failed to match, if known.
	Table string
	// Pos is the digit offset of the longest successful prefix before
	// the failure (spec.md §4.9/§7).
	Pos int
	trace *trace.Recorder
}

// Error implements error.
func (e *MatchingFailure) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("t3: %s did not match input (matched up to digit %d)", e.Table, e.Pos)
	}
	return fmt.Sprintf("t3: no match (matched up to digit %d)", e.Pos)
}

// Trace renders the recorded per-field match attempts, for diagnostics.
func (e *MatchingFailure) Trace() string {
	if e.trace == nil {
		return "<no trace>"
	}
	return e.trace.String()
}

// numericErr wraps an internal/numeric error so callers only ever see this
// package's own exported error values from the public API.
func numericErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("t3: %w", err)
}

// coerceBase is a small helper used throughout the root package to apply
// spec.md §9's base-mismatch coercion rule directly to a numeric.Value.
func coerceBase(v numeric.Value, base int) (numeric.Value, error) {
	nv, err := numeric.CoerceBase(v, base)
	if err != nil {
		return numeric.Value{}, numericErr(err)
	}
	return nv, nil
}
