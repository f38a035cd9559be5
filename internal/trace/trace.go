// Package trace implements optional match tracing used only to render the
// "deepest failing position" diagnostic described in spec.md §4.9/§7. It is
// inert (no-op) unless a match explicitly requests tracing, so it never
// sits on the hot path of ordinary matching/synthesis.
package trace

import "fmt"

// Step records one field's attempt during a table match: its name, the
// digit offset it started at, and whether it succeeded.
type Step struct {
	Name   string
	Offset int
	Length int
	Failed bool
}

// Recorder accumulates Steps for a single Table.Parse call. A nil
// *Recorder is valid and simply discards every Record call, which is how
// tracing stays off the hot path when the caller hasn't asked for it.
type Recorder struct {
	steps []Step
}

// New returns an active Recorder.
func New() *Recorder { return &Recorder{} }

// Record appends a step. Safe to call on a nil receiver.
func (r *Recorder) Record(s Step) {
	if r == nil {
		return
	}
	r.steps = append(r.steps, s)
}

// Steps returns the recorded steps, or nil if r is nil.
func (r *Recorder) Steps() []Step {
	if r == nil {
		return nil
	}
	return r.steps
}

// DeepestFailure returns the largest offset+length among all successful
// steps, including those recorded after a failed one, and whether any
// step succeeded.
func (r *Recorder) DeepestFailure() (offset int, ok bool) {
	if r == nil {
		return 0, false
	}
	best := 0
	found := false
	for _, s := range r.steps {
		if s.Failed {
			continue
		}
		end := s.Offset + s.Length
		if end > best {
			best = end
		}
		found = true
	}
	return best, found
}

// String renders the recorded steps for inclusion in error messages.
func (r *Recorder) String() string {
	if r == nil || len(r.steps) == 0 {
		return "<no trace>"
	}
	out := ""
	for i, s := range r.steps {
		if i > 0 {
			out += ", "
		}
		status := "ok"
		if s.Failed {
			status = "fail"
		}
		out += fmt.Sprintf("%s@%d:%s", s.Name, s.Offset, status)
	}
	return out
}
