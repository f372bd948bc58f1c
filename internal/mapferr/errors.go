// Package mapferr collects the error taxonomy shared by the grid, agent,
// and solver packages: InvalidInput, NoSolution, InconsistentModel and
// SolverFailure. Keeping these in one leaf package lets every layer of
// the planner return the same four kinds without import cycles.
package mapferr

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidInput aggregates every precondition violation found while
// validating a grid, an agent set, or a horizon, before any encoding
// work begins. It is never raised piecemeal: all violations found in one
// validation pass are reported together.
type InvalidInput []error

func (e InvalidInput) Error() string {
	if len(e) == 0 {
		return "invalid input"
	}
	s := make([]string, len(e))
	for i, err := range e {
		s[i] = err.Error()
	}
	return fmt.Sprintf("invalid input: %s", strings.Join(s, "; "))
}

// Unwrap lets errors.Is/errors.As see through an InvalidInput to its
// constituent errors.
func (e InvalidInput) Unwrap() []error {
	return e
}

// ErrNoSolution is returned by a planner when the formula for the
// requested horizon is unsatisfiable. This is a normal outcome, not a
// bug: callers distinguish it from success with errors.Is, never with
// exceptional control flow.
var ErrNoSolution = errors.New("mapf: no solution exists within the given horizon")

// InconsistentModel indicates the solver reported SAT but the decoder
// could not reconstruct a complete schedule from the model. This always
// indicates a bug in the encoder, the decoder, or the solver adapter; it
// is never recovered from silently. It carries enough context (agent
// count, horizon, clause count) to reproduce the failure.
type InconsistentModel struct {
	AgentCount  int
	Horizon     int
	ClauseCount int
	Detail      string
}

func (e *InconsistentModel) Error() string {
	return fmt.Sprintf("inconsistent model (agents=%d horizon=%d clauses=%d): %s",
		e.AgentCount, e.Horizon, e.ClauseCount, e.Detail)
}

// SolverFailure indicates the adapter could not communicate with the SAT
// backend. It is fatal and always wraps the underlying cause.
type SolverFailure struct {
	Err error
}

func (e *SolverFailure) Error() string {
	return fmt.Sprintf("solver failure: %s", e.Err)
}

func (e *SolverFailure) Unwrap() error {
	return e.Err
}
