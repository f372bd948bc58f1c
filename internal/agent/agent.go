package agent

import (
	"fmt"

	"github.com/mapf-sat/planner/internal/grid"
	"github.com/mapf-sat/planner/internal/mapferr"
)

// Agent is a single robot with a unique id, a start cell, and a goal
// cell. Validity (bounds, obstacle-freeness) is established by Set.Validate,
// not by Agent itself, which is a plain value type.
type Agent struct {
	ID          int
	Start, Goal grid.Cell
}

func (a Agent) String() string {
	return fmt.Sprintf("agent#%d %s->%s", a.ID, a.Start, a.Goal)
}

// Set is the ordered list of agents a planner solves for. Order is
// preserved from construction and has no semantic effect on the
// encoding; it only affects the order clauses are emitted in.
type Set []Agent

// Validate checks every precondition encoding depends on: unique ids,
// every start/goal in bounds and off any obstacle, a non-negative
// horizon, and at least one agent. Every
// violation found is reported together as a single InvalidInput rather
// than failing fast on the first one.
func (s Set) Validate(g *grid.Grid, horizon int) error {
	var errs []error

	if len(s) == 0 {
		errs = append(errs, fmt.Errorf("agent set must not be empty"))
	}
	if horizon < 0 {
		errs = append(errs, fmt.Errorf("horizon T must be non-negative, got %d", horizon))
	}

	seen := make(map[int]struct{}, len(s))
	for _, a := range s {
		if _, dup := seen[a.ID]; dup {
			errs = append(errs, fmt.Errorf("duplicate agent id %d", a.ID))
		}
		seen[a.ID] = struct{}{}

		if !g.InBounds(a.Start) {
			errs = append(errs, fmt.Errorf("agent %d start %s is out of bounds", a.ID, a.Start))
		} else if g.IsObstacle(a.Start) {
			errs = append(errs, fmt.Errorf("agent %d start %s is an obstacle", a.ID, a.Start))
		}
		if !g.InBounds(a.Goal) {
			errs = append(errs, fmt.Errorf("agent %d goal %s is out of bounds", a.ID, a.Goal))
		} else if g.IsObstacle(a.Goal) {
			errs = append(errs, fmt.Errorf("agent %d goal %s is an obstacle", a.ID, a.Goal))
		}
	}

	if len(errs) > 0 {
		return mapferr.InvalidInput(errs)
	}
	return nil
}
