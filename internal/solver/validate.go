package solver

import (
	"fmt"
	"strings"

	"github.com/mapf-sat/planner/internal/agent"
	"github.com/mapf-sat/planner/internal/grid"
)

// ScheduleViolation aggregates every property violation Validate finds.
// It is distinct from mapferr.InvalidInput: InvalidInput gates encoding
// before any clause is built, while ScheduleViolation is a test-only
// cross-check of what the encoder and decoder already produced. decode
// itself never raises this: re-verifying start/goal placement, step
// legality and collision-freeness is a separate validator's job, not
// the decoder's contract.
type ScheduleViolation []error

func (e ScheduleViolation) Error() string {
	if len(e) == 0 {
		return "schedule violates no properties"
	}
	s := make([]string, len(e))
	for i, err := range e {
		s[i] = err.Error()
	}
	return fmt.Sprintf("schedule violates properties: %s", strings.Join(s, "; "))
}

// Validate checks a decoded Schedule against every property a correct
// plan must have: start and goal placement, containment on free cells,
// unit cardinal steps, vertex-disjointness and edge-disjointness,
// independent of how the schedule was produced. It is used by the test
// suite, never by decode itself.
func Validate(s Schedule, g *grid.Grid, agents agent.Set, horizon int) error {
	var errs []error

	paths := make(map[int][]grid.Cell, len(agents))
	for _, a := range agents {
		path, ok := s.Path(a.ID)
		if !ok {
			errs = append(errs, fmt.Errorf("agent %d has no path in schedule", a.ID))
			continue
		}
		if len(path) != horizon+1 {
			errs = append(errs, fmt.Errorf("agent %d path has length %d, want %d", a.ID, len(path), horizon+1))
			continue
		}
		paths[a.ID] = path

		if path[0] != a.Start {
			errs = append(errs, fmt.Errorf("agent %d starts at %s, want %s", a.ID, path[0], a.Start))
		}
		if path[horizon] != a.Goal {
			errs = append(errs, fmt.Errorf("agent %d ends at %s, want %s", a.ID, path[horizon], a.Goal))
		}

		for t, c := range path {
			if !g.InBounds(c) {
				errs = append(errs, fmt.Errorf("agent %d at t=%d occupies out-of-bounds cell %s", a.ID, t, c))
				continue
			}
			if g.IsObstacle(c) {
				errs = append(errs, fmt.Errorf("agent %d at t=%d occupies obstacle %s", a.ID, t, c))
			}
			if t == 0 {
				continue
			}
			prev := path[t-1]
			if !isStepOrStay(prev, c) {
				errs = append(errs, fmt.Errorf("agent %d steps %s -> %s at t=%d is not a unit cardinal move or stay", a.ID, prev, c, t))
			}
		}
	}

	for t := 0; t <= horizon; t++ {
		occ := make(map[grid.Cell][]int)
		for _, a := range agents {
			path, ok := paths[a.ID]
			if !ok || t >= len(path) {
				continue
			}
			occ[path[t]] = append(occ[path[t]], a.ID)
		}
		for c, ids := range occ {
			if len(ids) > 1 {
				errs = append(errs, fmt.Errorf("cell %s occupied by agents %v at t=%d", c, ids, t))
			}
		}
	}

	for t := 0; t < horizon; t++ {
		for i := 0; i < len(agents); i++ {
			for j := i + 1; j < len(agents); j++ {
				a, b := agents[i], agents[j]
				pa, okA := paths[a.ID]
				pb, okB := paths[b.ID]
				if !okA || !okB {
					continue
				}
				if pa[t] == pb[t+1] && pb[t] == pa[t+1] && pa[t] != pb[t] {
					errs = append(errs, fmt.Errorf("agents %d and %d swap across edge %s<->%s at t=%d", a.ID, b.ID, pa[t], pb[t], t))
				}
			}
		}
	}

	if len(errs) > 0 {
		return ScheduleViolation(errs)
	}
	return nil
}

// isStepOrStay reports whether to is the same cell as from or one of
// its four cardinal unit neighbors — a dwell or a single-axis unit
// move, never a diagonal.
func isStepOrStay(from, to grid.Cell) bool {
	dx := from.X - to.X
	dy := from.Y - to.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return (dx == 0 && dy == 0) || (dx+dy == 1)
}
