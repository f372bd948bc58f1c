package solver

import (
	"fmt"

	"github.com/mapf-sat/planner/internal/agent"
	"github.com/mapf-sat/planner/internal/grid"
	"github.com/mapf-sat/planner/internal/mapferr"
)

// decode inverts a satisfying model into a Schedule. It only ever
// consults position variables (vars.inorder); any auxiliary gate
// variables a sorting-network cardinality encoding introduced are
// irrelevant to the result and never examined.
func decode(model Model, vars *varTable, agents agent.Set, horizon int, clauseCount int) (Schedule, error) {
	paths := make(map[int][]grid.Cell, len(agents))
	filled := make(map[int][]bool, len(agents))
	for _, a := range agents {
		paths[a.ID] = make([]grid.Cell, horizon+1)
		filled[a.ID] = make([]bool, horizon+1)
	}

	for _, k := range vars.inorder {
		m := vars.lits[k]
		if !model.Value(m) {
			continue
		}
		if _, ok := paths[k.Agent]; !ok {
			continue
		}
		paths[k.Agent][k.T] = k.Cell
		filled[k.Agent][k.T] = true
	}

	for _, a := range agents {
		for t := 0; t <= horizon; t++ {
			if !filled[a.ID][t] {
				return Schedule{}, &mapferr.InconsistentModel{
					AgentCount:  len(agents),
					Horizon:     horizon,
					ClauseCount: clauseCount,
					Detail:      fmt.Sprintf("missing position assignment for agent %d at time %d", a.ID, t),
				}
			}
		}
	}

	return Schedule{Horizon: horizon, paths: paths}, nil
}
