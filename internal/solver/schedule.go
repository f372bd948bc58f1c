package solver

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mapf-sat/planner/internal/grid"
)

// Schedule maps an agent id to its sequence of occupied cells, index
// t holding the agent's cell at time t. Every sequence has length
// Horizon+1.
type Schedule struct {
	Horizon int
	paths   map[int][]grid.Cell
}

// Path returns the cell sequence for agentID and whether it exists.
func (s Schedule) Path(agentID int) ([]grid.Cell, bool) {
	p, ok := s.paths[agentID]
	return p, ok
}

// AgentIDs returns every agent id present in the schedule, sorted.
func (s Schedule) AgentIDs() []int {
	ids := make([]int, 0, len(s.paths))
	for id := range s.paths {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// String renders one line per agent: "agent#<id>: (x,y) -> (x,y) -> ...".
func (s Schedule) String() string {
	var b strings.Builder
	for _, id := range s.AgentIDs() {
		cells := make([]string, len(s.paths[id]))
		for i, c := range s.paths[id] {
			cells[i] = c.String()
		}
		fmt.Fprintf(&b, "agent#%d: %s\n", id, strings.Join(cells, " -> "))
	}
	return b.String()
}
