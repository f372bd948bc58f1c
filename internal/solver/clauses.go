package solver

import (
	"github.com/go-air/gini/z"

	"github.com/mapf-sat/planner/internal/agent"
	"github.com/mapf-sat/planner/internal/grid"
)

// CardinalityEncoding selects how the "at most one" half of the
// exactly-one-position constraint (and the vertex non-collision
// pairs) is expressed.
type CardinalityEncoding int

const (
	// Pairwise emits a binary clause per pair, exactly as the
	// source system does. Θ(|C|²) clauses per (agent,time).
	Pairwise CardinalityEncoding = iota
	// SortingNetwork builds a CardSort circuit and asserts Leq(1),
	// trading clause count for extra auxiliary variables. See
	// cardinality.go.
	SortingNetwork
)

// buildContext carries everything the clause-family builders need. It is
// constructed once per Plan call and threaded through every builder
// function rather than stored as solver method receivers, so each
// constraint family can be tested in isolation.
type buildContext struct {
	grid     *grid.Grid
	agents   agent.Set
	horizon  int
	vars     *varTable
	formula  *Formula
	encoding CardinalityEncoding
	tracer   Tracer
}

// lit is a convenience shorthand for vars.Lit(VarKey{...}).
func (bc *buildContext) lit(agentID int, c grid.Cell, t int) z.Lit {
	return bc.vars.Lit(VarKey{Agent: agentID, Cell: c, T: t})
}

// buildAllTraced runs the clause families in a fixed order, from
// initial placement through edge non-collision, reporting an
// EncodingReport to bc.tracer after each so a LoggingTracer can show
// per-family clause growth on large grids (see tracer.go).
// The order has no semantic effect on the resulting
// formula but is kept fixed for inspectability.
func buildAllTraced(bc *buildContext) {
	families := []struct {
		name string
		fn   func(*buildContext)
	}{
		{"initial-placement", buildInitialPlacement},
		{"goal-placement", buildGoalPlacement},
		{"obstacle-exclusion", buildObstacleExclusion},
		{"exactly-one-position", buildExactlyOnePosition},
		{"kinematic-continuity", buildKinematicContinuity},
		{"vertex-non-collision", buildVertexNonCollision},
		{"edge-non-collision", buildEdgeNonCollision},
	}
	for _, fam := range families {
		fam.fn(bc)
		bc.tracer.TraceEncoding(EncodingReport{
			Family:      fam.name,
			ClauseCount: bc.formula.NumClauses(),
			VarCount:    bc.vars.Len(),
		})
	}
}

// buildInitialPlacement pins every agent to its start cell at t=0.
func buildInitialPlacement(bc *buildContext) {
	cells := bc.grid.Cells()
	for _, a := range bc.agents {
		bc.formula.Unit(bc.lit(a.ID, a.Start, 0))
		for _, c := range cells {
			if c == a.Start {
				continue
			}
			bc.formula.Unit(bc.lit(a.ID, c, 0).Not())
		}
	}
}

// buildGoalPlacement pins every agent to its goal cell at t=T.
func buildGoalPlacement(bc *buildContext) {
	cells := bc.grid.Cells()
	for _, a := range bc.agents {
		bc.formula.Unit(bc.lit(a.ID, a.Goal, bc.horizon))
		for _, c := range cells {
			if c == a.Goal {
				continue
			}
			bc.formula.Unit(bc.lit(a.ID, c, bc.horizon).Not())
		}
	}
}

// buildObstacleExclusion forbids any agent from ever occupying an
// obstacle cell, at any time.
func buildObstacleExclusion(bc *buildContext) {
	obstacles := bc.grid.Obstacles()
	for _, a := range bc.agents {
		for t := 0; t <= bc.horizon; t++ {
			for _, c := range obstacles {
				bc.formula.Unit(bc.lit(a.ID, c, t).Not())
			}
		}
	}
}

// buildExactlyOnePosition asserts that each agent occupies exactly
// one cell at each time: an "at least one" clause over every in-bounds
// cell, plus an "at most one" encoding selected by bc.encoding.
func buildExactlyOnePosition(bc *buildContext) {
	cells := bc.grid.Cells()
	for _, a := range bc.agents {
		for t := 0; t <= bc.horizon; t++ {
			lits := make([]z.Lit, len(cells))
			for i, c := range cells {
				lits[i] = bc.lit(a.ID, c, t)
			}
			bc.formula.Clause(lits...)
			atMostOne(bc, lits)
		}
	}
}

// atMostOne asserts that no two literals in lits are both true, using
// the encoding bc.encoding selects.
func atMostOne(bc *buildContext, lits []z.Lit) {
	switch bc.encoding {
	case SortingNetwork:
		assertAtMostOneSortingNetwork(bc, lits)
	default:
		assertAtMostOnePairwise(bc, lits)
	}
}

func assertAtMostOnePairwise(bc *buildContext, lits []z.Lit) {
	for i := 0; i < len(lits); i++ {
		for j := i + 1; j < len(lits); j++ {
			bc.formula.Clause(lits[i].Not(), lits[j].Not())
		}
	}
}

// buildKinematicContinuity asserts that occupying c at time t
// implies occupying c itself or one of its in-bounds cardinal
// neighbors at t+1. Obstacles are intentionally not filtered out of
// the neighbor set here; obstacle exclusion already forbids an agent from standing on
// one, and filtering here would only duplicate that proof obligation.
func buildKinematicContinuity(bc *buildContext) {
	for _, a := range bc.agents {
		for t := 0; t < bc.horizon; t++ {
			for _, c := range bc.grid.Cells() {
				neighbors := bc.grid.NeighborsWithStay(c)
				clause := make([]z.Lit, 0, len(neighbors)+1)
				clause = append(clause, bc.lit(a.ID, c, t).Not())
				for _, n := range neighbors {
					clause = append(clause, bc.lit(a.ID, n, t+1))
				}
				bc.formula.Clause(clause...)
			}
		}
	}
}

// buildVertexNonCollision forbids two agents from occupying the
// same cell at the same time: at most one of the per-agent position
// variables for each (cell, time) may hold.
func buildVertexNonCollision(bc *buildContext) {
	if len(bc.agents) < 2 {
		return
	}
	for t := 0; t <= bc.horizon; t++ {
		for _, c := range bc.grid.Cells() {
			lits := make([]z.Lit, len(bc.agents))
			for i, a := range bc.agents {
				lits[i] = bc.lit(a.ID, c, t)
			}
			atMostOne(bc, lits)
		}
	}
}

// buildEdgeNonCollision forbids two agents from swapping cells
// across a shared edge in a single step.
func buildEdgeNonCollision(bc *buildContext) {
	for t := 0; t < bc.horizon; t++ {
		for _, c1 := range bc.grid.Cells() {
			for _, c2 := range cardinalNeighbors(bc.grid, c1) {
				for i := 0; i < len(bc.agents); i++ {
					for j := i + 1; j < len(bc.agents); j++ {
						a, b := bc.agents[i], bc.agents[j]
						bc.formula.Clause(
							bc.lit(a.ID, c1, t).Not(),
							bc.lit(b.ID, c2, t).Not(),
							bc.lit(a.ID, c2, t+1).Not(),
							bc.lit(b.ID, c1, t+1).Not(),
						)
					}
				}
			}
		}
	}
}

// cardinalNeighbors returns the in-bounds cardinal (non-self) neighbors
// of c, reusing Grid.NeighborsWithStay and dropping the stay entry.
func cardinalNeighbors(g *grid.Grid, c grid.Cell) []grid.Cell {
	all := g.NeighborsWithStay(c)
	out := make([]grid.Cell, 0, len(all)-1)
	for _, n := range all {
		if n != c {
			out = append(out, n)
		}
	}
	return out
}
