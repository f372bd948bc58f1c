package bruteforce

import (
	"strconv"
	"strings"

	"github.com/mapf-sat/planner/internal/agent"
	"github.com/mapf-sat/planner/internal/grid"
)

// Exists reports whether a valid collision-free schedule exists for g,
// agents and horizon, found by exhaustive breadth-first search over
// the joint state space (one cell per agent) rather than
// the SAT encoding this package's caller is checking. It is only
// practical for small instances: the frontier can grow as large as
// |freeCells|^|agents| per time step.
func Exists(g *grid.Grid, agents agent.Set, horizon int) bool {
	starts := make([]grid.Cell, len(agents))
	goals := make([]grid.Cell, len(agents))
	for i, a := range agents {
		starts[i] = a.Start
		goals[i] = a.Goal
	}

	frontier := map[string][]grid.Cell{key(starts): starts}
	for t := 0; t < horizon; t++ {
		next := make(map[string][]grid.Cell, len(frontier))
		for _, state := range frontier {
			for _, succ := range successors(g, state) {
				next[key(succ)] = succ
			}
		}
		if len(next) == 0 {
			return false
		}
		frontier = next
	}

	_, reached := frontier[key(goals)]
	return reached
}

// successors enumerates every joint next state reachable from state in
// one step that keeps every agent on a free cell, keeps agents
// vertex-disjoint, and forbids edge swaps. Step legality (unit cardinal
// step or stay) is guaranteed by construction: every candidate comes
// from Grid.NeighborsWithStay.
func successors(g *grid.Grid, state []grid.Cell) [][]grid.Cell {
	candidates := perAgentMoves(g, state)
	var out [][]grid.Cell
	var visit func(idx int, next []grid.Cell)
	visit = func(idx int, next []grid.Cell) {
		if idx == len(state) {
			if vertexAndEdgeDisjoint(state, next) {
				row := make([]grid.Cell, len(next))
				copy(row, next)
				out = append(out, row)
			}
			return
		}
		for _, n := range candidates[idx] {
			next[idx] = n
			visit(idx+1, next)
		}
	}
	visit(0, make([]grid.Cell, len(state)))
	return out
}

// perAgentMoves returns, for each agent in state, the free cells it
// could occupy next (itself, or an in-bounds cardinal neighbor that
// isn't an obstacle).
func perAgentMoves(g *grid.Grid, state []grid.Cell) [][]grid.Cell {
	moves := make([][]grid.Cell, len(state))
	for i, c := range state {
		for _, n := range g.NeighborsWithStay(c) {
			if g.IsFree(n) {
				moves[i] = append(moves[i], n)
			}
		}
	}
	return moves
}

// vertexAndEdgeDisjoint reports whether moving every agent from prev to
// next in one step keeps the step collision-free: no two agents share a
// cell in next, and no two agents swap across an edge.
func vertexAndEdgeDisjoint(prev, next []grid.Cell) bool {
	seen := make(map[grid.Cell]struct{}, len(next))
	for _, c := range next {
		if _, dup := seen[c]; dup {
			return false
		}
		seen[c] = struct{}{}
	}
	for i := 0; i < len(next); i++ {
		for j := i + 1; j < len(next); j++ {
			if prev[i] == next[j] && prev[j] == next[i] && prev[i] != prev[j] {
				return false
			}
		}
	}
	return true
}

// key renders a joint state as a stable map key.
func key(cells []grid.Cell) string {
	var b strings.Builder
	for _, c := range cells {
		b.WriteString(strconv.Itoa(c.X))
		b.WriteByte(',')
		b.WriteString(strconv.Itoa(c.Y))
		b.WriteByte('|')
	}
	return b.String()
}
