// Package mapf is the public facade of the planner: build a Grid and an
// agent Set, call Plan, and get back a collision-free Schedule or a
// NoSolution outcome. It re-exports the planning surface of the
// internal grid, agent and solver packages as a single entry point.
package mapf

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/mapf-sat/planner/internal/agent"
	"github.com/mapf-sat/planner/internal/grid"
	"github.com/mapf-sat/planner/internal/mapferr"
	"github.com/mapf-sat/planner/internal/solver"
)

type (
	// Cell is a grid position; see internal/grid for its operations.
	Cell = grid.Cell
	// Grid is the immutable world geometry a Plan call solves over.
	Grid = grid.Grid
	// Agent is a single robot with an id, a start cell and a goal cell.
	Agent = agent.Agent
	// Agents is the ordered set of agents a Plan call solves for.
	Agents = agent.Set
	// Schedule maps each agent id to its per-timestep cell sequence.
	Schedule = solver.Schedule
	// Option configures a Plan call; see With* below.
	Option = solver.Option
	// CardinalityEncoding selects how the at-most-one constraints are
	// expressed; see solver.Pairwise and solver.SortingNetwork.
	CardinalityEncoding = solver.CardinalityEncoding
	// Tracer observes encoding and solve progress.
	Tracer = solver.Tracer
	// Planner is a constructed, reusable planning object. Most callers
	// should use Plan instead; NewPlanner is for callers that need
	// EncodeDIMACS without necessarily invoking the solver.
	Planner = solver.Planner
)

const (
	// Pairwise emits a binary clause per cell pair, as the source does.
	Pairwise = solver.Pairwise
	// SortingNetwork trades clause count for auxiliary variables via a
	// CardSort circuit.
	SortingNetwork = solver.SortingNetwork
	// LargeGridCellThreshold is the cell count past which Plan
	// auto-selects SortingNetwork unless WithCardinalityEncoding pins
	// the choice explicitly.
	LargeGridCellThreshold = solver.LargeGridCellThreshold
)

// ErrNoSolution is returned by Plan when no schedule exists within the
// requested horizon. This is a normal outcome, not a failure: test for
// it with errors.Is, never by inspecting a distinct return shape.
var ErrNoSolution = mapferr.ErrNoSolution

// NewGrid constructs a Grid, validating W,H >= 1 and every obstacle in
// bounds before Plan ever sees it.
func NewGrid(width, height int, obstacles ...Cell) (*Grid, error) {
	return grid.New(width, height, obstacles...)
}

// WithLogger overrides the logrus.FieldLogger Plan emits Debug events on.
func WithLogger(l logrus.FieldLogger) Option { return solver.WithLogger(l) }

// WithTracer overrides the Tracer Plan reports encoding and solve
// progress to.
func WithTracer(t Tracer) Option { return solver.WithTracer(t) }

// WithCardinalityEncoding pins the at-most-one encoding the planner uses.
func WithCardinalityEncoding(enc CardinalityEncoding) Option {
	return solver.WithCardinalityEncoding(enc)
}

// WithDIMACSDump causes Plan to write the generated formula to w in
// DIMACS CNF format before invoking the solver.
func WithDIMACSDump(w io.Writer) Option { return solver.WithDIMACSDump(w) }

// WithExternalSolver replaces the in-process solver with an external
// binary that reads DIMACS on stdin and writes "s"/"v" result lines to
// stdout.
func WithExternalSolver(path string, args ...string) Option {
	return solver.WithExternalSolver(path, args...)
}

// NewPlanner builds a Grid from width, height and obstacles and
// constructs a Planner over it, validating every input precondition
// before any encoding work begins.
func NewPlanner(width, height int, agents Agents, obstacles []Cell, horizon int, opts ...Option) (*Planner, error) {
	g, err := grid.New(width, height, obstacles...)
	if err != nil {
		return nil, mapferr.InvalidInput{err}
	}
	return solver.New(g, agents, horizon, opts...)
}

// Plan is the one-call entry point: it builds the grid, validates every
// precondition, encodes the six clause families, solves, and decodes.
// Any precondition violation is returned as mapferr.InvalidInput before
// any encoding work begins.
func Plan(ctx context.Context, width, height int, agents Agents, obstacles []Cell, horizon int, opts ...Option) (Schedule, error) {
	p, err := NewPlanner(width, height, agents, obstacles, horizon, opts...)
	if err != nil {
		return Schedule{}, err
	}
	return p.Plan(ctx)
}
