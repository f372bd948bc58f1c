package solver

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapf-sat/planner/internal/agent"
	"github.com/mapf-sat/planner/internal/grid"
	"github.com/mapf-sat/planner/internal/mapferr"
)

func TestNewRejectsInvalidInput(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	_, err = New(g, nil, 2)
	require.Error(t, err)
	var invalid mapferr.InvalidInput
	assert.ErrorAs(t, err, &invalid)
}

func TestPlanSingleAgentTrivial(t *testing.T) {
	// W=H=2, single agent (0,0)->(1,1), T=2: the smallest solvable diagonal.
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	agents := agent.Set{{ID: 1, Start: grid.Cell{X: 0, Y: 0}, Goal: grid.Cell{X: 1, Y: 1}}}

	p, err := New(g, agents, 2)
	require.NoError(t, err)

	sched, err := p.Plan(context.Background())
	require.NoError(t, err)
	assert.NoError(t, Validate(sched, g, agents, 2))
}

func TestPlanTooSmallHorizonIsNoSolution(t *testing.T) {
	// Concrete scenario 7: a diagonal move needs at least T=2 with 4-connectivity.
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	agents := agent.Set{{ID: 1, Start: grid.Cell{X: 0, Y: 0}, Goal: grid.Cell{X: 1, Y: 1}}}

	p, err := New(g, agents, 1)
	require.NoError(t, err)

	_, err = p.Plan(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, mapferr.ErrNoSolution))
}

func TestPlanImpossibleCorridorSwap(t *testing.T) {
	// Concrete scenario 3: a 1-row corridor swap has no passing lane.
	g, err := grid.New(3, 1)
	require.NoError(t, err)
	agents := agent.Set{
		{ID: 1, Start: grid.Cell{X: 0, Y: 0}, Goal: grid.Cell{X: 2, Y: 0}},
		{ID: 2, Start: grid.Cell{X: 2, Y: 0}, Goal: grid.Cell{X: 0, Y: 0}},
	}

	p, err := New(g, agents, 4)
	require.NoError(t, err)

	_, err = p.Plan(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, mapferr.ErrNoSolution))
}

func TestPlanPassable2x2Swap(t *testing.T) {
	// Concrete scenario 5: a 2x2 grid has room to route around a swap.
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	agents := agent.Set{
		{ID: 1, Start: grid.Cell{X: 0, Y: 0}, Goal: grid.Cell{X: 1, Y: 0}},
		{ID: 2, Start: grid.Cell{X: 1, Y: 0}, Goal: grid.Cell{X: 0, Y: 0}},
	}

	p, err := New(g, agents, 4)
	require.NoError(t, err)

	sched, err := p.Plan(context.Background())
	require.NoError(t, err)
	assert.NoError(t, Validate(sched, g, agents, 4))
}

func TestPlanWithDIMACSDumpWritesHeaderEvenOnUnsat(t *testing.T) {
	g, err := grid.New(2, 1)
	require.NoError(t, err)
	agents := agent.Set{
		{ID: 1, Start: grid.Cell{X: 0, Y: 0}, Goal: grid.Cell{X: 1, Y: 0}},
		{ID: 2, Start: grid.Cell{X: 1, Y: 0}, Goal: grid.Cell{X: 0, Y: 0}},
	}
	var buf bytes.Buffer

	p, err := New(g, agents, 3, WithDIMACSDump(&buf))
	require.NoError(t, err)

	_, _ = p.Plan(context.Background())
	assert.True(t, strings.HasPrefix(buf.String(), "p cnf "))
}

type stubBackend struct {
	sat   bool
	model Model
	err   error
}

func (s stubBackend) Solve(context.Context, *Formula) (bool, Model, error) {
	return s.sat, s.model, s.err
}

func TestPlanSurfacesSolverFailure(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	agents := agent.Set{{ID: 1, Start: grid.Cell{X: 0, Y: 0}, Goal: grid.Cell{X: 1, Y: 1}}}

	p, err := New(g, agents, 2, withBackend(stubBackend{err: errors.New("backend unreachable")}))
	require.NoError(t, err)

	_, err = p.Plan(context.Background())
	require.Error(t, err)
	var failure *mapferr.SolverFailure
	assert.ErrorAs(t, err, &failure)
}

func TestPlanAutoSelectsSortingNetworkAboveThreshold(t *testing.T) {
	// 21x21 exceeds LargeGridCellThreshold (400 cells); confirm the
	// planner picks SortingNetwork without an explicit option, and that
	// WithCardinalityEncoding still overrides it when given.
	g, err := grid.New(21, 21)
	require.NoError(t, err)
	agents := agent.Set{{ID: 1, Start: grid.Cell{X: 0, Y: 0}, Goal: grid.Cell{X: 1, Y: 0}}}

	p, err := New(g, agents, 1)
	require.NoError(t, err)
	assert.Equal(t, SortingNetwork, p.encoding)

	p2, err := New(g, agents, 1, WithCardinalityEncoding(Pairwise))
	require.NoError(t, err)
	assert.Equal(t, Pairwise, p2.encoding)
}
