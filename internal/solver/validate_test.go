package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mapf-sat/planner/internal/agent"
	"github.com/mapf-sat/planner/internal/grid"
)

func schedule(horizon int, paths map[int][]grid.Cell) Schedule {
	return Schedule{Horizon: horizon, paths: paths}
}

func TestValidateAcceptsGoodSchedule(t *testing.T) {
	g, err := grid.New(2, 1)
	require.NoError(t, err)
	agents := agent.Set{{ID: 1, Start: grid.Cell{X: 0, Y: 0}, Goal: grid.Cell{X: 1, Y: 0}}}
	s := schedule(1, map[int][]grid.Cell{
		1: {{X: 0, Y: 0}, {X: 1, Y: 0}},
	})
	assert.NoError(t, Validate(s, g, agents, 1))
}

func TestValidateCatchesWrongStart(t *testing.T) {
	g, err := grid.New(2, 1)
	require.NoError(t, err)
	agents := agent.Set{{ID: 1, Start: grid.Cell{X: 0, Y: 0}, Goal: grid.Cell{X: 1, Y: 0}}}
	s := schedule(1, map[int][]grid.Cell{
		1: {{X: 1, Y: 0}, {X: 1, Y: 0}},
	})
	err = Validate(s, g, agents, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "starts at")
}

func TestValidateCatchesDiagonalStep(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	agents := agent.Set{{ID: 1, Start: grid.Cell{X: 0, Y: 0}, Goal: grid.Cell{X: 1, Y: 1}}}
	s := schedule(1, map[int][]grid.Cell{
		1: {{X: 0, Y: 0}, {X: 1, Y: 1}},
	})
	err = Validate(s, g, agents, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a unit cardinal move or stay")
}

func TestValidateCatchesVertexCollision(t *testing.T) {
	g, err := grid.New(2, 1)
	require.NoError(t, err)
	agents := agent.Set{
		{ID: 1, Start: grid.Cell{X: 0, Y: 0}, Goal: grid.Cell{X: 0, Y: 0}},
		{ID: 2, Start: grid.Cell{X: 1, Y: 0}, Goal: grid.Cell{X: 0, Y: 0}},
	}
	s := schedule(1, map[int][]grid.Cell{
		1: {{X: 0, Y: 0}, {X: 0, Y: 0}},
		2: {{X: 1, Y: 0}, {X: 0, Y: 0}},
	})
	err = Validate(s, g, agents, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "occupied by agents")
}

func TestValidateCatchesEdgeSwap(t *testing.T) {
	g, err := grid.New(2, 1)
	require.NoError(t, err)
	agents := agent.Set{
		{ID: 1, Start: grid.Cell{X: 0, Y: 0}, Goal: grid.Cell{X: 1, Y: 0}},
		{ID: 2, Start: grid.Cell{X: 1, Y: 0}, Goal: grid.Cell{X: 0, Y: 0}},
	}
	s := schedule(1, map[int][]grid.Cell{
		1: {{X: 0, Y: 0}, {X: 1, Y: 0}},
		2: {{X: 1, Y: 0}, {X: 0, Y: 0}},
	})
	err = Validate(s, g, agents, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "swap across edge")
}

func TestValidateCatchesObstacleOccupation(t *testing.T) {
	g, err := grid.New(2, 1, grid.Cell{X: 1, Y: 0})
	require.NoError(t, err)
	agents := agent.Set{{ID: 1, Start: grid.Cell{X: 0, Y: 0}, Goal: grid.Cell{X: 0, Y: 0}}}
	// bypass agent.Set.Validate (which would reject this) to exercise
	// Validate's own obstacle check directly.
	s := schedule(1, map[int][]grid.Cell{
		1: {{X: 0, Y: 0}, {X: 1, Y: 0}},
	})
	err = Validate(s, g, agents, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "occupies obstacle")
}
