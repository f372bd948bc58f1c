// Package solve implements the "mapf-plan solve" subcommand: it turns a
// flat set of CLI flags into a mapf.Plan call, printing either the
// resulting schedule or a "no solution" message.
package solve

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	mapf "github.com/mapf-sat/planner"
)

var (
	width, height, horizon int
	agentFlags             []string
	obstacleFlags          []string
	cardinalityFlag        = cardinalityValue("")
	dimacsOutPath          string
	solverPath             string
)

// cardinalityValue implements pflag.Value so an invalid
// --cardinality-encoding is rejected by cobra's flag parsing itself,
// before RunE ever runs.
type cardinalityValue string

func (v *cardinalityValue) String() string { return string(*v) }

func (v *cardinalityValue) Set(s string) error {
	switch s {
	case "", "pairwise", "sorting-network":
		*v = cardinalityValue(s)
		return nil
	default:
		return fmt.Errorf("must be pairwise or sorting-network, got %q", s)
	}
}

func (v *cardinalityValue) Type() string { return "string" }

var _ pflag.Value = (*cardinalityValue)(nil)

// NewCmd returns the "solve" subcommand, built the way
// cmd/operator-cli/bundle composes its own subcommands: package-level
// flag variables bound in the constructor, validated in RunE.
func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a multi-agent path finding instance",
		Long: `solve encodes a grid, agent set and horizon as a SAT formula and
prints a collision-free schedule, or reports that none exists within the
given horizon.

Example:
  $ mapf-plan solve --width 3 --height 3 --horizon 4 \
      --agent 0,0:2,2 --obstacle 1,1`,
		RunE: runSolve,
	}

	cmd.Flags().IntVar(&width, "width", 0, "grid width")
	cmd.Flags().IntVar(&height, "height", 0, "grid height")
	cmd.Flags().IntVar(&horizon, "horizon", 0, "time horizon T")
	cmd.Flags().StringArrayVar(&agentFlags, "agent", nil, `agent as "startX,startY:goalX,goalY", repeatable`)
	cmd.Flags().StringArrayVar(&obstacleFlags, "obstacle", nil, `obstacle cell as "x,y", repeatable`)
	cmd.Flags().Var(&cardinalityFlag, "cardinality-encoding", "at-most-one encoding: pairwise or sorting-network (default: automatic)")
	cmd.Flags().StringVar(&dimacsOutPath, "dimacs-out", "", "write the generated formula in DIMACS format to this path and exit without solving")
	cmd.Flags().StringVar(&solverPath, "solver", "", "path to an external DIMACS solver binary (default: built-in)")

	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	agents, err := parseAgents(agentFlags)
	if err != nil {
		return err
	}
	obstacles, err := parseCells(obstacleFlags)
	if err != nil {
		return err
	}

	opts, err := buildOptions()
	if err != nil {
		return err
	}

	planner, err := mapf.NewPlanner(width, height, agents, obstacles, horizon, opts...)
	if err != nil {
		return err
	}

	if dimacsOutPath != "" {
		return dumpDIMACS(planner)
	}

	sched, err := planner.Plan(context.Background())
	if err != nil {
		if errors.Is(err, mapf.ErrNoSolution) {
			fmt.Fprintf(cmd.OutOrStdout(), "no solution within horizon %d\n", horizon)
			os.Exit(2)
		}
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), sched.String())
	return nil
}

// dumpDIMACS writes the planner's formula to --dimacs-out and returns
// without ever calling Plan, satisfying the "exits without solving"
// contract of the --dimacs-out flag.
func dumpDIMACS(planner *mapf.Planner) error {
	f, err := os.Create(dimacsOutPath)
	if err != nil {
		return fmt.Errorf("opening --dimacs-out %q: %w", dimacsOutPath, err)
	}
	defer f.Close()

	if err := planner.EncodeDIMACS(f); err != nil {
		return err
	}
	log.Debugf("wrote DIMACS formula to %s", dimacsOutPath)
	return nil
}

func buildOptions() ([]mapf.Option, error) {
	var opts []mapf.Option

	switch cardinalityFlag {
	case "":
	case "pairwise":
		opts = append(opts, mapf.WithCardinalityEncoding(mapf.Pairwise))
	case "sorting-network":
		opts = append(opts, mapf.WithCardinalityEncoding(mapf.SortingNetwork))
	}

	if solverPath != "" {
		opts = append(opts, mapf.WithExternalSolver(solverPath))
	}

	return opts, nil
}

// parseAgents parses repeated "startX,startY:goalX,goalY" flags into an
// agent set, assigning ids in flag order starting at 1.
func parseAgents(flags []string) (mapf.Agents, error) {
	agents := make(mapf.Agents, 0, len(flags))
	for i, raw := range flags {
		parts := strings.SplitN(raw, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("--agent %q must be \"startX,startY:goalX,goalY\"", raw)
		}
		start, err := parseCell(parts[0])
		if err != nil {
			return nil, fmt.Errorf("--agent %q start: %w", raw, err)
		}
		goal, err := parseCell(parts[1])
		if err != nil {
			return nil, fmt.Errorf("--agent %q goal: %w", raw, err)
		}
		agents = append(agents, mapf.Agent{ID: i + 1, Start: start, Goal: goal})
	}
	return agents, nil
}

// parseCells parses repeated "x,y" flags into a cell slice.
func parseCells(flags []string) ([]mapf.Cell, error) {
	cells := make([]mapf.Cell, 0, len(flags))
	for _, raw := range flags {
		c, err := parseCell(raw)
		if err != nil {
			return nil, fmt.Errorf("--obstacle %q: %w", raw, err)
		}
		cells = append(cells, c)
	}
	return cells, nil
}

func parseCell(raw string) (mapf.Cell, error) {
	parts := strings.SplitN(raw, ",", 2)
	if len(parts) != 2 {
		return mapf.Cell{}, fmt.Errorf("%q must be \"x,y\"", raw)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return mapf.Cell{}, fmt.Errorf("%q: invalid x: %w", raw, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return mapf.Cell{}, fmt.Errorf("%q: invalid y: %w", raw, err)
	}
	return mapf.Cell{X: x, Y: y}, nil
}
