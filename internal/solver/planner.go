package solver

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/mapf-sat/planner/internal/agent"
	"github.com/mapf-sat/planner/internal/grid"
	"github.com/mapf-sat/planner/internal/mapferr"
)

// LargeGridCellThreshold is the cell count above which Planner switches
// its default at-most-one encoding from Pairwise to SortingNetwork,
// unless a caller overrides the choice with WithCardinalityEncoding.
// The pairwise encoding costs a clause per cell pair per (agent,time);
// past roughly a 20x20 grid the sorting network is the cheaper choice.
const LargeGridCellThreshold = 400

// Planner owns a validated grid, agent set and horizon, and turns one
// Plan call into either a Schedule or a NoSolution/error outcome.
type Planner struct {
	grid    *grid.Grid
	agents  agent.Set
	horizon int

	encoding    CardinalityEncoding
	encodingSet bool

	logger    logrus.FieldLogger
	tracer    Tracer
	backend   Backend
	dimacsOut io.Writer
}

// Option configures a Planner at construction time.
type Option func(*Planner) error

// WithLogger overrides the logrus.FieldLogger a Planner emits Debug
// events on. The default is logrus.StandardLogger().
func WithLogger(l logrus.FieldLogger) Option {
	return func(p *Planner) error {
		p.logger = l
		return nil
	}
}

// WithTracer overrides the Tracer a Planner reports encoding and
// solve progress to. The default is DefaultTracer{}, which discards
// every event.
func WithTracer(t Tracer) Option {
	return func(p *Planner) error {
		p.tracer = t
		return nil
	}
}

// WithCardinalityEncoding pins the at-most-one encoding the
// exactly-one-position and vertex non-collision families use,
// overriding the automatic choice based on LargeGridCellThreshold.
func WithCardinalityEncoding(enc CardinalityEncoding) Option {
	return func(p *Planner) error {
		p.encoding = enc
		p.encodingSet = true
		return nil
	}
}

// WithDIMACSDump causes Plan to write the generated formula to w in
// DIMACS CNF format before invoking the solver backend.
func WithDIMACSDump(w io.Writer) Option {
	return func(p *Planner) error {
		p.dimacsOut = w
		return nil
	}
}

// WithExternalSolver replaces the in-process solver with an external
// binary driven over the DIMACS text contract: the formula is written
// to the command's stdin and the "s"/"v" status and model lines are
// parsed from its stdout.
func WithExternalSolver(path string, args ...string) Option {
	return func(p *Planner) error {
		p.backend = ExecBackend{Path: path, Args: args}
		return nil
	}
}

// withBackend overrides the Backend a Planner solves with. Unexported:
// it exists so tests can substitute a stub Backend without pulling
// gini into every test. Callers outside this package replace the
// in-process solver only through WithExternalSolver.
func withBackend(b Backend) Option {
	return func(p *Planner) error {
		p.backend = b
		return nil
	}
}

// New constructs a Planner for the given grid, agent set and horizon,
// validating every input precondition before any encoding work begins.
// A validation failure returns mapferr.InvalidInput and a nil Planner;
// the caller has nothing further to do with it.
func New(g *grid.Grid, agents agent.Set, horizon int, opts ...Option) (*Planner, error) {
	if err := agents.Validate(g, horizon); err != nil {
		return nil, err
	}

	p := &Planner{
		grid:    g,
		agents:  agents,
		horizon: horizon,
		logger:  logrus.StandardLogger(),
		tracer:  DefaultTracer{},
		backend: NewGiniBackend(),
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}
	if !p.encodingSet && len(g.Cells()) > LargeGridCellThreshold {
		p.encoding = SortingNetwork
	}
	return p, nil
}

// encode runs the six clause families in fixed order and returns
// the resulting variable table and formula, logging a Debug summary
// through the Planner's logger.
func (p *Planner) encode() (*varTable, *Formula) {
	log := p.logger.WithFields(logrus.Fields{
		"agents":  len(p.agents),
		"horizon": p.horizon,
		"grid":    p.grid.String(),
	})

	clauseHint := len(p.agents) * (p.horizon + 1) * len(p.grid.Cells())
	vars := newVarTable(clauseHint)
	formula := NewFormula(clauseHint)
	bc := &buildContext{
		grid:     p.grid,
		agents:   p.agents,
		horizon:  p.horizon,
		vars:     vars,
		formula:  formula,
		encoding: p.encoding,
		tracer:   p.tracer,
	}
	buildAllTraced(bc)

	log.WithFields(logrus.Fields{
		"clauses":   formula.NumClauses(),
		"variables": vars.Len(),
	}).Debug("encoded mapf formula")
	return vars, formula
}

// EncodeDIMACS builds the formula and writes it to w in DIMACS format
// without ever invoking the solver backend, for CLI front-ends that
// dump the formula and exit without solving.
func (p *Planner) EncodeDIMACS(w io.Writer) error {
	_, formula := p.encode()
	if err := formula.WriteDIMACS(w); err != nil {
		return &mapferr.SolverFailure{Err: err}
	}
	return nil
}

// Plan runs the six clause families in fixed order, hands the
// resulting Formula to the solver Backend, and returns either a decoded
// Schedule or mapferr.ErrNoSolution. InconsistentModel and
// SolverFailure propagate as fatal errors.
func (p *Planner) Plan(ctx context.Context) (Schedule, error) {
	vars, formula := p.encode()

	if p.dimacsOut != nil {
		if err := formula.WriteDIMACS(p.dimacsOut); err != nil {
			return Schedule{}, &mapferr.SolverFailure{Err: err}
		}
	}

	sat, model, err := p.backend.Solve(ctx, formula)
	if err != nil {
		return Schedule{}, &mapferr.SolverFailure{Err: err}
	}
	p.tracer.TraceSolve(sat, formula.NumClauses(), vars.Len())

	if !sat {
		p.logger.Debug("no schedule exists within the given horizon")
		return Schedule{}, mapferr.ErrNoSolution
	}

	sched, err := decode(model, vars, p.agents, p.horizon, formula.NumClauses())
	if err != nil {
		return Schedule{}, err
	}
	p.logger.Debug("decoded satisfying schedule")
	return sched, nil
}
