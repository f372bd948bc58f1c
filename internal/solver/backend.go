package solver

import (
	"context"
	"errors"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// Model is a satisfying assignment: Value reports the truth value a
// solver assigned to a literal's underlying variable.
type Model interface {
	Value(m z.Lit) bool
}

// Backend is the black-box SAT oracle a Formula is handed to. The
// default implementation is giniBackend; ExecBackend drives an
// external solver process over the same contract. The interface keeps
// the encoder and decoder independent of any particular solver
// engine: the root github.com/go-air/gini package is imported only in
// this file, while the rest of the package uses gini's z literal type
// and logic circuit builder.
type Backend interface {
	// Solve loads every clause in f and returns whether it is
	// satisfiable, together with a Model valid only when it is.
	// It returns ctx.Err() if ctx is cancelled before a result is
	// reached. Errors are returned bare; the Planner wraps them in
	// the failure type it reports.
	Solve(ctx context.Context, f *Formula) (sat bool, model Model, err error)
}

// giniBackend adapts github.com/go-air/gini's incremental solver to
// Backend.
type giniBackend struct{}

// NewGiniBackend returns the default Backend, backed by gini.
func NewGiniBackend() Backend {
	return giniBackend{}
}

func (giniBackend) Solve(ctx context.Context, f *Formula) (bool, Model, error) {
	g := gini.New()
	for _, cl := range f.Clauses() {
		for _, m := range cl {
			g.Add(m)
		}
		g.Add(z.LitNull)
	}

	handle := g.GoSolve()
	done := make(chan int, 1)
	go func() { done <- handle.Wait() }()

	select {
	case <-ctx.Done():
		handle.Stop()
		return false, nil, ctx.Err()
	case outcome := <-done:
		switch outcome {
		case satisfiable:
			return true, g, nil
		case unsatisfiable:
			return false, nil, nil
		default:
			return false, nil, errors.New("gini returned an undetermined result")
		}
	}
}
