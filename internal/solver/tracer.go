package solver

import (
	"fmt"
	"io"
)

// EncodingReport describes one clause family's contribution to the
// formula, reported after it runs so a Tracer can log encoding
// progress without the builder functions taking a logger themselves.
type EncodingReport struct {
	Family      string
	ClauseCount int
	VarCount    int
}

// Tracer observes encoding and solving progress. The zero-cost
// DefaultTracer is used unless a caller supplies one via
// WithTracer.
type Tracer interface {
	TraceEncoding(r EncodingReport)
	TraceSolve(satisfiable bool, clauseCount, varCount int)
}

// DefaultTracer discards every event.
type DefaultTracer struct{}

func (DefaultTracer) TraceEncoding(EncodingReport) {}
func (DefaultTracer) TraceSolve(bool, int, int)    {}

// LoggingTracer writes a line per event to Writer, in the spirit of
// the source's plain-text progress output.
type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) TraceEncoding(r EncodingReport) {
	fmt.Fprintf(t.Writer, "encoded %s: %d clauses, %d variables so far\n", r.Family, r.ClauseCount, r.VarCount)
}

func (t LoggingTracer) TraceSolve(satisfiable bool, clauseCount, varCount int) {
	outcome := "SAT"
	if !satisfiable {
		outcome = "UNSAT"
	}
	fmt.Fprintf(t.Writer, "solved: %s (%d clauses, %d variables)\n", outcome, clauseCount, varCount)
}
