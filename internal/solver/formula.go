package solver

import (
	"bufio"
	"fmt"
	"io"

	"github.com/go-air/gini/z"
)

// Formula is an in-memory CNF clause sink. It implements inter.Adder
// so it can be handed directly to (*logic.C).ToCnf / CnfSince as the
// destination for a Tseitinized circuit, and it doubles as the
// DIMACS export path.
type Formula struct {
	clauses [][]z.Lit
	pending []z.Lit
	maxVar  z.Var
}

// NewFormula returns an empty Formula with capacity for roughly
// clauseHint clauses.
func NewFormula(clauseHint int) *Formula {
	return &Formula{clauses: make([][]z.Lit, 0, clauseHint)}
}

// Add implements inter.Adder. A z.LitNull literal ends the clause
// currently being accumulated.
func (f *Formula) Add(m z.Lit) {
	if m == z.LitNull {
		if len(f.pending) > 0 {
			f.clauses = append(f.clauses, f.pending)
			f.pending = nil
		}
		return
	}
	f.track(m)
	f.pending = append(f.pending, m)
}

// Clause appends a complete clause in one call; it is the form every
// clause-family builder uses instead of the Add/LitNull
// streaming protocol, since each clause is already fully formed when
// it is produced.
func (f *Formula) Clause(lits ...z.Lit) {
	if len(lits) == 0 {
		return
	}
	cl := make([]z.Lit, len(lits))
	copy(cl, lits)
	for _, m := range cl {
		f.track(m)
	}
	f.clauses = append(f.clauses, cl)
}

// Unit appends a single-literal clause.
func (f *Formula) Unit(m z.Lit) {
	f.Clause(m)
}

func (f *Formula) track(m z.Lit) {
	if v := m.Var(); v > f.maxVar {
		f.maxVar = v
	}
}

// NumClauses reports how many clauses have been recorded.
func (f *Formula) NumClauses() int {
	return len(f.clauses)
}

// MaxVar reports the highest variable number referenced by any
// clause added so far.
func (f *Formula) MaxVar() z.Var {
	return f.maxVar
}

// Clauses returns the recorded clauses. The returned slices must not
// be mutated by the caller.
func (f *Formula) Clauses() [][]z.Lit {
	return f.clauses
}

// WriteDIMACS serializes the formula in the standard DIMACS CNF text
// format: a "p cnf <vars> <clauses>" header followed by one
// space-separated, zero-terminated line of signed integers per
// clause.
func (f *Formula) WriteDIMACS(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", f.maxVar, len(f.clauses)); err != nil {
		return err
	}
	for _, cl := range f.clauses {
		for _, m := range cl {
			n := int64(m.Var())
			if !m.IsPos() {
				n = -n
			}
			if _, err := fmt.Fprintf(bw, "%d ", n); err != nil {
				return err
			}
		}
		if _, err := bw.WriteString("0\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
