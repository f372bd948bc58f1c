package solver

import "github.com/go-air/gini/z"

// assertAtMostOneSortingNetwork asserts that at most one of lits is
// true using a CardSort sorting-network circuit instead of pairwise
// clauses, trading the pairwise encoding's Θ(n²) clause count for
// Θ(n log²n) clauses plus auxiliary gate variables. Every literal in
// lits must already have been minted through bc.vars (and therefore
// through bc.vars.c), so the new gates it creates share that same
// variable numbering and can never collide with a position variable.
//
// CnfSince only Tseitinizes the portion of the circuit created since
// the last call (tracked by marks), so repeated calls across many
// (agent,time) groups stay incremental rather than re-emitting the
// whole circuit each time.
func assertAtMostOneSortingNetwork(bc *buildContext, lits []z.Lit) {
	if len(lits) < 2 {
		return
	}
	c := bc.vars.c
	clen := c.Len()
	cs := c.CardSort(lits)
	marks := make([]int8, clen, c.Len())
	for i := range marks {
		marks[i] = 1
	}
	_, _ = c.CnfSince(bc.formula, marks, cs.Leq(1))
	// CardSort pads its input to a power of two with the circuit's
	// false constant, and the constant's defining unit clause is never
	// emitted by CnfSince here (its node predates the network and is
	// marked). Assert it so the padded lanes stay false.
	bc.formula.Unit(c.T)
	bc.formula.Unit(cs.Leq(1))
}
