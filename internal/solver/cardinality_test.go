package solver

import (
	"testing"

	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
	"github.com/stretchr/testify/assert"
)

func TestAssertAtMostOneSortingNetworkSkipsTrivialInputs(t *testing.T) {
	c := logic.NewCCap(8)
	bc := &buildContext{vars: &varTable{c: c}, formula: NewFormula(4)}

	assertAtMostOneSortingNetwork(bc, nil)
	assert.Equal(t, 0, bc.formula.NumClauses())

	assertAtMostOneSortingNetwork(bc, []z.Lit{c.Lit()})
	assert.Equal(t, 0, bc.formula.NumClauses(), "a single literal has nothing to be at-most-one with")
}

func TestAssertAtMostOneSortingNetworkAssertsLeqOne(t *testing.T) {
	c := logic.NewCCap(8)
	bc := &buildContext{vars: &varTable{c: c}, formula: NewFormula(8)}

	lits := []z.Lit{c.Lit(), c.Lit(), c.Lit()}
	assertAtMostOneSortingNetwork(bc, lits)

	assert.Greater(t, bc.formula.NumClauses(), 0, "a real at-most-one constraint must emit clauses")
}
