package solver

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormulaClauseAndUnit(t *testing.T) {
	vt := newVarTable(4)
	f := NewFormula(4)

	a := vt.Lit(VarKey{Agent: 1, T: 0})
	b := vt.Lit(VarKey{Agent: 1, T: 1})

	f.Unit(a)
	f.Clause(a.Not(), b)

	assert.Equal(t, 2, f.NumClauses())
	assert.Equal(t, b.Var(), f.MaxVar())
}

func TestFormulaAddStreamingProtocol(t *testing.T) {
	vt := newVarTable(4)
	f := NewFormula(4)

	a := vt.Lit(VarKey{Agent: 1, T: 0})
	b := vt.Lit(VarKey{Agent: 1, T: 1})

	f.Add(a)
	f.Add(b.Not())
	f.Add(0) // z.LitNull ends the clause

	require.Equal(t, 1, f.NumClauses())
	assert.Len(t, f.Clauses()[0], 2)
}

func TestFormulaEmptyClauseIsNoOp(t *testing.T) {
	f := NewFormula(1)
	f.Clause()
	assert.Equal(t, 0, f.NumClauses())
}

func TestWriteDIMACSFormat(t *testing.T) {
	vt := newVarTable(4)
	f := NewFormula(4)

	a := vt.Lit(VarKey{Agent: 1, T: 0})
	b := vt.Lit(VarKey{Agent: 1, T: 1})
	f.Clause(a, b.Not())
	f.Unit(a)

	var buf strings.Builder
	require.NoError(t, f.WriteDIMACS(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	// the circuit reserves a variable for its true constant, so the
	// header counts up to the highest minted variable, not the number
	// of position variables.
	assert.Equal(t, fmt.Sprintf("p cnf %d 2", b.Var()), lines[0])
	assert.True(t, strings.HasSuffix(lines[1], "0"))
	assert.True(t, strings.HasSuffix(lines[2], "0"))
}
