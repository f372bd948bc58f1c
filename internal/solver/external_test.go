package solver

import (
	"context"
	"runtime"
	"strings"
	"testing"

	"github.com/go-air/gini/z"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSolverOutputSatisfiable(t *testing.T) {
	out := strings.NewReader(`c a comment line
s SATISFIABLE
v 1 -2 3 0
`)
	sat, model, err := ParseSolverOutput(out)
	require.NoError(t, err)
	require.True(t, sat)

	assert.True(t, model.Value(z.Dimacs2Lit(1)))
	assert.False(t, model.Value(z.Dimacs2Lit(2)))
	assert.True(t, model.Value(z.Dimacs2Lit(-2)))
	assert.True(t, model.Value(z.Dimacs2Lit(3)))
}

func TestParseSolverOutputModelSpansMultipleLines(t *testing.T) {
	out := strings.NewReader(`s SATISFIABLE
v 1 2
v -3 0
`)
	sat, model, err := ParseSolverOutput(out)
	require.NoError(t, err)
	require.True(t, sat)
	assert.True(t, model.Value(z.Dimacs2Lit(2)))
	assert.False(t, model.Value(z.Dimacs2Lit(3)))
}

func TestParseSolverOutputUnsatisfiable(t *testing.T) {
	sat, model, err := ParseSolverOutput(strings.NewReader("s UNSATISFIABLE\n"))
	require.NoError(t, err)
	assert.False(t, sat)
	assert.Nil(t, model)
}

func TestParseSolverOutputRejectsGarbage(t *testing.T) {
	_, _, err := ParseSolverOutput(strings.NewReader("hello world\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no status line")

	_, _, err = ParseSolverOutput(strings.NewReader("s MAYBE\n"))
	require.Error(t, err)

	_, _, err = ParseSolverOutput(strings.NewReader("s SATISFIABLE\nv one 0\n"))
	require.Error(t, err)

	_, _, err = ParseSolverOutput(strings.NewReader("s SATISFIABLE\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no model")
}

func TestExecBackendParsesExternalSolverOutput(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}

	f := NewFormula(1)
	vt := newVarTable(1)
	f.Unit(vt.Lit(VarKey{Agent: 1, T: 0}))

	unsat := ExecBackend{Path: "sh", Args: []string{"-c", "cat >/dev/null; echo s UNSATISFIABLE"}}
	sat, _, err := unsat.Solve(context.Background(), f)
	require.NoError(t, err)
	assert.False(t, sat)

	yes := ExecBackend{Path: "sh", Args: []string{"-c", `cat >/dev/null; printf "s SATISFIABLE\nv 1 0\n"`}}
	sat, model, err := yes.Solve(context.Background(), f)
	require.NoError(t, err)
	require.True(t, sat)
	assert.True(t, model.Value(z.Dimacs2Lit(1)))
}
