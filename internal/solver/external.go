package solver

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/go-air/gini/z"
)

// assignment is a Model backed by an explicit truth table, as parsed
// from a solver's textual output.
type assignment map[z.Var]bool

func (a assignment) Value(m z.Lit) bool {
	v := a[m.Var()]
	if m.IsPos() {
		return v
	}
	return !v
}

// ParseSolverOutput consumes the standard textual output of a SAT
// solver: a status line beginning "s SATISFIABLE" or "s UNSATISFIABLE"
// and, on SAT, "v"-prefixed lines of signed integers terminated by 0.
// Comment lines ("c ...") and anything else are ignored.
func ParseSolverOutput(r io.Reader) (bool, Model, error) {
	var (
		sawStatus bool
		sat       bool
		model     = assignment{}
	)

	sc := bufio.NewScanner(r)
	// solvers that don't wrap their "v" lines can exceed the default
	// scanner token size on large formulas.
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, "s "):
			sawStatus = true
			switch strings.TrimSpace(strings.TrimPrefix(line, "s ")) {
			case "SATISFIABLE":
				sat = true
			case "UNSATISFIABLE":
				sat = false
			default:
				return false, nil, fmt.Errorf("unrecognized solver status line %q", line)
			}
		case strings.HasPrefix(line, "v "):
			for _, field := range strings.Fields(line[2:]) {
				n, err := strconv.Atoi(field)
				if err != nil {
					return false, nil, fmt.Errorf("malformed literal %q in solver output: %w", field, err)
				}
				if n == 0 {
					continue
				}
				m := z.Dimacs2Lit(n)
				model[m.Var()] = m.IsPos()
			}
		}
	}
	if err := sc.Err(); err != nil {
		return false, nil, err
	}

	if !sawStatus {
		return false, nil, errors.New("solver output contains no status line")
	}
	if sat && len(model) == 0 {
		return false, nil, errors.New("solver reported SATISFIABLE but emitted no model")
	}
	if !sat {
		return false, nil, nil
	}
	return true, model, nil
}

// ExecBackend is a Backend that runs an external SAT solver binary,
// feeding it the formula as DIMACS on stdin and parsing the textual
// status/model output from stdout. Conventional solver exit codes (10
// for SAT, 20 for UNSAT) are tolerated; the parsed status line is
// authoritative.
type ExecBackend struct {
	Path string
	Args []string
}

func (b ExecBackend) Solve(ctx context.Context, f *Formula) (bool, Model, error) {
	var in bytes.Buffer
	if err := f.WriteDIMACS(&in); err != nil {
		return false, nil, err
	}

	cmd := exec.CommandContext(ctx, b.Path, b.Args...)
	cmd.Stdin = &in
	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, nil, ctxErr
		}
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return false, nil, err
		}
	}
	return ParseSolverOutput(&out)
}
