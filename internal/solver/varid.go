package solver

import (
	"fmt"

	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/mapf-sat/planner/internal/grid"
)

// VarKey identifies a single Boolean decision variable: "agent is at
// cell at time t". It is the atomic unit every clause family is
// expressed over.
type VarKey struct {
	Agent int
	Cell  grid.Cell
	T     int
}

func (k VarKey) String() string {
	return fmt.Sprintf("x[a=%d,%s,t=%d]", k.Agent, k.Cell, k.T)
}

// varTable mints and translates between VarKeys and the literals of a
// single shared logic circuit. Every position variable the encoder
// will ever reference is allocated through here, so the circuit's own
// gate variables (created later by Or/CardSort) never collide with a
// position variable's number: both come from the same allocator.
type varTable struct {
	c       *logic.C
	lits    map[VarKey]z.Lit
	keys    map[z.Var]VarKey
	inorder []VarKey
}

func newVarTable(capHint int) *varTable {
	return &varTable{
		c:    logic.NewCCap(capHint),
		lits: make(map[VarKey]z.Lit, capHint),
		keys: make(map[z.Var]VarKey, capHint),
	}
}

// Lit returns the literal for k, minting a fresh one on first use.
func (vt *varTable) Lit(k VarKey) z.Lit {
	if m, ok := vt.lits[k]; ok {
		return m
	}
	m := vt.c.Lit()
	vt.lits[k] = m
	vt.keys[m.Var()] = k
	vt.inorder = append(vt.inorder, k)
	return m
}

// KeyOf returns the VarKey a literal was minted for, and whether one
// exists (it will not for literals produced internally by the
// circuit, e.g. sorting-network gates).
func (vt *varTable) KeyOf(m z.Lit) (VarKey, bool) {
	k, ok := vt.keys[m.Var()]
	return k, ok
}

// Len reports how many distinct position variables have been minted.
func (vt *varTable) Len() int {
	return len(vt.inorder)
}
