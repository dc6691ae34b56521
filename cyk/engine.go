package cyk

import (
	"fmt"

	"github.com/nihei9/ecparse/ecerr"
	"github.com/nihei9/ecparse/grammar"
	"github.com/nihei9/ecparse/grammar/symbol"
)

// Result is the outcome of Parse: the filled matrix and index (for
// tree reconstruction) together with the answer's total edit cost.
type Result struct {
	Matrix *Matrix
	Index  *Index
	Cost   int

	// Empty is set when w had length 0: the matrix has no valid span
	// to reconstruct a tree from, so Corrected already holds the
	// answer directly (SPEC_FULL.md §4.5).
	Empty     bool
	Corrected []rune
}

// Parse runs the weighted CYK algorithm of spec.md §4.5 over w against
// the UnitFree grammar g, filling the parse matrix in increasing span
// order and returning the minimum edit cost for the start symbol to
// span the whole input.
func Parse(g *grammar.Grammar, w []rune) (*Result, error) {
	if g.State() != grammar.StateUnitFree {
		return nil, fmt.Errorf("cyk: grammar must be UnitFree, got %v", g.State())
	}

	n := len(w)
	if n == 0 {
		cost, corrected, ok := g.EmptyInputDerivation()
		if !ok {
			return nil, ecerr.New(ecerr.NoDerivation, fmt.Errorf("empty input has no derivation in this grammar"))
		}
		return &Result{Cost: cost, Empty: true, Corrected: corrected}, nil
	}

	m := NewMatrix(n)
	x := NewIndex()

	terminalRules := g.TerminalRules()
	for i := 1; i <= n; i++ {
		c := w[i-1]
		for _, r := range terminalRules {
			if r.Terminal.Rune() != c {
				continue
			}
			m.Insert(r.LHS, i, i+1, r.Errors)
			x.Insert(r.LHS, i, i+1, r.Errors)
		}

		// H and I absorb one arbitrary input character at cost 1
		// regardless of chars(G): the covering grammar only seeds
		// "I -> c" for c in chars(G) (original_source's
		// construct_covering does the same, and unit-elimination folds
		// "H -> I" into the same set of characters for H), but a
		// character never seen in the grammar at all must still be
		// deletable. Matching both against any rune here, rather than
		// only statically registered ones, is what makes deletion of
		// out-of-alphabet input possible.
		m.Insert(symbol.I, i, i+1, 1)
		x.Insert(symbol.I, i, i+1, 1)
		m.Insert(symbol.H, i, i+1, 1)
		x.Insert(symbol.H, i, i+1, 1)
	}

	binaryRules := g.BinaryRules()
	boundary := n + 1
	for s := 2; s <= n; s++ {
		for _, r := range binaryRules {
			for _, e := range x.GetAll(r.Left, s, boundary) {
				i, k, l1 := e.I, e.J, e.Cost
				j := i + s
				l2, ok := m.Cost(k, j, r.Right)
				if !ok {
					continue
				}
				total := l1 + l2 + r.Errors
				m.Insert(r.LHS, i, j, total)
				x.Insert(r.LHS, i, j, total)
			}
		}
	}

	cost, ok := m.Cost(1, n+1, symbol.Start)
	if !ok {
		return nil, ecerr.New(ecerr.NoDerivation, fmt.Errorf("no derivation of the start symbol spans the whole input"))
	}
	return &Result{Matrix: m, Index: x, Cost: cost}, nil
}
