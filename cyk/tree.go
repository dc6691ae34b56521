package cyk

import (
	"fmt"

	"github.com/nihei9/ecparse/ecerr"
	"github.com/nihei9/ecparse/grammar"
	"github.com/nihei9/ecparse/grammar/symbol"
)

// Node is a parse tree node over a Matrix span (spec.md §4.6). Leaf
// nodes carry the single matched input character; interior nodes carry
// the two constituents of a binary production.
type Node struct {
	I, J        int
	LHS         symbol.Symbol
	Cost        int
	Leaf        bool
	Terminal    symbol.Symbol
	Left, Right *Node
}

// BuildTree reconstructs the parse tree witnessing that lhs derives
// w[i-1:j-1] at the given cost, starting from the start symbol's
// answer at (1, n+1). It walks the matrix top-down, at each interior
// span searching for a split point and binary production whose costs
// sum to the recorded cost.
//
// The original algorithm this is grounded on (original_source's
// error_parser.py) signals a found split by raising an exception
// (BreakIt) out of a doubly-nested loop. In Go the equivalent is a
// plain early return: firstSplit's nested loop returns as soon as it
// finds a matching split, no sentinel error type required.
func BuildTree(g *grammar.Grammar, m *Matrix, w []rune, lhs symbol.Symbol, i, j, cost int) (*Node, error) {
	if i == j-1 {
		c := w[i-1]
		for _, r := range g.TerminalRules() {
			if r.LHS == lhs && r.Terminal.Rune() == c && r.Errors == cost {
				return &Node{I: i, J: j, LHS: lhs, Cost: cost, Leaf: true, Terminal: r.Terminal}, nil
			}
		}
		// H and I match any character at cost 1 even when c falls
		// outside chars(G) (see engine.go's terminal-fill step); such a
		// match has no corresponding static production to find above.
		if (lhs == symbol.I || lhs == symbol.H) && cost == 1 {
			return &Node{I: i, J: j, LHS: lhs, Cost: cost, Leaf: true, Terminal: symbol.NewTerminal(c)}, nil
		}
		return nil, ecerr.New(ecerr.TreeReconstructionFailure,
			fmt.Errorf("no production %v -> %q at cost %d covering position %d", lhs, c, cost, i))
	}

	A, B, k, q1, q2, ok := firstSplit(g, m, lhs, i, j, cost)
	if !ok {
		return nil, ecerr.New(ecerr.TreeReconstructionFailure,
			fmt.Errorf("no binary production for %v spans (%d, %d) at cost %d", lhs, i, j, cost))
	}
	left, err := BuildTree(g, m, w, A, i, k, q1)
	if err != nil {
		return nil, err
	}
	right, err := BuildTree(g, m, w, B, k, j, q2)
	if err != nil {
		return nil, err
	}
	return &Node{I: i, J: j, LHS: lhs, Cost: cost, Left: left, Right: right}, nil
}

// firstSplit searches lhs's binary productions and every split point k
// in (i, j) for the first constituent pair whose matrix costs sum
// (with the production's own cost) to cost, returning that pair's
// symbols, split point, and costs. ok is false if no such split exists.
func firstSplit(g *grammar.Grammar, m *Matrix, lhs symbol.Symbol, i, j, cost int) (A, B symbol.Symbol, k, q1, q2 int, ok bool) {
	for _, r := range g.BinaryRules() {
		if r.LHS != lhs {
			continue
		}
		for k := i + 1; k < j; k++ {
			q1, ok1 := m.Cost(i, k, r.Left)
			if !ok1 {
				continue
			}
			q2, ok2 := m.Cost(k, j, r.Right)
			if !ok2 {
				continue
			}
			if r.Errors+q1+q2 != cost {
				continue
			}
			return r.Left, r.Right, k, q1, q2, true
		}
	}
	return symbol.Nil, symbol.Nil, 0, 0, 0, false
}

// Flatten walks tree in left-to-right order, emitting for each leaf
// either its own matched character (if its production is already
// 0-cost, i.e. it belongs to the uncovered language) or a 0-cost
// terminal alternative for the same nonterminal, or gap if neither
// exists (spec.md §4.6, §7's MissingZeroCostTerminal). The result is
// I', the same length as w.
func Flatten(g *grammar.Grammar, tree *Node, gap rune) string {
	var buf []rune
	flattenInto(g, tree, gap, &buf)
	return string(buf)
}

func flattenInto(g *grammar.Grammar, tree *Node, gap rune, buf *[]rune) {
	if tree == nil {
		return
	}
	if tree.Leaf {
		switch {
		case tree.Cost == 0:
			*buf = append(*buf, tree.Terminal.Rune())
		default:
			if c, ok := g.ZeroCostTerminal(tree.LHS); ok {
				*buf = append(*buf, c.Rune())
			} else {
				*buf = append(*buf, gap)
			}
		}
		return
	}
	flattenInto(g, tree.Left, gap, buf)
	flattenInto(g, tree.Right, gap, buf)
}

// StripGaps removes every occurrence of gap from s, producing I" from
// I'.
func StripGaps(s string, gap rune) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r == gap {
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

// Reconstruct runs tree reconstruction and flattening over a Result
// produced by Parse, returning I' and I" together. For an empty input,
// Result.Corrected already holds the answer and no tree is built.
func Reconstruct(g *grammar.Grammar, w []rune, res *Result, gap rune) (corrected, final string, err error) {
	if res.Empty {
		s := string(res.Corrected)
		return s, s, nil
	}
	tree, err := BuildTree(g, res.Matrix, w, symbol.Start, 1, len(w)+1, res.Cost)
	if err != nil {
		return "", "", err
	}
	corrected = Flatten(g, tree, gap)
	return corrected, StripGaps(corrected, gap), nil
}
