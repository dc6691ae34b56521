package grammar

import "github.com/nihei9/ecparse/grammar/symbol"

// TerminalRule is the exported view of an "A -> c" production, used by
// the cyk package to fill the parse matrix and reconstruct leaves
// (spec.md §4.5, §4.6).
type TerminalRule struct {
	LHS        symbol.Symbol
	Terminal   symbol.Symbol
	Errors     int
	Provenance Provenance
}

// BinaryRule is the exported view of an "A -> B C" production, used by
// the cyk package for binary combination (spec.md §4.5).
type BinaryRule struct {
	LHS, Left, Right symbol.Symbol
	Errors           int
}

// TerminalRules returns every terminal production of a UnitFree
// grammar.
func (g *Grammar) TerminalRules() []TerminalRule {
	var out []TerminalRule
	for _, p := range g.terminals.all() {
		if p.kind != rhsTerminal {
			continue
		}
		out = append(out, TerminalRule{LHS: p.lhs, Terminal: p.terminal, Errors: p.errors, Provenance: p.prov})
	}
	return out
}

// BinaryRules returns every binary production of a UnitFree grammar.
func (g *Grammar) BinaryRules() []BinaryRule {
	var out []BinaryRule
	for _, p := range g.nonterminalNonUnit.all() {
		if p.kind != rhsBinary {
			continue
		}
		out = append(out, BinaryRule{LHS: p.lhs, Left: p.left, Right: p.right, Errors: p.errors})
	}
	return out
}

// ZeroCostTerminal looks up a 0-cost terminal rule for lhs, i.e. a
// character lhs can derive in the original (uncovered) language. Used
// by flatten (spec.md §4.6) to substitute a leaf whose own production
// has nonzero cost.
func (g *Grammar) ZeroCostTerminal(lhs symbol.Symbol) (symbol.Symbol, bool) {
	for _, p := range g.terminals.byLHSSlice(lhs) {
		if p.kind == rhsTerminal && p.errors == 0 {
			return p.terminal, true
		}
	}
	return symbol.Nil, false
}

// ProductionCount returns the number of productions currently stored,
// for use by report.Report's pass-by-pass bookkeeping.
func (g *Grammar) ProductionCount() int {
	return g.productionCount()
}

// EmptyInputDerivation returns the cost and corrected characters of the
// start symbol's cheapest derivation of the empty string in the
// covering grammar, captured during epsilon-elimination before the
// nullable index was cleared. The CYK matrix has no valid (i, j) span
// for a zero-length input, so parsing "" is answered directly from
// this cached entry instead of the matrix (SPEC_FULL.md §4.5). ok is
// false if S has no epsilon derivation in the covering grammar, e.g.
// when no chain of S's rules reaches a terminal rule (S -> S S).
func (g *Grammar) EmptyInputDerivation() (cost int, corrected []rune, ok bool) {
	if g.emptyInput == nil {
		return 0, nil, false
	}
	return g.emptyInput.errors, g.emptyInput.prov.Prefix, true
}
