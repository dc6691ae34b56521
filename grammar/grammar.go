// Package grammar implements the grammar model, the covering
// construction, and the epsilon/unit normalization passes of
// SPEC_FULL.md §3 and §4.1-§4.4.
package grammar

import (
	"github.com/nihei9/ecparse/grammar/symbol"
)

// Grammar holds a grammar's productions and the derived indices of
// spec.md §3. A Grammar moves through the lifecycle of §4.7 as it is
// transformed; see state.go.
type Grammar struct {
	state State

	prods              *productionSet
	terminals          *productionSet
	nonterminals       *productionSet
	nonterminalUnits   *productionSet
	nonterminalNonUnit *productionSet

	symbols *symbol.Table

	// nullable maps a nonterminal to its minimum-cost epsilon
	// production, populated during epsilon-elimination (§4.3) and
	// cleared once that pass completes.
	nullable map[symbol.Symbol]*production

	// emptyInput retains the start symbol's nullable entry (if any)
	// across the clearing of nullable, since the CYK matrix has no
	// valid span for a zero-length input and the empty-string case
	// must be answered directly from this cached entry instead.
	emptyInput *production

	// relaxationWins counts every tryAdd call that actually installed
	// or replaced a production, across the grammar's whole lifetime.
	// Recorded here, not per-caller, since tryAdd is the only
	// cost-relaxation mechanism (spec.md §4.1) and report.Report surfaces this total
	// (SPEC_FULL.md §4.10).
	relaxationWins int

	// cycleWithoutBase collects the nonterminals left out of nullable
	// when computeNullable's fixed point settles: every unit/binary
	// production's lhs that never relaxed, i.e. whose nullability
	// depends only on a cycle with no base epsilon production to
	// ground it (spec.md §4.3, §7's ecerr.CycleWithoutBase).
	cycleWithoutBase []symbol.Symbol
}

// New returns an empty grammar in the Building state.
func New() *Grammar {
	return &Grammar{
		state:              StateBuilding,
		prods:              newProductionSet(),
		terminals:          newProductionSet(),
		nonterminals:       newProductionSet(),
		nonterminalUnits:   newProductionSet(),
		nonterminalNonUnit: newProductionSet(),
		symbols:            symbol.NewTable(),
	}
}

// State reports the grammar's current lifecycle state (§4.7).
func (g *Grammar) State() State {
	return g.state
}

// Chars returns chars(G): every terminal character registered in the
// grammar, sorted.
func (g *Grammar) Chars() []symbol.Symbol {
	return g.symbols.Terminals()
}

// NonTerminals returns every nonterminal symbol registered in the
// grammar, sorted.
func (g *Grammar) NonTerminals() []symbol.Symbol {
	return g.symbols.NonTerminals()
}

// addToIndices files p into the derived indices alongside the
// canonical store. Callers (add_production and try_add) must call
// this exactly once per stored production.
func (g *Grammar) addToIndices(p *production) {
	g.prods.put(p)

	switch p.kind {
	case rhsTerminal:
		g.terminals.put(p)
		g.symbols.RegisterTerminal(p.terminal.Rune())
	case rhsEpsilon:
		g.terminals.put(p)
	case rhsUnit:
		g.nonterminals.put(p)
		g.nonterminalUnits.put(p)
	case rhsBinary:
		g.nonterminals.put(p)
		g.nonterminalNonUnit.put(p)
	}
	g.symbols.RegisterNonTerminal(p.lhs.Rune())
}

func (g *Grammar) removeFromIndices(p *production) {
	g.prods.delete(p)
	switch p.kind {
	case rhsTerminal, rhsEpsilon:
		g.terminals.delete(p)
	case rhsUnit:
		g.nonterminals.delete(p)
		g.nonterminalUnits.delete(p)
	case rhsBinary:
		g.nonterminals.delete(p)
		g.nonterminalNonUnit.delete(p)
	}
}

// addProduction unconditionally inserts p, asserting the caller has
// already established (lhs, rhs) uniqueness (spec.md §4.1).
func (g *Grammar) addProduction(p *production) {
	g.addToIndices(p)
}

// removeProduction deletes p from every index containing it (spec.md
// §4.1).
func (g *Grammar) removeProduction(p *production) {
	g.removeFromIndices(p)
}

// tryAdd is the only mechanism by which cost-minimizing relaxation
// occurs (spec.md §4.1): if no production with the same (lhs, rhs)
// exists, p is inserted and tryAdd returns true. Otherwise, if p's
// cost is strictly lower than the stored production's cost, the stored
// production is replaced and tryAdd returns true; else it returns
// false and p is discarded.
func (g *Grammar) tryAdd(p *production) bool {
	existing, ok := g.prods.get(p.lhs, p.key())
	if !ok {
		g.addProduction(p)
		g.relaxationWins++
		return true
	}
	if p.errors >= existing.errors {
		return false
	}
	g.removeProduction(existing)
	g.addProduction(p)
	g.relaxationWins++
	return true
}

// RelaxationWins returns the number of tryAdd calls that have won a
// cost relaxation so far, for report.Report (SPEC_FULL.md §4.10).
func (g *Grammar) RelaxationWins() int {
	return g.relaxationWins
}

// SkippedNullableSymbols returns the nonterminals computeNullable left
// out of the nullable map at its fixed point: symbols whose
// nullability depends on a cycle with no base epsilon production
// (SPEC_FULL.md §4.10, spec.md §7's ecerr.CycleWithoutBase).
func (g *Grammar) SkippedNullableSymbols() []symbol.Symbol {
	return g.cycleWithoutBase
}

// productionCount is used by report.Report to record pass-by-pass
// production counts (SPEC_FULL.md §4.10).
func (g *Grammar) productionCount() int {
	n := 0
	for _, byRHS := range g.prods.byLHS {
		n += len(byRHS)
	}
	return n
}
