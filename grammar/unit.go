package grammar

import "github.com/nihei9/ecparse/grammar/symbol"

// EliminateUnits removes every unit production (rhs is a single
// nonterminal) from g, folding their costs and provenance into the
// terminal and binary rules they chained to (spec.md §4.4). g must be
// EpsilonFree; the result is UnitFree.
//
// For every unit rule A -> B present at entry, exploreChain walks the
// productions of B (recursing through further unit rules) and proposes
// A -> rhs for every terminal or binary rhs it finds, combining costs
// additively and composing provenance as prefix(A) = prefix(A->B) +
// prefix(B->rhs), suffix(A) = suffix(B->rhs) + suffix(A->B). visited
// carries a mark per symbol entered on the current root's chain, reset
// on exit (via defer) so each top-level unit rule gets an independent
// traversal and self-referential cycles are skipped rather than looped
// forever.
func EliminateUnits(g *Grammar) error {
	if err := g.requireState(StateEpsilonFree); err != nil {
		return err
	}

	units := g.nonterminalUnits.all()
	for _, p := range units {
		visited := map[symbol.Symbol]bool{p.lhs: true}
		g.exploreChain(p.lhs, p.unit, p.errors, p.prov, visited)
	}
	for _, p := range units {
		g.removeProduction(p)
	}

	g.advanceTo(StateUnitFree)
	return nil
}

func (g *Grammar) exploreChain(top, target symbol.Symbol, cost int, prov Provenance, visited map[symbol.Symbol]bool) {
	if visited[target] {
		return
	}
	visited[target] = true
	defer delete(visited, target)

	for _, p := range g.prods.byLHSSlice(target) {
		switch p.kind {
		case rhsTerminal:
			newCost := cost + p.errors
			newProv := Provenance{
				Prefix:      concatRunes(prov.Prefix, p.prov.Prefix),
				Suffix:      concatRunes(p.prov.Suffix, prov.Suffix),
				Replaced:    p.prov.Replaced,
				HasReplaced: p.prov.HasReplaced,
				Inserted:    p.prov.Inserted,
			}
			g.tryAdd(newTerminalProduction(top, p.terminal, newCost, newProv))
		case rhsBinary:
			newCost := cost + p.errors
			newProv := Provenance{
				Prefix: concatRunes(prov.Prefix, p.prov.Prefix),
				Suffix: concatRunes(p.prov.Suffix, prov.Suffix),
			}
			g.tryAdd(newBinaryProduction(top, p.left, p.right, newCost, newProv))
		case rhsUnit:
			newCost := cost + p.errors
			newProv := Provenance{
				Prefix: concatRunes(prov.Prefix, p.prov.Prefix),
				Suffix: concatRunes(p.prov.Suffix, prov.Suffix),
			}
			g.exploreChain(top, p.unit, newCost, newProv, visited)
		}
	}
}
