package grammar

import "github.com/nihei9/ecparse/grammar/symbol"

// Cover builds the covering grammar G' from g (spec.md §4.2). g must
// be in the Building state; the result is in the Covered state.
//
// G' seeds every production of g unchanged, adds the H/I insertion
// machinery, and for every terminal rule A -> c of g adds the
// leading/trailing-insertion, deletion, and substitution variants. All
// additions beyond the seed use tryAdd so that when the same (lhs,
// rhs) pair could arise more than one way, the minimum cost wins.
func Cover(g *Grammar) (*Grammar, error) {
	if err := g.requireState(StateBuilding); err != nil {
		return nil, err
	}

	gp := New()
	for _, p := range g.prods.all() {
		gp.addProduction(p.clone())
	}

	// Insertion machinery (§4.2 step 2): H derives any nonempty block
	// of inserted characters, each contributing cost 1.
	gp.tryAdd(newBinaryProduction(symbol.H, symbol.H, symbol.I, 0, Provenance{}))
	gp.tryAdd(newUnitProduction(symbol.H, symbol.I, 0, Provenance{}))
	for _, c := range g.Chars() {
		gp.tryAdd(newTerminalProduction(symbol.I, c, 1, Provenance{Inserted: true}))
	}

	// Per-terminal-rule variants (§4.2 step 3).
	for _, p := range g.terminals.all() {
		if p.kind != rhsTerminal {
			continue
		}
		lhs := p.lhs
		c := p.terminal

		gp.tryAdd(newBinaryProduction(lhs, lhs, symbol.H, 0, Provenance{}))
		gp.tryAdd(newBinaryProduction(lhs, symbol.H, lhs, 0, Provenance{}))
		gp.tryAdd(newEpsilonProduction(lhs, 1, Provenance{Prefix: []rune{c.Rune()}}))

		for _, alt := range g.Chars() {
			if alt == c {
				continue
			}
			gp.tryAdd(newTerminalProduction(lhs, alt, 1, Provenance{Replaced: c.Rune(), HasReplaced: true}))
		}
	}

	gp.advanceTo(StateCovered)
	return gp, nil
}
