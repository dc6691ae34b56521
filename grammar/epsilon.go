package grammar

import "github.com/nihei9/ecparse/grammar/symbol"

// EliminateEpsilon removes every production whose rhs is epsilon from
// g, folding their costs and deletion provenance into the rules that
// relied on them (spec.md §4.3). g must be Covered; the result is
// EpsilonFree.
//
// Nullable discovery is a fixed-point relaxation over all of g's
// productions, in the idiom of a FIRST-set computation: repeatedly
// scan every production and relax g.nullable[lhs] via tryAdd until a
// full pass makes no change.
// This is equivalent to spec.md's recursive "explore and mark"
// description but immune to recursion-order bugs: a symbol that
// depends on itself through a cycle with no base epsilon production
// simply never relaxes and is left non-nullable (the
// ecerr.CycleWithoutBase case is tolerated, not fatal, per spec.md
// §4.3 and §7).
func EliminateEpsilon(g *Grammar) error {
	if err := g.requireState(StateCovered); err != nil {
		return err
	}

	g.computeNullable()
	g.propagateNullable()

	if np, ok := g.nullable[symbol.Start]; ok {
		g.emptyInput = np
	}

	for _, p := range g.terminals.all() {
		if p.kind == rhsEpsilon {
			g.removeProduction(p)
		}
	}
	g.nullable = nil

	g.advanceTo(StateEpsilonFree)
	return nil
}

func (g *Grammar) computeNullable() {
	g.nullable = map[symbol.Symbol]*production{}
	for _, p := range g.terminals.all() {
		if p.kind != rhsEpsilon {
			continue
		}
		g.nullable[p.lhs] = p
	}

	for {
		changed := false
		for _, p := range g.prods.all() {
			switch p.kind {
			case rhsUnit:
				nb, ok := g.nullable[p.unit]
				if !ok {
					continue
				}
				cost := p.errors + nb.errors
				prov := Provenance{Prefix: nb.prov.Prefix}
				if g.relaxNullable(newEpsilonProduction(p.lhs, cost, prov)) {
					changed = true
				}
			case rhsBinary:
				nb, okb := g.nullable[p.left]
				nc, okc := g.nullable[p.right]
				if !okb || !okc {
					continue
				}
				cost := p.errors + nb.errors + nc.errors
				prov := Provenance{Prefix: concatRunes(nb.prov.Prefix, nc.prov.Prefix)}
				if g.relaxNullable(newEpsilonProduction(p.lhs, cost, prov)) {
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	g.cycleWithoutBase = nil
	seen := map[symbol.Symbol]bool{}
	for _, p := range g.prods.all() {
		if p.kind != rhsUnit && p.kind != rhsBinary {
			continue
		}
		if _, ok := g.nullable[p.lhs]; ok {
			continue
		}
		if seen[p.lhs] {
			continue
		}
		seen[p.lhs] = true
		g.cycleWithoutBase = append(g.cycleWithoutBase, p.lhs)
	}
}

// relaxNullable tries to install p as the grammar's epsilon production
// for p.lhs, both in the canonical store (via tryAdd) and in the
// nullable index, returning whether it won.
func (g *Grammar) relaxNullable(p *production) bool {
	if !g.tryAdd(p) {
		return false
	}
	g.nullable[p.lhs] = p
	return true
}

// propagateNullable implements spec.md §4.3's "Propagation" step: for
// every binary rule A -> B C, if B is nullable introduce A -> C, and
// if C is nullable introduce A -> B, carrying the deleted-character
// provenance of the nullable side.
func (g *Grammar) propagateNullable() {
	for _, p := range g.nonterminalNonUnit.all() {
		if p.kind != rhsBinary {
			continue
		}
		if nb, ok := g.nullable[p.left]; ok {
			cost := p.errors + nb.errors
			prov := Provenance{
				Prefix: concatRunes(nb.prov.Prefix, p.prov.Prefix),
				Suffix: p.prov.Suffix,
			}
			g.tryAdd(newUnitProduction(p.lhs, p.right, cost, prov))
		}
		if nc, ok := g.nullable[p.right]; ok {
			cost := p.errors + nc.errors
			prov := Provenance{
				Prefix: p.prov.Prefix,
				Suffix: concatRunes(p.prov.Suffix, nc.prov.Prefix),
			}
			g.tryAdd(newUnitProduction(p.lhs, p.left, cost, prov))
		}
	}
}
