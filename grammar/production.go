package grammar

import (
	"fmt"

	"github.com/nihei9/ecparse/grammar/symbol"
)

// rhsKind identifies the shape a production's right-hand side takes.
// Before normalization a grammar may contain all four kinds; after
// normalization only rhsTerminal and rhsBinary survive (spec.md §3's
// invariant: "After normalization, nonterminal_units is empty... every
// surviving production has rhs ∈ {single terminal, pair of
// nonterminals}").
type rhsKind int

const (
	rhsEpsilon rhsKind = iota
	rhsTerminal
	rhsUnit
	rhsBinary
)

func (k rhsKind) String() string {
	switch k {
	case rhsEpsilon:
		return "epsilon"
	case rhsTerminal:
		return "terminal"
	case rhsUnit:
		return "unit"
	case rhsBinary:
		return "binary"
	default:
		return "?"
	}
}

// Provenance is the edit-operation record a production carries,
// spec.md §3: the ordered list of characters deleted immediately
// before (Prefix) and after (Suffix) this production's own
// contribution, the original character this rule substitutes away
// (Replaced, valid only when HasReplaced), and whether this production
// is itself a pure insertion (Inserted).
//
// By convention, a base epsilon production created directly by the
// covering construction (§4.2, "A -> ε marked deleted=c") records its
// single deleted character in Prefix; epsilon-elimination folds that
// into the Prefix or Suffix of whatever surviving rule consumed the
// nullable symbol (§4.3).
type Provenance struct {
	Prefix      []rune
	Suffix      []rune
	Replaced    rune
	HasReplaced bool
	Inserted    bool
}

func concatRunes(a, b []rune) []rune {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make([]rune, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// rhsKey is the comparable identity of a right-hand side, used as the
// inner map key of a productionSet (spec.md §3: "productions: mapping
// (lhs -> mapping rhs -> production)").
type rhsKey struct {
	kind rhsKind
	a, b symbol.Symbol
}

// production is a single rewrite rule (spec.md §3). Two productions
// are equal iff lhs and rhs are equal; errors is explicitly excluded
// from identity (spec.md's invariant on try_add).
type production struct {
	lhs  symbol.Symbol
	kind rhsKind

	// terminal is valid when kind == rhsTerminal.
	terminal symbol.Symbol
	// unit is valid when kind == rhsUnit.
	unit symbol.Symbol
	// left, right are valid when kind == rhsBinary.
	left, right symbol.Symbol

	errors int
	prov   Provenance
}

func newEpsilonProduction(lhs symbol.Symbol, errors int, prov Provenance) *production {
	return &production{lhs: lhs, kind: rhsEpsilon, errors: errors, prov: prov}
}

func newTerminalProduction(lhs, t symbol.Symbol, errors int, prov Provenance) *production {
	return &production{lhs: lhs, kind: rhsTerminal, terminal: t, errors: errors, prov: prov}
}

func newUnitProduction(lhs, u symbol.Symbol, errors int, prov Provenance) *production {
	return &production{lhs: lhs, kind: rhsUnit, unit: u, errors: errors, prov: prov}
}

func newBinaryProduction(lhs, left, right symbol.Symbol, errors int, prov Provenance) *production {
	return &production{lhs: lhs, kind: rhsBinary, left: left, right: right, errors: errors, prov: prov}
}

func (p *production) key() rhsKey {
	switch p.kind {
	case rhsEpsilon:
		return rhsKey{kind: rhsEpsilon}
	case rhsTerminal:
		return rhsKey{kind: rhsTerminal, a: p.terminal}
	case rhsUnit:
		return rhsKey{kind: rhsUnit, a: p.unit}
	default:
		return rhsKey{kind: rhsBinary, a: p.left, b: p.right}
	}
}

func (p *production) String() string {
	switch p.kind {
	case rhsEpsilon:
		return fmt.Sprintf("%v ->%v ε", p.lhs, p.errors)
	case rhsTerminal:
		return fmt.Sprintf("%v ->%v %v", p.lhs, p.errors, p.terminal)
	case rhsUnit:
		return fmt.Sprintf("%v ->%v %v", p.lhs, p.errors, p.unit)
	default:
		return fmt.Sprintf("%v ->%v %v %v", p.lhs, p.errors, p.left, p.right)
	}
}

// clone returns a shallow copy of p. Productions are replaced wholesale
// by try_add, never mutated in place, so a shallow copy (Provenance
// slices are never mutated after creation) is sufficient.
func (p *production) clone() *production {
	cp := *p
	return &cp
}

// productionSet is the canonical (lhs -> rhs -> production) store plus
// the derived indices of spec.md §3 (terminals, nonterminals,
// nonterminal_units, nonterminal_nonunits).
type productionSet struct {
	byLHS map[symbol.Symbol]map[rhsKey]*production
}

func newProductionSet() *productionSet {
	return &productionSet{byLHS: map[symbol.Symbol]map[rhsKey]*production{}}
}

func (ps *productionSet) get(lhs symbol.Symbol, key rhsKey) (*production, bool) {
	byRHS, ok := ps.byLHS[lhs]
	if !ok {
		return nil, false
	}
	p, ok := byRHS[key]
	return p, ok
}

func (ps *productionSet) put(p *production) {
	byRHS, ok := ps.byLHS[p.lhs]
	if !ok {
		byRHS = map[rhsKey]*production{}
		ps.byLHS[p.lhs] = byRHS
	}
	byRHS[p.key()] = p
}

func (ps *productionSet) delete(p *production) {
	byRHS, ok := ps.byLHS[p.lhs]
	if !ok {
		return
	}
	delete(byRHS, p.key())
}

func (ps *productionSet) byLHSSlice(lhs symbol.Symbol) []*production {
	byRHS, ok := ps.byLHS[lhs]
	if !ok {
		return nil
	}
	out := make([]*production, 0, len(byRHS))
	for _, p := range byRHS {
		out = append(out, p)
	}
	return out
}

func (ps *productionSet) all() []*production {
	var out []*production
	for _, byRHS := range ps.byLHS {
		for _, p := range byRHS {
			out = append(out, p)
		}
	}
	return out
}
