package grammar

import (
	"fmt"

	"github.com/nihei9/ecparse/grammar/symbol"
)

// AddTerminalRule adds "lhs -> c" to g. g must be in the Building
// state.
func (g *Grammar) AddTerminalRule(lhs, c rune, cost int) error {
	if err := g.requireState(StateBuilding); err != nil {
		return err
	}
	g.tryAdd(newTerminalProduction(symbol.NewNonTerminal(lhs), symbol.NewTerminal(c), cost, Provenance{}))
	return nil
}

// AddUnitRule adds "lhs -> rhs" (a single nonterminal rhs) to g.
func (g *Grammar) AddUnitRule(lhs, rhs rune, cost int) error {
	if err := g.requireState(StateBuilding); err != nil {
		return err
	}
	if lhs == rhs {
		return fmt.Errorf("grammar: unit rule %c -> %c is a no-op self-reference", lhs, rhs)
	}
	g.tryAdd(newUnitProduction(symbol.NewNonTerminal(lhs), symbol.NewNonTerminal(rhs), cost, Provenance{}))
	return nil
}

// AddBinaryRule adds "lhs -> a b" (two nonterminals) to g.
func (g *Grammar) AddBinaryRule(lhs, a, b rune, cost int) error {
	if err := g.requireState(StateBuilding); err != nil {
		return err
	}
	g.tryAdd(newBinaryProduction(symbol.NewNonTerminal(lhs), symbol.NewNonTerminal(a), symbol.NewNonTerminal(b), cost, Provenance{}))
	return nil
}

// AddEpsilonRule adds "lhs -> ε" to g.
func (g *Grammar) AddEpsilonRule(lhs rune, cost int) error {
	if err := g.requireState(StateBuilding); err != nil {
		return err
	}
	g.tryAdd(newEpsilonProduction(symbol.NewNonTerminal(lhs), cost, Provenance{Prefix: []rune{}}))
	return nil
}
