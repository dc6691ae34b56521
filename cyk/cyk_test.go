package cyk_test

import (
	"testing"

	"github.com/nihei9/ecparse/cyk"
	"github.com/nihei9/ecparse/grammar"
)

// buildG0 builds spec.md §8's example grammar:
//
//	S -> S A
//	S -> A
//	A -> a
//	A -> b
func buildG0(t *testing.T) *grammar.Grammar {
	t.Helper()
	g := grammar.New()
	must(t, g.AddBinaryRule('S', 'S', 'A', 0))
	must(t, g.AddUnitRule('S', 'A', 0))
	must(t, g.AddTerminalRule('A', 'a', 0))
	must(t, g.AddTerminalRule('A', 'b', 0))
	return normalize(t, g)
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatal(err)
	}
}

func normalize(t *testing.T, g *grammar.Grammar) *grammar.Grammar {
	t.Helper()
	gp, err := grammar.Cover(g)
	must(t, err)
	must(t, grammar.EliminateEpsilon(gp))
	must(t, grammar.EliminateUnits(gp))
	return gp
}

func parse(t *testing.T, g *grammar.Grammar, w string) *cyk.Result {
	t.Helper()
	res, err := cyk.Parse(g, []rune(w))
	if err != nil {
		t.Fatal(err)
	}
	return res
}

func TestExactMatchHasZeroCost(t *testing.T) {
	g := buildG0(t)
	res := parse(t, g, "ab")
	if res.Cost != 0 {
		t.Fatalf("expected E=0 for ab, got %d", res.Cost)
	}
	corrected, final, err := cyk.Reconstruct(g, []rune("ab"), res, '-')
	must(t, err)
	if corrected != "ab" || final != "ab" {
		t.Fatalf("expected I'=I\"=ab, got I'=%q I\"=%q", corrected, final)
	}
}

func TestSubstitutionCostsOne(t *testing.T) {
	g := buildG0(t)
	res := parse(t, g, "ac")
	if res.Cost != 1 {
		t.Fatalf("expected E=1 for ac, got %d", res.Cost)
	}
	_, final, err := cyk.Reconstruct(g, []rune("ac"), res, '-')
	must(t, err)
	switch final {
	case "a", "ab", "aa":
	default:
		t.Fatalf("unexpected correction %q", final)
	}
}

func TestEmptyInputInsertsOneCharacter(t *testing.T) {
	g := buildG0(t)
	res := parse(t, g, "")
	if res.Cost != 1 {
		t.Fatalf("expected E=1 for empty input, got %d", res.Cost)
	}
	_, final, err := cyk.Reconstruct(g, nil, res, '-')
	must(t, err)
	if len(final) != 1 || (final != "a" && final != "b") {
		t.Fatalf("expected a single-character correction in L(G0), got %q", final)
	}
}

func TestDeletionCostsOne(t *testing.T) {
	g := buildG0(t)
	res := parse(t, g, "aXb")
	if res.Cost != 1 {
		t.Fatalf("expected E=1 for aXb, got %d", res.Cost)
	}
	_, final, err := cyk.Reconstruct(g, []rune("aXb"), res, '-')
	must(t, err)
	if final != "ab" {
		t.Fatalf("expected deletion of X to give ab, got %q", final)
	}
}

func TestLongerExactMatchHasZeroCost(t *testing.T) {
	g := buildG0(t)
	res := parse(t, g, "aabb")
	if res.Cost != 0 {
		t.Fatalf("expected E=0 for aabb, got %d", res.Cost)
	}
}

func TestNullableGrammarAcceptsEmptyInputAtZeroCost(t *testing.T) {
	g := grammar.New()
	must(t, g.AddBinaryRule('S', 'S', 'A', 0))
	must(t, g.AddUnitRule('S', 'A', 0))
	must(t, g.AddTerminalRule('A', 'a', 0))
	must(t, g.AddTerminalRule('A', 'b', 0))
	must(t, g.AddEpsilonRule('A', 0))
	gp := normalize(t, g)

	res := parse(t, gp, "")
	if res.Cost != 0 {
		t.Fatalf("expected E=0 for empty input once A->ε folds to S, got %d", res.Cost)
	}
	_, final, err := cyk.Reconstruct(gp, nil, res, '-')
	must(t, err)
	if final != "" {
		t.Fatalf("expected empty correction, got %q", final)
	}
}
