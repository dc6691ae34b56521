package symbol

import "testing"

func TestSymbolProperties(t *testing.T) {
	tests := []struct {
		sym           Symbol
		isNil         bool
		isStart       bool
		isTerminal    bool
		isNonTerminal bool
	}{
		{Nil, true, false, false, false},
		{Start, false, true, false, true},
		{H, false, false, false, true},
		{I, false, false, false, true},
		{NewNonTerminal('A'), false, false, false, true},
		{NewTerminal('a'), false, false, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.sym.String(), func(t *testing.T) {
			if v := tt.sym.IsNil(); v != tt.isNil {
				t.Fatalf("IsNil mismatched; want: %v, got: %v", tt.isNil, v)
			}
			if v := tt.sym.IsStart(); v != tt.isStart {
				t.Fatalf("IsStart mismatched; want: %v, got: %v", tt.isStart, v)
			}
			if v := tt.sym.IsTerminal(); v != tt.isTerminal {
				t.Fatalf("IsTerminal mismatched; want: %v, got: %v", tt.isTerminal, v)
			}
			if v := tt.sym.IsNonTerminal(); v != tt.isNonTerminal {
				t.Fatalf("IsNonTerminal mismatched; want: %v, got: %v", tt.isNonTerminal, v)
			}
		})
	}
}

func TestReservedRunes(t *testing.T) {
	for _, r := range []rune{StartRune, HRune, IRune} {
		if !IsReserved(r) {
			t.Fatalf("%c should be reserved", r)
		}
	}
	if IsReserved('a') {
		t.Fatalf("'a' should not be reserved")
	}
}

func TestTable(t *testing.T) {
	tab := NewTable()
	tab.RegisterTerminal('b')
	tab.RegisterTerminal('a')
	tab.RegisterTerminal('a')
	tab.RegisterNonTerminal('A')

	terms := tab.Terminals()
	if len(terms) != 2 || terms[0].Rune() != 'a' || terms[1].Rune() != 'b' {
		t.Fatalf("unexpected terminals: %v", terms)
	}

	nonTerms := tab.NonTerminals()
	if len(nonTerms) != 1 || nonTerms[0].Rune() != 'A' {
		t.Fatalf("unexpected nonterminals: %v", nonTerms)
	}
}
