package cyk

import "github.com/nihei9/ecparse/grammar/symbol"

// Entry is one (i, j, cost) record of the lookup index X.
type Entry struct {
	I, J, Cost int
}

// Index is the lookup index X of spec.md §3: a mapping from a
// nonterminal to every span it derives and the cost of doing so. It
// lets the binary-combination step of the CYK engine enumerate a
// symbol's known spans directly instead of rescanning the whole
// matrix.
type Index struct {
	bySymbol map[symbol.Symbol]map[[2]int]int
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{bySymbol: map[symbol.Symbol]map[[2]int]int{}}
}

// Insert records that a derives w[i-1:j-1] at cost, keeping the
// existing entry if it is already cheaper or equal. Reports whether
// the entry changed.
func (x *Index) Insert(a symbol.Symbol, i, j, cost int) bool {
	m, ok := x.bySymbol[a]
	if !ok {
		m = map[[2]int]int{}
		x.bySymbol[a] = m
	}
	key := [2]int{i, j}
	if existing, ok := m[key]; ok && existing <= cost {
		return false
	}
	m[key] = cost
	return true
}

// GetAll enumerates every entry (i, k, cost) recorded for b with k <
// i+s and i+s <= boundary, i.e. every span of b short enough to leave
// room for a sibling constituent within the current total span length
// s (spec.md §4.5).
func (x *Index) GetAll(b symbol.Symbol, s, boundary int) []Entry {
	m, ok := x.bySymbol[b]
	if !ok {
		return nil
	}
	var out []Entry
	for key, cost := range m {
		i, k := key[0], key[1]
		if k < i+s && i+s <= boundary {
			out = append(out, Entry{I: i, J: k, Cost: cost})
		}
	}
	return out
}
