// Package cyk implements the weighted CYK parser and tree
// reconstruction of spec.md §4.5 and §4.6.
package cyk

import "github.com/nihei9/ecparse/grammar/symbol"

// Matrix is the parse matrix M of spec.md §3: an upper-triangular
// structure indexed by (i, j) with 1 <= i < j <= n+1, where each cell
// maps a nonterminal to the minimum cost at which it derives
// w[i-1:j-1]. Per spec.md §9's guidance, it is a flat array of
// per-symbol maps rather than a nested associative container.
type Matrix struct {
	n     int
	cells [][]map[symbol.Symbol]int
}

// NewMatrix allocates a Matrix for an input of length n.
func NewMatrix(n int) *Matrix {
	cells := make([][]map[symbol.Symbol]int, n+2)
	for i := range cells {
		cells[i] = make([]map[symbol.Symbol]int, n+2)
	}
	return &Matrix{n: n, cells: cells}
}

// Insert records that a derives w[i-1:j-1] at cost, keeping the
// existing entry if it is already cheaper or equal. Reports whether
// the cell changed.
func (m *Matrix) Insert(a symbol.Symbol, i, j, cost int) bool {
	cell := m.cells[i][j]
	if cell == nil {
		cell = map[symbol.Symbol]int{}
		m.cells[i][j] = cell
	}
	if existing, ok := cell[a]; ok && existing <= cost {
		return false
	}
	cell[a] = cost
	return true
}

// Cost returns the minimum cost at which a derives w[i-1:j-1], if any.
func (m *Matrix) Cost(i, j int, a symbol.Symbol) (int, bool) {
	cell := m.cells[i][j]
	if cell == nil {
		return 0, false
	}
	c, ok := cell[a]
	return c, ok
}

// Symbols returns every nonterminal recorded in cell (i, j).
func (m *Matrix) Symbols(i, j int) []symbol.Symbol {
	cell := m.cells[i][j]
	if cell == nil {
		return nil
	}
	out := make([]symbol.Symbol, 0, len(cell))
	for a := range cell {
		out = append(out, a)
	}
	return out
}
