// Package report builds a machine-readable summary of one grammar
// build-and-normalize run, grounded on the teacher's spec.Report
// (spec/grammar/description.go) and the way cmd/vartan/compile.go
// writes it out alongside the compiled artifact. google/uuid tags each
// run so a batch of reports (e.g. one per grammar file in a larger
// pipeline) can be correlated without relying on file paths or
// wall-clock time alone.
package report

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/nihei9/ecparse/grammar"
)

// PassCount records a grammar's lifecycle state (spec.md §4.7's state
// machine) and production count at one point of the build: before any
// pass, or after a pass completes.
type PassCount struct {
	State       string `json:"state"`
	Productions int    `json:"productions"`
}

// Report summarizes one grammar's construction and normalization.
type Report struct {
	RunID       uuid.UUID   `json:"run_id"`
	GeneratedAt time.Time   `json:"generated_at"`
	Chars       int         `json:"chars"`
	NonTerminal int         `json:"non_terminals"`
	Passes      []PassCount `json:"passes"`

	// RelaxationWins is the number of tryAdd calls that won a cost
	// relaxation over the whole run (spec.md §4.1).
	RelaxationWins int `json:"relaxation_wins"`

	// SkippedNullableSymbols lists the nonterminals epsilon-elimination
	// left non-nullable at its fixed point: symbols whose nullability
	// depends on a cycle with no base epsilon production
	// (spec.md §4.3, §7's ecerr.CycleWithoutBase).
	SkippedNullableSymbols []string `json:"skipped_nullable_symbols,omitempty"`
}

// New starts a Report for the current run.
func New() *Report {
	return &Report{RunID: uuid.New(), GeneratedAt: time.Now()}
}

// RecordPass appends g's current state and production count.
func (r *Report) RecordPass(g *grammar.Grammar) {
	r.Passes = append(r.Passes, PassCount{State: g.State().String(), Productions: g.ProductionCount()})
}

// Finalize fills in the symbol-table summary fields and the
// relaxation/cycle bookkeeping promised by SPEC_FULL.md §4.10. Call
// once g has reached its final (UnitFree) state.
func (r *Report) Finalize(g *grammar.Grammar) {
	r.Chars = len(g.Chars())
	r.NonTerminal = len(g.NonTerminals())
	r.RelaxationWins = g.RelaxationWins()
	for _, s := range g.SkippedNullableSymbols() {
		r.SkippedNullableSymbols = append(r.SkippedNullableSymbols, string(s.Rune()))
	}
}

// JSON renders the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
