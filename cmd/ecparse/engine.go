package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nihei9/ecparse/config"
	"github.com/nihei9/ecparse/cyk"
	"github.com/nihei9/ecparse/ecerr"
	"github.com/nihei9/ecparse/gramfile"
	"github.com/nihei9/ecparse/grammar"
	"github.com/nihei9/ecparse/report"
)

// engine holds a fully normalized grammar ready to answer any number
// of parse requests, along with the report accumulated while it was
// built.
type engine struct {
	g      *grammar.Grammar
	gap    rune
	report *report.Report
}

func newEngine(grammarFile string, cfg config.Config) (*engine, error) {
	f, err := os.Open(grammarFile)
	if err != nil {
		return nil, ecerr.New(ecerr.MalformedGrammar, fmt.Errorf("cannot open grammar file %s: %w", grammarFile, err))
	}
	defer f.Close()

	g, err := gramfile.Read(f, cfg.GramfileOptions())
	if err != nil {
		return nil, err
	}

	r := report.New()
	r.RecordPass(g)

	gp, err := grammar.Cover(g)
	if err != nil {
		return nil, err
	}
	r.RecordPass(gp)

	if err := grammar.EliminateEpsilon(gp); err != nil {
		return nil, err
	}
	r.RecordPass(gp)

	if err := grammar.EliminateUnits(gp); err != nil {
		return nil, err
	}
	r.RecordPass(gp)
	r.Finalize(gp)

	return &engine{g: gp, gap: cfg.Gap(), report: r}, nil
}

// runOne parses w against e.g and writes the four-line output block of
// spec.md §6. A NoDerivation or TreeReconstructionFailure error is
// returned so the caller can report it and move on to the next input
// without poisoning the others. A leaf with no 0-cost terminal is not
// an error: flattening writes the gap rune for it.
func (e *engine) runOne(w io.Writer, input string) error {
	res, err := cyk.Parse(e.g, []rune(input))
	if err != nil {
		return err
	}
	corrected, final, err := cyk.Reconstruct(e.g, []rune(input), res, e.gap)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "I : %s\n", input)
	fmt.Fprintf(w, "I': %s\n", corrected)
	fmt.Fprintf(w, "I\": %s\n", final)
	fmt.Fprintf(w, "E : %d\n", res.Cost)
	return nil
}

func (e *engine) writeReport(path string) error {
	data, err := e.report.JSON()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
