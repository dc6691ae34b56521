// Package gramfile reads the line-oriented grammar source format of
// SPEC_FULL.md §6: one production per line, blank lines and
// comment-marked lines ignored, building a grammar.Grammar from the
// parsed rules. Grounded on the teacher's hand-rolled lexer idiom
// (grammar/lexical/parser/lexer.go) scaled down to this format's much
// simpler per-line grammar.
package gramfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/nihei9/ecparse/ecerr"
	"github.com/nihei9/ecparse/grammar"
	"github.com/nihei9/ecparse/grammar/symbol"
)

// DefaultEpsilonMarker and DefaultCommentMarker are used when an
// Options field is left at its zero value.
const (
	DefaultEpsilonMarker = 'ε'
	DefaultCommentMarker = '#'
)

// Options configures the grammar-source reader.
type Options struct {
	// EpsilonMarker is the rune that denotes an epsilon production's
	// rhs. Defaults to DefaultEpsilonMarker.
	EpsilonMarker rune
	// CommentMarker marks a line as a comment when it is the line's
	// first rune. Defaults to DefaultCommentMarker.
	CommentMarker rune
}

func (o Options) withDefaults() Options {
	if o.EpsilonMarker == 0 {
		o.EpsilonMarker = DefaultEpsilonMarker
	}
	if o.CommentMarker == 0 {
		o.CommentMarker = DefaultCommentMarker
	}
	return o
}

// Read parses every production line of r into a new Building-state
// grammar.Grammar. Parse failures are collected as an ecerr.Errors
// aggregate (one ecerr.MalformedGrammar entry per bad line, each
// tagged with its 1-based row) rather than stopping at the first one,
// so a grammar author sees every mistake in a file at once.
func Read(r io.Reader, opts Options) (*grammar.Grammar, error) {
	opts = opts.withDefaults()
	g := grammar.New()

	var errs ecerr.Errors
	scanner := bufio.NewScanner(r)
	row := 0
	for scanner.Scan() {
		row++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if r := []rune(line)[0]; r == opts.CommentMarker {
			continue
		}
		if err := parseLine(g, line, opts); err != nil {
			errs = append(errs, ecerr.New(ecerr.MalformedGrammar, err).WithRow(row))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, ecerr.New(ecerr.MalformedGrammar, fmt.Errorf("reading grammar source: %w", err))
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return g, nil
}

func parseLine(g *grammar.Grammar, line string, opts Options) error {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return fmt.Errorf("%q: expected \"LHS -> RHS\" or \"LHS ->k RHS\"", line)
	}

	lhs, err := singleRune(fields[0])
	if err != nil {
		return fmt.Errorf("lhs %w", err)
	}
	if err := checkNotCoveringReserved(lhs); err != nil {
		return err
	}

	cost, err := parseArrow(fields[1])
	if err != nil {
		return err
	}

	rhsFields := fields[2:]
	switch len(rhsFields) {
	case 1:
		return parseUnaryRHS(g, lhs, rhsFields[0], cost, opts)
	case 2:
		return parseBinaryRHS(g, lhs, rhsFields[0], rhsFields[1], cost)
	default:
		return fmt.Errorf("%q: rhs must be one character, %c, or two nonterminals", line, opts.EpsilonMarker)
	}
}

func parseArrow(field string) (int, error) {
	if !strings.HasPrefix(field, "->") {
		return 0, fmt.Errorf("%q: expected an arrow (-> or ->k)", field)
	}
	suffix := field[len("->"):]
	if suffix == "" {
		return 0, nil
	}
	cost, err := strconv.Atoi(suffix)
	if err != nil || cost < 0 {
		return 0, fmt.Errorf("%q: cost suffix must be a non-negative integer", field)
	}
	return cost, nil
}

func parseUnaryRHS(g *grammar.Grammar, lhs rune, field string, cost int, opts Options) error {
	r, err := singleRune(field)
	if err != nil {
		return fmt.Errorf("rhs %w", err)
	}
	switch {
	case r == opts.EpsilonMarker:
		return g.AddEpsilonRule(lhs, cost)
	case unicode.IsUpper(r):
		if err := checkNotCoveringReserved(r); err != nil {
			return err
		}
		return g.AddUnitRule(lhs, r, cost)
	default:
		return g.AddTerminalRule(lhs, r, cost)
	}
}

func parseBinaryRHS(g *grammar.Grammar, lhs rune, aField, bField string, cost int) error {
	a, err := singleRune(aField)
	if err != nil {
		return fmt.Errorf("rhs %w", err)
	}
	b, err := singleRune(bField)
	if err != nil {
		return fmt.Errorf("rhs %w", err)
	}
	if !unicode.IsUpper(a) || !unicode.IsUpper(b) {
		return fmt.Errorf("%q %q: a two-symbol rhs must be two nonterminals", aField, bField)
	}
	if err := checkNotCoveringReserved(a); err != nil {
		return err
	}
	if err := checkNotCoveringReserved(b); err != nil {
		return err
	}
	return g.AddBinaryRule(lhs, a, b, cost)
}

func singleRune(field string) (rune, error) {
	runes := []rune(field)
	if len(runes) != 1 {
		return 0, fmt.Errorf("%q: must be exactly one character", field)
	}
	return runes[0], nil
}

// checkNotCoveringReserved rejects H and I, the two nonterminals the
// covering construction introduces (spec.md §6). S is not rejected
// here: it is reserved as the designated start symbol, which user
// grammars are expected to define.
func checkNotCoveringReserved(r rune) error {
	if r == symbol.HRune || r == symbol.IRune {
		return fmt.Errorf("%c is reserved for the covering construction and cannot appear in a grammar source", r)
	}
	return nil
}
