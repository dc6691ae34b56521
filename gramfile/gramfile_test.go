package gramfile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nihei9/ecparse/ecerr"
	"github.com/nihei9/ecparse/gramfile"
)

func TestReadParsesEveryRuleKind(t *testing.T) {
	src := `
# a comment line
S -> S A
S -> A
A -> a
A ->2 b
A -> ε
`
	g, err := gramfile.Read(strings.NewReader(src), gramfile.Options{})
	require.NoError(t, err)

	rules := g.TerminalRules()
	foundA, foundCostly := false, false
	for _, r := range rules {
		if r.Terminal.Rune() == 'a' && r.Errors == 0 {
			foundA = true
		}
		if r.Terminal.Rune() == 'b' && r.Errors == 2 {
			foundCostly = true
		}
	}
	assert.True(t, foundA, "expected A -> a at cost 0")
	assert.True(t, foundCostly, "expected A -> b at cost 2")
}

func TestReadRejectsReservedSymbols(t *testing.T) {
	_, err := gramfile.Read(strings.NewReader("H -> a\n"), gramfile.Options{})
	require.Error(t, err)

	errs, ok := err.(ecerr.Errors)
	require.True(t, ok, "expected ecerr.Errors, got %T", err)
	assert.Equal(t, ecerr.MalformedGrammar, errs[0].Kind)
}

func TestReadRejectsMalformedLines(t *testing.T) {
	_, err := gramfile.Read(strings.NewReader("this is not a production\n"), gramfile.Options{})
	assert.Error(t, err)
}
