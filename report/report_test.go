package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nihei9/ecparse/grammar"
	"github.com/nihei9/ecparse/report"
)

func TestReportRecordsEveryPass(t *testing.T) {
	g := grammar.New()
	require.NoError(t, g.AddTerminalRule('A', 'a', 0))
	require.NoError(t, g.AddUnitRule('S', 'A', 0))

	r := report.New()
	r.RecordPass(g)

	gp, err := grammar.Cover(g)
	require.NoError(t, err)
	r.RecordPass(gp)

	require.NoError(t, grammar.EliminateEpsilon(gp))
	r.RecordPass(gp)

	require.NoError(t, grammar.EliminateUnits(gp))
	r.RecordPass(gp)
	r.Finalize(gp)

	require.Len(t, r.Passes, 4)
	assert.Equal(t, "building", r.Passes[0].State)
	assert.Equal(t, "unit-free", r.Passes[3].State)
	assert.Equal(t, 1, r.Chars)
	assert.NotEmpty(t, r.RunID.String())
	assert.Greater(t, r.RelaxationWins, 0)

	data, err := r.JSON()
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestReportRecordsSkippedNullableSymbols(t *testing.T) {
	g := grammar.New()
	require.NoError(t, g.AddBinaryRule('S', 'S', 'S', 0))
	require.NoError(t, g.AddTerminalRule('A', 'a', 0))

	gp, err := grammar.Cover(g)
	require.NoError(t, err)
	require.NoError(t, grammar.EliminateEpsilon(gp))
	require.NoError(t, grammar.EliminateUnits(gp))

	r := report.New()
	r.Finalize(gp)

	assert.Contains(t, r.SkippedNullableSymbols, "S")
}
