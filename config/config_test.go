package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nihei9/ecparse/config"
)

func TestLoadMissingFileReturnsZeroValue(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	assert.NoError(t, err)
	assert.Equal(t, '-', cfg.Gap())
}

func TestLoadParsesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ecparse.toml")
	src := `
grammar_file = "custom.txt"
epsilon_marker = "~"
comment_marker = ";"
gap_marker = "_"
`
	assert.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	cfg, err := config.Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "custom.txt", cfg.GrammarFile)
	assert.Equal(t, '_', cfg.Gap())

	opts := cfg.GramfileOptions()
	assert.Equal(t, '~', opts.EpsilonMarker)
	assert.Equal(t, ';', opts.CommentMarker)
}

func TestLoadRejectsInvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	assert.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o644))

	_, err := config.Load(path)
	assert.Error(t, err)
}
