// Package config loads an optional TOML configuration file that
// supplements the CLI flags of cmd/ecparse, in the style of the
// BurntSushi/toml-based TQW format reader the rest of this pack uses
// (internal/tqw/tqw.go).
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/nihei9/ecparse/gramfile"
)

// Config is the optional on-disk configuration for a run of ecparse.
// Every field has a zero value that falls back to the CLI flag or
// gramfile default, so an empty or partial file is valid.
type Config struct {
	// GrammarFile overrides the -g/--grammar-file default.
	GrammarFile string `toml:"grammar_file"`

	// EpsilonMarker overrides gramfile.DefaultEpsilonMarker.
	EpsilonMarker string `toml:"epsilon_marker"`

	// CommentMarker overrides gramfile.DefaultCommentMarker.
	CommentMarker string `toml:"comment_marker"`

	// GapMarker overrides the default gap character ('-') used in I'.
	GapMarker string `toml:"gap_marker"`

	// ReportFile, if set, writes a report.Report as JSON to this path
	// once the grammar is built and every input has been processed,
	// whether or not each input parsed.
	ReportFile string `toml:"report_file"`
}

// Load reads and decodes the TOML file at path. A missing file is not
// an error: Load returns a zero Config so callers can layer CLI flags
// and gramfile defaults on top unconditionally.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// GramfileOptions translates the marker overrides into
// gramfile.Options, leaving unset fields at their gramfile defaults.
func (c Config) GramfileOptions() gramfile.Options {
	var opts gramfile.Options
	if c.EpsilonMarker != "" {
		opts.EpsilonMarker = []rune(c.EpsilonMarker)[0]
	}
	if c.CommentMarker != "" {
		opts.CommentMarker = []rune(c.CommentMarker)[0]
	}
	return opts
}

// Gap returns the configured gap marker, defaulting to '-'.
func (c Config) Gap() rune {
	if c.GapMarker == "" {
		return '-'
	}
	return []rune(c.GapMarker)[0]
}
