package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/nihei9/ecparse/config"
)

func writeGrammar(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "grammar.txt")
	src := "S -> S A\nS -> A\nA -> a\nA -> b\n"
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEngineRunOneReportsExactMatch(t *testing.T) {
	path := writeGrammar(t, t.TempDir())
	e, err := newEngine(path, config.Config{})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := e.runOne(&buf, "ab"); err != nil {
		t.Fatal(err)
	}
	want := "I : ab\nI': ab\nI\": ab\nE : 0\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestEngineRunOneCorrectsSubstitution(t *testing.T) {
	path := writeGrammar(t, t.TempDir())
	e, err := newEngine(path, config.Config{})
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := e.runOne(&buf, "ac"); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte("E : 1\n")) {
		t.Fatalf("expected E : 1, got %q", buf.String())
	}
}
