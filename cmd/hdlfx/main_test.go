package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunRejectsWrongArgCount(t *testing.T) {
	if got := run(nil); got != 1 {
		t.Errorf("run(nil) = %d, want 1", got)
	}
	if got := run([]string{"a", "b"}); got != 1 {
		t.Errorf("run(two args) = %d, want 1", got)
	}
}

func TestRunSucceedsOnWellFormedFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "m.hdl")
	if err := os.WriteFile(path, []byte("module m { }"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if got := run([]string{path}); got != 0 {
		t.Errorf("run(%q) = %d, want 0", path, got)
	}
}

func TestRunFailsOnMissingFile(t *testing.T) {
	if got := run([]string{filepath.Join(t.TempDir(), "missing.hdl")}); got != 1 {
		t.Errorf("run() on a missing file = %d, want 1", got)
	}
}

func TestRunFailsOnParseError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.hdl")
	if err := os.WriteFile(path, []byte("module m { @@@ }"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if got := run([]string{path}); got != 1 {
		t.Errorf("run(%q) = %d, want 1", path, got)
	}
}
