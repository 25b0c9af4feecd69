package tangle

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWriteFileIfChangedCreates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	written, err := WriteFileIfChanged(path, []byte("hello\n"))
	if err != nil {
		t.Fatalf("WriteFileIfChanged: %v", err)
	}
	if !written {
		t.Error("written = false, want true for new file")
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(got) != "hello\n" {
		t.Errorf("content = %q", got)
	}
}

func TestWriteFileIfChangedCreatesIntermediateDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c", "out.txt")

	written, err := WriteFileIfChanged(path, []byte("nested\n"))
	if err != nil {
		t.Fatalf("WriteFileIfChanged: %v", err)
	}
	if !written {
		t.Error("written = false, want true")
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("stat: %v", err)
	}
}

func TestWriteFileIfChangedSkipsUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("same\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	// Age the file so an accidental rewrite is visible in its mtime.
	old := time.Now().Add(-time.Hour)
	if err := os.Chtimes(path, old, old); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}

	written, err := WriteFileIfChanged(path, []byte("same\n"))
	if err != nil {
		t.Fatalf("WriteFileIfChanged: %v", err)
	}
	if written {
		t.Error("written = true, want false for unchanged content")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if info.ModTime().After(old.Add(time.Minute)) {
		t.Errorf("mtime moved to %v; unchanged file was rewritten", info.ModTime())
	}
}

func TestWriteFileIfChangedRewritesOnAnyDifference(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	if err := os.WriteFile(path, []byte("line\n"), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	// Trailing-whitespace-only difference still counts.
	written, err := WriteFileIfChanged(path, []byte("line \n"))
	if err != nil {
		t.Fatalf("WriteFileIfChanged: %v", err)
	}
	if !written {
		t.Error("written = false, want true for trailing-whitespace difference")
	}
	got, _ := os.ReadFile(path)
	if string(got) != "line \n" {
		t.Errorf("content = %q", got)
	}
}
