// Package tangle runs the document-to-files pipeline: parse, assemble,
// expand, write.
package tangle

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"

	"github.com/OWNER/weft/internal/chunk"
	"github.com/OWNER/weft/internal/document"
	"github.com/OWNER/weft/internal/weftlog"
)

// LockFileName is created under the output root while files are being
// written, so concurrent tangles of one tree don't interleave.
const LockFileName = ".weft.lock"

// Options controls one pipeline run.
type Options struct {
	// Source names the document being tangled in logs and errors.
	Source string

	// Root is the directory relative destination paths resolve
	// against. Empty means the process working directory.
	Root string

	// MaxDepth bounds reference expansion; zero selects the default.
	MaxDepth int

	// DryRun expands and reports without touching the filesystem.
	DryRun bool

	// Log receives run events; nil discards them.
	Log *weftlog.Logger
}

// FileResult reports the outcome for one destination file.
type FileResult struct {
	// Path is the resolved destination path.
	Path string `json:"path"`

	// Written is true when the file was created or replaced; false
	// means its content already matched.
	Written bool `json:"written"`

	// Lines is the number of expanded output lines.
	Lines int `json:"lines"`
}

// Result summarizes one pipeline run.
type Result struct {
	Chunks int          `json:"chunks"`
	Files  []FileResult `json:"files"`
}

// Load reads and parses a document and assembles its chunk table
// without expanding or writing anything. Inspection commands build on
// this; Run composes it with the expand and write phases.
func Load(r io.Reader) (*chunk.Table, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	nodes, err := document.Parse(lines)
	if err != nil {
		return nil, err
	}
	return chunk.Assemble(nodes)
}

// Run tangles one document. The whole input is read and every
// destination fully expanded before the first write, so any structural
// or expansion error aborts with zero files touched.
func Run(r io.Reader, opts Options) (*Result, error) {
	table, err := Load(r)
	if err != nil {
		opts.Log.Log(weftlog.EventError, opts.Source, err.Error())
		return nil, err
	}
	opts.Log.Log(weftlog.EventParse, opts.Source,
		fmt.Sprintf("%d chunks, %d files", len(table.Names()), len(table.Files())))

	exp := chunk.NewExpander(table, opts.MaxDepth)

	type planned struct {
		path    string
		content []byte
		lines   int
	}
	var plan []planned
	for _, f := range table.Files() {
		lines, err := exp.Expand(f.Start)
		if err != nil {
			opts.Log.Log(weftlog.EventError, f.Path, err.Error())
			return nil, fmt.Errorf("expanding %s: %w", f.Path, err)
		}
		if f.Shebang != "" {
			lines = append([]string{f.Shebang}, lines...)
		}
		plan = append(plan, planned{
			path:    resolvePath(opts.Root, f.Path),
			content: joinLines(lines),
			lines:   len(lines),
		})
	}

	result := &Result{Chunks: len(table.Names())}

	if opts.DryRun {
		for _, p := range plan {
			result.Files = append(result.Files, FileResult{Path: p.path, Lines: p.lines})
		}
		return result, nil
	}

	if len(plan) > 0 {
		unlock, err := lockRoot(opts.Root)
		if err != nil {
			return nil, err
		}
		defer unlock()
	}

	for _, p := range plan {
		written, err := WriteFileIfChanged(p.path, p.content)
		if err != nil {
			opts.Log.Log(weftlog.EventError, p.path, err.Error())
			return nil, err
		}
		if written {
			opts.Log.Log(weftlog.EventWrite, p.path, fmt.Sprintf("%d lines", p.lines))
		} else {
			opts.Log.Log(weftlog.EventSkip, p.path, "unchanged")
		}
		result.Files = append(result.Files, FileResult{Path: p.path, Written: written, Lines: p.lines})
	}
	return result, nil
}

// lockRoot takes an exclusive lock on the output root for the write
// phase.
func lockRoot(root string) (func(), error) {
	if root == "" {
		root = "."
	}
	fileLock := flock.New(filepath.Join(root, LockFileName))
	locked, err := fileLock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquiring write lock: %w", err)
	}
	if !locked {
		return nil, fmt.Errorf("another tangle is writing to %s (lock held)", root)
	}
	return func() { _ = fileLock.Unlock() }, nil
}

// resolvePath resolves a destination against the output root. Paths
// are taken verbatim from the directive; absolute ones stay absolute.
func resolvePath(root, path string) string {
	if root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(root, path)
}

// joinLines renders expanded lines as file content, one trailing
// newline per line.
func joinLines(lines []string) []byte {
	if len(lines) == 0 {
		return nil
	}
	return []byte(strings.Join(lines, "\n") + "\n")
}

// readLines splits a document stream into lines, newline characters
// removed.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}
