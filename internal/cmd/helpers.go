package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/OWNER/weft/internal/chunk"
	"github.com/OWNER/weft/internal/config"
	"github.com/OWNER/weft/internal/style"
	"github.com/OWNER/weft/internal/tangle"
	"github.com/OWNER/weft/internal/weftlog"
)

// stdinName is the document argument that selects standard input.
const stdinName = "-"

// openDocument opens a document argument for reading. "-" selects
// standard input.
func openDocument(path string) (io.ReadCloser, error) {
	if path == stdinName {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening document: %w", err)
	}
	return f, nil
}

// documentDir returns the directory config discovery starts from for
// a document argument.
func documentDir(path string) string {
	if path == stdinName {
		return "."
	}
	return filepath.Dir(path)
}

// buildOptions merges the project config governing doc with
// command-line flag values. Flag values win when set.
func buildOptions(doc, flagRoot string, flagMaxDepth int, dryRun bool) (tangle.Options, error) {
	cfg, err := config.LoadForDir(documentDir(doc))
	if err != nil {
		return tangle.Options{}, err
	}
	applyColorConfig(cfg)

	opts := tangle.Options{
		Source:   doc,
		Root:     cfg.Root,
		MaxDepth: cfg.MaxDepth,
		DryRun:   dryRun,
	}
	if flagRoot != "" {
		opts.Root = flagRoot
	}
	if flagMaxDepth > 0 {
		opts.MaxDepth = flagMaxDepth
	}
	if cfg.LogFile != "" {
		opts.Log = weftlog.New(cfg.LogFile)
	}
	return opts, nil
}

// applyColorConfig honors a "color" setting from weft.toml. The
// --no-color flag and TTY detection have already run by this point,
// so only explicit overrides act here.
func applyColorConfig(cfg *config.Config) {
	if cfg.Color == "never" {
		style.Disable()
	}
}

// loadTable opens and loads a document into a chunk table.
func loadTable(doc string) (*chunk.Table, error) {
	r, err := openDocument(doc)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	table, err := tangle.Load(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", doc, err)
	}
	return table, nil
}
