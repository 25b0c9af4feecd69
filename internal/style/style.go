// Package style defines shared lipgloss styles for weft CLI output.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Core styles used across commands.
var (
	Bold = lipgloss.NewStyle().Bold(true)
	Dim  = lipgloss.NewStyle().Faint(true)

	Good = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#2e7d32", Dark: "#aad94c"})
	Warn = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#b26a00", Dark: "#ffb454"})
	Bad  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#c62828", Dark: "#f07178"}).Bold(true)
)

// Prefixes for status lines.
var (
	WritePrefix = Good.Render("✓")
	SkipPrefix  = Dim.Render("=")
	ErrorPrefix = Bad.Render("✗")
	ArrowPrefix = Dim.Render("→")
)

// IsTTY reports whether stdout is a terminal. Commands use it to skip
// styling and interactive features when output is piped.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Disable strips color and emphasis from all shared styles. Called for
// --no-color and non-TTY output.
func Disable() {
	plain := lipgloss.NewStyle()
	Bold, Dim, Good, Warn, Bad = plain, plain, plain, plain, plain
	WritePrefix = "✓"
	SkipPrefix = "="
	ErrorPrefix = "✗"
	ArrowPrefix = "→"
}
