// Package chunkview provides a TUI for browsing a document's chunks
// and their expansions.
package chunkview

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#0969da", Dark: "#59c2ff"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#6e7781", Dark: "#636b73"}
	colorError   = lipgloss.AdaptiveColor{Light: "#c62828", Dark: "#f07178"}
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Padding(0, 1)

	listPanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorMuted).
			Padding(0, 1)

	previewPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorMuted).
				Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	destStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	errStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)
)
