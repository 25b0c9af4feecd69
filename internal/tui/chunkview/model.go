package chunkview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Item is one browsable chunk: its name and pre-expanded lines. Err
// holds the expansion failure (e.g. a reference cycle) when the lines
// could not be produced.
type Item struct {
	Name   string
	Blocks int
	Dest   string // destination path when this chunk starts a file
	Lines  []string
	Err    string
}

// Model is the bubbletea model for the chunk browser.
type Model struct {
	doc    string
	items  []Item
	cursor int
	offset int // preview scroll offset

	keys     KeyMap
	help     help.Model
	showHelp bool
	width    int
	height   int
}

// New creates a chunk browser for doc over pre-expanded items.
func New(doc string, items []Item) Model {
	return Model{
		doc:   doc,
		items: items,
		keys:  DefaultKeyMap(),
		help:  help.New(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp

		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
				m.offset = 0
			}

		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
				m.offset = 0
			}

		case key.Matches(msg, m.keys.Top):
			m.cursor = 0
			m.offset = 0

		case key.Matches(msg, m.keys.Bottom):
			if len(m.items) > 0 {
				m.cursor = len(m.items) - 1
			}
			m.offset = 0

		case key.Matches(msg, m.keys.PageUp):
			m.offset -= m.previewHeight()
			if m.offset < 0 {
				m.offset = 0
			}

		case key.Matches(msg, m.keys.PageDown):
			m.offset += m.previewHeight()
			if max := m.maxOffset(); m.offset > max {
				m.offset = max
			}
		}
	}
	return m, nil
}

// previewHeight returns the number of expansion lines the preview
// panel can show.
func (m Model) previewHeight() int {
	h := m.height - 6 // header, borders, help line
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) maxOffset() int {
	if len(m.items) == 0 {
		return 0
	}
	max := len(m.items[m.cursor].Lines) - m.previewHeight()
	if max < 0 {
		return 0
	}
	return max
}

// View implements tea.Model.
func (m Model) View() string {
	if len(m.items) == 0 {
		return headerStyle.Render("weft browse: "+m.doc) + "\n  no chunks\n"
	}

	header := headerStyle.Render(fmt.Sprintf("weft browse: %s  (%d chunks)", m.doc, len(m.items)))

	var list strings.Builder
	for i, it := range m.items {
		line := it.Name
		if it.Dest != "" {
			line += " " + destStyle.Render("→ "+it.Dest)
		}
		if i == m.cursor {
			line = selectedStyle.Render("▸ " + line)
		} else {
			line = "  " + line
		}
		list.WriteString(line + "\n")
	}

	preview := m.renderPreview()

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		listPanelStyle.Render(strings.TrimRight(list.String(), "\n")),
		previewPanelStyle.Render(preview),
	)

	helpView := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.showHelp {
		helpView = m.help.FullHelpView(m.keys.FullHelp())
	}

	return header + "\n" + body + "\n" + helpView
}

func (m Model) renderPreview() string {
	it := m.items[m.cursor]
	if it.Err != "" {
		return errStyle.Render(it.Err)
	}

	height := m.previewHeight()
	lines := it.Lines
	if m.offset < len(lines) {
		lines = lines[m.offset:]
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	if len(lines) == 0 {
		return destStyle.Render("(empty chunk)")
	}
	return strings.Join(lines, "\n")
}
