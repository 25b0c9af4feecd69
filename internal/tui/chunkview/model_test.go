package chunkview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func testItems() []Item {
	return []Item{
		{Name: "setup", Lines: []string{"import os"}},
		{Name: "main", Dest: "main.py", Lines: []string{"def main():", "    pass"}},
		{Name: "broken", Err: "reference cycle: broken -> broken"},
	}
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCursorMovement(t *testing.T) {
	m := New("index.org", testItems())

	next, _ := m.Update(keyMsg("j"))
	m = next.(Model)
	if m.cursor != 1 {
		t.Errorf("cursor = %d after j, want 1", m.cursor)
	}

	next, _ = m.Update(keyMsg("G"))
	m = next.(Model)
	if m.cursor != 2 {
		t.Errorf("cursor = %d after G, want 2", m.cursor)
	}

	// Down at the bottom stays put.
	next, _ = m.Update(keyMsg("j"))
	m = next.(Model)
	if m.cursor != 2 {
		t.Errorf("cursor = %d, want 2", m.cursor)
	}

	next, _ = m.Update(keyMsg("g"))
	m = next.(Model)
	if m.cursor != 0 {
		t.Errorf("cursor = %d after g, want 0", m.cursor)
	}
}

func TestViewShowsSelectionAndDest(t *testing.T) {
	m := New("index.org", testItems())
	m.width, m.height = 80, 24

	view := m.View()
	if !strings.Contains(view, "index.org") {
		t.Error("view missing document name")
	}
	if !strings.Contains(view, "main.py") {
		t.Error("view missing destination path")
	}
	if !strings.Contains(view, "import os") {
		t.Error("view missing preview of selected chunk")
	}
}

func TestViewShowsExpansionError(t *testing.T) {
	m := New("index.org", testItems())
	m.width, m.height = 80, 24
	m.cursor = 2

	if view := m.View(); !strings.Contains(view, "reference cycle") {
		t.Error("view missing expansion error for broken chunk")
	}
}

func TestQuitKey(t *testing.T) {
	m := New("index.org", testItems())
	_, cmd := m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("q produced no command, want tea.Quit")
	}
}
