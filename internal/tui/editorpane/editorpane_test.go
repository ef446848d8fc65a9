package editorpane

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func newFocused(width, height int) *Model {
	m := New(width, height)
	m.Focus()
	return &m
}

func TestTypingInsertsAtCursor(t *testing.T) {
	t.Parallel()

	m := newFocused(40, 10)
	m.Update(keyRunes("hey"))
	m.Update(keyType(tea.KeyEnter))
	m.Update(keyRunes("there"))

	if got := m.Content(); got != "hey\nthere" {
		t.Fatalf("Content() = %q", got)
	}
	if m.CursorLine() != 1 {
		t.Fatalf("cursor line = %d, want 1", m.CursorLine())
	}
	if m.Version() == 0 {
		t.Fatal("version did not advance on edits")
	}
}

func TestBackspaceJoinsLines(t *testing.T) {
	t.Parallel()

	m := newFocused(40, 10)
	m.SetContent("one\ntwo")
	m.MoveCursorTo(1)
	m.Update(keyType(tea.KeyHome))
	m.Update(keyType(tea.KeyBackspace))

	if got := m.Content(); got != "onetwo" {
		t.Fatalf("Content() = %q", got)
	}
	if m.CursorLine() != 0 {
		t.Fatalf("cursor line = %d, want 0", m.CursorLine())
	}
}

func TestDeleteAtLineEndJoinsNextLine(t *testing.T) {
	t.Parallel()

	m := newFocused(40, 10)
	m.SetContent("one\ntwo")
	m.Update(keyType(tea.KeyEnd))
	m.Update(keyType(tea.KeyDelete))

	if got := m.Content(); got != "onetwo" {
		t.Fatalf("Content() = %q", got)
	}
}

func TestCursorOffsetCountsBytes(t *testing.T) {
	t.Parallel()

	m := newFocused(40, 10)
	m.SetContent("héllo\nworld")
	m.MoveCursorTo(1)
	m.Update(keyType(tea.KeyEnd))

	// "héllo" is 6 bytes, newline 1, "world" 5.
	if got := m.CursorOffset(); got != 12 {
		t.Fatalf("CursorOffset() = %d, want 12", got)
	}
}

func TestScrollFollowsCursorWithMargin(t *testing.T) {
	t.Parallel()

	m := newFocused(40, 10)
	m.ScrollMargin = 2

	var content string
	for i := 0; i < 50; i++ {
		content += "line\n"
	}
	m.SetContent(content)
	m.MoveCursorTo(0)
	if m.ScrollOffset() != 0 {
		t.Fatalf("offset = %d, want 0", m.ScrollOffset())
	}

	m.MoveCursorTo(20)
	// Cursor row must sit margin rows above the bottom edge.
	if got, want := m.ScrollOffset(), 20-10+1+2; got != want {
		t.Fatalf("offset = %d, want %d", got, want)
	}

	m.MoveCursorTo(5)
	if got, want := m.ScrollOffset(), 5-2; got != want {
		t.Fatalf("offset = %d, want %d", got, want)
	}
}

func TestCenterModeKeepsCursorCentered(t *testing.T) {
	t.Parallel()

	m := newFocused(40, 10)
	m.Center = true

	var content string
	for i := 0; i < 50; i++ {
		content += "line\n"
	}
	m.SetContent(content)

	m.MoveCursorTo(30)
	if got := m.ScrollOffset(); got != 25 {
		t.Fatalf("offset = %d, want 25", got)
	}

	m.MoveCursorTo(2)
	if got := m.ScrollOffset(); got != 0 {
		t.Fatalf("offset = %d, want clamp to 0", got)
	}
}

func TestSetScrollOffsetClamps(t *testing.T) {
	t.Parallel()

	m := newFocused(40, 10)
	m.SetContent("a\nb\nc")

	m.SetScrollOffset(99)
	if got := m.ScrollOffset(); got != 2 {
		t.Fatalf("offset = %d, want 2", got)
	}
	m.SetScrollOffset(-4)
	if got := m.ScrollOffset(); got != 0 {
		t.Fatalf("offset = %d, want 0", got)
	}
}

func TestBlurredPaneIgnoresKeys(t *testing.T) {
	t.Parallel()

	m := New(40, 10)
	m.SetContent("original")
	version := m.Version()

	m.Update(keyRunes("x"))

	if m.Content() != "original" || m.Version() != version {
		t.Fatalf("blurred pane accepted input: %q", m.Content())
	}
}

func TestCutLineRemovesRow(t *testing.T) {
	t.Parallel()

	m := newFocused(40, 10)
	m.SetContent("one\ntwo\nthree")
	m.MoveCursorTo(1)

	m.Update(keyType(tea.KeyCtrlU))

	if got := m.Content(); got != "one\nthree" {
		t.Fatalf("Content() = %q", got)
	}
	if m.CursorLine() != 1 {
		t.Fatalf("cursor line = %d, want 1", m.CursorLine())
	}
}
