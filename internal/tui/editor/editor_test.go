package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scribe-md/scribe/internal/config"
	"github.com/scribe-md/scribe/internal/handler"
	"github.com/scribe-md/scribe/internal/note"
	"github.com/scribe-md/scribe/internal/state"
)

func newTestModel(t *testing.T, content string) *Model {
	t.Helper()

	vault := t.TempDir()
	path := filepath.Join(vault, "note.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write note: %v", err)
	}

	s := &state.State{
		Config: &config.Config{
			VaultDir: vault,
			Editor: config.EditorConfig{
				SyncScroll:   true,
				PreviewStyle: "dracula",
				WordWrap:     80,
			},
		},
		Handler: handler.NewFileHandler(vault),
		Vault:   vault,
	}

	m, err := NewModel(s, path)
	if err != nil {
		t.Fatalf("NewModel returned error: %v", err)
	}
	m.resize(100, 30)
	return m
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelLoadsNote(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "---\ntitle: Field Notes\n---\nhello\n")

	if m.title != "Field Notes" {
		t.Fatalf("title = %q", m.title)
	}
	if m.dirty {
		t.Fatal("fresh model should not be dirty")
	}
	if !m.previewVisible {
		t.Fatal("preview should start visible")
	}
}

func TestEditMarksDirtyAndSchedulesRender(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "hello\n")

	_, cmd := m.Update(keyRunes("x"))
	if cmd == nil {
		t.Fatal("expected a render tick command")
	}
	if !m.dirty {
		t.Fatal("edit should mark the model dirty")
	}
}

func TestSaveClearsDirty(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "hello\n")
	m.Update(keyRunes("x"))

	m.save()

	if m.dirty {
		t.Fatal("save should clear the dirty flag")
	}
	if m.status != "saved" {
		t.Fatalf("status = %q", m.status)
	}

	content, err := note.Load(m.path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !strings.HasPrefix(content, "x") {
		t.Fatalf("saved content = %q", content)
	}
}

func TestSaveDetectsExternalChange(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "original\n")
	m.Update(keyRunes("x"))

	// Replace the file behind the editor's back.
	if err := os.WriteFile(m.path, []byte("someone else\n"), 0o644); err != nil {
		t.Fatalf("failed to rewrite note: %v", err)
	}
	future := time.Now().Add(2 * time.Second)
	if err := os.Chtimes(m.path, future, future); err != nil {
		t.Fatalf("failed to bump modtime: %v", err)
	}

	m.save()
	if !strings.Contains(m.status, "changed on disk") {
		t.Fatalf("status = %q", m.status)
	}
	content, _ := note.Load(m.path)
	if content != "someone else\n" {
		t.Fatalf("first save overwrote the file: %q", content)
	}

	// A second save is an explicit overwrite.
	m.save()
	if m.status != "saved" {
		t.Fatalf("status after overwrite = %q", m.status)
	}
	content, _ = note.Load(m.path)
	if !strings.HasPrefix(content, "x") {
		t.Fatalf("overwrite did not apply: %q", content)
	}
}

func TestQuitGuardsUnsavedChanges(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "hello\n")
	m.Update(keyRunes("x"))

	quit := tea.KeyMsg{Type: tea.KeyCtrlQ}

	_, cmd := m.Update(quit)
	if cmd != nil {
		t.Fatal("first quit with unsaved changes should be blocked")
	}
	if !strings.Contains(m.status, "unsaved") {
		t.Fatalf("status = %q", m.status)
	}

	_, cmd = m.Update(quit)
	if cmd == nil {
		t.Fatal("second quit should go through")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("expected a quit message")
	}
}

func TestGrammarWithoutProviderReportsStatus(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "hello\n")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	if cmd != nil {
		t.Fatal("no provider should mean no command")
	}
	if !strings.Contains(m.status, "not configured") {
		t.Fatalf("status = %q", m.status)
	}
}

func TestImagePickerInsertsMarkdown(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "\n")

	img := filepath.Join(m.state.Vault, "assets", "diagram.png")
	if err := os.MkdirAll(filepath.Dir(img), 0o755); err != nil {
		t.Fatalf("failed to create assets dir: %v", err)
	}
	if err := os.WriteFile(img, []byte("png"), 0o644); err != nil {
		t.Fatalf("failed to write image: %v", err)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	if !m.imagesOpen {
		t.Fatalf("image picker did not open: %q", m.status)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.imagesOpen {
		t.Fatal("picker should close after insert")
	}
	if want := "![diagram](assets/diagram.png)"; !strings.Contains(m.pane.Content(), want) {
		t.Fatalf("content = %q, want %q inserted", m.pane.Content(), want)
	}
}

func TestToggleFocusRoutesKeysToPreview(t *testing.T) {
	t.Parallel()

	m := newTestModel(t, "hello\n")

	version := m.pane.Version()
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlW})
	if m.focus != focusPreview {
		t.Fatal("focus did not move to the preview")
	}

	m.Update(keyRunes("x"))
	if m.pane.Version() != version {
		t.Fatal("editor pane accepted input while blurred")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.focus != focusEditor {
		t.Fatal("esc did not return focus to the editor")
	}
}
