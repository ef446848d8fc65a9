package notes

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/scribe-md/scribe/internal/config"
	"github.com/scribe-md/scribe/internal/handler"
	"github.com/scribe-md/scribe/internal/state"
)

func newTestState(t *testing.T) *state.State {
	t.Helper()

	vault := t.TempDir()
	return &state.State{
		Config: &config.Config{
			VaultDir: vault,
			Editor:   config.EditorConfig{PreviewStyle: "dracula", SyncScroll: true},
		},
		Handler: handler.NewFileHandler(vault),
		Vault:   vault,
	}
}

func TestNewNoteListModelListsVault(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	mustWriteFile(t, filepath.Join(s.Vault, "one.md"), "---\ntitle: One\n---\n")
	mustWriteFile(t, filepath.Join(s.Vault, "trash", "gone.md"), "trashed\n")

	m, err := NewNoteListModel(s, "")
	if err != nil {
		t.Fatalf("NewNoteListModel returned error: %v", err)
	}

	items := castToListItems(m.list.Items())
	if len(items) != 1 || items[0].Title() != "One" {
		t.Fatalf("unexpected items: %v", titles(items))
	}
}

func TestSwapViewShowsTrash(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	mustWriteFile(t, filepath.Join(s.Vault, "keep.md"), "keep\n")
	mustWriteFile(t, filepath.Join(s.Vault, "trash", "gone.md"), "trashed\n")

	m, err := NewNoteListModel(s, "default")
	if err != nil {
		t.Fatalf("NewNoteListModel returned error: %v", err)
	}

	m.swapView("trash")

	items := castToListItems(m.list.Items())
	if len(items) != 1 || items[0].fileName != "gone.md" {
		t.Fatalf("unexpected trash items: %v", titles(items))
	}
}

func TestOpenNoteRecordsSelection(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	path := filepath.Join(s.Vault, "pick.md")
	mustWriteFile(t, path, "pick me\n")

	m, err := NewNoteListModel(s, "default")
	if err != nil {
		t.Fatalf("NewNoteListModel returned error: %v", err)
	}

	cmd := m.openNote()
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if m.Selected() != path {
		t.Fatalf("Selected() = %q, want %q", m.Selected(), path)
	}
}

func TestCreateNoteFromPrompt(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	m, err := NewNoteListModel(s, "default")
	if err != nil {
		t.Fatalf("NewNoteListModel returned error: %v", err)
	}

	m.toggleCreation()
	m.inputModel.Input.SetValue("projects/roadmap")

	path, err := createNote(m)
	if err != nil {
		t.Fatalf("createNote returned error: %v", err)
	}
	if want := filepath.Join(s.Vault, "projects", "roadmap.md"); path != want {
		t.Fatalf("createNote returned %q, want %q", path, want)
	}

	if _, err := createNote(m); err == nil {
		t.Fatal("expected duplicate creation to fail")
	}

	m.inputModel.Input.SetValue("  ")
	if _, err := createNote(m); err == nil {
		t.Fatal("expected empty name to fail")
	}
}

func TestRenameFileFromPrompt(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	mustWriteFile(t, filepath.Join(s.Vault, "old.md"), "content\n")

	m, err := NewNoteListModel(s, "default")
	if err != nil {
		t.Fatalf("NewNoteListModel returned error: %v", err)
	}

	m.toggleRename()
	if got := m.inputModel.Input.Value(); got != "old" {
		t.Fatalf("rename prompt seeded with %q", got)
	}

	m.inputModel.Input.SetValue("new")
	if err := renameFile(m); err != nil {
		t.Fatalf("renameFile returned error: %v", err)
	}

	m.refresh()
	items := castToListItems(m.list.Items())
	if len(items) != 1 || !strings.HasSuffix(items[0].path, "new.md") {
		t.Fatalf("unexpected items after rename: %v", titles(items))
	}
}
