package notes

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/scribe-md/scribe/internal/handler"
	"github.com/scribe-md/scribe/internal/note"
	"github.com/scribe-md/scribe/internal/state"
)

func titleForView(viewName string) string {
	switch viewName {
	case "archive":
		return "Archived Notes"
	case "trash":
		return "Trashed Notes"
	default:
		return "Notes"
	}
}

// filesForView lists the markdown files belonging to a view. The archive
// and trash views walk only their own subtree.
func filesForView(s *state.State, viewName string) ([]string, error) {
	switch viewName {
	case "archive":
		return handler.NewFileHandler(filepath.Join(s.Vault, "archive")).WalkFiles(nil, nil)
	case "trash":
		return handler.NewFileHandler(filepath.Join(s.Vault, "trash")).WalkFiles(nil, nil)
	default:
		return s.Handler.WalkFiles([]string{"archive", "trash"}, nil)
	}
}

func renameFile(m *NoteListModel) error {
	s, ok := m.list.SelectedItem().(ListItem)
	if !ok {
		return fmt.Errorf("no note selected")
	}

	_, err := m.state.Handler.Rename(s.path, m.inputModel.Input.Value())
	return err
}

// createNote makes a fresh note from the prompt value, which may carry a
// leading subdirectory like "projects/idea".
func createNote(m *NoteListModel) (string, error) {
	value := strings.TrimSpace(m.inputModel.Input.Value())
	if value == "" {
		return "", fmt.Errorf("note name cannot be empty")
	}

	value = strings.TrimSuffix(value, ".md")
	subDir, name := "", value
	if idx := strings.LastIndex(value, "/"); idx >= 0 {
		subDir, name = value[:idx], value[idx+1:]
	}
	if name == "" {
		return "", fmt.Errorf("note name cannot be empty")
	}

	n := note.NewNote(m.state.Vault, subDir, name, nil)
	return n.Create()
}
