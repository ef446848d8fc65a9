package unarchive

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/scribe-md/scribe/internal/config"
	"github.com/scribe-md/scribe/internal/handler"
	"github.com/scribe-md/scribe/internal/state"
)

func TestUnarchiveRestoresNote(t *testing.T) {
	vault := t.TempDir()
	archived := filepath.Join(vault, "archive", "notes")
	if err := os.MkdirAll(archived, 0o755); err != nil {
		t.Fatalf("failed to create archive dir: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(vault, "notes"), 0o755); err != nil {
		t.Fatalf("failed to create notes dir: %v", err)
	}
	src := filepath.Join(archived, "note.md")
	if err := os.WriteFile(src, []byte("# note\n"), 0o644); err != nil {
		t.Fatalf("failed to write note: %v", err)
	}

	s := &state.State{
		Config:  &config.Config{VaultDir: vault},
		Handler: handler.NewFileHandler(vault),
		Vault:   vault,
	}

	cmd := NewCmdUnarchive(s)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{filepath.Join("archive", "notes", "note.md")})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	restored := filepath.Join(vault, "notes", "note.md")
	if _, err := os.Stat(restored); err != nil {
		t.Fatalf("expected note at %s: %v", restored, err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatalf("expected archived copy to be gone, got %v", err)
	}
}
