package cmd

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/scribe-md/scribe/internal/config"
	"github.com/scribe-md/scribe/internal/state"
)

func newTestState(vault string) *state.State {
	return &state.State{
		Config: &config.Config{VaultDir: vault},
		Vault:  vault,
	}
}

func TestResolveVaultPathRelative(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	s := newTestState(vault)

	got, err := ResolveVaultPath(nil, s, "notes/today.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(vault, "notes", "today.md")
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolveVaultPathRejectsEscape(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	s := newTestState(vault)

	if _, err := ResolveVaultPath(nil, s, "../outside.md"); err == nil {
		t.Fatalf("expected an error for a path outside the vault")
	}
}

func TestResolveVaultPathUntrashPrefix(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	s := newTestState(vault)

	cmd := &cobra.Command{Use: "untrash"}
	got, err := ResolveVaultPath(cmd, s, "note.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := filepath.Join(vault, "trash", "note.md")
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestResolveVaultPathRequiresConfig(t *testing.T) {
	t.Parallel()

	if _, err := ResolveVaultPath(nil, &state.State{}, "note.md"); err == nil {
		t.Fatalf("expected an error when the state has no config")
	}
}
