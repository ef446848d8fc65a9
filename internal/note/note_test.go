package note

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateWritesFrontmatterSkeleton(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	n := NewNote(vault, "ideas", "morning-pages", []string{"daily", "draft"})

	path, err := n.Create()
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if want := filepath.Join(vault, "ideas", "morning-pages.md"); path != want {
		t.Fatalf("Create returned %q, want %q", path, want)
	}

	content, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	for _, want := range []string{"title: morning-pages", "  - daily", "  - draft"} {
		if !strings.Contains(content, want) {
			t.Fatalf("skeleton missing %q:\n%s", want, content)
		}
	}

	if _, err := n.Create(); err == nil {
		t.Fatal("expected second Create to fail")
	}
}

func TestCreateWithoutTagsOmitsTagBlock(t *testing.T) {
	t.Parallel()

	vault := t.TempDir()
	n := NewNote(vault, "", "plain", nil)

	path, err := n.Create()
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	content, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if strings.Contains(content, "tags:") {
		t.Fatalf("tag block should be absent:\n%s", content)
	}
}

func TestSaveReplacesContentAtomically(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "note.md")

	if err := Save(path, "first\n"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if err := Save(path, "second\n"); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	content, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if content != "second\n" {
		t.Fatalf("Load returned %q, want %q", content, "second\n")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir returned error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("temp files left behind: %v", entries)
	}
}

func TestTitlePrefersFrontmatter(t *testing.T) {
	t.Parallel()

	content := "---\ntitle: Proper Title\n---\nbody\n"
	if got := Title("/vault/some-file.md", content); got != "Proper Title" {
		t.Fatalf("Title returned %q", got)
	}

	if got := Title("/vault/some-file.md", "no frontmatter\n"); got != "some-file" {
		t.Fatalf("Title returned %q", got)
	}
}
