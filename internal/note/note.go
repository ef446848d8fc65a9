package note

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/scribe-md/scribe/internal/frontmatter"
)

// Note locates a markdown note inside the vault before it necessarily
// exists on disk.
type Note struct {
	VaultDir string
	SubDir   string
	Filename string
	Tags     []string
}

func NewNote(vaultDir, subDir, filename string, tags []string) *Note {
	return &Note{
		VaultDir: vaultDir,
		SubDir:   subDir,
		Filename: filename,
		Tags:     tags,
	}
}

func (n *Note) GetFilepath() string {
	return filepath.Join(n.VaultDir, n.SubDir, n.Filename+".md")
}

func (n *Note) EnsurePath() (string, error) {
	dir := filepath.Join(n.VaultDir, n.SubDir)
	filePath := filepath.Join(dir, n.Filename+".md")

	_, err := os.Stat(dir)
	if err == nil {
		return filePath, nil
	}

	if os.IsNotExist(err) {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return "", err
		}
		return filePath, nil
	}

	return "", err
}

func (n *Note) FileExists() (bool, string, error) {
	noteFilePath := n.GetFilepath()
	_, err := os.Stat(noteFilePath)

	if err == nil {
		return true, noteFilePath, nil
	}

	if os.IsNotExist(err) {
		return false, noteFilePath, nil
	}
	return false, noteFilePath, err
}

// Create writes the note skeleton with YAML frontmatter. It fails when
// the note already exists.
func (n *Note) Create() (string, error) {
	path, err := n.EnsurePath()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("note %q already exists", n.Filename)
	}

	date := time.Now().Format("2006-01-02")

	var b strings.Builder
	fmt.Fprintf(&b, "---\ntitle: %s\ndate: %s\n", n.Filename, date)
	if len(n.Tags) > 0 {
		b.WriteString("tags:\n")
		for _, tag := range n.Tags {
			fmt.Fprintf(&b, "  - %s\n", tag)
		}
	}
	b.WriteString("---\n\n")

	if err := Save(path, b.String()); err != nil {
		return "", err
	}
	return path, nil
}

// Load reads a note's full text.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Save writes content through a temp file in the same directory so a
// crash mid-write never truncates the note.
func Save(path, content string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Chmod(tmpPath, 0o644); err != nil {
		os.Remove(tmpPath)
		return err
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}

// Title returns the display title for a note: the frontmatter title when
// present, otherwise the filename without its extension.
func Title(path, content string) string {
	meta, _ := frontmatter.Parse(content)
	if strings.TrimSpace(meta.Title) != "" {
		return meta.Title
	}
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
