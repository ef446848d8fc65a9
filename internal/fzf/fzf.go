package fzf

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/termenv"

	"github.com/scribe-md/scribe/internal/frontmatter"
	"github.com/scribe-md/scribe/internal/handler"
)

// FuzzyFinder picks a note out of the vault with a live markdown preview.
type FuzzyFinder struct {
	handler  *handler.FileHandler
	vaultDir string
	Header   string
	files    []string
}

func NewFuzzyFinder(vaultDir, header string) *FuzzyFinder {
	h := handler.NewFileHandler(vaultDir)
	return &FuzzyFinder{vaultDir: vaultDir, Header: header, handler: h}
}

func (f *FuzzyFinder) Run() (string, error) {
	return f.findAndReturn("")
}

func (f *FuzzyFinder) RunWithQuery(query string) (string, error) {
	return f.findAndReturn(query)
}

func (f *FuzzyFinder) find(query string) (int, error) {
	files, err := f.handler.WalkFiles([]string{"archive", "trash"}, nil)
	if err != nil {
		return -1, fmt.Errorf("error listing files: %w", err)
	}

	f.files = files

	return f.fuzzySelectFile(query)
}

// findAndReturn handles the logic of finding and returning the selected file
func (f *FuzzyFinder) findAndReturn(query string) (string, error) {
	idx, err := f.find(query)
	if err != nil {
		f.handleFuzzySelectError(err)
		return "", err
	}

	if idx == -1 {
		return "", fmt.Errorf("no file selected")
	}

	return f.files[idx], nil
}

// fuzzySelectFile performs fuzzy selection on files based on query
func (f *FuzzyFinder) fuzzySelectFile(query string) (int, error) {
	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderMarkdownPreview),
	}

	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}

	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	var labels []string
	for _, file := range f.files {
		content, err := os.ReadFile(file)
		if err != nil {
			return -1, err
		}

		meta, _ := frontmatter.Parse(string(content))

		title := meta.Title
		if title == "" {
			title = filepath.Base(file)
		}

		var label string
		if len(meta.Tags) == 0 {
			label = fmt.Sprintf("%s [No tags] ", title)
		} else {
			label = fmt.Sprintf("%s [Tags: %s] ", title, strings.Join(meta.Tags, ", "))
		}

		labels = append(labels, label)
	}

	// Run the find on the files, showing the formatted titles
	return fuzzyfinder.Find(f.files, func(i int) string {
		return labels[i]
	}, options...)
}

func (f *FuzzyFinder) renderMarkdownPreview(
	i, w, h int,
) string {
	if i == -1 {
		return ""
	}

	content, err := os.ReadFile(f.files[i])
	if err != nil {
		return "Error reading file"
	}

	r, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(100),
		glamour.WithColorProfile(termenv.ANSI256),
	)

	markdown, err := r.Render(string(content))
	if err != nil {
		return "Error rendering markdown"
	}

	return markdown
}

// handleFuzzySelectError prints appropriate messages for fuzzy select errors
func (f *FuzzyFinder) handleFuzzySelectError(err error) {
	if err == fuzzyfinder.ErrAbort {
		fmt.Println("No file selected")
	} else {
		fmt.Println("Error selecting file:", err)
	}
}
