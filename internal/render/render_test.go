package render

import (
	"strings"
	"testing"
)

const sampleDoc = `# Heading

First paragraph with enough words to wrap when the pane is narrow.

- item one
- item two

` + "```go\nfmt.Println(\"hi\")\n```" + `

Closing paragraph.
`

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer(60, "")
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func TestRenderProducesOrderedBlocks(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t)

	res, err := r.RenderResult(sampleDoc)
	if err != nil {
		t.Fatalf("RenderResult: %v", err)
	}

	// Heading, paragraph, list, code fence, paragraph.
	if len(res.Blocks) != 5 {
		t.Fatalf("expected 5 top-level blocks, got %d", len(res.Blocks))
	}
	if res.Body == "" {
		t.Fatal("rendered body is empty")
	}

	prevEnd := -1
	for i, b := range res.Blocks {
		if b.Height < 1 {
			t.Fatalf("block %d has degenerate height %d", i, b.Height)
		}
		if b.Offset <= prevEnd {
			t.Fatalf("block %d offset %d does not follow previous end %d", i, b.Offset, prevEnd)
		}
		prevEnd = b.Offset + b.Height - 1
	}

	last := res.Blocks[len(res.Blocks)-1]
	if res.Height != last.Offset+last.Height {
		t.Fatalf("total height %d does not match last block end %d", res.Height, last.Offset+last.Height)
	}

	bodyLines := strings.Count(res.Body, "\n") + 1
	if bodyLines != res.Height {
		t.Fatalf("body has %d lines but height reports %d", bodyLines, res.Height)
	}
}

func TestRenderEmptyDocument(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t)

	body, blocks, err := r.Render("")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if body != "" || len(blocks) != 0 {
		t.Fatalf("empty document rendered to %q with %d blocks", body, len(blocks))
	}
}

func TestRenderCacheHit(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t)

	first, err := r.RenderResult(sampleDoc)
	if err != nil {
		t.Fatalf("first render: %v", err)
	}
	second, err := r.RenderResult(sampleDoc)
	if err != nil {
		t.Fatalf("second render: %v", err)
	}

	if first.Body != second.Body || len(first.Blocks) != len(second.Blocks) {
		t.Fatal("cached render differs from the original")
	}
}

func TestSetWidthRebuilds(t *testing.T) {
	t.Parallel()

	r := newTestRenderer(t)
	if err := r.SetWidth(100); err != nil {
		t.Fatalf("SetWidth: %v", err)
	}
	if r.Width() != 100 {
		t.Fatalf("width = %d, want 100", r.Width())
	}

	// Widths below the floor clamp instead of failing.
	if err := r.SetWidth(3); err != nil {
		t.Fatalf("SetWidth(3): %v", err)
	}
	if r.Width() != minWidth {
		t.Fatalf("width = %d, want clamp to %d", r.Width(), minWidth)
	}
}

func TestBlockSourcesSkipThematicBreaks(t *testing.T) {
	t.Parallel()

	sources := blockSources([]byte("para one\n\n---\n\npara two\n"))
	if len(sources) != 2 {
		t.Fatalf("expected 2 blocks around the thematic break, got %d", len(sources))
	}
	if !strings.Contains(sources[0], "para one") || !strings.Contains(sources[1], "para two") {
		t.Fatalf("unexpected block sources: %q", sources)
	}
}

func TestBlockSourcesRebuildFences(t *testing.T) {
	t.Parallel()

	sources := blockSources([]byte("```go\nx := 1\n```\n"))
	if len(sources) != 1 {
		t.Fatalf("expected 1 block, got %d", len(sources))
	}
	if !strings.HasPrefix(sources[0], "```go\n") || !strings.Contains(sources[0], "x := 1") {
		t.Fatalf("fence not rebuilt: %q", sources[0])
	}
}
