package render

import (
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/scribe-md/scribe/internal/cache"
	"github.com/scribe-md/scribe/internal/sync"
)

const (
	// DefaultStyle matches the preview styling used across the app.
	DefaultStyle = "dracula"

	defaultWidth  = 80
	minWidth      = 20
	cacheEntries  = 64
	blockGapLines = 1
)

// Result is a rendered document: the styled body, one measured extent per
// top-level markdown block in source order, and the total height in rows.
type Result struct {
	Body   string
	Blocks []sync.Block
	Height int
}

// Renderer converts raw markdown into a displayable body while measuring
// where each top-level block lands, so the scroll mapper can align the
// preview to the cursor. Each block is rendered separately and stacked;
// offsets are exact by construction.
type Renderer struct {
	width int
	style string
	term  *glamour.TermRenderer
	cache *cache.LRUCache
}

func NewRenderer(width int, style string) (*Renderer, error) {
	if style == "" {
		style = DefaultStyle
	}
	r := &Renderer{
		style: style,
		cache: cache.NewLRUCache(cacheEntries),
	}
	if err := r.SetWidth(width); err != nil {
		return nil, err
	}
	return r, nil
}

// SetWidth rebuilds the underlying term renderer for a new wrap width.
// Cached results keyed on the old width are left to age out.
func (r *Renderer) SetWidth(width int) error {
	if width <= 0 {
		width = defaultWidth
	}
	if width < minWidth {
		width = minWidth
	}
	if r.term != nil && width == r.width {
		return nil
	}

	term, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
		glamour.WithColorProfile(termenv.ANSI256),
	)
	if err != nil {
		return fmt.Errorf("failed to build term renderer: %w", err)
	}

	r.width = width
	r.term = term
	return nil
}

func (r *Renderer) Width() int { return r.width }

// Render implements the renderer boundary consumed by the sync engine.
func (r *Renderer) Render(text string) (string, []sync.Block, error) {
	res, err := r.RenderResult(text)
	if err != nil {
		return "", nil, err
	}
	return res.Body, res.Blocks, nil
}

// RenderResult renders text, serving repeated renders of identical content
// from the LRU.
func (r *Renderer) RenderResult(content string) (Result, error) {
	key := fmt.Sprintf("%x:%d:%s", sha256.Sum256([]byte(content)), r.width, r.style)
	if v, ok := r.cache.Get(key); ok {
		return v.(Result), nil
	}

	res, err := r.renderBlocks(content)
	if err != nil {
		return Result{}, err
	}

	r.cache.Put(key, res)
	return res, nil
}

func (r *Renderer) renderBlocks(content string) (Result, error) {
	sources := blockSources([]byte(content))
	if len(sources) == 0 {
		return Result{}, nil
	}

	var body strings.Builder
	blocks := make([]sync.Block, 0, len(sources))
	offset := 0

	for i, src := range sources {
		fragment, err := r.term.Render(src)
		if err != nil {
			return Result{}, fmt.Errorf("failed to render block: %w", err)
		}
		fragment = strings.Trim(fragment, "\n")

		height := strings.Count(fragment, "\n") + 1
		blocks = append(blocks, sync.Block{Offset: offset, Height: height})

		if i > 0 {
			body.WriteString(strings.Repeat("\n", blockGapLines))
		}
		body.WriteString(fragment)
		if i < len(sources)-1 {
			body.WriteString("\n")
		}
		offset += height + blockGapLines
	}

	return Result{
		Body:   body.String(),
		Blocks: blocks,
		Height: offset - blockGapLines,
	}, nil
}

// blockSources returns the markdown source of each top-level block in
// document order. Nodes that own no source lines (thematic breaks, blank
// runs) are skipped; the mapper tolerates the approximation. Fenced code
// blocks are rebuilt because their AST segments cover only the interior.
func blockSources(source []byte) []string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var sources []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if fenced, ok := n.(*ast.FencedCodeBlock); ok {
			sources = append(sources, fencedSource(fenced, source))
			continue
		}
		if start, stop, ok := nodeSpan(n); ok && stop > start {
			if stop > len(source) {
				stop = len(source)
			}
			sources = append(sources, string(source[start:stop]))
		}
	}
	return sources
}

func fencedSource(n *ast.FencedCodeBlock, source []byte) string {
	var b strings.Builder
	b.WriteString("```")
	if lang := n.Language(source); lang != nil {
		b.Write(lang)
	}
	b.WriteString("\n")
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	b.WriteString("```\n")
	return b.String()
}

// nodeSpan finds the byte range a node covers, aggregating descendants for
// container nodes like lists that carry no segments themselves.
func nodeSpan(n ast.Node) (int, int, bool) {
	if lines := n.Lines(); lines != nil && lines.Len() > 0 {
		return lines.At(0).Start, lines.At(lines.Len() - 1).Stop, true
	}

	start, stop := -1, -1
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		s, e, ok := nodeSpan(c)
		if !ok {
			continue
		}
		if start < 0 || s < start {
			start = s
		}
		if e > stop {
			stop = e
		}
	}
	if start < 0 {
		return 0, 0, false
	}
	return start, stop, true
}
