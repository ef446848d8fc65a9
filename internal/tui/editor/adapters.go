package editor

// bufferAdapter exposes the editing pane to the sync engine.
type bufferAdapter struct {
	m *Model
}

func (a bufferAdapter) Content() string       { return a.m.pane.Content() }
func (a bufferAdapter) CursorOffset() int     { return a.m.pane.CursorOffset() }
func (a bufferAdapter) ScrollOffset() int     { return a.m.pane.ScrollOffset() }
func (a bufferAdapter) SetScrollOffset(n int) { a.m.pane.SetScrollOffset(n) }
func (a bufferAdapter) ContentHeight() int    { return a.m.pane.ContentHeight() }
func (a bufferAdapter) ViewportHeight() int   { return a.m.pane.ViewportHeight() }

// previewAdapter exposes the preview viewport to the sync engine.
type previewAdapter struct {
	m *Model
}

func (a previewAdapter) Visible() bool { return a.m.previewVisible }

func (a previewAdapter) SetContent(body string) {
	a.m.previewBody = body
	a.m.preview.SetContent(body)
}

func (a previewAdapter) ScrollOffset() int     { return a.m.preview.YOffset }
func (a previewAdapter) SetScrollOffset(n int) { a.m.preview.SetYOffset(n) }
func (a previewAdapter) ContentHeight() int    { return a.m.preview.TotalLineCount() }
func (a previewAdapter) ViewportHeight() int   { return a.m.preview.Height }
