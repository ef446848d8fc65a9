package sync

import "time"

// Source identifies which pane initiated a scroll position change.
type Source int

const (
	SourceNone Source = iota
	SourceEditor
	SourcePreview
)

func (s Source) String() string {
	switch s {
	case SourceEditor:
		return "editor"
	case SourcePreview:
		return "preview"
	default:
		return "none"
	}
}

// DefaultSuppressWindow covers an in-flight smooth scroll triggered by the
// same action, so the reflected event from the other pane is ignored.
const DefaultSuppressWindow = 150 * time.Millisecond

// Guard breaks the editor→preview→editor scroll feedback loop. Exactly one
// side may be "in control" at a time, for a bounded window. Expiry is a pure
// function of the timestamps passed in, so there is no timer to manage; only
// the most recent mark matters.
type Guard struct {
	source Source
	until  time.Time
	window time.Duration
}

func NewGuard(window time.Duration) *Guard {
	if window <= 0 {
		window = DefaultSuppressWindow
	}
	return &Guard{window: window}
}

// MarkFrom records source as the initiator of the most recent scroll.
func (g *Guard) MarkFrom(source Source, now time.Time) {
	if source == SourceNone {
		g.Reset()
		return
	}
	g.source = source
	g.until = now.Add(g.window)
}

// ShouldSuppress reports whether source must stay quiet because a mark from
// the opposite side is still unexpired.
func (g *Guard) ShouldSuppress(source Source, now time.Time) bool {
	if source == SourceNone || g.source == SourceNone {
		return false
	}
	if !now.Before(g.until) {
		return false
	}
	return g.source != source
}

// Active returns the unexpired initiator, or SourceNone.
func (g *Guard) Active(now time.Time) Source {
	if g.source == SourceNone || !now.Before(g.until) {
		return SourceNone
	}
	return g.source
}

func (g *Guard) Reset() {
	g.source = SourceNone
	g.until = time.Time{}
}
