package sync

import "time"

// DefaultDebounce is the quiet period that collapses a burst of keystrokes
// into a single render pass.
const DefaultDebounce = 50 * time.Millisecond

// ScrollData carries the scroll intent that accompanies a render.
type ScrollData struct {
	Typewriter   bool
	CurrentLine  int
	TotalLines   int
	SyncToCursor bool
	ScrollRatio  float64
}

// RenderRequest is the ephemeral value handed from the scheduler to the
// render pipeline. It is never persisted.
type RenderRequest struct {
	Content string
	Scroll  ScrollData
}

// Scheduler debounces edit events and owns the line-change gate: a scroll
// follow is only requested when the cursor has moved to a different line, not
// on every keystroke on the same line.
type Scheduler struct {
	delay   time.Duration
	seq     int
	pending RenderRequest
	armed   bool

	lastSyncedLine  int
	lastSyncedTotal int
}

func NewScheduler(delay time.Duration) *Scheduler {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Scheduler{delay: delay}
}

// Schedule registers an edit and returns the sequence token plus the delay
// after which Fire should be called. Only the most recent token survives a
// debounce window; earlier tokens fire as no-ops.
func (s *Scheduler) Schedule(content string, cursor int, typewriter bool) (int, time.Duration) {
	li := LineInfoAt(content, cursor)

	s.seq++
	s.pending = RenderRequest{
		Content: content,
		Scroll: ScrollData{
			Typewriter:   typewriter,
			CurrentLine:  li.CurrentLine,
			TotalLines:   li.TotalLines,
			SyncToCursor: li.CurrentLine != s.lastSyncedLine || li.TotalLines != s.lastSyncedTotal,
			ScrollRatio:  li.Ratio(),
		},
	}
	s.armed = true

	return s.seq, s.delay
}

// Fire returns the pending request if seq is still the latest token. The
// synced position advances only when the request asked for a scroll follow.
func (s *Scheduler) Fire(seq int) (RenderRequest, bool) {
	if !s.armed || seq != s.seq {
		return RenderRequest{}, false
	}
	s.armed = false

	req := s.pending
	if req.Scroll.SyncToCursor {
		s.lastSyncedLine = req.Scroll.CurrentLine
		s.lastSyncedTotal = req.Scroll.TotalLines
	}
	return req, true
}

// SyncNeeded applies the line-change gate to a cursor move that does not
// require rendering, recording the position when it differs.
func (s *Scheduler) SyncNeeded(li LineInfo) bool {
	if li.CurrentLine == s.lastSyncedLine && li.TotalLines == s.lastSyncedTotal {
		return false
	}
	s.lastSyncedLine = li.CurrentLine
	s.lastSyncedTotal = li.TotalLines
	return true
}

// Record marks li as synced without gating.
func (s *Scheduler) Record(li LineInfo) {
	s.lastSyncedLine = li.CurrentLine
	s.lastSyncedTotal = li.TotalLines
}

// Cancel drops any pending request and invalidates outstanding tokens.
func (s *Scheduler) Cancel() {
	s.armed = false
	s.seq++
}
