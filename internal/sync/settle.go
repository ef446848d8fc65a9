package sync

// settleFrames is the number of consecutive frame confirmations required
// after a content swap before the pane's layout can be trusted for offset
// math. A single frame boundary is not guaranteed to follow layout
// completion, so two are required.
const settleFrames = 2

// Settle tracks the wait between a render and the scroll that depends on its
// layout. It is cancelable by sequence: arming for a new render orphans any
// older in-flight wait.
type Settle struct {
	seq       int
	remaining int
}

// Arm starts a fresh wait for the render identified by seq.
func (s *Settle) Arm(seq int) {
	s.seq = seq
	s.remaining = settleFrames
}

// Tick consumes one frame confirmation for seq. It returns true exactly once,
// when the final confirmation lands; stale sequences are ignored.
func (s *Settle) Tick(seq int) bool {
	if seq != s.seq || s.remaining == 0 {
		return false
	}
	s.remaining--
	return s.remaining == 0
}

// Pending reports whether more confirmations are awaited.
func (s *Settle) Pending() bool {
	return s.remaining > 0
}

// Cancel abandons any in-flight wait.
func (s *Settle) Cancel() {
	s.remaining = 0
	s.seq = -1
}
