package sync

import (
	"time"

	"github.com/scribe-md/scribe/internal/frontmatter"
)

// Buffer is the editable text pane as seen by the engine. Offsets and
// heights are measured in rows; the scroll offset is the index of the first
// visible row.
type Buffer interface {
	Content() string
	CursorOffset() int
	ScrollOffset() int
	SetScrollOffset(int)
	ContentHeight() int
	ViewportHeight() int
}

// Preview is the rendered read-only pane as seen by the engine.
type Preview interface {
	Visible() bool
	SetContent(body string)
	ScrollOffset() int
	SetScrollOffset(int)
	ContentHeight() int
	ViewportHeight() int
}

// Renderer turns stripped markup into a displayable body plus the ordered
// block extents the mapper needs. The engine treats it as a black box.
type Renderer interface {
	Render(text string) (string, []Block, error)
}

// Options tune the orchestrator. Zero values select the defaults.
type Options struct {
	Debounce       time.Duration
	SuppressWindow time.Duration
	LeadIn         int
	BottomPadding  int
	SyncScroll     bool
	Typewriter     bool
	Now            func() time.Time
}

// Orchestrator is the façade over the scheduler, mapper, typewriter and loop
// guard. It consumes edit, cursor, scroll and mode-change events and issues
// render and scroll commands to the two panes. The caller owns the real
// timers: scheduling methods hand back (seq, delay) instructions, which keeps
// every decision a function of its inputs and the injected clock.
type Orchestrator struct {
	buf      Buffer
	prev     Preview
	renderer Renderer

	sched  *Scheduler
	guard  *Guard
	settle Settle
	now    func() time.Time

	typewriter bool
	syncScroll bool
	leadIn     int
	bottomPad  int

	blocks        []Block
	pendingScroll ScrollData
	hasPending    bool

	lastPreviewTarget int
	previewApplied    bool
	closed            bool
}

func NewOrchestrator(buf Buffer, prev Preview, renderer Renderer, opts Options) *Orchestrator {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	leadIn := opts.LeadIn
	if leadIn == 0 {
		leadIn = DefaultLeadIn
	}

	return &Orchestrator{
		buf:        buf,
		prev:       prev,
		renderer:   renderer,
		sched:      NewScheduler(opts.Debounce),
		guard:      NewGuard(opts.SuppressWindow),
		now:        now,
		typewriter: opts.Typewriter,
		syncScroll: opts.SyncScroll,
		leadIn:     leadIn,
		bottomPad:  opts.BottomPadding,
	}
}

// HandleEdit registers a text change. The caller must arrange for FireRender
// to be invoked with the returned token after the returned delay; rapid edits
// supersede earlier tokens.
func (o *Orchestrator) HandleEdit() (seq int, delay time.Duration, ok bool) {
	if o.closed || o.buf == nil {
		return 0, 0, false
	}
	seq, delay = o.sched.Schedule(o.buf.Content(), o.buf.CursorOffset(), o.typewriter)
	return seq, delay, true
}

// FireRender runs the debounced render pass for seq: strip frontmatter,
// render, swap the preview body, and arm the layout settle. It reports
// whether seq was still current; when true the caller must deliver
// SettleTick confirmations on subsequent frames.
func (o *Orchestrator) FireRender(seq int) bool {
	if o.closed {
		return false
	}
	req, ok := o.sched.Fire(seq)
	if !ok {
		return false
	}

	body := frontmatter.Strip(req.Content)
	rendered, blocks, err := o.renderer.Render(body)
	if err != nil {
		// Keep the previous preview; the next edit re-triggers.
		return false
	}

	o.blocks = blocks
	if o.prev != nil && o.prev.Visible() {
		o.prev.SetContent(rendered)
	}

	o.pendingScroll = req.Scroll
	o.hasPending = req.Scroll.SyncToCursor
	o.settle.Arm(seq)
	return true
}

// SettleTick consumes one frame confirmation for seq and applies the pending
// scroll once layout has settled. It returns true while more confirmations
// are wanted.
func (o *Orchestrator) SettleTick(seq int) bool {
	if o.closed {
		return false
	}
	if !o.settle.Tick(seq) {
		return o.settle.Pending()
	}

	if o.hasPending {
		o.hasPending = false
		sd := o.pendingScroll
		li := LineInfo{CurrentLine: sd.CurrentLine, TotalLines: sd.TotalLines}
		if sd.Typewriter {
			o.centerBuffer(li)
		}
		o.syncPreviewTo(li)
	}
	return false
}

// HandleCursorMove follows a cursor or selection change that did not edit
// text: no re-render, straight to scroll mapping, still gated on the line
// actually changing.
func (o *Orchestrator) HandleCursorMove() {
	if o.closed || o.buf == nil {
		return
	}
	li := LineInfoAt(o.buf.Content(), o.buf.CursorOffset())
	if !o.sched.SyncNeeded(li) {
		return
	}
	if o.typewriter {
		o.centerBuffer(li)
	}
	o.syncPreviewTo(li)
}

// HandlePreviewScroll mirrors a user scroll of the preview back onto the
// buffer via the scroll ratio. Typewriter mode is editor-led, so the event
// is ignored there.
func (o *Orchestrator) HandlePreviewScroll() {
	if o.closed || o.typewriter || !o.syncScroll {
		return
	}
	if o.buf == nil || o.prev == nil || !o.prev.Visible() {
		return
	}

	now := o.now()
	if o.guard.ShouldSuppress(SourcePreview, now) {
		return
	}

	span := o.prev.ContentHeight() - o.prev.ViewportHeight()
	if span <= 0 {
		return
	}
	ratio := float64(o.prev.ScrollOffset()) / float64(span)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}

	bufSpan := o.buf.ContentHeight() - o.buf.ViewportHeight()
	if bufSpan < 0 {
		bufSpan = 0
	}
	target := int(ratio*float64(bufSpan) + 0.5)
	if diff := target - o.buf.ScrollOffset(); diff <= JitterThreshold && diff >= -JitterThreshold {
		return
	}

	o.buf.SetScrollOffset(target)
	o.guard.MarkFrom(SourcePreview, now)
}

// SetTypewriter toggles typewriter centering and re-aligns both panes once.
func (o *Orchestrator) SetTypewriter(on bool) {
	if o.closed || o.typewriter == on {
		return
	}
	o.typewriter = on
	o.ForceSync()
}

// SetSyncScroll toggles scroll following; enabling re-aligns once.
func (o *Orchestrator) SetSyncScroll(on bool) {
	if o.closed || o.syncScroll == on {
		return
	}
	o.syncScroll = on
	if on {
		o.ForceSync()
	}
}

// PreviewShown re-aligns after the preview pane becomes visible again.
func (o *Orchestrator) PreviewShown() {
	o.ForceSync()
}

func (o *Orchestrator) Typewriter() bool { return o.typewriter }
func (o *Orchestrator) SyncScroll() bool { return o.syncScroll }

// ForceSync issues a one-shot sync from the current cursor, bypassing the
// line-change gate and the jitter check. Mode changes always re-align once.
func (o *Orchestrator) ForceSync() {
	if o.closed || o.buf == nil {
		return
	}
	li := LineInfoAt(o.buf.Content(), o.buf.CursorOffset())
	o.sched.Record(li)
	o.previewApplied = false
	if o.typewriter {
		o.centerBuffer(li)
	}
	o.syncPreviewTo(li)
}

// Teardown cancels all pending debounce and settle work. The orchestrator is
// inert afterwards.
func (o *Orchestrator) Teardown() {
	o.closed = true
	o.sched.Cancel()
	o.settle.Cancel()
	o.guard.Reset()
}

func (o *Orchestrator) previewStrategy() Strategy {
	if o.typewriter {
		return Typewriter{BottomPadding: o.bottomPad}
	}
	return BlockAware{LeadIn: o.leadIn}
}

func (o *Orchestrator) syncPreviewTo(li LineInfo) {
	if !o.syncScroll && !o.typewriter {
		return
	}
	if o.prev == nil || !o.prev.Visible() {
		return
	}

	now := o.now()
	if o.guard.ShouldSuppress(SourceEditor, now) {
		return
	}

	m := Metrics{
		PaneHeight:    o.prev.ViewportHeight(),
		ContentHeight: o.prev.ContentHeight(),
		Blocks:        o.blocks,
	}
	target, ok := o.previewStrategy().TargetOffset(li, m)
	if !ok {
		return
	}
	if o.previewApplied {
		if diff := target - o.lastPreviewTarget; diff <= JitterThreshold && diff >= -JitterThreshold {
			return
		}
	}

	o.prev.SetScrollOffset(target)
	o.lastPreviewTarget = target
	o.previewApplied = true
	o.guard.MarkFrom(SourceEditor, now)
}

func (o *Orchestrator) centerBuffer(li LineInfo) {
	if o.buf == nil {
		return
	}
	m := Metrics{
		PaneHeight:    o.buf.ViewportHeight(),
		ContentHeight: o.buf.ContentHeight(),
	}
	target, ok := Typewriter{BottomPadding: o.bottomPad}.TargetOffset(li, m)
	if !ok {
		return
	}
	if target != o.buf.ScrollOffset() {
		o.buf.SetScrollOffset(target)
	}
}
