package sync

import "math"

// Block is one rendered top-level element (heading, paragraph, list, ...)
// with its vertical extent in the preview, measured in rows. Blocks arrive in
// source-document order; there is no 1:1 line-to-block mapping, only a
// monotonic ratio mapping.
type Block struct {
	Offset int
	Height int
}

// Metrics describes a pane at the moment a scroll target is computed.
type Metrics struct {
	PaneHeight    int
	ContentHeight int
	Blocks        []Block
}

// Strategy maps a buffer position onto a target row offset for one pane.
// Every strategy is monotonic in the current line and total for any input;
// the bool result is false when the position calls for no scroll at all.
type Strategy interface {
	TargetOffset(li LineInfo, m Metrics) (int, bool)
}

const (
	// DefaultLeadIn keeps the matched block from sitting flush against the
	// top edge of the preview.
	DefaultLeadIn = 2

	// JitterThreshold swallows rounding-induced micro-jumps while a smooth
	// scroll is still settling. Targets closer than this to the last applied
	// offset are treated as no-ops.
	JitterThreshold = 1
)

// Ratio scrolls proportionally: the cursor's relative line position maps
// straight onto the pane's scrollable span.
type Ratio struct{}

func (Ratio) TargetOffset(li LineInfo, m Metrics) (int, bool) {
	if li.TotalLines <= 1 {
		return 0, false
	}

	span := m.ContentHeight - m.PaneHeight
	if span < 0 {
		span = 0
	}

	target := int(math.Round(li.Ratio() * float64(span)))
	if target < 0 {
		target = 0
	}
	return target, true
}

// BlockAware picks the rendered block whose ordinal matches the cursor's
// line ratio and scrolls to its measured offset. When no blocks are
// available it falls back to Ratio.
type BlockAware struct {
	LeadIn int
}

func (s BlockAware) TargetOffset(li LineInfo, m Metrics) (int, bool) {
	if li.TotalLines <= 1 {
		return 0, false
	}
	if len(m.Blocks) == 0 {
		return Ratio{}.TargetOffset(li, m)
	}

	idx := int(li.Ratio() * float64(len(m.Blocks)))
	if idx >= len(m.Blocks) {
		idx = len(m.Blocks) - 1
	}
	if idx < 0 {
		idx = 0
	}

	lead := s.LeadIn
	if lead < 0 {
		lead = 0
	}

	target := m.Blocks[idx].Offset - lead
	if target < 0 {
		target = 0
	}
	return target, true
}
