package sync

import "math"

// Typewriter keeps the active line pinned to the vertical midpoint of the
// pane. Both panes apply it with the same LineInfo, so they track the same
// logical position even though their content heights differ.
type Typewriter struct {
	BottomPadding int
}

func (s Typewriter) TargetOffset(li LineInfo, m Metrics) (int, bool) {
	if li.TotalLines <= 1 {
		return 0, false
	}

	content := float64(m.ContentHeight - s.BottomPadding)
	if content < 0 {
		content = 0
	}

	position := li.Ratio() * content
	target := int(math.Round(position - float64(m.PaneHeight)/2))
	if target < 0 {
		target = 0
	}
	return target, true
}
