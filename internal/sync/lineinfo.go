package sync

import "strings"

// LineInfo is the cursor's logical position inside the buffer, recomputed per
// event and never cached across edits.
type LineInfo struct {
	CurrentLine int
	TotalLines  int
}

// LineInfoAt derives the LineInfo for a cursor byte offset into content.
// Out-of-range offsets are clamped, and an empty document counts as one line.
func LineInfoAt(content string, cursor int) LineInfo {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(content) {
		cursor = len(content)
	}

	return LineInfo{
		CurrentLine: 1 + strings.Count(content[:cursor], "\n"),
		TotalLines:  1 + strings.Count(content, "\n"),
	}
}

// Ratio is the cursor's relative position in the document, 0 at the first
// line and 1 at the last. Single-line documents map to 0.
func (li LineInfo) Ratio() float64 {
	if li.TotalLines <= 1 {
		return 0
	}

	ratio := float64(li.CurrentLine-1) / float64(li.TotalLines-1)
	if ratio < 0 {
		return 0
	}
	if ratio > 1 {
		return 1
	}
	return ratio
}
