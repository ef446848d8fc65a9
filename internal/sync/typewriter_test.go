package sync

import "testing"

func TestTypewriterCentersMedianLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		viewport      int
		content       int
		total         int
		wantAtMedian  int
	}{
		{"tall content", 20, 100, 9, 40},
		{"content fits", 40, 20, 9, 0},
		{"exact fit", 30, 30, 5, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			median := (tt.total + 1) / 2
			m := Metrics{PaneHeight: tt.viewport, ContentHeight: tt.content}

			got, ok := Typewriter{}.TargetOffset(LineInfo{median, tt.total}, m)
			if !ok {
				t.Fatal("expected a centering target")
			}
			if got != tt.wantAtMedian {
				t.Fatalf(
					"median centering = %d, want max(0, %d/2-%d/2) = %d",
					got, tt.content, tt.viewport, tt.wantAtMedian,
				)
			}
		})
	}
}

func TestTypewriterDegenerateTotal(t *testing.T) {
	t.Parallel()

	m := Metrics{PaneHeight: 20, ContentHeight: 100}
	if _, ok := (Typewriter{}).TargetOffset(LineInfo{1, 1}, m); ok {
		t.Fatal("totalLines <= 1 must produce no scroll")
	}
}

func TestTypewriterBottomPadding(t *testing.T) {
	t.Parallel()

	m := Metrics{PaneHeight: 20, ContentHeight: 100}

	padded, _ := Typewriter{BottomPadding: 40}.TargetOffset(LineInfo{9, 9}, m)
	bare, _ := Typewriter{}.TargetOffset(LineInfo{9, 9}, m)
	if padded >= bare {
		t.Fatalf("bottom padding should pull the target up: padded %d, bare %d", padded, bare)
	}

	// Padding beyond content clamps rather than going negative.
	got, ok := Typewriter{BottomPadding: 500}.TargetOffset(LineInfo{5, 9}, m)
	if !ok || got != 0 {
		t.Fatalf("over-padding = (%d, %v), want (0, true)", got, ok)
	}
}

func TestTypewriterFirstLineClampsToZero(t *testing.T) {
	t.Parallel()

	m := Metrics{PaneHeight: 20, ContentHeight: 100}
	got, ok := Typewriter{}.TargetOffset(LineInfo{1, 50}, m)
	if !ok || got != 0 {
		t.Fatalf("first line = (%d, %v), want (0, true)", got, ok)
	}
}
