package sync

import (
	"testing"
	"time"
)

func TestGuardSuppressesOppositeSideWithinWindow(t *testing.T) {
	t.Parallel()

	base := time.Unix(0, 0)
	g := NewGuard(150 * time.Millisecond)

	g.MarkFrom(SourceEditor, base)

	if !g.ShouldSuppress(SourcePreview, base.Add(50*time.Millisecond)) {
		t.Fatal("preview should be suppressed while the editor mark is unexpired")
	}
	if g.ShouldSuppress(SourceEditor, base.Add(50*time.Millisecond)) {
		t.Fatal("the marking side itself is never suppressed")
	}
}

func TestGuardExpires(t *testing.T) {
	t.Parallel()

	base := time.Unix(0, 0)
	g := NewGuard(150 * time.Millisecond)

	g.MarkFrom(SourceEditor, base)

	if g.ShouldSuppress(SourcePreview, base.Add(150*time.Millisecond)) {
		t.Fatal("suppression must end exactly at the window boundary")
	}
	if g.Active(base.Add(200*time.Millisecond)) != SourceNone {
		t.Fatal("expired mark should read as SourceNone")
	}
}

func TestGuardLatestMarkWins(t *testing.T) {
	t.Parallel()

	base := time.Unix(0, 0)
	g := NewGuard(100 * time.Millisecond)

	g.MarkFrom(SourceEditor, base)
	g.MarkFrom(SourcePreview, base.Add(50*time.Millisecond))

	at := base.Add(80 * time.Millisecond)
	if !g.ShouldSuppress(SourceEditor, at) {
		t.Fatal("editor should be suppressed after the preview re-marked")
	}
	if g.ShouldSuppress(SourcePreview, at) {
		t.Fatal("preview holds the mark and should not be suppressed")
	}
}

func TestGuardReset(t *testing.T) {
	t.Parallel()

	base := time.Unix(0, 0)
	g := NewGuard(0)

	g.MarkFrom(SourceEditor, base)
	g.Reset()

	if g.ShouldSuppress(SourcePreview, base.Add(time.Millisecond)) {
		t.Fatal("reset must clear any active mark")
	}
}

func TestGuardMarkNoneClears(t *testing.T) {
	t.Parallel()

	base := time.Unix(0, 0)
	g := NewGuard(time.Second)

	g.MarkFrom(SourcePreview, base)
	g.MarkFrom(SourceNone, base)

	if g.Active(base.Add(time.Millisecond)) != SourceNone {
		t.Fatal("marking SourceNone should clear the guard")
	}
}
