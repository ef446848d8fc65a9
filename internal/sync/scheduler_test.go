package sync

import (
	"testing"
	"time"
)

func TestScheduleLastRequestWins(t *testing.T) {
	t.Parallel()

	s := NewScheduler(50 * time.Millisecond)

	first, _ := s.Schedule("one\ntwo", 0, false)
	second, _ := s.Schedule("one\ntwo\nthree", 0, false)

	if _, ok := s.Fire(first); ok {
		t.Fatal("superseded token must not fire")
	}
	req, ok := s.Fire(second)
	if !ok {
		t.Fatal("latest token should fire")
	}
	if req.Content != "one\ntwo\nthree" {
		t.Fatalf("fired request carries stale content: %q", req.Content)
	}
}

func TestFireIsOneShot(t *testing.T) {
	t.Parallel()

	s := NewScheduler(0)

	seq, delay := s.Schedule("hello", 0, false)
	if delay != DefaultDebounce {
		t.Fatalf("zero delay should fall back to the default, got %v", delay)
	}

	if _, ok := s.Fire(seq); !ok {
		t.Fatal("first fire should succeed")
	}
	if _, ok := s.Fire(seq); ok {
		t.Fatal("second fire of the same token must be a no-op")
	}
}

func TestLineChangeGate(t *testing.T) {
	t.Parallel()

	s := NewScheduler(time.Millisecond)
	content := "alpha\nbeta\ngamma"

	// First sync from a fresh scheduler always follows the cursor.
	seq, _ := s.Schedule(content, 7, false)
	req, _ := s.Fire(seq)
	if !req.Scroll.SyncToCursor {
		t.Fatal("initial schedule should request a scroll follow")
	}
	if req.Scroll.CurrentLine != 2 || req.Scroll.TotalLines != 3 {
		t.Fatalf("unexpected line info: %+v", req.Scroll)
	}

	// Editing on the same line must not re-trigger a scroll.
	seq, _ = s.Schedule(content, 8, false)
	req, _ = s.Fire(seq)
	if req.Scroll.SyncToCursor {
		t.Fatal("same-line edit should be swallowed by the gate")
	}

	// Moving to another line reopens the gate.
	seq, _ = s.Schedule(content, 13, false)
	req, _ = s.Fire(seq)
	if !req.Scroll.SyncToCursor {
		t.Fatal("line change should request a scroll follow")
	}
}

func TestGateAdvancesOnlyWhenSyncRequested(t *testing.T) {
	t.Parallel()

	s := NewScheduler(time.Millisecond)

	seq, _ := s.Schedule("a\nb\nc", 4, false)
	if _, ok := s.Fire(seq); !ok {
		t.Fatal("fire failed")
	}

	// A superseded schedule never fires, so the gate must not move.
	s.Schedule("a\nb\nc", 0, false)
	seq, _ = s.Schedule("a\nb\nc", 4, false)
	req, _ := s.Fire(seq)
	if req.Scroll.SyncToCursor {
		t.Fatal("gate moved on a request that never fired")
	}
}

func TestTwoEditsInWindowRenderOnceWithoutExtraSync(t *testing.T) {
	t.Parallel()

	s := NewScheduler(50 * time.Millisecond)
	content := "one\ntwo\nthree"

	// Establish the synced position on line 2.
	seq, _ := s.Schedule(content, 4, false)
	if _, ok := s.Fire(seq); !ok {
		t.Fatal("initial fire failed")
	}

	// Two edits 10ms apart inside one 50ms window, cursor still on line 2.
	first, _ := s.Schedule(content+"!", 4, false)
	second, _ := s.Schedule(content+"!?", 4, false)

	renders := 0
	for _, tok := range []int{first, second} {
		if req, ok := s.Fire(tok); ok {
			renders++
			if req.Scroll.SyncToCursor {
				t.Fatal("same-position burst must not request extra scroll syncs")
			}
		}
	}
	if renders != 1 {
		t.Fatalf("burst collapsed into %d renders, want exactly 1", renders)
	}
}

func TestSyncNeeded(t *testing.T) {
	t.Parallel()

	s := NewScheduler(time.Millisecond)

	if !s.SyncNeeded(LineInfo{3, 10}) {
		t.Fatal("fresh position should need sync")
	}
	if s.SyncNeeded(LineInfo{3, 10}) {
		t.Fatal("repeated position should be gated")
	}
	if !s.SyncNeeded(LineInfo{4, 10}) {
		t.Fatal("moved cursor should need sync")
	}
}

func TestCancelInvalidatesPending(t *testing.T) {
	t.Parallel()

	s := NewScheduler(time.Millisecond)
	seq, _ := s.Schedule("text", 0, false)
	s.Cancel()

	if _, ok := s.Fire(seq); ok {
		t.Fatal("canceled token must not fire")
	}
}
