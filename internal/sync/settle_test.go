package sync

import "testing"

func TestSettleRequiresTwoFrames(t *testing.T) {
	t.Parallel()

	var s Settle
	s.Arm(7)

	if s.Tick(7) {
		t.Fatal("first frame must not settle")
	}
	if !s.Pending() {
		t.Fatal("settle should still be pending after one frame")
	}
	if !s.Tick(7) {
		t.Fatal("second frame should settle")
	}
	if s.Tick(7) {
		t.Fatal("settled sequence must not settle again")
	}
}

func TestSettleIgnoresStaleSequence(t *testing.T) {
	t.Parallel()

	var s Settle
	s.Arm(1)
	s.Arm(2)

	if s.Tick(1) {
		t.Fatal("orphaned sequence must be ignored")
	}
	if s.Tick(2) {
		t.Fatal("first frame of the new sequence must not settle")
	}
	if !s.Tick(2) {
		t.Fatal("new sequence should settle on its second frame")
	}
}

func TestSettleCancel(t *testing.T) {
	t.Parallel()

	var s Settle
	s.Arm(3)
	s.Cancel()

	if s.Pending() {
		t.Fatal("cancel should clear pending state")
	}
	if s.Tick(3) {
		t.Fatal("canceled sequence must not settle")
	}
}
