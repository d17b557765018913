package tui

import "testing"

func TestResizeGrow(t *testing.T) {
	var r ResizeMachine

	// Booking at slot 2 covering 2 slots; drag the edge down to slot 7.
	r.Press("b1", 0, 0, 2, 4, 20)
	r.Motion(7)

	result, ok := r.Release()
	if !ok {
		t.Fatal("expected a committed resize")
	}
	if result.BookingID != "b1" {
		t.Errorf("expected booking b1, got %s", result.BookingID)
	}
	if result.Span != 6 {
		t.Errorf("expected span 6 (slots 2..7 inclusive), got %d", result.Span)
	}
	if r.Active() {
		t.Error("machine should be idle after release")
	}
}

func TestResizeShrinkFloorsAtOneSlot(t *testing.T) {
	var r ResizeMachine

	r.Press("b1", 0, 0, 4, 8, 20)
	r.Motion(0) // dragged above the anchor

	result, ok := r.Release()
	if !ok {
		t.Fatal("expected a committed resize")
	}
	if result.Span != 1 {
		t.Errorf("span must never go below 1, got %d", result.Span)
	}
}

func TestResizeClampsToDayEnd(t *testing.T) {
	var r ResizeMachine

	r.Press("b1", 0, 0, 18, 19, 20)
	r.Motion(40) // dragged far past the last slot

	result, ok := r.Release()
	if !ok {
		t.Fatal("expected a committed resize")
	}
	if result.Span != 2 {
		t.Errorf("expected span clamped to day end (2 slots), got %d", result.Span)
	}
}

func TestResizeReleaseWithoutMotionKeepsSpan(t *testing.T) {
	var r ResizeMachine

	r.Press("b1", 0, 0, 2, 5, 20)
	result, ok := r.Release()
	if !ok {
		t.Fatal("expected a committed resize")
	}
	if result.Span != 3 {
		t.Errorf("expected the current span 3, got %d", result.Span)
	}
}

func TestResizeCancel(t *testing.T) {
	var r ResizeMachine

	r.Press("b1", 0, 0, 2, 4, 20)
	r.Motion(10)
	r.Cancel()

	if r.Active() {
		t.Error("cancel must return the machine to idle")
	}
	if _, ok := r.Release(); ok {
		t.Error("release after cancel must not commit")
	}
}

func TestResizePreview(t *testing.T) {
	var r ResizeMachine

	if _, _, _, _, ok := r.Preview(); ok {
		t.Error("idle machine has no preview")
	}

	r.Press("b1", 2, 1, 4, 6, 20)
	r.Motion(9)

	day, col, start, span, ok := r.Preview()
	if !ok {
		t.Fatal("active resize must expose a preview")
	}
	if day != 2 || col != 1 || start != 4 || span != 6 {
		t.Errorf("unexpected preview day=%d col=%d start=%d span=%d", day, col, start, span)
	}
}

func TestStepSpan(t *testing.T) {
	tests := []struct {
		name                              string
		curSpan, delta, startSlot, maxSlot int
		want                              int
	}{
		{"grow one slot", 2, 1, 4, 20, 3},
		{"shrink one slot", 2, -1, 4, 20, 1},
		{"shrink floors at one", 1, -1, 4, 20, 1},
		{"grow clamps at day end", 15, 1, 4, 20, 16},
		{"grow at day end is a no-op", 16, 1, 4, 20, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StepSpan(tt.curSpan, tt.delta, tt.startSlot, tt.maxSlot)
			if got != tt.want {
				t.Errorf("StepSpan(%d, %d, %d, %d) = %d, want %d",
					tt.curSpan, tt.delta, tt.startSlot, tt.maxSlot, got, tt.want)
			}
		})
	}
}
