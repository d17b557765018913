package tui

import "testing"

func TestDragClickWithoutMotion(t *testing.T) {
	var d DragMachine

	d.Press("b1", CellRef{Day: 0, Col: 1, Slot: 4}, 4)
	result := d.Release()

	if result.Kind != DragClick {
		t.Fatalf("expected DragClick, got %v", result.Kind)
	}
	if result.BookingID != "b1" {
		t.Errorf("expected booking b1, got %s", result.BookingID)
	}
	if d.Armed() {
		t.Error("machine should be idle after release")
	}
}

func TestDragMotionWithinPressedCellStaysClick(t *testing.T) {
	var d DragMachine

	cell := CellRef{Day: 0, Col: 1, Slot: 4}
	d.Press("b1", cell, 4)
	d.Motion(cell) // pointer wobble inside the same cell
	if d.Dragging() {
		t.Fatal("motion within the pressed cell must not activate the drag")
	}

	if result := d.Release(); result.Kind != DragClick {
		t.Errorf("expected DragClick, got %v", result.Kind)
	}
}

func TestDragDrop(t *testing.T) {
	var d DragMachine

	d.Press("b1", CellRef{Day: 0, Col: 0, Slot: 2}, 2)
	d.Motion(CellRef{Day: 0, Col: 2, Slot: 6})
	if !d.Dragging() {
		t.Fatal("crossing into another cell must activate the drag")
	}

	result := d.Release()
	if result.Kind != DragDrop {
		t.Fatalf("expected DragDrop, got %v", result.Kind)
	}
	want := CellRef{Day: 0, Col: 2, Slot: 6}
	if result.Target != want {
		t.Errorf("expected target %+v, got %+v", want, result.Target)
	}
}

func TestDragDropPreservesGrabOffset(t *testing.T) {
	var d DragMachine

	// Booking anchored at slot 2; grabbed on its third covered row.
	d.Press("b1", CellRef{Day: 1, Col: 0, Slot: 4}, 2)
	d.Motion(CellRef{Day: 3, Col: 1, Slot: 10})

	result := d.Release()
	if result.Kind != DragDrop {
		t.Fatalf("expected DragDrop, got %v", result.Kind)
	}
	// Anchor lands 2 slots above the pointer, same as when grabbed.
	want := CellRef{Day: 3, Col: 1, Slot: 8}
	if result.Target != want {
		t.Errorf("expected target %+v, got %+v", want, result.Target)
	}
}

func TestDragCancel(t *testing.T) {
	var d DragMachine

	d.Press("b1", CellRef{Day: 0, Col: 0, Slot: 2}, 2)
	d.Motion(CellRef{Day: 0, Col: 1, Slot: 3})
	d.Cancel()

	if d.Armed() {
		t.Error("cancel must return the machine to idle")
	}
	if result := d.Release(); result.Kind != DragNone {
		t.Errorf("release after cancel must be a no-op, got %v", result.Kind)
	}
}

func TestDragPreview(t *testing.T) {
	var d DragMachine

	if _, ok := d.Preview(); ok {
		t.Error("idle machine has no preview")
	}

	d.Press("b1", CellRef{Day: 0, Col: 0, Slot: 3}, 2)
	if _, ok := d.Preview(); ok {
		t.Error("pressed-but-not-dragging machine has no preview")
	}

	d.Motion(CellRef{Day: 0, Col: 1, Slot: 5})
	preview, ok := d.Preview()
	if !ok {
		t.Fatal("active drag must expose a preview")
	}
	want := CellRef{Day: 0, Col: 1, Slot: 4}
	if preview != want {
		t.Errorf("expected preview %+v, got %+v", want, preview)
	}
}

func TestDragReleaseWhenIdle(t *testing.T) {
	var d DragMachine

	if result := d.Release(); result.Kind != DragNone {
		t.Errorf("expected DragNone, got %v", result.Kind)
	}
}
