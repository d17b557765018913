package tui

// ResizeResult is what a completed resize gesture commits.
type ResizeResult struct {
	BookingID string
	// Span is the new length in slots, at least 1.
	Span int
}

// ResizeMachine is the resize gesture state machine. A press on a booking's
// resize handle starts it; vertical motion previews a new bottom edge;
// release commits the span. The span never shrinks below one slot and never
// extends past the end of the working day.
type ResizeMachine struct {
	active    bool
	bookingID string
	day, col  int
	startSlot int
	endSlot   int // exclusive preview end
	maxSlot   int // slot count of the working day
}

// Press starts a resize on a booking anchored at startSlot currently ending
// at endSlot (exclusive).
func (r *ResizeMachine) Press(bookingID string, day, col, startSlot, endSlot, maxSlot int) {
	r.active = true
	r.bookingID = bookingID
	r.day = day
	r.col = col
	r.startSlot = startSlot
	r.maxSlot = maxSlot
	r.endSlot = clampEnd(endSlot, startSlot, maxSlot)
}

// Motion previews the bottom edge at the given slot row. The hovered slot
// becomes the last covered slot.
func (r *ResizeMachine) Motion(slot int) {
	if !r.active {
		return
	}
	r.endSlot = clampEnd(slot+1, r.startSlot, r.maxSlot)
}

// Release commits the previewed span. Returns false when idle.
func (r *ResizeMachine) Release() (ResizeResult, bool) {
	if !r.active {
		return ResizeResult{}, false
	}
	result := ResizeResult{
		BookingID: r.bookingID,
		Span:      r.endSlot - r.startSlot,
	}
	r.reset()
	return result, true
}

// Cancel abandons the gesture with no result.
func (r *ResizeMachine) Cancel() {
	r.reset()
}

// Active reports whether a resize is in progress.
func (r *ResizeMachine) Active() bool {
	return r.active
}

// BookingID returns the id of the booking being resized.
func (r *ResizeMachine) BookingID() string {
	return r.bookingID
}

// Preview returns the location and previewed span of the active resize.
func (r *ResizeMachine) Preview() (day, col, startSlot, span int, ok bool) {
	if !r.active {
		return 0, 0, 0, 0, false
	}
	return r.day, r.col, r.startSlot, r.endSlot - r.startSlot, true
}

func (r *ResizeMachine) reset() {
	*r = ResizeMachine{}
}

// StepSpan is the keyboard resize path: one press grows or shrinks the
// booking by one slot. The result obeys the same bounds as dragging the
// edge.
func StepSpan(curSpan, delta, startSlot, maxSlot int) int {
	return clampEnd(startSlot+curSpan+delta, startSlot, maxSlot) - startSlot
}

// clampEnd bounds an exclusive end slot to [startSlot+1, maxSlot].
func clampEnd(end, startSlot, maxSlot int) int {
	if end < startSlot+1 {
		end = startSlot + 1
	}
	if end > maxSlot {
		end = maxSlot
	}
	return end
}
