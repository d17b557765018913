package tui

// CellRef identifies one slot cell on the visible board: a day index into
// the visible day set, a team column index, and a slot row.
type CellRef struct {
	Day  int
	Col  int
	Slot int
}

type dragState int

const (
	dragIdle dragState = iota
	dragPressed
	dragActive
)

// DragResultKind classifies what a completed press/release cycle meant.
type DragResultKind int

const (
	// DragNone means the machine was idle, nothing to do.
	DragNone DragResultKind = iota
	// DragClick is a press and release on the same cell: open the booking.
	DragClick
	// DragDrop is a finished drag: commit the move to Target.
	DragDrop
)

// DragResult is what Release hands back to the controller.
type DragResult struct {
	Kind      DragResultKind
	BookingID string
	// Target is the proposed anchor cell of the moved booking. Only set for
	// DragDrop.
	Target CellRef
}

// DragMachine is the drag-move gesture state machine. It tracks one booking
// from press through motion to release, entirely in cell coordinates; the
// layout resolves screen positions before events reach it.
//
// A press alone commits nothing. The machine arms on press, activates once
// motion crosses into a different cell, and only Release produces a result.
// Cancel (Escape, focus loss) abandons the gesture with no effect.
type DragMachine struct {
	state      dragState
	bookingID  string
	press      CellRef
	cur        CellRef
	grabOffset int // slots between the booking anchor and the grab point
}

// Press arms the machine on a booking cell. anchorSlot is the booking's
// anchor row, which may be above the pressed cell for multi-slot bookings.
func (d *DragMachine) Press(bookingID string, cell CellRef, anchorSlot int) {
	d.state = dragPressed
	d.bookingID = bookingID
	d.press = cell
	d.cur = cell
	d.grabOffset = cell.Slot - anchorSlot
}

// Motion updates the tracked position. The first motion into a different
// cell activates the drag; motion within the pressed cell does not.
func (d *DragMachine) Motion(cell CellRef) {
	switch d.state {
	case dragIdle:
		return
	case dragPressed:
		if cell != d.press {
			d.state = dragActive
		}
	}
	d.cur = cell
}

// Release completes the gesture. A release while still in the pressed state
// is a click; a release during an active drag is a drop at the current
// position, preserving the grab offset so the booking does not jump to put
// its anchor under the pointer.
func (d *DragMachine) Release() DragResult {
	defer d.reset()

	switch d.state {
	case dragPressed:
		return DragResult{Kind: DragClick, BookingID: d.bookingID}
	case dragActive:
		return DragResult{
			Kind:      DragDrop,
			BookingID: d.bookingID,
			Target: CellRef{
				Day:  d.cur.Day,
				Col:  d.cur.Col,
				Slot: d.cur.Slot - d.grabOffset,
			},
		}
	default:
		return DragResult{Kind: DragNone}
	}
}

// Cancel abandons the gesture with no result.
func (d *DragMachine) Cancel() {
	d.reset()
}

// Dragging reports whether a drag is active (past the click threshold).
func (d *DragMachine) Dragging() bool {
	return d.state == dragActive
}

// Armed reports whether a press is being tracked, active or not.
func (d *DragMachine) Armed() bool {
	return d.state != dragIdle
}

// BookingID returns the id of the booking being tracked.
func (d *DragMachine) BookingID() string {
	return d.bookingID
}

// Preview returns the proposed anchor cell while a drag is active.
func (d *DragMachine) Preview() (CellRef, bool) {
	if d.state != dragActive {
		return CellRef{}, false
	}
	return CellRef{
		Day:  d.cur.Day,
		Col:  d.cur.Col,
		Slot: d.cur.Slot - d.grabOffset,
	}, true
}

func (d *DragMachine) reset() {
	*d = DragMachine{}
}
