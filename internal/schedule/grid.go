package schedule

import (
	"time"

	"github.com/glenxmac/crewboard/internal/crew"
	"github.com/glenxmac/crewboard/internal/dateutil"
)

// CellKind classifies one cell of a team column.
type CellKind int

const (
	// CellEmpty is a bookable slot.
	CellEmpty CellKind = iota
	// CellBooking is the anchor cell of a booking, rendered with its full
	// content and RowSpan.
	CellBooking
	// CellCovered is a slot covered by a multi-slot booking anchored above
	// it. Renderers must skip it, not draw it as a separate cell.
	CellCovered
)

// Cell is one slot of one team column.
type Cell struct {
	Kind    CellKind
	Booking *crew.Booking // set on CellBooking only
	RowSpan int           // set on CellBooking only
}

// Column is one team's cells for a day, aligned to the slot sequence.
type Column struct {
	Team  *crew.Team
	Cells []Cell
}

// DayGrid is the render matrix for one calendar day: one column per team in
// display order, each with Slots.Count() cells.
type DayGrid struct {
	Date    time.Time
	Columns []Column
}

// BuildDayGrid projects bookings onto the team columns for one day.
//
// Bookings are dropped silently (not an error) when their start time is not
// a slot label, their team is not in the provided list, or their date is not
// the grid's date, so stale references never break a render.
// Overlapping stored bookings are not validated here; the last one in
// iteration order wins the anchor cell. Validation happens before writes,
// not on read.
func BuildDayGrid(slots *Slots, teams []*crew.Team, bookings []*crew.Booking, date time.Time) *DayGrid {
	g := &DayGrid{Date: dateutil.TruncateToDay(date)}

	byTeam := make(map[string]int, len(teams))
	for i, t := range teams {
		byTeam[t.ID] = i
		g.Columns = append(g.Columns, Column{
			Team:  t,
			Cells: make([]Cell, slots.Count()),
		})
	}

	for _, b := range bookings {
		if !dateutil.SameDay(b.Date, g.Date) {
			continue
		}
		col, ok := byTeam[b.TeamID]
		if !ok {
			continue
		}
		start, ok := slots.Index(b.StartTime)
		if !ok {
			continue
		}

		span := slots.Span(b.DurationHours)
		end := start + span
		if end > slots.Count() {
			end = slots.Count()
		}

		cells := g.Columns[col].Cells
		cells[start] = Cell{Kind: CellBooking, Booking: b, RowSpan: end - start}
		for i := start + 1; i < end; i++ {
			cells[i] = Cell{Kind: CellCovered}
		}
	}

	return g
}

// BookingAt returns the booking covering the given column and slot, whether
// the slot is its anchor or a covered continuation. Nil when empty or out of
// range.
func (g *DayGrid) BookingAt(col, slot int) *crew.Booking {
	if col < 0 || col >= len(g.Columns) {
		return nil
	}
	cells := g.Columns[col].Cells
	if slot < 0 || slot >= len(cells) {
		return nil
	}
	for i := slot; i >= 0; i-- {
		switch cells[i].Kind {
		case CellBooking:
			if i+cells[i].RowSpan > slot {
				return cells[i].Booking
			}
			return nil
		case CellEmpty:
			return nil
		}
	}
	return nil
}

// AnchorSlot returns the anchor slot index of the booking covering the given
// position, or -1 when the position is empty.
func (g *DayGrid) AnchorSlot(col, slot int) int {
	if col < 0 || col >= len(g.Columns) {
		return -1
	}
	cells := g.Columns[col].Cells
	if slot < 0 || slot >= len(cells) {
		return -1
	}
	for i := slot; i >= 0; i-- {
		switch cells[i].Kind {
		case CellBooking:
			if i+cells[i].RowSpan > slot {
				return i
			}
			return -1
		case CellEmpty:
			return -1
		}
	}
	return -1
}
