package schedule

import (
	"testing"
	"time"

	"github.com/glenxmac/crewboard/internal/crew"
)

var gridDate = time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)

func testTeams() []*crew.Team {
	return []*crew.Team{
		{ID: "team-1", Name: "Install Team A"},
		{ID: "team-2", Name: "Install Team B"},
	}
}

func booking(id, teamID, start string, hours float64) *crew.Booking {
	return &crew.Booking{
		ID:            id,
		Date:          gridDate,
		TeamID:        teamID,
		StartTime:     start,
		DurationHours: hours,
	}
}

func TestBuildDayGrid_SpanMarking(t *testing.T) {
	slots := DefaultSlots()
	b := booking("b-1", "team-1", "09:00", 2) // slots 2..5

	g := BuildDayGrid(slots, testTeams(), []*crew.Booking{b}, gridDate)

	cells := g.Columns[0].Cells
	anchor := cells[2]
	if anchor.Kind != CellBooking || anchor.Booking != b {
		t.Fatalf("slot 2 should anchor b-1, got %+v", anchor)
	}
	if anchor.RowSpan != 4 {
		t.Errorf("RowSpan = %d, want 4", anchor.RowSpan)
	}
	for i := 3; i < 6; i++ {
		if cells[i].Kind != CellCovered {
			t.Errorf("slot %d should be covered, got kind %d", i, cells[i].Kind)
		}
	}
	for _, i := range []int{0, 1, 6, 7} {
		if cells[i].Kind != CellEmpty {
			t.Errorf("slot %d should be empty, got kind %d", i, cells[i].Kind)
		}
	}
	// The other team's column is untouched.
	for i, c := range g.Columns[1].Cells {
		if c.Kind != CellEmpty {
			t.Errorf("team-2 slot %d should be empty, got kind %d", i, c.Kind)
		}
	}
}

func TestBuildDayGrid_ExactCoverage(t *testing.T) {
	// For every half-hour duration n*0.5 the booking covers exactly
	// [i, i+n): one anchor plus n-1 continuations.
	slots := DefaultSlots()
	for n := 1; n <= 4; n++ {
		b := booking("b-1", "team-1", "10:00", float64(n)*0.5)
		g := BuildDayGrid(slots, testTeams(), []*crew.Booking{b}, gridDate)
		cells := g.Columns[0].Cells

		start, _ := slots.Index("10:00")
		covered := 0
		for i, c := range cells {
			switch {
			case i == start:
				if c.Kind != CellBooking || c.RowSpan != n {
					t.Fatalf("n=%d: anchor = %+v", n, c)
				}
			case c.Kind == CellCovered:
				covered++
				if i <= start || i >= start+n {
					t.Errorf("n=%d: slot %d covered outside span", n, i)
				}
			case c.Kind == CellBooking:
				t.Errorf("n=%d: unexpected anchor at %d", n, i)
			}
		}
		if covered != n-1 {
			t.Errorf("n=%d: %d continuations, want %d", n, covered, n-1)
		}
	}
}

func TestBuildDayGrid_ClampsAtDayEnd(t *testing.T) {
	slots := DefaultSlots()
	// 17:30 + 2h would run past the end; span clamps to the last slot.
	b := booking("b-1", "team-1", "17:30", 2)
	g := BuildDayGrid(slots, testTeams(), []*crew.Booking{b}, gridDate)

	anchor := g.Columns[0].Cells[19]
	if anchor.Kind != CellBooking || anchor.RowSpan != 1 {
		t.Errorf("anchor = %+v, want RowSpan 1", anchor)
	}
}

func TestBuildDayGrid_DropsStaleBookings(t *testing.T) {
	slots := DefaultSlots()
	stale := []*crew.Booking{
		booking("off-grid", "team-1", "09:15", 1),
		booking("unknown-team", "team-9", "09:00", 1),
		{ID: "wrong-day", Date: gridDate.AddDate(0, 0, 1), TeamID: "team-1", StartTime: "09:00", DurationHours: 1},
	}

	g := BuildDayGrid(slots, testTeams(), stale, gridDate)
	for _, col := range g.Columns {
		for i, c := range col.Cells {
			if c.Kind != CellEmpty {
				t.Errorf("team %s slot %d should be empty, got kind %d", col.Team.ID, i, c.Kind)
			}
		}
	}
}

func TestBuildDayGrid_LastWriteWinsOnBadData(t *testing.T) {
	slots := DefaultSlots()
	first := booking("b-1", "team-1", "09:00", 1)
	second := booking("b-2", "team-1", "09:00", 1)

	g := BuildDayGrid(slots, testTeams(), []*crew.Booking{first, second}, gridDate)

	anchor := g.Columns[0].Cells[2]
	if anchor.Kind != CellBooking || anchor.Booking.ID != "b-2" {
		t.Errorf("anchor booking = %v, want b-2", anchor.Booking)
	}
}

func TestDayGrid_BookingAt(t *testing.T) {
	slots := DefaultSlots()
	b := booking("b-1", "team-1", "09:00", 2) // slots 2..5
	g := BuildDayGrid(slots, testTeams(), []*crew.Booking{b}, gridDate)

	tests := []struct {
		col, slot int
		wantID    string
	}{
		{0, 2, "b-1"}, // anchor
		{0, 3, "b-1"}, // continuation
		{0, 5, "b-1"}, // last covered slot
		{0, 6, ""},    // after the booking
		{0, 1, ""},    // before the booking
		{1, 2, ""},    // other column
		{9, 2, ""},    // out of range
	}

	for _, tt := range tests {
		got := g.BookingAt(tt.col, tt.slot)
		gotID := ""
		if got != nil {
			gotID = got.ID
		}
		if gotID != tt.wantID {
			t.Errorf("BookingAt(%d, %d) = %q, want %q", tt.col, tt.slot, gotID, tt.wantID)
		}
	}

	if got := g.AnchorSlot(0, 4); got != 2 {
		t.Errorf("AnchorSlot(0, 4) = %d, want 2", got)
	}
	if got := g.AnchorSlot(0, 7); got != -1 {
		t.Errorf("AnchorSlot(0, 7) = %d, want -1", got)
	}
}
