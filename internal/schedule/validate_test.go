package schedule

import (
	"testing"
	"time"

	"github.com/glenxmac/crewboard/internal/crew"
)

func TestFitsInDay(t *testing.T) {
	slots := DefaultSlots()

	tests := []struct {
		name  string
		start string
		hours float64
		want  bool
	}{
		{"first slot half hour", "08:00", 0.5, true},
		{"mid morning two hours", "09:00", 2, true},
		{"fills the day", "08:00", 10, true},
		{"last slot half hour", "17:30", 0.5, true},
		{"last slot full hour", "17:30", 1, false},
		{"runs past close", "17:00", 2, false},
		{"whole day plus", "08:00", 10.5, false},
		{"off-grid start", "09:15", 1, false},
		{"before opening", "07:30", 1, false},
		{"zero duration", "09:00", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &crew.Booking{StartTime: tt.start, DurationHours: tt.hours}
			if got := FitsInDay(slots, b); got != tt.want {
				t.Errorf("FitsInDay = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFitsInDay_FullDurationRange(t *testing.T) {
	// Every duration in {0.5, 1, ..., 20} from every slot: fits exactly
	// when the end slot stays inside the day.
	slots := DefaultSlots()
	for start := 0; start < slots.Count(); start++ {
		for n := 1; n <= 2*slots.Count(); n++ {
			b := &crew.Booking{StartTime: slots.At(start), DurationHours: float64(n) * 0.5}
			want := start+n <= slots.Count()
			if got := FitsInDay(slots, b); got != want {
				t.Fatalf("start=%s dur=%v: FitsInDay = %v, want %v", b.StartTime, b.DurationHours, got, want)
			}
		}
	}
}

func TestHasOverlap(t *testing.T) {
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	existing := []*crew.Booking{
		{ID: "b-1", TeamID: "team-1", Date: date, StartTime: "09:00", DurationHours: 2},
		{ID: "b-2", TeamID: "team-2", Date: date, StartTime: "09:00", DurationHours: 2},
	}

	tests := []struct {
		name      string
		candidate *crew.Booking
		want      bool
	}{
		{
			"same team same slot",
			&crew.Booking{ID: "new", TeamID: "team-1", Date: date, StartTime: "09:00", DurationHours: 1},
			true,
		},
		{
			"tail overlaps head",
			&crew.Booking{ID: "new", TeamID: "team-1", Date: date, StartTime: "08:00", DurationHours: 1.5},
			true,
		},
		{
			"contained within",
			&crew.Booking{ID: "new", TeamID: "team-1", Date: date, StartTime: "09:30", DurationHours: 0.5},
			true,
		},
		{
			"back to back after",
			&crew.Booking{ID: "new", TeamID: "team-1", Date: date, StartTime: "11:00", DurationHours: 1},
			false,
		},
		{
			"back to back before",
			&crew.Booking{ID: "new", TeamID: "team-1", Date: date, StartTime: "08:00", DurationHours: 1},
			false,
		},
		{
			"different team",
			&crew.Booking{ID: "new", TeamID: "team-3", Date: date, StartTime: "09:00", DurationHours: 2},
			false,
		},
		{
			"different day",
			&crew.Booking{ID: "new", TeamID: "team-1", Date: date.AddDate(0, 0, 1), StartTime: "09:00", DurationHours: 2},
			false,
		},
		{
			"updating itself",
			&crew.Booking{ID: "b-1", TeamID: "team-1", Date: date, StartTime: "09:00", DurationHours: 2},
			false,
		},
		{
			"incomplete candidate cannot validate",
			&crew.Booking{ID: "new", TeamID: "", Date: date, StartTime: "09:00", DurationHours: 2},
			false,
		},
		{
			"missing start time cannot validate",
			&crew.Booking{ID: "new", TeamID: "team-1", Date: date, DurationHours: 2},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasOverlap(tt.candidate, existing); got != tt.want {
				t.Errorf("HasOverlap = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHasOverlap_Idempotent(t *testing.T) {
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	all := []*crew.Booking{
		{ID: "b-1", TeamID: "team-1", Date: date, StartTime: "09:00", DurationHours: 2},
	}
	candidate := &crew.Booking{ID: "new", TeamID: "team-1", Date: date, StartTime: "10:00", DurationHours: 1}

	first := HasOverlap(candidate, all)
	second := HasOverlap(candidate, all)
	if first != second {
		t.Errorf("validator is not idempotent: %v then %v", first, second)
	}
	if !first {
		t.Error("expected overlap")
	}
}

func TestCrewConflicts(t *testing.T) {
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	all := []*crew.Booking{
		{ID: "b-1", TeamID: "team-1", Date: date, StartTime: "09:00", DurationHours: 2, Crew: []string{"emp-1", "emp-2"}},
		{ID: "b-2", TeamID: "team-2", Date: date.AddDate(0, 0, 1), StartTime: "09:00", DurationHours: 2, Crew: []string{"emp-3"}},
	}

	// emp-1 is with team-1 on the same day; emp-3 is busy a day later.
	candidate := &crew.Booking{
		ID: "new", TeamID: "team-2", Date: date,
		StartTime: "14:00", DurationHours: 1,
		Crew: []string{"emp-1", "emp-3", "emp-4"},
	}

	got := CrewConflicts(candidate, all)
	if len(got) != 1 || got[0] != "emp-1" {
		t.Errorf("CrewConflicts = %v, want [emp-1]", got)
	}

	// Same team never conflicts with itself.
	candidate.TeamID = "team-1"
	if got := CrewConflicts(candidate, all); got != nil {
		t.Errorf("same-team CrewConflicts = %v, want nil", got)
	}
}
