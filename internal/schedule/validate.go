package schedule

import (
	"github.com/glenxmac/crewboard/internal/crew"
	"github.com/glenxmac/crewboard/internal/dateutil"
)

// FitsInDay reports whether the booking's interval lies entirely within the
// working window: the start time must resolve to a slot index, and the
// computed end slot must not run past the end of the day. A booking with a
// missing start time or non-positive duration does not fit.
func FitsInDay(slots *Slots, b *crew.Booking) bool {
	if b == nil || b.StartTime == "" || b.DurationHours <= 0 {
		return false
	}
	start, ok := slots.Index(b.StartTime)
	if !ok {
		return false
	}
	return start+slots.Span(b.DurationHours) <= slots.Count()
}

// HasOverlap reports whether the candidate contends with any other booking
// (different id) of the same team on the same date. Intervals are compared
// at minute resolution over half-open ranges, which avoids floating-point
// slot-index drift.
//
// A candidate missing its team, date, start time or duration yields false:
// "cannot yet validate", not "valid". The caller's form validation owns
// rejecting incomplete input.
func HasOverlap(candidate *crew.Booking, all []*crew.Booking) bool {
	if candidate == nil || candidate.TeamID == "" || candidate.Date.IsZero() ||
		candidate.StartTime == "" || candidate.DurationHours <= 0 {
		return false
	}

	start := candidate.StartMinutes()
	end := start + candidate.DurationMinutes()

	for _, b := range all {
		if b.ID == candidate.ID {
			continue
		}
		if b.TeamID != candidate.TeamID || !dateutil.SameDay(b.Date, candidate.Date) {
			continue
		}
		if b.StartTime == "" || b.DurationHours <= 0 {
			continue
		}
		if crew.IntervalsOverlap(start, end, b.StartMinutes(), b.EndMinutes()) {
			return true
		}
	}
	return false
}

// CrewConflicts returns the ids of people on the candidate's crew who are
// already assigned to a booking of a different team on the same date.
//
// This is advisory only: it feeds the availability warning at data-entry
// time and is never enforced on the write path.
func CrewConflicts(candidate *crew.Booking, all []*crew.Booking) []string {
	if candidate == nil || len(candidate.Crew) == 0 {
		return nil
	}

	var conflicted []string
	seen := make(map[string]bool)

	for _, b := range all {
		if b.ID == candidate.ID || b.TeamID == candidate.TeamID {
			continue
		}
		if !dateutil.SameDay(b.Date, candidate.Date) {
			continue
		}
		for _, personID := range candidate.Crew {
			if seen[personID] || !b.HasCrewMember(personID) {
				continue
			}
			seen[personID] = true
			conflicted = append(conflicted, personID)
		}
	}
	return conflicted
}
