package schedule

import (
	"time"

	"github.com/glenxmac/crewboard/internal/dateutil"
)

// ViewMode selects how many days the board shows.
type ViewMode int

const (
	ViewDay ViewMode = iota
	ViewWeek
)

// String returns the mode name.
func (v ViewMode) String() string {
	if v == ViewWeek {
		return "week"
	}
	return "day"
}

// WeekDays is the number of days shown in week view: Monday through
// Saturday. Sundays are not worked.
const WeekDays = 6

// Navigator tracks the current date and view mode and derives the visible
// day set that drives the grid layout engine.
type Navigator struct {
	current time.Time
	mode    ViewMode

	// Now is injectable for testing.
	Now func() time.Time
}

// NewNavigator starts on today in day view.
func NewNavigator() *Navigator {
	n := &Navigator{Now: time.Now}
	n.current = dateutil.TruncateToDay(n.Now())
	return n
}

// Current returns the reference date.
func (n *Navigator) Current() time.Time {
	return n.current
}

// Mode returns the active view mode.
func (n *Navigator) Mode() ViewMode {
	return n.mode
}

// SetMode switches between day and week view.
func (n *Navigator) SetMode(m ViewMode) {
	n.mode = m
}

// VisibleDays returns the day set to render: the current date in day view,
// or six consecutive days from the Monday on/before the current date in
// week view.
func (n *Navigator) VisibleDays() []time.Time {
	if n.mode == ViewDay {
		return []time.Time{n.current}
	}
	monday := dateutil.Monday(n.current)
	days := make([]time.Time, WeekDays)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

// WeekStart returns the Monday of the week containing the current date.
func (n *Navigator) WeekStart() time.Time {
	return dateutil.Monday(n.current)
}

// Next advances one day in day view, one week in week view.
func (n *Navigator) Next() {
	n.current = n.current.AddDate(0, 0, n.step())
}

// Prev goes back one day in day view, one week in week view.
func (n *Navigator) Prev() {
	n.current = n.current.AddDate(0, 0, -n.step())
}

// Today resets to the current date, keeping the view mode.
func (n *Navigator) Today() {
	n.current = dateutil.TruncateToDay(n.Now())
}

func (n *Navigator) step() int {
	if n.mode == ViewWeek {
		return 7
	}
	return 1
}

// Label returns the toolbar label for the visible period.
func (n *Navigator) Label() string {
	if n.mode == ViewDay {
		return n.current.Format("Mon 2 Jan 2006")
	}
	monday := dateutil.Monday(n.current)
	saturday := monday.AddDate(0, 0, WeekDays-1)
	return "Week of " + monday.Format("Mon 2 Jan") + " – " + saturday.Format("Mon 2 Jan")
}
