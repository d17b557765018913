// Package schedule implements the scheduling core: the discrete slot model
// for a working day, the grid layout engine that projects bookings onto
// per-team columns, the write-time validators, and the day/week navigator.
package schedule

import (
	"math"

	"github.com/glenxmac/crewboard/internal/crew"
)

// Default working window: 08:00-18:00 in 30-minute slots (20 slots).
const (
	DefaultDayStart    = "08:00"
	DefaultDayEnd      = "18:00"
	DefaultSlotMinutes = 30
)

// Slots is the ordered sequence of time labels for one working day. It is
// the single source of truth for valid start times, slot indexing and span
// arithmetic. Immutable after construction.
type Slots struct {
	labels      []string
	startMins   int
	slotMinutes int
	index       map[string]int
}

// NewSlots builds the slot sequence from dayStart (inclusive) to dayEnd
// (exclusive) at slotMinutes granularity. Inputs are "HH:MM" labels.
func NewSlots(dayStart, dayEnd string, slotMinutes int) *Slots {
	if slotMinutes <= 0 {
		slotMinutes = DefaultSlotMinutes
	}
	start := crew.TimeToMinutes(dayStart)
	end := crew.TimeToMinutes(dayEnd)

	s := &Slots{
		startMins:   start,
		slotMinutes: slotMinutes,
		index:       make(map[string]int),
	}
	for m := start; m < end; m += slotMinutes {
		s.index[crew.MinutesToTime(m)] = len(s.labels)
		s.labels = append(s.labels, crew.MinutesToTime(m))
	}
	return s
}

// DefaultSlots returns the 08:00-18:00 half-hour grid.
func DefaultSlots() *Slots {
	return NewSlots(DefaultDayStart, DefaultDayEnd, DefaultSlotMinutes)
}

// Count returns the number of slots in the working day.
func (s *Slots) Count() int {
	return len(s.labels)
}

// SlotMinutes returns the slot granularity in minutes.
func (s *Slots) SlotMinutes() int {
	return s.slotMinutes
}

// Index returns the slot index for a time label, or false when the label is
// not on the grid.
func (s *Slots) Index(t string) (int, bool) {
	i, ok := s.index[t]
	return i, ok
}

// At returns the time label for a slot index. Empty string out of range.
func (s *Slots) At(i int) string {
	if i < 0 || i >= len(s.labels) {
		return ""
	}
	return s.labels[i]
}

// All returns the full label sequence. Callers must not mutate it.
func (s *Slots) All() []string {
	return s.labels
}

// Span returns the number of slots a duration occupies, rounded to the
// nearest slot and clamped to at least 1.
func (s *Slots) Span(durationHours float64) int {
	span := int(math.Round(durationHours * 60 / float64(s.slotMinutes)))
	if span < 1 {
		span = 1
	}
	return span
}

// Hours returns the duration covered by n slots, in hours.
func (s *Slots) Hours(n int) float64 {
	return float64(n*s.slotMinutes) / 60
}

// StartMinutes returns the working-day start in minutes since midnight.
func (s *Slots) StartMinutes() int {
	return s.startMins
}

// EndMinutes returns the exclusive working-day end in minutes since midnight.
func (s *Slots) EndMinutes() int {
	return s.startMins + len(s.labels)*s.slotMinutes
}
