// Package crew defines the core domain types for crewboard: bookings,
// teams, people and products, plus the storage capability they live behind.
package crew

import (
	"errors"
	"fmt"
	"time"

	"github.com/glenxmac/crewboard/internal/dateutil"
)

// Validation errors.
var (
	ErrMissingTeam       = errors.New("booking must reference a team")
	ErrInvalidTimeFormat = errors.New("time must be in HH:MM format")
	ErrInvalidDuration   = errors.New("duration must be a positive multiple of half an hour")
	ErrInvalidJobType    = errors.New("unknown job type")
	ErrInvalidQuantity   = errors.New("product quantity must be at least 1")
)

// Domain errors shared with the store layer.
var (
	ErrBookingOverlap  = errors.New("booking overlaps an existing booking for that team")
	ErrBookingNotFound = errors.New("booking not found")
	ErrTeamNotFound    = errors.New("team not found")
	ErrPersonNotFound  = errors.New("person not found")
	ErrProductNotFound = errors.New("product not found")
)

// JobType categorizes what the crew is sent out to do.
type JobType string

const (
	JobMeasure JobType = "measure"
	JobInstall JobType = "install"
	JobService JobType = "service"
	JobTransit JobType = "transit"
	JobOther   JobType = "other"
)

// JobTypes lists all valid job types in display order.
var JobTypes = []JobType{JobMeasure, JobInstall, JobService, JobTransit, JobOther}

// Valid returns true if the job type is a known value.
func (j JobType) Valid() bool {
	switch j {
	case JobMeasure, JobInstall, JobService, JobTransit, JobOther:
		return true
	default:
		return false
	}
}

// ParseJobType converts a string to a JobType. Empty input maps to JobOther.
func ParseJobType(s string) (JobType, error) {
	if s == "" {
		return JobOther, nil
	}
	j := JobType(s)
	if !j.Valid() {
		return "", ErrInvalidJobType
	}
	return j, nil
}

// ProductLine is one line item on a booking.
type ProductLine struct {
	ProductID string
	Quantity  int
}

// Booking is a scheduled job occupying a team's time on a specific date.
type Booking struct {
	ID            string
	Date          time.Time // local calendar date, midnight
	TeamID        string
	StartTime     string  // "HH:MM", aligned to the slot grid
	DurationHours float64 // multiples of 0.5

	CustomerName string
	JobType      JobType
	Notes        string
	Address      string
	ClientPhone  string
	ClientEmail  string
	OrderNumbers string

	Crew          []string // Person ids performing the job
	Products      []ProductLine
	SalespersonID string

	CreatedAt time.Time
}

// New creates a Booking draft with validation. The store assigns the id.
// date can be empty (defaults to today) or in YYYY-MM-DD format.
func New(date, teamID, startTime string, durationHours float64, jobType string) (*Booking, error) {
	if teamID == "" {
		return nil, ErrMissingTeam
	}

	day, err := dateutil.ParseDate(date)
	if err != nil {
		return nil, err
	}

	if err := validateTimeFormat(startTime); err != nil {
		return nil, fmt.Errorf("start time: %w", err)
	}

	if err := ValidateDuration(durationHours); err != nil {
		return nil, err
	}

	jt, err := ParseJobType(jobType)
	if err != nil {
		return nil, err
	}

	return &Booking{
		Date:          day,
		TeamID:        teamID,
		StartTime:     startTime,
		DurationHours: durationHours,
		JobType:       jt,
		CreatedAt:     time.Now(),
	}, nil
}

// ValidateDuration checks that d is a positive multiple of half an hour.
func ValidateDuration(d float64) error {
	if d <= 0 {
		return ErrInvalidDuration
	}
	halves := d * 2
	if halves != float64(int(halves)) {
		return ErrInvalidDuration
	}
	return nil
}

// ValidateProducts checks every line item quantity.
func ValidateProducts(lines []ProductLine) error {
	for _, l := range lines {
		if l.Quantity < 1 {
			return ErrInvalidQuantity
		}
	}
	return nil
}

func validateTimeFormat(s string) error {
	if len(s) != 5 {
		return ErrInvalidTimeFormat
	}
	if _, err := time.Parse("15:04", s); err != nil {
		return ErrInvalidTimeFormat
	}
	return nil
}

// StartMinutes returns the start time as minutes since midnight.
func (b *Booking) StartMinutes() int {
	return TimeToMinutes(b.StartTime)
}

// EndMinutes returns the exclusive end of the booking in minutes since midnight.
func (b *Booking) EndMinutes() int {
	return b.StartMinutes() + b.DurationMinutes()
}

// DurationMinutes returns the booking length in minutes.
func (b *Booking) DurationMinutes() int {
	return int(b.DurationHours * 60)
}

// EndTime returns the booking end as an "HH:MM" label.
func (b *Booking) EndTime() string {
	return MinutesToTime(b.EndMinutes())
}

// OverlapsWith returns true if this booking contends for the same team's
// time as other: same team, same day, intersecting minute intervals.
func (b *Booking) OverlapsWith(other *Booking) bool {
	if other == nil || other.ID == b.ID {
		return false
	}
	if b.TeamID != other.TeamID || !dateutil.SameDay(b.Date, other.Date) {
		return false
	}
	return b.StartMinutes() < other.EndMinutes() && b.EndMinutes() > other.StartMinutes()
}

// Clone returns an independent deep copy of the booking. The store hands out
// clones so callers never alias live storage state.
func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	dup := *b
	dup.Crew = append([]string(nil), b.Crew...)
	dup.Products = append([]ProductLine(nil), b.Products...)
	return &dup
}

// HasCrewMember reports whether the person is on this booking's crew.
func (b *Booking) HasCrewMember(personID string) bool {
	for _, id := range b.Crew {
		if id == personID {
			return true
		}
	}
	return false
}
