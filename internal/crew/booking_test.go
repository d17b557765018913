package crew

import (
	"errors"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	b, err := New("2024-06-03", "team-1", "09:00", 1.5, "install")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if b.TeamID != "team-1" || b.StartTime != "09:00" || b.DurationHours != 1.5 {
		t.Errorf("unexpected booking: %+v", b)
	}
	if b.JobType != JobInstall {
		t.Errorf("job type = %s, want install", b.JobType)
	}
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		teamID   string
		start    string
		duration float64
		jobType  string
		wantErr  error
	}{
		{"missing team", "2024-06-03", "", "09:00", 1, "install", ErrMissingTeam},
		{"bad time", "2024-06-03", "team-1", "9am", 1, "install", ErrInvalidTimeFormat},
		{"zero duration", "2024-06-03", "team-1", "09:00", 0, "install", ErrInvalidDuration},
		{"negative duration", "2024-06-03", "team-1", "09:00", -1, "install", ErrInvalidDuration},
		{"quarter hour", "2024-06-03", "team-1", "09:00", 0.75, "install", ErrInvalidDuration},
		{"unknown job type", "2024-06-03", "team-1", "09:00", 1, "demolition", ErrInvalidJobType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.date, tt.teamID, tt.start, tt.duration, tt.jobType)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseJobType_EmptyDefaultsToOther(t *testing.T) {
	jt, err := ParseJobType("")
	if err != nil {
		t.Fatalf("ParseJobType failed: %v", err)
	}
	if jt != JobOther {
		t.Errorf("got %s, want other", jt)
	}
}

func TestBookingMinutes(t *testing.T) {
	b := &Booking{StartTime: "09:30", DurationHours: 2}
	if got := b.StartMinutes(); got != 570 {
		t.Errorf("StartMinutes = %d, want 570", got)
	}
	if got := b.EndMinutes(); got != 690 {
		t.Errorf("EndMinutes = %d, want 690", got)
	}
	if got := b.EndTime(); got != "11:30" {
		t.Errorf("EndTime = %s, want 11:30", got)
	}
}

func TestOverlapsWith(t *testing.T) {
	date := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	base := &Booking{ID: "b-1", TeamID: "team-1", Date: date, StartTime: "09:00", DurationHours: 2}

	tests := []struct {
		name  string
		other *Booking
		want  bool
	}{
		{"same interval", &Booking{ID: "b-2", TeamID: "team-1", Date: date, StartTime: "09:00", DurationHours: 2}, true},
		{"partial tail", &Booking{ID: "b-2", TeamID: "team-1", Date: date, StartTime: "10:30", DurationHours: 1}, true},
		{"adjacent after", &Booking{ID: "b-2", TeamID: "team-1", Date: date, StartTime: "11:00", DurationHours: 1}, false},
		{"adjacent before", &Booking{ID: "b-2", TeamID: "team-1", Date: date, StartTime: "08:00", DurationHours: 1}, false},
		{"other team", &Booking{ID: "b-2", TeamID: "team-2", Date: date, StartTime: "09:00", DurationHours: 2}, false},
		{"other day", &Booking{ID: "b-2", TeamID: "team-1", Date: date.AddDate(0, 0, 1), StartTime: "09:00", DurationHours: 2}, false},
		{"same id", &Booking{ID: "b-1", TeamID: "team-1", Date: date, StartTime: "09:00", DurationHours: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.OverlapsWith(tt.other); got != tt.want {
				t.Errorf("OverlapsWith = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClone_Independent(t *testing.T) {
	b := &Booking{
		ID:       "b-1",
		Crew:     []string{"emp-1", "emp-2"},
		Products: []ProductLine{{ProductID: "prod-1", Quantity: 2}},
	}
	dup := b.Clone()
	dup.Crew[0] = "emp-9"
	dup.Products[0].Quantity = 9

	if b.Crew[0] != "emp-1" {
		t.Error("clone shares crew slice with original")
	}
	if b.Products[0].Quantity != 2 {
		t.Error("clone shares products slice with original")
	}
}

func TestTeamNormalize(t *testing.T) {
	tests := []struct {
		name    string
		team    Team
		wantIDs []string
	}{
		{
			"dedupe preserves order",
			Team{MemberIDs: []string{"a", "b", "a", "c", "b"}},
			[]string{"a", "b", "c"},
		},
		{
			"lead appended when missing",
			Team{TeamLeadID: "lead", MemberIDs: []string{"a"}},
			[]string{"a", "lead"},
		},
		{
			"lead already member",
			Team{TeamLeadID: "a", MemberIDs: []string{"a", "b"}},
			[]string{"a", "b"},
		},
		{
			"empty ids dropped",
			Team{MemberIDs: []string{"", "a", ""}},
			[]string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.team.Normalize()
			if len(tt.team.MemberIDs) != len(tt.wantIDs) {
				t.Fatalf("got %v, want %v", tt.team.MemberIDs, tt.wantIDs)
			}
			for i, id := range tt.wantIDs {
				if tt.team.MemberIDs[i] != id {
					t.Fatalf("got %v, want %v", tt.team.MemberIDs, tt.wantIDs)
				}
			}
			if tt.team.TeamLeadID != "" && !tt.team.HasMember(tt.team.TeamLeadID) {
				t.Error("lead not a member after Normalize")
			}
		})
	}
}

func TestValidateProducts(t *testing.T) {
	if err := ValidateProducts([]ProductLine{{ProductID: "p", Quantity: 1}}); err != nil {
		t.Errorf("valid line rejected: %v", err)
	}
	if err := ValidateProducts([]ProductLine{{ProductID: "p", Quantity: 0}}); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("got %v, want ErrInvalidQuantity", err)
	}
}

func TestTimeConversions(t *testing.T) {
	if got := TimeToMinutes("08:30"); got != 510 {
		t.Errorf("TimeToMinutes = %d, want 510", got)
	}
	if got := MinutesToTime(510); got != "08:30" {
		t.Errorf("MinutesToTime = %s, want 08:30", got)
	}
	if got := MinutesToTime(-10); got != "00:00" {
		t.Errorf("MinutesToTime(-10) = %s, want 00:00", got)
	}
}
