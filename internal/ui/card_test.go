package ui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/glenxmac/crewboard/internal/crew"
)

// stubStore embeds the Store interface and overrides only the read methods
// the job card needs. Anything else panics, which is what we want in a test.
type stubStore struct {
	crew.Store
	teams    []*crew.Team
	people   []*crew.Person
	products []*crew.Product
}

func (s *stubStore) ListTeams(context.Context) ([]*crew.Team, error)       { return s.teams, nil }
func (s *stubStore) ListPeople(context.Context) ([]*crew.Person, error)    { return s.people, nil }
func (s *stubStore) ListProducts(context.Context) ([]*crew.Product, error) { return s.products, nil }

func TestBuildJobCard(t *testing.T) {
	app := &App{store: &stubStore{
		teams: []*crew.Team{
			{ID: "t1", Name: "Team Alpha"},
		},
		people: []*crew.Person{
			{ID: "p1", Name: "Sam Reyes", Role: crew.RoleFitter},
			{ID: "p2", Name: "Ana Vela", Role: crew.RoleSales},
		},
		products: []*crew.Product{
			{ID: "pr1", Name: "Roller blind 120cm", Category: "blinds"},
		},
	}}

	b := &crew.Booking{
		ID:            "b1",
		Date:          time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local),
		TeamID:        "t1",
		StartTime:     "09:00",
		DurationHours: 2,
		CustomerName:  "Garcia kitchen",
		JobType:       crew.JobInstall,
		Address:       "Calle Mayor 12",
		ClientPhone:   "+34 600 111 222",
		Crew:          []string{"p1"},
		Products:      []crew.ProductLine{{ProductID: "pr1", Quantity: 3}},
		SalespersonID: "p2",
		Notes:         "Ring the side doorbell",
	}

	card, err := app.buildJobCard(context.Background(), b)
	if err != nil {
		t.Fatalf("buildJobCard: %v", err)
	}

	for _, want := range []string{
		"Garcia kitchen",
		"Mon 2 Jun 2025 09:00-11:00",
		"install",
		"Team Alpha",
		"Sam Reyes",
		"Calle Mayor 12",
		"+34 600 111 222",
		"3x Roller blind 120cm",
		"Ana Vela",
		"Ring the side doorbell",
	} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q:\n%s", want, card)
		}
	}

	if strings.Contains(card, "\x1b[") {
		t.Errorf("card contains ANSI escapes, must be plain text:\n%s", card)
	}
}

func TestBuildJobCard_SkipsEmptyFields(t *testing.T) {
	app := &App{store: &stubStore{}}

	b := &crew.Booking{
		ID:            "b1",
		Date:          time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local),
		TeamID:        "t1",
		StartTime:     "09:00",
		DurationHours: 1,
		CustomerName:  "Quick measure",
		JobType:       crew.JobMeasure,
	}

	card, err := app.buildJobCard(context.Background(), b)
	if err != nil {
		t.Fatalf("buildJobCard: %v", err)
	}

	for _, banned := range []string{"Address:", "Phone:", "Email:", "Orders:", "Products:", "Notes:"} {
		if strings.Contains(card, banned) {
			t.Errorf("card should omit empty field %q:\n%s", banned, card)
		}
	}
}

func TestCustomerColWidth(t *testing.T) {
	tests := []struct {
		name string
		term int
		want int
	}{
		{name: "narrow terminal floors at 16", term: 40, want: 16},
		{name: "default 80 columns", term: 80, want: 32},
		{name: "wide terminal caps at 40", term: 200, want: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := customerColWidth(tt.term); got != tt.want {
				t.Errorf("customerColWidth(%d) = %d, want %d", tt.term, got, tt.want)
			}
		})
	}
}

func TestTruncateCell(t *testing.T) {
	if got := truncateCell("short", 20); got != "short" {
		t.Errorf("truncateCell(short) = %q", got)
	}
	got := truncateCell("a very long customer name", 10)
	if len([]rune(got)) != 10 {
		t.Errorf("truncateCell length = %d, want 10 (%q)", len([]rune(got)), got)
	}
	if !strings.HasSuffix(got, "…") {
		t.Errorf("truncateCell should end with ellipsis, got %q", got)
	}
}
