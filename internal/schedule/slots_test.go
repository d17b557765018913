package schedule

import "testing"

func TestNewSlots_DefaultWindow(t *testing.T) {
	s := DefaultSlots()
	if got := s.Count(); got != 20 {
		t.Errorf("Count = %d, want 20", got)
	}
	if got := s.At(0); got != "08:00" {
		t.Errorf("At(0) = %s, want 08:00", got)
	}
	if got := s.At(1); got != "08:30" {
		t.Errorf("At(1) = %s, want 08:30", got)
	}
	if got := s.At(19); got != "17:30" {
		t.Errorf("At(19) = %s, want 17:30", got)
	}
	if got := s.At(20); got != "" {
		t.Errorf("At(20) = %q, want empty", got)
	}
}

func TestSlots_Index(t *testing.T) {
	s := DefaultSlots()

	tests := []struct {
		label  string
		want   int
		wantOK bool
	}{
		{"08:00", 0, true},
		{"09:30", 3, true},
		{"17:30", 19, true},
		{"18:00", 0, false}, // day end is exclusive
		{"07:30", 0, false},
		{"09:15", 0, false}, // off-grid
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := s.Index(tt.label)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("Index(%q) = (%d, %v), want (%d, %v)", tt.label, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestSlots_Span(t *testing.T) {
	s := DefaultSlots()

	tests := []struct {
		hours float64
		want  int
	}{
		{0.5, 1},
		{1, 2},
		{1.5, 3},
		{2, 4},
		{0.1, 1}, // clamped to a single slot
		{0, 1},
	}

	for _, tt := range tests {
		if got := s.Span(tt.hours); got != tt.want {
			t.Errorf("Span(%v) = %d, want %d", tt.hours, got, tt.want)
		}
	}
}

func TestSlots_Hours(t *testing.T) {
	s := DefaultSlots()
	if got := s.Hours(3); got != 1.5 {
		t.Errorf("Hours(3) = %v, want 1.5", got)
	}
}

func TestSlots_WindowMinutes(t *testing.T) {
	s := NewSlots("09:00", "17:00", 60)
	if got := s.Count(); got != 8 {
		t.Errorf("Count = %d, want 8", got)
	}
	if got := s.StartMinutes(); got != 540 {
		t.Errorf("StartMinutes = %d, want 540", got)
	}
	if got := s.EndMinutes(); got != 1020 {
		t.Errorf("EndMinutes = %d, want 1020", got)
	}
}
