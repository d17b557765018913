package theme

import "testing"

func TestLoad(t *testing.T) {
	for _, name := range Available() {
		th, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q) failed: %v", name, err)
		}
		if th.Name != name {
			t.Errorf("expected name %q, got %q", name, th.Name)
		}
		if th.Bg == "" || th.Fg == "" || th.Accent == "" {
			t.Errorf("theme %q missing base colors: %+v", name, th)
		}
	}
}

func TestLoadUnknownFallsBack(t *testing.T) {
	th, err := Load("nope")
	if err != nil {
		t.Fatalf("Load fallback failed: %v", err)
	}
	if th.Name != "slate" {
		t.Errorf("expected fallback to slate, got %q", th.Name)
	}
}

func TestLoadEmptyDefaults(t *testing.T) {
	th, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if th.Name != "slate" {
		t.Errorf("expected slate, got %q", th.Name)
	}
}

func TestJobColor(t *testing.T) {
	th, err := Load("slate")
	if err != nil {
		t.Fatal(err)
	}

	if got := th.JobColor("install"); got != th.Install {
		t.Errorf("expected install color %s, got %s", th.Install, got)
	}
	if got := th.JobColor("unknown"); got != th.Other {
		t.Errorf("unknown job types use the other color, got %s", got)
	}
}

func TestIsAvailable(t *testing.T) {
	if !IsAvailable("Slate") {
		t.Error("expected Slate to be available (case-insensitive)")
	}
	if IsAvailable("mocha") {
		t.Error("mocha is not a crewboard theme")
	}
}
