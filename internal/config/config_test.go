package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Schedule.DayStart != "08:00" {
		t.Errorf("expected day_start 08:00, got %s", cfg.Schedule.DayStart)
	}
	if cfg.Schedule.DayEnd != "18:00" {
		t.Errorf("expected day_end 18:00, got %s", cfg.Schedule.DayEnd)
	}
	if cfg.Schedule.SlotMinutes != 30 {
		t.Errorf("expected slot_minutes 30, got %d", cfg.Schedule.SlotMinutes)
	}
	if cfg.UI.Theme != "slate" {
		t.Errorf("expected theme slate, got %s", cfg.UI.Theme)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadFrom missing file: %v", err)
	}
	if cfg.Schedule.DayStart != "08:00" {
		t.Errorf("expected defaults for missing file, got day_start %s", cfg.Schedule.DayStart)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `[schedule]
day_start = "07:00"
day_end = "19:00"

[ui]
theme = "paper"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Schedule.DayStart != "07:00" {
		t.Errorf("expected day_start 07:00, got %s", cfg.Schedule.DayStart)
	}
	if cfg.Schedule.DayEnd != "19:00" {
		t.Errorf("expected day_end 19:00, got %s", cfg.Schedule.DayEnd)
	}
	// slot_minutes not set in file, should keep the default.
	if cfg.Schedule.SlotMinutes != 30 {
		t.Errorf("expected slot_minutes 30, got %d", cfg.Schedule.SlotMinutes)
	}
	if cfg.UI.Theme != "paper" {
		t.Errorf("expected theme paper, got %s", cfg.UI.Theme)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CREWBOARD_DAY_START", "06:30")
	t.Setenv("CREWBOARD_SLOT_MINUTES", "15")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Schedule.DayStart != "06:30" {
		t.Errorf("expected env override 06:30, got %s", cfg.Schedule.DayStart)
	}
	if cfg.Schedule.SlotMinutes != 15 {
		t.Errorf("expected env override 15, got %d", cfg.Schedule.SlotMinutes)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"bad day_start", func(c *Config) { c.Schedule.DayStart = "8am" }, true},
		{"bad day_end", func(c *Config) { c.Schedule.DayEnd = "25:xx" }, true},
		{"start after end", func(c *Config) { c.Schedule.DayStart = "19:00" }, true},
		{"zero slot minutes", func(c *Config) { c.Schedule.SlotMinutes = 0 }, true},
		{"slot minutes not dividing hour", func(c *Config) { c.Schedule.SlotMinutes = 25 }, true},
		{"empty db path", func(c *Config) { c.Storage.DBPath = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg := Default()
	cfg.Schedule.DayStart = "09:00"
	cfg.UI.Theme = "paper"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.Schedule.DayStart != "09:00" {
		t.Errorf("expected day_start 09:00, got %s", loaded.Schedule.DayStart)
	}
	if loaded.UI.Theme != "paper" {
		t.Errorf("expected theme paper, got %s", loaded.UI.Theme)
	}
}
