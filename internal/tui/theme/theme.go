// Package theme provides color themes for the TUI.
package theme

import (
	"embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pelletier/go-toml/v2"
)

//go:embed embedded/*.toml
var embeddedThemes embed.FS

// Theme holds all colors for a TUI theme.
type Theme struct {
	Name        string `toml:"name"`
	Bg          string `toml:"bg"`           // Base background
	BgHighlight string `toml:"bg_highlight"` // Booking blocks, subtle highlight
	BgSelection string `toml:"bg_selection"` // Cursor, selection
	Fg          string `toml:"fg"`           // Primary foreground
	FgMuted     string `toml:"fg_muted"`     // Muted elements, covered cells
	Accent      string `toml:"accent"`       // Toolbar, borders
	Warning     string `toml:"warning"`      // Conflicts, drag previews
	Danger      string `toml:"danger"`       // Delete confirmation

	// Per job type block colors
	Measure string `toml:"measure"`
	Install string `toml:"install"`
	Service string `toml:"service"`
	Transit string `toml:"transit"`
	Other   string `toml:"other"`

	// Modal palette (can override base theme values)
	ModalBorder string `toml:"modal_border"`
	TextMuted   string `toml:"text_muted"`
}

// Color returns a lipgloss.Color for the given hex string.
func Color(hex string) lipgloss.Color {
	return lipgloss.Color(hex)
}

// Load loads a theme by name from embedded files.
// Falls back to slate if the theme is not found.
func Load(name string) (*Theme, error) {
	if name == "" {
		name = "slate"
	}
	name = strings.ToLower(name)

	path := "embedded/" + name + ".toml"
	data, err := embeddedThemes.ReadFile(path)
	if err != nil {
		if name != "slate" {
			return Load("slate")
		}
		return nil, fmt.Errorf("loading theme %q: %w", name, err)
	}

	var t Theme
	if err := toml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme %q: %w", name, err)
	}
	t.applyDefaults()

	return &t, nil
}

// JobColor returns the block color configured for a job type name.
func (t *Theme) JobColor(jobType string) string {
	switch jobType {
	case "measure":
		return t.Measure
	case "install":
		return t.Install
	case "service":
		return t.Service
	case "transit":
		return t.Transit
	default:
		return t.Other
	}
}

func (t *Theme) applyDefaults() {
	if t.ModalBorder == "" {
		t.ModalBorder = t.Accent
	}
	if t.TextMuted == "" {
		t.TextMuted = t.FgMuted
	}
	if t.Other == "" {
		t.Other = t.BgHighlight
	}
	if t.Danger == "" {
		t.Danger = t.Warning
	}
}

// Available returns a list of available theme names.
func Available() []string {
	return []string{"slate", "paper"}
}

// IsAvailable reports whether a theme name is available.
func IsAvailable(name string) bool {
	name = strings.ToLower(name)
	for _, themeName := range Available() {
		if themeName == name {
			return true
		}
	}
	return false
}
