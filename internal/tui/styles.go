package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/glenxmac/crewboard/internal/tui/theme"
)

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorWarning     lipgloss.Color
	colorDanger      lipgloss.Color

	// Toolbar
	TitleStyle   lipgloss.Style
	ToolbarStyle lipgloss.Style

	// Column headers
	TeamHeaderStyle      lipgloss.Style
	TeamHeaderTodayStyle lipgloss.Style

	// Time rail
	TimeColumnStyle lipgloss.Style

	// Booking blocks, keyed by job type at render time
	jobStyles        map[string]lipgloss.Style
	BlockHandleStyle lipgloss.Style
	DragPreviewStyle lipgloss.Style
	ConflictStyle    lipgloss.Style

	// Empty cells and cursor
	EmptyCellStyle lipgloss.Style
	CursorStyle    lipgloss.Style

	// Footer
	HelpStyle   lipgloss.Style
	StatusStyle lipgloss.Style
	ErrorStyle  lipgloss.Style

	// Modal
	ModalStyle            lipgloss.Style
	ModalBgColor          lipgloss.Color
	ModalTitleStyle       lipgloss.Style
	ModalLabelStyle       lipgloss.Style
	ModalValueStyle       lipgloss.Style
	ModalInputStyle       lipgloss.Style
	ModalFocusedStyle     lipgloss.Style
	ModalHintStyle        lipgloss.Style
	ModalWarningStyle     lipgloss.Style
	ModalDangerStyle      lipgloss.Style
	OptionActiveStyle     lipgloss.Style
	OptionInactiveStyle   lipgloss.Style
	ModalPlaceholderStyle lipgloss.Style
}

// NewStyles creates a Styles instance from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{
		colorBg:          lipgloss.Color(t.Bg),
		colorBgHighlight: lipgloss.Color(t.BgHighlight),
		colorBgSelection: lipgloss.Color(t.BgSelection),
		colorFg:          lipgloss.Color(t.Fg),
		colorFgMuted:     lipgloss.Color(t.FgMuted),
		colorAccent:      lipgloss.Color(t.Accent),
		colorWarning:     lipgloss.Color(t.Warning),
		colorDanger:      lipgloss.Color(t.Danger),
	}

	s.TitleStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true)

	s.ToolbarStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.TeamHeaderStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Bold(true)

	s.TeamHeaderTodayStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true)

	s.TimeColumnStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.jobStyles = make(map[string]lipgloss.Style)
	for _, jt := range []string{"measure", "install", "service", "transit", "other"} {
		s.jobStyles[jt] = lipgloss.NewStyle().
			Background(lipgloss.Color(t.JobColor(jt))).
			Foreground(s.colorBg)
	}

	s.BlockHandleStyle = lipgloss.NewStyle().
		Foreground(s.colorBg).
		Bold(true)

	s.DragPreviewStyle = lipgloss.NewStyle().
		Background(s.colorBgSelection).
		Foreground(s.colorWarning)

	s.ConflictStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning).
		Bold(true)

	s.EmptyCellStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.CursorStyle = lipgloss.NewStyle().
		Background(s.colorBgSelection).
		Foreground(s.colorFg)

	s.HelpStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	s.StatusStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent)

	s.ErrorStyle = lipgloss.NewStyle().
		Foreground(s.colorDanger).
		Bold(true)

	s.ModalBgColor = s.colorBgHighlight
	s.ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(t.ModalBorder)).
		Background(s.ModalBgColor).
		Padding(1, 2)

	s.ModalTitleStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true)

	s.ModalLabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.TextMuted))

	s.ModalValueStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.ModalInputStyle = lipgloss.NewStyle().
		Foreground(s.colorFg)

	s.ModalFocusedStyle = lipgloss.NewStyle().
		Foreground(s.colorAccent).
		Bold(true)

	s.ModalHintStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(t.TextMuted)).
		Italic(true)

	s.ModalWarningStyle = lipgloss.NewStyle().
		Foreground(s.colorWarning)

	s.ModalDangerStyle = lipgloss.NewStyle().
		Foreground(s.colorDanger).
		Bold(true)

	s.OptionActiveStyle = lipgloss.NewStyle().
		Background(s.colorAccent).
		Foreground(s.colorBg).
		Padding(0, 1)

	s.OptionInactiveStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted).
		Padding(0, 1)

	s.ModalPlaceholderStyle = lipgloss.NewStyle().
		Foreground(s.colorFgMuted)

	return s
}

// JobStyle returns the block style for a job type.
func (s *Styles) JobStyle(jobType string) lipgloss.Style {
	if st, ok := s.jobStyles[jobType]; ok {
		return st
	}
	return s.jobStyles["other"]
}
