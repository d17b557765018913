package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/glenxmac/crewboard/internal/crew"
)

// Color definitions for consistent styling across the CLI output.
var (
	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)

	// Warnings: crew double-bookings and rejected writes
	colorWarn = color.New(color.FgYellow)

	// Per job type, mirroring the TUI palette roles
	colorMeasure = color.New(color.FgCyan)
	colorInstall = color.New(color.FgGreen)
	colorService = color.New(color.FgYellow)
	colorTransit = color.New(color.FgWhite, color.Faint)
	colorOther   = color.New(color.FgMagenta)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}

func formatWarn(s string) string {
	return colorWarn.Sprint(s)
}

// formatJob colors a string by job type.
func formatJob(jt crew.JobType, s string) string {
	switch jt {
	case crew.JobMeasure:
		return colorMeasure.Sprint(s)
	case crew.JobInstall:
		return colorInstall.Sprint(s)
	case crew.JobService:
		return colorService.Sprint(s)
	case crew.JobTransit:
		return colorTransit.Sprint(s)
	default:
		return colorOther.Sprint(s)
	}
}
