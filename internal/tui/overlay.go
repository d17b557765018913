package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// overlayCenter composites a rendered box over the center of base without
// disturbing the styled cells around it. Slicing the base lines is done at
// ANSI-aware cell boundaries so escape sequences stay intact.
func overlayCenter(base, box string, width, height int, bg lipgloss.Color) string {
	if width <= 0 || height <= 0 {
		return base
	}

	boxLines := strings.Split(box, "\n")
	boxW := 0
	for _, line := range boxLines {
		if w := lipgloss.Width(line); w > boxW {
			boxW = w
		}
	}
	boxH := len(boxLines)
	if boxW > width {
		boxW = width
	}
	if boxH > height {
		boxLines = boxLines[:height]
		boxH = height
	}

	top := (height - boxH) / 2
	left := (width - boxW) / 2

	bgSeq := ""
	if bg != "" {
		bgSeq = ansi.Style{}.BackgroundColor(bg).String()
	}

	baseLines := normalizeLines(base, width, height)
	out := make([]string, 0, height)
	for row := 0; row < height; row++ {
		if row < top || row >= top+boxH {
			out = append(out, baseLines[row])
			continue
		}

		boxLine := boxLines[row-top]
		lineW := lipgloss.Width(boxLine)
		if lineW > boxW {
			boxLine = ansi.Cut(boxLine, 0, boxW)
			lineW = boxW
		}
		if lineW < boxW {
			boxLine += bgSeq + strings.Repeat(" ", boxW-lineW) + ansi.ResetStyle
		}

		baseLine := baseLines[row]
		leftSlice := ansi.Cut(baseLine, 0, left)
		rightSlice := ansi.Cut(baseLine, left+boxW, width)
		out = append(out, leftSlice+boxLine+rightSlice)
	}

	return strings.Join(out, "\n")
}

// normalizeLines pads or trims base to exactly width x height cells.
func normalizeLines(base string, width, height int) []string {
	lines := strings.Split(base, "\n")
	for len(lines) < height {
		lines = append(lines, "")
	}
	if len(lines) > height {
		lines = lines[:height]
	}

	for i, line := range lines {
		w := lipgloss.Width(line)
		if w > width {
			lines[i] = ansi.Cut(line, 0, width)
			continue
		}
		if w < width {
			lines[i] = line + strings.Repeat(" ", width-w)
		}
	}

	return lines
}
