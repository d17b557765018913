package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/glenxmac/crewboard/internal/dateutil"
	"github.com/glenxmac/crewboard/internal/schedule"
)

// View renders the board.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(m.viewToolbar())
	b.WriteString("\n")
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewGrid())
	b.WriteString("\n")
	b.WriteString(m.viewFooter())

	base := b.String()

	if m.mode == ModeModal {
		return m.renderModalOver(base)
	}
	return base
}

// viewToolbar renders the title, period label and view mode.
func (m Model) viewToolbar() string {
	title := m.styles.TitleStyle.Render("crewboard")
	label := m.styles.ToolbarStyle.Render(m.nav.Label())
	mode := m.styles.HelpStyle.Render("[" + m.nav.Mode().String() + "]")
	loading := ""
	if m.loading {
		loading = m.styles.HelpStyle.Render("  loading…")
	}
	return title + "  " + label + "  " + mode + loading
}

// viewHeader renders one header cell per team column. In week view each
// column is labelled with its day; the team name follows, truncated to fit.
func (m Model) viewHeader() string {
	var cells []string
	cells = append(cells, pad("", timeColWidth))

	today := dateutil.TruncateToDay(m.nav.Now())
	week := m.nav.Mode() == schedule.ViewWeek

	for _, grid := range m.grids {
		style := m.styles.TeamHeaderStyle
		if dateutil.SameDay(grid.Date, today) {
			style = m.styles.TeamHeaderTodayStyle
		}
		for _, col := range grid.Columns {
			label := col.Team.Name
			if week {
				label = grid.Date.Format("Mon 2") + " " + label
			}
			cells = append(cells, style.Render(pad(label, m.layout.ColWidth)))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// viewGrid renders the slot rows: a time rail then every team column of
// every visible day.
func (m Model) viewGrid() string {
	lines := make([]string, 0, m.slots.Count()*m.layout.RowsPerSlot)

	dragPreview, dragging := m.drag.Preview()
	var dragSpan int
	if dragging {
		if b := m.bookingByID(m.drag.BookingID()); b != nil {
			dragSpan = m.slots.Span(b.DurationHours)
		}
	}
	rDay, rCol, rStart, rSpan, resizing := m.resize.Preview()

	for slot := 0; slot < m.slots.Count(); slot++ {
		for line := 0; line < m.layout.RowsPerSlot; line++ {
			var row []string

			rail := ""
			if line == 0 {
				rail = m.slots.At(slot)
			}
			row = append(row, m.styles.TimeColumnStyle.Render(pad(rail, timeColWidth)))

			for day, grid := range m.grids {
				for col := range grid.Columns {
					cell := m.renderCell(grid, day, col, slot, line)

					// Gesture previews draw over the cell content.
					if dragging && day == dragPreview.Day && col == dragPreview.Col &&
						slot >= dragPreview.Slot && slot < dragPreview.Slot+dragSpan {
						cell = m.styles.DragPreviewStyle.Render(pad("░", m.layout.ColWidth))
					}
					if resizing && day == rDay && col == rCol &&
						slot >= rStart && slot < rStart+rSpan {
						cell = m.styles.DragPreviewStyle.Render(pad("░", m.layout.ColWidth))
					}

					row = append(row, cell)
				}
			}

			lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, row...))
		}
	}

	return strings.Join(lines, "\n")
}

// renderCell renders one line of one cell.
func (m Model) renderCell(grid *schedule.DayGrid, day, col, slot, line int) string {
	width := m.layout.ColWidth
	cells := grid.Columns[col].Cells
	isCursor := m.cursor.Day == day && m.cursor.Col == col && m.cursor.Slot == slot

	anchor := grid.AnchorSlot(col, slot)
	if anchor < 0 {
		// Empty slot.
		text := pad("·", width)
		if isCursor {
			return m.styles.CursorStyle.Render(text)
		}
		return m.styles.EmptyCellStyle.Render(text)
	}

	b := cells[anchor].Booking
	span := cells[anchor].RowSpan
	blockLine := (slot-anchor)*m.layout.RowsPerSlot + line
	lastLine := span*m.layout.RowsPerSlot - 1

	text := ""
	switch blockLine {
	case 0:
		text = orDash(b.CustomerName)
	case 1:
		text = b.StartTime + "–" + b.EndTime() + " " + string(b.JobType)
	}
	text = truncate(text, width)

	// Bottom edge carries the resize handle for multi-slot blocks.
	if span > 1 && blockLine == lastLine {
		text = padTo(text, width-1) + "▾"
	} else {
		text = pad(text, width)
	}

	style := m.styles.JobStyle(string(b.JobType))
	if isCursor {
		style = m.styles.CursorStyle
	}
	if m.drag.Dragging() && m.drag.BookingID() == b.ID {
		style = m.styles.EmptyCellStyle
	}
	return style.Render(text)
}

// viewFooter renders the status line and key hints.
func (m Model) viewFooter() string {
	status := ""
	if m.statusMsg != "" {
		style := m.styles.StatusStyle
		if strings.HasPrefix(m.statusMsg, "Error") || strings.Contains(m.statusMsg, "rejected") {
			style = m.styles.ErrorStyle
		}
		status = style.Render(m.statusMsg)
	}

	help := m.styles.HelpStyle.Render(
		"←↓↑→: move  [/]: prev/next  t: today  w: week  enter: open/add  +/-: duration  d: delete  q: quit")

	if status == "" {
		return help + "\n"
	}
	return status + "\n" + help
}

// renderModalOver composites the active modal over the board.
func (m Model) renderModalOver(base string) string {
	var content string
	switch m.modalType {
	case ModalBookingForm:
		content = m.form.view(m.slots)
	case ModalBookingDetail:
		if m.detail == nil {
			return base
		}
		content = m.viewBookingDetail(m.detail)
	case ModalConfirmDelete:
		b := m.bookingByID(m.confirmID)
		if b == nil {
			return base
		}
		content = m.viewConfirmDelete(b)
	default:
		return base
	}

	box := m.styles.ModalStyle.Render(content)
	return overlayCenter(base, box, m.width, m.height, m.styles.ModalBgColor)
}

// pad fits a string to exactly width cells, space padded.
func pad(s string, width int) string {
	return padTo(truncate(s, width), width)
}

func padTo(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 1 {
		return string(runes[:width])
	}
	out := make([]rune, 0, width)
	cur := 0
	for _, r := range runes {
		rw := lipgloss.Width(string(r))
		if cur+rw > width-1 {
			break
		}
		out = append(out, r)
		cur += rw
	}
	return string(out) + "…"
}
