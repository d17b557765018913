package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/glenxmac/crewboard/internal/crew"
	"github.com/glenxmac/crewboard/internal/dateutil"
	"github.com/glenxmac/crewboard/internal/schedule"
)

// Duration options for the booking form, in hours.
var durationOptions = []float64{0.5, 1, 1.5, 2, 2.5, 3, 4, 5, 6, 8, 10}

// Form field focus order.
const (
	focusCustomer = iota
	focusAddress
	focusNotes
	focusDuration
	focusJobType
	focusCount
)

// bookingForm is the modal form state for creating or editing a booking.
// Date, team and start time come from the cell the form was opened on; the
// remaining fields are edited in place.
type bookingForm struct {
	editingID string // empty when creating
	date      time.Time
	teamID    string
	teamName  string
	startTime string

	customer    textinput.Model
	address     textinput.Model
	notes       textinput.Model
	durationIdx int
	jobIdx      int
	focus       int

	styles *Styles
}

func newBookingForm(styles *Styles) bookingForm {
	mk := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 120
		ti.Width = 32
		ti.PlaceholderStyle = styles.ModalPlaceholderStyle
		ti.TextStyle = styles.ModalInputStyle
		return ti
	}

	return bookingForm{
		customer:    mk("Customer name"),
		address:     mk("Address"),
		notes:       mk("Notes"),
		durationIdx: 3, // 2 hours
		styles:      styles,
	}
}

// prepareNew resets the form for a new booking at the given cell.
func (f *bookingForm) prepareNew(date time.Time, teamID, teamName, startTime string) {
	f.editingID = ""
	f.date = date
	f.teamID = teamID
	f.teamName = teamName
	f.startTime = startTime
	f.customer.SetValue("")
	f.address.SetValue("")
	f.notes.SetValue("")
	f.durationIdx = 3
	f.jobIdx = 0
	f.setFocus(focusCustomer)
}

// prepareEdit loads an existing booking into the form.
func (f *bookingForm) prepareEdit(b *crew.Booking, teamName string) {
	f.editingID = b.ID
	f.date = b.Date
	f.teamID = b.TeamID
	f.teamName = teamName
	f.startTime = b.StartTime
	f.customer.SetValue(b.CustomerName)
	f.address.SetValue(b.Address)
	f.notes.SetValue(b.Notes)

	f.durationIdx = 3
	for i, d := range durationOptions {
		if d == b.DurationHours {
			f.durationIdx = i
			break
		}
	}
	f.jobIdx = 0
	for i, jt := range crew.JobTypes {
		if jt == b.JobType {
			f.jobIdx = i
			break
		}
	}
	f.setFocus(focusCustomer)
}

func (f *bookingForm) setFocus(focus int) {
	f.focus = focus
	f.customer.Blur()
	f.address.Blur()
	f.notes.Blur()
	switch focus {
	case focusCustomer:
		f.customer.Focus()
	case focusAddress:
		f.address.Focus()
	case focusNotes:
		f.notes.Focus()
	}
}

func (f *bookingForm) nextField() {
	f.setFocus((f.focus + 1) % focusCount)
}

func (f *bookingForm) prevField() {
	f.setFocus((f.focus + focusCount - 1) % focusCount)
}

// cycle moves the focused option field by delta. Text fields ignore it.
func (f *bookingForm) cycle(delta int) {
	switch f.focus {
	case focusDuration:
		f.durationIdx = wrap(f.durationIdx+delta, len(durationOptions))
	case focusJobType:
		f.jobIdx = wrap(f.jobIdx+delta, len(crew.JobTypes))
	}
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// updateInputs routes a message to the focused text input.
func (f *bookingForm) updateInputs(msg tea.Msg) {
	switch f.focus {
	case focusCustomer:
		f.customer, _ = f.customer.Update(msg)
	case focusAddress:
		f.address, _ = f.address.Update(msg)
	case focusNotes:
		f.notes, _ = f.notes.Update(msg)
	}
}

// booking builds the draft to persist. For edits it applies the form on top
// of the original so fields the form does not expose survive.
func (f *bookingForm) booking(original *crew.Booking) (*crew.Booking, error) {
	duration := durationOptions[f.durationIdx]
	jobType := crew.JobTypes[f.jobIdx]

	var b *crew.Booking
	if original != nil {
		b = original.Clone()
	} else {
		draft, err := crew.New(dateutil.FormatISO(f.date), f.teamID, f.startTime, duration, string(jobType))
		if err != nil {
			return nil, err
		}
		b = draft
	}

	b.DurationHours = duration
	b.JobType = jobType
	b.CustomerName = strings.TrimSpace(f.customer.Value())
	b.Address = strings.TrimSpace(f.address.Value())
	b.Notes = strings.TrimSpace(f.notes.Value())
	return b, nil
}

// view renders the form body.
func (f *bookingForm) view(slots *schedule.Slots) string {
	s := f.styles

	title := "New booking"
	if f.editingID != "" {
		title = "Edit booking"
	}

	label := func(focus int, text string) string {
		if f.focus == focus {
			return s.ModalFocusedStyle.Render(text)
		}
		return s.ModalLabelStyle.Render(text)
	}

	duration := durationOptions[f.durationIdx]
	endMins := crew.TimeToMinutes(f.startTime) + int(duration*60)
	fits := ""
	if endMins > slots.EndMinutes() {
		fits = "  " + s.ModalWarningStyle.Render("runs past end of day")
	}

	var jobOpts []string
	for i, jt := range crew.JobTypes {
		if i == f.jobIdx {
			jobOpts = append(jobOpts, s.OptionActiveStyle.Render(string(jt)))
		} else {
			jobOpts = append(jobOpts, s.OptionInactiveStyle.Render(string(jt)))
		}
	}

	lines := []string{
		s.ModalTitleStyle.Render(title),
		"",
		s.ModalLabelStyle.Render("Team  ") + s.ModalValueStyle.Render(f.teamName),
		s.ModalLabelStyle.Render("When  ") + s.ModalValueStyle.Render(
			f.date.Format("Mon 2 Jan")+" at "+f.startTime),
		"",
		label(focusCustomer, "Customer  ") + f.customer.View(),
		label(focusAddress, "Address   ") + f.address.View(),
		label(focusNotes, "Notes     ") + f.notes.View(),
		label(focusDuration, "Duration  ") + s.ModalValueStyle.Render(formatHours(duration)) + fits,
		label(focusJobType, "Job type  ") + lipgloss.JoinHorizontal(lipgloss.Top, jobOpts...),
		"",
		s.ModalHintStyle.Render("tab: next field  ←/→: change  enter: save  esc: cancel"),
	}

	return strings.Join(lines, "\n")
}

func formatHours(h float64) string {
	if h == float64(int(h)) {
		return fmt.Sprintf("%dh", int(h))
	}
	return fmt.Sprintf("%.1fh", h)
}

// viewBookingDetail renders the read-only detail card for a booking.
func (m *Model) viewBookingDetail(b *crew.Booking) string {
	s := m.styles

	teamName := b.TeamID
	for _, t := range m.teams {
		if t.ID == b.TeamID {
			teamName = t.Name
		}
	}

	row := func(label, value string) string {
		if value == "" {
			value = "-"
		}
		return s.ModalLabelStyle.Render(label) + s.ModalValueStyle.Render(value)
	}

	lines := []string{
		s.ModalTitleStyle.Render(orDash(b.CustomerName)),
		"",
		row("Team      ", teamName),
		row("When      ", b.Date.Format("Mon 2 Jan")+"  "+b.StartTime+"–"+b.EndTime()),
		row("Duration  ", formatHours(b.DurationHours)),
		row("Job type  ", string(b.JobType)),
		row("Address   ", b.Address),
		row("Phone     ", b.ClientPhone),
		row("Orders    ", b.OrderNumbers),
		row("Notes     ", b.Notes),
	}

	if len(b.Crew) > 0 {
		names := make([]string, len(b.Crew))
		for i, id := range b.Crew {
			names[i] = m.personName(id)
		}
		lines = append(lines, row("Crew      ", strings.Join(names, ", ")))
	}
	if len(b.Products) > 0 {
		items := make([]string, len(b.Products))
		for i, l := range b.Products {
			items[i] = fmt.Sprintf("%dx %s", l.Quantity, m.productName(l.ProductID))
		}
		lines = append(lines, row("Products  ", strings.Join(items, ", ")))
	}

	if conflicts := schedule.CrewConflicts(b, m.bookings); len(conflicts) > 0 {
		names := make([]string, len(conflicts))
		for i, id := range conflicts {
			names[i] = m.personName(id)
		}
		lines = append(lines, "",
			s.ModalWarningStyle.Render("⚠ also booked elsewhere: "+strings.Join(names, ", ")))
	}

	lines = append(lines, "",
		s.ModalHintStyle.Render("e: edit  d: delete  esc: close"))

	return strings.Join(lines, "\n")
}

// viewConfirmDelete renders the delete confirmation.
func (m *Model) viewConfirmDelete(b *crew.Booking) string {
	s := m.styles

	who := orDash(b.CustomerName)
	lines := []string{
		s.ModalDangerStyle.Render("Delete booking?"),
		"",
		s.ModalValueStyle.Render(fmt.Sprintf("%s on %s at %s",
			who, b.Date.Format("Mon 2 Jan"), b.StartTime)),
		"",
		s.ModalHintStyle.Render("y: delete  n/esc: keep"),
	}
	return strings.Join(lines, "\n")
}

func orDash(s string) string {
	if s == "" {
		return "(no customer)"
	}
	return s
}
