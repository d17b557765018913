package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glenxmac/crewboard/internal/crew"
	"github.com/glenxmac/crewboard/internal/schedule"
	"github.com/glenxmac/crewboard/internal/tui/commands"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout = m.computeLayout()
		return m, nil

	case commands.BoardLoadedMsg:
		m.teams = msg.Teams
		m.bookings = msg.Bookings
		m.people = msg.People
		m.products = msg.Products
		m.loading = false
		m.rebuildGrids()
		m.clampCursor()
		return m, nil

	case commands.BookingSavedMsg:
		m.setStatus("Saved")
		return m, commands.LoadBoard(m.store, m.nav.Current())

	case commands.BookingDeletedMsg:
		m.setStatus("Deleted")
		return m, commands.LoadBoard(m.store, m.nav.Current())

	case commands.RefreshMsg:
		cmds := []tea.Cmd{commands.LoadBoard(m.store, m.nav.Current())}
		if m.busCh != nil {
			cmds = append(cmds, commands.WatchBus(m.busCh))
		}
		return m, tea.Batch(cmds...)

	case commands.ErrMsg:
		m.err = msg.Err
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = time.Now().Add(5 * time.Second)
		return m, nil

	case commands.StatusMsgCmd:
		m.setStatus(msg.Msg)
		return m, tea.Tick(3*time.Second, func(time.Time) tea.Msg {
			return commands.ClearStatusMsg{}
		})

	case commands.ClearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.mode == ModeModal {
		return m.handleModalKeys(msg)
	}
	return m.handleNormalKeys(msg)
}

// handleNormalKeys handles keys on the board.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "esc":
		m.drag.Cancel()
		m.resize.Cancel()
		return m, nil

	// Cursor movement
	case "h", "left":
		m.moveCursorHoriz(-1)
	case "l", "right":
		m.moveCursorHoriz(1)
	case "k", "up":
		if m.cursor.Slot > 0 {
			m.cursor.Slot--
		}
	case "j", "down":
		if m.cursor.Slot < m.slots.Count()-1 {
			m.cursor.Slot++
		}

	// Period navigation
	case "[", "p":
		m.nav.Prev()
		m.loading = true
		m.rebuildGrids()
		return m, commands.LoadBoard(m.store, m.nav.Current())
	case "]", "n":
		m.nav.Next()
		m.loading = true
		m.rebuildGrids()
		return m, commands.LoadBoard(m.store, m.nav.Current())
	case "t":
		m.nav.Today()
		m.loading = true
		m.rebuildGrids()
		return m, commands.LoadBoard(m.store, m.nav.Current())
	case "w":
		if m.nav.Mode() == schedule.ViewWeek {
			m.nav.SetMode(schedule.ViewDay)
		} else {
			m.nav.SetMode(schedule.ViewWeek)
		}
		m.rebuildGrids()
		m.clampCursor()
		return m, nil

	// Booking actions at the cursor
	case "enter", "o":
		if b := m.bookingAtCursor(); b != nil {
			m.openDetail(b)
		} else {
			m.openNewForm()
		}
	case "a":
		if m.bookingAtCursor() == nil {
			m.openNewForm()
		}
	case "d", "x":
		if b := m.bookingAtCursor(); b != nil {
			m.mode = ModeModal
			m.modalType = ModalConfirmDelete
			m.confirmID = b.ID
		}

	// Click-to-step resize on the cursor's booking
	case "+", "=":
		return m.stepResize(1)
	case "-", "_":
		return m.stepResize(-1)

	case "r":
		m.loading = true
		return m, commands.LoadBoard(m.store, m.nav.Current())
	}

	return m, nil
}

// handleModalKeys handles keys while a modal is open.
func (m Model) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modalType {
	case ModalBookingForm:
		return m.handleFormKeys(msg)

	case ModalBookingDetail:
		switch msg.String() {
		case "esc", "q":
			m.closeModal()
		case "e":
			if m.detail != nil {
				m.form.prepareEdit(m.detail, m.teamName(m.detail.TeamID))
				m.modalType = ModalBookingForm
			}
		case "d":
			if m.detail != nil {
				m.confirmID = m.detail.ID
				m.modalType = ModalConfirmDelete
			}
		}
		return m, nil

	case ModalConfirmDelete:
		switch msg.String() {
		case "y":
			id := m.confirmID
			m.closeModal()
			return m, commands.DeleteBooking(m.store, m.bus, id)
		case "n", "esc":
			m.closeModal()
		}
		return m, nil
	}

	m.closeModal()
	return m, nil
}

// handleFormKeys handles keys in the booking form.
func (m Model) handleFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeModal()
		return m, nil
	case "tab", "down":
		m.form.nextField()
		return m, nil
	case "shift+tab", "up":
		m.form.prevField()
		return m, nil
	case "left":
		m.form.cycle(-1)
		return m, nil
	case "right":
		m.form.cycle(1)
		return m, nil
	case "enter":
		return m.submitForm()
	}

	m.form.updateInputs(msg)
	return m, nil
}

// submitForm validates and persists the form's booking.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	var original *crew.Booking
	if m.form.editingID != "" {
		original = m.bookingByID(m.form.editingID)
	}

	candidate, err := m.form.booking(original)
	if err != nil {
		m.setStatus(fmt.Sprintf("Error: %v", err))
		return m, nil
	}

	if !schedule.FitsInDay(m.slots, candidate) {
		m.setStatus("Booking runs past the end of the working day")
		return m, nil
	}
	if schedule.HasOverlap(candidate, m.bookings) {
		m.setStatus("That team already has a booking in this interval")
		return m, nil
	}

	m.closeModal()
	if candidate.ID == "" {
		return m, commands.CreateBooking(m.store, m.bus, candidate)
	}
	return m, commands.UpdateBooking(m.store, m.bus, candidate)
}

// handleMouseMsg routes pointer events into the gesture state machines.
func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.mode != ModeNormal {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		return m.pointerPress(msg.X, msg.Y), nil

	case tea.MouseActionMotion:
		m.pointerMotion(msg.X, msg.Y)
		return m, nil

	case tea.MouseActionRelease:
		return m.pointerRelease()
	}

	return m, nil
}

// pointerPress arms a gesture on the pressed cell. A press on the bottom
// edge of a multi-slot booking starts a resize; anywhere else on a booking
// starts a drag-move; empty cells just take the cursor.
func (m Model) pointerPress(x, y int) Model {
	cell, ok := m.layout.CellAt(x, y)
	if !ok {
		return m
	}
	m.cursor = cell

	grid := m.gridAt(cell.Day)
	if grid == nil {
		return m
	}
	b := grid.BookingAt(cell.Col, cell.Slot)
	if b == nil {
		return m
	}

	anchor := grid.AnchorSlot(cell.Col, cell.Slot)
	span := m.slots.Span(b.DurationHours)
	end := anchor + span
	if end > m.slots.Count() {
		end = m.slots.Count()
	}

	onBottomEdge := span > 1 &&
		cell.Slot == end-1 &&
		m.layout.SlotLine(y) == m.layout.RowsPerSlot-1

	if onBottomEdge {
		m.resize.Press(b.ID, cell.Day, cell.Col, anchor, end, m.slots.Count())
	} else {
		m.drag.Press(b.ID, cell, anchor)
	}
	return m
}

func (m *Model) pointerMotion(x, y int) {
	cell, ok := m.layout.CellAt(x, y)
	if !ok {
		return
	}
	if m.resize.Active() {
		m.resize.Motion(cell.Slot)
		return
	}
	m.drag.Motion(cell)
}

func (m Model) pointerRelease() (tea.Model, tea.Cmd) {
	if result, ok := m.resize.Release(); ok {
		return m.commitResize(result)
	}

	switch result := m.drag.Release(); result.Kind {
	case DragClick:
		if b := m.bookingByID(result.BookingID); b != nil {
			m.openDetail(b)
		}
		return m, nil
	case DragDrop:
		return m.commitDrop(result)
	}
	return m, nil
}

// commitDrop validates and persists a drag-move. Duration is preserved and
// the candidate keeps the target slot: a drop whose span would run past the
// day end is rejected, not nudged to an earlier start.
func (m Model) commitDrop(result DragResult) (tea.Model, tea.Cmd) {
	b := m.bookingByID(result.BookingID)
	grid := m.gridAt(result.Target.Day)
	if b == nil || grid == nil {
		return m, nil
	}
	if result.Target.Col < 0 || result.Target.Col >= len(grid.Columns) {
		return m, nil
	}

	candidate := b.Clone()
	candidate.Date = grid.Date
	candidate.TeamID = grid.Columns[result.Target.Col].Team.ID
	// At returns "" off-grid, which FitsInDay rejects below.
	candidate.StartTime = m.slots.At(result.Target.Slot)

	if candidate.Date.Equal(b.Date) && candidate.TeamID == b.TeamID && candidate.StartTime == b.StartTime {
		return m, nil
	}
	if !schedule.FitsInDay(m.slots, candidate) {
		m.setStatus("Move rejected: outside working hours")
		return m, nil
	}
	if schedule.HasOverlap(candidate, m.bookings) {
		m.setStatus("Move rejected: that team already has a booking there")
		return m, nil
	}
	if conflicts := schedule.CrewConflicts(candidate, m.bookings); len(conflicts) > 0 {
		m.setStatus(fmt.Sprintf("Note: %s also booked elsewhere that day", m.personName(conflicts[0])))
	}

	return m, commands.UpdateBooking(m.store, m.bus, candidate)
}

// commitResize validates and persists a resize gesture.
func (m Model) commitResize(result ResizeResult) (tea.Model, tea.Cmd) {
	b := m.bookingByID(result.BookingID)
	if b == nil {
		return m, nil
	}

	newDuration := m.slots.Hours(result.Span)
	if newDuration == b.DurationHours {
		return m, nil
	}

	candidate := b.Clone()
	candidate.DurationHours = newDuration

	if schedule.HasOverlap(candidate, m.bookings) {
		m.setStatus("Resize rejected: it would overlap the next booking")
		return m, nil
	}

	return m, commands.UpdateBooking(m.store, m.bus, candidate)
}

// stepResize grows or shrinks the cursor's booking by one slot.
func (m Model) stepResize(delta int) (tea.Model, tea.Cmd) {
	grid := m.gridAt(m.cursor.Day)
	if grid == nil {
		return m, nil
	}
	b := grid.BookingAt(m.cursor.Col, m.cursor.Slot)
	if b == nil {
		return m, nil
	}

	anchor := grid.AnchorSlot(m.cursor.Col, m.cursor.Slot)
	span := m.slots.Span(b.DurationHours)
	newSpan := StepSpan(span, delta, anchor, m.slots.Count())
	return m.commitResize(ResizeResult{BookingID: b.ID, Span: newSpan})
}

// moveCursorHoriz moves the cursor across team columns, crossing day
// boundaries in week view.
func (m *Model) moveCursorHoriz(delta int) {
	cols := len(m.teams)
	if cols == 0 {
		return
	}
	days := len(m.nav.VisibleDays())

	global := m.cursor.Day*cols + m.cursor.Col + delta
	if global < 0 || global >= days*cols {
		return
	}
	m.cursor.Day = global / cols
	m.cursor.Col = global % cols
}

func (m *Model) clampCursor() {
	days := len(m.nav.VisibleDays())
	if m.cursor.Day >= days {
		m.cursor.Day = days - 1
	}
	cols := len(m.teams)
	if cols > 0 && m.cursor.Col >= cols {
		m.cursor.Col = cols - 1
	}
	if m.cursor.Col < 0 {
		m.cursor.Col = 0
	}
	if m.cursor.Slot >= m.slots.Count() {
		m.cursor.Slot = m.slots.Count() - 1
	}
}

// bookingAtCursor returns the booking under the cursor, if any.
func (m *Model) bookingAtCursor() *crew.Booking {
	grid := m.gridAt(m.cursor.Day)
	if grid == nil {
		return nil
	}
	return grid.BookingAt(m.cursor.Col, m.cursor.Slot)
}

func (m *Model) openDetail(b *crew.Booking) {
	m.mode = ModeModal
	m.modalType = ModalBookingDetail
	m.detail = b
}

// openNewForm opens the booking form anchored at the cursor cell.
func (m *Model) openNewForm() {
	grid := m.gridAt(m.cursor.Day)
	if grid == nil || m.cursor.Col >= len(grid.Columns) {
		return
	}
	team := grid.Columns[m.cursor.Col].Team
	m.form.prepareNew(grid.Date, team.ID, team.Name, m.slots.At(m.cursor.Slot))
	m.mode = ModeModal
	m.modalType = ModalBookingForm
}

func (m *Model) closeModal() {
	m.mode = ModeNormal
	m.modalType = ModalNone
	m.detail = nil
	m.confirmID = ""
}

func (m *Model) teamName(id string) string {
	for _, t := range m.teams {
		if t.ID == id {
			return t.Name
		}
	}
	return id
}
