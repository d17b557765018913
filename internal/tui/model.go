// Package tui provides the terminal user interface for crewboard.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glenxmac/crewboard/internal/config"
	"github.com/glenxmac/crewboard/internal/crew"
	"github.com/glenxmac/crewboard/internal/events"
	"github.com/glenxmac/crewboard/internal/schedule"
	"github.com/glenxmac/crewboard/internal/tui/commands"
	"github.com/glenxmac/crewboard/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeModal
)

// ModalType identifies the type of modal.
type ModalType int

const (
	ModalNone ModalType = iota
	ModalBookingForm
	ModalBookingDetail
	ModalConfirmDelete
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	store  crew.Store
	config *config.Config
	bus    *events.Bus
	busCh  <-chan events.Topic

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Scheduling core
	slots *schedule.Slots
	nav   *schedule.Navigator

	// Loaded board data and the per-day render grids
	teams    []*crew.Team
	bookings []*crew.Booking
	people   []*crew.Person
	products []*crew.Product
	grids    []*schedule.DayGrid
	loading  bool

	// Cursor and modal state
	cursor    CellRef
	mode      Mode
	modalType ModalType
	form      bookingForm
	detail    *crew.Booking
	confirmID string

	// Gesture state machines
	drag   DragMachine
	resize ResizeMachine

	// Terminal geometry
	width  int
	height int
	layout Layout

	// Messages
	statusMsg  string
	statusTime time.Time
	err        error
}

// New creates a new TUI model.
func New(store crew.Store, cfg *config.Config, bus *events.Bus) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("slate")
	}
	styles := NewStyles(t)

	nav := schedule.NewNavigator()
	slots := schedule.NewSlots(cfg.Schedule.DayStart, cfg.Schedule.DayEnd, cfg.Schedule.SlotMinutes)

	m := &Model{
		store:   store,
		config:  cfg,
		bus:     bus,
		theme:   t,
		styles:  styles,
		slots:   slots,
		nav:     nav,
		loading: true,
		form:    newBookingForm(styles),
	}

	if bus != nil {
		m.busCh = bus.Subscribe(
			events.TeamsUpdated,
			events.BookingsUpdated,
			events.PeopleUpdated,
			events.ProductsUpdated,
		)
	}

	m.layout = m.computeLayout()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{commands.LoadBoard(m.store, m.nav.Current())}
	if m.busCh != nil {
		cmds = append(cmds, commands.WatchBus(m.busCh))
	}
	return tea.Batch(cmds...)
}

// Run starts the TUI.
func Run(store crew.Store, cfg *config.Config, bus *events.Bus) error {
	model := New(store, cfg, bus)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

// computeLayout derives the screen geometry from the current board shape.
func (m *Model) computeLayout() Layout {
	days := len(m.nav.VisibleDays())
	cols := len(m.teams)
	if cols == 0 {
		cols = 1
	}
	return NewLayout(m.width, m.height, days, cols, m.slots.Count())
}

// rebuildGrids projects the loaded bookings onto one grid per visible day.
func (m *Model) rebuildGrids() {
	visible := m.nav.VisibleDays()
	m.grids = make([]*schedule.DayGrid, len(visible))
	for i, day := range visible {
		m.grids[i] = schedule.BuildDayGrid(m.slots, m.teams, m.bookings, day)
	}
	m.layout = m.computeLayout()
}

// gridAt returns the day grid at a visible day index, nil out of range.
func (m *Model) gridAt(day int) *schedule.DayGrid {
	if day < 0 || day >= len(m.grids) {
		return nil
	}
	return m.grids[day]
}

// bookingByID finds a loaded booking.
func (m *Model) bookingByID(id string) *crew.Booking {
	for _, b := range m.bookings {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// personName resolves a person id for display, falling back to the id.
func (m *Model) personName(id string) string {
	for _, p := range m.people {
		if p.ID == id {
			return p.Name
		}
	}
	return id
}

// productName resolves a product id for display, falling back to the id.
func (m *Model) productName(id string) string {
	for _, p := range m.products {
		if p.ID == id {
			return p.Name
		}
	}
	return id
}

func (m *Model) setStatus(msg string) {
	m.statusMsg = msg
	m.statusTime = time.Now().Add(3 * time.Second)
}
