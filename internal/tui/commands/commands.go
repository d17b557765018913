// Package commands provides TUI command constructors and message types.
package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/glenxmac/crewboard/internal/crew"
	"github.com/glenxmac/crewboard/internal/dateutil"
	"github.com/glenxmac/crewboard/internal/events"
)

// BoardLoadedMsg is sent when the visible board data is loaded.
type BoardLoadedMsg struct {
	Teams    []*crew.Team
	Bookings []*crew.Booking
	People   []*crew.Person
	Products []*crew.Product
}

// BookingSavedMsg is sent when a booking write committed.
type BookingSavedMsg struct {
	Booking *crew.Booking
}

// BookingDeletedMsg is sent when a booking was removed.
type BookingDeletedMsg struct {
	ID string
}

// RefreshMsg is sent when the event bus announces a changed collection.
type RefreshMsg struct {
	Topic events.Topic
}

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message.
type ClearStatusMsg struct{}

// LoadBoard loads everything the board renders: teams, the bookings of the
// week containing ref, and the people and product catalogues. Day view reads
// from the same week load; a day is never fetched separately.
func LoadBoard(store crew.Store, ref time.Time) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		teams, err := store.ListTeams(ctx)
		if err != nil {
			return ErrMsg{Err: err}
		}

		bookings, err := store.ListBookingsForWeek(ctx, dateutil.Monday(ref))
		if err != nil {
			return ErrMsg{Err: err}
		}

		people, err := store.ListPeople(ctx)
		if err != nil {
			return ErrMsg{Err: err}
		}

		products, err := store.ListProducts(ctx)
		if err != nil {
			return ErrMsg{Err: err}
		}

		return BoardLoadedMsg{
			Teams:    teams,
			Bookings: bookings,
			People:   people,
			Products: products,
		}
	}
}

// CreateBooking persists a new booking draft.
func CreateBooking(store crew.Store, bus *events.Bus, draft *crew.Booking) tea.Cmd {
	return func() tea.Msg {
		created, err := store.CreateBooking(context.Background(), draft)
		if err != nil {
			return ErrMsg{Err: err}
		}
		if bus != nil {
			bus.Publish(events.BookingsUpdated)
		}
		return BookingSavedMsg{Booking: created}
	}
}

// UpdateBooking persists a full replacement of a booking's state. Used by
// the detail form and by drag-move and resize commits alike.
func UpdateBooking(store crew.Store, bus *events.Bus, b *crew.Booking) tea.Cmd {
	return func() tea.Msg {
		updated, err := store.UpdateBooking(context.Background(), b)
		if err != nil {
			return ErrMsg{Err: err}
		}
		if bus != nil {
			bus.Publish(events.BookingsUpdated)
		}
		return BookingSavedMsg{Booking: updated}
	}
}

// DeleteBooking removes a booking.
func DeleteBooking(store crew.Store, bus *events.Bus, id string) tea.Cmd {
	return func() tea.Msg {
		if err := store.DeleteBooking(context.Background(), id); err != nil {
			return ErrMsg{Err: err}
		}
		if bus != nil {
			bus.Publish(events.BookingsUpdated)
		}
		return BookingDeletedMsg{ID: id}
	}
}

// WatchBus blocks on the subscription channel and converts the next
// notification into a RefreshMsg. Re-issue it after every RefreshMsg to keep
// listening.
func WatchBus(ch <-chan events.Topic) tea.Cmd {
	return func() tea.Msg {
		topic, ok := <-ch
		if !ok {
			return nil
		}
		return RefreshMsg{Topic: topic}
	}
}
