package crew

import (
	"context"
	"time"
)

// Store is the storage capability the scheduling board depends on. It is
// uniform across backings (the bundled SQLite store, or a remote database).
//
// Every method returns owned, independent copies; callers never alias live
// storage state. Write methods enforce the hard invariants at the moment of
// the write: CreateBooking and UpdateBooking return ErrBookingOverlap when
// the interval intersects another booking of the same team and date, and
// DeleteTeam cascades to that team's bookings.
type Store interface {
	// ListTeams returns all teams in name order, with Members resolved
	// for display.
	ListTeams(ctx context.Context) ([]*Team, error)

	// CreateTeam adds a team, normalizing its member list. Assigns the id.
	CreateTeam(ctx context.Context, t *Team) (*Team, error)

	// UpdateTeam replaces a team's name, lead and members.
	UpdateTeam(ctx context.Context, t *Team) (*Team, error)

	// DeleteTeam removes a team and deletes every booking that references
	// it, in one transaction.
	DeleteTeam(ctx context.Context, id string) error

	// ListBookingsForWeek returns all bookings in the 7 days starting at
	// monday, inclusive.
	ListBookingsForWeek(ctx context.Context, monday time.Time) ([]*Booking, error)

	// ListBookingsForDay returns all bookings on a single date.
	ListBookingsForDay(ctx context.Context, date time.Time) ([]*Booking, error)

	// GetBooking retrieves one booking by id.
	GetBooking(ctx context.Context, id string) (*Booking, error)

	// CreateBooking adds a booking and assigns its id.
	CreateBooking(ctx context.Context, draft *Booking) (*Booking, error)

	// UpdateBooking replaces a booking's stored state.
	UpdateBooking(ctx context.Context, b *Booking) (*Booking, error)

	// DeleteBooking removes a booking by id.
	DeleteBooking(ctx context.Context, id string) error

	// ListPeople returns all people in name order.
	ListPeople(ctx context.Context) ([]*Person, error)
	CreatePerson(ctx context.Context, p *Person) (*Person, error)
	UpdatePerson(ctx context.Context, p *Person) (*Person, error)
	DeletePerson(ctx context.Context, id string) error

	// ListProducts returns all products in name order.
	ListProducts(ctx context.Context) ([]*Product, error)
	CreateProduct(ctx context.Context, p *Product) (*Product, error)
	UpdateProduct(ctx context.Context, p *Product) (*Product, error)
	DeleteProduct(ctx context.Context, id string) error

	// Close releases any resources held by the store.
	Close() error
}
