// Package db provides the SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/glenxmac/crewboard/internal/crew"
	"github.com/glenxmac/crewboard/internal/dateutil"
)

// SQLite implements crew.Store using SQLite.
type SQLite struct {
	db *sql.DB
}

// New creates a new SQLite store and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	// The board is a single-process app; one connection avoids SQLITE_BUSY
	// between concurrent reads and the writing transaction.
	db.SetMaxOpenConns(1)

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// ListTeams returns all teams in name order, with Members resolved.
func (s *SQLite) ListTeams(ctx context.Context) ([]*crew.Team, error) {
	people, err := s.peopleByID(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, team_lead_id, member_ids FROM teams ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("querying teams: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var teams []*crew.Team
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		resolveMembers(t, people)
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating teams: %w", err)
	}

	return teams, nil
}

// CreateTeam adds a team, normalizing its member list, and assigns the id.
func (s *SQLite) CreateTeam(ctx context.Context, t *crew.Team) (*crew.Team, error) {
	stored := t.Clone()
	stored.ID = uuid.NewString()
	stored.Normalize()

	memberIDs, err := json.Marshal(stored.MemberIDs)
	if err != nil {
		return nil, fmt.Errorf("encoding member ids: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO teams (id, name, team_lead_id, member_ids) VALUES (?, ?, ?, ?)`,
		stored.ID, stored.Name, stored.TeamLeadID, string(memberIDs))
	if err != nil {
		return nil, fmt.Errorf("inserting team: %w", err)
	}

	return stored, nil
}

// UpdateTeam replaces a team's name, lead and members.
func (s *SQLite) UpdateTeam(ctx context.Context, t *crew.Team) (*crew.Team, error) {
	stored := t.Clone()
	stored.Normalize()

	memberIDs, err := json.Marshal(stored.MemberIDs)
	if err != nil {
		return nil, fmt.Errorf("encoding member ids: %w", err)
	}

	result, err := s.db.ExecContext(ctx,
		`UPDATE teams SET name = ?, team_lead_id = ?, member_ids = ? WHERE id = ?`,
		stored.Name, stored.TeamLeadID, string(memberIDs), stored.ID)
	if err != nil {
		return nil, fmt.Errorf("updating team: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return nil, fmt.Errorf("%w: %s", crew.ErrTeamNotFound, stored.ID)
	}

	return stored, nil
}

// DeleteTeam removes a team and every booking that references it, in one
// transaction.
func (s *SQLite) DeleteTeam(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `DELETE FROM teams WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting team: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %s", crew.ErrTeamNotFound, id)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM bookings WHERE team_id = ?`, id); err != nil {
		return fmt.Errorf("deleting team bookings: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}

const bookingColumns = `id, date, team_id, start_time, duration_hours,
	customer_name, job_type, notes, address, client_phone, client_email,
	order_numbers, crew, products, salesperson_id, created_at`

// ListBookingsForWeek returns all bookings in the 7 days starting at monday,
// inclusive.
func (s *SQLite) ListBookingsForWeek(ctx context.Context, monday time.Time) ([]*crew.Booking, error) {
	start := dateutil.TruncateToDay(monday)
	end := start.AddDate(0, 0, 6)
	return s.listBookings(ctx, start, end)
}

// ListBookingsForDay returns all bookings on a single date.
func (s *SQLite) ListBookingsForDay(ctx context.Context, date time.Time) ([]*crew.Booking, error) {
	day := dateutil.TruncateToDay(date)
	return s.listBookings(ctx, day, day)
}

func (s *SQLite) listBookings(ctx context.Context, start, end time.Time) ([]*crew.Booking, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM bookings
		WHERE date >= ? AND date <= ?
		ORDER BY date, start_time, id
	`, bookingColumns)

	rows, err := s.db.QueryContext(ctx, query,
		dateutil.FormatISO(start), dateutil.FormatISO(end))
	if err != nil {
		return nil, fmt.Errorf("querying bookings: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var bookings []*crew.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating bookings: %w", err)
	}

	return bookings, nil
}

// GetBooking retrieves a booking by id.
func (s *SQLite) GetBooking(ctx context.Context, id string) (*crew.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = ?`, bookingColumns)

	b, err := scanBooking(s.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", crew.ErrBookingNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	return b, nil
}

// CreateBooking adds a booking and assigns its id.
// Returns ErrBookingOverlap if it intersects another booking of the same
// team on the same date.
func (s *SQLite) CreateBooking(ctx context.Context, draft *crew.Booking) (*crew.Booking, error) {
	stored := draft.Clone()
	stored.ID = uuid.NewString()
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := checkOverlapTx(ctx, tx, stored); err != nil {
		return nil, err
	}

	if err := insertBookingTx(ctx, tx, stored); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return stored, nil
}

// UpdateBooking replaces a booking's stored state.
// Returns ErrBookingOverlap if the new position conflicts with another
// booking of the same team on the same date.
func (s *SQLite) UpdateBooking(ctx context.Context, b *crew.Booking) (*crew.Booking, error) {
	stored := b.Clone()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := checkOverlapTx(ctx, tx, stored); err != nil {
		return nil, err
	}

	crewJSON, productsJSON, err := encodeBookingLists(stored)
	if err != nil {
		return nil, err
	}

	result, err := tx.ExecContext(ctx, `
		UPDATE bookings SET
			date = ?, team_id = ?, start_time = ?, duration_hours = ?,
			customer_name = ?, job_type = ?, notes = ?, address = ?,
			client_phone = ?, client_email = ?, order_numbers = ?,
			crew = ?, products = ?, salesperson_id = ?
		WHERE id = ?
	`,
		dateutil.FormatISO(stored.Date),
		stored.TeamID,
		stored.StartTime,
		stored.DurationHours,
		stored.CustomerName,
		string(stored.JobType),
		stored.Notes,
		stored.Address,
		stored.ClientPhone,
		stored.ClientEmail,
		stored.OrderNumbers,
		crewJSON,
		productsJSON,
		stored.SalespersonID,
		stored.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("updating booking: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return nil, fmt.Errorf("%w: %s", crew.ErrBookingNotFound, stored.ID)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing transaction: %w", err)
	}

	return stored, nil
}

// DeleteBooking removes a booking by id.
func (s *SQLite) DeleteBooking(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting booking: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %s", crew.ErrBookingNotFound, id)
	}

	return nil
}

// ListPeople returns all people in name order.
func (s *SQLite) ListPeople(ctx context.Context) ([]*crew.Person, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, role, phone FROM people ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("querying people: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var people []*crew.Person
	for rows.Next() {
		var (
			p    crew.Person
			role string
		)
		if err := rows.Scan(&p.ID, &p.Name, &role, &p.Phone); err != nil {
			return nil, fmt.Errorf("scanning person: %w", err)
		}
		p.Role = crew.ParseRole(role)
		people = append(people, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating people: %w", err)
	}

	return people, nil
}

// CreatePerson adds a person and assigns the id.
func (s *SQLite) CreatePerson(ctx context.Context, p *crew.Person) (*crew.Person, error) {
	stored := *p
	stored.ID = uuid.NewString()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO people (id, name, role, phone) VALUES (?, ?, ?, ?)`,
		stored.ID, stored.Name, string(stored.Role), stored.Phone)
	if err != nil {
		return nil, fmt.Errorf("inserting person: %w", err)
	}

	return &stored, nil
}

// UpdatePerson replaces a person's stored state.
func (s *SQLite) UpdatePerson(ctx context.Context, p *crew.Person) (*crew.Person, error) {
	stored := *p

	result, err := s.db.ExecContext(ctx,
		`UPDATE people SET name = ?, role = ?, phone = ? WHERE id = ?`,
		stored.Name, string(stored.Role), stored.Phone, stored.ID)
	if err != nil {
		return nil, fmt.Errorf("updating person: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return nil, fmt.Errorf("%w: %s", crew.ErrPersonNotFound, stored.ID)
	}

	return &stored, nil
}

// DeletePerson removes a person by id. Teams and bookings keep any dangling
// references; display layers skip ids they cannot resolve.
func (s *SQLite) DeletePerson(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM people WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting person: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %s", crew.ErrPersonNotFound, id)
	}

	return nil
}

// ListProducts returns all products in name order.
func (s *SQLite) ListProducts(ctx context.Context) ([]*crew.Product, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, category FROM products ORDER BY name, id`)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var products []*crew.Product
	for rows.Next() {
		var p crew.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category); err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}

	return products, nil
}

// CreateProduct adds a product and assigns the id.
func (s *SQLite) CreateProduct(ctx context.Context, p *crew.Product) (*crew.Product, error) {
	stored := *p
	stored.ID = uuid.NewString()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO products (id, name, category) VALUES (?, ?, ?)`,
		stored.ID, stored.Name, stored.Category)
	if err != nil {
		return nil, fmt.Errorf("inserting product: %w", err)
	}

	return &stored, nil
}

// UpdateProduct replaces a product's stored state.
func (s *SQLite) UpdateProduct(ctx context.Context, p *crew.Product) (*crew.Product, error) {
	stored := *p

	result, err := s.db.ExecContext(ctx,
		`UPDATE products SET name = ?, category = ? WHERE id = ?`,
		stored.Name, stored.Category, stored.ID)
	if err != nil {
		return nil, fmt.Errorf("updating product: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return nil, fmt.Errorf("%w: %s", crew.ErrProductNotFound, stored.ID)
	}

	return &stored, nil
}

// DeleteProduct removes a product by id.
func (s *SQLite) DeleteProduct(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %s", crew.ErrProductNotFound, id)
	}

	return nil
}

// peopleByID loads all people keyed by id, for member resolution.
func (s *SQLite) peopleByID(ctx context.Context) (map[string]*crew.Person, error) {
	people, err := s.ListPeople(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*crew.Person, len(people))
	for _, p := range people {
		byID[p.ID] = p
	}
	return byID, nil
}

// resolveMembers fills Members from ids, skipping ids that no longer resolve.
func resolveMembers(t *crew.Team, people map[string]*crew.Person) {
	t.Members = nil
	for _, id := range t.MemberIDs {
		if p, ok := people[id]; ok {
			cp := *p
			t.Members = append(t.Members, &cp)
		}
	}
}

// insertBookingTx inserts a fully-populated booking inside a transaction.
func insertBookingTx(ctx context.Context, tx *sql.Tx, b *crew.Booking) error {
	crewJSON, productsJSON, err := encodeBookingLists(b)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO bookings (
			id, date, team_id, start_time, duration_hours,
			customer_name, job_type, notes, address, client_phone,
			client_email, order_numbers, crew, products, salesperson_id,
			created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		b.ID,
		dateutil.FormatISO(b.Date),
		b.TeamID,
		b.StartTime,
		b.DurationHours,
		b.CustomerName,
		string(b.JobType),
		b.Notes,
		b.Address,
		b.ClientPhone,
		b.ClientEmail,
		b.OrderNumbers,
		crewJSON,
		productsJSON,
		b.SalespersonID,
		b.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting booking: %w", err)
	}

	return nil
}

// checkOverlapTx checks whether b intersects another booking of the same
// team on the same date, excluding b itself. Intervals are compared at
// minute resolution inside the same transaction that writes.
func checkOverlapTx(ctx context.Context, tx *sql.Tx, b *crew.Booking) error {
	rows, err := tx.QueryContext(ctx, `
		SELECT id, start_time, duration_hours, customer_name
		FROM bookings
		WHERE date = ? AND team_id = ? AND id != ?
	`, dateutil.FormatISO(b.Date), b.TeamID, b.ID)
	if err != nil {
		return fmt.Errorf("checking overlap: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			id       string
			start    string
			duration float64
			customer string
		)
		if err := rows.Scan(&id, &start, &duration, &customer); err != nil {
			return fmt.Errorf("scanning overlap candidate: %w", err)
		}

		s1, e1 := b.StartMinutes(), b.EndMinutes()
		s2 := crew.TimeToMinutes(start)
		e2 := s2 + int(duration*60)
		if crew.IntervalsOverlap(s1, e1, s2, e2) {
			return fmt.Errorf("%w: conflicts with %q (%s-%s)",
				crew.ErrBookingOverlap, customer, start, crew.MinutesToTime(e2))
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating overlap candidates: %w", err)
	}

	return nil
}

// encodeBookingLists marshals the crew and product line lists as JSON text.
func encodeBookingLists(b *crew.Booking) (crewJSON, productsJSON string, err error) {
	crewIDs := b.Crew
	if crewIDs == nil {
		crewIDs = []string{}
	}
	cj, err := json.Marshal(crewIDs)
	if err != nil {
		return "", "", fmt.Errorf("encoding crew: %w", err)
	}

	lines := make([]productLineRow, 0, len(b.Products))
	for _, l := range b.Products {
		lines = append(lines, productLineRow{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	pj, err := json.Marshal(lines)
	if err != nil {
		return "", "", fmt.Errorf("encoding products: %w", err)
	}

	return string(cj), string(pj), nil
}

// productLineRow is the stored shape of one booking line item.
type productLineRow struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// scanner abstracts *sql.Row and *sql.Rows for shared scan helpers.
type scanner interface {
	Scan(dest ...any) error
}

// scanTeam scans one team row, decoding its member id list.
func scanTeam(row scanner) (*crew.Team, error) {
	var (
		t         crew.Team
		lead      sql.NullString
		memberIDs string
	)
	if err := row.Scan(&t.ID, &t.Name, &lead, &memberIDs); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning team: %w", err)
	}
	t.TeamLeadID = lead.String

	if err := json.Unmarshal([]byte(memberIDs), &t.MemberIDs); err != nil {
		return nil, fmt.Errorf("decoding member ids: %w", err)
	}

	return &t, nil
}

// scanBooking scans one booking row, decoding dates and JSON list columns.
func scanBooking(row scanner) (*crew.Booking, error) {
	var (
		b           crew.Booking
		date        string
		jobType     string
		crewJSON    string
		productJSON string
		createdAt   sql.NullString
		salesperson sql.NullString
	)

	err := row.Scan(
		&b.ID,
		&date,
		&b.TeamID,
		&b.StartTime,
		&b.DurationHours,
		&b.CustomerName,
		&jobType,
		&b.Notes,
		&b.Address,
		&b.ClientPhone,
		&b.ClientEmail,
		&b.OrderNumbers,
		&crewJSON,
		&productJSON,
		&salesperson,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning booking: %w", err)
	}

	b.Date, err = parseDate(date)
	if err != nil {
		return nil, fmt.Errorf("parsing booking date: %w", err)
	}

	b.JobType, err = crew.ParseJobType(jobType)
	if err != nil {
		return nil, fmt.Errorf("parsing job type: %w", err)
	}

	if err := json.Unmarshal([]byte(crewJSON), &b.Crew); err != nil {
		return nil, fmt.Errorf("decoding crew: %w", err)
	}

	var lines []productLineRow
	if err := json.Unmarshal([]byte(productJSON), &lines); err != nil {
		return nil, fmt.Errorf("decoding products: %w", err)
	}
	for _, l := range lines {
		b.Products = append(b.Products, crew.ProductLine{ProductID: l.ProductID, Quantity: l.Quantity})
	}

	b.SalespersonID = salesperson.String

	if createdAt.Valid {
		if at, err := time.Parse(time.RFC3339, createdAt.String); err == nil {
			b.CreatedAt = at
		}
	}

	return &b, nil
}

// parseDate parses a date string in the formats SQLite might return.
// Date-only values are parsed in local timezone to match time.Now() behavior.
func parseDate(s string) (time.Time, error) {
	if t, err := time.ParseInLocation(dateutil.ISODate, s, time.Local); err == nil {
		return t, nil
	}

	// SQLite returns DATE columns as "2006-01-02T00:00:00Z"; extract the
	// date part and parse as local midnight.
	if len(s) >= 10 {
		if t, err := time.ParseInLocation(dateutil.ISODate, s[:10], time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date format: %s", s)
}
