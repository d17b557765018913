package db

import "fmt"

// migrate runs database migrations.
func (s *SQLite) migrate() error {
	query := `
		CREATE TABLE IF NOT EXISTS teams (
			id           TEXT PRIMARY KEY,
			name         TEXT NOT NULL,
			team_lead_id TEXT,
			member_ids   TEXT NOT NULL DEFAULT '[]'
		);

		CREATE TABLE IF NOT EXISTS people (
			id    TEXT PRIMARY KEY,
			name  TEXT NOT NULL,
			role  TEXT CHECK(role IN ('fitter', 'sales', 'admin', 'other')),
			phone TEXT
		);

		CREATE TABLE IF NOT EXISTS products (
			id       TEXT PRIMARY KEY,
			name     TEXT NOT NULL,
			category TEXT
		);

		CREATE TABLE IF NOT EXISTS bookings (
			id             TEXT PRIMARY KEY,
			date           DATE NOT NULL,
			team_id        TEXT NOT NULL REFERENCES teams(id),
			start_time     TIME NOT NULL,
			duration_hours REAL NOT NULL,
			customer_name  TEXT,
			job_type       TEXT CHECK(job_type IN ('measure', 'install', 'service', 'transit', 'other')),
			notes          TEXT,
			address        TEXT,
			client_phone   TEXT,
			client_email   TEXT,
			order_numbers  TEXT,
			crew           TEXT NOT NULL DEFAULT '[]',
			products       TEXT NOT NULL DEFAULT '[]',
			salesperson_id TEXT,
			created_at     DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_bookings_date ON bookings(date);
		CREATE INDEX IF NOT EXISTS idx_bookings_team ON bookings(team_id);
	`

	if _, err := s.db.Exec(query); err != nil {
		return fmt.Errorf("creating tables: %w", err)
	}

	return nil
}
