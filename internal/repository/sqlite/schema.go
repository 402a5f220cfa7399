package sqlite

import (
	"context"
	"fmt"
)

// schema creates the six tables plus the indexes backing the repository
// finders (email, login name, title, author and every foreign key column).
// Everything is IF NOT EXISTS so CreateSchema is idempotent.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	email TEXT UNIQUE NOT NULL,
	type TEXT NOT NULL,
	id_number TEXT UNIQUE NOT NULL,
	phone TEXT,
	active INTEGER NOT NULL DEFAULT 1,
	registered_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS items (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	author TEXT,
	isbn TEXT,
	category TEXT NOT NULL,
	status TEXT NOT NULL DEFAULT 'available',
	description TEXT,
	location TEXT,
	acquired_at TEXT NOT NULL,
	replacement_value REAL
);

CREATE TABLE IF NOT EXISTS employees (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	email TEXT UNIQUE NOT NULL,
	login_name TEXT UNIQUE NOT NULL,
	password_hash TEXT NOT NULL,
	role TEXT NOT NULL DEFAULT 'Librarian',
	shift TEXT,
	active INTEGER NOT NULL DEFAULT 1,
	registered_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS loans (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users (id),
	item_id INTEGER NOT NULL REFERENCES items (id),
	employee_id INTEGER NOT NULL REFERENCES employees (id),
	loaned_at TEXT NOT NULL,
	due_at TEXT NOT NULL,
	returned_at TEXT,
	notes TEXT,
	active INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS reservations (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users (id),
	item_id INTEGER NOT NULL REFERENCES items (id),
	employee_id INTEGER NOT NULL REFERENCES employees (id),
	reserved_at TEXT NOT NULL,
	expires_at TEXT NOT NULL,
	active INTEGER NOT NULL DEFAULT 1
);

CREATE TABLE IF NOT EXISTS fines (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user_id INTEGER NOT NULL REFERENCES users (id),
	loan_id INTEGER NOT NULL REFERENCES loans (id),
	employee_id INTEGER NOT NULL REFERENCES employees (id),
	amount REAL NOT NULL,
	description TEXT NOT NULL,
	issued_at TEXT NOT NULL,
	paid INTEGER NOT NULL DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_users_email ON users (email);
CREATE INDEX IF NOT EXISTS idx_users_id_number ON users (id_number);
CREATE INDEX IF NOT EXISTS idx_employees_email ON employees (email);
CREATE INDEX IF NOT EXISTS idx_employees_login_name ON employees (login_name);
CREATE INDEX IF NOT EXISTS idx_items_title ON items (title);
CREATE INDEX IF NOT EXISTS idx_items_author ON items (author);
CREATE INDEX IF NOT EXISTS idx_loans_user ON loans (user_id);
CREATE INDEX IF NOT EXISTS idx_loans_item ON loans (item_id);
CREATE INDEX IF NOT EXISTS idx_loans_employee ON loans (employee_id);
CREATE INDEX IF NOT EXISTS idx_reservations_user ON reservations (user_id);
CREATE INDEX IF NOT EXISTS idx_reservations_item ON reservations (item_id);
CREATE INDEX IF NOT EXISTS idx_reservations_employee ON reservations (employee_id);
CREATE INDEX IF NOT EXISTS idx_fines_user ON fines (user_id);
CREATE INDEX IF NOT EXISTS idx_fines_loan ON fines (loan_id);
CREATE INDEX IF NOT EXISTS idx_fines_employee ON fines (employee_id);
`

// CreateSchema creates all tables and indexes if they do not exist yet.
func (s *Store) CreateSchema(ctx context.Context) error {
	if _, err := s.q.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	s.logger.Info().Msg("database schema ready")
	return nil
}
