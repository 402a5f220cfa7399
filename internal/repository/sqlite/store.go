package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/openlibro/libris/internal/domain"
)

// Table names the tables the store is allowed to touch. Table and column
// names are the only identifiers ever interpolated into query text, so both
// are checked before any SQL is built; every value travels as a bound
// parameter.
type Table string

// The complete set of tables.
const (
	TableUsers        Table = "users"
	TableItems        Table = "items"
	TableEmployees    Table = "employees"
	TableLoans        Table = "loans"
	TableReservations Table = "reservations"
	TableFines        Table = "fines"
)

// valid reports whether t is part of the closed table set. The constants
// above are the only sanctioned values, but Table is a string type and a
// caller could still cast, so every operation re-checks.
func (t Table) valid() bool {
	switch t {
	case TableUsers, TableItems, TableEmployees, TableLoans, TableReservations, TableFines:
		return true
	}
	return false
}

// Row is an ordered-by-name mapping of column name to raw column value as
// returned by the driver.
type Row map[string]any

// querier is satisfied by *sql.DB and *sql.Tx so the same store code runs
// inside and outside a transaction.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Store is the generic CRUD surface over the whitelisted tables. Repositories
// build their row-to-entity conversion on top of it.
type Store struct {
	q      querier
	logger zerolog.Logger
}

// NewStore creates a Store bound to the database connection.
func NewStore(db *DB, logger zerolog.Logger) *Store {
	return &Store{
		q:      db.DB(),
		logger: logger.With().Str("component", "store").Logger(),
	}
}

// withTx returns a copy of the store bound to the transaction.
func (s *Store) withTx(tx *sql.Tx) *Store {
	return &Store{q: tx, logger: s.logger}
}

var columnPattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// sanitizeColumns validates every field name and returns them in a stable
// order so generated SQL is deterministic.
func sanitizeColumns(fields Row) ([]string, error) {
	columns := make([]string, 0, len(fields))
	for col := range fields {
		if !columnPattern.MatchString(col) {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidColumn, col)
		}
		columns = append(columns, col)
	}
	sort.Strings(columns)
	return columns, nil
}

// Insert writes one row and returns the newly assigned ID.
// Column names are sanitized before interpolation; values are bound.
func (s *Store) Insert(ctx context.Context, table Table, fields Row) (int64, error) {
	if !table.valid() {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTable, table)
	}
	columns, err := sanitizeColumns(fields)
	if err != nil {
		return 0, err
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(columns)), ", ")
	args := make([]any, 0, len(columns))
	for _, col := range columns {
		args = append(args, fields[col])
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), placeholders)

	result, err := s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert into %s failed: %w", table, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID: %w", err)
	}
	return id, nil
}

// Select reads rows matching the predicate, or the full table when the
// predicate is empty. The predicate is a raw boolean fragment such as
// "id = ?" with positional bound arguments.
func (s *Store) Select(ctx context.Context, table Table, where string, args ...any) ([]Row, error) {
	if !table.valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidTable, table)
	}

	query := fmt.Sprintf("SELECT * FROM %s", table)
	if where != "" {
		query += " WHERE " + where
	}

	rows, err := s.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select from %s failed: %w", table, err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read columns from %s: %w", table, err)
	}

	var result []Row
	for rows.Next() {
		values := make([]any, len(columns))
		pointers := make([]any, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, fmt.Errorf("failed to scan row from %s: %w", table, err)
		}

		row := make(Row, len(columns))
		for i, col := range columns {
			row[col] = values[i]
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", table, err)
	}
	return result, nil
}

// Update rewrites the given fields on all rows matching the predicate and
// returns the number of affected rows. Field values are bound first,
// followed by the predicate arguments.
func (s *Store) Update(ctx context.Context, table Table, fields Row, where string, args ...any) (int64, error) {
	if !table.valid() {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTable, table)
	}
	columns, err := sanitizeColumns(fields)
	if err != nil {
		return 0, err
	}

	assignments := make([]string, 0, len(columns))
	bound := make([]any, 0, len(columns)+len(args))
	for _, col := range columns {
		assignments = append(assignments, col+" = ?")
		bound = append(bound, fields[col])
	}
	bound = append(bound, args...)

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s",
		table, strings.Join(assignments, ", "), where)

	result, err := s.q.ExecContext(ctx, query, bound...)
	if err != nil {
		return 0, fmt.Errorf("update %s failed: %w", table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return affected, nil
}

// Delete removes all rows matching the predicate and returns the number of
// affected rows.
func (s *Store) Delete(ctx context.Context, table Table, where string, args ...any) (int64, error) {
	if !table.valid() {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidTable, table)
	}

	query := fmt.Sprintf("DELETE FROM %s WHERE %s", table, where)

	result, err := s.q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete from %s failed: %w", table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return affected, nil
}

// =============================================================================
// Row accessors
// =============================================================================

// Column values arrive from the driver as int64, float64, string, []byte or
// nil. The accessors below normalize them with a default for missing or
// NULL columns.

func rowString(row Row, col string) string {
	switch v := row[col].(type) {
	case string:
		return v
	case []byte:
		return string(v)
	}
	return ""
}

func rowInt64(row Row, col string) int64 {
	switch v := row[col].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	}
	return 0
}

func rowFloat64(row Row, col string) float64 {
	switch v := row[col].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	}
	return 0
}

func rowBool(row Row, col string) bool {
	return rowInt64(row, col) != 0
}

// rowTime parses an RFC 3339 timestamp column, returning the zero time for
// NULL or malformed values.
func rowTime(row Row, col string) time.Time {
	s := rowString(row, col)
	if s == "" {
		return time.Time{}
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return ts
}

// rowTimePtr is rowTime for nullable timestamp columns.
func rowTimePtr(row Row, col string) *time.Time {
	s := rowString(row, col)
	if s == "" {
		return nil
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	return &ts
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
