package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// ErrConstraintViolation is returned when a write breaks a uniqueness or
// foreign-key constraint. The enclosing transaction has been rolled back.
var ErrConstraintViolation = errors.New("constraint violation")

// ConflictError is returned when a business rule forbids the operation.
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string {
	return e.Reason
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// wrapErr wraps err with msg, marking SQLite constraint failures with
// ErrConstraintViolation so callers can match them with errors.Is.
func wrapErr(msg string, err error) error {
	var se *sqlite.Error
	if errors.As(err, &se) && se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
		return fmt.Errorf("%s: %w: %w", msg, ErrConstraintViolation, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
