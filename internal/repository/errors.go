package repository

import (
	"errors"
	"fmt"

	"github.com/Domenick1991/altera/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

// readErr maps a failed lookup of what.
func readErr(what string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NotFound(what)
	}
	return fmt.Errorf("query %s: %w", what, err)
}

// writeErr maps a failed insert or update. A dangling reference means the
// referenced row is missing.
func writeErr(what string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NotFound(what)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return domain.Conflict(what + " already exists")
		case pgForeignKeyViolation:
			return fmt.Errorf("%s references a missing row: %w", what, domain.ErrNotFound)
		case pgCheckViolation:
			return domain.Invalid(what + " violates " + pgErr.ConstraintName)
		}
	}
	return fmt.Errorf("write %s: %w", what, err)
}

// deleteErr maps a failed delete. A foreign key violation means other rows
// still depend on the one being deleted.
func deleteErr(what string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return domain.Conflict(what + " is still referenced by reservations")
	}
	return fmt.Errorf("delete %s: %w", what, err)
}

func affected(what string, tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return domain.NotFound(what)
	}
	return nil
}
