package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/puddle/v2"

	"github.com/hallfrida/ordasafn-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors. The entity name and
// key are kept in the wrapped message for logs; callers only ever see the
// sentinel.
//
// context.Canceled passes through as-is. context.DeadlineExceeded maps to
// domain.ErrConnection: with a bounded pool, an exhausted pool blocks the
// acquire until the request deadline, and the caller may retry.
func MapError(err error, entity, key string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, key, err)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, puddle.ErrClosedPool) {
		return fmt.Errorf("%s %s: %v: %w", entity, key, err, domain.ErrConnection)
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%s %s: %v: %w", entity, key, err, domain.ErrConnection)
	}

	// "no row matched" is distinguished from all other failures.
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
	}

	// PgError codes
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrAlreadyExists)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s %s: %w", entity, key, domain.ErrValidation)
		}
	}

	// Everything else surfaces as a store failure with full detail retained.
	return fmt.Errorf("%s %s: %w", entity, key, err)
}
