package postgres

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hallfrida/ordasafn-backend/internal/domain"
)

func TestMapError_Nil(t *testing.T) {
	t.Parallel()

	if err := MapError(nil, "language", "x"); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestMapError_NoRows(t *testing.T) {
	t.Parallel()

	err := MapError(pgx.ErrNoRows, "language", "abc")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("pgx.ErrNoRows should map to ErrNotFound, got %v", err)
	}
}

func TestMapError_UniqueViolation(t *testing.T) {
	t.Parallel()

	err := MapError(&pgconn.PgError{Code: "23505"}, "word", "norm")
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("23505 should map to ErrAlreadyExists, got %v", err)
	}
}

func TestMapError_ForeignKeyViolation(t *testing.T) {
	t.Parallel()

	err := MapError(&pgconn.PgError{Code: "23503"}, "word", "lang")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("23503 should map to ErrNotFound, got %v", err)
	}
}

func TestMapError_CheckViolation(t *testing.T) {
	t.Parallel()

	err := MapError(&pgconn.PgError{Code: "23514"}, "language", "release")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("23514 should map to ErrValidation, got %v", err)
	}
}

func TestMapError_DeadlineToConnection(t *testing.T) {
	t.Parallel()

	err := MapError(fmt.Errorf("acquire: %w", context.DeadlineExceeded), "user", "u1")
	if !errors.Is(err, domain.ErrConnection) {
		t.Errorf("deadline during acquire should map to ErrConnection, got %v", err)
	}
}

func TestMapError_CanceledPassesThrough(t *testing.T) {
	t.Parallel()

	err := MapError(context.Canceled, "user", "u1")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("canceled should pass through, got %v", err)
	}
	if errors.Is(err, domain.ErrConnection) {
		t.Error("canceled should not be classified as a connection failure")
	}
}

func TestMapError_OtherFailuresKeepDetail(t *testing.T) {
	t.Parallel()

	cause := &pgconn.PgError{Code: "42P01", Message: "relation does not exist"}
	err := MapError(cause, "word", "w1")

	if errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrConnection) {
		t.Errorf("unexpected classification: %v", err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		t.Error("original PgError should be preserved for logs")
	}
}
