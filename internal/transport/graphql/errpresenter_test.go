package graphql

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/hallfrida/ordasafn-backend/internal/domain"
	"github.com/hallfrida/ordasafn-backend/internal/transport/graphql/model"
	"github.com/hallfrida/ordasafn-backend/pkg/ctxutil"
)

func TestErrorPresenter_NotFound(t *testing.T) {
	presenter := NewErrorPresenter(slog.New(slog.NewTextHandler(io.Discard, nil)))

	gqlErr := presenter(context.Background(), domain.ErrNotFound)

	if gqlErr.Extensions == nil {
		t.Fatal("expected extensions, got nil")
	}
	if code := gqlErr.Extensions["code"]; code != "NOT_FOUND" {
		t.Errorf("expected code NOT_FOUND, got %v", code)
	}
}

func TestErrorPresenter_WrappedNotFound(t *testing.T) {
	presenter := NewErrorPresenter(slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := fmt.Errorf("language %q: %w", "norse", domain.ErrNotFound)
	gqlErr := presenter(context.Background(), err)

	if code := gqlErr.Extensions["code"]; code != "NOT_FOUND" {
		t.Errorf("expected code NOT_FOUND, got %v", code)
	}
}

func TestErrorPresenter_AlreadyExists(t *testing.T) {
	presenter := NewErrorPresenter(slog.New(slog.NewTextHandler(io.Discard, nil)))

	gqlErr := presenter(context.Background(), domain.ErrAlreadyExists)

	if code := gqlErr.Extensions["code"]; code != "ALREADY_EXISTS" {
		t.Errorf("expected code ALREADY_EXISTS, got %v", code)
	}
}

func TestErrorPresenter_Validation(t *testing.T) {
	presenter := NewErrorPresenter(slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := domain.NewValidationErrors([]domain.FieldError{
		{Field: "name", Message: "required"},
		{Field: "norm", Message: "normalizes to empty string"},
	})

	gqlErr := presenter(context.Background(), err)

	if code := gqlErr.Extensions["code"]; code != "VALIDATION" {
		t.Errorf("expected code VALIDATION, got %v", code)
	}
	fields, ok := gqlErr.Extensions["fields"]
	if !ok {
		t.Fatal("expected fields in extensions")
	}
	fieldErrors, ok := fields.([]domain.FieldError)
	if !ok {
		t.Fatalf("expected fields to be []FieldError, got %T", fields)
	}
	if len(fieldErrors) != 2 {
		t.Errorf("expected 2 field errors, got %d", len(fieldErrors))
	}
}

func TestErrorPresenter_MalformedUUIDArgument(t *testing.T) {
	presenter := NewErrorPresenter(slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, uuidErr := model.UnmarshalUUID("not-a-uuid")
	gqlErr := presenter(context.Background(), uuidErr)

	if code := gqlErr.Extensions["code"]; code != "VALIDATION" {
		t.Errorf("expected code VALIDATION, got %v", code)
	}
	if gqlErr.Message == "internal error" {
		t.Error("a malformed identifier is a caller error, not an internal one")
	}
}

func TestErrorPresenter_Unauthorized(t *testing.T) {
	presenter := NewErrorPresenter(slog.New(slog.NewTextHandler(io.Discard, nil)))

	gqlErr := presenter(context.Background(), domain.ErrUnauthorized)

	if code := gqlErr.Extensions["code"]; code != "UNAUTHORIZED" {
		t.Errorf("expected code UNAUTHORIZED, got %v", code)
	}
}

func TestErrorPresenter_Connection(t *testing.T) {
	presenter := NewErrorPresenter(slog.New(slog.NewTextHandler(io.Discard, nil)))

	gqlErr := presenter(context.Background(), domain.ErrConnection)

	if code := gqlErr.Extensions["code"]; code != "CONNECTION" {
		t.Errorf("expected code CONNECTION, got %v", code)
	}
}

func TestErrorPresenter_Internal(t *testing.T) {
	presenter := NewErrorPresenter(slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx := ctxutil.WithRequestID(context.Background(), "req-42")
	gqlErr := presenter(ctx, errors.New("pq: relation does not exist"))

	if code := gqlErr.Extensions["code"]; code != "INTERNAL" {
		t.Errorf("expected code INTERNAL, got %v", code)
	}
	if gqlErr.Message != "internal error" {
		t.Errorf("internal details leaked to client: %q", gqlErr.Message)
	}
}
