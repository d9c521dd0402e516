package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hallfrida/ordasafn-backend/internal/domain"
)

// CreateAdmin registers an account row for an identity that already exists
// at the external provider. Administrative: ordinary sign-up happens at
// the provider, not here.
func (s *Service) CreateAdmin(ctx context.Context, id, username, adminKey string) (*domain.User, error) {
	if err := s.admin.Check(adminKey); err != nil {
		return nil, err
	}

	var errs []domain.FieldError
	if id == "" {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	if username == "" {
		errs = append(errs, domain.FieldError{Field: "username", Message: "required"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	created, err := s.users.Create(ctx, domain.User{ID: id, Username: username})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.log.InfoContext(ctx, "user created", slog.String("user_id", id))
	return created, nil
}

// DeleteAdmin removes an account row. Administrative.
func (s *Service) DeleteAdmin(ctx context.Context, id, adminKey string) (*domain.User, error) {
	if err := s.admin.Check(adminKey); err != nil {
		return nil, err
	}

	if id == "" {
		return nil, domain.NewValidationError("id", "required")
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete user: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted", slog.String("user_id", id))
	return u, nil
}
