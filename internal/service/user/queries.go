package user

import (
	"context"
	"fmt"

	"github.com/hallfrida/ordasafn-backend/internal/domain"
	"github.com/hallfrida/ordasafn-backend/pkg/ctxutil"
)

// Version is the public API version string reported to clients.
const Version = "1.0.0"

// Get returns a user by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.User, error) {
	if id == "" {
		return nil, domain.NewValidationError("id", "required")
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// Find returns users whose username matches the query. No match is an
// empty result, not an error.
func (s *Service) Find(ctx context.Context, query string) ([]domain.User, error) {
	if query == "" {
		return nil, domain.NewValidationError("query", "required")
	}

	users, err := s.users.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	return users, nil
}

// All returns every user. Administrative: the key is checked before the
// store is touched.
func (s *Service) All(ctx context.Context, adminKey string) ([]domain.User, error) {
	if err := s.admin.Check(adminKey); err != nil {
		return nil, err
	}

	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// APIVersion reports the API version along with the caller's
// authentication state.
func (s *Service) APIVersion(ctx context.Context) string {
	if id, ok := ctxutil.CallerIDFromCtx(ctx); ok {
		return fmt.Sprintf("%s (authenticated as %s)", Version, id)
	}
	return fmt.Sprintf("%s (anonymous)", Version)
}
