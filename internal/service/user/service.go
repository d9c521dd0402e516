// Package user implements the user-facing account logic: lookups, the
// admin-gated account management, and resolution of a user's follows and
// learning progress.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hallfrida/ordasafn-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type userRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Search(ctx context.Context, query string) ([]domain.User, error)
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	ListFollowing(ctx context.Context, follower string) ([]domain.UserFollow, error)
	ListFollowers(ctx context.Context, following string) ([]domain.UserFollow, error)
}

type languageRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Language, error)
	ListFollowed(ctx context.Context, userID string) ([]domain.LanguageFollow, error)
}

type wordRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	ListLearning(ctx context.Context, userID string) ([]domain.WordLearning, error)
}

type adminGuard interface {
	Check(presented string) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the user business logic.
type Service struct {
	log       *slog.Logger
	users     userRepo
	languages languageRepo
	words     wordRepo
	admin     adminGuard
}

// NewService creates a new User service.
func NewService(logger *slog.Logger, users userRepo, languages languageRepo, words wordRepo, admin adminGuard) *Service {
	return &Service{
		log:       logger.With("service", "user"),
		users:     users,
		languages: languages,
		words:     words,
		admin:     admin,
	}
}
