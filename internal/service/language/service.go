// Package language implements the language business logic: lookups,
// ownership-scoped creation and deletion, follows, and resolution of
// the relationships hanging off a language.
package language

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hallfrida/ordasafn-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type languageRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Language, error)
	GetByNameOwner(ctx context.Context, name, owner string) (*domain.Language, error)
	List(ctx context.Context) ([]domain.Language, error)
	Search(ctx context.Context, query string) ([]domain.Language, error)
	Create(ctx context.Context, l domain.Language) (*domain.Language, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListAgents(ctx context.Context, language uuid.UUID, rel domain.AgentLanguageRelation) ([]domain.LanguageAgent, error)
	ListTranslations(ctx context.Context, from uuid.UUID) ([]domain.LanguageTranslation, error)
	CreateFollow(ctx context.Context, language uuid.UUID, userID string) error
	GetFollow(ctx context.Context, language uuid.UUID, userID string) (*domain.LanguageFollow, error)
	DeleteFollow(ctx context.Context, id int32) error
	ListFollowers(ctx context.Context, language uuid.UUID) ([]domain.LanguageFollow, error)
}

type wordRepo interface {
	CountByLanguage(ctx context.Context, language uuid.UUID) (int64, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the language business logic.
type Service struct {
	log       *slog.Logger
	languages languageRepo
	words     wordRepo
	users     userRepo
}

// NewService creates a new Language service.
func NewService(logger *slog.Logger, languages languageRepo, words wordRepo, users userRepo) *Service {
	return &Service{
		log:       logger.With("service", "language"),
		languages: languages,
		words:     words,
		users:     users,
	}
}
