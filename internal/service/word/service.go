// Package word implements the word business logic: lookups by normalized
// form, ownership-scoped creation and deletion, and resolution of lemma
// and word-to-word relationships.
package word

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hallfrida/ordasafn-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type wordRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	ListByNorm(ctx context.Context, language uuid.UUID, norm string) ([]domain.Word, error)
	Search(ctx context.Context, language uuid.UUID, query string) ([]domain.Word, error)
	Create(ctx context.Context, w domain.NewWord) (*domain.Word, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListRelations(ctx context.Context, source uuid.UUID, rel domain.WordRelationship) ([]domain.WordRelation, error)
}

type languageRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Language, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the word business logic.
type Service struct {
	log       *slog.Logger
	words     wordRepo
	languages languageRepo
}

// NewService creates a new Word service.
func NewService(logger *slog.Logger, words wordRepo, languages languageRepo) *Service {
	return &Service{
		log:       logger.With("service", "word"),
		words:     words,
		languages: languages,
	}
}
