package resolver

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hallfrida/ordasafn-backend/internal/domain"
	"github.com/hallfrida/ordasafn-backend/internal/service/language"
	"github.com/hallfrida/ordasafn-backend/internal/service/user"
	"github.com/hallfrida/ordasafn-backend/internal/service/word"
)

// languageService defines what resolver needs from the Language service.
type languageService interface {
	All(ctx context.Context) ([]domain.Language, error)
	Get(ctx context.Context, name, owner string) (*domain.Language, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Language, error)
	Find(ctx context.Context, query string) ([]domain.Language, error)
	WordCount(ctx context.Context, id uuid.UUID) (int64, error)
	Create(ctx context.Context, input language.CreateInput) (*domain.Language, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Language, error)
	Follow(ctx context.Context, id uuid.UUID) (*domain.Language, error)
	Unfollow(ctx context.Context, id uuid.UUID) (*domain.Language, error)
	Owner(ctx context.Context, l *domain.Language) (*domain.User, error)
	Authors(ctx context.Context, id uuid.UUID) ([]domain.User, error)
	Publishers(ctx context.Context, id uuid.UUID) ([]domain.User, error)
	TargetLanguages(ctx context.Context, id uuid.UUID) ([]domain.Language, error)
	Followers(ctx context.Context, id uuid.UUID) ([]domain.User, error)
}

// wordService defines what resolver needs from the Word service.
type wordService interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	ByNorm(ctx context.Context, language uuid.UUID, word string) ([]domain.Word, error)
	Find(ctx context.Context, language uuid.UUID, query string) ([]domain.Word, error)
	Create(ctx context.Context, input word.CreateInput) (*domain.Word, error)
	Delete(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	Language(ctx context.Context, w *domain.Word) (*domain.Language, error)
	Lemma(ctx context.Context, w *domain.Word) (*domain.Word, error)
	Definitions(ctx context.Context, id uuid.UUID) ([]domain.Word, error)
	Related(ctx context.Context, id uuid.UUID) ([]domain.Word, error)
}

// userService defines what resolver needs from the User service.
type userService interface {
	Get(ctx context.Context, id string) (*domain.User, error)
	Find(ctx context.Context, query string) ([]domain.User, error)
	All(ctx context.Context, adminKey string) ([]domain.User, error)
	APIVersion(ctx context.Context) string
	CreateAdmin(ctx context.Context, id, username, adminKey string) (*domain.User, error)
	DeleteAdmin(ctx context.Context, id, adminKey string) (*domain.User, error)
	Following(ctx context.Context, id string) ([]domain.User, error)
	Followers(ctx context.Context, id string) ([]domain.User, error)
	FollowedLanguages(ctx context.Context, id string) ([]domain.Language, error)
	Learning(ctx context.Context, id string) ([]user.LearningEntry, error)
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	language languageService
	word     wordService
	user     userService
	log      *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
func NewResolver(
	log *slog.Logger,
	language languageService,
	word wordService,
	user userService,
) *Resolver {
	return &Resolver{
		language: language,
		word:     word,
		user:     user,
		log:      log.With("component", "graphql"),
	}
}
