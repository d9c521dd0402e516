package language

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hallfrida/ordasafn-backend/internal/domain"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockLanguageRepo struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Language, error)
	GetByNameOwnerFunc   func(ctx context.Context, name, owner string) (*domain.Language, error)
	ListFunc             func(ctx context.Context) ([]domain.Language, error)
	SearchFunc           func(ctx context.Context, query string) ([]domain.Language, error)
	CreateFunc           func(ctx context.Context, l domain.Language) (*domain.Language, error)
	DeleteFunc           func(ctx context.Context, id uuid.UUID) error
	ListAgentsFunc       func(ctx context.Context, language uuid.UUID, rel domain.AgentLanguageRelation) ([]domain.LanguageAgent, error)
	ListTranslationsFunc func(ctx context.Context, from uuid.UUID) ([]domain.LanguageTranslation, error)
	CreateFollowFunc     func(ctx context.Context, language uuid.UUID, userID string) error
	GetFollowFunc        func(ctx context.Context, language uuid.UUID, userID string) (*domain.LanguageFollow, error)
	DeleteFollowFunc     func(ctx context.Context, id int32) error
	ListFollowersFunc    func(ctx context.Context, language uuid.UUID) ([]domain.LanguageFollow, error)

	createCalls int
	deleteCalls int
}

func (m *mockLanguageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Language, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockLanguageRepo) GetByNameOwner(ctx context.Context, name, owner string) (*domain.Language, error) {
	if m.GetByNameOwnerFunc != nil {
		return m.GetByNameOwnerFunc(ctx, name, owner)
	}
	return nil, domain.ErrNotFound
}

func (m *mockLanguageRepo) List(ctx context.Context) ([]domain.Language, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []domain.Language{}, nil
}

func (m *mockLanguageRepo) Search(ctx context.Context, query string) ([]domain.Language, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return []domain.Language{}, nil
}

func (m *mockLanguageRepo) Create(ctx context.Context, l domain.Language) (*domain.Language, error) {
	m.createCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, l)
	}
	l.ID = uuid.New()
	return &l, nil
}

func (m *mockLanguageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.deleteCalls++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockLanguageRepo) ListAgents(ctx context.Context, language uuid.UUID, rel domain.AgentLanguageRelation) ([]domain.LanguageAgent, error) {
	if m.ListAgentsFunc != nil {
		return m.ListAgentsFunc(ctx, language, rel)
	}
	return []domain.LanguageAgent{}, nil
}

func (m *mockLanguageRepo) ListTranslations(ctx context.Context, from uuid.UUID) ([]domain.LanguageTranslation, error) {
	if m.ListTranslationsFunc != nil {
		return m.ListTranslationsFunc(ctx, from)
	}
	return []domain.LanguageTranslation{}, nil
}

func (m *mockLanguageRepo) CreateFollow(ctx context.Context, language uuid.UUID, userID string) error {
	if m.CreateFollowFunc != nil {
		return m.CreateFollowFunc(ctx, language, userID)
	}
	return nil
}

func (m *mockLanguageRepo) GetFollow(ctx context.Context, language uuid.UUID, userID string) (*domain.LanguageFollow, error) {
	if m.GetFollowFunc != nil {
		return m.GetFollowFunc(ctx, language, userID)
	}
	return nil, domain.ErrNotFound
}

func (m *mockLanguageRepo) DeleteFollow(ctx context.Context, id int32) error {
	if m.DeleteFollowFunc != nil {
		return m.DeleteFollowFunc(ctx, id)
	}
	return nil
}

func (m *mockLanguageRepo) ListFollowers(ctx context.Context, language uuid.UUID) ([]domain.LanguageFollow, error) {
	if m.ListFollowersFunc != nil {
		return m.ListFollowersFunc(ctx, language)
	}
	return []domain.LanguageFollow{}, nil
}

type mockWordRepo struct {
	CountByLanguageFunc func(ctx context.Context, language uuid.UUID) (int64, error)
}

func (m *mockWordRepo) CountByLanguage(ctx context.Context, language uuid.UUID) (int64, error) {
	if m.CountByLanguageFunc != nil {
		return m.CountByLanguageFunc(ctx, language)
	}
	return 0, nil
}

type mockUserRepo struct {
	GetByIDFunc func(ctx context.Context, id string) (*domain.User, error)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return &domain.User{ID: id, Username: "user-" + id}, nil
}

func newTestService(languages *mockLanguageRepo, words *mockWordRepo, users *mockUserRepo) *Service {
	if languages == nil {
		languages = &mockLanguageRepo{}
	}
	if words == nil {
		words = &mockWordRepo{}
	}
	if users == nil {
		users = &mockUserRepo{}
	}
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), languages, words, users)
}
