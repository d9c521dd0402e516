package resolver

import (
	"context"

	"github.com/google/uuid"

	"github.com/hallfrida/ordasafn-backend/internal/domain"
	"github.com/hallfrida/ordasafn-backend/internal/service/language"
	"github.com/hallfrida/ordasafn-backend/internal/service/user"
	"github.com/hallfrida/ordasafn-backend/internal/service/word"
)

// languageServiceMock implements languageService with overridable funcs.
type languageServiceMock struct {
	AllFunc             func(ctx context.Context) ([]domain.Language, error)
	GetFunc             func(ctx context.Context, name, owner string) (*domain.Language, error)
	GetByIDFunc         func(ctx context.Context, id uuid.UUID) (*domain.Language, error)
	FindFunc            func(ctx context.Context, query string) ([]domain.Language, error)
	WordCountFunc       func(ctx context.Context, id uuid.UUID) (int64, error)
	CreateFunc          func(ctx context.Context, input language.CreateInput) (*domain.Language, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) (*domain.Language, error)
	FollowFunc          func(ctx context.Context, id uuid.UUID) (*domain.Language, error)
	UnfollowFunc        func(ctx context.Context, id uuid.UUID) (*domain.Language, error)
	OwnerFunc           func(ctx context.Context, l *domain.Language) (*domain.User, error)
	AuthorsFunc         func(ctx context.Context, id uuid.UUID) ([]domain.User, error)
	PublishersFunc      func(ctx context.Context, id uuid.UUID) ([]domain.User, error)
	TargetLanguagesFunc func(ctx context.Context, id uuid.UUID) ([]domain.Language, error)
	FollowersFunc       func(ctx context.Context, id uuid.UUID) ([]domain.User, error)
}

func (m *languageServiceMock) All(ctx context.Context) ([]domain.Language, error) {
	return m.AllFunc(ctx)
}

func (m *languageServiceMock) Get(ctx context.Context, name, owner string) (*domain.Language, error) {
	return m.GetFunc(ctx, name, owner)
}

func (m *languageServiceMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Language, error) {
	return m.GetByIDFunc(ctx, id)
}

func (m *languageServiceMock) Find(ctx context.Context, query string) ([]domain.Language, error) {
	return m.FindFunc(ctx, query)
}

func (m *languageServiceMock) WordCount(ctx context.Context, id uuid.UUID) (int64, error) {
	return m.WordCountFunc(ctx, id)
}

func (m *languageServiceMock) Create(ctx context.Context, input language.CreateInput) (*domain.Language, error) {
	return m.CreateFunc(ctx, input)
}

func (m *languageServiceMock) Delete(ctx context.Context, id uuid.UUID) (*domain.Language, error) {
	return m.DeleteFunc(ctx, id)
}

func (m *languageServiceMock) Follow(ctx context.Context, id uuid.UUID) (*domain.Language, error) {
	return m.FollowFunc(ctx, id)
}

func (m *languageServiceMock) Unfollow(ctx context.Context, id uuid.UUID) (*domain.Language, error) {
	return m.UnfollowFunc(ctx, id)
}

func (m *languageServiceMock) Owner(ctx context.Context, l *domain.Language) (*domain.User, error) {
	return m.OwnerFunc(ctx, l)
}

func (m *languageServiceMock) Authors(ctx context.Context, id uuid.UUID) ([]domain.User, error) {
	return m.AuthorsFunc(ctx, id)
}

func (m *languageServiceMock) Publishers(ctx context.Context, id uuid.UUID) ([]domain.User, error) {
	return m.PublishersFunc(ctx, id)
}

func (m *languageServiceMock) TargetLanguages(ctx context.Context, id uuid.UUID) ([]domain.Language, error) {
	return m.TargetLanguagesFunc(ctx, id)
}

func (m *languageServiceMock) Followers(ctx context.Context, id uuid.UUID) ([]domain.User, error) {
	return m.FollowersFunc(ctx, id)
}

// wordServiceMock implements wordService with overridable funcs.
type wordServiceMock struct {
	GetFunc         func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	ByNormFunc      func(ctx context.Context, language uuid.UUID, word string) ([]domain.Word, error)
	FindFunc        func(ctx context.Context, language uuid.UUID, query string) ([]domain.Word, error)
	CreateFunc      func(ctx context.Context, input word.CreateInput) (*domain.Word, error)
	DeleteFunc      func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	LanguageFunc    func(ctx context.Context, w *domain.Word) (*domain.Language, error)
	LemmaFunc       func(ctx context.Context, w *domain.Word) (*domain.Word, error)
	DefinitionsFunc func(ctx context.Context, id uuid.UUID) ([]domain.Word, error)
	RelatedFunc     func(ctx context.Context, id uuid.UUID) ([]domain.Word, error)
}

func (m *wordServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	return m.GetFunc(ctx, id)
}

func (m *wordServiceMock) ByNorm(ctx context.Context, language uuid.UUID, w string) ([]domain.Word, error) {
	return m.ByNormFunc(ctx, language, w)
}

func (m *wordServiceMock) Find(ctx context.Context, language uuid.UUID, query string) ([]domain.Word, error) {
	return m.FindFunc(ctx, language, query)
}

func (m *wordServiceMock) Create(ctx context.Context, input word.CreateInput) (*domain.Word, error) {
	return m.CreateFunc(ctx, input)
}

func (m *wordServiceMock) Delete(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	return m.DeleteFunc(ctx, id)
}

func (m *wordServiceMock) Language(ctx context.Context, w *domain.Word) (*domain.Language, error) {
	return m.LanguageFunc(ctx, w)
}

func (m *wordServiceMock) Lemma(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	return m.LemmaFunc(ctx, w)
}

func (m *wordServiceMock) Definitions(ctx context.Context, id uuid.UUID) ([]domain.Word, error) {
	return m.DefinitionsFunc(ctx, id)
}

func (m *wordServiceMock) Related(ctx context.Context, id uuid.UUID) ([]domain.Word, error) {
	return m.RelatedFunc(ctx, id)
}

// userServiceMock implements userService with overridable funcs.
type userServiceMock struct {
	GetFunc               func(ctx context.Context, id string) (*domain.User, error)
	FindFunc              func(ctx context.Context, query string) ([]domain.User, error)
	AllFunc               func(ctx context.Context, adminKey string) ([]domain.User, error)
	APIVersionFunc        func(ctx context.Context) string
	CreateAdminFunc       func(ctx context.Context, id, username, adminKey string) (*domain.User, error)
	DeleteAdminFunc       func(ctx context.Context, id, adminKey string) (*domain.User, error)
	FollowingFunc         func(ctx context.Context, id string) ([]domain.User, error)
	FollowersFunc         func(ctx context.Context, id string) ([]domain.User, error)
	FollowedLanguagesFunc func(ctx context.Context, id string) ([]domain.Language, error)
	LearningFunc          func(ctx context.Context, id string) ([]user.LearningEntry, error)
}

func (m *userServiceMock) Get(ctx context.Context, id string) (*domain.User, error) {
	return m.GetFunc(ctx, id)
}

func (m *userServiceMock) Find(ctx context.Context, query string) ([]domain.User, error) {
	return m.FindFunc(ctx, query)
}

func (m *userServiceMock) All(ctx context.Context, adminKey string) ([]domain.User, error) {
	return m.AllFunc(ctx, adminKey)
}

func (m *userServiceMock) APIVersion(ctx context.Context) string {
	return m.APIVersionFunc(ctx)
}

func (m *userServiceMock) CreateAdmin(ctx context.Context, id, username, adminKey string) (*domain.User, error) {
	return m.CreateAdminFunc(ctx, id, username, adminKey)
}

func (m *userServiceMock) DeleteAdmin(ctx context.Context, id, adminKey string) (*domain.User, error) {
	return m.DeleteAdminFunc(ctx, id, adminKey)
}

func (m *userServiceMock) Following(ctx context.Context, id string) ([]domain.User, error) {
	return m.FollowingFunc(ctx, id)
}

func (m *userServiceMock) Followers(ctx context.Context, id string) ([]domain.User, error) {
	return m.FollowersFunc(ctx, id)
}

func (m *userServiceMock) FollowedLanguages(ctx context.Context, id string) ([]domain.Language, error) {
	return m.FollowedLanguagesFunc(ctx, id)
}

func (m *userServiceMock) Learning(ctx context.Context, id string) ([]user.LearningEntry, error) {
	return m.LearningFunc(ctx, id)
}
