package resolver

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hallfrida/ordasafn-backend/internal/domain"
	"github.com/hallfrida/ordasafn-backend/internal/service/language"
	"github.com/hallfrida/ordasafn-backend/internal/transport/graphql/model"
)

func TestAllLanguages(t *testing.T) {
	t.Parallel()

	mock := &languageServiceMock{
		AllFunc: func(ctx context.Context) ([]domain.Language, error) {
			return []domain.Language{
				{ID: uuid.New(), Name: "norse"},
				{ID: uuid.New(), Name: "faroese"},
			}, nil
		},
	}

	resolver := &queryResolver{&Resolver{language: mock}}

	result, err := resolver.AllLanguages(context.Background())

	require.NoError(t, err)
	require.Len(t, result, 2)
	require.Equal(t, "norse", result[0].Name)
}

func TestLanguage_ByNameAndOwner(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	mock := &languageServiceMock{
		GetFunc: func(ctx context.Context, name, owner string) (*domain.Language, error) {
			require.Equal(t, "norse", name)
			require.Equal(t, "u1", owner)
			return &domain.Language{ID: id, Name: name, Owner: owner}, nil
		},
	}

	resolver := &queryResolver{&Resolver{language: mock}}

	result, err := resolver.Language(context.Background(), "norse", "u1")

	require.NoError(t, err)
	require.Equal(t, id, result.ID)
}

func TestLanguage_NotFound(t *testing.T) {
	t.Parallel()

	mock := &languageServiceMock{
		GetFunc: func(ctx context.Context, name, owner string) (*domain.Language, error) {
			return nil, domain.ErrNotFound
		},
	}

	resolver := &queryResolver{&Resolver{language: mock}}

	_, err := resolver.Language(context.Background(), "missing", "u1")

	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNewLanguage_PassesInputThrough(t *testing.T) {
	t.Parallel()

	native := "norrønt"
	mock := &languageServiceMock{
		CreateFunc: func(ctx context.Context, input language.CreateInput) (*domain.Language, error) {
			require.Equal(t, "norse", input.Name)
			require.Equal(t, &native, input.Native)
			require.Equal(t, domain.ReleasePublic, input.Release)
			require.Equal(t, []domain.DictGenre{domain.DictGenreEtymology}, input.Genre)
			return &domain.Language{ID: uuid.New(), Name: input.Name}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{language: mock}}

	result, err := resolver.NewLanguage(context.Background(), model.NewLanguageInput{
		Name:    "norse",
		Native:  &native,
		Release: domain.ReleasePublic,
		Genre:   []domain.DictGenre{domain.DictGenreEtymology},
	})

	require.NoError(t, err)
	require.Equal(t, "norse", result.Name)
}

func TestNewLanguage_ValidationError(t *testing.T) {
	t.Parallel()

	mock := &languageServiceMock{
		CreateFunc: func(ctx context.Context, input language.CreateInput) (*domain.Language, error) {
			return nil, domain.NewValidationError("name", "required")
		},
	}

	resolver := &mutationResolver{&Resolver{language: mock}}

	_, err := resolver.NewLanguage(context.Background(), model.NewLanguageInput{})

	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestDeleteLanguage(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	mock := &languageServiceMock{
		DeleteFunc: func(ctx context.Context, got uuid.UUID) (*domain.Language, error) {
			require.Equal(t, id, got)
			return &domain.Language{ID: id, Name: "norse"}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{language: mock}}

	result, err := resolver.DeleteLanguage(context.Background(), id)

	require.NoError(t, err)
	require.Equal(t, id, result.ID)
}

func TestLanguageOwner(t *testing.T) {
	t.Parallel()

	lang := &domain.Language{ID: uuid.New(), Owner: "u1"}
	mock := &languageServiceMock{
		OwnerFunc: func(ctx context.Context, l *domain.Language) (*domain.User, error) {
			return &domain.User{ID: l.Owner, Username: "snorri"}, nil
		},
	}

	resolver := &languageResolver{&Resolver{language: mock}}

	result, err := resolver.Owner(context.Background(), lang)

	require.NoError(t, err)
	require.Equal(t, "u1", result.ID)
}

func TestLanguageWordCount(t *testing.T) {
	t.Parallel()

	mock := &languageServiceMock{
		WordCountFunc: func(ctx context.Context, id uuid.UUID) (int64, error) {
			return 42, nil
		},
	}

	resolver := &languageResolver{&Resolver{language: mock}}

	count, err := resolver.WordCount(context.Background(), &domain.Language{ID: uuid.New()})

	require.NoError(t, err)
	require.Equal(t, 42, count)
}

func TestLanguageAuthors_EmptyListNotNil(t *testing.T) {
	t.Parallel()

	mock := &languageServiceMock{
		AuthorsFunc: func(ctx context.Context, id uuid.UUID) ([]domain.User, error) {
			return []domain.User{}, nil
		},
	}

	resolver := &languageResolver{&Resolver{language: mock}}

	result, err := resolver.Authors(context.Background(), &domain.Language{ID: uuid.New()})

	require.NoError(t, err)
	require.NotNil(t, result)
	require.Empty(t, result)
}

func TestUserFollowLanguage(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	mock := &languageServiceMock{
		FollowFunc: func(ctx context.Context, got uuid.UUID) (*domain.Language, error) {
			require.Equal(t, id, got)
			return &domain.Language{ID: id}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{language: mock}}

	result, err := resolver.UserFollowLanguage(context.Background(), id)

	require.NoError(t, err)
	require.Equal(t, id, result.ID)
}
