package resolver

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hallfrida/ordasafn-backend/internal/domain"
	wordsvc "github.com/hallfrida/ordasafn-backend/internal/service/word"
	"github.com/hallfrida/ordasafn-backend/internal/transport/graphql/model"
)

func TestWord_ByID(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	mock := &wordServiceMock{
		GetFunc: func(ctx context.Context, got uuid.UUID) (*domain.Word, error) {
			require.Equal(t, id, got)
			return &domain.Word{ID: id, Norm: "hús"}, nil
		},
	}

	resolver := &queryResolver{&Resolver{word: mock}}

	result, err := resolver.Word(context.Background(), id)

	require.NoError(t, err)
	require.Equal(t, "hús", result.Norm)
}

func TestWords_ReturnsHomographs(t *testing.T) {
	t.Parallel()

	langID := uuid.New()
	mock := &wordServiceMock{
		ByNormFunc: func(ctx context.Context, language uuid.UUID, w string) ([]domain.Word, error) {
			require.Equal(t, langID, language)
			require.Equal(t, "bar", w)
			return []domain.Word{
				{ID: uuid.New(), Norm: "bar", PartOfSpeech: domain.PartOfSpeechNoun},
				{ID: uuid.New(), Norm: "bar", PartOfSpeech: domain.PartOfSpeechVerb},
			}, nil
		},
	}

	resolver := &queryResolver{&Resolver{word: mock}}

	result, err := resolver.Words(context.Background(), langID, "bar")

	require.NoError(t, err)
	require.Len(t, result, 2)
}

func TestFindWord(t *testing.T) {
	t.Parallel()

	langID := uuid.New()
	mock := &wordServiceMock{
		FindFunc: func(ctx context.Context, language uuid.UUID, query string) ([]domain.Word, error) {
			require.Equal(t, "hú", query)
			return []domain.Word{{ID: uuid.New(), Norm: "hús"}}, nil
		},
	}

	resolver := &queryResolver{&Resolver{word: mock}}

	result, err := resolver.FindWord(context.Background(), langID, "hú")

	require.NoError(t, err)
	require.Len(t, result, 1)
}

func TestNewWord_PassesInputThrough(t *testing.T) {
	t.Parallel()

	langID := uuid.New()
	lemmaID := uuid.New()
	mock := &wordServiceMock{
		CreateFunc: func(ctx context.Context, input wordsvc.CreateInput) (*domain.Word, error) {
			require.Equal(t, "húsið", input.Norm)
			require.Equal(t, langID, input.Language)
			require.Equal(t, &lemmaID, input.Lemma)
			require.Equal(t, domain.PartOfSpeechNoun, input.PartOfSpeech)
			return &domain.Word{ID: uuid.New(), Norm: input.Norm}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{word: mock}}

	result, err := resolver.NewWord(context.Background(), model.NewWordInput{
		Norm:         "húsið",
		Lemma:        &lemmaID,
		Language:     langID,
		PartOfSpeech: domain.PartOfSpeechNoun,
	})

	require.NoError(t, err)
	require.Equal(t, "húsið", result.Norm)
}

func TestNewWord_Unauthorized(t *testing.T) {
	t.Parallel()

	mock := &wordServiceMock{
		CreateFunc: func(ctx context.Context, input wordsvc.CreateInput) (*domain.Word, error) {
			return nil, domain.ErrUnauthorized
		},
	}

	resolver := &mutationResolver{&Resolver{word: mock}}

	_, err := resolver.NewWord(context.Background(), model.NewWordInput{Norm: "hús"})

	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestDeleteWord(t *testing.T) {
	t.Parallel()

	id := uuid.New()
	mock := &wordServiceMock{
		DeleteFunc: func(ctx context.Context, got uuid.UUID) (*domain.Word, error) {
			require.Equal(t, id, got)
			return &domain.Word{ID: id, Norm: "hús"}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{word: mock}}

	result, err := resolver.DeleteWord(context.Background(), id)

	require.NoError(t, err)
	require.Equal(t, id, result.ID)
}

func TestWordLemma_AbsentIsNil(t *testing.T) {
	t.Parallel()

	mock := &wordServiceMock{
		LemmaFunc: func(ctx context.Context, w *domain.Word) (*domain.Word, error) {
			return nil, nil
		},
	}

	resolver := &wordResolver{&Resolver{word: mock}}

	result, err := resolver.Lemma(context.Background(), &domain.Word{ID: uuid.New()})

	require.NoError(t, err)
	require.Nil(t, result)
}

func TestWordLanguage(t *testing.T) {
	t.Parallel()

	langID := uuid.New()
	mock := &wordServiceMock{
		LanguageFunc: func(ctx context.Context, w *domain.Word) (*domain.Language, error) {
			return &domain.Language{ID: langID, Name: "norse"}, nil
		},
	}

	resolver := &wordResolver{&Resolver{word: mock}}

	result, err := resolver.Language(context.Background(), &domain.Word{ID: uuid.New(), Language: langID})

	require.NoError(t, err)
	require.Equal(t, langID, result.ID)
}

func TestWordDefinitions(t *testing.T) {
	t.Parallel()

	mock := &wordServiceMock{
		DefinitionsFunc: func(ctx context.Context, id uuid.UUID) ([]domain.Word, error) {
			return []domain.Word{{ID: uuid.New(), Norm: "bygging"}}, nil
		},
	}

	resolver := &wordResolver{&Resolver{word: mock}}

	result, err := resolver.Definitions(context.Background(), &domain.Word{ID: uuid.New()})

	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, "bygging", result[0].Norm)
}
