package word

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallfrida/ordasafn-backend/internal/domain"
	"github.com/hallfrida/ordasafn-backend/pkg/ctxutil"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockWordRepo struct {
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	ListByNormFunc    func(ctx context.Context, language uuid.UUID, norm string) ([]domain.Word, error)
	SearchFunc        func(ctx context.Context, language uuid.UUID, query string) ([]domain.Word, error)
	CreateFunc        func(ctx context.Context, w domain.NewWord) (*domain.Word, error)
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
	ListRelationsFunc func(ctx context.Context, source uuid.UUID, rel domain.WordRelationship) ([]domain.WordRelation, error)

	createCalls int
	deleteCalls int
}

func (m *mockWordRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockWordRepo) ListByNorm(ctx context.Context, language uuid.UUID, norm string) ([]domain.Word, error) {
	if m.ListByNormFunc != nil {
		return m.ListByNormFunc(ctx, language, norm)
	}
	return []domain.Word{}, nil
}

func (m *mockWordRepo) Search(ctx context.Context, language uuid.UUID, query string) ([]domain.Word, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, language, query)
	}
	return []domain.Word{}, nil
}

func (m *mockWordRepo) Create(ctx context.Context, w domain.NewWord) (*domain.Word, error) {
	m.createCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, w)
	}
	return &domain.Word{
		ID:           uuid.New(),
		Norm:         w.Norm,
		Lemma:        w.Lemma,
		Language:     w.Language,
		PartOfSpeech: w.PartOfSpeech,
	}, nil
}

func (m *mockWordRepo) Delete(ctx context.Context, id uuid.UUID) error {
	m.deleteCalls++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockWordRepo) ListRelations(ctx context.Context, source uuid.UUID, rel domain.WordRelationship) ([]domain.WordRelation, error) {
	if m.ListRelationsFunc != nil {
		return m.ListRelationsFunc(ctx, source, rel)
	}
	return []domain.WordRelation{}, nil
}

type mockLanguageRepo struct {
	GetByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Language, error)
}

func (m *mockLanguageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Language, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func newTestService(words *mockWordRepo, languages *mockLanguageRepo) *Service {
	if words == nil {
		words = &mockWordRepo{}
	}
	if languages == nil {
		languages = &mockLanguageRepo{}
	}
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), words, languages)
}

func authedCtx(userID string) context.Context {
	return ctxutil.WithCallerID(context.Background(), userID)
}

func ownedLanguage(id uuid.UUID, owner string) *mockLanguageRepo {
	return &mockLanguageRepo{
		GetByIDFunc: func(ctx context.Context, got uuid.UUID) (*domain.Language, error) {
			return &domain.Language{ID: id, Name: "norwegian", Release: domain.ReleasePublic, Owner: owner}, nil
		},
	}
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

func TestByNorm_NormalizesLookup(t *testing.T) {
	lang := uuid.New()
	var gotNorm string
	words := &mockWordRepo{
		ListByNormFunc: func(ctx context.Context, language uuid.UUID, norm string) ([]domain.Word, error) {
			gotNorm = norm
			return []domain.Word{{ID: uuid.New(), Norm: norm, Language: language}}, nil
		},
	}
	svc := newTestService(words, nil)

	_, err := svc.ByNorm(context.Background(), lang, "  HuS  ")
	require.NoError(t, err)
	assert.Equal(t, "hus", gotNorm)
}

func TestByNorm_BlankInputRejected(t *testing.T) {
	svc := newTestService(nil, nil)

	_, err := svc.ByNorm(context.Background(), uuid.New(), "   ")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestFind_NoMatchIsEmptyResult(t *testing.T) {
	svc := newTestService(nil, nil)

	got, err := svc.Find(context.Background(), uuid.New(), "zzz")
	require.NoError(t, err)
	assert.Empty(t, got)
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestCreate_Anonymous(t *testing.T) {
	words := &mockWordRepo{}
	svc := newTestService(words, nil)

	_, err := svc.Create(context.Background(), CreateInput{
		Norm:         "hus",
		Language:     uuid.New(),
		PartOfSpeech: domain.PartOfSpeechNoun,
	})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Zero(t, words.createCalls)
}

func TestCreate_InvalidInputNeverReachesStore(t *testing.T) {
	words := &mockWordRepo{}
	svc := newTestService(words, nil)

	_, err := svc.Create(authedCtx("u1"), CreateInput{
		Norm:         "   ",
		Language:     uuid.Nil,
		PartOfSpeech: domain.PartOfSpeech("BOGUS"),
	})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, words.createCalls)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Errors, 3)
}

func TestCreate_NonOwner(t *testing.T) {
	lang := uuid.New()
	words := &mockWordRepo{}
	svc := newTestService(words, ownedLanguage(lang, "u1"))

	_, err := svc.Create(authedCtx("u2"), CreateInput{
		Norm:         "hus",
		Language:     lang,
		PartOfSpeech: domain.PartOfSpeechNoun,
	})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Zero(t, words.createCalls, "no insert may happen for a non-owner")
}

func TestCreate_NormalizesNorm(t *testing.T) {
	lang := uuid.New()
	var stored domain.NewWord
	words := &mockWordRepo{
		CreateFunc: func(ctx context.Context, w domain.NewWord) (*domain.Word, error) {
			stored = w
			return &domain.Word{ID: uuid.New(), Norm: w.Norm, Language: w.Language, PartOfSpeech: w.PartOfSpeech}, nil
		},
	}
	svc := newTestService(words, ownedLanguage(lang, "u1"))

	_, err := svc.Create(authedCtx("u1"), CreateInput{
		Norm:         "  Hús  Stórt ",
		Language:     lang,
		PartOfSpeech: domain.PartOfSpeechNoun,
	})
	require.NoError(t, err)
	assert.Equal(t, "hús stórt", stored.Norm)
}

func TestCreate_DropsUnresolvableLemma(t *testing.T) {
	lang := uuid.New()
	lemma := uuid.New()
	var stored domain.NewWord
	words := &mockWordRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
			return nil, domain.ErrNotFound
		},
		CreateFunc: func(ctx context.Context, w domain.NewWord) (*domain.Word, error) {
			stored = w
			return &domain.Word{ID: uuid.New(), Norm: w.Norm, Language: w.Language}, nil
		},
	}
	svc := newTestService(words, ownedLanguage(lang, "u1"))

	_, err := svc.Create(authedCtx("u1"), CreateInput{
		Norm:         "husene",
		Lemma:        &lemma,
		Language:     lang,
		PartOfSpeech: domain.PartOfSpeechNoun,
	})
	require.NoError(t, err, "a dangling lemma must not fail the mutation")
	assert.Nil(t, stored.Lemma)
}

func TestCreate_DropsCrossLanguageLemma(t *testing.T) {
	lang, otherLang := uuid.New(), uuid.New()
	lemma := uuid.New()
	var stored domain.NewWord
	words := &mockWordRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
			return &domain.Word{ID: id, Norm: "hus", Language: otherLang, PartOfSpeech: domain.PartOfSpeechNoun}, nil
		},
		CreateFunc: func(ctx context.Context, w domain.NewWord) (*domain.Word, error) {
			stored = w
			return &domain.Word{ID: uuid.New(), Norm: w.Norm, Language: w.Language}, nil
		},
	}
	svc := newTestService(words, ownedLanguage(lang, "u1"))

	_, err := svc.Create(authedCtx("u1"), CreateInput{
		Norm:         "husene",
		Lemma:        &lemma,
		Language:     lang,
		PartOfSpeech: domain.PartOfSpeechNoun,
	})
	require.NoError(t, err)
	assert.Nil(t, stored.Lemma)
}

func TestCreate_KeepsValidLemma(t *testing.T) {
	lang := uuid.New()
	lemma := uuid.New()
	var stored domain.NewWord
	words := &mockWordRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
			return &domain.Word{ID: id, Norm: "hus", Language: lang, PartOfSpeech: domain.PartOfSpeechNoun}, nil
		},
		CreateFunc: func(ctx context.Context, w domain.NewWord) (*domain.Word, error) {
			stored = w
			return &domain.Word{ID: uuid.New(), Norm: w.Norm, Lemma: w.Lemma, Language: w.Language}, nil
		},
	}
	svc := newTestService(words, ownedLanguage(lang, "u1"))

	_, err := svc.Create(authedCtx("u1"), CreateInput{
		Norm:         "husene",
		Lemma:        &lemma,
		Language:     lang,
		PartOfSpeech: domain.PartOfSpeechNoun,
	})
	require.NoError(t, err)
	require.NotNil(t, stored.Lemma)
	assert.Equal(t, lemma, *stored.Lemma)
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestDelete_NonOwner(t *testing.T) {
	lang := uuid.New()
	id := uuid.New()
	words := &mockWordRepo{
		GetByIDFunc: func(ctx context.Context, got uuid.UUID) (*domain.Word, error) {
			return &domain.Word{ID: id, Norm: "hus", Language: lang, PartOfSpeech: domain.PartOfSpeechNoun}, nil
		},
	}
	svc := newTestService(words, ownedLanguage(lang, "u1"))

	_, err := svc.Delete(authedCtx("u2"), id)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Zero(t, words.deleteCalls)
}

func TestDelete_Owner(t *testing.T) {
	lang := uuid.New()
	id := uuid.New()
	words := &mockWordRepo{
		GetByIDFunc: func(ctx context.Context, got uuid.UUID) (*domain.Word, error) {
			return &domain.Word{ID: id, Norm: "hus", Language: lang, PartOfSpeech: domain.PartOfSpeechNoun}, nil
		},
	}
	svc := newTestService(words, ownedLanguage(lang, "u1"))

	deleted, err := svc.Delete(authedCtx("u1"), id)
	require.NoError(t, err)
	assert.Equal(t, id, deleted.ID)
	assert.Equal(t, 1, words.deleteCalls)
}

// ---------------------------------------------------------------------------
// Relationship resolution
// ---------------------------------------------------------------------------

func TestLanguage_MissingRowEscalates(t *testing.T) {
	svc := newTestService(nil, &mockLanguageRepo{})

	_, err := svc.Language(context.Background(), &domain.Word{ID: uuid.New(), Language: uuid.New()})
	require.Error(t, err, "a dangling language is a store failure, not an empty result")
	require.NotErrorIs(t, err, domain.ErrNotFound,
		"an integrity violation must not look like a well-formed miss")
}

func TestLanguage_RepoFailurePropagates(t *testing.T) {
	languages := &mockLanguageRepo{
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Language, error) {
			return nil, domain.ErrConnection
		},
	}
	svc := newTestService(nil, languages)

	_, err := svc.Language(context.Background(), &domain.Word{ID: uuid.New(), Language: uuid.New()})
	require.ErrorIs(t, err, domain.ErrConnection)
}

func TestLemma_NoneIsAbsent(t *testing.T) {
	svc := newTestService(nil, nil)

	got, err := svc.Lemma(context.Background(), &domain.Word{ID: uuid.New()})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLemma_StaleIsAbsent(t *testing.T) {
	lemma := uuid.New()
	svc := newTestService(&mockWordRepo{}, nil)

	got, err := svc.Lemma(context.Background(), &domain.Word{ID: uuid.New(), Lemma: &lemma})
	require.NoError(t, err, "a stale lemma resolves absent, not failing")
	assert.Nil(t, got)
}

func TestDefinitions_DropsUnresolvableTargets(t *testing.T) {
	id, known, missing := uuid.New(), uuid.New(), uuid.New()
	words := &mockWordRepo{
		ListRelationsFunc: func(ctx context.Context, source uuid.UUID, rel domain.WordRelationship) ([]domain.WordRelation, error) {
			return []domain.WordRelation{
				{ID: 1, WordSource: source, WordTarget: known, Relationship: rel},
				{ID: 2, WordSource: source, WordTarget: missing, Relationship: rel},
			}, nil
		},
		GetByIDFunc: func(ctx context.Context, got uuid.UUID) (*domain.Word, error) {
			if got == known {
				return &domain.Word{ID: known, Norm: "hus", PartOfSpeech: domain.PartOfSpeechNoun}, nil
			}
			return nil, domain.ErrNotFound
		},
	}
	svc := newTestService(words, nil)

	got, err := svc.Definitions(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, known, got[0].ID)
}
