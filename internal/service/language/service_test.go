package language

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallfrida/ordasafn-backend/internal/domain"
	"github.com/hallfrida/ordasafn-backend/pkg/ctxutil"
)

func authedCtx(userID string) context.Context {
	return ctxutil.WithCallerID(context.Background(), userID)
}

func sampleLanguage(id uuid.UUID, owner string) *domain.Language {
	return &domain.Language{
		ID:      id,
		Name:    "norwegian",
		Release: domain.ReleasePublic,
		Genre:   []domain.DictGenre{domain.DictGenreGeneral},
		Owner:   owner,
	}
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

func TestGet_RequiresNameAndOwner(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	_, err := svc.Get(context.Background(), "", "u1")
	require.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Get(context.Background(), "norwegian", "")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestGet_NotFound(t *testing.T) {
	svc := newTestService(&mockLanguageRepo{}, nil, nil)

	_, err := svc.Get(context.Background(), "norwegian", "u1")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFind_EmptyQueryRejected(t *testing.T) {
	repo := &mockLanguageRepo{
		SearchFunc: func(ctx context.Context, query string) ([]domain.Language, error) {
			t.Error("repository should not be reached on a rejected query")
			return nil, nil
		},
	}
	svc := newTestService(repo, nil, nil)

	_, err := svc.Find(context.Background(), "")
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestFind_NoMatchIsEmptyResult(t *testing.T) {
	svc := newTestService(&mockLanguageRepo{}, nil, nil)

	got, err := svc.Find(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Empty(t, got)
}

// ---------------------------------------------------------------------------
// Create
// ---------------------------------------------------------------------------

func TestCreate_Anonymous(t *testing.T) {
	repo := &mockLanguageRepo{}
	svc := newTestService(repo, nil, nil)

	_, err := svc.Create(context.Background(), CreateInput{
		Name:    "norwegian",
		Release: domain.ReleasePublic,
	})
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Zero(t, repo.createCalls, "store must not be touched for anonymous callers")
}

func TestCreate_InvalidInputNeverReachesStore(t *testing.T) {
	repo := &mockLanguageRepo{}
	svc := newTestService(repo, nil, nil)

	_, err := svc.Create(authedCtx("u1"), CreateInput{
		Name:    "",
		Release: domain.Release("BOGUS"),
	})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, repo.createCalls)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Errors, 2, "all field errors should be collected")
}

func TestCreate_OwnerIsCaller(t *testing.T) {
	var stored domain.Language
	repo := &mockLanguageRepo{
		CreateFunc: func(ctx context.Context, l domain.Language) (*domain.Language, error) {
			stored = l
			l.ID = uuid.New()
			return &l, nil
		},
	}
	svc := newTestService(repo, nil, nil)

	created, err := svc.Create(authedCtx("u1"), CreateInput{
		Name:    "norwegian",
		Release: domain.ReleasePublic,
		Genre:   []domain.DictGenre{domain.DictGenreGeneral},
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", stored.Owner)
	assert.Equal(t, "u1", created.Owner)
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestDelete_NonOwner(t *testing.T) {
	id := uuid.New()
	repo := &mockLanguageRepo{
		GetByIDFunc: func(ctx context.Context, got uuid.UUID) (*domain.Language, error) {
			return sampleLanguage(id, "u1"), nil
		},
	}
	svc := newTestService(repo, nil, nil)

	_, err := svc.Delete(authedCtx("u2"), id)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Zero(t, repo.deleteCalls)
}

func TestDelete_RefusedWhileWordsExist(t *testing.T) {
	id := uuid.New()
	repo := &mockLanguageRepo{
		GetByIDFunc: func(ctx context.Context, got uuid.UUID) (*domain.Language, error) {
			return sampleLanguage(id, "u1"), nil
		},
	}
	words := &mockWordRepo{
		CountByLanguageFunc: func(ctx context.Context, language uuid.UUID) (int64, error) {
			return 3, nil
		},
	}
	svc := newTestService(repo, words, nil)

	_, err := svc.Delete(authedCtx("u1"), id)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, repo.deleteCalls, "language row must be retained")
}

func TestDelete_EmptyLanguage(t *testing.T) {
	id := uuid.New()
	repo := &mockLanguageRepo{
		GetByIDFunc: func(ctx context.Context, got uuid.UUID) (*domain.Language, error) {
			return sampleLanguage(id, "u1"), nil
		},
	}
	svc := newTestService(repo, nil, nil)

	deleted, err := svc.Delete(authedCtx("u1"), id)
	require.NoError(t, err)
	assert.Equal(t, id, deleted.ID)
	assert.Equal(t, 1, repo.deleteCalls)
}

// ---------------------------------------------------------------------------
// Follow / Unfollow
// ---------------------------------------------------------------------------

func TestFollow_Anonymous(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	_, err := svc.Follow(context.Background(), uuid.New())
	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestFollow_UnknownLanguage(t *testing.T) {
	svc := newTestService(&mockLanguageRepo{}, nil, nil)

	_, err := svc.Follow(authedCtx("u1"), uuid.New())
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFollow_DuplicateIsNoop(t *testing.T) {
	id := uuid.New()
	repo := &mockLanguageRepo{
		GetByIDFunc: func(ctx context.Context, got uuid.UUID) (*domain.Language, error) {
			return sampleLanguage(id, "u1"), nil
		},
		// The store swallows the conflict, so a second follow succeeds too.
	}
	svc := newTestService(repo, nil, nil)

	for i := 0; i < 2; i++ {
		l, err := svc.Follow(authedCtx("u2"), id)
		require.NoError(t, err)
		assert.Equal(t, id, l.ID)
	}
}

func TestUnfollow_NotFollowing(t *testing.T) {
	id := uuid.New()
	repo := &mockLanguageRepo{
		GetByIDFunc: func(ctx context.Context, got uuid.UUID) (*domain.Language, error) {
			return sampleLanguage(id, "u1"), nil
		},
	}
	svc := newTestService(repo, nil, nil)

	_, err := svc.Unfollow(authedCtx("u2"), id)
	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestUnfollow_RemovesFollowRow(t *testing.T) {
	id := uuid.New()
	var deletedID int32
	repo := &mockLanguageRepo{
		GetByIDFunc: func(ctx context.Context, got uuid.UUID) (*domain.Language, error) {
			return sampleLanguage(id, "u1"), nil
		},
		GetFollowFunc: func(ctx context.Context, language uuid.UUID, userID string) (*domain.LanguageFollow, error) {
			return &domain.LanguageFollow{ID: 7, Lang: language, UserID: userID}, nil
		},
		DeleteFollowFunc: func(ctx context.Context, followID int32) error {
			deletedID = followID
			return nil
		},
	}
	svc := newTestService(repo, nil, nil)

	_, err := svc.Unfollow(authedCtx("u2"), id)
	require.NoError(t, err)
	assert.Equal(t, int32(7), deletedID)
}

// ---------------------------------------------------------------------------
// Relationship resolution
// ---------------------------------------------------------------------------

func TestOwner_MissingRowEscalates(t *testing.T) {
	users := &mockUserRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			return nil, domain.ErrNotFound
		},
	}
	svc := newTestService(nil, nil, users)

	_, err := svc.Owner(context.Background(), sampleLanguage(uuid.New(), "ghost"))
	require.Error(t, err, "a dangling owner is a store failure, not an empty result")
	require.NotErrorIs(t, err, domain.ErrNotFound,
		"an integrity violation must not look like a well-formed miss")
}

func TestOwner_RepoFailurePropagates(t *testing.T) {
	users := &mockUserRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			return nil, domain.ErrConnection
		},
	}
	svc := newTestService(nil, nil, users)

	_, err := svc.Owner(context.Background(), sampleLanguage(uuid.New(), "u1"))
	require.ErrorIs(t, err, domain.ErrConnection)
}

func TestAuthors_DropsUnresolvableMembers(t *testing.T) {
	id := uuid.New()
	repo := &mockLanguageRepo{
		ListAgentsFunc: func(ctx context.Context, language uuid.UUID, rel domain.AgentLanguageRelation) ([]domain.LanguageAgent, error) {
			return []domain.LanguageAgent{
				{ID: 1, Agent: "u1", Language: language, Relationship: rel},
				{ID: 2, Agent: "ghost", Language: language, Relationship: rel},
				{ID: 3, Agent: "u3", Language: language, Relationship: rel},
			}, nil
		},
	}
	users := &mockUserRepo{
		GetByIDFunc: func(ctx context.Context, userID string) (*domain.User, error) {
			if userID == "ghost" {
				return nil, domain.ErrNotFound
			}
			return &domain.User{ID: userID, Username: userID}, nil
		},
	}
	svc := newTestService(repo, nil, users)

	got, err := svc.Authors(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "u1", got[0].ID)
	assert.Equal(t, "u3", got[1].ID)
}

func TestTargetLanguages_DropsUnresolvableTargets(t *testing.T) {
	id, known, missing := uuid.New(), uuid.New(), uuid.New()
	repo := &mockLanguageRepo{
		ListTranslationsFunc: func(ctx context.Context, from uuid.UUID) ([]domain.LanguageTranslation, error) {
			return []domain.LanguageTranslation{
				{ID: 1, LangFrom: from, LangTo: known},
				{ID: 2, LangFrom: from, LangTo: missing},
			}, nil
		},
		GetByIDFunc: func(ctx context.Context, got uuid.UUID) (*domain.Language, error) {
			if got == known {
				return sampleLanguage(known, "u1"), nil
			}
			return nil, domain.ErrNotFound
		},
	}
	svc := newTestService(repo, nil, nil)

	got, err := svc.TargetLanguages(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, known, got[0].ID)
}

func TestFollowers_ResolvesUsers(t *testing.T) {
	id := uuid.New()
	repo := &mockLanguageRepo{
		ListFollowersFunc: func(ctx context.Context, language uuid.UUID) ([]domain.LanguageFollow, error) {
			return []domain.LanguageFollow{
				{ID: 1, Lang: language, UserID: "u1"},
				{ID: 2, Lang: language, UserID: "u2"},
			}, nil
		},
	}
	svc := newTestService(repo, nil, nil)

	got, err := svc.Followers(context.Background(), id)
	require.NoError(t, err)
	require.Len(t, got, 2)
}
