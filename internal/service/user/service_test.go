package user

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hallfrida/ordasafn-backend/internal/auth"
	"github.com/hallfrida/ordasafn-backend/internal/domain"
	"github.com/hallfrida/ordasafn-backend/pkg/ctxutil"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockUserRepo struct {
	GetByIDFunc       func(ctx context.Context, id string) (*domain.User, error)
	ListFunc          func(ctx context.Context) ([]domain.User, error)
	SearchFunc        func(ctx context.Context, query string) ([]domain.User, error)
	CreateFunc        func(ctx context.Context, u domain.User) (*domain.User, error)
	DeleteFunc        func(ctx context.Context, id string) error
	ListFollowingFunc func(ctx context.Context, follower string) ([]domain.UserFollow, error)
	ListFollowersFunc func(ctx context.Context, following string) ([]domain.UserFollow, error)

	listCalls   int
	createCalls int
	deleteCalls int
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	m.listCalls++
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []domain.User{}, nil
}

func (m *mockUserRepo) Search(ctx context.Context, query string) ([]domain.User, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, query)
	}
	return []domain.User{}, nil
}

func (m *mockUserRepo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	m.createCalls++
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return &u, nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id string) error {
	m.deleteCalls++
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepo) ListFollowing(ctx context.Context, follower string) ([]domain.UserFollow, error) {
	if m.ListFollowingFunc != nil {
		return m.ListFollowingFunc(ctx, follower)
	}
	return []domain.UserFollow{}, nil
}

func (m *mockUserRepo) ListFollowers(ctx context.Context, following string) ([]domain.UserFollow, error) {
	if m.ListFollowersFunc != nil {
		return m.ListFollowersFunc(ctx, following)
	}
	return []domain.UserFollow{}, nil
}

type mockLanguageRepo struct {
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Language, error)
	ListFollowedFunc func(ctx context.Context, userID string) ([]domain.LanguageFollow, error)
}

func (m *mockLanguageRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Language, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockLanguageRepo) ListFollowed(ctx context.Context, userID string) ([]domain.LanguageFollow, error) {
	if m.ListFollowedFunc != nil {
		return m.ListFollowedFunc(ctx, userID)
	}
	return []domain.LanguageFollow{}, nil
}

type mockWordRepo struct {
	GetByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Word, error)
	ListLearningFunc func(ctx context.Context, userID string) ([]domain.WordLearning, error)
}

func (m *mockWordRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (m *mockWordRepo) ListLearning(ctx context.Context, userID string) ([]domain.WordLearning, error) {
	if m.ListLearningFunc != nil {
		return m.ListLearningFunc(ctx, userID)
	}
	return []domain.WordLearning{}, nil
}

const testAdminKey = "super-secret-admin-key"

func newTestService(users *mockUserRepo, languages *mockLanguageRepo, words *mockWordRepo) *Service {
	if users == nil {
		users = &mockUserRepo{}
	}
	if languages == nil {
		languages = &mockLanguageRepo{}
	}
	if words == nil {
		words = &mockWordRepo{}
	}
	return NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), users, languages, words, auth.NewAdminGuard(testAdminKey))
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

func TestGet_NotFound(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	_, err := svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFind_NoMatchIsEmptyResult(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	got, err := svc.Find(context.Background(), "zzz")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAll_WrongKeyNeverReachesStore(t *testing.T) {
	users := &mockUserRepo{}
	svc := newTestService(users, nil, nil)

	_, err := svc.All(context.Background(), "wrong")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Zero(t, users.listCalls)
}

func TestAll_WithKey(t *testing.T) {
	users := &mockUserRepo{
		ListFunc: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{{ID: "u1", Username: "alice"}}, nil
		},
	}
	svc := newTestService(users, nil, nil)

	got, err := svc.All(context.Background(), testAdminKey)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestAPIVersion(t *testing.T) {
	svc := newTestService(nil, nil, nil)

	anon := svc.APIVersion(context.Background())
	assert.Contains(t, anon, Version)
	assert.Contains(t, anon, "anonymous")

	authed := svc.APIVersion(ctxutil.WithCallerID(context.Background(), "u1"))
	assert.Contains(t, authed, "authenticated")
	assert.Contains(t, authed, "u1")
}

// ---------------------------------------------------------------------------
// Admin mutations
// ---------------------------------------------------------------------------

func TestCreateAdmin_WrongKey(t *testing.T) {
	users := &mockUserRepo{}
	svc := newTestService(users, nil, nil)

	_, err := svc.CreateAdmin(context.Background(), "u1", "alice", "wrong")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Zero(t, users.createCalls)
}

func TestCreateAdmin_MissingFields(t *testing.T) {
	users := &mockUserRepo{}
	svc := newTestService(users, nil, nil)

	_, err := svc.CreateAdmin(context.Background(), "", "", testAdminKey)
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, users.createCalls)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Len(t, vErr.Errors, 2)
}

func TestCreateAdmin_WithKey(t *testing.T) {
	users := &mockUserRepo{}
	svc := newTestService(users, nil, nil)

	created, err := svc.CreateAdmin(context.Background(), "u1", "alice", testAdminKey)
	require.NoError(t, err)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, 1, users.createCalls)
}

func TestDeleteAdmin_WrongKey(t *testing.T) {
	users := &mockUserRepo{}
	svc := newTestService(users, nil, nil)

	_, err := svc.DeleteAdmin(context.Background(), "u1", "wrong")
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Zero(t, users.deleteCalls)
}

func TestDeleteAdmin_WithKey(t *testing.T) {
	users := &mockUserRepo{
		GetByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			return &domain.User{ID: id, Username: "alice"}, nil
		},
	}
	svc := newTestService(users, nil, nil)

	deleted, err := svc.DeleteAdmin(context.Background(), "u1", testAdminKey)
	require.NoError(t, err)
	assert.Equal(t, "u1", deleted.ID)
	assert.Equal(t, 1, users.deleteCalls)
}

// ---------------------------------------------------------------------------
// Relationship resolution
// ---------------------------------------------------------------------------

func TestFollowing_DropsUnresolvableMembers(t *testing.T) {
	users := &mockUserRepo{
		ListFollowingFunc: func(ctx context.Context, follower string) ([]domain.UserFollow, error) {
			return []domain.UserFollow{
				{ID: 1, Follower: follower, Following: "u2"},
				{ID: 2, Follower: follower, Following: "ghost"},
			}, nil
		},
		GetByIDFunc: func(ctx context.Context, id string) (*domain.User, error) {
			if id == "ghost" {
				return nil, domain.ErrNotFound
			}
			return &domain.User{ID: id, Username: id}, nil
		},
	}
	svc := newTestService(users, nil, nil)

	got, err := svc.Following(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "u2", got[0].ID)
}

func TestFollowedLanguages(t *testing.T) {
	known := uuid.New()
	languages := &mockLanguageRepo{
		ListFollowedFunc: func(ctx context.Context, userID string) ([]domain.LanguageFollow, error) {
			return []domain.LanguageFollow{{ID: 1, Lang: known, UserID: userID}}, nil
		},
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Language, error) {
			return &domain.Language{ID: id, Name: "norwegian", Release: domain.ReleasePublic, Owner: "u1"}, nil
		},
	}
	svc := newTestService(nil, languages, nil)

	got, err := svc.FollowedLanguages(context.Background(), "u2")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, known, got[0].ID)
}

func TestLearning_DropsUnresolvableWords(t *testing.T) {
	known, missing := uuid.New(), uuid.New()
	words := &mockWordRepo{
		ListLearningFunc: func(ctx context.Context, userID string) ([]domain.WordLearning, error) {
			return []domain.WordLearning{
				{ID: 1, Word: known, UserID: userID, Status: domain.WordLearningStatusLearning},
				{ID: 2, Word: missing, UserID: userID, Status: domain.WordLearningStatusLearned},
			}, nil
		},
		GetByIDFunc: func(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
			if id == known {
				return &domain.Word{ID: known, Norm: "hus", PartOfSpeech: domain.PartOfSpeechNoun}, nil
			}
			return nil, domain.ErrNotFound
		},
	}
	svc := newTestService(nil, nil, words)

	got, err := svc.Learning(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, known, got[0].Word.ID)
	assert.Equal(t, domain.WordLearningStatusLearning, got[0].Status)
}
