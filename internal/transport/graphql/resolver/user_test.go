package resolver

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/hallfrida/ordasafn-backend/internal/domain"
	usersvc "github.com/hallfrida/ordasafn-backend/internal/service/user"
)

func TestAPIVersion(t *testing.T) {
	t.Parallel()

	mock := &userServiceMock{
		APIVersionFunc: func(ctx context.Context) string {
			return "1.0.0 (anonymous)"
		},
	}

	resolver := &queryResolver{&Resolver{user: mock}}

	result, err := resolver.APIVersion(context.Background())

	require.NoError(t, err)
	require.Equal(t, "1.0.0 (anonymous)", result)
}

func TestUser_ByID(t *testing.T) {
	t.Parallel()

	mock := &userServiceMock{
		GetFunc: func(ctx context.Context, id string) (*domain.User, error) {
			require.Equal(t, "u1", id)
			return &domain.User{ID: "u1", Username: "snorri"}, nil
		},
	}

	resolver := &queryResolver{&Resolver{user: mock}}

	result, err := resolver.User(context.Background(), "u1")

	require.NoError(t, err)
	require.Equal(t, "snorri", result.Username)
}

func TestFindUser(t *testing.T) {
	t.Parallel()

	mock := &userServiceMock{
		FindFunc: func(ctx context.Context, query string) ([]domain.User, error) {
			require.Equal(t, "sno", query)
			return []domain.User{{ID: "u1", Username: "snorri"}}, nil
		},
	}

	resolver := &queryResolver{&Resolver{user: mock}}

	result, err := resolver.FindUser(context.Background(), "sno")

	require.NoError(t, err)
	require.Len(t, result, 1)
}

func TestAllUsers_ForwardsAdminKey(t *testing.T) {
	t.Parallel()

	mock := &userServiceMock{
		AllFunc: func(ctx context.Context, adminKey string) ([]domain.User, error) {
			require.Equal(t, "sekret", adminKey)
			return []domain.User{{ID: "u1"}, {ID: "u2"}}, nil
		},
	}

	resolver := &queryResolver{&Resolver{user: mock}}

	result, err := resolver.AllUsers(context.Background(), "sekret")

	require.NoError(t, err)
	require.Len(t, result, 2)
}

func TestAllUsers_WrongKey(t *testing.T) {
	t.Parallel()

	mock := &userServiceMock{
		AllFunc: func(ctx context.Context, adminKey string) ([]domain.User, error) {
			return nil, domain.ErrUnauthorized
		},
	}

	resolver := &queryResolver{&Resolver{user: mock}}

	_, err := resolver.AllUsers(context.Background(), "wrong")

	require.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestDbOnlyNewUser(t *testing.T) {
	t.Parallel()

	mock := &userServiceMock{
		CreateAdminFunc: func(ctx context.Context, id, username, adminKey string) (*domain.User, error) {
			require.Equal(t, "u9", id)
			require.Equal(t, "loki", username)
			require.Equal(t, "sekret", adminKey)
			return &domain.User{ID: id, Username: username}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{user: mock}}

	result, err := resolver.DbOnlyNewUser(context.Background(), "u9", "loki", "sekret")

	require.NoError(t, err)
	require.Equal(t, "loki", result.Username)
}

func TestDbOnlyDeleteUser_ReturnsDeleted(t *testing.T) {
	t.Parallel()

	mock := &userServiceMock{
		DeleteAdminFunc: func(ctx context.Context, id, adminKey string) (*domain.User, error) {
			return &domain.User{ID: id, Username: "loki"}, nil
		},
	}

	resolver := &mutationResolver{&Resolver{user: mock}}

	result, err := resolver.DbOnlyDeleteUser(context.Background(), "u9", "sekret")

	require.NoError(t, err)
	require.Equal(t, "u9", result.ID)
}

func TestUserFollowing(t *testing.T) {
	t.Parallel()

	mock := &userServiceMock{
		FollowingFunc: func(ctx context.Context, id string) ([]domain.User, error) {
			require.Equal(t, "u1", id)
			return []domain.User{{ID: "u2", Username: "bragi"}}, nil
		},
	}

	resolver := &userResolver{&Resolver{user: mock}}

	result, err := resolver.Following(context.Background(), &domain.User{ID: "u1"})

	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, "bragi", result[0].Username)
}

func TestUserLearning(t *testing.T) {
	t.Parallel()

	wordID := uuid.New()
	mock := &userServiceMock{
		LearningFunc: func(ctx context.Context, id string) ([]usersvc.LearningEntry, error) {
			return []usersvc.LearningEntry{
				{Word: domain.Word{ID: wordID, Norm: "hús"}, Status: domain.WordLearningStatusLearning},
			}, nil
		},
	}

	resolver := &userResolver{&Resolver{user: mock}}

	result, err := resolver.Learning(context.Background(), &domain.User{ID: "u1"})

	require.NoError(t, err)
	require.Len(t, result, 1)
	require.Equal(t, wordID, result[0].Word.ID)
	require.Equal(t, domain.WordLearningStatusLearning, result[0].Status)
}
