package user

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/require"

	"github.com/hallfrida/ordasafn-backend/internal/domain"
)

func newMock(t *testing.T) (pgxmock.PgxPoolIface, *Repo) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, New(mock)
}

func TestRepo_GetByID(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery(`SELECT id, username FROM users WHERE id = \$1`).
		WithArgs("u1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username"}).AddRow("u1", "alice"))

	got, err := repo.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	require.Equal(t, &domain.User{ID: "u1", Username: "alice"}, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_GetByID_NotFound(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery(`SELECT id, username FROM users WHERE id = \$1`).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username"}))

	_, err := repo.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_List(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery(`SELECT id, username FROM users ORDER BY username, id`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "username"}).
			AddRow("u2", "alice").
			AddRow("u1", "bob"))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "alice", got[0].Username)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_List_Empty(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery(`SELECT id, username FROM users ORDER BY username, id`).
		WillReturnRows(pgxmock.NewRows([]string{"id", "username"}))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Search(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery(`SELECT id, username FROM users WHERE username ILIKE \$1 ORDER BY username, id`).
		WithArgs("%ali%").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username"}).AddRow("u2", "alice"))

	got, err := repo.Search(context.Background(), "ali")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "u2", got[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Search_NoMatch(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery(`SELECT id, username FROM users WHERE username ILIKE \$1 ORDER BY username, id`).
		WithArgs("%zzz%").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username"}))

	got, err := repo.Search(context.Background(), "zzz")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Create(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectExec(`INSERT INTO users \(id, username\) VALUES \(\$1, \$2\)`).
		WithArgs("u3", "carol").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectQuery(`SELECT id, username FROM users WHERE id = \$1`).
		WithArgs("u3").
		WillReturnRows(pgxmock.NewRows([]string{"id", "username"}).AddRow("u3", "carol"))

	got, err := repo.Create(context.Background(), domain.User{ID: "u3", Username: "carol"})
	require.NoError(t, err)
	require.Equal(t, "carol", got.Username)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Create_Duplicate(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectExec(`INSERT INTO users \(id, username\) VALUES \(\$1, \$2\)`).
		WithArgs("u1", "alice").
		WillReturnError(errors.New("ERROR: duplicate key value violates unique constraint (SQLSTATE 23505)"))

	_, err := repo.Create(context.Background(), domain.User{ID: "u1", Username: "alice"})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Delete(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs("u1").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Delete(context.Background(), "u1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_Delete_NotFound(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectExec(`DELETE FROM users WHERE id = \$1`).
		WithArgs("missing").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	err := repo.Delete(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_ListFollowing(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery(`SELECT id, follower, following FROM userfollows WHERE follower = \$1 ORDER BY id`).
		WithArgs("u1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "follower", "following"}).
			AddRow(int32(1), "u1", "u2").
			AddRow(int32(2), "u1", "u3"))

	got, err := repo.ListFollowing(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "u2", got[0].Following)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepo_ListFollowers(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery(`SELECT id, follower, following FROM userfollows WHERE following = \$1 ORDER BY id`).
		WithArgs("u2").
		WillReturnRows(pgxmock.NewRows([]string{"id", "follower", "following"}).
			AddRow(int32(1), "u1", "u2"))

	got, err := repo.ListFollowers(context.Background(), "u2")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "u1", got[0].Follower)
	require.NoError(t, mock.ExpectationsWereMet())
}
