// Package user implements the User repository using PostgreSQL.
// It also owns the userfollows join table (user → user follows).
package user

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/hallfrida/ordasafn-backend/internal/adapter/postgres"
	"github.com/hallfrida/ordasafn-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ---------------------------------------------------------------------------
// User operations
// ---------------------------------------------------------------------------

// GetByID returns a user by its external identity.
func (r *Repo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const q = `
SELECT id, username FROM users WHERE id = $1`

	var u domain.User
	if err := r.db.QueryRow(ctx, q, id).Scan(&u.ID, &u.Username); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// List returns every user, ordered by username.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	const q = `
SELECT id, username FROM users ORDER BY username, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, postgres.MapError(err, "user", "all")
	}

	var users []domain.User
	if err := pgxscan.ScanAll(&users, rows); err != nil {
		return nil, postgres.MapError(err, "user", "all")
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// Search returns users whose username contains the query, case-insensitively.
// No match yields an empty slice, never an error.
func (r *Repo) Search(ctx context.Context, query string) ([]domain.User, error) {
	q, args, err := psql.
		Select("id", "username").
		From("users").
		Where(sq.ILike{"username": "%" + query + "%"}).
		OrderBy("username", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("user search: build query: %w", err)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user", query)
	}

	var users []domain.User
	if err := pgxscan.ScanAll(&users, rows); err != nil {
		return nil, postgres.MapError(err, "user", query)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// Create inserts a user and re-reads the stored row; the store is the
// source of truth for the persisted shape.
func (r *Repo) Create(ctx context.Context, u domain.User) (*domain.User, error) {
	const q = `
INSERT INTO users (id, username) VALUES ($1, $2)`

	if _, err := r.db.Exec(ctx, q, u.ID, u.Username); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	return r.GetByID(ctx, u.ID)
}

// Delete removes a user by id. Returns domain.ErrNotFound when no row matched.
func (r *Repo) Delete(ctx context.Context, id string) error {
	const q = `
DELETE FROM users WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// userfollows join table
// ---------------------------------------------------------------------------

// ListFollowing returns the follow rows where the given user is the follower.
func (r *Repo) ListFollowing(ctx context.Context, follower string) ([]domain.UserFollow, error) {
	const q = `
SELECT id, follower, following FROM userfollows WHERE follower = $1 ORDER BY id`

	return r.listFollows(ctx, q, follower)
}

// ListFollowers returns the follow rows where the given user is followed.
func (r *Repo) ListFollowers(ctx context.Context, following string) ([]domain.UserFollow, error) {
	const q = `
SELECT id, follower, following FROM userfollows WHERE following = $1 ORDER BY id`

	return r.listFollows(ctx, q, following)
}

func (r *Repo) listFollows(ctx context.Context, q, userID string) ([]domain.UserFollow, error) {
	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, postgres.MapError(err, "userfollows", userID)
	}

	var follows []domain.UserFollow
	if err := pgxscan.ScanAll(&follows, rows); err != nil {
		return nil, postgres.MapError(err, "userfollows", userID)
	}
	if follows == nil {
		follows = []domain.UserFollow{}
	}
	return follows, nil
}
