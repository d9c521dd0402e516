// Package language implements the Language repository using PostgreSQL.
// Besides the languages table it owns the join tables hanging off a
// language: langandagents (authors/publishers), langtranslatesto
// (directed translation links), and userfollowlanguage (followers).
package language

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/hallfrida/ordasafn-backend/internal/adapter/postgres"
	"github.com/hallfrida/ordasafn-backend/internal/domain"
)

// Repo provides language persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new language repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// languageColumns is the shared select list. Enums are read back as text;
// the dictgenre array is widened to text[] so no custom type registration
// is needed on the connection.
const languageColumns = `
id, name, native, release::text AS release, genre::text[] AS genre,
abstract, created, description, rights, license, owner`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a language by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Language, error) {
	q := `SELECT ` + languageColumns + ` FROM languages WHERE id = $1`

	rows, err := r.db.Query(ctx, q, id)
	if err != nil {
		return nil, postgres.MapError(err, "language", id.String())
	}

	var row languageRow
	if err := pgxscan.ScanOne(&row, rows); err != nil {
		return nil, postgres.MapError(err, "language", id.String())
	}

	l := row.toDomain()
	return &l, nil
}

// GetByNameOwner returns a language by its natural key (name, owner).
func (r *Repo) GetByNameOwner(ctx context.Context, name, owner string) (*domain.Language, error) {
	q := `SELECT ` + languageColumns + ` FROM languages WHERE name = $1 AND owner = $2`

	rows, err := r.db.Query(ctx, q, name, owner)
	if err != nil {
		return nil, postgres.MapError(err, "language", name)
	}

	var row languageRow
	if err := pgxscan.ScanOne(&row, rows); err != nil {
		return nil, postgres.MapError(err, "language", name)
	}

	l := row.toDomain()
	return &l, nil
}

// List returns every language, ordered by name.
func (r *Repo) List(ctx context.Context) ([]domain.Language, error) {
	q := `SELECT ` + languageColumns + ` FROM languages ORDER BY name, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, postgres.MapError(err, "language", "all")
	}

	return scanLanguages(rows)
}

// Search returns languages whose name contains the query, case-insensitively.
// No match yields an empty slice, never an error.
func (r *Repo) Search(ctx context.Context, query string) ([]domain.Language, error) {
	q, args, err := psql.
		Select("id", "name", "native", "release::text AS release", "genre::text[] AS genre",
			"abstract", "created", "description", "rights", "license", "owner").
		From("languages").
		Where(sq.ILike{"name": "%" + query + "%"}).
		OrderBy("name", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("language search: build query: %w", err)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, postgres.MapError(err, "language", query)
	}

	return scanLanguages(rows)
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a language and re-reads it by its natural key: the store
// generates id and created, so the stored row is the canonical result.
func (r *Repo) Create(ctx context.Context, l domain.Language) (*domain.Language, error) {
	const q = `
INSERT INTO languages (name, native, release, genre, abstract, description, rights, license, owner)
VALUES ($1, $2, $3::release, $4::text[]::dictgenre[], $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, q,
		l.Name, l.Native, l.Release.String(), genreStrings(l.Genre),
		l.Abstract, l.Description, l.Rights, l.License, l.Owner,
	)
	if err != nil {
		return nil, postgres.MapError(err, "language", l.Name)
	}

	return r.GetByNameOwner(ctx, l.Name, l.Owner)
}

// Delete removes a language by id. Join rows cascade in the schema; words
// do not, so callers must refuse deletion while words exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `
DELETE FROM languages WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return postgres.MapError(err, "language", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("language %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// langandagents join table
// ---------------------------------------------------------------------------

// ListAgents returns the agent rows of a language with the given relationship.
func (r *Repo) ListAgents(ctx context.Context, language uuid.UUID, rel domain.AgentLanguageRelation) ([]domain.LanguageAgent, error) {
	const q = `
SELECT id, agent, language, relationship::text AS relationship
FROM langandagents
WHERE language = $1 AND relationship = $2::agentlanguagerelation
ORDER BY id`

	rows, err := r.db.Query(ctx, q, language, rel.String())
	if err != nil {
		return nil, postgres.MapError(err, "langandagents", language.String())
	}

	return scanAgents(rows)
}

// ---------------------------------------------------------------------------
// langtranslatesto join table
// ---------------------------------------------------------------------------

// ListTranslations returns the directed translation links out of a language.
func (r *Repo) ListTranslations(ctx context.Context, from uuid.UUID) ([]domain.LanguageTranslation, error) {
	const q = `
SELECT id, langfrom AS lang_from, langto AS lang_to
FROM langtranslatesto
WHERE langfrom = $1
ORDER BY id`

	rows, err := r.db.Query(ctx, q, from)
	if err != nil {
		return nil, postgres.MapError(err, "langtranslatesto", from.String())
	}

	var links []domain.LanguageTranslation
	if err := pgxscan.ScanAll(&links, rows); err != nil {
		return nil, postgres.MapError(err, "langtranslatesto", from.String())
	}
	if links == nil {
		links = []domain.LanguageTranslation{}
	}
	return links, nil
}

// ---------------------------------------------------------------------------
// userfollowlanguage join table
// ---------------------------------------------------------------------------

// CreateFollow records that a user follows a language. Following twice is
// an idempotent no-op (unique on (lang, userid), conflict ignored).
func (r *Repo) CreateFollow(ctx context.Context, language uuid.UUID, userID string) error {
	const q = `
INSERT INTO userfollowlanguage (lang, userid) VALUES ($1, $2)
ON CONFLICT (lang, userid) DO NOTHING`

	if _, err := r.db.Exec(ctx, q, language, userID); err != nil {
		return postgres.MapError(err, "userfollowlanguage", language.String())
	}
	return nil
}

// GetFollow returns the follow row for (language, user), or ErrNotFound.
func (r *Repo) GetFollow(ctx context.Context, language uuid.UUID, userID string) (*domain.LanguageFollow, error) {
	const q = `
SELECT id, lang, userid AS user_id FROM userfollowlanguage WHERE lang = $1 AND userid = $2`

	var f domain.LanguageFollow
	if err := r.db.QueryRow(ctx, q, language, userID).Scan(&f.ID, &f.Lang, &f.UserID); err != nil {
		return nil, postgres.MapError(err, "userfollowlanguage", language.String())
	}
	return &f, nil
}

// DeleteFollow removes a follow row by its surrogate id.
func (r *Repo) DeleteFollow(ctx context.Context, id int32) error {
	const q = `
DELETE FROM userfollowlanguage WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return postgres.MapError(err, "userfollowlanguage", fmt.Sprint(id))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("userfollowlanguage %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ListFollowers returns the follow rows of a language.
func (r *Repo) ListFollowers(ctx context.Context, language uuid.UUID) ([]domain.LanguageFollow, error) {
	const q = `
SELECT id, lang, userid AS user_id FROM userfollowlanguage WHERE lang = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, q, language)
	if err != nil {
		return nil, postgres.MapError(err, "userfollowlanguage", language.String())
	}

	return scanFollows(rows)
}

// ListFollowed returns the follow rows created by a user.
func (r *Repo) ListFollowed(ctx context.Context, userID string) ([]domain.LanguageFollow, error) {
	const q = `
SELECT id, lang, userid AS user_id FROM userfollowlanguage WHERE userid = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, postgres.MapError(err, "userfollowlanguage", userID)
	}

	return scanFollows(rows)
}
