// Package word implements the Word repository using PostgreSQL.
// It also owns the wordrelation and wordlearning join tables.
package word

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/hallfrida/ordasafn-backend/internal/adapter/postgres"
	"github.com/hallfrida/ordasafn-backend/internal/domain"
)

// Repo provides word persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new word repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// wordColumns is the shared select list; the enum is read back as text and
// renamed columns are aliased to the domain field names.
const wordColumns = `
id, norm, native, lemma, language, partofspeech::text AS part_of_speech,
audio, video, image, description, etymology, lusage AS usage, morphology`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a word by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	q := `SELECT ` + wordColumns + ` FROM words WHERE id = $1`

	rows, err := r.db.Query(ctx, q, id)
	if err != nil {
		return nil, postgres.MapError(err, "word", id.String())
	}

	var row wordRow
	if err := pgxscan.ScanOne(&row, rows); err != nil {
		return nil, postgres.MapError(err, "word", id.String())
	}

	w := row.toDomain()
	return &w, nil
}

// ListByNorm returns all words in a language with the given normalized form.
// Homographs share a norm, so this is a list, not a single row.
func (r *Repo) ListByNorm(ctx context.Context, language uuid.UUID, norm string) ([]domain.Word, error) {
	q := `SELECT ` + wordColumns + ` FROM words WHERE language = $1 AND norm = $2 ORDER BY id`

	rows, err := r.db.Query(ctx, q, language, norm)
	if err != nil {
		return nil, postgres.MapError(err, "word", norm)
	}

	return scanWords(rows)
}

// ListByLanguage returns every word of a language, ordered by norm.
func (r *Repo) ListByLanguage(ctx context.Context, language uuid.UUID) ([]domain.Word, error) {
	q := `SELECT ` + wordColumns + ` FROM words WHERE language = $1 ORDER BY norm, id`

	rows, err := r.db.Query(ctx, q, language)
	if err != nil {
		return nil, postgres.MapError(err, "word", language.String())
	}

	return scanWords(rows)
}

// Search returns words of a language whose norm contains the query,
// case-insensitively. No match yields an empty slice, never an error.
func (r *Repo) Search(ctx context.Context, language uuid.UUID, query string) ([]domain.Word, error) {
	q, args, err := psql.
		Select("id", "norm", "native", "lemma", "language",
			"partofspeech::text AS part_of_speech",
			"audio", "video", "image", "description", "etymology",
			"lusage AS usage", "morphology").
		From("words").
		Where(sq.Eq{"language": language}).
		Where(sq.ILike{"norm": "%" + query + "%"}).
		OrderBy("norm", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("word search: build query: %w", err)
	}

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, postgres.MapError(err, "word", query)
	}

	return scanWords(rows)
}

// CountByLanguage reports how many words a language holds.
func (r *Repo) CountByLanguage(ctx context.Context, language uuid.UUID) (int64, error) {
	const q = `
SELECT count(*) FROM words WHERE language = $1`

	var n int64
	if err := r.db.QueryRow(ctx, q, language).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "word", language.String())
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a word and re-reads the stored row. norm is not unique
// within a language, so the insert returns the generated id and the re-read
// goes through it.
func (r *Repo) Create(ctx context.Context, w domain.NewWord) (*domain.Word, error) {
	const q = `
INSERT INTO words (norm, native, lemma, language, partofspeech, audio, video, image, description, etymology, lusage, morphology)
VALUES ($1, $2, $3, $4, $5::partofspeech, $6, $7, $8, $9, $10, $11, $12)
RETURNING id`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, q,
		w.Norm, w.Native, w.Lemma, w.Language, w.PartOfSpeech.String(),
		w.Audio, w.Video, w.Image, w.Description, w.Etymology, w.Usage, w.Morphology,
	).Scan(&id)
	if err != nil {
		return nil, postgres.MapError(err, "word", w.Norm)
	}

	return r.GetByID(ctx, id)
}

// Delete removes a word by id. Returns domain.ErrNotFound when no row matched.
// Relation and learning rows cascade; dependent words keep their lemma
// cleared by the schema.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `
DELETE FROM words WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, id)
	if err != nil {
		return postgres.MapError(err, "word", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// wordrelation join table
// ---------------------------------------------------------------------------

// ListRelations returns the directed relation rows out of a word with the
// given relationship.
func (r *Repo) ListRelations(ctx context.Context, source uuid.UUID, rel domain.WordRelationship) ([]domain.WordRelation, error) {
	const q = `
SELECT id, wordsource AS word_source, wordtarget AS word_target, relationship::text AS relationship
FROM wordrelation
WHERE wordsource = $1 AND relationship = $2::wordrelationship
ORDER BY id`

	rows, err := r.db.Query(ctx, q, source, rel.String())
	if err != nil {
		return nil, postgres.MapError(err, "wordrelation", source.String())
	}

	return scanRelations(rows)
}

// ---------------------------------------------------------------------------
// wordlearning join table
// ---------------------------------------------------------------------------

// ListLearning returns the learning rows of a user.
func (r *Repo) ListLearning(ctx context.Context, userID string) ([]domain.WordLearning, error) {
	const q = `
SELECT id, word, userid AS user_id, status::text AS status
FROM wordlearning
WHERE userid = $1
ORDER BY id`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, postgres.MapError(err, "wordlearning", userID)
	}

	return scanLearning(rows)
}
