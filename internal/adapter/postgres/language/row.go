package language

import (
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/hallfrida/ordasafn-backend/internal/adapter/postgres"
	"github.com/hallfrida/ordasafn-backend/internal/domain"
)

// languageRow mirrors the languages select list. Enum columns come back as
// text and are converted in toDomain.
type languageRow struct {
	ID          uuid.UUID `db:"id"`
	Name        string    `db:"name"`
	Native      *string   `db:"native"`
	Release     string    `db:"release"`
	Genre       []string  `db:"genre"`
	Abstract    *string   `db:"abstract"`
	Created     time.Time `db:"created"`
	Description *string   `db:"description"`
	Rights      *string   `db:"rights"`
	License     *string   `db:"license"`
	Owner       string    `db:"owner"`
}

func (r languageRow) toDomain() domain.Language {
	genre := make([]domain.DictGenre, 0, len(r.Genre))
	for _, g := range r.Genre {
		genre = append(genre, domain.DictGenre(g))
	}

	return domain.Language{
		ID:          r.ID,
		Name:        r.Name,
		Native:      r.Native,
		Release:     domain.Release(r.Release),
		Genre:       genre,
		Abstract:    r.Abstract,
		Created:     r.Created,
		Description: r.Description,
		Rights:      r.Rights,
		License:     r.License,
		Owner:       r.Owner,
	}
}

// agentRow mirrors the langandagents select list; the relationship enum
// comes back as text.
type agentRow struct {
	ID           int32     `db:"id"`
	Agent        string    `db:"agent"`
	Language     uuid.UUID `db:"language"`
	Relationship string    `db:"relationship"`
}

func (r agentRow) toDomain() domain.LanguageAgent {
	return domain.LanguageAgent{
		ID:           r.ID,
		Agent:        r.Agent,
		Language:     r.Language,
		Relationship: domain.AgentLanguageRelation(r.Relationship),
	}
}

func scanAgents(rows pgx.Rows) ([]domain.LanguageAgent, error) {
	var raw []agentRow
	if err := pgxscan.ScanAll(&raw, rows); err != nil {
		return nil, postgres.MapError(err, "langandagents", "scan")
	}

	agents := make([]domain.LanguageAgent, 0, len(raw))
	for _, r := range raw {
		agents = append(agents, r.toDomain())
	}
	return agents, nil
}

func genreStrings(genre []domain.DictGenre) []string {
	out := make([]string, 0, len(genre))
	for _, g := range genre {
		out = append(out, g.String())
	}
	return out
}

func scanLanguages(rows pgx.Rows) ([]domain.Language, error) {
	var raw []languageRow
	if err := pgxscan.ScanAll(&raw, rows); err != nil {
		return nil, postgres.MapError(err, "language", "scan")
	}

	languages := make([]domain.Language, 0, len(raw))
	for _, r := range raw {
		languages = append(languages, r.toDomain())
	}
	return languages, nil
}

func scanFollows(rows pgx.Rows) ([]domain.LanguageFollow, error) {
	var follows []domain.LanguageFollow
	if err := pgxscan.ScanAll(&follows, rows); err != nil {
		return nil, postgres.MapError(err, "userfollowlanguage", "scan")
	}
	if follows == nil {
		follows = []domain.LanguageFollow{}
	}
	return follows, nil
}
