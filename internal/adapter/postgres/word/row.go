package word

import (
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/hallfrida/ordasafn-backend/internal/adapter/postgres"
	"github.com/hallfrida/ordasafn-backend/internal/domain"
)

// wordRow mirrors the words select list. The enum column comes back as
// text and is converted in toDomain.
type wordRow struct {
	ID           uuid.UUID  `db:"id"`
	Norm         string     `db:"norm"`
	Native       *string    `db:"native"`
	Lemma        *uuid.UUID `db:"lemma"`
	Language     uuid.UUID  `db:"language"`
	PartOfSpeech string     `db:"part_of_speech"`
	Audio        *string    `db:"audio"`
	Video        *string    `db:"video"`
	Image        *string    `db:"image"`
	Description  *string    `db:"description"`
	Etymology    *string    `db:"etymology"`
	Usage        *string    `db:"usage"`
	Morphology   *string    `db:"morphology"`
}

func (r wordRow) toDomain() domain.Word {
	return domain.Word{
		ID:           r.ID,
		Norm:         r.Norm,
		Native:       r.Native,
		Lemma:        r.Lemma,
		Language:     r.Language,
		PartOfSpeech: domain.PartOfSpeech(r.PartOfSpeech),
		Audio:        r.Audio,
		Video:        r.Video,
		Image:        r.Image,
		Description:  r.Description,
		Etymology:    r.Etymology,
		Usage:        r.Usage,
		Morphology:   r.Morphology,
	}
}

type relationRow struct {
	ID           int32     `db:"id"`
	WordSource   uuid.UUID `db:"word_source"`
	WordTarget   uuid.UUID `db:"word_target"`
	Relationship string    `db:"relationship"`
}

func (r relationRow) toDomain() domain.WordRelation {
	return domain.WordRelation{
		ID:           r.ID,
		WordSource:   r.WordSource,
		WordTarget:   r.WordTarget,
		Relationship: domain.WordRelationship(r.Relationship),
	}
}

type learningRow struct {
	ID     int32     `db:"id"`
	Word   uuid.UUID `db:"word"`
	UserID string    `db:"user_id"`
	Status string    `db:"status"`
}

func (r learningRow) toDomain() domain.WordLearning {
	return domain.WordLearning{
		ID:     r.ID,
		Word:   r.Word,
		UserID: r.UserID,
		Status: domain.WordLearningStatus(r.Status),
	}
}

func scanWords(rows pgx.Rows) ([]domain.Word, error) {
	var raw []wordRow
	if err := pgxscan.ScanAll(&raw, rows); err != nil {
		return nil, postgres.MapError(err, "word", "scan")
	}

	words := make([]domain.Word, 0, len(raw))
	for _, r := range raw {
		words = append(words, r.toDomain())
	}
	return words, nil
}

func scanRelations(rows pgx.Rows) ([]domain.WordRelation, error) {
	var raw []relationRow
	if err := pgxscan.ScanAll(&raw, rows); err != nil {
		return nil, postgres.MapError(err, "wordrelation", "scan")
	}

	relations := make([]domain.WordRelation, 0, len(raw))
	for _, r := range raw {
		relations = append(relations, r.toDomain())
	}
	return relations, nil
}

func scanLearning(rows pgx.Rows) ([]domain.WordLearning, error) {
	var raw []learningRow
	if err := pgxscan.ScanAll(&raw, rows); err != nil {
		return nil, postgres.MapError(err, "wordlearning", "scan")
	}

	learning := make([]domain.WordLearning, 0, len(raw))
	for _, r := range raw {
		learning = append(learning, r.toDomain())
	}
	return learning, nil
}
