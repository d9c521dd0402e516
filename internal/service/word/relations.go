package word

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hallfrida/ordasafn-backend/internal/domain"
)

// Language resolves a word's owning language. The language is a mandatory
// reference; a missing row is an integrity failure of the store, not an
// empty result, so it must not surface as a lookup miss.
func (s *Service) Language(ctx context.Context, w *domain.Word) (*domain.Language, error) {
	l, err := s.languages.GetByID(ctx, w.Language)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.ErrorContext(ctx, "dangling language reference",
				slog.String("word_id", w.ID.String()),
				slog.String("language_id", w.Language.String()),
			)
			return nil, fmt.Errorf("word %s references missing language %s", w.ID, w.Language)
		}
		return nil, fmt.Errorf("resolve language of word %s: %w", w.ID, err)
	}
	return l, nil
}

// Lemma resolves a word's base form. A word without a lemma, or one whose
// lemma row has gone away, resolves to nothing.
func (s *Service) Lemma(ctx context.Context, w *domain.Word) (*domain.Word, error) {
	if w.Lemma == nil {
		return nil, nil
	}

	base, err := s.words.GetByID(ctx, *w.Lemma)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "stale lemma reference",
				slog.String("word_id", w.ID.String()),
				slog.String("lemma_id", w.Lemma.String()),
			)
			return nil, nil
		}
		return nil, fmt.Errorf("resolve lemma of word %s: %w", w.ID, err)
	}
	return base, nil
}

// Definitions resolves the words this one links to as definitions.
// Unresolvable targets are dropped and logged.
func (s *Service) Definitions(ctx context.Context, id uuid.UUID) ([]domain.Word, error) {
	return s.related(ctx, id, domain.WordRelationshipDefinition)
}

// Related resolves the words this one is loosely associated with.
func (s *Service) Related(ctx context.Context, id uuid.UUID) ([]domain.Word, error) {
	return s.related(ctx, id, domain.WordRelationshipRelated)
}

func (s *Service) related(ctx context.Context, id uuid.UUID, rel domain.WordRelationship) ([]domain.Word, error) {
	links, err := s.words.ListRelations(ctx, id, rel)
	if err != nil {
		return nil, fmt.Errorf("list relations: %w", err)
	}

	words := make([]domain.Word, 0, len(links))
	for _, link := range links {
		w, err := s.words.GetByID(ctx, link.WordTarget)
		if err != nil {
			s.log.WarnContext(ctx, "dropping unresolvable relation target",
				slog.String("word_id", id.String()),
				slog.String("target_id", link.WordTarget.String()),
				slog.String("relationship", rel.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		words = append(words, *w)
	}
	return words, nil
}
