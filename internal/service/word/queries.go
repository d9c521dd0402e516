package word

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hallfrida/ordasafn-backend/internal/domain"
)

// Get returns a word by primary key.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	w, err := s.words.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get word: %w", err)
	}
	return w, nil
}

// ByNorm returns the words of a language matching a written form. The
// input is normalized the same way stored norms are, so lookups are
// insensitive to case and surrounding whitespace. Homographs all match.
func (s *Service) ByNorm(ctx context.Context, language uuid.UUID, word string) ([]domain.Word, error) {
	norm := domain.NormalizeNorm(word)
	if norm == "" {
		return nil, domain.NewValidationError("word", "required")
	}

	words, err := s.words.ListByNorm(ctx, language, norm)
	if err != nil {
		return nil, fmt.Errorf("words by norm: %w", err)
	}
	return words, nil
}

// Find returns words of a language whose norm matches the query. No match
// is an empty result, not an error.
func (s *Service) Find(ctx context.Context, language uuid.UUID, query string) ([]domain.Word, error) {
	if query == "" {
		return nil, domain.NewValidationError("query", "required")
	}

	words, err := s.words.Search(ctx, language, query)
	if err != nil {
		return nil, fmt.Errorf("find words: %w", err)
	}
	return words, nil
}
