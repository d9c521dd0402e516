package language

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/hallfrida/ordasafn-backend/internal/domain"
)

// All returns every language in the dictionary.
func (s *Service) All(ctx context.Context) ([]domain.Language, error) {
	languages, err := s.languages.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	return languages, nil
}

// Get returns a language by its natural key (name, owner).
func (s *Service) Get(ctx context.Context, name, owner string) (*domain.Language, error) {
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}
	if owner == "" {
		return nil, domain.NewValidationError("owner", "required")
	}

	l, err := s.languages.GetByNameOwner(ctx, name, owner)
	if err != nil {
		return nil, fmt.Errorf("get language: %w", err)
	}
	return l, nil
}

// GetByID returns a language by primary key.
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Language, error) {
	l, err := s.languages.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get language: %w", err)
	}
	return l, nil
}

// Find returns languages whose name matches the query. No match is an
// empty result, not an error.
func (s *Service) Find(ctx context.Context, query string) ([]domain.Language, error) {
	if query == "" {
		return nil, domain.NewValidationError("query", "required")
	}

	languages, err := s.languages.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find languages: %w", err)
	}
	return languages, nil
}

// WordCount reports how many words a language holds.
func (s *Service) WordCount(ctx context.Context, id uuid.UUID) (int64, error) {
	n, err := s.words.CountByLanguage(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return n, nil
}
