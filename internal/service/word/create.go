package word

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hallfrida/ordasafn-backend/internal/auth"
	"github.com/hallfrida/ordasafn-backend/internal/domain"
	"github.com/hallfrida/ordasafn-backend/pkg/ctxutil"
)

// Create adds a word to a language owned by the caller. A lemma reference
// that does not resolve, or resolves into a different language, is dropped
// rather than failing the whole mutation.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Word, error) {
	callerID, ok := ctxutil.CallerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	l, err := s.languages.GetByID(ctx, input.Language)
	if err != nil {
		return nil, fmt.Errorf("get language: %w", err)
	}

	if err := auth.RequireOwner(l.Owner, callerID); err != nil {
		return nil, err
	}

	lemma := input.Lemma
	if lemma != nil {
		base, err := s.words.GetByID(ctx, *lemma)
		switch {
		case errors.Is(err, domain.ErrNotFound):
			s.log.WarnContext(ctx, "dropping unresolvable lemma",
				slog.String("lemma_id", lemma.String()),
				slog.String("language_id", input.Language.String()),
			)
			lemma = nil
		case err != nil:
			return nil, fmt.Errorf("resolve lemma: %w", err)
		case base.Language != input.Language:
			s.log.WarnContext(ctx, "dropping cross-language lemma",
				slog.String("lemma_id", lemma.String()),
				slog.String("lemma_language", base.Language.String()),
				slog.String("language_id", input.Language.String()),
			)
			lemma = nil
		}
	}

	created, err := s.words.Create(ctx, domain.NewWord{
		Norm:         domain.NormalizeNorm(input.Norm),
		Native:       input.Native,
		Lemma:        lemma,
		Language:     input.Language,
		PartOfSpeech: input.PartOfSpeech,
		Audio:        input.Audio,
		Video:        input.Video,
		Image:        input.Image,
		Description:  input.Description,
		Etymology:    input.Etymology,
		Usage:        input.Usage,
		Morphology:   input.Morphology,
	})
	if err != nil {
		return nil, fmt.Errorf("create word: %w", err)
	}

	s.log.InfoContext(ctx, "word created",
		slog.String("word_id", created.ID.String()),
		slog.String("language_id", input.Language.String()),
		slog.String("owner", callerID),
	)
	return created, nil
}
