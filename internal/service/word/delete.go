package word

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hallfrida/ordasafn-backend/internal/auth"
	"github.com/hallfrida/ordasafn-backend/internal/domain"
	"github.com/hallfrida/ordasafn-backend/pkg/ctxutil"
)

// Delete removes a word. Authorization follows the owning language: only
// its owner may delete words from it. Words depending on this one as their
// lemma keep existing; the schema clears their reference.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	callerID, ok := ctxutil.CallerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	w, err := s.words.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get word: %w", err)
	}

	l, err := s.languages.GetByID(ctx, w.Language)
	if err != nil {
		return nil, fmt.Errorf("get language: %w", err)
	}

	if err := auth.RequireOwner(l.Owner, callerID); err != nil {
		return nil, err
	}

	if err := s.words.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete word: %w", err)
	}

	s.log.InfoContext(ctx, "word deleted",
		slog.String("word_id", id.String()),
		slog.String("language_id", w.Language.String()),
		slog.String("owner", callerID),
	)
	return w, nil
}
