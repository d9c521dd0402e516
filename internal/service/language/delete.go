package language

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hallfrida/ordasafn-backend/internal/auth"
	"github.com/hallfrida/ordasafn-backend/internal/domain"
	"github.com/hallfrida/ordasafn-backend/pkg/ctxutil"
)

// Delete removes a language owned by the caller. Deletion is refused while
// the language still holds words; follows, translations, and agent links
// go away with the language.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) (*domain.Language, error) {
	callerID, ok := ctxutil.CallerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	l, err := s.languages.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get language: %w", err)
	}

	if err := auth.RequireOwner(l.Owner, callerID); err != nil {
		return nil, err
	}

	count, err := s.words.CountByLanguage(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("count words: %w", err)
	}
	if count > 0 {
		return nil, domain.NewValidationError("words", fmt.Sprintf("language still holds %d words", count))
	}

	if err := s.languages.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete language: %w", err)
	}

	s.log.InfoContext(ctx, "language deleted",
		slog.String("language_id", id.String()),
		slog.String("owner", callerID),
	)
	return l, nil
}
