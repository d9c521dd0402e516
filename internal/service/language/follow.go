package language

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hallfrida/ordasafn-backend/internal/domain"
	"github.com/hallfrida/ordasafn-backend/pkg/ctxutil"
)

// Follow records that the caller follows a language. Following a language
// twice is a no-op; the mutation re-reports success either way.
func (s *Service) Follow(ctx context.Context, id uuid.UUID) (*domain.Language, error) {
	callerID, ok := ctxutil.CallerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	l, err := s.languages.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get language: %w", err)
	}

	if err := s.languages.CreateFollow(ctx, id, callerID); err != nil {
		return nil, fmt.Errorf("follow language: %w", err)
	}

	s.log.InfoContext(ctx, "language followed",
		slog.String("language_id", id.String()),
		slog.String("user_id", callerID),
	)
	return l, nil
}

// Unfollow removes the caller's follow of a language. Unfollowing a
// language the caller does not follow is a validation failure.
func (s *Service) Unfollow(ctx context.Context, id uuid.UUID) (*domain.Language, error) {
	callerID, ok := ctxutil.CallerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	l, err := s.languages.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get language: %w", err)
	}

	follow, err := s.languages.GetFollow(ctx, id, callerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("language", "not following")
		}
		return nil, fmt.Errorf("get follow: %w", err)
	}

	if err := s.languages.DeleteFollow(ctx, follow.ID); err != nil {
		return nil, fmt.Errorf("unfollow language: %w", err)
	}

	s.log.InfoContext(ctx, "language unfollowed",
		slog.String("language_id", id.String()),
		slog.String("user_id", callerID),
	)
	return l, nil
}
