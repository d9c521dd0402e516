package language

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hallfrida/ordasafn-backend/internal/domain"
	"github.com/hallfrida/ordasafn-backend/pkg/ctxutil"
)

// Create creates a language owned by the caller. Anonymous callers are
// rejected before any input is inspected.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Language, error) {
	callerID, ok := ctxutil.CallerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.languages.Create(ctx, domain.Language{
		Name:        input.Name,
		Native:      input.Native,
		Release:     input.Release,
		Genre:       input.Genre,
		Abstract:    input.Abstract,
		Description: input.Description,
		Rights:      input.Rights,
		License:     input.License,
		Owner:       callerID,
	})
	if err != nil {
		return nil, fmt.Errorf("create language: %w", err)
	}

	s.log.InfoContext(ctx, "language created",
		slog.String("language_id", created.ID.String()),
		slog.String("owner", callerID),
	)
	return created, nil
}
