package language

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/hallfrida/ordasafn-backend/internal/domain"
)

// Owner resolves a language's owning user. The owner is a mandatory
// reference; a missing row is an integrity failure of the store, not an
// empty result, so it must not surface as a lookup miss.
func (s *Service) Owner(ctx context.Context, l *domain.Language) (*domain.User, error) {
	u, err := s.users.GetByID(ctx, l.Owner)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.ErrorContext(ctx, "dangling owner reference",
				slog.String("language_id", l.ID.String()),
				slog.String("owner_id", l.Owner),
			)
			return nil, fmt.Errorf("language %s references missing owner %q", l.ID, l.Owner)
		}
		return nil, fmt.Errorf("resolve owner of language %s: %w", l.ID, err)
	}
	return u, nil
}

// Authors resolves the users recorded as authors of a language. Members
// that fail to resolve are dropped and logged; the rest are returned.
func (s *Service) Authors(ctx context.Context, id uuid.UUID) ([]domain.User, error) {
	return s.agents(ctx, id, domain.AgentRelationAuthor)
}

// Publishers resolves the users recorded as publishers of a language.
func (s *Service) Publishers(ctx context.Context, id uuid.UUID) ([]domain.User, error) {
	return s.agents(ctx, id, domain.AgentRelationPublisher)
}

func (s *Service) agents(ctx context.Context, id uuid.UUID, rel domain.AgentLanguageRelation) ([]domain.User, error) {
	links, err := s.languages.ListAgents(ctx, id, rel)
	if err != nil {
		return nil, fmt.Errorf("list agents: %w", err)
	}

	users := make([]domain.User, 0, len(links))
	for _, link := range links {
		u, err := s.users.GetByID(ctx, link.Agent)
		if err != nil {
			s.log.WarnContext(ctx, "dropping unresolvable agent",
				slog.String("language_id", id.String()),
				slog.String("user_id", link.Agent),
				slog.String("relationship", rel.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		users = append(users, *u)
	}
	return users, nil
}

// TargetLanguages resolves the languages this one translates into.
// Unresolvable targets are dropped and logged.
func (s *Service) TargetLanguages(ctx context.Context, id uuid.UUID) ([]domain.Language, error) {
	links, err := s.languages.ListTranslations(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}

	targets := make([]domain.Language, 0, len(links))
	for _, link := range links {
		l, err := s.languages.GetByID(ctx, link.LangTo)
		if err != nil {
			s.log.WarnContext(ctx, "dropping unresolvable translation target",
				slog.String("language_id", id.String()),
				slog.String("target_id", link.LangTo.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		targets = append(targets, *l)
	}
	return targets, nil
}

// Followers resolves the users following a language. Unresolvable
// followers are dropped and logged.
func (s *Service) Followers(ctx context.Context, id uuid.UUID) ([]domain.User, error) {
	follows, err := s.languages.ListFollowers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list followers: %w", err)
	}

	users := make([]domain.User, 0, len(follows))
	for _, f := range follows {
		u, err := s.users.GetByID(ctx, f.UserID)
		if err != nil {
			s.log.WarnContext(ctx, "dropping unresolvable follower",
				slog.String("language_id", id.String()),
				slog.String("user_id", f.UserID),
				slog.String("error", err.Error()),
			)
			continue
		}
		users = append(users, *u)
	}
	return users, nil
}
