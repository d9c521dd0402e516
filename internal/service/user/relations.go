package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hallfrida/ordasafn-backend/internal/domain"
)

// Following resolves the users this one follows. Unresolvable members are
// dropped and logged.
func (s *Service) Following(ctx context.Context, id string) ([]domain.User, error) {
	follows, err := s.users.ListFollowing(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list following: %w", err)
	}

	users := make([]domain.User, 0, len(follows))
	for _, f := range follows {
		u, err := s.users.GetByID(ctx, f.Following)
		if err != nil {
			s.dropFollow(ctx, id, f.Following, err)
			continue
		}
		users = append(users, *u)
	}
	return users, nil
}

// Followers resolves the users following this one.
func (s *Service) Followers(ctx context.Context, id string) ([]domain.User, error) {
	follows, err := s.users.ListFollowers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list followers: %w", err)
	}

	users := make([]domain.User, 0, len(follows))
	for _, f := range follows {
		u, err := s.users.GetByID(ctx, f.Follower)
		if err != nil {
			s.dropFollow(ctx, id, f.Follower, err)
			continue
		}
		users = append(users, *u)
	}
	return users, nil
}

func (s *Service) dropFollow(ctx context.Context, userID, otherID string, err error) {
	s.log.WarnContext(ctx, "dropping unresolvable follow",
		slog.String("user_id", userID),
		slog.String("other_id", otherID),
		slog.String("error", err.Error()),
	)
}

// FollowedLanguages resolves the languages a user follows. Unresolvable
// members are dropped and logged.
func (s *Service) FollowedLanguages(ctx context.Context, id string) ([]domain.Language, error) {
	follows, err := s.languages.ListFollowed(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list followed languages: %w", err)
	}

	languages := make([]domain.Language, 0, len(follows))
	for _, f := range follows {
		l, err := s.languages.GetByID(ctx, f.Lang)
		if err != nil {
			s.log.WarnContext(ctx, "dropping unresolvable followed language",
				slog.String("user_id", id),
				slog.String("language_id", f.Lang.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		languages = append(languages, *l)
	}
	return languages, nil
}

// Learning resolves the words a user is studying, paired with their
// status. Entries whose word has gone away are dropped and logged.
func (s *Service) Learning(ctx context.Context, id string) ([]LearningEntry, error) {
	records, err := s.words.ListLearning(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list learning: %w", err)
	}

	entries := make([]LearningEntry, 0, len(records))
	for _, rec := range records {
		w, err := s.words.GetByID(ctx, rec.Word)
		if err != nil {
			s.log.WarnContext(ctx, "dropping unresolvable learning entry",
				slog.String("user_id", id),
				slog.String("word_id", rec.Word.String()),
				slog.String("error", err.Error()),
			)
			continue
		}
		entries = append(entries, LearningEntry{Word: *w, Status: rec.Status})
	}
	return entries, nil
}
