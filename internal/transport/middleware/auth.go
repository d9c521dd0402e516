package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/hallfrida/ordasafn-backend/pkg/ctxutil"
)

type sessionChecker interface {
	CheckSession(ctx context.Context, userID, sessionID string) (bool, error)
}

// Auth returns middleware that resolves the caller from the
// Authorization header, which carries "<userId>;<sessionId>". The session
// is verified against the external identity provider. Every failure mode
// (missing or malformed header, provider error, stale session) degrades
// to an anonymous request; this endpoint never answers 401 by itself,
// authorization happens per operation.
func Auth(sessions sessionChecker, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, sessionID, ok := parseAuthHeader(r)
			if !ok {
				next.ServeHTTP(w, r) // Anonymous
				return
			}

			valid, err := sessions.CheckSession(r.Context(), userID, sessionID)
			if err != nil {
				logger.WarnContext(r.Context(), "session check failed, treating as anonymous",
					slog.String("user_id", userID),
					slog.String("error", err.Error()),
				)
				next.ServeHTTP(w, r)
				return
			}
			if !valid {
				next.ServeHTTP(w, r)
				return
			}

			ctx := ctxutil.WithCallerID(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseAuthHeader(r *http.Request) (userID, sessionID string, ok bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", "", false
	}

	parts := strings.SplitN(header, ";", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return parts[0], parts[1], true
}
