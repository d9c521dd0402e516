// Package appwrite verifies sessions against an Appwrite-compatible
// identity provider. The service never creates accounts or sessions
// itself; it only checks that a presented session still exists.
package appwrite

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/hallfrida/ordasafn-backend/internal/config"
)

// Client queries the provider's server API with an admin key.
type Client struct {
	endpoint   string
	project    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Client from the sessions configuration.
func NewClient(cfg config.SessionsConfig, logger *slog.Logger) *Client {
	return &Client{
		endpoint:   strings.TrimRight(cfg.Endpoint, "/"),
		project:    cfg.Project,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "appwrite"),
	}
}

type sessionList struct {
	Total    int       `json:"total"`
	Sessions []session `json:"sessions"`
}

type session struct {
	ID string `json:"$id"`
}

// CheckSession reports whether sessionID is an active session of userID.
// A user without that session (or an unknown user, HTTP 404) yields
// false, nil; transport and decode failures yield an error.
func (c *Client) CheckSession(ctx context.Context, userID, sessionID string) (bool, error) {
	reqURL := c.endpoint + "/users/" + url.PathEscape(userID) + "/sessions"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return false, fmt.Errorf("appwrite: create request: %w", err)
	}
	req.Header.Set("X-Appwrite-Key", c.apiKey)
	req.Header.Set("X-Appwrite-Project", c.project)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "session lookup failed",
			slog.String("user_id", userID), slog.String("error", err.Error()))
		return false, fmt.Errorf("appwrite: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("appwrite: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, fmt.Errorf("appwrite: read body: %w", err)
	}

	var list sessionList
	if err := json.Unmarshal(body, &list); err != nil {
		return false, fmt.Errorf("appwrite: decode json: %w", err)
	}

	for _, s := range list.Sessions {
		if s.ID == sessionID {
			return true, nil
		}
	}

	c.log.DebugContext(ctx, "session not found",
		slog.String("user_id", userID), slog.Int("active_sessions", list.Total))
	return false, nil
}
