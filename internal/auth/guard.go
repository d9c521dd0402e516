// Package auth holds the authorization checks shared by the services:
// ownership of languages and words, and the administrative key that
// gates user management.
package auth

import (
	"crypto/subtle"
	"fmt"

	"github.com/hallfrida/ordasafn-backend/internal/domain"
)

// IsOwner reports whether the caller owns the resource. An empty caller
// never owns anything.
func IsOwner(ownerID, callerID string) bool {
	return callerID != "" && ownerID == callerID
}

// RequireOwner returns domain.ErrUnauthorized unless the caller owns the
// resource.
func RequireOwner(ownerID, callerID string) error {
	if !IsOwner(ownerID, callerID) {
		return fmt.Errorf("caller %q does not own resource: %w", callerID, domain.ErrUnauthorized)
	}
	return nil
}

// AdminGuard gates administrative operations behind a shared key.
type AdminGuard struct {
	key string
}

// NewAdminGuard creates a guard with the configured key.
func NewAdminGuard(key string) *AdminGuard {
	return &AdminGuard{key: key}
}

// Check returns domain.ErrUnauthorized unless the presented key matches.
// Comparison is constant-time.
func (g *AdminGuard) Check(presented string) error {
	if g.key == "" {
		return fmt.Errorf("admin operations disabled: %w", domain.ErrUnauthorized)
	}
	if subtle.ConstantTimeCompare([]byte(g.key), []byte(presented)) != 1 {
		return fmt.Errorf("admin key mismatch: %w", domain.ErrUnauthorized)
	}
	return nil
}
