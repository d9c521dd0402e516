package auth

import (
	"errors"
	"testing"

	"github.com/hallfrida/ordasafn-backend/internal/domain"
)

func TestIsOwner(t *testing.T) {
	tests := []struct {
		name   string
		owner  string
		caller string
		want   bool
	}{
		{"owner matches", "u1", "u1", true},
		{"different user", "u1", "u2", false},
		{"anonymous caller", "u1", "", false},
		{"both empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOwner(tt.owner, tt.caller); got != tt.want {
				t.Errorf("IsOwner(%q, %q) = %v, want %v", tt.owner, tt.caller, got, tt.want)
			}
		})
	}
}

func TestRequireOwner(t *testing.T) {
	if err := RequireOwner("u1", "u1"); err != nil {
		t.Errorf("owner should pass, got %v", err)
	}

	err := RequireOwner("u1", "u2")
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("non-owner should get ErrUnauthorized, got %v", err)
	}
}

func TestAdminGuard_Check(t *testing.T) {
	g := NewAdminGuard("super-secret-admin-key")

	if err := g.Check("super-secret-admin-key"); err != nil {
		t.Errorf("matching key should pass, got %v", err)
	}

	if err := g.Check("wrong"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("wrong key should get ErrUnauthorized, got %v", err)
	}

	if err := g.Check(""); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("empty key should get ErrUnauthorized, got %v", err)
	}
}

func TestAdminGuard_Unconfigured(t *testing.T) {
	g := NewAdminGuard("")

	if err := g.Check(""); !errors.Is(err, domain.ErrUnauthorized) {
		t.Errorf("unconfigured guard should reject everything, got %v", err)
	}
}
