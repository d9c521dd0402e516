package middleware

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hallfrida/ordasafn-backend/pkg/ctxutil"
)

type mockSessionChecker struct {
	CheckSessionFunc func(ctx context.Context, userID, sessionID string) (bool, error)
	calls            int
}

func (m *mockSessionChecker) CheckSession(ctx context.Context, userID, sessionID string) (bool, error) {
	m.calls++
	if m.CheckSessionFunc != nil {
		return m.CheckSessionFunc(ctx, userID, sessionID)
	}
	return false, nil
}

func callerCapture(got *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := ctxutil.CallerIDFromCtx(r.Context())
		*got = id
		w.WriteHeader(http.StatusOK)
	})
}

func runAuth(t *testing.T, checker *mockSessionChecker, header string) (string, *httptest.ResponseRecorder) {
	t.Helper()

	var caller string
	handler := Auth(checker, slog.New(slog.NewTextHandler(io.Discard, nil)))(callerCapture(&caller))

	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return caller, rec
}

func TestAuth_ValidSession(t *testing.T) {
	checker := &mockSessionChecker{
		CheckSessionFunc: func(ctx context.Context, userID, sessionID string) (bool, error) {
			if userID != "u1" || sessionID != "s1" {
				t.Errorf("unexpected credentials %q/%q", userID, sessionID)
			}
			return true, nil
		},
	}

	caller, rec := runAuth(t, checker, "u1;s1")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if caller != "u1" {
		t.Errorf("caller = %q, want u1", caller)
	}
}

func TestAuth_NoHeaderIsAnonymous(t *testing.T) {
	checker := &mockSessionChecker{}

	caller, rec := runAuth(t, checker, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if caller != "" {
		t.Errorf("caller = %q, want anonymous", caller)
	}
	if checker.calls != 0 {
		t.Error("provider should not be queried without a header")
	}
}

func TestAuth_MalformedHeaderIsAnonymous(t *testing.T) {
	for _, header := range []string{"justonepart", ";s1", "u1;", ";"} {
		checker := &mockSessionChecker{}
		caller, rec := runAuth(t, checker, header)
		if rec.Code != http.StatusOK {
			t.Fatalf("header %q: status = %d", header, rec.Code)
		}
		if caller != "" {
			t.Errorf("header %q: caller = %q, want anonymous", header, caller)
		}
		if checker.calls != 0 {
			t.Errorf("header %q: provider should not be queried", header)
		}
	}
}

func TestAuth_StaleSessionIsAnonymous(t *testing.T) {
	checker := &mockSessionChecker{} // defaults to false, nil

	caller, rec := runAuth(t, checker, "u1;stale")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if caller != "" {
		t.Errorf("caller = %q, want anonymous", caller)
	}
}

func TestAuth_ProviderErrorIsAnonymousNot401(t *testing.T) {
	checker := &mockSessionChecker{
		CheckSessionFunc: func(ctx context.Context, userID, sessionID string) (bool, error) {
			return false, errors.New("provider unreachable")
		},
	}

	caller, rec := runAuth(t, checker, "u1;s1")
	if rec.Code != http.StatusOK {
		t.Fatalf("provider failure must not surface, status = %d", rec.Code)
	}
	if caller != "" {
		t.Errorf("caller = %q, want anonymous", caller)
	}
}

func TestAuth_SessionIDMayContainSeparator(t *testing.T) {
	var gotSession string
	checker := &mockSessionChecker{
		CheckSessionFunc: func(ctx context.Context, userID, sessionID string) (bool, error) {
			gotSession = sessionID
			return true, nil
		},
	}

	// Only the first separator splits; the rest belongs to the session id.
	_, _ = runAuth(t, checker, "u1;part1;part2")
	if gotSession != "part1;part2" {
		t.Errorf("session = %q, want %q", gotSession, "part1;part2")
	}
}
