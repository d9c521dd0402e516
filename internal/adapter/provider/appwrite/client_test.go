package appwrite

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hallfrida/ordasafn-backend/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(endpoint string) *Client {
	return NewClient(config.SessionsConfig{
		Endpoint: endpoint,
		Project:  "proj-1",
		APIKey:   "key-1",
		Timeout:  5 * time.Second,
	}, testLogger())
}

func TestCheckSession_Match(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/u1/sessions" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if r.Header.Get("X-Appwrite-Key") != "key-1" || r.Header.Get("X-Appwrite-Project") != "proj-1" {
			t.Error("missing provider auth headers")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"total":2,"sessions":[{"$id":"s1"},{"$id":"s2"}]}`))
	}))
	defer srv.Close()

	ok, err := newTestClient(srv.URL).CheckSession(context.Background(), "u1", "s2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Error("expected session s2 to verify")
	}
}

func TestCheckSession_NoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"total":1,"sessions":[{"$id":"s1"}]}`))
	}))
	defer srv.Close()

	ok, err := newTestClient(srv.URL).CheckSession(context.Background(), "u1", "other")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Error("stale session id should not verify")
	}
}

func TestCheckSession_UnknownUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"User not found"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	ok, err := newTestClient(srv.URL).CheckSession(context.Background(), "ghost", "s1")
	if err != nil {
		t.Fatalf("404 should not be an error: %v", err)
	}
	if ok {
		t.Error("unknown user should not verify")
	}
}

func TestCheckSession_ProviderDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).CheckSession(context.Background(), "u1", "s1")
	if err == nil {
		t.Error("5xx should surface as an error")
	}
}

func TestCheckSession_BadBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).CheckSession(context.Background(), "u1", "s1")
	if err == nil {
		t.Error("malformed body should surface as an error")
	}
}
