package ctxutil

import (
	"context"
	"testing"
)

func TestCallerID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithCallerID(context.Background(), "appwrite-user-1")

	id, ok := CallerIDFromCtx(ctx)
	if !ok {
		t.Fatal("expected caller ID to be present")
	}
	if id != "appwrite-user-1" {
		t.Errorf("caller ID: got %q, want %q", id, "appwrite-user-1")
	}
}

func TestCallerID_Absent(t *testing.T) {
	t.Parallel()

	id, ok := CallerIDFromCtx(context.Background())
	if ok {
		t.Error("expected no caller ID in empty context")
	}
	if id != "" {
		t.Errorf("expected empty ID, got %q", id)
	}
}

func TestCallerID_EmptyString(t *testing.T) {
	t.Parallel()

	ctx := WithCallerID(context.Background(), "")

	if _, ok := CallerIDFromCtx(ctx); ok {
		t.Error("empty caller ID should be treated as anonymous")
	}
}

func TestRequestID_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithRequestID(context.Background(), "req-42")

	if got := RequestIDFromCtx(ctx); got != "req-42" {
		t.Errorf("request ID: got %q, want %q", got, "req-42")
	}
}

func TestRequestID_Absent(t *testing.T) {
	t.Parallel()

	if got := RequestIDFromCtx(context.Background()); got != "" {
		t.Errorf("expected empty request ID, got %q", got)
	}
}
