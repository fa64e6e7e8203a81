package tracker

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLogEmailPostsEventAndAuthHeader(t *testing.T) {
	var gotAuth string
	var gotBody map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	tr := New(srv.URL, "secret-token")
	if err := tr.LogEmail(context.Background(), "triaged an invoice question"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer secret-token" {
		t.Fatalf("expected bearer token header, got %q", gotAuth)
	}
	if gotBody["event"] != "email" {
		t.Fatalf("expected event=email, got %v", gotBody["event"])
	}
	if gotBody["summary"] != "triaged an invoice question" {
		t.Fatalf("expected summary passthrough, got %v", gotBody["summary"])
	}
}

func TestLogEscalationReturnsErrorOnNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	tr := New(srv.URL, "")
	err := tr.LogEscalation(context.Background(), map[string]any{"reason": "legal"})
	if err == nil {
		t.Fatal("expected an error on a 500 response")
	}
}

func TestPostIsNoopWithoutConfiguredURL(t *testing.T) {
	tr := New("", "")
	if err := tr.LogBatch(context.Background(), "batch summary"); err != nil {
		t.Fatalf("expected nil error with no tracker URL configured, got %v", err)
	}
}
