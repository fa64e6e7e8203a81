// Package tracker implements TaskTrackerPort as a webhook POSTer.
package tracker

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"

	"worker_server/core/port/out"
	"worker_server/pkg/httputil"
)

// WebhookTracker posts triage activity to an external task tracker.
// Duplicates are acceptable and idempotency is not required, so failures
// are returned as plain errors for the caller's best-effort goroutines
// to swallow rather than retried here.
type WebhookTracker struct {
	url    string
	token  string
	client *http.Client
}

func New(url, token string) *WebhookTracker {
	return &WebhookTracker{
		url:    url,
		token:  token,
		client: httputil.NewOptimizedClient(httputil.DefaultClientConfig()),
	}
}

func (t *WebhookTracker) post(ctx context.Context, event string, body map[string]any) error {
	if t.url == "" {
		return nil
	}
	payload := map[string]any{"event": event}
	for k, v := range body {
		payload[k] = v
	}

	buf, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("tracker marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(buf))
	if err != nil {
		return fmt.Errorf("tracker request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if t.token != "" {
		req.Header.Set("Authorization", "Bearer "+t.token)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return fmt.Errorf("tracker post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("tracker post: status %d", resp.StatusCode)
	}
	return nil
}

// LogEmail implements out.TaskTrackerPort.
func (t *WebhookTracker) LogEmail(ctx context.Context, summary string) error {
	return t.post(ctx, "email", map[string]any{"summary": summary})
}

// LogBatch implements out.TaskTrackerPort.
func (t *WebhookTracker) LogBatch(ctx context.Context, summary string) error {
	return t.post(ctx, "batch", map[string]any{"summary": summary})
}

// LogEscalation implements out.TaskTrackerPort.
func (t *WebhookTracker) LogEscalation(ctx context.Context, details map[string]any) error {
	return t.post(ctx, "escalation", details)
}

var _ out.TaskTrackerPort = (*WebhookTracker)(nil)
