package chat

import (
	"context"
	"errors"
	"testing"

	"worker_server/core/domain"
	"worker_server/core/port/out"
)

type fakeRealtime struct {
	lastUser  string
	lastEvent *domain.RealtimeEvent
	err       error
}

func (f *fakeRealtime) Subscribe(userID string) <-chan *domain.RealtimeEvent { return nil }
func (f *fakeRealtime) Unsubscribe(userID string, ch <-chan *domain.RealtimeEvent) {}
func (f *fakeRealtime) Broadcast(ctx context.Context, event *domain.RealtimeEvent) error {
	return nil
}
func (f *fakeRealtime) Push(ctx context.Context, userID string, event *domain.RealtimeEvent) error {
	f.lastUser = userID
	f.lastEvent = event
	return f.err
}

func TestNotifyMapsKnownKindToEventType(t *testing.T) {
	rt := &fakeRealtime{}
	n := New(rt, "ops-channel")

	err := n.Notify(context.Background(), out.KindUrgent, map[string]any{"subject": "urgent thing"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rt.lastUser != "ops-channel" {
		t.Fatalf("expected push addressed to operator channel, got %q", rt.lastUser)
	}
	if rt.lastEvent.Type != domain.EventTriageUrgent {
		t.Fatalf("expected %q, got %q", domain.EventTriageUrgent, rt.lastEvent.Type)
	}
	if rt.lastEvent.Data["subject"] != "urgent thing" {
		t.Fatalf("expected payload to pass through unchanged, got %v", rt.lastEvent.Data)
	}
}

func TestNotifyFallsBackToRawKindForUnmappedValue(t *testing.T) {
	rt := &fakeRealtime{}
	n := New(rt, "ops-channel")

	const unmapped out.NotificationKind = "custom.kind"
	if err := n.Notify(context.Background(), unmapped, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rt.lastEvent.Type != domain.EventType("custom.kind") {
		t.Fatalf("expected fallback event type, got %q", rt.lastEvent.Type)
	}
}

func TestNotifyPropagatesPushError(t *testing.T) {
	rt := &fakeRealtime{err: errors.New("sse hub closed")}
	n := New(rt, "ops-channel")

	if err := n.Notify(context.Background(), out.KindVIP, nil); err == nil {
		t.Fatal("expected the push error to propagate")
	}
}

var _ out.RealtimePort = (*fakeRealtime)(nil)
