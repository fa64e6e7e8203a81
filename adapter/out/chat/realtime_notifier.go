// Package chat adapts the realtime push capability to the triage
// ChatNotifierPort.
package chat

import (
	"context"
	"time"

	"worker_server/core/domain"
	"worker_server/core/port/out"
)

var kindToEvent = map[out.NotificationKind]domain.EventType{
	out.KindUrgent:        domain.EventTriageUrgent,
	out.KindVIP:           domain.EventTriageVIP,
	out.KindEscalation:    domain.EventTriageEscalation,
	out.KindBatchSummary:  domain.EventTriageBatchSummary,
	out.KindClarification: domain.EventTriageClarification,
}

// RealtimeNotifier implements out.ChatNotifierPort by pushing events
// through the existing RealtimePort (SSE adapter), addressed to a single
// operator channel rather than a per-end-user subscription.
type RealtimeNotifier struct {
	realtime   out.RealtimePort
	operatorID string
}

func New(realtime out.RealtimePort, operatorID string) *RealtimeNotifier {
	return &RealtimeNotifier{realtime: realtime, operatorID: operatorID}
}

// Notify implements out.ChatNotifierPort.
func (n *RealtimeNotifier) Notify(ctx context.Context, kind out.NotificationKind, payload map[string]any) error {
	eventType, ok := kindToEvent[kind]
	if !ok {
		eventType = domain.EventType(kind)
	}
	return n.realtime.Push(ctx, n.operatorID, &domain.RealtimeEvent{
		Type:      eventType,
		Data:      payload,
		Timestamp: time.Now(),
	})
}

var _ out.ChatNotifierPort = (*RealtimeNotifier)(nil)
