package edge

import (
	"context"
	"testing"
	"time"

	"worker_server/core/domain"
	"worker_server/core/port/out"
)

func TestResolveConflictsKeepsLatestAndAnnotatesOlder(t *testing.T) {
	now := time.Date(2026, 7, 29, 12, 0, 0, 0, time.UTC)
	older := &domain.ProcessedEmail{Metadata: domain.EmailMetadata{Sender: "alice@partner.example", Date: now.Add(-2 * time.Hour), MessageID: "m1"}, RequiresReply: true}
	newer := &domain.ProcessedEmail{Metadata: domain.EmailMetadata{Sender: "alice@partner.example", Date: now, MessageID: "m2"}, RequiresReply: true}

	r := New("22:00", "07:00", nil)
	r.ResolveConflicts([]*domain.ProcessedEmail{older, newer})

	if len(older.ProcessingNotes) == 0 {
		t.Fatal("expected superseded note on older email")
	}
	if older.RequiresReply {
		t.Fatal("expected older email to not require a reply")
	}
	if !newer.RequiresReply {
		t.Fatal("expected newer email to still require a reply")
	}
}

func TestInDNDWrapsMidnight(t *testing.T) {
	r := New("22:00", "07:00", nil)

	late := time.Date(2026, 7, 29, 23, 0, 0, 0, time.UTC)
	early := time.Date(2026, 7, 29, 5, 0, 0, 0, time.UTC)
	midday := time.Date(2026, 7, 29, 13, 0, 0, 0, time.UTC)

	if !r.InDND(late) {
		t.Error("expected 23:00 to be inside DND window")
	}
	if !r.InDND(early) {
		t.Error("expected 05:00 to be inside DND window")
	}
	if r.InDND(midday) {
		t.Error("expected 13:00 to be outside DND window")
	}
}

func TestApplyPermissionModeWithoutSendScope(t *testing.T) {
	if !ApplyPermissionMode([]out.PermissionScope{out.ScopeRead, out.ScopeCompose}) {
		t.Fatal("expected draft_only when send scope is absent")
	}
	if ApplyPermissionMode([]out.PermissionScope{out.ScopeRead, out.ScopeCompose, out.ScopeSend}) {
		t.Fatal("expected non-draft_only when send scope present")
	}
}

type fakeNotifier struct {
	lastKind    out.NotificationKind
	lastPayload map[string]any
}

func (f *fakeNotifier) Notify(ctx context.Context, kind out.NotificationKind, payload map[string]any) error {
	f.lastKind = kind
	f.lastPayload = payload
	return nil
}

func TestEscalateLegalFinanceNotifiesAndBlocksReply(t *testing.T) {
	notifier := &fakeNotifier{}
	r := New("22:00", "07:00", notifier)

	email := &domain.ProcessedEmail{
		Metadata:      domain.EmailMetadata{MessageID: "m1"},
		Intent:        domain.IntentDetection{Intents: map[domain.Intent]bool{domain.IntentLegal: true}},
		Priority:      domain.PriorityScore{Level: domain.PriorityHigh},
		RequiresReply: true,
	}

	r.EscalateLegalFinance(context.Background(), email)

	if email.RequiresReply {
		t.Fatal("expected escalated email to not auto-reply")
	}
	if len(email.SecurityFlags) == 0 {
		t.Fatal("expected an escalation security flag")
	}
	if notifier.lastKind != out.KindEscalation {
		t.Fatalf("expected escalation notification, got %s", notifier.lastKind)
	}
	if notifier.lastPayload["category"] != "legal" {
		t.Errorf("expected category=legal, got %v", notifier.lastPayload["category"])
	}
}

func TestSortQueueOrdering(t *testing.T) {
	now := time.Now()
	a := &domain.ProcessedEmail{Metadata: domain.EmailMetadata{MessageID: "a", Date: now}, Priority: domain.PriorityScore{Level: domain.PriorityHigh, Score: 80}}
	b := &domain.ProcessedEmail{Metadata: domain.EmailMetadata{MessageID: "b", Date: now}, Priority: domain.PriorityScore{Level: domain.PriorityHigh, Score: 90}}
	c := &domain.ProcessedEmail{Metadata: domain.EmailMetadata{MessageID: "c", Date: now}, Priority: domain.PriorityScore{Level: domain.PriorityMedium, Score: 95}}

	emails := []*domain.ProcessedEmail{a, b, c}
	SortQueue(emails)

	if emails[0] != b || emails[1] != a || emails[2] != c {
		t.Fatalf("unexpected order: %s, %s, %s", emails[0].Metadata.MessageID, emails[1].Metadata.MessageID, emails[2].Metadata.MessageID)
	}
}
