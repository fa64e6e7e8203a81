package out

import (
	"context"
	"time"

	"worker_server/core/domain"
)

// MessageRef is a lightweight pointer to a mailbox message, returned by
// List before the full body is fetched.
type MessageRef struct {
	MessageID string
	ThreadID  string
}

// PermissionScope is a capability the mailbox grants the pipeline.
type PermissionScope string

const (
	ScopeRead    PermissionScope = "read"
	ScopeCompose PermissionScope = "compose"
	ScopeSend    PermissionScope = "send"
)

// ApprovalStatus gates MailboxPort.Send; only APPROVED may mutate state.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "PENDING"
	ApprovalApproved ApprovalStatus = "APPROVED"
)

// MailboxPort is the out-of-process mailbox capability (spec.md §6).
// Gmail/Outlook adapters implement this; the core never sees MIME detail.
type MailboxPort interface {
	List(ctx context.Context, query string, maxResults, timeRangeDays int) ([]MessageRef, error)
	Fetch(ctx context.Context, ref MessageRef) (*domain.EmailMetadata, error)
	CreateDraft(ctx context.Context, to, cc []string, subject, body string) (draftID string, err error)
	Send(ctx context.Context, draftID string, approval ApprovalStatus) error
	Scopes(ctx context.Context) ([]PermissionScope, error)
	// OwnDomain returns the authenticated account's domain, used to
	// classify SenderType=TEAM when config does not override it.
	OwnDomain(ctx context.Context) (string, error)
}

// LLMPort is the scoped language-model caller (spec.md §6). Prompts are
// anonymized by the caller before this is invoked; this interface never
// sees raw PII if the Drafter does its job.
type LLMPort interface {
	Generate(ctx context.Context, prompt string, timeout time.Duration) (string, error)
}

// NotificationKind is the chat notifier's event taxonomy (spec.md §6).
type NotificationKind string

const (
	KindUrgent        NotificationKind = "urgent"
	KindVIP           NotificationKind = "vip"
	KindEscalation    NotificationKind = "escalation"
	KindBatchSummary  NotificationKind = "batch_summary"
	KindClarification NotificationKind = "clarification"
)

// ChatNotifierPort is a best-effort async notification sink.
type ChatNotifierPort interface {
	Notify(ctx context.Context, kind NotificationKind, payload map[string]any) error
}

// TaskTrackerPort logs triage activity to an external tracker. Duplicates
// are acceptable; idempotency is not required (spec.md §6).
type TaskTrackerPort interface {
	LogEmail(ctx context.Context, summary string) error
	LogBatch(ctx context.Context, summary string) error
	LogEscalation(ctx context.Context, details map[string]any) error
}

// MemoryRecord is a single retrieved/written vector-memory example.
type MemoryRecord struct {
	Text      string
	Embedding []float32
	Metadata  map[string]string
}

// VectorMemoryPort is optional long-term memory. When unavailable the
// adapter returns an empty result and nil error (spec.md §6) — the
// pipeline never treats memory absence as a failure.
type VectorMemoryPort interface {
	Retrieve(ctx context.Context, queryEmbedding []float32, k int) ([]MemoryRecord, error)
	Write(ctx context.Context, record MemoryRecord) error
}

// SenderFrequencyPort is the best-effort signal surfaced from the Redis-backed
// frequency tracker; it feeds processing_notes only, never PriorityScore,
// to keep scoring deterministic.
type SenderFrequencyPort interface {
	RecordAndCount(ctx context.Context, sender string, window time.Duration) (count int, err error)
}

// AuditPort persists a completed batch's final state for audit/replay.
// Best-effort: a write failure is logged and never affects the batch
// result already returned to the caller.
type AuditPort interface {
	RecordBatch(ctx context.Context, batch *domain.ProcessingBatch) error
}

// Clock supplies now() to the priority scorer so age calculations stay
// deterministic under test.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock, backed by time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }
