package pipeline

import (
	"github.com/goccy/go-json"

	"worker_server/core/domain"
)

// QueueItem is one entry of the output queue (spec.md §6), a flattened
// view of ProcessedEmail suited to serialization.
type QueueItem struct {
	MessageID string                      `json:"message_id"`
	ThreadID  string                      `json:"thread_id"`
	Subject   string                      `json:"subject"`
	Sender    string                      `json:"sender"`
	Category  domain.TriageCategory       `json:"category"`
	Priority  domain.PriorityScore        `json:"priority"`
	Status    domain.ProcessingStatus     `json:"status"`
	Reasoning string                      `json:"reasoning"`
	HasDraft  bool                        `json:"has_draft"`
	DraftID   string                      `json:"draft_id,omitempty"`
	HasPII    bool                        `json:"has_pii"`
	Flags     []domain.SecurityFlag       `json:"security_flags"`
	Notes     []string                    `json:"processing_notes"`
}

// ClarificationItem pairs a message with the questions blocking
// auto-approval (spec.md §6 `clarifications`).
type ClarificationItem struct {
	MessageID string   `json:"message_id"`
	Questions []string `json:"questions"`
	Reason    string   `json:"reason"`
}

// Summary holds the queue-level counts named in spec.md §6.
type Summary struct {
	CountsByLevel map[domain.PriorityLevel]int `json:"counts_by_level"`
	DraftsCreated int                          `json:"drafts_created"`
	Blocked       int                          `json:"blocked"`
}

// BatchInfo is the audit envelope around a Result (spec.md §6 `batch_info`).
type BatchInfo struct {
	BatchID        string    `json:"batch_id"`
	Mode           domain.BatchMode `json:"mode"`
	UserCommand    string    `json:"user_command"`
	StartedAt      string    `json:"started_at"`
	CompletedAt    string    `json:"completed_at,omitempty"`
	TotalProcessed int       `json:"total_processed"`
}

// Result is the run() return value named in spec.md §6:
// {queue, metrics, clarifications, batch_info}.
type Result struct {
	BatchID        string              `json:"batch_id"`
	Summary        Summary             `json:"summary"`
	Items          []QueueItem         `json:"items"`
	Top10          []QueueItem         `json:"top_10_emails"`
	Clarifications []ClarificationItem `json:"clarifications"`
	BatchInfo      BatchInfo           `json:"batch_info"`
	Errors         []string            `json:"errors"`
}

// ToJSON renders the result for the CLI/API boundary.
func (r *Result) ToJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

func toQueueItem(e *domain.ProcessedEmail) QueueItem {
	item := QueueItem{
		MessageID: e.Metadata.MessageID,
		ThreadID:  e.Metadata.ThreadID,
		Subject:   e.Metadata.Subject,
		Sender:    e.Metadata.Sender,
		Category:  e.Category,
		Priority:  e.Priority,
		Status:    e.Status,
		Reasoning: e.Priority.Reasoning,
		HasDraft:  e.DraftReply != nil,
		HasPII:    e.HasPII,
		Flags:     e.SecurityFlags,
		Notes:     e.ProcessingNotes,
	}
	if e.DraftReply != nil {
		item.DraftID = e.DraftReply.DraftID
	}
	return item
}

// assembleResult builds the final Result from an already-sorted batch
// (spec.md §6 output queue format).
func (p *Pipeline) assembleResult(batch *domain.ProcessingBatch) *Result {
	summary := Summary{CountsByLevel: map[domain.PriorityLevel]int{}}
	items := make([]QueueItem, 0, len(batch.Emails))
	var clarifications []ClarificationItem

	for _, e := range batch.Emails {
		items = append(items, toQueueItem(e))
		summary.CountsByLevel[e.Priority.Level]++
		if e.DraftReply != nil {
			summary.DraftsCreated++
		}
		if e.IsBlocked {
			summary.Blocked++
		}
		if e.Clarification != nil {
			clarifications = append(clarifications, ClarificationItem{
				MessageID: e.Metadata.MessageID,
				Questions: e.Clarification.Questions,
				Reason:    e.Clarification.Reason,
			})
		}
	}

	top := items
	if len(top) > 10 {
		top = top[:10]
	}

	info := BatchInfo{
		BatchID:        batch.BatchID.String(),
		Mode:           batch.Mode,
		UserCommand:    batch.UserCommand,
		StartedAt:      batch.StartedAt.Format("2006-01-02T15:04:05Z07:00"),
		TotalProcessed: batch.TotalProcessed,
	}
	if batch.CompletedAt != nil {
		info.CompletedAt = batch.CompletedAt.Format("2006-01-02T15:04:05Z07:00")
	}

	return &Result{
		BatchID:        batch.BatchID.String(),
		Summary:        summary,
		Items:          items,
		Top10:          top,
		Clarifications: clarifications,
		BatchInfo:      info,
		Errors:         batch.Errors,
	}
}
