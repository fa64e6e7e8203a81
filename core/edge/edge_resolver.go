// Package edge implements EdgeResolver (C7): conflict resolution, DND,
// permission mode downgrade, and legal/finance escalation.
package edge

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"worker_server/core/domain"
	"worker_server/core/port/out"
)

// EdgeResolver implements spec.md §4.6.
type EdgeResolver struct {
	dndStart, dndEnd string // "HH:MM", local time
	notifier         out.ChatNotifierPort
}

func New(dndStart, dndEnd string, notifier out.ChatNotifierPort) *EdgeResolver {
	return &EdgeResolver{dndStart: dndStart, dndEnd: dndEnd, notifier: notifier}
}

// ResolveConflicts keeps the most recent email per sender; older ones are
// annotated as superseded and excluded from reply drafting, but stay in
// the batch.
func (r *EdgeResolver) ResolveConflicts(emails []*domain.ProcessedEmail) {
	latestBySender := map[string]*domain.ProcessedEmail{}
	for _, e := range emails {
		sender := strings.ToLower(e.Metadata.Sender)
		cur, ok := latestBySender[sender]
		if !ok || e.Metadata.Date.After(cur.Metadata.Date) {
			latestBySender[sender] = e
		}
	}
	for _, e := range emails {
		sender := strings.ToLower(e.Metadata.Sender)
		if latestBySender[sender] != e {
			e.AddNote("Superseded by a newer email from the same sender")
			e.RequiresReply = false
		}
	}
}

// InDND reports whether t falls inside the configured do-not-disturb
// window. The window may wrap midnight (e.g. 22:00-07:00).
func (r *EdgeResolver) InDND(t time.Time) bool {
	start, okS := parseHHMM(r.dndStart)
	end, okE := parseHHMM(r.dndEnd)
	if !okS || !okE {
		return false
	}
	cur := t.Hour()*60 + t.Minute()
	if start <= end {
		return cur >= start && cur < end
	}
	return cur >= start || cur < end
}

func parseHHMM(s string) (minutes int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, false
	}
	h, errH := strconv.Atoi(parts[0])
	m, errM := strconv.Atoi(parts[1])
	if errH != nil || errM != nil {
		return 0, false
	}
	return h*60 + m, true
}

// ApplyPermissionMode reports whether the batch mode must become draft_only
// (no send scope granted). It does not touch drafts; the caller sets
// requires_approval.
func ApplyPermissionMode(scopes []out.PermissionScope) (draftOnly bool) {
	for _, s := range scopes {
		if s == out.ScopeSend {
			return false
		}
	}
	return true
}

// EscalateLegalFinance emits an escalation flag and a best-effort chat
// notification when a legal/finance-intent email reaches HIGH priority;
// no auto-reply is produced for those messages.
func (r *EdgeResolver) EscalateLegalFinance(ctx context.Context, e *domain.ProcessedEmail) {
	isLegalFinance := e.Intent.Has(domain.IntentLegal) || e.Intent.Has(domain.IntentFinance)
	if !isLegalFinance || e.Priority.Level != domain.PriorityHigh {
		return
	}

	category := "finance"
	if e.Intent.Has(domain.IntentLegal) {
		category = "legal"
	}

	e.AddFlag(domain.SecurityFlag{
		FlagType: domain.FlagLegalFinanceEscalation, Severity: domain.SeverityHigh,
		Description: "legal/finance email at HIGH priority requires human review",
	})
	e.RequiresReply = false

	if r.notifier == nil {
		return
	}
	_ = r.notifier.Notify(ctx, out.KindEscalation, map[string]any{
		"message_id": e.Metadata.MessageID,
		"category":   category,
		"severity":   string(domain.SeverityHigh),
	})
}

// SortQueue orders processed emails by (priority_level DESC, score DESC,
// date DESC, message_id ASC), spec.md §5.
func SortQueue(emails []*domain.ProcessedEmail) {
	rank := map[domain.PriorityLevel]int{
		domain.PriorityHigh: 3, domain.PriorityMedium: 2,
		domain.PriorityLow: 1, domain.PriorityNotRequired: 0,
	}
	sort.SliceStable(emails, func(i, j int) bool {
		a, b := emails[i], emails[j]
		if rank[a.Priority.Level] != rank[b.Priority.Level] {
			return rank[a.Priority.Level] > rank[b.Priority.Level]
		}
		if a.Priority.Score != b.Priority.Score {
			return a.Priority.Score > b.Priority.Score
		}
		if !a.Metadata.Date.Equal(b.Metadata.Date) {
			return a.Metadata.Date.After(b.Metadata.Date)
		}
		return a.Metadata.MessageID < b.Metadata.MessageID
	})
}
