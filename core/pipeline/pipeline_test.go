package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"worker_server/config"
	"worker_server/core/domain"
	"worker_server/core/port/out"
)

type fakeMailbox struct {
	emails  []domain.EmailMetadata
	scopes  []out.PermissionScope
	ownDom  string
	drafted int
}

func (m *fakeMailbox) List(ctx context.Context, query string, maxResults, timeRangeDays int) ([]out.MessageRef, error) {
	refs := make([]out.MessageRef, 0, len(m.emails))
	for _, e := range m.emails {
		refs = append(refs, out.MessageRef{MessageID: e.MessageID, ThreadID: e.ThreadID})
	}
	return refs, nil
}

func (m *fakeMailbox) Fetch(ctx context.Context, ref out.MessageRef) (*domain.EmailMetadata, error) {
	for _, e := range m.emails {
		if e.MessageID == ref.MessageID {
			cp := e
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *fakeMailbox) CreateDraft(ctx context.Context, to, cc []string, subject, body string) (string, error) {
	m.drafted++
	return "draft-id", nil
}

func (m *fakeMailbox) Send(ctx context.Context, draftID string, approval out.ApprovalStatus) error {
	return nil
}

func (m *fakeMailbox) Scopes(ctx context.Context) ([]out.PermissionScope, error) {
	return m.scopes, nil
}

func (m *fakeMailbox) OwnDomain(ctx context.Context) (string, error) {
	return m.ownDom, nil
}

type fakeLLM struct{ err error }

func (f fakeLLM) Generate(ctx context.Context, prompt string, timeout time.Duration) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return "Thanks, I'll take a look and reply shortly.", nil
}

type fakeChat struct{ notified []out.NotificationKind }

func (f *fakeChat) Notify(ctx context.Context, kind out.NotificationKind, payload map[string]any) error {
	f.notified = append(f.notified, kind)
	return nil
}

type fakeTracker struct{ escalations int }

func (f *fakeTracker) LogEmail(ctx context.Context, summary string) error    { return nil }
func (f *fakeTracker) LogBatch(ctx context.Context, summary string) error    { return nil }
func (f *fakeTracker) LogEscalation(ctx context.Context, details map[string]any) error {
	f.escalations++
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		OwnDomain:         "company.com",
		AllowedDomains:    []string{"company.com"},
		DNDStart:          "22:00",
		DNDEnd:            "07:00",
		BatchDeadlineSec:  30,
		DrafterMaxWorkers: 2,
		LLMTimeoutSec:     5,
	}
}

func newTestPipeline(mailbox out.MailboxPort, llm out.LLMPort, chat out.ChatNotifierPort, tracker out.TaskTrackerPort) *Pipeline {
	return newTestPipelineWithTables(config.DefaultTables(), mailbox, llm, chat, tracker)
}

func newTestPipelineWithTables(tables *config.Tables, mailbox out.MailboxPort, llm out.LLMPort, chat out.ChatNotifierPort, tracker out.TaskTrackerPort) *Pipeline {
	return New(testConfig(), tables, out.SystemClock{}, mailbox, llm, chat, tracker, nil, nil, nil, zerolog.Nop())
}

func findItem(items []QueueItem, id string) *QueueItem {
	for i := range items {
		if items[i].MessageID == id {
			return &items[i]
		}
	}
	return nil
}

// Scenario 1 (spec.md §8): VIP + urgent finance email → HIGH, external
// sender flag present, requires_reply=true.
func TestScenario1VIPUrgentFinanceIsHigh(t *testing.T) {
	mailbox := &fakeMailbox{
		scopes: []out.PermissionScope{out.ScopeRead, out.ScopeCompose, out.ScopeSend},
		emails: []domain.EmailMetadata{{
			MessageID: "m1", Sender: "cfo@google.com",
			Subject: "URGENT: Payment due tomorrow",
			Body:    "Please process this invoice by EOD.",
			Date:    time.Now().Add(-10 * time.Minute),
		}},
	}
	tables := config.DefaultTables()
	tables.Sender.VIPDomains = append(tables.Sender.VIPDomains, "google.com")
	p := newTestPipelineWithTables(tables, mailbox, fakeLLM{}, nil, nil)

	result, err := p.Run(context.Background(), "check urgent mail", domain.DefaultUserScope())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item := findItem(result.Items, "m1")
	if item == nil {
		t.Fatal("expected item m1 in result")
	}
	if item.Priority.Level != domain.PriorityHigh {
		t.Fatalf("expected HIGH, got %s (score %d)", item.Priority.Level, item.Priority.Score)
	}
	hasExternal := false
	for _, f := range item.Flags {
		if f.FlagType == domain.FlagExternalSender {
			hasExternal = true
		}
	}
	if !hasExternal {
		t.Error("expected external sender flag for a draft to an external domain")
	}
}

// Scenario 2 (spec.md §8): vendor newsletter with low signal → NOT_REQUIRED.
func TestScenario2VendorNewsletterNotRequired(t *testing.T) {
	mailbox := &fakeMailbox{
		scopes: []out.PermissionScope{out.ScopeRead, out.ScopeCompose, out.ScopeSend},
		emails: []domain.EmailMetadata{{
			MessageID: "m2", Sender: "newsletter@marketingco.example",
			Subject: "Weekly newsletter", Body: "Here is our weekly roundup of product updates for you.",
			Date: time.Now().Add(-5 * 24 * time.Hour),
		}},
	}
	p := newTestPipeline(mailbox, fakeLLM{}, nil, nil)

	result, err := p.Run(context.Background(), "check mail", domain.DefaultUserScope())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item := findItem(result.Items, "m2")
	if item == nil {
		t.Fatal("expected item m2 in result")
	}
	if item.Priority.Level != domain.PriorityNotRequired {
		t.Fatalf("expected NOT_REQUIRED, got %s (score %d)", item.Priority.Level, item.Priority.Score)
	}
	if item.HasDraft {
		t.Error("expected no draft for a NOT_REQUIRED email")
	}
}

// Scenario 3 (spec.md §8): two emails from the same sender in one batch;
// the older is superseded and gets no draft, the newer does.
func TestScenario3ConflictResolutionSupersedesOlder(t *testing.T) {
	now := time.Now()
	mailbox := &fakeMailbox{
		scopes: []out.PermissionScope{out.ScopeRead, out.ScopeCompose, out.ScopeSend},
		emails: []domain.EmailMetadata{
			{MessageID: "older", Sender: "alice@partner.example", Subject: "Following up", Body: "Can you confirm the contract status today? Please let me know.", Date: now.Add(-2 * time.Hour)},
			{MessageID: "newer", Sender: "alice@partner.example", Subject: "Following up", Body: "Can you confirm the contract status today? Please let me know.", Date: now},
		},
	}
	p := newTestPipeline(mailbox, fakeLLM{}, nil, nil)

	result, err := p.Run(context.Background(), "check mail", domain.DefaultUserScope())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	older := findItem(result.Items, "older")
	newer := findItem(result.Items, "newer")
	if older == nil || newer == nil {
		t.Fatal("expected both emails to remain in the queue")
	}
	if older.HasDraft {
		t.Error("expected the superseded (older) email to have no draft")
	}
	if !newer.HasDraft {
		t.Error("expected the newer email to have a draft")
	}
}

// Scenario 4 (spec.md §8): external sender, PII in body, draft generated
// → reply-all-risk critical, is_blocked=true.
func TestScenario4PIIPlusExternalBlocks(t *testing.T) {
	mailbox := &fakeMailbox{
		scopes: []out.PermissionScope{out.ScopeRead, out.ScopeCompose, out.ScopeSend},
		emails: []domain.EmailMetadata{{
			MessageID: "m4", Sender: "bob@outside.example",
			Subject: "URGENT: card charge issue", Body: "please charge my card 4111111111111111",
			Date: time.Now(),
		}},
	}
	p := newTestPipeline(mailbox, fakeLLM{}, nil, nil)

	result, err := p.Run(context.Background(), "check mail", domain.DefaultUserScope())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item := findItem(result.Items, "m4")
	if item == nil {
		t.Fatal("expected item m4 in result")
	}
	if !item.HasPII {
		t.Fatal("expected PII to be detected")
	}
	blocked := false
	for _, f := range item.Flags {
		if f.BlocksSending {
			blocked = true
		}
	}
	if !blocked {
		t.Error("expected a blocking security flag for PII + external recipient")
	}
	if item.Status != domain.StatusBlocked {
		t.Errorf("expected status BLOCKED, got %s", item.Status)
	}
}

// Scenario 5 (spec.md §8): legal intent at HIGH priority escalates; chat
// notifier gets an escalation event, no auto-draft.
func TestScenario5LegalEscalationNotifiesAndSkipsDraft(t *testing.T) {
	mailbox := &fakeMailbox{
		ownDom: "company.com",
		scopes: []out.PermissionScope{out.ScopeRead, out.ScopeCompose, out.ScopeSend},
		emails: []domain.EmailMetadata{{
			MessageID: "m5", Sender: "ceo@company.com",
			Subject: "Re: Contract", Body: "Our attorney flagged a breach of contract clause, action required urgently.",
			Date: time.Now(),
		}},
	}
	chat := &fakeChat{}
	tracker := &fakeTracker{}
	p := newTestPipeline(mailbox, fakeLLM{}, chat, tracker)

	result, err := p.Run(context.Background(), "check mail", domain.DefaultUserScope())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item := findItem(result.Items, "m5")
	if item == nil {
		t.Fatal("expected item m5 in result")
	}
	if item.HasDraft {
		t.Error("expected no auto-draft for an escalated legal/finance email")
	}
	foundEscalation := false
	for _, f := range item.Flags {
		if f.FlagType == domain.FlagLegalFinanceEscalation {
			foundEscalation = true
		}
	}
	if !foundEscalation {
		t.Error("expected a legal/finance escalation flag")
	}
	notified := false
	for _, k := range chat.notified {
		if k == out.KindEscalation {
			notified = true
		}
	}
	if !notified {
		t.Error("expected the chat notifier to receive an escalation event")
	}
}

// Scenario 6 (spec.md §8): LLM error during drafting of a question-intent
// email falls back to the fixed template; requires_approval stays true
// and the queue is still produced.
func TestScenario6LLMTimeoutFallsBackToTemplate(t *testing.T) {
	mailbox := &fakeMailbox{
		scopes: []out.PermissionScope{out.ScopeRead, out.ScopeCompose, out.ScopeSend},
		emails: []domain.EmailMetadata{{
			MessageID: "m6", Sender: "bob@company.com",
			Subject: "Quick question", Body: "Can you clarify the rollout date?",
			Date: time.Now(),
		}},
	}
	p := newTestPipeline(mailbox, fakeLLM{err: context.DeadlineExceeded}, nil, nil)

	result, err := p.Run(context.Background(), "check mail", domain.DefaultUserScope())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item := findItem(result.Items, "m6")
	if item == nil {
		t.Fatal("expected item m6 in result")
	}
	if !item.HasDraft {
		t.Fatal("expected a fallback draft to still be produced")
	}
	if item.Status != domain.StatusApprovalRequired {
		t.Errorf("expected APPROVAL_REQUIRED, got %s", item.Status)
	}
}

func TestRunProducesBatchInfoAndSummary(t *testing.T) {
	mailbox := &fakeMailbox{
		scopes: []out.PermissionScope{out.ScopeRead, out.ScopeCompose},
		emails: []domain.EmailMetadata{{
			MessageID: "m7", Sender: "vendor@acme.example",
			Subject: "Invoice attached", Body: "please review",
			Date: time.Now(),
		}},
	}
	p := newTestPipeline(mailbox, fakeLLM{}, nil, nil)

	result, err := p.Run(context.Background(), "check mail", domain.DefaultUserScope())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.BatchInfo.BatchID == "" {
		t.Error("expected a non-empty batch id")
	}
	if result.BatchInfo.Mode != domain.BatchModeDraftOnly {
		t.Errorf("expected draft_only mode without send scope, got %s", result.BatchInfo.Mode)
	}
	if len(result.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(result.Items))
	}
}
