// Package pipeline implements Pipeline (C9): per-email stage ordering,
// per-batch orchestration, and output-queue assembly.
package pipeline

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/pool"
	"github.com/rs/zerolog"

	"worker_server/config"
	"worker_server/core/categorize"
	"worker_server/core/classify"
	"worker_server/core/domain"
	"worker_server/core/draft"
	"worker_server/core/edge"
	"worker_server/core/guardrails"
	"worker_server/core/intent"
	"worker_server/core/port/out"
	"worker_server/core/priority"
)

// Pipeline wires C2-C8 around the per-email/per-batch stage boundary
// described in spec.md §5: ingest → {C2,C3,C4,C5} per email (concurrent,
// pure) → C7 pass 1 (conflict + escalation, a barrier) → C8 draft (its
// own bounded pool) → C6 guardrails → C7 pass 2 (DND, permission mode) →
// queue assembly → best-effort notifications.
type Pipeline struct {
	cfg   *config.Config
	clock out.Clock

	sender  *classify.SenderClassifier
	intent  *intent.IntentScanner
	scorer  *priority.PriorityScorer
	spam    *categorize.SpamFilter
	categ   *categorize.Categorizer
	pii     *guardrails.PIIDetector
	domains *guardrails.DomainChecker
	tone    *guardrails.ToneEnforcer
	resolv  *edge.EdgeResolver
	drafter *draft.Drafter

	mailbox out.MailboxPort
	chat    out.ChatNotifierPort
	tracker out.TaskTrackerPort
	freq    out.SenderFrequencyPort
	memory  out.VectorMemoryPort
	audit   out.AuditPort

	workers      int
	draftWorkers int

	log zerolog.Logger
}

// New builds a Pipeline from static config tables and the external
// capabilities it depends on. llm/chat/tracker may be nil; the pipeline
// degrades to template-only drafting and skips notifications. With a nil
// mailbox, Run and Approve return an error.
func New(cfg *config.Config, tables *config.Tables, clock out.Clock, mailbox out.MailboxPort, llm out.LLMPort, chat out.ChatNotifierPort, tracker out.TaskTrackerPort, freq out.SenderFrequencyPort, memory out.VectorMemoryPort, audit out.AuditPort, log zerolog.Logger) *Pipeline {
	if clock == nil {
		clock = out.SystemClock{}
	}
	pii := guardrails.NewPIIDetector(tables.Guardrails)
	ownDomain := cfg.OwnDomain
	if ownDomain == "" && mailbox != nil {
		if d, err := mailbox.OwnDomain(context.Background()); err == nil {
			ownDomain = d
		}
	}

	return &Pipeline{
		cfg:   cfg,
		clock: clock,

		sender:  classify.New(tables.Sender, ownDomain),
		intent:  intent.New(tables.Intent),
		scorer:  priority.New(tables.Priority, clock),
		spam:    categorize.NewSpamFilter(tables.Category),
		categ:   categorize.NewCategorizer(),
		pii:     pii,
		domains: guardrails.NewDomainChecker(cfg.AllowedDomains),
		tone:    guardrails.NewToneEnforcer(tables.Guardrails),
		resolv:  edge.New(cfg.DNDStart, cfg.DNDEnd, chat),
		drafter: draft.New(llm, pii, cfg.LLMTimeout()),

		mailbox: mailbox,
		chat:    chat,
		tracker: tracker,
		freq:    freq,
		memory:  memory,
		audit:   audit,

		workers:      4,
		draftWorkers: max(1, cfg.DrafterMaxWorkers),

		log: log.With().Str("component", "triage_pipeline").Logger(),
	}
}

// Run executes one full batch: ingest, per-email classification, batch
// barriers, drafting, guardrails, queue assembly and best-effort
// notifications (spec.md §6 run(user_command, user_scope)).
func (p *Pipeline) Run(ctx context.Context, userCommand string, scope domain.UserScope) (*Result, error) {
	batch := domain.NewProcessingBatch(userCommand, scope, p.clock.Now())

	ctx, cancel := context.WithTimeout(ctx, p.cfg.BatchDeadline())
	defer cancel()

	if err := p.ingest(ctx, batch, scope); err != nil {
		return nil, fmt.Errorf("ingestion failed: %w", err)
	}

	p.runPerEmailStages(ctx, batch.Emails)

	p.resolv.ResolveConflicts(batch.Emails)
	for _, e := range batch.Emails {
		if e.IsSpam {
			continue
		}
		p.resolv.EscalateLegalFinance(ctx, e)
	}

	p.draftEligible(ctx, batch.Emails)
	p.applyGuardrails(batch.Emails)
	p.finalizeStatus(batch.Emails)

	draftOnly := p.applyPermissionAndDND(ctx, batch.Emails)
	if draftOnly {
		batch.Mode = domain.BatchModeDraftOnly
	}

	edge.SortQueue(batch.Emails)

	now := p.clock.Now()
	batch.CompletedAt = &now
	batch.TotalProcessed = len(batch.Emails)

	result := p.assembleResult(batch)

	p.notifyBestEffort(batch, result)

	return result, nil
}

// Approve sends a previously created draft once a human has approved it
// (spec.md §4.7's requires_approval gate; the pipeline never sends on its
// own).
func (p *Pipeline) Approve(ctx context.Context, draftID string) error {
	if p.mailbox == nil {
		return fmt.Errorf("no mailbox capability configured")
	}
	return p.mailbox.Send(ctx, draftID, out.ApprovalApproved)
}

// ingest fetches message refs and their full metadata. A List failure
// aborts the batch (spec.md §7); per-message Fetch failures are recorded
// in batch.Errors and the offending email is skipped.
func (p *Pipeline) ingest(ctx context.Context, batch *domain.ProcessingBatch, scope domain.UserScope) error {
	if p.mailbox == nil {
		return fmt.Errorf("no mailbox capability configured")
	}
	refs, err := p.mailbox.List(ctx, scope.Query, scope.MaxResults, scope.TimeRangeDays)
	if err != nil {
		return err
	}
	for _, ref := range refs {
		meta, err := p.mailbox.Fetch(ctx, ref)
		if err != nil {
			batch.Errors = append(batch.Errors, fmt.Sprintf("fetch %s: %v", ref.MessageID, err))
			continue
		}
		batch.Emails = append(batch.Emails, &domain.ProcessedEmail{
			Metadata: *meta,
			Status:   domain.StatusPending,
		})
	}
	return nil
}

type emailJob struct{ email *domain.ProcessedEmail }

type stageWorker struct{ p *Pipeline }

func (w *stageWorker) Do(ctx context.Context, job *emailJob) error {
	w.p.classifyAndScore(job.email)
	w.p.noteSenderFrequency(ctx, job.email)
	return nil
}

// noteSenderFrequency attaches a best-effort "seen N times today" note.
// It never feeds PriorityScore (spec.md §4.4 is a closed, deterministic
// formula) and a tracker failure is silently dropped.
func (p *Pipeline) noteSenderFrequency(ctx context.Context, e *domain.ProcessedEmail) {
	if p.freq == nil {
		return
	}
	count, err := p.freq.RecordAndCount(ctx, e.Metadata.Sender, 24*time.Hour)
	if err != nil {
		return
	}
	if count > 1 {
		e.AddNote(fmt.Sprintf("sender seen %d times in the last 24h", count))
	}
}

// runPerEmailStages runs C2→C3→C4→C5 concurrently over emails (pure,
// no I/O); results are written in place so the slice's original
// ingestion order is preserved regardless of completion order.
func (p *Pipeline) runPerEmailStages(ctx context.Context, emails []*domain.ProcessedEmail) {
	if len(emails) == 0 {
		return
	}
	workers := p.workers
	if workers > len(emails) {
		workers = len(emails)
	}

	wp := pool.New[*emailJob](workers, &stageWorker{p: p}).WithContinueOnError()
	if err := wp.Go(ctx); err != nil {
		p.log.Error().Err(err).Msg("stage pool failed to start, falling back to sequential")
		for _, e := range emails {
			p.classifyAndScore(e)
		}
		return
	}
	for _, e := range emails {
		wp.Submit(&emailJob{email: e})
	}
	if err := wp.Close(ctx); err != nil {
		p.log.Warn().Err(err).Msg("stage pool closed with error")
	}
}

// classifyAndScore runs the strict per-email order C2 → C3 → C4 → C5
// (spec.md §5).
func (p *Pipeline) classifyAndScore(e *domain.ProcessedEmail) {
	e.Status = domain.StatusProcessing

	e.Classification = p.sender.Classify(e.Metadata.Sender)
	e.Intent = p.intent.Scan(e.Metadata.Subject, e.Metadata.Body)
	e.Priority = p.scorer.Score(e.Metadata, e.Classification, e.Intent)

	if p.spam.IsSpam(e.Classification, e.Metadata.Subject, e.Metadata.Body) {
		e.IsSpam = true
		e.IsBlocked = true
		e.RequiresReply = false
		e.Status = domain.StatusBlocked
		e.AddNote("blocked by spam filter")
		return
	}

	e.Category = p.categ.Categorize(e.Intent, e.Priority.Level)
	e.RequiresReply = e.Priority.Level != domain.PriorityNotRequired
}

type draftJob struct{ email *domain.ProcessedEmail }

type draftWorker struct {
	p   *Pipeline
	now time.Time
}

func (w *draftWorker) Do(ctx context.Context, job *draftJob) error {
	e := job.email
	reply := w.p.drafter.Draft(ctx, e.Metadata, e.Intent, w.now)

	if w.p.mailbox != nil {
		if draftID, err := w.p.mailbox.CreateDraft(ctx, reply.Recipients, reply.CC, reply.Subject, reply.Body); err != nil {
			e.AddNote("draft persistence failed: " + err.Error())
		} else {
			reply.DraftID = draftID
		}
	}
	e.DraftReply = &reply

	if w.p.memory != nil {
		_ = w.p.memory.Write(ctx, out.MemoryRecord{
			Text: reply.Body,
			Metadata: map[string]string{
				"id":      e.Metadata.MessageID,
				"subject": reply.Subject,
				"intent":  string(e.Intent.PrimaryIntent),
			},
		})
	}
	return nil
}

// draftEligible runs C8 over emails with requires_reply=true and not
// blocked, using its own bounded pool sized to config.DrafterMaxWorkers
// (spec.md §9's concurrency note).
func (p *Pipeline) draftEligible(ctx context.Context, emails []*domain.ProcessedEmail) {
	var eligible []*domain.ProcessedEmail
	for _, e := range emails {
		if !e.IsSpam && !e.IsBlocked && e.RequiresReply {
			eligible = append(eligible, e)
		}
	}
	if len(eligible) == 0 {
		return
	}
	workers := p.draftWorkers
	if workers > len(eligible) {
		workers = len(eligible)
	}

	wp := pool.New[*draftJob](workers, &draftWorker{p: p, now: p.clock.Now()}).WithContinueOnError()
	if err := wp.Go(ctx); err != nil {
		p.log.Error().Err(err).Msg("draft pool failed to start, falling back to sequential")
		w := &draftWorker{p: p, now: p.clock.Now()}
		for _, e := range eligible {
			_ = w.Do(ctx, &draftJob{email: e})
		}
		return
	}
	for _, e := range eligible {
		wp.Submit(&draftJob{email: e})
	}
	if err := wp.Close(ctx); err != nil {
		p.log.Warn().Err(err).Msg("draft pool closed with error")
	}
}

// applyGuardrails is C6: it runs only on emails that now carry a draft,
// since tone and reply-all checks read the generated content.
func (p *Pipeline) applyGuardrails(emails []*domain.ProcessedEmail) {
	for _, e := range emails {
		if e.DraftReply == nil {
			continue
		}
		reply := e.DraftReply

		if found, kinds := p.pii.Detect(e.Metadata.Body + " " + reply.Body); found {
			e.HasPII = true
			e.AddFlag(domain.SecurityFlag{
				FlagType: domain.FlagPIIDetected, Severity: domain.SeverityMedium,
				Description: "PII detected: " + strings.Join(kinds, ", "),
			})
		}

		sensitive := e.Category == domain.TriageLegal || e.Category == domain.TriageFinance
		external := p.domains.ExternalRecipients(append(append([]string{}, reply.Recipients...), reply.CC...))

		if len(external) > 0 {
			e.AddFlag(domain.SecurityFlag{
				FlagType: domain.FlagExternalSender, Severity: domain.SeverityLow,
				Description: "draft addressed to an external domain",
			})
		}

		if approved, issues := p.tone.Check(reply.Body); !approved {
			e.AddFlag(domain.SecurityFlag{
				FlagType: domain.FlagToneViolation, Severity: domain.SeverityMedium,
				Description: strings.Join(issues, "; "), BlocksSending: true,
			})
		}

		if flag := guardrails.ReplyAllRisk(guardrails.ReplyAllRiskInput{
			HasPII:            e.HasPII,
			SensitiveCategory: sensitive,
			TotalRecipients:   len(reply.Recipients) + len(reply.CC),
			ExternalCount:     len(external),
			OriginalListSize:  len(e.Metadata.Recipients) + len(e.Metadata.CC),
		}); flag != nil {
			e.AddFlag(*flag)
		}

		if e.Classification.SenderType == domain.SenderUnknown {
			e.Clarification = &domain.ClarificationRequest{
				Questions: []string{"This sender could not be confidently classified — send this reply?"},
				Reason:    "sender classification confidence below threshold",
			}
		}
	}
}

// finalizeStatus assigns the terminal ProcessedEmail.Status per the state
// machine in spec.md §4.7. requires_approval is always true on a created
// draft (step 4), so a successfully drafted, non-blocked email always
// lands in APPROVAL_REQUIRED rather than DRAFT_READY.
func (p *Pipeline) finalizeStatus(emails []*domain.ProcessedEmail) {
	for _, e := range emails {
		switch {
		case e.IsBlocked:
			e.Status = domain.StatusBlocked
		case e.DraftReply != nil:
			e.DraftReply.RequiresApproval = true
			e.Status = domain.StatusApprovalRequired
		default:
			e.Status = domain.StatusDraftReady
		}
	}
}

// applyPermissionAndDND is C7's second pass: permission-mode downgrade
// and the DND window check, both of which only matter once a draft
// exists. Returns whether the batch must be labeled draft_only.
func (p *Pipeline) applyPermissionAndDND(ctx context.Context, emails []*domain.ProcessedEmail) bool {
	scopes := []out.PermissionScope{}
	if p.mailbox != nil {
		if s, err := p.mailbox.Scopes(ctx); err == nil {
			scopes = s
		}
	}
	draftOnly := edge.ApplyPermissionMode(scopes)

	inDND := p.resolv.InDND(p.clock.Now())
	for _, e := range emails {
		if e.DraftReply == nil {
			continue
		}
		e.DraftReply.RequiresApproval = true
		if draftOnly {
			e.AddNote("draft_only mode: send scope unavailable")
		}
		if inDND {
			external := p.domains.ExternalRecipients(e.DraftReply.Recipients)
			if len(external) > 0 {
				e.AddNote("do-not-disturb window active: follow-up scheduled instead of auto-approval")
			}
		}
	}
	return draftOnly
}

// notifyBestEffort fires chat and tracker notifications concurrently,
// after queue assembly. Failures (including panics) never affect the
// batch result (spec.md §5).
func (p *Pipeline) notifyBestEffort(batch *domain.ProcessingBatch, result *Result) {
	var wg sync.WaitGroup
	notifyCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, e := range batch.Emails {
		if p.chat == nil {
			break
		}
		if e.Priority.Level == domain.PriorityHigh {
			wg.Add(1)
			go p.safeNotify(&wg, notifyCtx, out.KindUrgent, map[string]any{"message_id": e.Metadata.MessageID, "score": e.Priority.Score})
		}
		if e.Classification.IsVIP {
			wg.Add(1)
			go p.safeNotify(&wg, notifyCtx, out.KindVIP, map[string]any{"message_id": e.Metadata.MessageID, "sender": e.Metadata.Sender})
		}
	}

	if p.chat != nil {
		wg.Add(1)
		go p.safeNotify(&wg, notifyCtx, out.KindBatchSummary, map[string]any{
			"batch_id": batch.BatchID.String(), "summary": result.Summary,
		})
	}

	if p.tracker != nil {
		wg.Add(1)
		go p.safeLogBatch(&wg, notifyCtx, batch)
	}

	if p.audit != nil {
		wg.Add(1)
		go p.safeRecordBatch(&wg, notifyCtx, batch)
	}

	wg.Wait()
}

func (p *Pipeline) safeRecordBatch(wg *sync.WaitGroup, ctx context.Context, batch *domain.ProcessingBatch) {
	defer wg.Done()
	defer func() {
		if r := recover(); r != nil {
			p.log.Error().Interface("panic", r).Msg("batch audit write panicked, ignoring")
		}
	}()
	if err := p.audit.RecordBatch(ctx, batch); err != nil {
		p.log.Warn().Err(err).Str("batch_id", batch.BatchID.String()).Msg("batch audit write failed")
	}
}

func (p *Pipeline) safeNotify(wg *sync.WaitGroup, ctx context.Context, kind out.NotificationKind, payload map[string]any) {
	defer wg.Done()
	defer func() {
		if r := recover(); r != nil {
			p.log.Error().Interface("panic", r).Msg("notifier panicked, ignoring")
		}
	}()
	if err := p.chat.Notify(ctx, kind, payload); err != nil {
		p.log.Warn().Err(err).Str("kind", string(kind)).Msg("notification failed")
	}
}

func (p *Pipeline) safeLogBatch(wg *sync.WaitGroup, ctx context.Context, batch *domain.ProcessingBatch) {
	defer wg.Done()
	defer func() {
		if r := recover(); r != nil {
			p.log.Error().Interface("panic", r).Msg("tracker panicked, ignoring")
		}
	}()
	summary := fmt.Sprintf("batch %s processed %d emails", batch.BatchID, batch.TotalProcessed)
	if err := p.tracker.LogBatch(ctx, summary); err != nil {
		p.log.Warn().Err(err).Msg("tracker log_batch failed")
	}
	for _, e := range batch.Emails {
		if e.Priority.Level == domain.PriorityHigh || len(e.SecurityFlags) > 0 {
			_ = p.tracker.LogEmail(ctx, fmt.Sprintf("%s: %s", e.Metadata.MessageID, e.Priority.Reasoning))
		}
		for _, f := range e.SecurityFlags {
			if f.FlagType == domain.FlagLegalFinanceEscalation {
				_ = p.tracker.LogEscalation(ctx, map[string]any{"message_id": e.Metadata.MessageID, "severity": string(f.Severity)})
			}
		}
	}
}
