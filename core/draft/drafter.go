// Package draft implements Drafter (C8): an LLM-backed reply generator
// with a deterministic template fallback.
package draft

import (
	"context"
	"fmt"
	"strings"
	"text/template"
	"time"

	"worker_server/core/domain"
	"worker_server/core/guardrails"
	"worker_server/core/port/out"
)

// promptTemplate builds the minimal prompt sent to the LLM capability.
var promptTemplate = template.Must(template.New("prompt").Parse(
	`Draft a short, professional reply to this email.
Subject: {{.Subject}}
From: {{.Sender}}
Primary intent: {{.PrimaryIntent}}
Action required: {{.ActionRequired}}
Write 2-3 sentences. Do not invent facts not present in the email.`,
))

// fallbackTemplates are the fixed strings used when the LLM call fails,
// times out, or returns empty, keyed by the drafting key fallbackKey
// derives from the scanned intent: question/request/meeting/complaint/default.
var fallbackTemplates = map[string]string{
	"question":  "Thank you for your email. I've received your question and will follow up with an answer shortly.",
	"request":   "Thank you for reaching out. I've received your request and will get back to you soon.",
	"meeting":   "Thanks for the invite. I'll review my calendar and confirm my availability shortly.",
	"complaint": "I'm sorry to hear about this. I've received your message and will look into it right away.",
	"default":   "Thank you for your email. I've received your message and will respond soon.",
}

// fallbackKey resolves the drafting-specific template key from the
// scanned intent, independent from IntentDetection.PrimaryIntent (which
// orders by domain keyword precedence for categorization, not drafting).
func fallbackKey(it domain.IntentDetection) string {
	switch {
	case it.QuestionDetected:
		return "question"
	case it.Has(domain.IntentMeeting), it.Has(domain.IntentInvitation):
		return "meeting"
	case it.Has(domain.IntentComplaint):
		return "complaint"
	case it.ActionRequired:
		return "request"
	default:
		return "default"
	}
}

// Drafter implements spec.md §4.7.
type Drafter struct {
	llm     out.LLMPort
	pii     *guardrails.PIIDetector
	timeout time.Duration
}

func New(llm out.LLMPort, pii *guardrails.PIIDetector, timeout time.Duration) *Drafter {
	return &Drafter{llm: llm, pii: pii, timeout: timeout}
}

type promptVars struct {
	Subject, Sender string
	PrimaryIntent   domain.Intent
	ActionRequired  bool
}

// Draft produces a DraftReply for an email with requires_reply=true and
// not blocked. now is injected for deterministic created_at.
func (d *Drafter) Draft(ctx context.Context, meta domain.EmailMetadata, it domain.IntentDetection, now time.Time) domain.DraftReply {
	body := d.generate(ctx, meta, it)

	subject := meta.Subject
	if !strings.HasPrefix(strings.ToLower(strings.TrimSpace(subject)), "re:") {
		subject = "Re: " + subject
	}

	return domain.DraftReply{
		Subject:          subject,
		Body:             body,
		Recipients:       []string{meta.Sender},
		CC:               nil,
		Tone:             "professional",
		PreservesTone:    true,
		CreatedAt:        now,
		RequiresApproval: true,
	}
}

func (d *Drafter) generate(ctx context.Context, meta domain.EmailMetadata, it domain.IntentDetection) string {
	if d.llm == nil {
		return d.fallback(it)
	}

	var b strings.Builder
	if err := promptTemplate.Execute(&b, promptVars{
		Subject: meta.Subject, Sender: meta.Sender,
		PrimaryIntent: it.PrimaryIntent, ActionRequired: it.ActionRequired,
	}); err != nil {
		return d.fallback(it)
	}

	prompt := b.String()
	if d.pii != nil {
		prompt = d.pii.Anonymize(prompt)
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	text, err := d.llm.Generate(ctx, prompt, d.timeout)
	if err != nil || strings.TrimSpace(text) == "" {
		return d.fallback(it)
	}
	return text
}

func (d *Drafter) fallback(it domain.IntentDetection) string {
	return fallbackTemplates[fallbackKey(it)]
}

// ReplySubject exposes the reply-subject rule independently for callers
// that need it without a full draft (e.g. CLI preview).
func ReplySubject(original string) string {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(original)), "re:") {
		return original
	}
	return fmt.Sprintf("Re: %s", original)
}
