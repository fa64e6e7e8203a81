package draft

import (
	"context"
	"errors"
	"testing"
	"time"

	"worker_server/config"
	"worker_server/core/domain"
	"worker_server/core/guardrails"
)

type fakeLLM struct {
	text string
	err  error
}

func (f fakeLLM) Generate(ctx context.Context, prompt string, timeout time.Duration) (string, error) {
	return f.text, f.err
}

func pii() *guardrails.PIIDetector {
	return guardrails.NewPIIDetector(config.DefaultTables().Guardrails)
}

func TestDraftReplySubjectAddsRePrefix(t *testing.T) {
	got := ReplySubject("Quarterly update")
	if got != "Re: Quarterly update" {
		t.Fatalf("expected Re: prefix, got %q", got)
	}
}

func TestDraftReplySubjectPreservesExistingRe(t *testing.T) {
	got := ReplySubject("RE: Quarterly update")
	if got != "RE: Quarterly update" {
		t.Fatalf("expected unchanged subject, got %q", got)
	}
}

func TestDraftUsesLLMResultWhenAvailable(t *testing.T) {
	d := New(fakeLLM{text: "Here is my reply."}, pii(), time.Second)
	meta := domain.EmailMetadata{Subject: "Question about invoice", Sender: "bob@example.com"}
	it := domain.IntentDetection{Intents: map[domain.Intent]bool{}, QuestionDetected: true}

	reply := d.Draft(context.Background(), meta, it, time.Now())

	if reply.Body != "Here is my reply." {
		t.Fatalf("expected LLM body, got %q", reply.Body)
	}
	if !reply.RequiresApproval {
		t.Fatal("expected requires_approval=true")
	}
	if reply.Recipients[0] != "bob@example.com" {
		t.Fatalf("expected default recipient to be the sender, got %v", reply.Recipients)
	}
}

func TestDraftFallsBackOnLLMError(t *testing.T) {
	d := New(fakeLLM{err: errors.New("timeout")}, pii(), time.Second)
	meta := domain.EmailMetadata{Subject: "A question", Sender: "bob@example.com"}
	it := domain.IntentDetection{Intents: map[domain.Intent]bool{}, QuestionDetected: true}

	reply := d.Draft(context.Background(), meta, it, time.Now())

	if reply.Body != fallbackTemplates["question"] {
		t.Fatalf("expected question fallback template, got %q", reply.Body)
	}
}

func TestDraftFallsBackOnEmptyLLMResponse(t *testing.T) {
	d := New(fakeLLM{text: "   "}, pii(), time.Second)
	meta := domain.EmailMetadata{Subject: "status", Sender: "bob@example.com"}
	it := domain.IntentDetection{Intents: map[domain.Intent]bool{}}

	reply := d.Draft(context.Background(), meta, it, time.Now())

	if reply.Body != fallbackTemplates["default"] {
		t.Fatalf("expected default fallback template, got %q", reply.Body)
	}
}

func TestDraftNilLLMUsesFallback(t *testing.T) {
	d := New(nil, pii(), time.Second)
	meta := domain.EmailMetadata{Subject: "Meeting invite", Sender: "bob@example.com"}
	it := domain.IntentDetection{Intents: map[domain.Intent]bool{domain.IntentMeeting: true}}

	reply := d.Draft(context.Background(), meta, it, time.Now())

	if reply.Body != fallbackTemplates["meeting"] {
		t.Fatalf("expected meeting fallback template, got %q", reply.Body)
	}
}
