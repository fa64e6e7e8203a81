package intent

import (
	"testing"

	"worker_server/config"
	"worker_server/core/domain"
)

func testTables() config.IntentTables {
	tables := config.DefaultTables().Intent
	return tables
}

func TestScanSubjectHardOverride(t *testing.T) {
	s := New(testTables())
	got := s.Scan("URGENT: action required", "please review")

	if got.UrgencyScore != 35 {
		t.Fatalf("expected urgency 35, got %d", got.UrgencyScore)
	}
	if !got.ActionRequired {
		t.Fatal("expected action_required=true")
	}
	if !got.Has(domain.IntentSubjectOverride) {
		t.Fatal("expected subject_override intent")
	}
}

func TestScanUrgencyKeywordSubjectWeighting(t *testing.T) {
	s := New(testTables())
	subjectHit := s.Scan("a note marked important", "nothing else here")
	bodyHit := s.Scan("a quiet note", "important note approaching soon")

	if subjectHit.UrgencyScore <= bodyHit.UrgencyScore {
		t.Fatalf("expected subject hit (%d) to score higher than body hit (%d)",
			subjectHit.UrgencyScore, bodyHit.UrgencyScore)
	}
}

func TestScanFinanceDeadlineOverride(t *testing.T) {
	s := New(testTables())
	got := s.Scan("Quick note", "invoice due today, please process payment")

	if got.UrgencyScore < 32 {
		t.Fatalf("expected finance+deadline floor of 32, got %d", got.UrgencyScore)
	}
	if !got.Has(domain.IntentFinance) {
		t.Fatal("expected finance intent")
	}
}

func TestScanLowPriorityReducers(t *testing.T) {
	s := New(testTables())
	got := s.Scan("Weekly FYI", "no action needed, for your information only")

	if got.UrgencyScore > 0 {
		t.Fatalf("expected urgency near zero after reducers, got %d", got.UrgencyScore)
	}
}

func TestScanClampUpperBound(t *testing.T) {
	s := New(testTables())
	got := s.Scan("URGENT ASAP CRITICAL EMERGENCY", "urgent asap critical emergency deadline today")

	if got.UrgencyScore > domain.UrgencyCap {
		t.Fatalf("expected urgency clamped to %d, got %d", domain.UrgencyCap, got.UrgencyScore)
	}
}

func TestScanFollowUpDetection(t *testing.T) {
	s := New(testTables())
	got := s.Scan("Checking in", "just following up on my previous email")

	if !got.IsFollowUp {
		t.Fatal("expected is_follow_up=true")
	}
}

func TestScanQuestionDetection(t *testing.T) {
	s := New(testTables())
	got := s.Scan("Quick question", "can you confirm the time?")

	if !got.QuestionDetected {
		t.Fatal("expected question_detected=true")
	}
}

func TestScanForwardTagAddsUrgency(t *testing.T) {
	s := New(testTables())
	plain := s.Scan("status", "no keywords here at all")
	forwarded := s.Scan("fwd: status", "no keywords here at all")

	if forwarded.UrgencyScore <= plain.UrgencyScore {
		t.Fatalf("expected fwd: tag to add urgency, plain=%d forwarded=%d",
			plain.UrgencyScore, forwarded.UrgencyScore)
	}
}
