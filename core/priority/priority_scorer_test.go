package priority

import (
	"testing"
	"time"

	"worker_server/config"
	"worker_server/core/domain"
)

type fakeClock struct{ now time.Time }

func (f fakeClock) Now() time.Time { return f.now }

func TestScoreScenario1VIPUrgentFinance(t *testing.T) {
	now := time.Date(2026, 7, 29, 12, 0, 0, 0, time.UTC)
	scorer := New(config.DefaultTables().Priority, fakeClock{now})

	meta := domain.EmailMetadata{
		Subject: "URGENT: Payment due tomorrow",
		Date:    now.Add(-10 * time.Minute),
	}
	cls := domain.SenderClassification{SenderType: domain.SenderVIP, IsVIP: true}
	it := domain.IntentDetection{
		Intents:        map[domain.Intent]bool{domain.IntentFinance: true},
		UrgencyScore:   35,
		ActionRequired: true,
	}

	got := scorer.Score(meta, cls, it)

	if got.Level != domain.PriorityHigh {
		t.Fatalf("expected HIGH, got %s (score=%d)", got.Level, got.Score)
	}
	if got.Score < 70 {
		t.Fatalf("expected score >= 70, got %d", got.Score)
	}
}

func TestScoreScenario2VendorLowSignal(t *testing.T) {
	now := time.Date(2026, 7, 29, 12, 0, 0, 0, time.UTC)
	scorer := New(config.DefaultTables().Priority, fakeClock{now})

	meta := domain.EmailMetadata{
		Subject: "Weekly FYI",
		Date:    now.Add(-48 * time.Hour),
	}
	cls := domain.SenderClassification{SenderType: domain.SenderVendor}
	it := domain.IntentDetection{Intents: map[domain.Intent]bool{}, UrgencyScore: 0}

	got := scorer.Score(meta, cls, it)

	if got.Level != domain.PriorityNotRequired {
		t.Fatalf("expected NOT_REQUIRED, got %s (score=%d)", got.Level, got.Score)
	}
}

func TestScoreR1UrgencyFloor(t *testing.T) {
	scorer := New(config.DefaultTables().Priority, fakeClock{time.Now()})

	meta := domain.EmailMetadata{}
	cls := domain.SenderClassification{SenderType: domain.SenderUnknown}
	it := domain.IntentDetection{Intents: map[domain.Intent]bool{}, UrgencyScore: 15}

	got := scorer.Score(meta, cls, it)

	if got.Score < 50 {
		t.Fatalf("expected R1 floor of 50, got %d", got.Score)
	}
}

func TestLevelThresholdBoundaries(t *testing.T) {
	scorer := New(config.DefaultTables().Priority, fakeClock{time.Now()})

	cases := []struct {
		score int
		want  domain.PriorityLevel
	}{
		{70, domain.PriorityHigh},
		{69, domain.PriorityMedium},
		{50, domain.PriorityMedium},
		{49, domain.PriorityLow},
		{30, domain.PriorityLow},
		{29, domain.PriorityNotRequired},
		{0, domain.PriorityNotRequired},
	}
	for _, c := range cases {
		if got := scorer.level(c.score); got != c.want {
			t.Errorf("level(%d) = %s, want %s", c.score, got, c.want)
		}
	}
}

func TestReasoningOnlyListsNonzeroFactors(t *testing.T) {
	scorer := New(config.DefaultTables().Priority, fakeClock{time.Now()})

	meta := domain.EmailMetadata{}
	cls := domain.SenderClassification{SenderType: domain.SenderUnknown}
	it := domain.IntentDetection{Intents: map[domain.Intent]bool{}}

	got := scorer.Score(meta, cls, it)

	for factor, value := range got.Factors {
		if value == 0 && contains(got.Reasoning, factor) {
			t.Errorf("reasoning mentions zero-value factor %q: %s", factor, got.Reasoning)
		}
	}
}

func contains(haystack, needle string) bool {
	return len(needle) > 0 && (len(haystack) >= len(needle)) && indexOf(haystack, needle) >= 0
}

func indexOf(haystack, needle string) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}
