package config

import "testing"

func TestDefaultTablesCompile(t *testing.T) {
	tables := DefaultTables()
	tables.compile()

	if len(tables.Intent.CompiledDeadlinePatterns()) != len(tables.Intent.DeadlinePatterns) {
		t.Fatalf("expected %d compiled deadline patterns, got %d",
			len(tables.Intent.DeadlinePatterns), len(tables.Intent.CompiledDeadlinePatterns()))
	}

	if len(tables.Guardrails.CompiledPIIPatterns()) != len(tables.Guardrails.PIIPatterns) {
		t.Fatalf("expected %d compiled PII patterns, got %d",
			len(tables.Guardrails.PIIPatterns), len(tables.Guardrails.CompiledPIIPatterns()))
	}
}

func TestLoadTablesEmptyPathReturnsDefaults(t *testing.T) {
	tables, err := LoadTables("")
	if err != nil {
		t.Fatalf("LoadTables(\"\") returned error: %v", err)
	}
	if tables.Priority.HighThreshold != 70 {
		t.Errorf("expected default high threshold 70, got %d", tables.Priority.HighThreshold)
	}
	if tables.Priority.MediumThreshold != 50 {
		t.Errorf("expected default medium threshold 50, got %d", tables.Priority.MediumThreshold)
	}
	if tables.Priority.LowThreshold != 30 {
		t.Errorf("expected default low threshold 30, got %d", tables.Priority.LowThreshold)
	}
}

func TestLoadTablesMissingFileErrors(t *testing.T) {
	_, err := LoadTables("/nonexistent/tables.yaml")
	if err == nil {
		t.Fatal("expected error for missing tables file, got nil")
	}
}

func TestPriorityWeightCeilingsSumToHundred(t *testing.T) {
	p := DefaultTables().Priority
	sum := p.MaxSenderImportance + p.MaxUrgency + p.MaxAction + p.MaxAge + p.MaxThread + p.MaxCategory
	if sum != 100 {
		t.Errorf("expected factor ceilings to sum to 100, got %d", sum)
	}
}

func TestUrgencyKeywordsContainKnownTerms(t *testing.T) {
	keywords := DefaultTables().Intent.UrgencyKeywords
	for _, k := range []string{"urgent", "asap", "critical"} {
		if weight, ok := keywords[k]; !ok || weight <= 0 {
			t.Errorf("expected positive urgency weight for %q, got %d (present=%v)", k, weight, ok)
		}
	}
	if weight := keywords["fyi"]; weight >= 0 {
		t.Errorf("expected negative urgency weight for %q, got %d", "fyi", weight)
	}
}
