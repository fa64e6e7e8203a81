package guardrails

import (
	"testing"

	"worker_server/config"
)

func TestPIIDetectCreditCard(t *testing.T) {
	d := NewPIIDetector(config.DefaultTables().Guardrails)

	found, kinds := d.Detect("please charge 4111111111111111 to my account")
	if !found {
		t.Fatal("expected credit card PII to be detected")
	}
	if len(kinds) == 0 {
		t.Fatal("expected at least one matched kind")
	}
}

func TestAnonymizeIsIdempotent(t *testing.T) {
	d := NewPIIDetector(config.DefaultTables().Guardrails)
	text := "card 4111111111111111 and ssn 123-45-6789"

	once := d.Anonymize(text)
	twice := d.Anonymize(once)

	if once != twice {
		t.Fatalf("anonymize not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestAnonymizeRemovesRawPII(t *testing.T) {
	d := NewPIIDetector(config.DefaultTables().Guardrails)
	scrubbed := d.Anonymize("ssn 123-45-6789 here")

	found, _ := d.Detect(scrubbed)
	if found {
		t.Fatalf("expected no PII left after anonymize, got %q", scrubbed)
	}
}

func TestDomainCheckerInternalExternal(t *testing.T) {
	c := NewDomainChecker([]string{"company.com"})

	if !c.IsInternal("alice@company.com") {
		t.Error("expected company.com to be internal")
	}
	if c.IsInternal("bob@outside.example") {
		t.Error("expected outside.example to be external")
	}

	external := c.ExternalRecipients([]string{"alice@company.com", "bob@outside.example"})
	if len(external) != 1 || external[0] != "bob@outside.example" {
		t.Errorf("expected exactly one external recipient, got %v", external)
	}
}

func TestToneEnforcerRejectsForbiddenTokens(t *testing.T) {
	e := NewToneEnforcer(config.DefaultTables().Guardrails)

	approved, issues := e.Check("you are an idiot and need to fix this")
	if approved {
		t.Fatal("expected forbidden token to reject the draft")
	}
	if len(issues) == 0 {
		t.Fatal("expected at least one issue reported")
	}
}

func TestToneEnforcerApprovesCleanText(t *testing.T) {
	e := NewToneEnforcer(config.DefaultTables().Guardrails)

	approved, issues := e.Check("thanks for the update, I'll take a look")
	if !approved || len(issues) != 0 {
		t.Fatalf("expected clean text to be approved, got issues=%v", issues)
	}
}

func TestReplyAllRiskPIIPlusExternalIsCritical(t *testing.T) {
	flag := ReplyAllRisk(ReplyAllRiskInput{HasPII: true, ExternalCount: 1, TotalRecipients: 2})
	if flag == nil || flag.Severity != "critical" || !flag.BlocksSending {
		t.Fatalf("expected critical blocking flag, got %+v", flag)
	}
}

func TestReplyAllRiskNoneWhenSmallInternalAudience(t *testing.T) {
	flag := ReplyAllRisk(ReplyAllRiskInput{TotalRecipients: 2, ExternalCount: 0})
	if flag != nil {
		t.Fatalf("expected no flag, got %+v", flag)
	}
}

func TestReplyAllRiskMediumForLargeList(t *testing.T) {
	flag := ReplyAllRisk(ReplyAllRiskInput{TotalRecipients: 6, ExternalCount: 0})
	if flag == nil || flag.Severity != "medium" || flag.BlocksSending {
		t.Fatalf("expected medium non-blocking flag, got %+v", flag)
	}
}
