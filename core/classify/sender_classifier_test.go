package classify

import (
	"testing"

	"worker_server/config"
	"worker_server/core/domain"
)

func testTables() config.SenderTables {
	return config.DefaultTables().Sender
}

func TestClassifyVIPEmail(t *testing.T) {
	tables := testTables()
	tables.VIPEmails = []string{"cfo@google.com"}
	c := New(tables, "")

	got := c.Classify("cfo@google.com")
	if got.SenderType != domain.SenderVIP || !got.IsVIP || got.Confidence != 1.0 {
		t.Fatalf("expected VIP confidence 1.0, got %+v", got)
	}
}

func TestClassifyVIPDomain(t *testing.T) {
	tables := testTables()
	tables.VIPDomains = []string{"bigclient.example"}
	c := New(tables, "")

	got := c.Classify("someone@bigclient.example")
	if got.SenderType != domain.SenderVIP || got.Confidence != 0.9 {
		t.Fatalf("expected VIP domain confidence 0.9, got %+v", got)
	}
}

func TestClassifyOwnDomainIsTeam(t *testing.T) {
	c := New(testTables(), "company.com")

	got := c.Classify("alice@company.com")
	if got.SenderType != domain.SenderTeam || !got.IsInternal {
		t.Fatalf("expected TEAM/internal, got %+v", got)
	}
}

func TestClassifyVendorHeuristic(t *testing.T) {
	c := New(testTables(), "company.com")

	got := c.Classify("billing@some-saas.example")
	if got.SenderType != domain.SenderVendor {
		t.Fatalf("expected VENDOR, got %+v", got)
	}
}

func TestClassifyConsumerDomain(t *testing.T) {
	c := New(testTables(), "company.com")

	got := c.Classify("random.person@gmail.com")
	if got.SenderType != domain.SenderCustomer {
		t.Fatalf("expected CUSTOMER, got %+v", got)
	}
}

func TestClassifyUnknownFallthrough(t *testing.T) {
	c := New(testTables(), "company.com")

	got := c.Classify("j.smith@obscuredomain.example")
	if got.SenderType != domain.SenderUnknown || got.Confidence != 0.2 {
		t.Fatalf("expected UNKNOWN at 0.2, got %+v", got)
	}
}

func TestClassifyMalformedAddressIsSpam(t *testing.T) {
	c := New(testTables(), "company.com")

	got := c.Classify("not-an-email")
	if got.SenderType != domain.SenderSpam {
		t.Fatalf("expected SPAM for malformed address, got %+v", got)
	}
}

func TestClassifyTieBreakVIPBeforeOwnDomain(t *testing.T) {
	tables := testTables()
	tables.VIPEmails = []string{"ceo@company.com"}
	c := New(tables, "company.com")

	got := c.Classify("ceo@company.com")
	if got.SenderType != domain.SenderVIP {
		t.Fatalf("expected VIP to win over own-domain TEAM match, got %+v", got)
	}
}
