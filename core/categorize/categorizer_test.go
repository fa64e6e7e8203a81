package categorize

import (
	"testing"

	"worker_server/config"
	"worker_server/core/domain"
)

func TestIsSpamBySenderType(t *testing.T) {
	f := NewSpamFilter(config.DefaultTables().Category)
	cls := domain.SenderClassification{SenderType: domain.SenderSpam}

	if !f.IsSpam(cls, "hello", "normal body") {
		t.Fatal("expected spam sender type to short-circuit to spam")
	}
}

func TestIsSpamBySubjectKeyword(t *testing.T) {
	f := NewSpamFilter(config.DefaultTables().Category)
	cls := domain.SenderClassification{SenderType: domain.SenderUnknown}

	if !f.IsSpam(cls, "Act now, limited time offer", "body") {
		t.Fatal("expected subject spam keyword to trigger spam")
	}
}

func TestIsSpamByLinkDensity(t *testing.T) {
	f := NewSpamFilter(config.DefaultTables().Category)
	cls := domain.SenderClassification{SenderType: domain.SenderUnknown}
	body := "http://a.example http://b.example http://c.example text"

	if !f.IsSpam(cls, "normal subject", body) {
		t.Fatal("expected high link density to trigger spam")
	}
}

func TestIsSpamFalseForNormalEmail(t *testing.T) {
	f := NewSpamFilter(config.DefaultTables().Category)
	cls := domain.SenderClassification{SenderType: domain.SenderVIP}

	if f.IsSpam(cls, "Project update", "Here is the status of the project this week.") {
		t.Fatal("expected normal email to not be spam")
	}
}

func TestCategorizePrecedence(t *testing.T) {
	c := NewCategorizer()

	cases := []struct {
		name   string
		intent domain.IntentDetection
		want   domain.TriageCategory
	}{
		{"legal wins over finance", intentWith(domain.IntentLegal, domain.IntentFinance), domain.TriageLegal},
		{"finance wins over it", intentWith(domain.IntentFinance, domain.IntentIT), domain.TriageFinance},
		{"meeting", intentWith(domain.IntentMeeting), domain.TriageMeeting},
		{"invitation maps to meeting bucket", intentWith(domain.IntentInvitation), domain.TriageMeeting},
		{"action required falls to action", domain.IntentDetection{Intents: map[domain.Intent]bool{}, ActionRequired: true}, domain.TriageAction},
		{"no signal falls to informational", domain.IntentDetection{Intents: map[domain.Intent]bool{}}, domain.TriageInformational},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Categorize(tc.intent, domain.PriorityMedium)
			if got != tc.want {
				t.Errorf("got %s, want %s", got, tc.want)
			}
		})
	}
}

func intentWith(intents ...domain.Intent) domain.IntentDetection {
	m := map[domain.Intent]bool{}
	for _, i := range intents {
		m[i] = true
	}
	return domain.IntentDetection{Intents: m}
}
