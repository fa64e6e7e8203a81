// Package categorize implements Categorizer and SpamFilter (C5): the
// final category assignment and the spam block decision.
package categorize

import (
	"strings"

	"worker_server/config"
	"worker_server/core/domain"
)

// SpamFilter implements spec.md §4.4's spam block decision.
type SpamFilter struct {
	tables config.CategoryTables
}

func NewSpamFilter(tables config.CategoryTables) *SpamFilter {
	return &SpamFilter{tables: tables}
}

// IsSpam returns true iff sender_type=SPAM OR subject matches a known spam
// pattern OR body exceeds the configured link density.
func (f *SpamFilter) IsSpam(cls domain.SenderClassification, subject, body string) bool {
	if cls.SenderType == domain.SenderSpam {
		return true
	}
	subjLower := strings.ToLower(subject)
	for _, kw := range f.tables.SpamKeywords {
		if strings.Contains(subjLower, strings.ToLower(kw)) {
			return true
		}
	}
	return linkDensity(body) > f.tables.SpamLinkDensityLimit
}

// linkDensity is the fraction of words in body that look like a URL.
func linkDensity(body string) float64 {
	words := strings.Fields(body)
	if len(words) == 0 {
		return 0
	}
	links := 0
	for _, w := range words {
		if strings.Contains(w, "http://") || strings.Contains(w, "https://") || strings.Contains(w, "www.") {
			links++
		}
	}
	return float64(links) / float64(len(words))
}

// Categorizer implements spec.md §4.4's precedence list. Spam overrides
// all; it must be checked by the caller before invoking Categorize.
type Categorizer struct{}

func NewCategorizer() *Categorizer { return &Categorizer{} }

// Categorize chooses a single TriageCategory from the detected intents and
// priority level, first-match-wins per the fixed precedence list:
// legal > finance > complaint > it/hr > meeting/invitation >
// action-required (ACTION) > else INFORMATIONAL.
func (c *Categorizer) Categorize(it domain.IntentDetection, level domain.PriorityLevel) domain.TriageCategory {
	switch {
	case it.Has(domain.IntentLegal):
		return domain.TriageLegal
	case it.Has(domain.IntentFinance):
		return domain.TriageFinance
	case it.Has(domain.IntentComplaint):
		return domain.TriageOther
	case it.Has(domain.IntentIT):
		return domain.TriageIT
	case it.Has(domain.IntentHR):
		return domain.TriageHR
	case it.Has(domain.IntentMeeting), it.Has(domain.IntentInvitation):
		return domain.TriageMeeting
	case it.ActionRequired:
		return domain.TriageAction
	default:
		return domain.TriageInformational
	}
}
