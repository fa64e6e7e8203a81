// Package guardrails implements C6: PII detection and scrubbing, domain
// checking, tone enforcement and reply-all risk scoring.
package guardrails

import (
	"regexp"
	"sort"
	"strings"

	"worker_server/config"
	"worker_server/core/domain"
)

// PIIDetector scans text with the guardrail tables' PII patterns. The
// default tables cover ssn, credit_card, phone and email_in_body; passport,
// bank-account and street-address shapes are not matched by the defaults.
type PIIDetector struct {
	patterns map[string]*regexp.Regexp
}

func NewPIIDetector(tables config.GuardrailTables) *PIIDetector {
	return &PIIDetector{patterns: tables.CompiledPIIPatterns()}
}

// Detect reports whether any PII pattern matched and which ones.
func (d *PIIDetector) Detect(text string) (found bool, kinds []string) {
	for name, re := range d.patterns {
		if re.MatchString(text) {
			found = true
			kinds = append(kinds, name)
		}
	}
	sort.Strings(kinds)
	return found, kinds
}

// Anonymize replaces every PII match with a canonical placeholder. It is
// idempotent (P2): placeholders use bracket/colon syntax that none of the
// PII regexes themselves match, so a second pass is a no-op.
func (d *PIIDetector) Anonymize(text string) string {
	type match struct {
		start, end int
		kind       string
	}
	var matches []match
	for name, re := range d.patterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			matches = append(matches, match{loc[0], loc[1], name})
		}
	}
	if len(matches) == 0 {
		return text
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].start < matches[j].start })

	var b strings.Builder
	cursor := 0
	for _, m := range matches {
		if m.start < cursor {
			continue // overlapping match, already covered
		}
		b.WriteString(text[cursor:m.start])
		b.WriteString("[REDACTED:" + strings.ToUpper(m.kind) + "]")
		cursor = m.end
	}
	b.WriteString(text[cursor:])
	return b.String()
}

// DomainChecker classifies recipients as internal/external against
// ALLOWED_DOMAINS.
type DomainChecker struct {
	allowed map[string]bool
}

func NewDomainChecker(allowedDomains []string) *DomainChecker {
	m := make(map[string]bool, len(allowedDomains))
	for _, d := range allowedDomains {
		m[strings.ToLower(d)] = true
	}
	return &DomainChecker{allowed: m}
}

func (c *DomainChecker) IsInternal(address string) bool {
	domain := domainOf(address)
	if domain == "" {
		return false
	}
	return c.allowed[domain]
}

// ExternalRecipients returns the subset of addresses not on an allowed
// domain.
func (c *DomainChecker) ExternalRecipients(addresses []string) []string {
	var external []string
	for _, a := range addresses {
		if !c.IsInternal(a) {
			external = append(external, a)
		}
	}
	return external
}

func domainOf(address string) string {
	at := strings.LastIndex(address, "@")
	if at < 0 {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(address[at+1:]))
}

// ToneEnforcer rejects drafts containing forbidden tokens.
type ToneEnforcer struct {
	forbidden []string
}

func NewToneEnforcer(tables config.GuardrailTables) *ToneEnforcer {
	return &ToneEnforcer{forbidden: tables.ForbiddenTones}
}

// Check returns (approved, issues) for the given draft body.
func (t *ToneEnforcer) Check(body string) (approved bool, issues []string) {
	lower := strings.ToLower(body)
	for _, token := range t.forbidden {
		if strings.Contains(lower, strings.ToLower(token)) {
			issues = append(issues, "forbidden tone token: "+token)
		}
	}
	return len(issues) == 0, issues
}

// ReplyAllRiskInput is the ReplyAllRisk severity table's input, spec.md §4.5.
type ReplyAllRiskInput struct {
	HasPII            bool
	SensitiveCategory bool // legal/finance
	TotalRecipients   int
	ExternalCount     int
	OriginalListSize  int
}

// ReplyAllRisk computes the severity table in spec.md §4.5, first
// matching condition wins (checked top to bottom).
func ReplyAllRisk(in ReplyAllRiskInput) *domain.SecurityFlag {
	switch {
	case in.HasPII && in.ExternalCount > 0:
		return &domain.SecurityFlag{
			FlagType: domain.FlagReplyAllRisk, Severity: domain.SeverityCritical,
			Description: "PII present with an external recipient", BlocksSending: true,
		}
	case in.SensitiveCategory && in.ExternalCount > 0:
		return &domain.SecurityFlag{
			FlagType: domain.FlagReplyAllRisk, Severity: domain.SeverityHigh,
			Description: "sensitive category with an external recipient", BlocksSending: true,
		}
	case in.ExternalCount > 3:
		return &domain.SecurityFlag{
			FlagType: domain.FlagReplyAllRisk, Severity: domain.SeverityHigh,
			Description: "more than 3 external recipients", BlocksSending: true,
		}
	case in.ExternalCount > 0 && in.ExternalCount > 2 && in.ExternalCount < in.TotalRecipients:
		return &domain.SecurityFlag{
			FlagType: domain.FlagReplyAllRisk, Severity: domain.SeverityHigh,
			Description: "mixed internal/external audience with >2 external", BlocksSending: true,
		}
	case in.TotalRecipients > 5 || in.OriginalListSize > 10:
		return &domain.SecurityFlag{
			FlagType: domain.FlagReplyAllRisk, Severity: domain.SeverityMedium,
			Description: "large recipient list", BlocksSending: false,
		}
	default:
		return nil
	}
}
