// Package classify implements SenderClassifier (C2): labels the sender of
// an email as VIP, TEAM, VENDOR, CUSTOMER, SPAM or UNKNOWN.
package classify

import (
	"net/mail"
	"strings"

	"worker_server/config"
	"worker_server/core/domain"
)

// commonVendorWords are local-part substrings that heuristically indicate
// an automated/commercial sender (spec.md §4.1 step 5).
var commonVendorWords = []string{"billing", "noreply", "no-reply", "marketing", "sales", "support", "newsletter"}

// knownConsumerDomains are ordinary personal-email providers.
var knownConsumerDomains = map[string]bool{
	"gmail.com": true, "yahoo.com": true, "outlook.com": true,
	"hotmail.com": true, "icloud.com": true, "aol.com": true,
	"protonmail.com": true,
}

// senderHeuristicPatterns shortcut sender-type candidacy to SPAM without
// touching urgency scoring (grounded on the corpus's classify.go heuristic
// pattern, see DESIGN.md).
var senderHeuristicPatterns = []string{"digest", "[bot]", "dependabot", "renovate"}

// SenderClassifier implements spec.md §4.1.
type SenderClassifier struct {
	tables    config.SenderTables
	ownDomain string
}

// New creates a SenderClassifier. ownDomain is the operator's own domain,
// resolved from config or the authenticated mailbox profile (spec.md §9
// open question).
func New(tables config.SenderTables, ownDomain string) *SenderClassifier {
	return &SenderClassifier{tables: tables, ownDomain: strings.ToLower(ownDomain)}
}

// Classify implements the algorithm in spec.md §4.1. Ties are resolved
// top to bottom; the first match wins.
func (c *SenderClassifier) Classify(sender string) domain.SenderClassification {
	local, domainPart, ok := splitAddress(sender)
	if !ok {
		return domain.SenderClassification{
			SenderType: domain.SenderSpam,
			Domain:     domainPart,
			Confidence: 0.3,
			Notes:      "malformed sender address",
		}
	}

	addr := strings.ToLower(sender)
	localLower := strings.ToLower(local)
	domainLower := strings.ToLower(domainPart)

	// Step 2: exact address match.
	for _, vip := range c.tables.VIPEmails {
		if strings.ToLower(vip) == addr {
			return domain.SenderClassification{
				SenderType: domain.SenderVIP, IsVIP: true,
				Domain: domainLower, Confidence: 1.0,
				Notes: "matched VIP_EMAILS",
			}
		}
	}

	// Step 3: VIP domain.
	for _, d := range c.tables.VIPDomains {
		if strings.ToLower(d) == domainLower {
			return domain.SenderClassification{
				SenderType: domain.SenderVIP, IsVIP: true,
				Domain: domainLower, Confidence: 0.9,
				Notes: "matched VIP_DOMAINS",
			}
		}
	}

	// Step 4: operator's own domain.
	if c.ownDomain != "" && domainLower == c.ownDomain {
		return domain.SenderClassification{
			SenderType: domain.SenderTeam, IsInternal: true,
			Domain: domainLower, Confidence: 0.8,
			Notes: "matches operator own domain",
		}
	}

	// Step 5: heuristics.
	if matchesAny(localLower, senderHeuristicPatterns) || isMalformedLocal(localLower) {
		return domain.SenderClassification{
			SenderType: domain.SenderSpam,
			Domain:     domainLower, Confidence: 0.6,
			Notes: "matched spam heuristic pattern",
		}
	}
	for _, d := range c.tables.SpamDomains {
		if strings.ToLower(d) == domainLower {
			return domain.SenderClassification{
				SenderType: domain.SenderSpam,
				Domain:     domainLower, Confidence: 0.85,
				Notes: "matched SPAM_DOMAINS",
			}
		}
	}
	if matchesAny(localLower, commonVendorWords) {
		return domain.SenderClassification{
			SenderType: domain.SenderVendor,
			Domain:     domainLower, Confidence: 0.7,
			Notes: "matched vendor local-part keyword",
		}
	}
	for _, d := range c.tables.VendorDomains {
		if strings.ToLower(d) == domainLower {
			return domain.SenderClassification{
				SenderType: domain.SenderVendor,
				Domain:     domainLower, Confidence: 0.75,
				Notes: "matched VENDOR_DOMAINS",
			}
		}
	}
	if knownConsumerDomains[domainLower] {
		return domain.SenderClassification{
			SenderType: domain.SenderCustomer,
			Domain:     domainLower, Confidence: 0.5,
			Notes: "known consumer email provider",
		}
	}

	// Step 6: fall through.
	return domain.SenderClassification{
		SenderType: domain.SenderUnknown,
		Domain:     domainLower, Confidence: 0.2,
		Notes: "no heuristic matched",
	}
}

func splitAddress(sender string) (local, domainPart string, ok bool) {
	addr, err := mail.ParseAddress(sender)
	if err != nil {
		return "", extractDomainBestEffort(sender), false
	}
	at := strings.LastIndex(addr.Address, "@")
	if at < 0 {
		return "", "", false
	}
	return addr.Address[:at], strings.ToLower(addr.Address[at+1:]), true
}

func extractDomainBestEffort(sender string) string {
	if at := strings.LastIndex(sender, "@"); at >= 0 {
		d := sender[at+1:]
		d = strings.TrimSuffix(d, ">")
		return strings.ToLower(strings.TrimSpace(d))
	}
	return ""
}

func matchesAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}

// isMalformedLocal flags empty or punctuation-only local parts.
func isMalformedLocal(local string) bool {
	if local == "" {
		return true
	}
	for _, r := range local {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return false
		}
	}
	return true
}
