// Package intent implements IntentScanner (C3): extracts intents, urgency
// score, and action/question/follow-up flags from subject and body text.
package intent

import (
	"math"
	"strings"

	"worker_server/config"
	"worker_server/core/domain"
)

// IntentScanner implements spec.md §4.2, steps 1-10.
type IntentScanner struct {
	tables config.IntentTables
}

func New(tables config.IntentTables) *IntentScanner {
	return &IntentScanner{tables: tables}
}

// subjectWeight is the multiplier applied to subject-line hits over body
// hits, per spec.md §4.2 (P3 requires this to strictly exceed 1).
const subjectWeight = 1.7

// Scan runs the full algorithm over a single email's subject and body.
func (s *IntentScanner) Scan(subject, body string) domain.IntentDetection {
	subjLower := strings.ToLower(subject)
	bodyLower := strings.ToLower(body)
	combined := subjLower + " " + bodyLower

	result := domain.IntentDetection{Intents: map[domain.Intent]bool{}}

	// Step 1: subject hard overrides dominate everything else.
	for _, term := range s.tables.SubjectHighPriority {
		if strings.Contains(subjLower, strings.ToLower(term)) {
			result.UrgencyScore = 35
			result.ActionRequired = true
			result.Intents[domain.IntentSubjectOverride] = true
			result.UrgencyKeywords = append(result.UrgencyKeywords, term)
			result.PrimaryIntent = domain.IntentSubjectOverride
			return result
		}
	}

	score := 0
	for _, term := range s.tables.SubjectLowPriority {
		if strings.Contains(subjLower, strings.ToLower(term)) {
			score -= 8
			result.UrgencyKeywords = append(result.UrgencyKeywords, term)
		}
	}

	// Step 2: forward tag.
	if strings.HasPrefix(subjLower, "fwd:") || strings.HasPrefix(subjLower, "fw:") {
		score += 4
	}

	// Step 3: urgency keywords.
	for kw, weight := range s.tables.UrgencyKeywords {
		kwLower := strings.ToLower(kw)
		hit := false
		if strings.Contains(subjLower, kwLower) {
			score += int(math.Round(float64(weight) * subjectWeight))
			hit = true
		}
		if strings.Contains(bodyLower, kwLower) {
			score += weight
			hit = true
		}
		if hit {
			result.UrgencyKeywords = append(result.UrgencyKeywords, kw)
		}
	}

	// Step 4: domain intents.
	hasFinance := matchIntent(combined, s.tables.FinanceKeywords, domain.IntentFinance, &result)
	matchIntent(combined, s.tables.LegalKeywords, domain.IntentLegal, &result)
	matchIntent(combined, s.tables.ITKeywords, domain.IntentIT, &result)
	matchIntent(combined, s.tables.HRKeywords, domain.IntentHR, &result)
	matchIntent(combined, s.tables.AcademicKeywords, domain.IntentAcademic, &result)
	matchIntent(combined, s.tables.MeetingKeywords, domain.IntentMeeting, &result)
	matchIntent(combined, s.tables.InvitationKeywords, domain.IntentInvitation, &result)
	matchIntent(combined, s.tables.ComplaintKeywords, domain.IntentComplaint, &result)

	if result.Intents[domain.IntentLegal] {
		score += 5
	}
	if hasFinance {
		score += 6
	}
	if result.Intents[domain.IntentAcademic] {
		score += 6
	}

	// Step 5: deadline regex.
	nearDeadline := false
	for _, re := range s.tables.CompiledDeadlinePatterns() {
		if re.MatchString(combined) {
			nearDeadline = true
			break
		}
	}
	if nearDeadline {
		score += 8
		result.UrgencyKeywords = append(result.UrgencyKeywords, "near_deadline")
	}

	// Step 6: finance+deadline override.
	if hasFinance && nearDeadline && score < 32 {
		score = 32
	}

	// Step 7: action/question.
	for _, phrase := range s.tables.ActionPhrases {
		if strings.Contains(combined, strings.ToLower(phrase)) {
			result.ActionRequired = true
			break
		}
	}
	result.QuestionDetected = strings.Contains(combined, "?")

	// Step 8: low-priority reducers.
	for _, term := range s.tables.LowPriorityIndicators {
		if strings.Contains(combined, strings.ToLower(term)) {
			score -= 5
		}
	}

	// Step 9: clamp.
	result.UrgencyScore = clamp(score, 0, domain.UrgencyCap)

	// Step 10: follow-up detection.
	for _, phrase := range s.tables.FollowUpPhrases {
		if strings.Contains(combined, strings.ToLower(phrase)) {
			result.IsFollowUp = true
			break
		}
	}

	result.PrimaryIntent = pickPrimaryIntent(&result)
	return result
}

func matchIntent(text string, keywords []string, i domain.Intent, result *domain.IntentDetection) bool {
	for _, kw := range keywords {
		if strings.Contains(text, strings.ToLower(kw)) {
			result.Intents[i] = true
			return true
		}
	}
	return false
}

// pickPrimaryIntent resolves a single representative intent for
// downstream consumers (the Drafter's LLM prompt), in spec-order
// priority: legal, finance, it, hr, meeting, invitation, complaint,
// academic.
func pickPrimaryIntent(d *domain.IntentDetection) domain.Intent {
	order := []domain.Intent{
		domain.IntentLegal, domain.IntentFinance, domain.IntentIT, domain.IntentHR,
		domain.IntentMeeting, domain.IntentInvitation, domain.IntentComplaint,
		domain.IntentAcademic,
	}
	for _, i := range order {
		if d.Intents[i] {
			return i
		}
	}
	return ""
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
