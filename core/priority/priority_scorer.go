// Package priority implements PriorityScorer (C4): a six-factor
// deterministic composite score in [0,100] with a derived level.
package priority

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"worker_server/config"
	"worker_server/core/domain"
	"worker_server/core/port/out"
)

// PriorityScorer implements spec.md §4.3. now() is injected via Clock so
// age-dependent scoring stays deterministic under test.
type PriorityScorer struct {
	tables config.PriorityTables
	clock  out.Clock
}

func New(tables config.PriorityTables, clock out.Clock) *PriorityScorer {
	if clock == nil {
		clock = out.SystemClock{}
	}
	return &PriorityScorer{tables: tables, clock: clock}
}

// categoryPrecedence is the first-match-wins list for the category
// factor, spec.md §4.3 table.
var categoryPrecedence = []struct {
	intent domain.Intent
	points int
}{
	{domain.IntentComplaint, 15},
	{domain.IntentInvitation, 15},
	{domain.IntentLegal, 5},
	{domain.IntentFinance, 5},
	{domain.IntentIT, 5},
	{domain.IntentHR, 5},
	{domain.IntentMeeting, 3},
}

// Score computes the composite priority, spec.md §4.3.
func (p *PriorityScorer) Score(meta domain.EmailMetadata, cls domain.SenderClassification, it domain.IntentDetection) domain.PriorityScore {
	factors := map[string]int{}

	factors["sender_importance"] = p.senderImportance(cls, it)
	factors["urgency"] = clampInt(it.UrgencyScore, 0, p.tables.MaxUrgency)
	factors["action"] = p.action(it)
	factors["age"] = p.age(meta.Date)
	factors["thread"] = p.thread(meta)
	factors["category"] = p.category(it)

	total := 0
	for _, v := range factors {
		total += v
	}

	// R1: urgency floor.
	if it.UrgencyScore >= 15 && total < 50 {
		total = 50
	}

	// R2: clamp.
	total = clampInt(total, 0, 100)

	level := p.level(total)
	reasoning := p.reasoning(level, total, factors)

	return domain.PriorityScore{
		Score:     total,
		Level:     level,
		Factors:   factors,
		Reasoning: reasoning,
	}
}

func (p *PriorityScorer) senderImportance(cls domain.SenderClassification, it domain.IntentDetection) int {
	var base int
	switch cls.SenderType {
	case domain.SenderVIP:
		base = 40
	case domain.SenderTeam:
		base = 30
	case domain.SenderCustomer:
		base = 25
	case domain.SenderVendor:
		base = 15
	case domain.SenderSpam:
		base = 0
	default:
		base = 5
	}

	if it.Has(domain.IntentComplaint) && base < 25 {
		base = 25
	}

	noSignal := len(it.UrgencyKeywords) == 0 && !it.ActionRequired &&
		!it.Has(domain.IntentComplaint) && !it.Has(domain.IntentInvitation)
	if noSignal && base > 20 {
		base = 20
	}

	return clampInt(base, 0, p.tables.MaxSenderImportance)
}

func (p *PriorityScorer) action(it domain.IntentDetection) int {
	score := 0
	if it.ActionRequired {
		score += 8
	}
	if it.QuestionDetected {
		score += 4
	}
	if it.ActionRequired && it.QuestionDetected {
		score += 3
	}
	if it.IsFollowUp {
		score += 3
	}
	return clampInt(score, 0, p.tables.MaxAction)
}

func (p *PriorityScorer) age(date time.Time) int {
	if date.IsZero() {
		return 0
	}
	elapsed := p.clock.Now().Sub(date)
	switch {
	case elapsed < time.Hour:
		return 10
	case elapsed < 4*time.Hour:
		return 8
	case elapsed < 24*time.Hour:
		return 5
	case elapsed < 3*24*time.Hour:
		return 2
	default:
		return 0
	}
}

func (p *PriorityScorer) thread(meta domain.EmailMetadata) int {
	score := 0
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(meta.Subject)), "re:") {
		score += 5
	}
	if len(meta.Recipients) > 0 {
		score += 3
	}
	if meta.HasAttachments {
		score += 2
	}
	return clampInt(score, 0, p.tables.MaxThread)
}

func (p *PriorityScorer) category(it domain.IntentDetection) int {
	for _, entry := range categoryPrecedence {
		if it.Has(entry.intent) {
			return clampInt(entry.points, 0, p.tables.MaxCategory)
		}
	}
	return 0
}

func (p *PriorityScorer) level(score int) domain.PriorityLevel {
	switch {
	case score >= p.tables.HighThreshold:
		return domain.PriorityHigh
	case score >= p.tables.MediumThreshold:
		return domain.PriorityMedium
	case score >= p.tables.LowThreshold:
		return domain.PriorityLow
	default:
		return domain.PriorityNotRequired
	}
}

// reasoning lists the top three nonzero factors by contribution, I8/R4.
func (p *PriorityScorer) reasoning(level domain.PriorityLevel, score int, factors map[string]int) string {
	type kv struct {
		name  string
		value int
	}
	var nonzero []kv
	for k, v := range factors {
		if v != 0 {
			nonzero = append(nonzero, kv{k, v})
		}
	}
	sort.Slice(nonzero, func(i, j int) bool {
		if nonzero[i].value != nonzero[j].value {
			return nonzero[i].value > nonzero[j].value
		}
		return nonzero[i].name < nonzero[j].name
	})
	if len(nonzero) > 3 {
		nonzero = nonzero[:3]
	}

	var reasons []string
	for _, f := range nonzero {
		reasons = append(reasons, fmt.Sprintf("%s contributed %d", f.name, f.value))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Priority: %s (%d/100)", level, score)
	if len(reasons) > 0 {
		b.WriteString(" - ")
		b.WriteString(strings.Join(reasons, ", "))
	}
	return b.String()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
