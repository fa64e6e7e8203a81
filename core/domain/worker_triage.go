package domain

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// Email metadata (triage pipeline input)
// =============================================================================

// EmailAddress is a parsed RFC5322 address split into local-part and domain.
type EmailAddress struct {
	Raw    string `json:"raw"`
	Local  string `json:"local"`
	Domain string `json:"domain"`
}

// RFCClassificationHeaders carries the RFC/ESP/developer-service headers a
// mailbox capability may surface alongside a message. All fields optional;
// zero value means "header absent".
type RFCClassificationHeaders struct {
	ListUnsubscribe string `json:"list_unsubscribe,omitempty"`
	ListID          string `json:"list_id,omitempty"`
	Precedence      string `json:"precedence,omitempty"`
	AutoSubmitted   string `json:"auto_submitted,omitempty"`
	XMailer         string `json:"x_mailer,omitempty"`
	IsMailchimp     bool   `json:"is_mailchimp,omitempty"`
	IsSendGrid      bool   `json:"is_sendgrid,omitempty"`
	IsAmazonSES     bool   `json:"is_amazon_ses,omitempty"`
}

// EmailMetadata is immutable after ingestion (spec.md §3).
type EmailMetadata struct {
	MessageID      string                    `json:"message_id"`
	ThreadID       string                    `json:"thread_id"`
	Sender         string                    `json:"sender"`
	Subject        string                    `json:"subject"`
	Body           string                    `json:"body"`
	Recipients     []string                  `json:"recipients"`
	CC             []string                  `json:"cc"`
	Date           time.Time                 `json:"date"`
	HasAttachments bool                      `json:"has_attachments"`
	RFCHeaders     *RFCClassificationHeaders `json:"rfc_headers,omitempty"`
}

// =============================================================================
// Sender classification (C2)
// =============================================================================

type SenderType string

const (
	SenderVIP      SenderType = "VIP"
	SenderTeam     SenderType = "TEAM"
	SenderVendor   SenderType = "VENDOR"
	SenderCustomer SenderType = "CUSTOMER"
	SenderSpam     SenderType = "SPAM"
	SenderUnknown  SenderType = "UNKNOWN"
)

type SenderClassification struct {
	SenderType SenderType `json:"sender_type"`
	IsVIP      bool       `json:"is_vip"`
	IsInternal bool       `json:"is_internal"`
	Domain     string     `json:"domain"`
	Confidence float64    `json:"confidence"`
	Notes      string     `json:"notes"`
}

// =============================================================================
// Intent detection (C3)
// =============================================================================

type Intent string

const (
	IntentLegal          Intent = "legal"
	IntentFinance        Intent = "finance"
	IntentIT             Intent = "it"
	IntentHR             Intent = "hr"
	IntentMeeting        Intent = "meeting"
	IntentInvitation     Intent = "invitation"
	IntentComplaint      Intent = "complaint"
	IntentAcademic       Intent = "academic"
	IntentSubjectOverride Intent = "subject_override"
)

// UrgencyCap is the maximum value urgency_score may take after clamping.
const UrgencyCap = 40

type IntentDetection struct {
	Intents         map[Intent]bool `json:"intents"`
	UrgencyKeywords []string        `json:"urgency_keywords"`
	UrgencyScore    int             `json:"urgency_score"`
	ActionRequired  bool            `json:"action_required"`
	QuestionDetected bool           `json:"question_detected"`
	IsFollowUp      bool            `json:"is_follow_up"`
	PrimaryIntent   Intent          `json:"primary_intent,omitempty"`
}

// Has reports whether the given intent was detected.
func (d *IntentDetection) Has(i Intent) bool {
	if d == nil || d.Intents == nil {
		return false
	}
	return d.Intents[i]
}

// =============================================================================
// Priority score (C4)
// =============================================================================

type PriorityLevel string

const (
	PriorityHigh         PriorityLevel = "HIGH"
	PriorityMedium       PriorityLevel = "MEDIUM"
	PriorityLow          PriorityLevel = "LOW"
	PriorityNotRequired  PriorityLevel = "NOT_REQUIRED"
)

type PriorityScore struct {
	Score        int             `json:"score"`
	Level        PriorityLevel   `json:"priority_level"`
	Factors      map[string]int  `json:"factors"`
	Reasoning    string          `json:"reasoning"`
}

// =============================================================================
// Category (C5)
// =============================================================================

type TriageCategory string

const (
	TriageAction        TriageCategory = "ACTION"
	TriageInformational TriageCategory = "INFORMATIONAL"
	TriageSpam          TriageCategory = "SPAM"
	TriageMeeting       TriageCategory = "MEETING"
	TriageLegal         TriageCategory = "LEGAL"
	TriageFinance       TriageCategory = "FINANCE"
	TriageHR            TriageCategory = "HR"
	TriageIT            TriageCategory = "IT"
	TriageOther         TriageCategory = "OTHER"
)

// =============================================================================
// Security flags (C6)
// =============================================================================

type FlagType string

const (
	FlagPIIDetected        FlagType = "pii_detected"
	FlagReplyAllWarning    FlagType = "reply_all_warning"
	FlagReplyAllRisk       FlagType = "reply_all_risk"
	FlagLegalContent       FlagType = "legal_content"
	FlagFinanceContent     FlagType = "finance_content"
	FlagExternalSender     FlagType = "external_sender"
	FlagToneViolation      FlagType = "tone_violation"
	FlagLegalFinanceEscalation FlagType = "legal_finance_escalation"
)

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

type SecurityFlag struct {
	FlagType     FlagType       `json:"flag_type"`
	Severity     Severity       `json:"severity"`
	Description  string         `json:"description"`
	Details      map[string]any `json:"details,omitempty"`
	BlocksSending bool          `json:"blocks_sending"`
}

// =============================================================================
// Draft reply (C8)
// =============================================================================

type DraftReply struct {
	Subject          string    `json:"subject"`
	Body             string    `json:"body"`
	Recipients       []string  `json:"recipients"`
	CC               []string  `json:"cc"`
	Tone             string    `json:"tone"`
	PreservesTone    bool      `json:"preserves_tone"`
	CreatedAt        time.Time `json:"created_at"`
	RequiresApproval bool      `json:"requires_approval"`
	DraftID          string    `json:"draft_id,omitempty"`
}

// =============================================================================
// Processed email (pipeline ownership root)
// =============================================================================

type ProcessingStatus string

const (
	StatusPending            ProcessingStatus = "PENDING"
	StatusProcessing         ProcessingStatus = "PROCESSING"
	StatusBlocked            ProcessingStatus = "BLOCKED"
	StatusDraftReady         ProcessingStatus = "DRAFT_READY"
	StatusApprovalRequired   ProcessingStatus = "APPROVAL_REQUIRED"
)

// ClarificationRequest is attached when intent confidence is low or
// recipients are ambiguous; its presence blocks auto-approval.
type ClarificationRequest struct {
	Questions []string `json:"questions"`
	Reason    string   `json:"reason"`
}

type ProcessedEmail struct {
	Metadata       EmailMetadata          `json:"metadata"`
	Classification SenderClassification   `json:"classification"`
	Intent         IntentDetection        `json:"intent"`
	Priority       PriorityScore          `json:"priority"`
	Category       TriageCategory         `json:"category"`
	IsSpam         bool                   `json:"is_spam"`
	IsBlocked      bool                   `json:"is_blocked"`
	RequiresReply  bool                   `json:"requires_reply"`
	HasPII         bool                   `json:"has_pii"`
	DraftReply     *DraftReply            `json:"draft_reply,omitempty"`
	SecurityFlags  []SecurityFlag         `json:"security_flags"`
	ProcessingNotes []string              `json:"processing_notes"`
	Status         ProcessingStatus       `json:"status"`
	Clarification  *ClarificationRequest  `json:"clarification_request,omitempty"`

	// ScheduleSuggestions/ActionItems are optional enrichment fields. The
	// pipeline does not populate them, so they are empty in its output.
	ScheduleSuggestions []ScheduleSuggestion `json:"schedule_suggestions,omitempty"`
	ActionItems         []ActionItem         `json:"action_items,omitempty"`
}

// AddNote appends an audit-trail note.
func (p *ProcessedEmail) AddNote(note string) {
	p.ProcessingNotes = append(p.ProcessingNotes, note)
}

// AddFlag appends a security flag and raises IsBlocked when it blocks sending.
func (p *ProcessedEmail) AddFlag(f SecurityFlag) {
	p.SecurityFlags = append(p.SecurityFlags, f)
	if f.BlocksSending {
		p.IsBlocked = true
	}
}

// =============================================================================
// Processing batch
// =============================================================================

type UserScope struct {
	Query         string `json:"query,omitempty"`
	MaxResults    int    `json:"max_results"`
	TimeRangeDays int    `json:"time_range_days"`
}

// DefaultUserScope applies spec.md §6 defaults.
func DefaultUserScope() UserScope {
	return UserScope{MaxResults: 50, TimeRangeDays: 7}
}

type BatchMode string

const (
	BatchModeFull      BatchMode = "full"
	BatchModeDraftOnly BatchMode = "draft_only"
)

type ProcessingBatch struct {
	BatchID        uuid.UUID         `json:"batch_id"`
	UserCommand    string            `json:"user_command"`
	UserScope      UserScope         `json:"user_scope"`
	Emails         []*ProcessedEmail `json:"emails"`
	Mode           BatchMode         `json:"mode"`
	StartedAt      time.Time         `json:"started_at"`
	CompletedAt    *time.Time        `json:"completed_at,omitempty"`
	Errors         []string          `json:"errors"`
	TotalProcessed int               `json:"total_processed"`
}

// NewProcessingBatch creates a batch with a fresh ID and start time.
func NewProcessingBatch(userCommand string, scope UserScope, now time.Time) *ProcessingBatch {
	return &ProcessingBatch{
		BatchID:     uuid.New(),
		UserCommand: userCommand,
		UserScope:   scope,
		Mode:        BatchModeFull,
		StartedAt:   now,
	}
}
