// Package mailbox adapts mail providers to the triage MailboxPort.
package mailbox

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/jhillyerd/enmime"
	"github.com/sony/gobreaker"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"worker_server/core/domain"
	"worker_server/core/port/out"
)

// classificationHeaders are the RFC/ESP headers Fetch requests alongside
// the basic envelope, mirroring the teacher's Stage 0 header list.
var classificationHeaders = []string{
	"From", "To", "Cc", "Subject", "Date", "Message-ID",
	"List-Unsubscribe", "List-Id", "Precedence", "Auto-Submitted",
}

// GmailMailbox implements out.MailboxPort against the Gmail API.
type GmailMailbox struct {
	oauthCfg  *oauth2.Config
	token     *oauth2.Token
	ownDomain string
	cb        *gobreaker.CircuitBreaker
}

// NewGmailMailbox builds a mailbox capability from an already-exchanged
// OAuth token. clientID/clientSecret/redirectURL come from config.Config;
// ownDomain overrides the authenticated account's domain when non-empty.
func NewGmailMailbox(clientID, clientSecret, redirectURL string, token *oauth2.Token, ownDomain string) *GmailMailbox {
	cfg := &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  redirectURL,
		Scopes: []string{
			gmail.GmailReadonlyScope,
			gmail.GmailComposeScope,
			gmail.GmailSendScope,
		},
		Endpoint: google.Endpoint,
	}
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "gmail-mailbox",
		MaxRequests: 1,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(c gobreaker.Counts) bool { return c.ConsecutiveFailures >= 5 },
	})
	return &GmailMailbox{oauthCfg: cfg, token: token, ownDomain: ownDomain, cb: cb}
}

func (m *GmailMailbox) service(ctx context.Context) (*gmail.Service, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
	}
	return gmail.NewService(ctx, option.WithTokenSource(m.oauthCfg.TokenSource(ctx, m.token)))
}

func (m *GmailMailbox) execute(fn func() (interface{}, error)) (interface{}, error) {
	v, err := m.cb.Execute(func() (interface{}, error) {
		res, err := fn()
		if err != nil {
			if apiErr, ok := err.(*googleapi.Error); ok {
				switch apiErr.Code {
				case 400, 401, 403, 404:
					return nil, &nonCircuitError{err}
				}
			}
			return nil, err
		}
		return res, nil
	})
	if nce, ok := err.(*nonCircuitError); ok {
		return nil, nce.err
	}
	return v, err
}

type nonCircuitError struct{ err error }

func (e *nonCircuitError) Error() string { return e.err.Error() }

// List implements out.MailboxPort.
func (m *GmailMailbox) List(ctx context.Context, query string, maxResults, timeRangeDays int) ([]out.MessageRef, error) {
	svc, err := m.service(ctx)
	if err != nil {
		return nil, fmt.Errorf("gmail service: %w", err)
	}

	q := query
	if timeRangeDays > 0 {
		q = strings.TrimSpace(fmt.Sprintf("%s newer_than:%dd", q, timeRangeDays))
	}

	res, err := m.execute(func() (interface{}, error) {
		return svc.Users.Messages.List("me").Q(q).MaxResults(int64(maxResults)).Context(ctx).Do()
	})
	if err != nil {
		return nil, fmt.Errorf("gmail list: %w", err)
	}

	list := res.(*gmail.ListMessagesResponse)
	refs := make([]out.MessageRef, 0, len(list.Messages))
	for _, msg := range list.Messages {
		refs = append(refs, out.MessageRef{MessageID: msg.Id, ThreadID: msg.ThreadId})
	}
	return refs, nil
}

// Fetch implements out.MailboxPort.
func (m *GmailMailbox) Fetch(ctx context.Context, ref out.MessageRef) (*domain.EmailMetadata, error) {
	svc, err := m.service(ctx)
	if err != nil {
		return nil, fmt.Errorf("gmail service: %w", err)
	}

	res, err := m.execute(func() (interface{}, error) {
		return svc.Users.Messages.Get("me", ref.MessageID).Format("full").MetadataHeaders(classificationHeaders...).Context(ctx).Do()
	})
	if err != nil {
		return nil, fmt.Errorf("gmail get: %w", err)
	}

	return m.convert(res.(*gmail.Message)), nil
}

func (m *GmailMailbox) convert(msg *gmail.Message) *domain.EmailMetadata {
	meta := &domain.EmailMetadata{MessageID: msg.Id, ThreadID: msg.ThreadId}

	if msg.Payload == nil {
		return meta
	}
	for _, h := range msg.Payload.Headers {
		switch h.Name {
		case "Subject":
			meta.Subject = h.Value
		case "From":
			meta.Sender = extractAddress(h.Value)
		case "To":
			meta.Recipients = splitAddresses(h.Value)
		case "Cc":
			meta.CC = splitAddresses(h.Value)
		case "Date":
			if t, err := time.Parse(time.RFC1123Z, h.Value); err == nil {
				meta.Date = t
			}
		}
	}

	meta.Body = m.extractBody(msg)
	meta.HasAttachments = hasAttachment(msg.Payload)
	return meta
}

// extractBody decodes the raw MIME payload with enmime, which handles
// multipart/alternative far more robustly than walking gmail.MessagePart
// by hand (the teacher's extractBody only ever reads the top level).
func (m *GmailMailbox) extractBody(msg *gmail.Message) string {
	raw := gmailRawBytes(msg)
	if raw == nil {
		return ""
	}
	env, err := enmime.ReadEnvelope(bytes.NewReader(raw))
	if err != nil {
		return ""
	}
	if env.Text != "" {
		return env.Text
	}
	return env.HTML
}

func gmailRawBytes(msg *gmail.Message) []byte {
	if msg.Payload == nil {
		return nil
	}
	var find func(p *gmail.MessagePart) []byte
	find = func(p *gmail.MessagePart) []byte {
		if p.MimeType == "text/plain" && p.Body != nil && p.Body.Data != "" {
			if d, err := base64.URLEncoding.DecodeString(p.Body.Data); err == nil {
				return d
			}
		}
		for _, child := range p.Parts {
			if d := find(child); d != nil {
				return d
			}
		}
		return nil
	}
	return find(msg.Payload)
}

func hasAttachment(part *gmail.MessagePart) bool {
	if part.Filename != "" {
		return true
	}
	for _, p := range part.Parts {
		if hasAttachment(p) {
			return true
		}
	}
	return false
}

// CreateDraft implements out.MailboxPort.
func (m *GmailMailbox) CreateDraft(ctx context.Context, to, cc []string, subject, body string) (string, error) {
	svc, err := m.service(ctx)
	if err != nil {
		return "", fmt.Errorf("gmail service: %w", err)
	}

	raw := buildRawMessage(to, cc, subject, body)
	draft := &gmail.Draft{
		Message: &gmail.Message{Raw: base64.URLEncoding.EncodeToString([]byte(raw))},
	}

	res, err := m.execute(func() (interface{}, error) {
		return svc.Users.Drafts.Create("me", draft).Context(ctx).Do()
	})
	if err != nil {
		return "", fmt.Errorf("gmail create draft: %w", err)
	}
	return res.(*gmail.Draft).Id, nil
}

func buildRawMessage(to, cc []string, subject, body string) string {
	var b strings.Builder
	if len(to) > 0 {
		fmt.Fprintf(&b, "To: %s\r\n", strings.Join(to, ", "))
	}
	if len(cc) > 0 {
		fmt.Fprintf(&b, "Cc: %s\r\n", strings.Join(cc, ", "))
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	b.WriteString(body)
	return b.String()
}

// Send implements out.MailboxPort. Approval gating happens above this
// adapter; Send refuses anything but ApprovalApproved as a last line of
// defense.
func (m *GmailMailbox) Send(ctx context.Context, draftID string, approval out.ApprovalStatus) error {
	if approval != out.ApprovalApproved {
		return fmt.Errorf("draft %s: refusing to send without approval", draftID)
	}
	svc, err := m.service(ctx)
	if err != nil {
		return fmt.Errorf("gmail service: %w", err)
	}
	_, err = m.execute(func() (interface{}, error) {
		return svc.Users.Drafts.Send("me", &gmail.Draft{Id: draftID}).Context(ctx).Do()
	})
	if err != nil {
		return fmt.Errorf("gmail send draft: %w", err)
	}
	return nil
}

// Scopes implements out.MailboxPort.
func (m *GmailMailbox) Scopes(ctx context.Context) ([]out.PermissionScope, error) {
	scopes := make([]out.PermissionScope, 0, 3)
	for _, s := range m.oauthCfg.Scopes {
		switch s {
		case gmail.GmailReadonlyScope:
			scopes = append(scopes, out.ScopeRead)
		case gmail.GmailComposeScope:
			scopes = append(scopes, out.ScopeCompose)
		case gmail.GmailSendScope:
			scopes = append(scopes, out.ScopeSend)
		}
	}
	return scopes, nil
}

// OwnDomain implements out.MailboxPort.
func (m *GmailMailbox) OwnDomain(ctx context.Context) (string, error) {
	if m.ownDomain != "" {
		return m.ownDomain, nil
	}
	svc, err := m.service(ctx)
	if err != nil {
		return "", fmt.Errorf("gmail service: %w", err)
	}
	res, err := m.execute(func() (interface{}, error) {
		return svc.Users.GetProfile("me").Context(ctx).Do()
	})
	if err != nil {
		return "", fmt.Errorf("gmail profile: %w", err)
	}
	return extractDomain(res.(*gmail.Profile).EmailAddress), nil
}

func extractAddress(header string) string {
	if i := strings.LastIndex(header, "<"); i >= 0 {
		return strings.TrimSuffix(header[i+1:], ">")
	}
	return strings.TrimSpace(header)
}

func splitAddresses(header string) []string {
	if header == "" {
		return nil
	}
	parts := strings.Split(header, ",")
	addrs := make([]string, 0, len(parts))
	for _, p := range parts {
		addrs = append(addrs, extractAddress(p))
	}
	return addrs
}

func extractDomain(email string) string {
	if i := strings.LastIndex(email, "@"); i >= 0 {
		return email[i+1:]
	}
	return ""
}
