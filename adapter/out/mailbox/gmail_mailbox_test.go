package mailbox

import (
	"encoding/base64"
	"strings"
	"testing"

	"google.golang.org/api/gmail/v1"
)

func TestExtractAddressStripsDisplayName(t *testing.T) {
	got := extractAddress("Jane Doe <jane@example.com>")
	if got != "jane@example.com" {
		t.Fatalf("expected jane@example.com, got %q", got)
	}
}

func TestExtractAddressHandlesBareAddress(t *testing.T) {
	got := extractAddress("jane@example.com")
	if got != "jane@example.com" {
		t.Fatalf("expected jane@example.com, got %q", got)
	}
}

func TestSplitAddressesHandlesMultipleRecipients(t *testing.T) {
	got := splitAddresses("Jane Doe <jane@example.com>, bob@example.com")
	if len(got) != 2 || got[0] != "jane@example.com" || got[1] != "bob@example.com" {
		t.Fatalf("unexpected split result: %v", got)
	}
}

func TestSplitAddressesHandlesEmptyHeader(t *testing.T) {
	if got := splitAddresses(""); got != nil {
		t.Fatalf("expected nil for an empty header, got %v", got)
	}
}

func TestExtractDomainFromEmailAddress(t *testing.T) {
	if got := extractDomain("jane@acme.com"); got != "acme.com" {
		t.Fatalf("expected acme.com, got %q", got)
	}
}

func TestExtractDomainHandlesMissingAt(t *testing.T) {
	if got := extractDomain("not-an-email"); got != "" {
		t.Fatalf("expected empty domain, got %q", got)
	}
}

func TestHasAttachmentFindsNestedFilename(t *testing.T) {
	part := &gmail.MessagePart{
		Parts: []*gmail.MessagePart{
			{MimeType: "text/plain"},
			{Parts: []*gmail.MessagePart{
				{Filename: "invoice.pdf"},
			}},
		},
	}
	if !hasAttachment(part) {
		t.Fatal("expected a nested attachment to be detected")
	}
}

func TestHasAttachmentFalseWithNoFilenames(t *testing.T) {
	part := &gmail.MessagePart{
		Parts: []*gmail.MessagePart{
			{MimeType: "text/plain"},
			{MimeType: "text/html"},
		},
	}
	if hasAttachment(part) {
		t.Fatal("expected no attachment to be detected")
	}
}

func TestGmailRawBytesDecodesPlainTextPart(t *testing.T) {
	encoded := base64.URLEncoding.EncodeToString([]byte("hello from gmail"))
	msg := &gmail.Message{
		Payload: &gmail.MessagePart{
			Parts: []*gmail.MessagePart{
				{MimeType: "text/html", Body: &gmail.MessagePartBody{Data: base64.URLEncoding.EncodeToString([]byte("<p>html</p>"))}},
				{MimeType: "text/plain", Body: &gmail.MessagePartBody{Data: encoded}},
			},
		},
	}
	got := gmailRawBytes(msg)
	if string(got) != "hello from gmail" {
		t.Fatalf("expected decoded plain text body, got %q", got)
	}
}

func TestGmailRawBytesNilWithNoPayload(t *testing.T) {
	if got := gmailRawBytes(&gmail.Message{}); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestConvertParsesHeaders(t *testing.T) {
	m := &GmailMailbox{}
	msg := &gmail.Message{
		Id:       "msg-1",
		ThreadId: "thread-1",
		Payload: &gmail.MessagePart{
			Headers: []*gmail.MessagePartHeader{
				{Name: "Subject", Value: "Q3 renewal"},
				{Name: "From", Value: "Jane Doe <jane@example.com>"},
				{Name: "To", Value: "bob@example.com"},
				{Name: "Cc", Value: "carol@example.com"},
				{Name: "Date", Value: "Mon, 02 Jan 2006 15:04:05 -0700"},
			},
		},
	}

	meta := m.convert(msg)
	if meta.MessageID != "msg-1" || meta.ThreadID != "thread-1" {
		t.Fatalf("expected ids to pass through, got %+v", meta)
	}
	if meta.Subject != "Q3 renewal" {
		t.Fatalf("expected subject parsed, got %q", meta.Subject)
	}
	if meta.Sender != "jane@example.com" {
		t.Fatalf("expected sender address extracted, got %q", meta.Sender)
	}
	if len(meta.Recipients) != 1 || meta.Recipients[0] != "bob@example.com" {
		t.Fatalf("expected recipients parsed, got %v", meta.Recipients)
	}
	if len(meta.CC) != 1 || meta.CC[0] != "carol@example.com" {
		t.Fatalf("expected CC parsed, got %v", meta.CC)
	}
	if meta.Date.IsZero() {
		t.Fatal("expected date to be parsed")
	}
}

func TestBuildRawMessageIncludesHeadersAndBody(t *testing.T) {
	raw := buildRawMessage([]string{"bob@example.com"}, []string{"carol@example.com"}, "Re: hello", "body text")
	if !strings.Contains(raw, "To: bob@example.com\r\n") {
		t.Fatalf("expected To header, got %q", raw)
	}
	if !strings.Contains(raw, "Cc: carol@example.com\r\n") {
		t.Fatalf("expected Cc header, got %q", raw)
	}
	if !strings.Contains(raw, "Subject: Re: hello\r\n") {
		t.Fatalf("expected Subject header, got %q", raw)
	}
	if !strings.Contains(raw, "body text") {
		t.Fatalf("expected body, got %q", raw)
	}
}
