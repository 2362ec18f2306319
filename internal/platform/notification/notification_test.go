package notification

import (
	"context"
	"strconv"
	"strings"
	"testing"
)

func newTestManager() (*Manager, *MockEmailSender, *MockSMSSender) {
	email := &MockEmailSender{}
	sms := &MockSMSSender{}
	return NewManager(email, sms, NewTemplateEngine()), email, sms
}

func TestTemplateEngine_Render(t *testing.T) {
	e := NewTemplateEngine()

	r, err := e.Render("activity-decline-email", map[string]string{
		"severity": "HIGH",
		"area":     "Site",
		"percent":  "12.5",
		"current":  "70",
		"previous": "80",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Subject != "HIGH ALERT: Site Activity Decline" {
		t.Fatalf("subject = %q", r.Subject)
	}
	if r.Body != "Site activity declined by 12.5% (Current: 70, Previous: 80)" {
		t.Fatalf("body = %q", r.Body)
	}
	if r.Type != TypeEmail {
		t.Fatalf("type = %s", r.Type)
	}
}

func TestTemplateEngine_UncoveredKeysLeftIntact(t *testing.T) {
	e := NewTemplateEngine()

	r, err := e.Render("activity-decline-sms", map[string]string{"area": "User"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(r.Body, "{{percent}}") {
		t.Fatalf("unset placeholder rewritten: %q", r.Body)
	}
}

func TestTemplateEngine_UnknownTemplate(t *testing.T) {
	e := NewTemplateEngine()
	if _, err := e.Render("no-such-template", nil); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestTemplateEngine_RegisterOverrides(t *testing.T) {
	e := NewTemplateEngine()
	e.Register(Template{ID: "activity-decline-sms", Body: "custom {{x}}", Type: TypeSMS})

	r, err := e.Render("activity-decline-sms", map[string]string{"x": "y"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Body != "custom y" {
		t.Fatalf("body = %q", r.Body)
	}
}

func TestManager_SendEmail(t *testing.T) {
	m, email, _ := newTestManager()

	n := &Notification{Type: TypeEmail, Recipient: "admin@example.org", Subject: "s", Body: "b"}
	if err := m.Send(context.Background(), n); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.ID == "" || n.Status != StatusSent || n.SentAt == nil || n.Attempts != 1 {
		t.Fatalf("notification not finalized: %+v", n)
	}
	calls := email.Calls()
	if len(calls) != 1 || calls[0].To != "admin@example.org" {
		t.Fatalf("unexpected email calls: %+v", calls)
	}
}

func TestManager_SendSMS(t *testing.T) {
	m, _, sms := newTestManager()

	n := &Notification{Type: TypeSMS, Recipient: "+254700000001", Body: "alert"}
	if err := m.Send(context.Background(), n); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	calls := sms.Calls()
	if len(calls) != 1 || calls[0].Body != "alert" {
		t.Fatalf("unexpected sms calls: %+v", calls)
	}
}

func TestManager_SendUnsupportedType(t *testing.T) {
	m, _, _ := newTestManager()

	n := &Notification{Type: "push", Recipient: "x"}
	if err := m.Send(context.Background(), n); err == nil {
		t.Fatal("expected error for unsupported type")
	}
	if n.Status != StatusFailed {
		t.Fatalf("status = %s", n.Status)
	}
}

func TestManager_RetryAfterFailure(t *testing.T) {
	m, email, _ := newTestManager()
	email.ShouldFail = true
	email.FailError = "smtp unavailable"

	n := &Notification{Type: TypeEmail, Recipient: "admin@example.org", Body: "b"}
	if err := m.Send(context.Background(), n); err == nil {
		t.Fatal("expected send failure")
	}
	if n.Status != StatusFailed || n.Error != "smtp unavailable" {
		t.Fatalf("failure not recorded: %+v", n)
	}

	email.ShouldFail = false
	if err := m.Retry(context.Background(), n.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := m.Get(n.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != StatusSent || got.Error != "" || got.Attempts != 2 {
		t.Fatalf("retry not finalized: %+v", got)
	}
}

func TestManager_RetryRejectsSent(t *testing.T) {
	m, _, _ := newTestManager()

	n := &Notification{Type: TypeEmail, Recipient: "a@example.org", Body: "b"}
	if err := m.Send(context.Background(), n); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.Retry(context.Background(), n.ID); err == nil {
		t.Fatal("expected error retrying a sent notification")
	}
	if err := m.Retry(context.Background(), "missing"); err == nil {
		t.Fatal("expected error for unknown id")
	}
}

func TestManager_SendFromTemplate(t *testing.T) {
	m, _, sms := newTestManager()

	n, err := m.SendFromTemplate(context.Background(), "activity-decline-sms", "+254700000001", map[string]string{
		"area": "Site", "percent": "8.3",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n.Type != TypeSMS || n.TemplateID != "activity-decline-sms" {
		t.Fatalf("unexpected notification: %+v", n)
	}
	calls := sms.Calls()
	if len(calls) != 1 || calls[0].Body != "ALERT: Site activity declined by 8.3%" {
		t.Fatalf("unexpected sms calls: %+v", calls)
	}

	if _, err := m.SendFromTemplate(context.Background(), "missing", "x", nil); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestManager_ListByRecipientNewestFirst(t *testing.T) {
	m, _, _ := newTestManager()

	for i := 0; i < 5; i++ {
		n := &Notification{Type: TypeEmail, Recipient: "a@example.org", Body: strconv.Itoa(i)}
		if err := m.Send(context.Background(), n); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	other := &Notification{Type: TypeEmail, Recipient: "b@example.org", Body: "other"}
	if err := m.Send(context.Background(), other); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := m.ListByRecipient("a@example.org", 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(got))
	}
	if got[0].Body != "4" || got[2].Body != "2" {
		t.Fatalf("not newest first: %s %s %s", got[0].Body, got[1].Body, got[2].Body)
	}
}

func TestManager_Stats(t *testing.T) {
	m, email, _ := newTestManager()

	ok := &Notification{Type: TypeEmail, Recipient: "a@example.org", Body: "b"}
	if err := m.Send(context.Background(), ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	email.ShouldFail = true
	email.FailError = "down"
	bad := &Notification{Type: TypeEmail, Recipient: "a@example.org", Body: "b"}
	_ = m.Send(context.Background(), bad)

	stats := m.Stats()
	if stats[StatusSent] != 1 || stats[StatusFailed] != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}
