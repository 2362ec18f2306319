// Package notification delivers monitoring and clinical alerts over SMS
// and email, with template rendering, an in-memory send log, retry, and
// Echo HTTP handlers.
package notification

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Type is the delivery channel for a notification.
type Type string

const (
	TypeEmail Type = "email"
	TypeSMS   Type = "sms"
)

// Delivery status values.
const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

// Notification is a single outbound message and its delivery outcome.
type Notification struct {
	ID           string            `json:"id"`
	Type         Type              `json:"type"`
	Recipient    string            `json:"recipient"`
	Subject      string            `json:"subject,omitempty"`
	Body         string            `json:"body"`
	Severity     string            `json:"severity,omitempty"`
	TemplateID   string            `json:"template_id,omitempty"`
	TemplateData map[string]string `json:"template_data,omitempty"`
	Status       string            `json:"status"`
	Attempts     int               `json:"attempts"`
	CreatedAt    time.Time         `json:"created_at"`
	SentAt       *time.Time        `json:"sent_at,omitempty"`
	Error        string            `json:"error,omitempty"`
}

// EmailSender sends a single email message.
type EmailSender interface {
	SendEmail(ctx context.Context, to, subject, body string) error
}

// SMSSender sends a single SMS message.
type SMSSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

// Manager dispatches notifications through the configured senders and
// keeps an ordered in-memory send log.
type Manager struct {
	email     EmailSender
	sms       SMSSender
	templates *TemplateEngine

	mu    sync.RWMutex
	log   []*Notification
	byID  map[string]*Notification
	index map[string][]*Notification
}

func NewManager(email EmailSender, sms SMSSender, tpl *TemplateEngine) *Manager {
	return &Manager{
		email:     email,
		sms:       sms,
		templates: tpl,
		byID:      make(map[string]*Notification),
		index:     make(map[string][]*Notification),
	}
}

func (m *Manager) deliver(ctx context.Context, n *Notification) error {
	switch n.Type {
	case TypeEmail:
		return m.email.SendEmail(ctx, n.Recipient, n.Subject, n.Body)
	case TypeSMS:
		return m.sms.SendSMS(ctx, n.Recipient, n.Body)
	default:
		return fmt.Errorf("unsupported notification type: %s", n.Type)
	}
}

// Send dispatches a notification, assigns its ID and timestamps, and
// records the outcome in the send log. The notification is logged even
// when delivery fails so it can be retried later.
func (m *Manager) Send(ctx context.Context, n *Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	n.CreatedAt = time.Now().UTC()
	n.Status = StatusPending

	sendErr := m.deliver(ctx, n)
	n.Attempts++
	if sendErr != nil {
		n.Status = StatusFailed
		n.Error = sendErr.Error()
	} else {
		n.Status = StatusSent
		sentAt := time.Now().UTC()
		n.SentAt = &sentAt
	}

	m.mu.Lock()
	m.log = append(m.log, n)
	m.byID[n.ID] = n
	m.index[n.Recipient] = append(m.index[n.Recipient], n)
	m.mu.Unlock()

	return sendErr
}

// SendFromTemplate renders a registered template and sends the result.
// The channel comes from the template definition.
func (m *Manager) SendFromTemplate(ctx context.Context, templateID, recipient string, data map[string]string) (*Notification, error) {
	rendered, err := m.templates.Render(templateID, data)
	if err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}

	n := &Notification{
		Type:         rendered.Type,
		Recipient:    recipient,
		Subject:      rendered.Subject,
		Body:         rendered.Body,
		TemplateID:   templateID,
		TemplateData: data,
	}
	if err := m.Send(ctx, n); err != nil {
		return n, err
	}
	return n, nil
}

// Get returns a logged notification by ID.
func (m *Manager) Get(id string) (*Notification, error) {
	m.mu.RLock()
	n, ok := m.byID[id]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("notification %q not found", id)
	}
	return n, nil
}

// ListByRecipient returns the recipient's notifications newest first,
// up to limit.
func (m *Manager) ListByRecipient(recipient string, limit int) []*Notification {
	m.mu.RLock()
	defer m.mu.RUnlock()

	logged := m.index[recipient]
	var out []*Notification
	for i := len(logged) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, logged[i])
	}
	return out
}

// Retry re-sends a failed notification in place.
func (m *Manager) Retry(ctx context.Context, id string) error {
	m.mu.RLock()
	n, ok := m.byID[id]
	m.mu.RUnlock()
	if !ok {
		return fmt.Errorf("notification %q not found", id)
	}
	if n.Status != StatusFailed {
		return fmt.Errorf("notification %q is not in failed status (current: %s)", id, n.Status)
	}

	sendErr := m.deliver(ctx, n)

	m.mu.Lock()
	n.Attempts++
	if sendErr != nil {
		n.Status = StatusFailed
		n.Error = sendErr.Error()
	} else {
		n.Status = StatusSent
		sentAt := time.Now().UTC()
		n.SentAt = &sentAt
		n.Error = ""
	}
	m.mu.Unlock()

	return sendErr
}

// Stats returns send-log counts grouped by delivery status.
func (m *Manager) Stats() map[string]int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := make(map[string]int)
	for _, n := range m.log {
		stats[n.Status]++
	}
	return stats
}
