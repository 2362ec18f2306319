package notification

import (
	"fmt"
	"strings"
	"sync"
)

// Template is a reusable message with {{key}} placeholders.
type Template struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
	Type    Type   `json:"type"`
}

// Rendered is the result of substituting data into a template.
type Rendered struct {
	Subject string
	Body    string
	Type    Type
}

// TemplateEngine stores templates and renders them with data maps.
type TemplateEngine struct {
	mu        sync.RWMutex
	templates map[string]*Template
}

// NewTemplateEngine creates an engine with the built-in alert templates
// registered.
func NewTemplateEngine() *TemplateEngine {
	e := &TemplateEngine{templates: make(map[string]*Template)}
	e.registerBuiltIn()
	return e
}

func (e *TemplateEngine) registerBuiltIn() {
	builtIn := []Template{
		{
			ID:   "activity-decline-sms",
			Name: "Activity Decline SMS",
			Body: "ALERT: {{area}} activity declined by {{percent}}%",
			Type: TypeSMS,
		},
		{
			ID:      "activity-decline-email",
			Name:    "Activity Decline Email",
			Subject: "{{severity}} ALERT: {{area}} Activity Decline",
			Body:    "{{area}} activity declined by {{percent}}% (Current: {{current}}, Previous: {{previous}})",
			Type:    TypeEmail,
		},
		{
			ID:      "performance-decline-email",
			Name:    "Performance Decline Email",
			Subject: "ALERT: Follow-up Performance Decline",
			Body:    "Follow-up metrics fell below target: new diagnoses {{new_diagnoses}}%, BP follow-up {{bp_followup}}%, BG follow-up {{bg_followup}}%, BP controlled {{bp_controlled}}%.",
			Type:    TypeEmail,
		},
		{
			ID:      "anomaly-digest-email",
			Name:    "Anomaly Digest Email",
			Subject: "Daily Anomaly Digest: {{count}} findings",
			Body:    "The latest classification run produced {{count}} anomalies, {{critical}} of them critical. Review the dashboard for details.",
			Type:    TypeEmail,
		},
	}
	for i := range builtIn {
		t := builtIn[i]
		e.templates[t.ID] = &t
	}
}

// Register adds or replaces a template.
func (e *TemplateEngine) Register(t Template) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.templates[t.ID] = &t
}

// Render substitutes {{key}} placeholders with values from data. Keys in
// the template that data does not cover are left as-is.
func (e *TemplateEngine) Render(templateID string, data map[string]string) (Rendered, error) {
	e.mu.RLock()
	t, ok := e.templates[templateID]
	e.mu.RUnlock()
	if !ok {
		return Rendered{}, fmt.Errorf("template %q not found", templateID)
	}

	r := Rendered{Subject: t.Subject, Body: t.Body, Type: t.Type}
	for k, v := range data {
		placeholder := "{{" + k + "}}"
		r.Subject = strings.ReplaceAll(r.Subject, placeholder, v)
		r.Body = strings.ReplaceAll(r.Body, placeholder, v)
	}
	return r, nil
}
