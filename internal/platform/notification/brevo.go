package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// BrevoSender sends transactional email through the Brevo (formerly
// Sendinblue) API.
type BrevoSender struct {
	client      *resty.Client
	senderName  string
	senderEmail string
	logger      zerolog.Logger
}

type brevoAddress struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type brevoEmailRequest struct {
	Sender      brevoAddress   `json:"sender"`
	To          []brevoAddress `json:"to"`
	Subject     string         `json:"subject"`
	HTMLContent string         `json:"htmlContent"`
}

type brevoEmailResponse struct {
	MessageID string `json:"messageId"`
}

func NewBrevoSender(baseURL, apiKey, senderName, senderEmail string, logger zerolog.Logger) *BrevoSender {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(1 * time.Second).
		SetHeader("api-key", apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &BrevoSender{
		client:      client,
		senderName:  senderName,
		senderEmail: senderEmail,
		logger:      logger.With().Str("component", "email").Logger(),
	}
}

func (s *BrevoSender) SendEmail(ctx context.Context, to, subject, body string) error {
	req := brevoEmailRequest{
		Sender:      brevoAddress{Name: s.senderName, Email: s.senderEmail},
		To:          []brevoAddress{{Email: to}},
		Subject:     subject,
		HTMLContent: "<p>" + body + "</p>",
	}

	var response brevoEmailResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&response).
		Post("/v3/smtp/email")
	if err != nil {
		return fmt.Errorf("brevo request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("brevo request: status %d", resp.StatusCode())
	}

	s.logger.Debug().Str("to", to).Str("message_id", response.MessageID).Msg("email dispatched")
	return nil
}
