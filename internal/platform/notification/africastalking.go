package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// AfricasTalkingSender sends SMS through the Africa's Talking bulk
// messaging API.
type AfricasTalkingSender struct {
	client   *resty.Client
	username string
	senderID string
	logger   zerolog.Logger
}

type africasTalkingResponse struct {
	SMSMessageData struct {
		Message    string `json:"Message"`
		Recipients []struct {
			Number     string `json:"number"`
			Status     string `json:"status"`
			StatusCode int    `json:"statusCode"`
		} `json:"Recipients"`
	} `json:"SMSMessageData"`
}

func NewAfricasTalkingSender(baseURL, username, apiKey, senderID string, logger zerolog.Logger) *AfricasTalkingSender {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetRetryCount(2).
		SetRetryWaitTime(1 * time.Second).
		SetHeader("apiKey", apiKey).
		SetHeader("Accept", "application/json")

	return &AfricasTalkingSender{
		client:   client,
		username: username,
		senderID: senderID,
		logger:   logger.With().Str("component", "sms").Logger(),
	}
}

func (s *AfricasTalkingSender) SendSMS(ctx context.Context, to, body string) error {
	var response africasTalkingResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": s.username,
			"to":       to,
			"message":  body,
			"from":     s.senderID,
		}).
		SetResult(&response).
		Post("/version1/messaging")
	if err != nil {
		return fmt.Errorf("africastalking request: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("africastalking request: status %d", resp.StatusCode())
	}

	for _, r := range response.SMSMessageData.Recipients {
		// Per the API, 100 and 101 mean processed/sent.
		if r.StatusCode != 100 && r.StatusCode != 101 {
			return fmt.Errorf("africastalking rejected %s: %s", r.Number, r.Status)
		}
	}

	s.logger.Debug().Str("to", to).Msg("sms dispatched")
	return nil
}
