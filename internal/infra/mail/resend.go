package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"coolslate/internal/pkg/config"
	"coolslate/internal/pkg/errs"
)

// Mailer delivers customer notifications. Sending is best effort; booking
// flows never fail on mail errors.
type Mailer interface {
	Send(ctx context.Context, to, subject, html string) error
}

// ResendMailer posts through the Resend transactional mail API.
type ResendMailer struct {
	cfg    config.MailConfig
	client *http.Client
}

func NewResendMailer(cfg config.MailConfig) *ResendMailer {
	return &ResendMailer{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (m *ResendMailer) Send(ctx context.Context, to, subject, html string) error {
	if m.cfg.APIKey == "" {
		slog.Debug("mail API key not configured, skipping send", "to", to, "subject", subject)
		return nil
	}

	payload, err := json.Marshal(sendRequest{
		From:    m.cfg.From,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal mail payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.BaseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build mail request")
	}
	req.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "mail request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return errs.New(fmt.Sprintf("mail API returned status %d", resp.StatusCode))
	}
	return nil
}
