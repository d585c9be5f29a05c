// Package mail sends templated emails through a REST mail API.
package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"tripbook/config"
	"tripbook/internal/domain/service"
	"tripbook/internal/errors"
)

const defaultTimeout = 10 * time.Second

// sendRequest is the body accepted by the template send endpoint.
type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

type restMailer struct {
	cfg        *config.MailConfig
	httpClient *http.Client
	logger     *slog.Logger
}

// NewRESTMailer creates a Mailer for the configured template service.
func NewRESTMailer(cfg *config.Config, logger *slog.Logger) (service.Mailer, error) {
	mc := cfg.Mail
	if mc == nil || mc.Endpoint == "" || mc.ServiceID == "" {
		return nil, errors.New("mail.endpoint and mail.serviceId are required")
	}

	timeout := mc.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &restMailer{
		cfg:        mc,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}, nil
}

func (m *restMailer) TemplateFor(kind string) (string, bool) {
	id, ok := m.cfg.Templates[kind]

	return id, ok && id != ""
}

// Send posts one message. A 4xx other than 429 is a permanent rejection.
func (m *restMailer) Send(ctx context.Context, msg *service.MailMessage) error {
	body, err := json.Marshal(sendRequest{
		ServiceID:      m.cfg.ServiceID,
		TemplateID:     msg.TemplateID,
		UserID:         m.cfg.PublicKey,
		AccessToken:    m.cfg.AccessToken,
		TemplateParams: msg.TemplateParams,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "mail request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
		return errors.Wrapf(service.ErrMailRejected, "status %d: %s", resp.StatusCode, detail)
	}

	return errors.Errorf("mail provider returned status %d: %s", resp.StatusCode, detail)
}
