package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// DefaultEndpoint is the EmailJS REST send endpoint.
const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJSConfig identifies the EmailJS service and template to send through.
type EmailJSConfig struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PublicKey  string
	ToName     string
	ToEmail    string
	Timeout    time.Duration
}

// Configured reports whether enough is set to attempt delivery.
func (c EmailJSConfig) Configured() bool {
	return c.ServiceID != "" && c.TemplateID != "" && c.PublicKey != ""
}

// EmailJSSender posts forms to the EmailJS REST API.
type EmailJSSender struct {
	cfg    EmailJSConfig
	client *http.Client
}

// NewEmailJSSender creates a sender. A nil client uses one with cfg.Timeout.
func NewEmailJSSender(cfg EmailJSConfig, client *http.Client) *EmailJSSender {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &EmailJSSender{cfg: cfg, client: client}
}

// NewSender returns an EmailJS sender when cfg is complete and a NoopSender
// otherwise.
func NewSender(cfg EmailJSConfig) Sender {
	if !cfg.Configured() {
		return NoopSender{}
	}
	return NewEmailJSSender(cfg, nil)
}

type emailJSRequest struct {
	ServiceID      string         `json:"service_id"`
	TemplateID     string         `json:"template_id"`
	UserID         string         `json:"user_id"`
	TemplateParams templateParams `json:"template_params"`
}

type templateParams struct {
	FromName  string `json:"from_name"`
	ToName    string `json:"to_name"`
	FromEmail string `json:"from_email"`
	ToEmail   string `json:"to_email"`
	Message   string `json:"message"`
}

// Send validates f and posts it. Any failure after validation is reported as
// ErrDeliveryFailed.
func (s *EmailJSSender) Send(ctx context.Context, f Form) error {
	if errs := f.Validate(); len(errs) > 0 {
		return fmt.Errorf("invalid form: %d field(s)", len(errs))
	}

	body, err := json.Marshal(emailJSRequest{
		ServiceID:  s.cfg.ServiceID,
		TemplateID: s.cfg.TemplateID,
		UserID:     s.cfg.PublicKey,
		TemplateParams: templateParams{
			FromName:  strings.TrimSpace(f.Name),
			ToName:    s.cfg.ToName,
			FromEmail: strings.TrimSpace(f.Email),
			ToEmail:   s.cfg.ToEmail,
			Message:   f.Message,
		},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		log.Printf("contact: send: %v", err)
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Printf("contact: send: status %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
		return fmt.Errorf("%w: status %d", ErrDeliveryFailed, resp.StatusCode)
	}
	return nil
}
