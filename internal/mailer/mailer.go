// Package mailer relays structured form submissions (contact, join, donate)
// to the transactional email service, addressed to the fixed lead recipient.
// The rest of the system depends on it only as fire-and-forget with a
// success/failure result.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Template identifiers on the dispatch service, one per form.
const (
	templateContact = "template_contact"
	templateJoin    = "template_join"
	templateDonate  = "template_donate"
)

// Config identifies the dispatch service account.
type Config struct {
	Endpoint  string `yaml:"endpoint"`
	ServiceID string `yaml:"service_id"`
	PublicKey string `yaml:"public_key"`
	LeadEmail string `yaml:"lead_email"`
}

// Enabled reports whether the relay is configured.
func (c Config) Enabled() bool {
	return c.Endpoint != "" && c.ServiceID != "" && c.PublicKey != ""
}

// ContactForm is a general inquiry.
type ContactForm struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// Validate enforces the required contact fields.
func (f ContactForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.FromName, validation.Required),
		validation.Field(&f.FromEmail, validation.Required, is.Email),
		validation.Field(&f.Message, validation.Required),
	)
}

// JoinForm is a volunteer or partner application.
type JoinForm struct {
	FullName       string `json:"full_name"`
	EmailAddress   string `json:"email_address"`
	AreaOfInterest string `json:"area_of_interest"`
	AboutYourself  string `json:"about_yourself"`
}

// Validate enforces the required join fields.
func (f JoinForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.FullName, validation.Required),
		validation.Field(&f.EmailAddress, validation.Required, is.Email),
	)
}

// DonateForm is a donation pledge.
type DonateForm struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Email           string `json:"email"`
	DonationPurpose string `json:"donation_purpose"`
	Amount          string `json:"amount"`
}

// Validate enforces the required donate fields.
func (f DonateForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.FirstName, validation.Required),
		validation.Field(&f.Email, validation.Required, is.Email),
		validation.Field(&f.Amount, validation.Required),
	)
}

// Client posts form payloads to the dispatch service.
type Client struct {
	cfg    Config
	http   *http.Client
	logger *slog.Logger
	now    func() time.Time
}

// NewClient creates a mailer client.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: 15 * time.Second},
		logger: logger,
		now:    time.Now,
	}
}

// SendContact relays a contact inquiry.
func (c *Client) SendContact(ctx context.Context, f ContactForm) error {
	if err := f.Validate(); err != nil {
		return err
	}
	subject := f.Subject
	if subject == "" {
		subject = "New Contact Form Submission"
	}
	return c.send(ctx, templateContact, map[string]string{
		"to_email":        c.cfg.LeadEmail,
		"from_name":       f.FromName,
		"from_email":      f.FromEmail,
		"subject":         subject,
		"message":         f.Message,
		"form_type":       "Contact Form",
		"submission_date": c.now().Format(time.RFC1123),
	})
}

// SendJoin relays a volunteer/partner application.
func (c *Client) SendJoin(ctx context.Context, f JoinForm) error {
	if err := f.Validate(); err != nil {
		return err
	}
	area := f.AreaOfInterest
	if area == "" {
		area = "Not specified"
	}
	return c.send(ctx, templateJoin, map[string]string{
		"to_email":         c.cfg.LeadEmail,
		"from_name":        f.FullName,
		"from_email":       f.EmailAddress,
		"subject":          "New Volunteer/Partner Application",
		"area_of_interest": area,
		"about_yourself":   f.AboutYourself,
		"form_type":        "Join Form (Volunteer/Partner)",
		"submission_date":  c.now().Format(time.RFC1123),
	})
}

// SendDonate relays a donation pledge.
func (c *Client) SendDonate(ctx context.Context, f DonateForm) error {
	if err := f.Validate(); err != nil {
		return err
	}
	return c.send(ctx, templateDonate, map[string]string{
		"to_email":         c.cfg.LeadEmail,
		"from_name":        f.FirstName + " " + f.LastName,
		"from_email":       f.Email,
		"subject":          "New Donation Pledge",
		"donation_purpose": f.DonationPurpose,
		"amount":           f.Amount,
		"form_type":        "Donate Form",
		"submission_date":  c.now().Format(time.RFC1123),
	})
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func (c *Client) send(ctx context.Context, templateID string, params map[string]string) error {
	if !c.cfg.Enabled() {
		return fmt.Errorf("mailer: dispatch service not configured")
	}

	body, err := json.Marshal(sendRequest{
		ServiceID:      c.cfg.ServiceID,
		TemplateID:     templateID,
		UserID:         c.cfg.PublicKey,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("mailer: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("mailer: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("mailer: send %s: %w", templateID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("mailer: send %s: unexpected status %d", templateID, resp.StatusCode)
	}
	c.logger.Info("mailer: form relayed", slog.String("template", templateID))
	return nil
}
