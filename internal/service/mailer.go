package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sirupsen/logrus"
)

// EmailSender is the outbound notification contract. Implementations
// can be swapped (SendGrid, SMTP, stub) without changing callers.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// EmailMessage represents an email to be sent.
type EmailMessage struct {
	To      string
	ToName  string
	Subject string
	HTML    string
}

// SendGridConfig holds configuration for the SendGrid sender.
type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

// SendGridSender sends emails via the SendGrid API.
type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	log       *logrus.Logger
}

func NewSendGridSender(cfg SendGridConfig, log *logrus.Logger) *SendGridSender {
	if cfg.APIKey == "" {
		return nil
	}
	if cfg.FromName == "" {
		cfg.FromName = "DocConnect"
	}
	return &SendGridSender{
		client:    sendgrid.NewSendClient(cfg.APIKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		log:       log,
	}
}

func (s *SendGridSender) Send(ctx context.Context, msg EmailMessage) error {
	if s.client == nil {
		return fmt.Errorf("sendgrid client not configured")
	}

	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.HTML, msg.HTML)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		s.log.Warnf("Failed to send email to %s: %+v", msg.To, err)
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if response.StatusCode >= 400 {
		s.log.Warnf("SendGrid returned status %d for %s", response.StatusCode, msg.To)
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}

	s.log.Infof("Email sent: to=%s, subject=%s", msg.To, msg.Subject)
	return nil
}

// StubEmailSender logs instead of sending. Used in tests and when no
// API key is configured.
type StubEmailSender struct {
	log *logrus.Logger
}

func NewStubEmailSender(log *logrus.Logger) *StubEmailSender {
	return &StubEmailSender{log: log}
}

func (s *StubEmailSender) Send(ctx context.Context, msg EmailMessage) error {
	if s.log != nil {
		s.log.Infof("Stub mailer: would send email to=%s, subject=%s", msg.To, msg.Subject)
	}
	return nil
}
