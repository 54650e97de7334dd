package mail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"wheelworks/internal/domain/entities"
	"wheelworks/internal/usecase/interfaces"

	gomail "github.com/wneessen/go-mail"
)

var ErrMissingSMTPHost = errors.New("missing SMTP_HOST")

const (
	subjectBusinessAlert        = "New quote request: %s"
	subjectCustomerConfirmation = "We've received your quote request"

	sendTimeout = 15 * time.Second
)

// SMTPMailer delivers the quote emails over the business's SMTP account
// using go-mail. A fresh client is dialed per send; volumes are a handful of
// messages a day, so connection reuse buys nothing.
type SMTPMailer struct {
	host          string
	port          int
	username      string
	password      string
	fromName      string
	fromEmail     string
	businessEmail string
}

var _ interfaces.IQuoteMailer = (*SMTPMailer)(nil)

// NewSMTPMailerFromEnv builds the mailer from environment configuration:
//
//   - SMTP_HOST (required), SMTP_PORT (default 587)
//   - SMTP_USERNAME, SMTP_PASSWORD
//   - MAIL_FROM_EMAIL, MAIL_FROM_NAME
//   - BUSINESS_EMAIL (alert recipient; default MAIL_FROM_EMAIL)
func NewSMTPMailerFromEnv() (*SMTPMailer, error) {
	host := os.Getenv("SMTP_HOST")
	if host == "" {
		return nil, ErrMissingSMTPHost
	}

	port := 587
	if v := os.Getenv("SMTP_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", v, err)
		}
		port = p
	}

	fromEmail := os.Getenv("MAIL_FROM_EMAIL")
	businessEmail := os.Getenv("BUSINESS_EMAIL")
	if businessEmail == "" {
		businessEmail = fromEmail
	}

	return &SMTPMailer{
		host:          host,
		port:          port,
		username:      os.Getenv("SMTP_USERNAME"),
		password:      os.Getenv("SMTP_PASSWORD"),
		fromName:      os.Getenv("MAIL_FROM_NAME"),
		fromEmail:     fromEmail,
		businessEmail: businessEmail,
	}, nil
}

func (m *SMTPMailer) SendBusinessAlert(ctx context.Context, q entities.Quote, photos []interfaces.Attachment) error {
	content, err := renderQuoteTemplate("business_alert.html", q)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf(subjectBusinessAlert, q.Name)
	return m.send(ctx, m.businessEmail, subject, content, photos...)
}

func (m *SMTPMailer) SendCustomerConfirmation(ctx context.Context, q entities.Quote) error {
	content, err := renderQuoteTemplate("customer_confirmation.html", q)
	if err != nil {
		return err
	}
	return m.send(ctx, q.Email, subjectCustomerConfirmation, content)
}

func (m *SMTPMailer) send(ctx context.Context, toEmail, subject, htmlContent string, attachments ...interfaces.Attachment) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(m.fromName, m.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlContent)

	for _, att := range attachments {
		msg.AttachReader(att.FileName, bytes.NewReader(att.Content))
	}

	client, err := gomail.NewClient(m.host,
		gomail.WithPort(m.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(m.username),
		gomail.WithPassword(m.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(sendTimeout),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Printf("[mail][smtp] send failed to=%s subject=%q err=%v", toEmail, subject, err)
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
