package utils

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"gopkg.in/gomail.v2"

	"github.com/Srilaxmigavvalapally/AI-Personal-Health-Manager/config"
)

// ErrMailNotConfigured is returned by every send attempt when the sender
// credentials are absent. No connection is attempted in that state.
var ErrMailNotConfigured = errors.New("email credentials not configured")

// Mailer delivers one plain-text message to one recipient.
type Mailer interface {
	Send(to, subject, body string) error
}

// NewMailerFromConfig picks the transport from EMAIL_PROVIDER. A transport
// that cannot be initialized still yields a Mailer; its sends fail with the
// configuration error so the calling process keeps running.
func NewMailerFromConfig(cfg config.Config) Mailer {
	if cfg.EmailProvider == "ses" {
		m, err := NewSESMailer(cfg.S3Region, cfg.EmailSender)
		if err != nil {
			log.Printf("SES mailer unavailable: %v", err)
			return disabledMailer{err: err}
		}
		return m
	}
	return NewSMTPMailer(cfg.SMTPServer, cfg.SMTPPort, cfg.EmailSender, cfg.EmailPassword)
}

type disabledMailer struct{ err error }

func (m disabledMailer) Send(to, subject, body string) error { return m.err }

// SMTPMailer sends over SMTPS (implicit TLS, port 465 by default).
type SMTPMailer struct {
	host     string
	port     int
	sender   string
	password string
}

func NewSMTPMailer(host, port, sender, password string) *SMTPMailer {
	p, err := strconv.Atoi(port)
	if err != nil || p <= 0 {
		p = 465
	}
	return &SMTPMailer{host: host, port: p, sender: sender, password: password}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	if m.sender == "" || m.password == "" {
		return ErrMailNotConfigured
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	d := gomail.NewDialer(m.host, m.port, m.sender, m.password)
	d.SSL = true

	if err := d.DialAndSend(msg); err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

// SESMailer sends through AWS SES instead of a raw SMTP relay.
type SESMailer struct {
	client *ses.Client
	sender string
}

func NewSESMailer(region, sender string) (*SESMailer, error) {
	if sender == "" {
		return nil, ErrMailNotConfigured
	}
	cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("AWS config load failed: %w", err)
	}
	return &SESMailer{client: ses.NewFromConfig(cfg), sender: sender}, nil
}

func (m *SESMailer) Send(to, subject, body string) error {
	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(m.sender),
	}

	if _, err := m.client.SendEmail(context.TODO(), input); err != nil {
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}
