// Package mailer delivers plain-text messages over SMTP with implicit TLS.
package mailer

import (
	"context"
	"fmt"

	"log/slog"

	"gopkg.in/gomail.v2"

	"github.com/anassar/mudeer/core/logger"
)

// Config holds SMTP connection and addressing settings.
type Config struct {
	Host      string `yaml:"host" envconfig:"SMTP_HOST"`
	Port      int    `yaml:"port" envconfig:"SMTP_PORT"`
	Account   string `yaml:"account" envconfig:"SMTP_ACCOUNT"`
	Password  string `yaml:"password" envconfig:"SMTP_PASSWORD"`
	Recipient string `yaml:"recipient" envconfig:"SMTP_RECIPIENT"`
}

// Normalize fills defaults and validates the required fields.
func (c *Config) Normalize() error {
	if c.Host == "" {
		c.Host = "smtp.gmail.com"
	}
	if c.Port == 0 {
		c.Port = 465
	}
	if c.Account == "" {
		return fmt.Errorf("smtp.account is required")
	}
	if c.Password == "" {
		return fmt.Errorf("smtp.password is required")
	}
	if c.Recipient == "" {
		return fmt.Errorf("smtp.recipient is required")
	}
	return nil
}

// Sender delivers mail to the configured recipient.
type Sender interface {
	Send(ctx context.Context, subject, body string) error
}

// SMTP is the gomail-backed Sender.
type SMTP struct {
	dialer    *gomail.Dialer
	account   string
	recipient string
}

// New builds an SMTP sender. Port 465 uses implicit TLS, which gomail
// negotiates automatically.
func New(cfg Config) *SMTP {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Account, cfg.Password)
	d.SSL = cfg.Port == 465
	return &SMTP{
		dialer:    d,
		account:   cfg.Account,
		recipient: cfg.Recipient,
	}
}

// Send delivers a plain-text message. The context bounds nothing here since
// gomail dials synchronously, but the signature keeps callers honest about
// blocking.
func (s *SMTP) Send(ctx context.Context, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.account)
	m.SetHeader("To", s.recipient)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		logger.MAIL.Error("mail send failed",
			slog.String("event", "mail.fail"),
			slog.String("recipient", s.recipient),
			slog.String("err", err.Error()),
		)
		return fmt.Errorf("send mail: %w", err)
	}

	logger.MAIL.Info("mail sent",
		slog.String("event", "mail.sent"),
		slog.String("recipient", s.recipient),
	)
	return nil
}
