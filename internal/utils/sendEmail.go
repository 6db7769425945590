package utils

import (
	"crypto/tls"
	"fmt"
	"log"
	"net/smtp"
	"planova/internal/config"
	"time"
)

type MailConfig struct {
	SMTPHost string
	SMTPPort string
	Username string
	Password string
	Sender   string
}

func LoadMailConfig(cfg *config.Config) MailConfig {
	return MailConfig{
		SMTPHost: cfg.SMTPHost,
		SMTPPort: cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		Sender:   cfg.SMTPSender,
	}
}

// Mailer delivers plain-text notifications.
type Mailer interface {
	Send(recipient, subject, message string) error
}

type SMTPMailer struct {
	config MailConfig
}

func NewSMTPMailer(config MailConfig) *SMTPMailer {
	return &SMTPMailer{config: config}
}

func (m *SMTPMailer) Send(recipient, subject, message string) error {
	return SendEmail(m.config, recipient, subject, message)
}

func SendEmail(config MailConfig, recipient, subject, message string) error {
	smtpAddr := config.SMTPHost + ":" + config.SMTPPort

	client, err := smtp.Dial(smtpAddr)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer client.Close()

	tlsConfig := &tls.Config{
		ServerName: config.SMTPHost,
		MinVersion: tls.VersionTLS12,
	}
	if err = client.StartTLS(tlsConfig); err != nil {
		return fmt.Errorf("failed to start TLS: %w", err)
	}

	auth := smtp.PlainAuth("", config.Username, config.Password, config.SMTPHost)
	if err = client.Auth(auth); err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	if err = client.Mail(config.Sender); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(recipient); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	writer, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to create mail writer: %w", err)
	}

	if _, err = writer.Write([]byte(formatMessage(config.Sender, recipient, subject, message))); err != nil {
		return fmt.Errorf("failed to write email body: %w", err)
	}
	if err = writer.Close(); err != nil {
		return fmt.Errorf("failed to close mail writer: %w", err)
	}

	if err = client.Quit(); err != nil {
		log.Printf("Failed to close SMTP connection properly: %v", err)
	}

	log.Printf("Email %q sent to %s", subject, recipient)
	return nil
}

func formatMessage(sender, recipient, subject, message string) string {
	return fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", sender, recipient, subject, message)
}

func SubscriptionStartedEmail(endDate time.Time) (subject, body string) {
	subject = "Your Planova Premium subscription is active"
	body = fmt.Sprintf("Welcome to Premium!\n\nYou can now regenerate meal and workout plans and customise them.\nYour subscription runs until %s.\n",
		endDate.Format("2 January 2006"))
	return subject, body
}

func SubscriptionEndedEmail() (subject, body string) {
	subject = "Your Planova Premium subscription has ended"
	body = "Your account is back on the free plan. Your existing meal and workout plans are kept.\n"
	return subject, body
}
