// Package mail provides email sending and validation utilities.
package mail

import (
	"errors"
	"fmt"
	"mime"
	netmail "net/mail"
	"net/smtp"
	"os"
	"strings"
)

// ErrInvalidAddress is returned for recipients that are not a single plain address.
var ErrInvalidAddress = errors.New("invalid email address")

// Config holds configuration for sending emails via SMTP.
type Config struct {
	SMTPHost  string
	SMTPPort  string
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// Send sends an HTML email.
func Send(config Config, toEmail, subject, htmlBody string) error {
	message := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		mime.QEncoding.Encode("utf-8", config.FromName), config.FromEmail,
		toEmail,
		mime.QEncoding.Encode("utf-8", subject),
		htmlBody,
	)

	auth := smtp.PlainAuth("", config.Username, config.Password, config.SMTPHost)

	return smtp.SendMail(
		config.SMTPHost+":"+config.SMTPPort,
		auth,
		config.FromEmail,
		[]string{toEmail},
		[]byte(message),
	)
}

// GmailConfig returns a pre-configured Config for Gmail SMTP.
// Requires GMAIL_USERNAME and GMAIL_APP_PASSWORD environment variables.
func GmailConfig() Config {
	return Config{
		SMTPHost:  "smtp.gmail.com",
		SMTPPort:  "587",
		Username:  os.Getenv("GMAIL_USERNAME"),
		Password:  os.Getenv("GMAIL_APP_PASSWORD"),
		FromEmail: os.Getenv("GMAIL_USERNAME"),
		FromName:  "mailcraft",
	}
}

// ParseAddress validates a single recipient and returns its bare address.
func ParseAddress(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, "\r\n,") {
		return "", ErrInvalidAddress
	}

	addr, err := netmail.ParseAddress(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	return addr.Address, nil
}
