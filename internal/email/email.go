package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/smtp"
	"strings"

	"github.com/hwright/contactform/internal/domain"
)

// checkHeaders rejects header values that would allow header injection.
// A CR or LF in the recipient or subject would let a submitter smuggle
// additional headers into the outgoing message.
func checkHeaders(values ...string) error {
	for _, v := range values {
		if strings.ContainsAny(v, "\r\n") {
			return domain.ErrBadHeader
		}
	}
	return nil
}

// --- LogSender (for development) ---

// LogSender prints emails to the log instead of sending them.
type LogSender struct {
	senderAddress string
}

// Send logs the email content instead of delivering it.
func (s *LogSender) Send(to, subject, body string) error {
	if err := checkHeaders(to, subject); err != nil {
		return err
	}
	slog.Info("--- Email Sent (Logged) ---")
	slog.Info("From", "address", s.senderAddress)
	slog.Info("To", "address", to)
	slog.Info("Subject", "subject", subject)
	slog.Info("Body", "body", body)
	slog.Info("---------------------------")
	return nil
}

// --- SMTPSender (for self-hosted relays) ---

// SMTPSender delivers mail through an SMTP relay using net/smtp.
type SMTPSender struct {
	addr          string // host:port
	username      string
	password      string
	senderAddress string
}

// Send delivers the message through the configured relay. Plain auth is used
// only when a username is configured.
func (s *SMTPSender) Send(to, subject, body string) error {
	if err := checkHeaders(to, subject); err != nil {
		return err
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: %s\r\n", s.senderAddress)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n")
	msg.WriteString(body)

	var auth smtp.Auth
	if s.username != "" {
		host := s.addr
		if i := strings.LastIndex(host, ":"); i >= 0 {
			host = host[:i]
		}
		auth = smtp.PlainAuth("", s.username, s.password, host)
	}

	if err := smtp.SendMail(s.addr, auth, s.senderAddress, []string{to}, msg.Bytes()); err != nil {
		return fmt.Errorf("smtp delivery to %s failed: %w", s.addr, err)
	}
	return nil
}

// --- ResendSender (for production) ---

// ResendSender sends emails using the Resend API.
type ResendSender struct {
	apiKey        string
	senderAddress string
	client        *http.Client
}

type resendPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// Send dispatches an email using the Resend API.
func (s *ResendSender) Send(to, subject, body string) error {
	if err := checkHeaders(to, subject); err != nil {
		return err
	}

	payload := resendPayload{
		From:    s.senderAddress,
		To:      to,
		Subject: subject,
		Text:    body,
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal resend payload: %w", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(encoded))
	if err != nil {
		return fmt.Errorf("failed to create resend request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := s.client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to resend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("resend API returned an error: status %d", resp.StatusCode)
	}
	return nil
}
