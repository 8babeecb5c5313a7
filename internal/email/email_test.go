package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwright/contactform/internal/config"
	"github.com/hwright/contactform/internal/domain"
)

func TestLogSender_RejectsInjectedHeaders(t *testing.T) {
	s := &LogSender{senderAddress: "noreply@example.com"}

	err := s.Send("ops@example.com\r\nBcc: attacker@example.com", "Hi", "Hello")
	assert.ErrorIs(t, err, domain.ErrBadHeader)

	err = s.Send("ops@example.com", "Hi\nX-Spam: yes", "Hello")
	assert.ErrorIs(t, err, domain.ErrBadHeader)
}

func TestLogSender_AcceptsCleanHeaders(t *testing.T) {
	s := &LogSender{senderAddress: "noreply@example.com"}
	// Newlines in the body are fine; only header values are constrained.
	assert.NoError(t, s.Send("ops@example.com", "Hi", "Hello\nsecond line"))
}

func TestSMTPSender_RejectsInjectedHeaders(t *testing.T) {
	s := &SMTPSender{addr: "localhost:25", senderAddress: "noreply@example.com"}
	// The header check runs before any connection is attempted, so no relay
	// is needed for this case.
	err := s.Send("ops@example.com", "Hi\r\nBcc: attacker@example.com", "Hello")
	assert.ErrorIs(t, err, domain.ErrBadHeader)
}

func TestNewEmailService_SelectsProvider(t *testing.T) {
	cfg := &config.Config{
		DefaultFromEmail: "noreply@example.com",
		EmailProvider:    "log",
	}
	sender, err := NewEmailService(cfg)
	require.NoError(t, err)
	assert.IsType(t, &LogSender{}, sender)

	cfg.EmailProvider = "smtp"
	_, err = NewEmailService(cfg)
	assert.Error(t, err, "smtp provider without SMTP_ADDR must fail")

	cfg.SMTPAddr = "localhost:25"
	sender, err = NewEmailService(cfg)
	require.NoError(t, err)
	assert.IsType(t, &SMTPSender{}, sender)

	cfg.EmailProvider = "resend"
	_, err = NewEmailService(cfg)
	assert.Error(t, err, "resend provider without API key must fail")

	cfg.EmailAPIKey = "re_test"
	sender, err = NewEmailService(cfg)
	require.NoError(t, err)
	assert.IsType(t, &ResendSender{}, sender)

	cfg.EmailProvider = "carrier-pigeon"
	_, err = NewEmailService(cfg)
	assert.Error(t, err)
}
