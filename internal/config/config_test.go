package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwright/contactform/internal/config"
)

func TestNew_RequiresFromAndRecipient(t *testing.T) {
	t.Setenv("DEFAULT_FROM_EMAIL", "")
	t.Setenv("CONTACT_RECIPIENT", "")

	_, err := config.New()
	assert.Error(t, err)

	t.Setenv("DEFAULT_FROM_EMAIL", "noreply@example.com")
	_, err = config.New()
	assert.Error(t, err)

	t.Setenv("CONTACT_RECIPIENT", "owner@example.com")
	cfg, err := config.New()
	require.NoError(t, err)
	assert.Equal(t, "noreply@example.com", cfg.DefaultFromEmail)
	assert.Equal(t, "owner@example.com", cfg.ContactRecipient)
}

func TestNew_Defaults(t *testing.T) {
	t.Setenv("DEFAULT_FROM_EMAIL", "noreply@example.com")
	t.Setenv("CONTACT_RECIPIENT", "owner@example.com")
	t.Setenv("ADDR", "")
	t.Setenv("EMAIL_PROVIDER", "")

	cfg, err := config.New()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "log", cfg.EmailProvider)
	assert.Equal(t, "admin", cfg.AdminUser)
}

func TestNew_ReadsOverrides(t *testing.T) {
	t.Setenv("DEFAULT_FROM_EMAIL", "noreply@example.com")
	t.Setenv("CONTACT_RECIPIENT", "owner@example.com")
	t.Setenv("ADDR", ":9999")
	t.Setenv("EMAIL_PROVIDER", "smtp")
	t.Setenv("SMTP_ADDR", "mail.example.com:587")

	cfg, err := config.New()
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "smtp", cfg.EmailProvider)
	assert.Equal(t, "mail.example.com:587", cfg.SMTPAddr)
}
