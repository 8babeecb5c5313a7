package email

import (
	"fmt"

	"github.com/hwright/contactform/internal/config"
	"github.com/hwright/contactform/internal/domain"
)

// NewEmailService creates and returns an email sender based on the configuration.
func NewEmailService(cfg *config.Config) (domain.EmailSender, error) {
	switch cfg.EmailProvider {
	case "log":
		return &LogSender{senderAddress: cfg.DefaultFromEmail}, nil
	case "smtp":
		if cfg.SMTPAddr == "" {
			return nil, fmt.Errorf("email provider is 'smtp' but SMTP_ADDR is not set")
		}
		return &SMTPSender{
			addr:          cfg.SMTPAddr,
			username:      cfg.SMTPUser,
			password:      cfg.SMTPPass,
			senderAddress: cfg.DefaultFromEmail,
		}, nil
	case "resend":
		if cfg.EmailAPIKey == "" {
			return nil, fmt.Errorf("email provider is 'resend' but EMAIL_API_KEY is not set")
		}
		return &ResendSender{apiKey: cfg.EmailAPIKey, senderAddress: cfg.DefaultFromEmail}, nil
	default:
		return nil, fmt.Errorf("unknown email provider: %s", cfg.EmailProvider)
	}
}
