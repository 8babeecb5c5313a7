package domain

// EmailSender defines the interface for sending emails. This allows for
// different implementations (e.g., for logging, SMTP, Resend).
type EmailSender interface {
	Send(to, subject, body string) error
}
