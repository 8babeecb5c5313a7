package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Field length bounds enforced before persistence. They mirror the column
// sizes of the contactform table.
const (
	MaxNameLength    = 64
	MaxSubjectLength = 64
)

// ContactMessage represents one submitted contact-form message.
type ContactMessage struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedOn time.Time `json:"created_on"`
}

// ContactListOptions carries pagination for the admin listing.
type ContactListOptions struct {
	Limit  int
	Offset int
}

// ContactRepository defines the persistence contract for contact messages.
// Save assigns msg.ID and refreshes msg.CreatedOn on every call.
type ContactRepository interface {
	Save(ctx context.Context, msg *ContactMessage) error
	List(ctx context.Context, opts ContactListOptions) ([]*ContactMessage, error)
}
