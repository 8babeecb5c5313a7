package repository

import (
	"context"
	"fmt"

	"github.com/hwright/contactform/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgContactRepository is the PostgreSQL implementation of domain.ContactRepository,
// a thin mapping onto the contactform table.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements domain.ContactRepository at compile time.
var _ domain.ContactRepository = (*PgContactRepository)(nil)

// Save inserts a new contactform row and populates msg.ID and msg.CreatedOn
// from the database RETURNING clause. created_on is set by the database on
// every save, not supplied by the caller.
func (r *PgContactRepository) Save(ctx context.Context, msg *domain.ContactMessage) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO contactform (email, name, subject, message, created_on)
		 VALUES ($1, $2, $3, $4, now())
		 RETURNING id, created_on`,
		msg.Email, msg.Name, msg.Subject, msg.Message,
	).Scan(&msg.ID, &msg.CreatedOn)
	if err != nil {
		return fmt.Errorf("failed to save contact message: %w", err)
	}
	return nil
}

// List returns stored messages newest first, paginated by limit/offset.
// A non-positive limit falls back to 50.
func (r *PgContactRepository) List(ctx context.Context, opts domain.ContactListOptions) ([]*domain.ContactMessage, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, email, name, subject, message, created_on
		 FROM contactform
		 ORDER BY created_on DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	defer rows.Close()

	var messages []*domain.ContactMessage
	for rows.Next() {
		var m domain.ContactMessage
		if err := rows.Scan(&m.ID, &m.Email, &m.Name, &m.Subject, &m.Message, &m.CreatedOn); err != nil {
			return nil, fmt.Errorf("failed to scan contact message: %w", err)
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}
