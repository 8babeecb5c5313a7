package domain

import "errors"

// Sentinel errors for the domain layer. These provide consistent, checkable
// errors for common business logic failures.
var (
	// ErrBadHeader is reported by a mail transport when the recipient or
	// subject contains a carriage return or line feed. Messages rejected
	// this way are dropped as unrecoverable; retrying cannot fix an
	// injected header.
	ErrBadHeader = errors.New("email header contains an invalid character")

	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("requested resource not found")
)
