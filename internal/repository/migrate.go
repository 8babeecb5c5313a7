package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is the contactform table definition. created_on carries auto-now
// semantics: it is refreshed by the database on every save.
const schema = `
CREATE EXTENSION IF NOT EXISTS "pgcrypto";

CREATE TABLE IF NOT EXISTS contactform (
	id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
	email      TEXT NOT NULL CHECK (email <> ''),
	name       VARCHAR(64) NOT NULL CHECK (name <> ''),
	subject    VARCHAR(64) NOT NULL CHECK (subject <> ''),
	message    TEXT NOT NULL CHECK (message <> ''),
	created_on TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS contactform_created_on_idx ON contactform (created_on DESC);
`

// Migrate applies the contactform schema. It is idempotent.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, schema)
	return err
}
