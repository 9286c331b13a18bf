package postgres

import (
	"context"
	"database/sql"
)

// EnsureSchema creates the users table if it does not exist. The UNIQUE
// constraint on email is load-bearing: Create maps its violation to the
// duplicate-email error, which is how concurrent registrations of the same
// address are serialized.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS users (
  id TEXT PRIMARY KEY,
  email TEXT NOT NULL UNIQUE,
  password_hash TEXT NOT NULL,
  created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`)
	return err
}
