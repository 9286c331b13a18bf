package postgres

import "time"

type userRow struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
