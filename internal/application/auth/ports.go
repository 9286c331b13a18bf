package auth

import (
	"context"
	"time"

	"github.com/cramdesk/auth-service/internal/domain"
)

/*
UserRepo
--------
Persistence port for users.
Only describes WHAT the auth service needs, not HOW it's stored.
*/
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	GetByID(ctx context.Context, id string) (domain.User, error)
	// Create must enforce email uniqueness atomically: the storage layer's
	// unique constraint is authoritative, not a preceding read.
	Create(ctx context.Context, u domain.User) (domain.User, error)
}

/*
PasswordHasher
--------------
Abstracts bcrypt.
*/
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash string, password string) error // nil if match
}

/*
TokenSigner
-----------
Issues and verifies access tokens (JWT).
Used by service + auth middleware.
*/
type TokenClaims struct {
	UserID string
	Email  string
	Exp    time.Time
}

type TokenSigner interface {
	SignAccessToken(userID, email string, ttl time.Duration) (string, error)
	VerifyAccessToken(token string) (TokenClaims, error)
}
