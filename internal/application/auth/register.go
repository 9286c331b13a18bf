package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/cramdesk/auth-service/internal/domain"
)

// Register creates an account and issues its first token. Field-level
// validation (email shape, password length) happens at the transport
// boundary; this layer only guards against empty input.
func (s *Service) Register(ctx context.Context, email, password string) (AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" {
		return AuthResult{}, domain.ErrMissingField("email")
	}
	if password == "" {
		return AuthResult{}, domain.ErrMissingField("password")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return AuthResult{}, domain.ErrHashFailed(err)
	}

	u := domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
	}

	// No pre-read for duplicates: two concurrent registrations of the same
	// email would both pass it. The repo's unique constraint decides.
	created, err := s.users.Create(ctx, u)
	if err != nil {
		return AuthResult{}, err
	}

	tok, err := s.issueToken(created.ID, created.Email)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{User: created, Token: tok}, nil
}
