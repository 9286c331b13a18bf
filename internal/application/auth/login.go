package auth

import (
	"context"
	"strings"

	"github.com/cramdesk/auth-service/internal/domain"
)

// Login authenticates a user and issues a token.
// IMPORTANT: must not leak whether the email exists (avoid user enumeration).
func (s *Service) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if email == "" || password == "" {
		return AuthResult{}, domain.ErrInvalidCredentials()
	}

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		// Hide not-found behind invalid credentials; infra failures stay 5xx.
		if domain.Is(err, "user_not_found") {
			return AuthResult{}, domain.ErrInvalidCredentials()
		}
		return AuthResult{}, err
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return AuthResult{}, domain.ErrInvalidCredentials()
	}

	tok, err := s.issueToken(u.ID, u.Email)
	if err != nil {
		return AuthResult{}, err
	}

	return AuthResult{User: u, Token: tok}, nil
}
