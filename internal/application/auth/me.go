package auth

import (
	"context"
	"strings"

	"github.com/cramdesk/auth-service/internal/domain"
)

// GetUserByID resolves the identity attached by the auth middleware into a
// profile. Callers must never expose User.PasswordHash.
func (s *Service) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return s.users.GetByID(ctx, id)
}
