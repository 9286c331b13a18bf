package auth

import (
	"time"

	"github.com/cramdesk/auth-service/internal/domain"
)

type Service struct {
	users  UserRepo
	hasher PasswordHasher
	signer TokenSigner

	tokenTTL time.Duration
}

type Config struct {
	TokenTTL time.Duration
}

func NewService(users UserRepo, hasher PasswordHasher, signer TokenSigner, cfg Config) *Service {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 7 * 24 * time.Hour
	}
	return &Service{
		users:    users,
		hasher:   hasher,
		signer:   signer,
		tokenTTL: ttl,
	}
}

// AuthResult is the common output of register/login.
type AuthResult struct {
	User  domain.User
	Token string
}

func (s *Service) issueToken(userID, email string) (string, error) {
	tok, err := s.signer.SignAccessToken(userID, email, s.tokenTTL)
	if err != nil {
		return "", err
	}
	return tok, nil
}
