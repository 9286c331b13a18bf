package http_handlers

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cramdesk/auth-service/internal/application/auth"
	"github.com/cramdesk/auth-service/internal/domain"
	"github.com/cramdesk/auth-service/internal/infrastructure/security"
)

// memUserRepo is an in-memory auth.UserRepo for handler tests.
type memUserRepo struct {
	mu      sync.Mutex
	byID    map[string]domain.User
	byEmail map[string]string
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return r.byID[id], nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (r *memUserRepo) Create(_ context.Context, u domain.User) (domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	email := strings.ToLower(strings.TrimSpace(u.Email))
	if _, ok := r.byEmail[email]; ok {
		return domain.User{}, domain.ErrEmailAlreadyExists()
	}
	u.Email = email
	u.CreatedAt = time.Now().UTC()
	r.byID[u.ID] = u
	r.byEmail[email] = u.ID
	return u, nil
}

// newTestAuthHandler wires a handler against an in-memory repo with real
// bcrypt (minimum cost, these are tests) and real HS256 signing.
func newTestAuthHandler(t *testing.T) (*AuthHandler, *auth.Service) {
	t.Helper()

	svc := auth.NewService(
		newMemUserRepo(),
		security.NewBcryptHasher(4),
		security.NewJWTSigner("test-secret", "auth-service"),
		auth.Config{TokenTTL: time.Hour},
	)
	return NewAuthHandler(svc), svc
}
