package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/cramdesk/auth-service/internal/domain"
)

// ---- fakes ----

type fakeUserRepo struct {
	byID    map[string]domain.User
	byEmail map[string]string // email -> id

	createErr error
	getErr    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byID:    make(map[string]domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	if r.getErr != nil {
		return domain.User{}, r.getErr
	}
	email = strings.ToLower(strings.TrimSpace(email))
	id, ok := r.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return r.byID[id], nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	if r.getErr != nil {
		return domain.User{}, r.getErr
	}
	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound()
	}
	return u, nil
}

func (r *fakeUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	if r.createErr != nil {
		return domain.User{}, r.createErr
	}
	u.Email = strings.ToLower(strings.TrimSpace(u.Email))
	if _, ok := r.byEmail[u.Email]; ok {
		return domain.User{}, domain.ErrEmailAlreadyExists()
	}
	u.CreatedAt = time.Now()
	r.byID[u.ID] = u
	r.byEmail[u.Email] = u.ID
	return u, nil
}

type fakeHasher struct {
	hashFn func(pw string) (string, error)
}

func (h *fakeHasher) Hash(password string) (string, error) {
	if h.hashFn != nil {
		return h.hashFn(password)
	}
	return "hashed:" + password, nil
}

func (h *fakeHasher) Compare(hash string, password string) error {
	if hash == "hashed:"+password {
		return nil
	}
	return errors.New("mismatch")
}

type fakeSigner struct {
	signErr error
}

func (s *fakeSigner) SignAccessToken(userID, email string, ttl time.Duration) (string, error) {
	if s.signErr != nil {
		return "", s.signErr
	}
	return fmt.Sprintf("tok:%s:%s", userID, email), nil
}

func (s *fakeSigner) VerifyAccessToken(token string) (TokenClaims, error) {
	parts := strings.SplitN(token, ":", 3)
	if len(parts) != 3 || parts[0] != "tok" {
		return TokenClaims{}, domain.ErrTokenInvalid()
	}
	return TokenClaims{UserID: parts[1], Email: parts[2], Exp: time.Now().Add(time.Hour)}, nil
}

func newSvcForTest(t *testing.T) (*Service, *fakeUserRepo, *fakeHasher, *fakeSigner) {
	t.Helper()

	users := newFakeUserRepo()
	hasher := &fakeHasher{}
	signer := &fakeSigner{}
	svc := NewService(users, hasher, signer, Config{TokenTTL: time.Hour})
	return svc, users, hasher, signer
}

func errorsDB() error {
	return domain.ErrDBUnavailable(errors.New("connection refused"))
}

func requireDomainCode(t *testing.T, err error, code string) {
	t.Helper()
	if !domain.Is(err, code) {
		t.Fatalf("expected domain code %q, got %v", code, err)
	}
}
