package security

import (
	"github.com/cramdesk/auth-service/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost matches the work factor the service has always used for
// interactive logins. Raise it over time, never lower it.
const DefaultCost = 12

type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost <= 0 {
		cost = DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domain.ErrHashFailed(err)
	}
	return string(b), nil
}

// Compare returns nil when password matches hash. bcrypt embeds its own salt
// and cost, so no side-channel state is needed for verification.
func (h *BcryptHasher) Compare(hash string, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
