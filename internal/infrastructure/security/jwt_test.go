package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cramdesk/auth-service/internal/domain"
)

func TestJWTSigner_SignAndVerify_Success(t *testing.T) {
	t.Parallel()

	s := NewJWTSigner("secret", "auth-service")
	tok, err := s.SignAccessToken("u1", "a@test.com", 2*time.Minute)
	if err != nil {
		t.Fatalf("sign err: %v", err)
	}
	if tok == "" {
		t.Fatalf("expected non-empty token")
	}

	claims, err := s.VerifyAccessToken(tok)
	if err != nil {
		t.Fatalf("verify err: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "a@test.com" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.Exp.IsZero() {
		t.Fatalf("expected exp to be set")
	}
	if until := time.Until(claims.Exp); until <= 0 || until > 2*time.Minute {
		t.Fatalf("unexpected expiry %v", claims.Exp)
	}
}

func TestJWTSigner_Verify_Expired_ReturnsTokenExpired(t *testing.T) {
	t.Parallel()

	s := NewJWTSigner("secret", "auth-service")
	tok, err := s.SignAccessToken("u1", "a@test.com", -1*time.Second) // already expired
	if err != nil {
		t.Fatalf("sign err: %v", err)
	}

	_, verr := s.VerifyAccessToken(tok)
	if verr == nil {
		t.Fatalf("expected error, got nil")
	}
	if !domain.Is(verr, "token_expired") {
		t.Fatalf("expected token_expired, got %v", verr)
	}
}

func TestJWTSigner_Verify_WrongSecret_ReturnsTokenInvalid(t *testing.T) {
	t.Parallel()

	s1 := NewJWTSigner("secret1", "auth-service")
	s2 := NewJWTSigner("secret2", "auth-service")

	tok, err := s1.SignAccessToken("u1", "a@test.com", time.Minute)
	if err != nil {
		t.Fatalf("sign err: %v", err)
	}

	_, verr := s2.VerifyAccessToken(tok)
	if verr == nil {
		t.Fatalf("expected error, got nil")
	}
	if !domain.Is(verr, "token_invalid") {
		t.Fatalf("expected token_invalid, got %v", verr)
	}
}

func TestJWTSigner_Verify_Malformed_ReturnsTokenInvalid(t *testing.T) {
	t.Parallel()

	s := NewJWTSigner("secret", "auth-service")

	_, err := s.VerifyAccessToken("garbage.not.a-jwt")
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !domain.Is(err, "token_invalid") {
		t.Fatalf("expected token_invalid, got %v", err)
	}
}

func TestJWTSigner_Verify_AlgConfusion_Rejected(t *testing.T) {
	t.Parallel()

	// Token signed with "none" must never verify.
	claims := jwt.MapClaims{
		"userId": "u1",
		"email":  "a@test.com",
		"exp":    time.Now().Add(time.Minute).Unix(),
	}
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tok, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign err: %v", err)
	}

	s := NewJWTSigner("secret", "auth-service")
	if _, verr := s.VerifyAccessToken(tok); verr == nil {
		t.Fatalf("expected rejection of alg=none token")
	}
}
