package middleware

import (
	"net/http"
	"strings"

	"github.com/cramdesk/auth-service/internal/application/auth"
	"github.com/cramdesk/auth-service/internal/domain"
)

type TokenVerifier interface {
	VerifyAccessToken(token string) (auth.TokenClaims, error)
}

type WriteErrFunc func(http.ResponseWriter, *http.Request, error)

// Auth verifies the Authorization header and injects the caller's identity
// into the request context. The header may carry "Bearer <token>" or the raw
// token itself. A missing/empty token is 401; a token that fails verification
// is 403, with one generic message regardless of why it failed.
func Auth(verifier TokenVerifier, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := strings.TrimSpace(r.Header.Get("Authorization"))
			if h == "" {
				writeErr(w, r, domain.ErrTokenMissing())
				return
			}

			raw := h
			if parts := strings.SplitN(h, " ", 2); len(parts) == 2 {
				if !strings.EqualFold(parts[0], "Bearer") {
					writeErr(w, r, domain.ErrTokenMissing())
					return
				}
				raw = strings.TrimSpace(parts[1])
			}
			if raw == "" {
				writeErr(w, r, domain.ErrTokenMissing())
				return
			}

			claims, err := verifier.VerifyAccessToken(raw)
			if err != nil {
				writeErr(w, r, err)
				return
			}

			if strings.TrimSpace(claims.UserID) == "" {
				writeErr(w, r, domain.ErrTokenInvalid())
				return
			}

			ctx := WithUser(r.Context(), claims.UserID, claims.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
