package middleware

import (
	"net/http"
	"strings"
)

// CORS handles cross-origin requests for the configured origins.
// origins is a comma-separated list; "*" allows any origin.
func CORS(origins string) func(http.Handler) http.Handler {
	allowed := strings.Split(origins, ",")
	for i := range allowed {
		allowed[i] = strings.TrimSpace(allowed[i])
	}

	allowedMethods := "GET, POST, OPTIONS"
	allowedHeaders := "Accept, Authorization, Content-Type"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")

			if ok, value := originAllowed(origin, allowed); ok {
				w.Header().Set("Access-Control-Allow-Origin", value)
			}

			// Preflight
			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", allowedMethods)
				w.Header().Set("Access-Control-Allow-Headers", allowedHeaders)
				w.Header().Set("Access-Control-Max-Age", "3600")
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed []string) (bool, string) {
	for _, a := range allowed {
		if a == "*" {
			return true, "*"
		}
		if a != "" && a == origin {
			return true, origin
		}
	}
	return false, ""
}
