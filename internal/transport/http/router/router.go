package router

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cramdesk/auth-service/internal/transport/http/middleware"
)

type HealthHandler interface {
	Health(w http.ResponseWriter, r *http.Request)
}

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type UploadHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
}

type Deps struct {
	Health HealthHandler
	Auth   AuthHandler
	Upload UploadHandler

	AuthMW      func(http.Handler) http.Handler
	BodyLimitMW func(http.Handler) http.Handler
	CORSMW      func(http.Handler) http.Handler

	// nil rate-limit middlewares are skipped (no Redis configured).
	RLAuth   func(http.Handler) http.Handler
	RLUpload func(http.Handler) http.Handler
}

func New(deps Deps) (http.Handler, error) {
	if deps.Health == nil {
		return nil, fmt.Errorf("nil Health handler")
	}
	if deps.Auth == nil {
		return nil, fmt.Errorf("nil Auth handler")
	}
	if deps.Upload == nil {
		return nil, fmt.Errorf("nil Upload handler")
	}
	if deps.AuthMW == nil {
		return nil, fmt.Errorf("nil Auth middleware")
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.HTTPLogger)
	r.Use(middleware.Metrics)
	r.Use(middleware.SecurityHeaders)
	if deps.CORSMW != nil {
		r.Use(deps.CORSMW)
	}

	r.Get("/api/health", deps.Health.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Public auth endpoints: small JSON bodies, rate limited.
	r.Group(func(r chi.Router) {
		if deps.BodyLimitMW != nil {
			r.Use(deps.BodyLimitMW)
		}
		if deps.RLAuth != nil {
			r.Use(deps.RLAuth)
		}
		r.Post("/register", deps.Auth.Register)
		r.Post("/login", deps.Auth.Login)
	})

	// Protected endpoints.
	r.Route("/api", func(r chi.Router) {
		r.Use(deps.AuthMW)

		r.Get("/user", deps.Auth.Me)

		if deps.RLUpload != nil {
			r.With(deps.RLUpload).Post("/upload", deps.Upload.Upload)
		} else {
			r.Post("/upload", deps.Upload.Upload)
		}
	})

	return r, nil
}
