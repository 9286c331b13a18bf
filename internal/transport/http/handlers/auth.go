package http_handlers

import (
	"net/http"
	"time"

	"github.com/cramdesk/auth-service/internal/application/auth"
	"github.com/cramdesk/auth-service/internal/domain"
	"github.com/cramdesk/auth-service/internal/logger"
	"github.com/cramdesk/auth-service/internal/transport/http/dto"
	"github.com/cramdesk/auth-service/internal/transport/http/middleware"
	"github.com/cramdesk/auth-service/internal/transport/http/response"
)

type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	middleware.RegistrationsTotal.Inc()
	logger.WithCtx(r.Context()).Info().
		Str("user_id", res.User.ID).
		Msg("user_registered")

	response.Created(w, dto.AuthData{
		Message: "Account created",
		Token:   res.Token,
		User:    dto.UserView{Email: res.User.Email},
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.WriteError(w, r, err)
		return
	}

	if err := req.Validate(); err != nil {
		response.WriteError(w, r, err)
		return
	}

	res, err := h.svc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if domain.Is(err, "invalid_credentials") {
			middleware.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		} else {
			middleware.LoginAttemptsTotal.WithLabelValues("error").Inc()
		}
		response.WriteError(w, r, err)
		return
	}

	middleware.LoginAttemptsTotal.WithLabelValues("success").Inc()
	logger.WithCtx(r.Context()).Info().
		Str("user_id", res.User.ID).
		Msg("user_logged_in")

	response.OK(w, dto.AuthData{
		Message: "Login successful",
		Token:   res.Token,
		User:    dto.UserView{Email: res.User.Email},
	})
}

// Me handles GET /api/user behind the auth middleware.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		response.WriteError(w, r, domain.ErrTokenInvalid())
		return
	}

	u, err := h.svc.GetUserByID(r.Context(), userID)
	if err != nil {
		response.WriteError(w, r, err)
		return
	}

	response.OK(w, dto.MeData{
		User: dto.UserView{
			Email:     u.Email,
			CreatedAt: u.CreatedAt.UTC().Format(time.RFC3339),
		},
	})
}
