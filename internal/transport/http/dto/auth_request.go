package dto

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/cramdesk/auth-service/internal/domain"
)

var validate = validator.New()

// -------- Core auth --------

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (r *RegisterRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	return validateStruct(r)
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Validate() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	return validateStruct(r)
}

// validateStruct maps the first validator failure to a domain error.
// Field errors are reported one at a time; a boundary rejection should read
// like a sentence, not a dump of every tag that failed.
func validateStruct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		return fieldError(verrs[0])
	}
	return domain.ErrInvalidJSON(err)
}

func fieldError(fe validator.FieldError) error {
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		return domain.ErrMissingField(field)
	case "email":
		return domain.ErrInvalidField(field, "must be a valid email address")
	case "min":
		if field == "password" {
			return domain.ErrPasswordTooShort(6)
		}
		return domain.ErrInvalidField(field, fmt.Sprintf("must be at least %s characters", fe.Param()))
	default:
		return domain.ErrInvalidField(field, "is invalid")
	}
}
