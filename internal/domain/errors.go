package domain

import (
	"errors"
	"fmt"
)

// ErrKind is used to map domain errors to HTTP status codes consistently.
type ErrKind string

const (
	KindValidation     ErrKind = "validation"     // 400
	KindAuth           ErrKind = "auth"           // 401
	KindForbidden      ErrKind = "forbidden"      // 403
	KindNotFound       ErrKind = "not_found"      // 404
	KindRateLimited    ErrKind = "rate_limited"   // 429
	KindInfrastructure ErrKind = "infrastructure" // 500
	KindInternal       ErrKind = "internal"       // 500
)

// Error is a structured domain error.
// - Kind: high-level category for HTTP mapping
// - Code: stable machine code (do not change casually)
// - Message: safe summary for clients (avoid leaking sensitive details)
// - Cause: wrapped internal error for logging/diagnostics
type Error struct {
	Kind    ErrKind
	Code    string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %s: %v", e.Kind, e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s (%s): %s", e.Kind, e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Cause }

func New(kind ErrKind, code, msg string) *Error {
	return &Error{Kind: kind, Code: code, Message: msg}
}

func Wrap(kind ErrKind, code, msg string, cause error) *Error {
	return &Error{Kind: kind, Code: code, Message: msg, Cause: cause}
}

func Is(err error, code string) bool {
	var de *Error
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

// ----------------------
// Validation errors (400)
// ----------------------

func ErrInvalidJSON(cause error) *Error {
	return Wrap(KindValidation, "invalid_json", "Invalid input", cause)
}

func ErrMissingField(field string) *Error {
	return New(KindValidation, "missing_field", field+" is required")
}

func ErrInvalidField(field, reason string) *Error {
	return New(KindValidation, "invalid_field", field+" "+reason)
}

func ErrPasswordTooShort(min int) *Error {
	return New(KindValidation, "password_too_short", fmt.Sprintf("Password must be at least %d characters", min))
}

// Duplicate email is reported as a 400 by the public API, not a 409.
func ErrEmailAlreadyExists() *Error {
	return New(KindValidation, "email_already_exists", "Email already exists")
}

func ErrNoFile() *Error {
	return New(KindValidation, "no_file", "No PDF uploaded")
}

func ErrUnsupportedFileType() *Error {
	return New(KindValidation, "unsupported_file_type", "Only PDF files allowed")
}

func ErrFileTooLarge() *Error {
	return New(KindValidation, "file_too_large", "File too large")
}

// ----------------------
// Auth errors (401)
// ----------------------

// IMPORTANT: use this for login failures to avoid user enumeration.
func ErrInvalidCredentials() *Error {
	return New(KindAuth, "invalid_credentials", "Invalid credentials")
}

func ErrTokenMissing() *Error {
	return New(KindAuth, "token_missing", "Unauthorized")
}

// ----------------------
// Forbidden (403)
// ----------------------

// Invalid and expired tokens share one message so the cause never leaks.
func ErrTokenInvalid() *Error {
	return New(KindForbidden, "token_invalid", "Invalid or expired token")
}

func ErrTokenExpired() *Error {
	return New(KindForbidden, "token_expired", "Invalid or expired token")
}

// ----------------------
// Not Found (404)
// ----------------------

func ErrUserNotFound() *Error {
	return New(KindNotFound, "user_not_found", "User not found")
}

// ----------------------
// Rate limit (429)
// ----------------------

func ErrRateLimited(scope string) *Error {
	e := New(KindRateLimited, "rate_limited", "Too many attempts. Try again later.")
	e.Cause = fmt.Errorf("scope %s", scope)
	return e
}

// ----------------------
// Infrastructure / internal (5xx)
// ----------------------

func ErrDBUnavailable(cause error) *Error {
	return Wrap(KindInfrastructure, "db_unavailable", "Server error", cause)
}

func ErrHashFailed(cause error) *Error {
	return Wrap(KindInternal, "hash_failed", "Server error", cause)
}

func ErrTokenSignFailed(cause error) *Error {
	return Wrap(KindInternal, "token_sign_failed", "Server error", cause)
}

func ErrInternal(cause error) *Error {
	return Wrap(KindInternal, "internal_error", "Server error", cause)
}
