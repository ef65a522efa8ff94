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
	KindConflict       ErrKind = "conflict"       // 400, see transport mapping
	KindInfrastructure ErrKind = "infrastructure" // 503
	KindInternal       ErrKind = "internal"       // 500
)

// Error is a structured domain error.
// - Kind: high-level category for HTTP mapping
// - Code: stable machine code (do not change casually)
// - Message: safe summary for clients (avoid leaking sensitive details)
// - Fields: names of missing/invalid request fields, when applicable
// - Cause: wrapped internal error for logging/diagnostics
type Error struct {
	Kind    ErrKind
	Code    string
	Message string
	Fields  []string
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

// Is reports whether err carries the given stable code.
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
	return Wrap(KindValidation, "invalid_json", "Invalid JSON body", cause)
}

// ErrMissingFields names every blank required field of the request.
func ErrMissingFields(fields ...string) *Error {
	e := New(KindValidation, "missing_fields", "All fields must be filled")
	e.Fields = fields
	return e
}

func ErrCredentialsRequired() *Error {
	return New(KindValidation, "credentials_required", "Email and password are required")
}

func ErrInvalidRole() *Error {
	return New(KindValidation, "invalid_role", "Role must be admin, staff, or intern")
}

func ErrNoUpdateData() *Error {
	return New(KindValidation, "no_update_data", "No data provided for update")
}

func ErrInvalidID() *Error {
	return New(KindValidation, "invalid_id", "Employee id must be a number")
}

// ----------------------
// Auth errors (401)
// ----------------------

// ErrInvalidCredentials covers both unknown email and wrong password so the
// login endpoint cannot be used to enumerate accounts.
func ErrInvalidCredentials() *Error {
	return New(KindAuth, "invalid_credentials", "Invalid email or password")
}

func ErrTokenMissing() *Error {
	return New(KindAuth, "token_missing", "Not authorized, no token provided")
}

func ErrTokenInvalid() *Error {
	return New(KindAuth, "token_invalid", "Not authorized, invalid token")
}

func ErrTokenData() *Error {
	return New(KindAuth, "token_data", "Unauthorized: Invalid token data")
}

// ----------------------
// Forbidden (403)
// ----------------------

func ErrNotAuthorized() *Error {
	return New(KindForbidden, "not_authorized", "You are not authorized to perform this action")
}

func ErrNotOwner() *Error {
	return New(KindForbidden, "not_owner", "You are not authorized to update this data")
}

// ----------------------
// Not Found (404)
// ----------------------

func ErrEmployeeNotFound() *Error {
	return New(KindNotFound, "employee_not_found", "Employee data not found")
}

// ----------------------
// Conflict (400 in the public contract)
// ----------------------

func ErrEmailTaken() *Error {
	return New(KindConflict, "email_taken", "Email is already registered")
}

// ----------------------
// Infrastructure / internal (5xx)
// ----------------------

func ErrDBUnavailable(cause error) *Error {
	return Wrap(KindInfrastructure, "db_unavailable", "Database unavailable", cause)
}

func ErrHashFailed(cause error) *Error {
	return Wrap(KindInternal, "hash_failed", "Password hashing failed", cause)
}

func ErrTokenSignFailed(cause error) *Error {
	return Wrap(KindInternal, "token_sign_failed", "Token signing failed", cause)
}

func ErrInternal(cause error) *Error {
	return Wrap(KindInternal, "internal_error", "Internal error", cause)
}
