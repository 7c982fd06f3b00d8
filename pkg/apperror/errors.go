package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingToken       = errors.New("authentication token required")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token has expired")
)

// ErrConflict is returned when a unique value (the user email) is already taken.
var ErrConflict = errors.New("email already registered")

// GenericMessage is the only text a caller ever sees for a server fault.
const GenericMessage = "Something went wrong on the server!"

// ValidationError reports a missing or malformed request field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("Missing required field: %s", e.Field)
}

// Missing builds the error for an absent required field.
func Missing(field string) *ValidationError {
	return &ValidationError{Field: field}
}

// Invalid builds the error for a present but unacceptable field.
func Invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// PersistenceError wraps a store failure. Op names what was being done
// ("saving testDrive", "login user lookup") and is only logged.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("database error during %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Persistence wraps err, returning nil when err is nil.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	return &PersistenceError{Op: op, Err: err}
}

// StatusCode maps an error from any layer onto the HTTP status it answers with.
func StatusCode(err error) int {
	var validation *ValidationError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validation), errors.Is(err, ErrConflict):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials), errors.Is(err, ErrMissingToken):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrTokenExpired):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the text safe to send to a client. Persistence and
// unclassified errors never leak their detail.
func PublicMessage(err error) string {
	var persistence *PersistenceError
	switch {
	case errors.As(err, &persistence):
		return fmt.Sprintf("Server error during %s", persistence.Op)
	case errors.Is(err, ErrMissingToken):
		return "Authentication token required"
	case errors.Is(err, ErrInvalidToken), errors.Is(err, ErrTokenExpired):
		return "Invalid or expired token"
	case errors.Is(err, ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, ErrConflict):
		return "Email already registered"
	}
	if StatusCode(err) == http.StatusInternalServerError {
		return GenericMessage
	}
	return err.Error()
}
