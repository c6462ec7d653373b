// AngelaMos | 2026
// errors.go

package core

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Sentinel errors raised by repositories and services. Handlers are the only
// layer that translates these into HTTP statuses.
var (
	ErrNotFound           = errors.New("not found")
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrInvalidInput       = errors.New("invalid input")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrTokenNotConfigured = errors.New("admin token not configured")
)

type AppError struct {
	Status  int
	Message string
	Details any
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(status int, message string) *AppError {
	return &AppError{Status: status, Message: message}
}

func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func BadRequestError(message string) *AppError {
	return NewAppError(http.StatusBadRequest, message)
}

func UnauthorizedError(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, message)
}

func ForbiddenError(message string) *AppError {
	return NewAppError(http.StatusForbidden, message)
}

func NotFoundError(resource string) *AppError {
	return NewAppError(http.StatusNotFound, resource+" not found")
}

// ConfigurationError reports a server-side misconfiguration. Deliberately a
// 500, not a 4xx: the client did nothing wrong.
func ConfigurationError(message string) *AppError {
	return NewAppError(http.StatusInternalServerError, message)
}

type errorBody struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// JSONError writes err as the standard error envelope. AppErrors carry their
// own status; anything else is a 500 with the message passed through.
func JSONError(w http.ResponseWriter, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		writeJSON(w, appErr.Status, errorBody{
			Error:   appErr.Message,
			Details: appErr.Details,
		})
		return
	}

	writeJSON(w, http.StatusInternalServerError, errorBody{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck // best-effort response write
	_ = json.NewEncoder(w).Encode(v)
}
