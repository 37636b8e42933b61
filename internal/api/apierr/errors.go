package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/venuedesk/venuedesk/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest     = "INVALID_REQUEST"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeUnrecognizedRole   = "UNRECOGNIZED_ROLE"
	CodeSessionNotReady    = "SESSION_NOT_READY"
	CodeRecordNotFound     = "RECORD_NOT_FOUND"
	CodeInternalError      = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrIdentityResolution):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeInvalidCredentials, "Could not resolve an identity for those credentials"}}
	case errors.Is(err, model.ErrUnrecognizedRole):
		return &httpError{http.StatusBadRequest, APIError{CodeUnrecognizedRole, "Role must be one of guest, host or admin"}}
	case errors.Is(err, model.ErrSessionNotReady):
		return &httpError{http.StatusServiceUnavailable, APIError{CodeSessionNotReady, "Session is still loading"}}
	case errors.Is(err, model.ErrRecordNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRecordNotFound, "Record not found"}}
	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "An internal error occurred"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "An internal error occurred"}}
}
