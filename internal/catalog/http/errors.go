package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/scentworks/parfum/pkg/httpx"
)

// Error codes used in the "error" field of failure responses.
const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeUsernameTaken      = "username_taken"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeValidationFailed   = "validation_failed"
	ErrorCodeDependencyFailure  = "dependency_failure"
	ErrorCodeServerError        = "server_error"
)

// APIError is the wire shape of every failure response:
// {"error": code, "error_description": text}.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

var (
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	ErrInvalidContentType = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "unsupported content type",
	}

	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidCredentials,
		Description: "incorrect username or password",
	}

	ErrUsernameTaken = &APIError{
		StatusCode:  http.StatusConflict,
		Code:        ErrorCodeUsernameTaken,
		Description: "username already registered",
	}

	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "no matching records",
	}

	ErrNoPreferences = &APIError{
		StatusCode:  http.StatusUnprocessableEntity,
		Code:        ErrorCodeValidationFailed,
		Description: "preferences must not be empty",
	}

	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// NewDependencyError builds a 500 that embeds the upstream error text so the
// caller can see why the external notes service call failed.
func NewDependencyError(err error) *APIError {
	return &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeDependencyFailure,
		Description: err.Error(),
	}
}
