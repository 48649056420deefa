package glo

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// APIError is returned for every response with a non-2xx status that
// survives any configured retries.
type APIError struct {
	StatusCode int    `json:"status_code"       yaml:"status_code"`
	Method     string `json:"method"            yaml:"method"`
	Path       string `json:"path"              yaml:"path"`
	Message    string `json:"message,omitempty" yaml:"message,omitempty"`
	Body       []byte `json:"-"                 yaml:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	detail := e.Message
	if detail == "" {
		detail = strings.TrimSpace(string(e.Body))
	}

	if detail == "" {
		detail = "(empty error body)"
	}

	return fmt.Sprintf("%s %s: HTTP %d: %s", e.Method, e.Path, e.StatusCode, detail)
}

// NewAPIError builds an APIError, lifting the message out of a JSON body
// of the form {"message": "..."} or {"error": "..."} when there is one.
func NewAPIError(method, path string, statusCode int, body []byte) *APIError {
	return &APIError{
		StatusCode: statusCode,
		Method:     method,
		Path:       path,
		Message:    parseErrorMessage(body),
		Body:       body,
	}
}

func parseErrorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}

	if len(body) == 0 || json.Unmarshal(body, &payload) != nil {
		return ""
	}

	if payload.Message != "" {
		return payload.Message
	}

	return payload.Error
}

// Static errors for err113 compliance.
var (
	ErrConfigRequired   = errors.New("config is required")
	ErrInvalidSortOrder = errors.New("invalid sort order, expected asc or desc")
)

// StatusCode returns the HTTP status carried by err, or 0 when err is not
// an APIError.
func StatusCode(err error) int {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	return 0
}

// IsNotFound reports whether err carries a 404 status.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized reports whether err carries a 401 status.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// IsForbidden reports whether err carries a 403 status.
func IsForbidden(err error) bool {
	return StatusCode(err) == http.StatusForbidden
}
