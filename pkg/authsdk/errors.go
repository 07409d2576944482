package authsdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// APIError represents an error envelope returned by the service. It carries
// the HTTP status code alongside the envelope message so callers can branch
// on either.
type APIError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int `json:"-"`

	// Message is the envelope's human-readable error message
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// parseErrorResponse turns a non-2xx response body into a typed *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	var env Envelope
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}

	// Fallback: generic error from the status code alone
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
}
