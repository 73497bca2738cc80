package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Domain-specific rejections surfaced from error response bodies.
var (
	// ErrEmailNotVerified means login was rejected because the account's
	// email address has not been verified yet.
	ErrEmailNotVerified = errors.New("email not verified")

	// ErrEmailTaken means registration was rejected because the email is
	// already associated with an account.
	ErrEmailTaken = errors.New("email already registered")
)

// APIError represents a non-2xx response from the Forezy API.
type APIError struct {
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("forezy api error %d: %s", e.StatusCode, e.Message)
}

// IsRetryable returns true if the error should trigger a retry.
func (e *APIError) IsRetryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// DecodeError represents a 2xx response whose body could not be parsed or
// was missing required fields.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("decode response: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Kind classifies an API operation failure for user-facing handling.
type Kind int

const (
	// KindNetwork: the request could not be sent or no response arrived.
	KindNetwork Kind = iota
	// KindHTTP: the server responded with a failure status.
	KindHTTP
	// KindMalformed: a 2xx response body was unparsable or incomplete.
	KindMalformed
	// KindEmailNotVerified: login rejected pending email verification.
	KindEmailNotVerified
	// KindEmailTaken: registration rejected, email already in use.
	KindEmailTaken
)

// Classify maps any error returned by a Client operation to its Kind.
// Transport-level failures are the default: anything that is not a typed
// API outcome never reached (or never parsed) an HTTP response.
func Classify(err error) Kind {
	switch {
	case errors.Is(err, ErrEmailNotVerified):
		return KindEmailNotVerified
	case errors.Is(err, ErrEmailTaken):
		return KindEmailTaken
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return KindHTTP
	}

	var decErr *DecodeError
	if errors.As(err, &decErr) {
		return KindMalformed
	}

	return KindNetwork
}

// errorBody is the JSON error shape the backend usually returns.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// parseErrorBody extracts a human-readable message from an error response.
// Bodies may be JSON {error, message} or plain text.
func parseErrorBody(status int, body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err == nil {
		if eb.Message != "" {
			return eb.Message
		}
		if eb.Error != "" {
			return eb.Error
		}
	}

	if msg := strings.TrimSpace(string(body)); msg != "" {
		return msg
	}
	return http.StatusText(status)
}

// mentionsUnverifiedEmail detects the backend's email-verification
// rejection, which appears either as an error code or as prose.
func mentionsUnverifiedEmail(body []byte) bool {
	s := string(body)
	return strings.Contains(s, "email_not_verified") ||
		strings.Contains(s, "verify your email")
}

// mentionsEmailTaken detects the duplicate-registration rejection.
func mentionsEmailTaken(status int, body []byte) bool {
	if status == http.StatusConflict {
		return true
	}
	s := strings.ToLower(string(body))
	return strings.Contains(s, "already registered") ||
		strings.Contains(s, "already exists")
}
