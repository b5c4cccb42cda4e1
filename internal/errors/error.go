package errors

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// common errors
	ErrConnectionTimeout = errors.New("connection timeout")
	ErrNotConfigured     = errors.New("provider not configured")

	// input errors, messages are part of the HTTP contract
	ErrWebsiteRequired    = errors.New("Website URL is required.")
	ErrMissingEmail       = errors.New("Missing email parameter")
	ErrInvalidEmailFormat = errors.New("Invalid email format")
	ErrInvalidLeadEmail   = errors.New("Invalid email address")

	// upstream errors
	ErrCrmNotConfigured = errors.New("CRM forwarding not configured")
	ErrCrmUnavailable   = errors.New("CRM service unavailable")
)

// UpstreamStatusError carries the HTTP status and response body returned by
// a required external provider so handlers can propagate them verbatim.
type UpstreamStatusError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *UpstreamStatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Provider, e.StatusCode)
}

func NewUpstreamStatusError(provider string, statusCode int, body string) *UpstreamStatusError {
	return &UpstreamStatusError{Provider: provider, StatusCode: statusCode, Body: body}
}

func IsInvalidInput(err error) bool {
	switch errors.Cause(err) {
	case ErrWebsiteRequired, ErrMissingEmail, ErrInvalidEmailFormat:
		return true
	}
	return false
}
