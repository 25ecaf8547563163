package remote

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned when neither a backend nor a Gemini key is set.
	ErrNotConfigured = errors.New("remote: no backend or gemini key configured")

	// ErrUnauthorized is returned when the backend rejects the bearer token.
	// The token is cleared before the error is returned.
	ErrUnauthorized = errors.New("remote: unauthorized")

	// ErrNonRetryable marks a Gemini 403/404. No further Gemini attempts are made.
	ErrNonRetryable = errors.New("remote: non-retryable gemini response")

	// ErrEmptyResponse is returned when a call succeeds but carries no text.
	ErrEmptyResponse = errors.New("remote: empty response")

	// ErrNoBackend is returned by Discover when no candidate answered.
	ErrNoBackend = errors.New("remote: no reachable backend")
)

// StatusError is a non-2xx HTTP answer.
type StatusError struct {
	URL    string
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	body := e.Body
	if len(body) > 200 {
		body = body[:200]
	}
	return fmt.Sprintf("remote: %s returned status %d: %s", e.URL, e.Status, body)
}
