package playcricket

import (
	"errors"
	"fmt"
)

// ErrNoAPIKey is returned when a request is attempted without a resolvable
// API key. Callers surface it as a client error with a remediation hint.
var ErrNoAPIKey = errors.New("Play-Cricket API key not configured. Set it via /api/club-config.")

// UpstreamError is a non-200 response from the Play-Cricket API. Snippet
// holds a truncated slice of the response body.
type UpstreamError struct {
	Status  int
	Snippet string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Play-Cricket API error: %d %s", e.Status, e.Snippet)
}

// TransportError is a network-level failure reaching the Play-Cricket API
// (DNS, connection refused, timeout).
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("Error contacting Play-Cricket API: %s", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}
