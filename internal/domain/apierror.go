package domain

import "fmt"

type ErrorKind string

const (
	ErrorKindNetwork    ErrorKind = "network"
	ErrorKindAuth       ErrorKind = "auth"
	ErrorKindValidation ErrorKind = "validation"
	ErrorKindServer     ErrorKind = "server"
)

// APIError is the single failure shape produced at the transport boundary.
// Kind tags the failure category so callers can choose their own granularity;
// Message carries the backend's human-readable detail when one was returned.
type APIError struct {
	Kind       ErrorKind
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (%s, status %d)", e.Message, e.Kind, e.StatusCode)
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Kind)
}

// UserMessage reduces the error to the message shown to the user, falling
// back to the given generic message when the backend supplied no detail.
func (e *APIError) UserMessage(fallback string) string {
	if e.Message == "" {
		return fallback
	}
	return e.Message
}
