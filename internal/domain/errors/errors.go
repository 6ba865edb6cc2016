package errors

import (
	"errors"
	"fmt"
)

var (
	ErrSourceUnavailable = errors.New("source unavailable")
	ErrUnauthorized      = errors.New("source rejected credentials")
	ErrUnexpectedStatus  = errors.New("unexpected source status")
	ErrDecode            = errors.New("malformed source payload")
	ErrUnknownSport      = errors.New("unknown sport")
	ErrUnknownTeam       = errors.New("unknown team")
	ErrUnknownLeague     = errors.New("unknown league")
	ErrHistoryDisabled   = errors.New("suggestion history disabled")
	ErrNotFound          = errors.New("not found")
)

// StatusError is returned by provider clients for non-2xx responses.
type StatusError struct {
	Provider   string
	StatusCode int
	Body       string
	kind       error
}

func NewStatusError(provider string, statusCode int, body string) *StatusError {
	return &StatusError{
		Provider:   provider,
		StatusCode: statusCode,
		Body:       body,
		kind:       classifyStatus(statusCode),
	}
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: %v: %d", e.Provider, e.kind, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v: %d - %s", e.Provider, e.kind, e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error {
	return e.kind
}

func classifyStatus(code int) error {
	switch {
	case code == 401 || code == 403:
		return ErrUnauthorized
	case code == 429 || code >= 500:
		return ErrSourceUnavailable
	default:
		return ErrUnexpectedStatus
	}
}
