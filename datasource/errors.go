package datasource

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed fetch so callers can decide between
// hard and soft handling without matching on message text.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNotFound
	KindAuthFailure
	KindRateLimited
	KindTransportFailure
	KindMalformedPayload
)

// String returns a short name for the kind, used in error text.
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindAuthFailure:
		return "auth failure"
	case KindRateLimited:
		return "rate limited"
	case KindTransportFailure:
		return "transport failure"
	case KindMalformedPayload:
		return "malformed payload"
	default:
		return "unknown"
	}
}

// APIError is a typed failure from the weather provider. StatusText
// carries the original provider status line or message verbatim.
type APIError struct {
	Kind       ErrorKind
	StatusText string
	Err        error
}

func (e *APIError) Error() string {
	if e.StatusText != "" {
		return fmt.Sprintf("weather API %s: %s", e.Kind, e.StatusText)
	}
	if e.Err != nil {
		return fmt.Sprintf("weather API %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("weather API %s", e.Kind)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Kind extracts the ErrorKind from err, unwrapping as needed.
// Any error that is not an APIError reports KindUnknown.
func Kind(err error) ErrorKind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

// kindForStatus maps a provider HTTP status code to an ErrorKind.
func kindForStatus(code int) ErrorKind {
	switch code {
	case 400, 404:
		return KindNotFound
	case 401:
		return KindAuthFailure
	case 429:
		return KindRateLimited
	default:
		return KindUnknown
	}
}
