package gazetteer

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Kind is a case of the closed failure taxonomy. Each kind carries a
// fixed HTTP status code and a machine-readable type string which API
// consumers can branch on.
type Kind int

const (
	KindInvalidIP Kind = iota
	KindPrivateIP
	KindNotFound
	KindRateLimited
	KindUnavailable
	KindClientIPUndetermined
)

func (k Kind) StatusCode() int {
	switch k {
	case KindInvalidIP, KindClientIPUndetermined:
		return http.StatusBadRequest
	case KindPrivateIP:
		return http.StatusUnprocessableEntity
	case KindNotFound:
		return http.StatusNotFound
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusServiceUnavailable
	}
}

func (k Kind) Type() string {
	switch k {
	case KindInvalidIP:
		return "invalid_ip"
	case KindPrivateIP:
		return "private_ip"
	case KindNotFound:
		return "ip_not_found"
	case KindRateLimited:
		return "rate_limit_exceeded"
	case KindClientIPUndetermined:
		return "client_ip_detection_failed"
	default:
		return "provider_unavailable"
	}
}

type jsonError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
		Field   string `json:"field,omitempty"`
	} `json:"error"`
}

// Error is the only error type the core ever returns. It is
// constructed at the point of detection and propagated unchanged up
// to the boundary, where MarshalJSON produces the external envelope.
type Error struct {
	kind    Kind
	message string
	field   string
	err     error
}

func (e *Error) Kind() Kind {
	return e.kind
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}

	return e.message
}

func (e *Error) StatusCode() int {
	return e.kind.StatusCode()
}

func (e *Error) Type() string {
	return e.kind.Type()
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.err
}

func (e *Error) Error() string {
	switch {
	case e == nil:
		return ""
	case e.err != nil:
		return e.message + ": " + e.err.Error()
	}

	return e.message
}

func (e *Error) MarshalJSON() ([]byte, error) {
	value := jsonError{}
	value.Error.Type = e.Type()
	value.Error.Message = e.Message()
	value.Error.Field = e.field

	return json.Marshal(&value)
}

func NewInvalidIPError(ip string) *Error {
	return &Error{
		kind:    KindInvalidIP,
		message: fmt.Sprintf("Invalid IPv4 address: %s", ip),
		field:   "ip",
	}
}

func NewPrivateIPError(ip string) *Error {
	return &Error{
		kind:    KindPrivateIP,
		message: fmt.Sprintf("Cannot geolocate private/reserved IP: %s", ip),
		field:   "ip",
	}
}

func NewNotFoundError(ip string) *Error {
	return &Error{
		kind:    KindNotFound,
		message: fmt.Sprintf("Geolocation data not found for IP: %s", ip),
	}
}

func NewRateLimitedError(provider string) *Error {
	return &Error{
		kind:    KindRateLimited,
		message: fmt.Sprintf("Rate limit exceeded for provider: %s", provider),
	}
}

func NewUnavailableError(provider, reason string, err error) *Error {
	return &Error{
		kind:    KindUnavailable,
		message: fmt.Sprintf("Geolocation provider %s is unavailable: %s", provider, reason),
		err:     err,
	}
}

func NewClientIPError() *Error {
	return &Error{
		kind:    KindClientIPUndetermined,
		message: "Unable to determine client IP address",
	}
}
