// Package s3err exposes the error taxonomy surfaced by the s3kit client.
package s3err

import (
	"errors"
	"fmt"
)

// ErrBodyConsumed is returned when a response body is consumed more than once; each response carries a single byte
// stream which may be read at most once.
var ErrBodyConsumed = errors.New("response body has already been consumed")

// TransportError is returned when a request fails below the HTTP layer; the connection could not be established, TLS
// negotiation failed, or the peer reset before a status line was received.
type TransportError struct {
	Method   string
	Endpoint string
	Inner    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure executing '%s' request to '%s': %s", e.Method, e.Endpoint, e.Inner)
}

func (e *TransportError) Unwrap() error {
	return e.Inner
}

// IsTransportError returns a boolean indicating whether the given error is a 'TransportError'.
func IsTransportError(err error) bool {
	var transportError *TransportError
	return errors.As(err, &transportError)
}

// InvalidHeaderError is returned when a header name or value is not wire-representable; the request is aborted before
// any bytes are sent.
type InvalidHeaderError struct {
	Name  string
	Value string
}

func (e *InvalidHeaderError) Error() string {
	return fmt.Sprintf("header '%s' is not wire-representable", e.Name)
}

// IsInvalidHeaderError returns a boolean indicating whether the given error is an 'InvalidHeaderError'.
func IsInvalidHeaderError(err error) bool {
	var invalidHeaderError *InvalidHeaderError
	return errors.As(err, &invalidHeaderError)
}

// HTTPStatusError is returned when a request completes with a failure status code and the client (or calling helper)
// treats that as fatal; it carries the status and the response body decoded as text.
//
// NOTE: Composing this error consumes the response body, so it's mutually exclusive with the body being returned in
// any other shape.
type HTTPStatusError struct {
	Status int
	Body   string
}

func (e *HTTPStatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("request failed with status code %d", e.Status)
	}

	return fmt.Sprintf("request failed with status code %d: %s", e.Status, e.Body)
}

// IsHTTPStatusError returns a boolean indicating whether the given error is an 'HTTPStatusError'.
func IsHTTPStatusError(err error) bool {
	var statusError *HTTPStatusError
	return errors.As(err, &statusError)
}

// SinkWriteError is returned when a caller-supplied sink rejects the response body; the response has already been
// fully read by the time this error is surfaced.
type SinkWriteError struct {
	Written int
	Inner   error
}

func (e *SinkWriteError) Error() string {
	return fmt.Sprintf("failed to write response body to sink after %d bytes: %s", e.Written, e.Inner)
}

func (e *SinkWriteError) Unwrap() error {
	return e.Inner
}

// IsSinkWriteError returns a boolean indicating whether the given error is a 'SinkWriteError'.
func IsSinkWriteError(err error) bool {
	var sinkWriteError *SinkWriteError
	return errors.As(err, &sinkWriteError)
}
