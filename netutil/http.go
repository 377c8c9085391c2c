// Package netutil provides HTTP transport/client construction and wire-level validation helpers.
package netutil

import (
	"crypto/tls"
	"net"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
)

// HTTPTimeouts encapsulates the timeouts for a HTTP client into an object which can be parsed from an environment
// variable.
type HTTPTimeouts struct {
	Dialer                  *time.Duration
	KeepAlive               *time.Duration
	TransportIdleConn       *time.Duration
	TransportContinue       *time.Duration
	TransportResponseHeader *time.Duration
	TransportTLSHandshake   *time.Duration
}

// UnmarshalJSON implements the 'json.Unmarshaler' interface, parsing each timeout from a duration string.
func (ct *HTTPTimeouts) UnmarshalJSON(data []byte) error {
	type overlay struct {
		Dialer                  string `json:"dialer,omitempty"`
		KeepAlive               string `json:"keep_alive,omitempty"`
		TransportIdleConn       string `json:"transport_idle_conn,omitempty"`
		TransportContinue       string `json:"transport_continue,omitempty"`
		TransportResponseHeader string `json:"transport_response_header,omitempty"`
		TransportTLSHandshake   string `json:"transport_tls_handshake,omitempty"`
	}

	var decoded overlay

	err := jsoniter.Unmarshal(data, &decoded)
	if err != nil {
		return err
	}

	parse := func(duration string) (*time.Duration, error) {
		if duration == "" {
			return nil, nil
		}

		parsed, err := time.ParseDuration(duration)
		if err != nil {
			return nil, err
		}

		return &parsed, nil
	}

	ct.Dialer, err = parse(decoded.Dialer)
	if err != nil {
		return err
	}

	ct.KeepAlive, err = parse(decoded.KeepAlive)
	if err != nil {
		return err
	}

	ct.TransportIdleConn, err = parse(decoded.TransportIdleConn)
	if err != nil {
		return err
	}

	ct.TransportContinue, err = parse(decoded.TransportContinue)
	if err != nil {
		return err
	}

	ct.TransportTLSHandshake, err = parse(decoded.TransportTLSHandshake)
	if err != nil {
		return err
	}

	ct.TransportResponseHeader, err = parse(decoded.TransportResponseHeader)
	if err != nil {
		return err
	}

	return nil
}

// NewHTTPTransport returns a HTTP transport with the given TLS configuration, using sane default timeouts for any
// which haven't been explicitly provided.
func NewHTTPTransport(tlsConfig *tls.Config, timeouts HTTPTimeouts) *http.Transport {
	dialer := &net.Dialer{
		Timeout:   timeoutOrDefault(timeouts.Dialer, defaultDialerTimeout),
		KeepAlive: timeoutOrDefault(timeouts.KeepAlive, defaultDialerKeepAlive),
	}

	return &http.Transport{
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          100,
		TLSClientConfig:       tlsConfig,
		DialContext:           dialer.DialContext,
		IdleConnTimeout:       timeoutOrDefault(timeouts.TransportIdleConn, defaultIdleConnTimeout),
		ExpectContinueTimeout: timeoutOrDefault(timeouts.TransportContinue, defaultContinueTimeout),
		ResponseHeaderTimeout: timeoutOrDefault(timeouts.TransportResponseHeader, defaultResponseHeaderTimeout),
		TLSHandshakeTimeout:   timeoutOrDefault(timeouts.TransportTLSHandshake, defaultTLSHandshakeTimeout),
	}
}

// NewHTTPClient returns a new HTTP client with the given timeout/transport.
//
// NOTE: This is used to ensure that all uses of a HTTP client use the same configuration.
func NewHTTPClient(timeout time.Duration, transport http.RoundTripper) *http.Client {
	return &http.Client{Timeout: timeout, Transport: transport}
}

// timeoutOrDefault returns the given timeout if it's not nil, otherwise it returns the given default value.
func timeoutOrDefault(timeout *time.Duration, defaultTimeout time.Duration) time.Duration {
	if timeout != nil {
		return *timeout
	}

	return defaultTimeout
}
