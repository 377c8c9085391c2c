package netutil

import (
	"crypto/tls"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNewHTTPTransportDefaults(t *testing.T) {
	transport := NewHTTPTransport(nil, HTTPTimeouts{})

	require.Nil(t, transport.TLSClientConfig)
	require.Equal(t, defaultIdleConnTimeout, transport.IdleConnTimeout)
	require.Equal(t, defaultContinueTimeout, transport.ExpectContinueTimeout)
	require.Equal(t, defaultResponseHeaderTimeout, transport.ResponseHeaderTimeout)
	require.Equal(t, defaultTLSHandshakeTimeout, transport.TLSHandshakeTimeout)
}

func TestNewHTTPTransportOverrides(t *testing.T) {
	var (
		idle   = 5 * time.Second
		config = &tls.Config{InsecureSkipVerify: true}
	)

	transport := NewHTTPTransport(config, HTTPTimeouts{TransportIdleConn: &idle})

	require.Same(t, config, transport.TLSClientConfig)
	require.Equal(t, idle, transport.IdleConnTimeout)
}

func TestHTTPTimeoutsUnmarshalJSON(t *testing.T) {
	var timeouts HTTPTimeouts

	err := timeouts.UnmarshalJSON([]byte(`{"dialer":"1s","transport_tls_handshake":"2s"}`))
	require.NoError(t, err)
	require.Equal(t, time.Second, *timeouts.Dialer)
	require.Equal(t, 2*time.Second, *timeouts.TransportTLSHandshake)
	require.Nil(t, timeouts.KeepAlive)

	require.Error(t, timeouts.UnmarshalJSON([]byte(`{"dialer":"never"}`)))
}

func TestTrimSchema(t *testing.T) {
	require.Equal(t, "example.com", TrimSchema("http://example.com"))
	require.Equal(t, "example.com", TrimSchema("https://example.com"))
	require.Equal(t, "example.com", TrimSchema("example.com"))
}

func TestValidHeaderName(t *testing.T) {
	require.True(t, ValidHeaderName("ETag"))
	require.True(t, ValidHeaderName("x-amz-content-sha256"))
	require.False(t, ValidHeaderName(""))
	require.False(t, ValidHeaderName("X-Amz Date"))
	require.False(t, ValidHeaderName("X-Amz\x00Date"))
}

func TestValidHeaderValue(t *testing.T) {
	require.True(t, ValidHeaderValue(`"abc123"`))
	require.True(t, ValidHeaderValue("with\ttab"))
	require.False(t, ValidHeaderValue("with\nnewline"))
	require.False(t, ValidHeaderValue("with\x7fdelete"))
}
