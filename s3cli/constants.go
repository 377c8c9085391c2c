package s3cli

import "time"

const (
	// DefaultClientTimeout is the timeout for a single dispatch, including reading the response body.
	DefaultClientTimeout = time.Minute

	// ETagHeader is the header projected by 'FetchBody' when 'ExtractETag' is set; matched case-insensitively per
	// standard header semantics.
	ETagHeader = "ETag"
)

const (
	// TimeoutEnvVar overrides the client timeout, parsed as a duration string.
	TimeoutEnvVar = "S3KIT_CLIENT_TIMEOUT"

	// BandwidthLimitEnvVar limits the rate response bodies are read at, parsed as bytes per second.
	BandwidthLimitEnvVar = "S3KIT_CLIENT_BANDWIDTH_LIMIT"

	// HTTPTimeoutsEnvVar overrides the transport level timeouts, parsed as a JSON document. See
	// 'netutil.HTTPTimeouts'.
	HTTPTimeoutsEnvVar = "S3KIT_HTTP_TIMEOUTS"

	// NoVerifyTLSEnvVar overrides verification of the peer's certificate chain, parsed as a boolean; an escape hatch
	// for hosts with out of date trust stores.
	NoVerifyTLSEnvVar = "S3KIT_CLIENT_NO_VERIFY_TLS"
)
