package s3cli

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cloudbits/s3kit/envvar"
	"github.com/cloudbits/s3kit/log"
	"github.com/cloudbits/s3kit/netutil"
	"github.com/cloudbits/s3kit/ratelimit"
	"github.com/cloudbits/s3kit/s3cmd"
	"github.com/cloudbits/s3kit/s3err"
	"github.com/cloudbits/s3kit/s3sign"
	"github.com/cloudbits/s3kit/s3val"

	jsoniter "github.com/json-iterator/go"
	"golang.org/x/time/rate"
)

// ErrNoProducer is returned when creating a client without a header/URL producer.
var ErrNoProducer = errors.New("a header/URL producer is required")

// ClientOptions encapsulates the options for creating a new client.
type ClientOptions struct {
	// Producer yields the endpoint and signed headers for each dispatched command.
	//
	// NOTE: This attribute is required.
	Producer s3sign.Producer

	// StrictStatus converts any response with a status code of 400 or above into an 'HTTPStatusError' rather than
	// returning it to the caller as data.
	StrictStatus bool

	// NoVerifyTLS disables verification of the peer's certificate chain and host name.
	NoVerifyTLS bool

	// BandwidthLimit rate limits the reading of response bodies; unlimited when nil.
	BandwidthLimit *rate.Limiter

	// Timeout bounds each dispatch including reading the response body; the default is used when zero.
	Timeout time.Duration

	// Logger is the passed logger, the zero value disables logging.
	Logger log.Logger

	// ReqResLogLevel is the level at which to log the dispatch/receipt of requests/responses. Defaults to trace.
	ReqResLogLevel log.Level
}

// Client dispatches object storage commands, one synchronous HTTP exchange per call.
//
// NOTE: Safe for concurrent use, all per-call state lives in the request context.
type Client struct {
	client   *http.Client
	producer s3sign.Producer
	strict   bool
	limiter  *rate.Limiter

	logger         log.WrappedLogger
	reqResLogLevel log.Level
}

// NewClient creates a new client using the given options.
func NewClient(options ClientOptions) (*Client, error) {
	if options.Producer == nil {
		return nil, ErrNoProducer
	}

	logger := log.NewWrappedLogger(options.Logger)

	timeout := options.Timeout
	if timeout == 0 {
		timeout = DefaultClientTimeout
	}

	if override, ok := envvar.GetDuration(TimeoutEnvVar); ok {
		timeout = override

		logger.Infof("(S3) Set client timeout to: %s", timeout)
	}

	limiter := options.BandwidthLimit

	if limit, ok := envvar.GetInt64(BandwidthLimitEnvVar); ok && limit > 0 {
		limiter = rate.NewLimiter(rate.Limit(limit), int(limit))

		logger.Infof("(S3) Set bandwidth limit to: %d bytes/sec", limit)
	}

	timeouts, err := envvar.GetHTTPTimeouts(HTTPTimeoutsEnvVar, netutil.HTTPTimeouts{})
	if err != nil {
		return nil, fmt.Errorf("failed to get HTTP timeouts: %w", err)
	}

	noVerifyTLS := options.NoVerifyTLS

	if override, ok := envvar.GetBool(NoVerifyTLSEnvVar); ok {
		noVerifyTLS = override

		logger.Infof("(S3) Set TLS verification skipping to: %t", noVerifyTLS)
	}

	var tlsConfig *tls.Config
	if noVerifyTLS {
		tlsConfig = &tls.Config{InsecureSkipVerify: noVerifyTLS} //nolint:gosec
	}

	client := &Client{
		client:         netutil.NewHTTPClient(timeout, netutil.NewHTTPTransport(tlsConfig, timeouts)),
		producer:       options.Producer,
		strict:         options.StrictStatus,
		limiter:        limiter,
		logger:         logger,
		reqResLogLevel: options.ReqResLogLevel,
	}

	client.logClientInfo(timeout, noVerifyTLS)

	return client, nil
}

// logClientInfo marshals and logs the resolved client configuration.
func (c *Client) logClientInfo(timeout time.Duration, noVerifyTLS bool) {
	info := struct {
		Timeout          string `json:"timeout"`
		StrictStatus     bool   `json:"strict_status"`
		NoVerifyTLS      bool   `json:"no_verify_tls"`
		BandwidthLimited bool   `json:"bandwidth_limited"`
	}{
		Timeout:          timeout.String(),
		StrictStatus:     c.strict,
		NoVerifyTLS:      noVerifyTLS,
		BandwidthLimited: c.limiter != nil,
	}

	data, err := jsoniter.Marshal(info)
	if err != nil {
		c.logger.Warnf("(S3) Failed to marshal client configuration: %s", err)

		return
	}

	c.logger.Infof("(S3) Created client | %s", data)
}

// requestContext is the ephemeral pairing of a command and its target, constructed fresh for each dispatch.
type requestContext struct {
	bucket  s3val.Bucket
	path    string
	command s3cmd.Command
	when    time.Time
}

func newRequestContext(bucket s3val.Bucket, path string, command s3cmd.Command) requestContext {
	return requestContext{bucket: bucket, path: path, command: command, when: time.Now().UTC()}
}

// ExecuteOptions encapsulates the options available when using the 'Execute' function.
type ExecuteOptions struct {
	// Bucket is the bucket being operated on.
	Bucket s3val.Bucket

	// Path is the key of the object being operated on.
	Path string

	// Command is the operation being dispatched.
	Command s3cmd.Command
}

// Execute dispatches the command and discards the response body, returning the status code.
func (c *Client) Execute(ctx context.Context, opts ExecuteOptions) (int, error) {
	resp, err := c.response(ctx, newRequestContext(opts.Bucket, opts.Path, opts.Command))
	if err != nil {
		return 0, err
	}

	defer c.cleanup(resp)

	return resp.StatusCode, nil
}

// FetchBodyOptions encapsulates the options available when using the 'FetchBody' function.
type FetchBodyOptions struct {
	// Bucket is the bucket being operated on.
	Bucket s3val.Bucket

	// Path is the key of the object being operated on.
	Path string

	// Command is the operation being dispatched.
	Command s3cmd.Command

	// ExtractETag discards the body and returns the value of the 'ETag' header in its place; when the header is
	// absent, the full body is returned unchanged.
	ExtractETag bool
}

// FetchBody dispatches the command and buffers the entire response body into memory, returning it alongside the status
// code.
func (c *Client) FetchBody(ctx context.Context, opts FetchBodyOptions) ([]byte, int, error) {
	resp, err := c.response(ctx, newRequestContext(opts.Bucket, opts.Path, opts.Command))
	if err != nil {
		return nil, 0, err
	}

	defer c.cleanup(resp)

	if opts.ExtractETag {
		if etag, ok := resp.ETag(); ok {
			return []byte(etag), resp.StatusCode, nil
		}
	}

	body, err := resp.Bytes()
	if err != nil {
		return nil, resp.StatusCode, err
	}

	return body, resp.StatusCode, nil
}

// StreamBodyOptions encapsulates the options available when using the 'StreamBody' function.
type StreamBodyOptions struct {
	// Bucket is the bucket being operated on.
	Bucket s3val.Bucket

	// Path is the key of the object being operated on.
	Path string

	// Command is the operation being dispatched.
	Command s3cmd.Command

	// Sink receives the response body in a single write call.
	//
	// NOTE: This attribute is required.
	Sink io.Writer
}

// StreamBody dispatches the command and writes the entire response body to the given sink, returning the status code.
//
// The body is fully buffered before being written, then handed to the sink in exactly one write; a short or failed
// write surfaces as a 'SinkWriteError' reporting the number of bytes accepted.
func (c *Client) StreamBody(ctx context.Context, opts StreamBodyOptions) (int, error) {
	resp, err := c.response(ctx, newRequestContext(opts.Bucket, opts.Path, opts.Command))
	if err != nil {
		return 0, err
	}

	defer c.cleanup(resp)

	body, err := resp.Bytes()
	if err != nil {
		return resp.StatusCode, err
	}

	n, err := opts.Sink.Write(body)
	if err != nil {
		return resp.StatusCode, &s3err.SinkWriteError{Written: n, Inner: err}
	}

	if n < len(body) {
		return resp.StatusCode, &s3err.SinkWriteError{Written: n, Inner: io.ErrShortWrite}
	}

	return resp.StatusCode, nil
}

// FetchHeadersOptions encapsulates the options available when using the 'FetchHeaders' function.
type FetchHeadersOptions struct {
	// Bucket is the bucket being operated on.
	Bucket s3val.Bucket

	// Path is the key of the object being operated on.
	Path string

	// Command is the operation being dispatched.
	Command s3cmd.Command
}

// FetchHeaders dispatches the command and discards the response body, returning the received headers alongside the
// status code.
func (c *Client) FetchHeaders(ctx context.Context, opts FetchHeadersOptions) (http.Header, int, error) {
	resp, err := c.response(ctx, newRequestContext(opts.Bucket, opts.Path, opts.Command))
	if err != nil {
		return nil, 0, err
	}

	defer c.cleanup(resp)

	return resp.Header(), resp.StatusCode, nil
}

// response performs the single network round trip for the given request context; the failure policy check runs here,
// exactly once, before any retrieval shape proceeds.
func (c *Client) response(ctx context.Context, reqCtx requestContext) (*Response, error) {
	endpoint, header, err := c.producer.Produce(reqCtx.bucket, reqCtx.path, reqCtx.command, reqCtx.when)
	if err != nil {
		return nil, fmt.Errorf("failed to produce endpoint/headers: %w", err)
	}

	req, err := c.prepare(ctx, reqCtx, endpoint, header)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare request: %w", err)
	}

	resp, err := c.perform(req)
	if err != nil {
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}

	response := &Response{StatusCode: resp.StatusCode, header: resp.Header.Clone(), body: resp.Body}

	if c.limiter != nil {
		response.body = ratelimit.NewRateLimitedReadCloser(ctx, resp.Body, c.limiter)
	}

	err = c.checkStatus(response)
	if err != nil {
		return nil, err
	}

	return response, nil
}

// prepare converts the request context into a raw HTTP request which can be dispatched.
//
// Headers are validated before the request is created; a malformed name or value aborts the dispatch with an
// 'InvalidHeaderError' before anything touches the network.
func (c *Client) prepare(ctx context.Context, reqCtx requestContext, endpoint *url.URL,
	header http.Header,
) (*http.Request, error) {
	for name, values := range header {
		for _, value := range values {
			if !netutil.ValidHeaderName(name) || !netutil.ValidHeaderValue(value) {
				return nil, &s3err.InvalidHeaderError{Name: name, Value: value}
			}
		}
	}

	var body io.Reader
	if payload := s3cmd.Payload(reqCtx.command); len(payload) != 0 {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, string(s3cmd.MethodOf(reqCtx.command)), endpoint.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	for name, values := range header {
		// Go dispatches the 'Host' header from the request itself rather than the header collection.
		if strings.EqualFold(name, "Host") {
			req.Host = values[0]

			continue
		}

		for _, value := range values {
			req.Header.Add(name, value)
		}
	}

	return req, nil
}

// perform synchronously executes the provided request, returning a 'TransportError' for failures where no status line
// was received.
func (c *Client) perform(req *http.Request) (*http.Response, error) {
	c.logger.Log(c.reqResLogLevel, "(S3) (%s) Dispatching request to '%s'", req.Method, req.URL)

	resp, err := c.client.Do(req)
	if err == nil {
		c.logger.Log(c.reqResLogLevel, "(S3) (%s) (%d) Received response from '%s'", req.Method, resp.StatusCode,
			req.URL)

		return resp, nil
	}

	c.logger.Errorf("(S3) (%s) Failed to perform request to '%s': %s", req.Method, req.URL, err)

	return nil, &s3err.TransportError{Method: req.Method, Endpoint: req.URL.String(), Inner: err}
}

// checkStatus applies the failure policy; in strict mode any status code of 400 or above consumes the response body
// and surfaces it as an 'HTTPStatusError'.
func (c *Client) checkStatus(response *Response) error {
	if !c.strict || response.StatusCode < http.StatusBadRequest {
		return nil
	}

	body, err := response.Bytes()
	if err != nil {
		return fmt.Errorf("failed to read error response body: %w", err)
	}

	return &s3err.HTTPStatusError{Status: response.StatusCode, Body: string(body)}
}

// cleanup drains and closes the response body ensuring the underlying connection may be reused.
func (c *Client) cleanup(response *Response) {
	err := response.Close()
	if err != nil {
		c.logger.Warnf("(S3) Failed to drain response body due to unexpected error: %s", err)
	}
}
