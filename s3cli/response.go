package s3cli

import (
	"fmt"
	"io"
	"net/http"

	"github.com/cloudbits/s3kit/s3err"
)

// Response is the live result of a single HTTP round trip. The status code and headers are always available; the body
// may be consumed at most once, either buffered via 'Bytes' or discarded via 'Close'.
type Response struct {
	// StatusCode is the numeric status of the exchange, populated regardless of the failure policy.
	StatusCode int

	header   http.Header
	body     io.ReadCloser
	consumed bool
}

// Header returns the header collection received alongside the status line; headers are detached from the transport,
// reading them does not consume the body.
func (r *Response) Header() http.Header {
	return r.header
}

// ETag returns the value of the 'ETag' header, and a boolean indicating whether the header was present at all; the
// name is matched case-insensitively.
func (r *Response) ETag() (string, bool) {
	values := r.header.Values(ETagHeader)
	if len(values) == 0 {
		return "", false
	}

	return values[0], true
}

// Bytes buffers the remainder of the body into memory, consuming it; a second consumption returns 'ErrBodyConsumed'.
func (r *Response) Bytes() ([]byte, error) {
	if r.consumed {
		return nil, s3err.ErrBodyConsumed
	}

	r.consumed = true

	defer r.body.Close()

	body, err := io.ReadAll(r.body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}

// Close drains and closes the body allowing the underlying connection to be reused; a no-op once the body has been
// consumed.
func (r *Response) Close() error {
	if r.consumed {
		return nil
	}

	r.consumed = true

	defer r.body.Close()

	_, err := io.Copy(io.Discard, r.body)

	return err
}
