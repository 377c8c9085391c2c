// Package ratelimit exposes rate limited io implementations.
package ratelimit

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/time/rate"
)

// RateLimitedReadCloser will use its limiter as a rate limit on the number of bytes read.
type RateLimitedReadCloser struct {
	ctx     context.Context
	r       io.ReadCloser
	limiter *rate.Limiter
}

// NewRateLimitedReadCloser creates a new RateLimitedReadCloser which respects "limiter" in terms of the number of
// bytes read.
func NewRateLimitedReadCloser(ctx context.Context, r io.ReadCloser, limiter *rate.Limiter) *RateLimitedReadCloser {
	return &RateLimitedReadCloser{ctx: ctx, r: r, limiter: limiter}
}

// Read will read into p whilst respecting the rate limit.
func (r *RateLimitedReadCloser) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if n <= 0 {
		return n, err
	}

	if lErr := waitChunked(r.ctx, r.limiter, n); lErr != nil {
		return n, lErr
	}

	return n, err
}

// Close will close the underlying reader.
func (r *RateLimitedReadCloser) Close() error {
	return r.r.Close()
}

// waitChunked waits for n tokens in chunks of the limiter's burst size. This is because rate.Limiter will only allow
// at most its burst number of tokens to be drained at once, so to wait for more than that several calls to wait are
// required.
func waitChunked(ctx context.Context, limiter *rate.Limiter, n int) error {
	maxChunkSize := limiter.Burst()

	for n > 0 {
		waitFor := min(n, maxChunkSize)
		if lErr := limiter.WaitN(ctx, waitFor); lErr != nil {
			return fmt.Errorf("could not wait for limiter: %w", lErr)
		}

		n -= waitFor
	}

	return nil
}

var _ io.ReadCloser = (*RateLimitedReadCloser)(nil)
