package s3sign

import (
	"net/http"
	"net/url"
	"time"

	"github.com/cloudbits/s3kit/s3cmd"
	"github.com/cloudbits/s3kit/s3val"
)

// Static is a Producer which performs real URL construction but attaches a fixed header set instead of signing;
// intended for testing, or for S3 compatible services which don't authenticate requests.
type Static struct {
	// Header is the fixed set of headers attached to every request.
	Header http.Header
}

var _ Producer = (*Static)(nil)

// Produce implements the 'Producer' interface.
func (s *Static) Produce(
	bucket s3val.Bucket,
	path string,
	command s3cmd.Command,
	when time.Time,
) (*url.URL, http.Header, error) {
	endpoint := bucket.URL(path)
	endpoint.RawQuery = s3cmd.Query(command).Encode()

	header := make(http.Header)

	for name, values := range s.Header {
		for _, value := range values {
			header.Add(name, value)
		}
	}

	if contentType := s3cmd.ContentTypeOf(command); contentType != "" {
		header.Set("Content-Type", contentType)
	}

	header.Set("Host", bucket.Host())
	header.Set("X-Amz-Date", when.UTC().Format("20060102T150405Z"))

	return endpoint, header, nil
}
