// Package s3sign produces the signed header collection and fully-qualified URL for a single command dispatch.
package s3sign

import (
	"net/http"
	"net/url"
	"time"

	"github.com/cloudbits/s3kit/s3cmd"
	"github.com/cloudbits/s3kit/s3val"
)

// Producer yields the complete ordered header collection, and the fully-qualified URL, used to dispatch the given
// command to the given bucket/path at the given time. The client consumes this as an opaque collaborator; headers are
// attached to the outgoing request exactly as returned.
type Producer interface {
	Produce(bucket s3val.Bucket, path string, command s3cmd.Command, when time.Time) (*url.URL, http.Header, error)
}
