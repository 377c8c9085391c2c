package s3val

import (
	"net/url"
	"strings"
)

// Bucket identifies the target of a command; a bucket name combined with its region and URL style. Read-only once
// constructed.
type Bucket struct {
	// Name is the name of the bucket being operated on.
	Name string

	// Region is the region (or custom endpoint) the bucket lives in.
	Region Region

	// PathStyle dictates that path-style URLs (host/bucket/key) are used rather than the default virtual-host-style
	// URLs (bucket.host/key).
	PathStyle bool
}

// NewBucket returns a bucket which is addressed using virtual-host-style URLs.
func NewBucket(name string, region Region) Bucket {
	return Bucket{Name: name, Region: region}
}

// NewBucketWithPathStyle returns a bucket which is addressed using path-style URLs.
func NewBucketWithPathStyle(name string, region Region) Bucket {
	return Bucket{Name: name, Region: region, PathStyle: true}
}

// Host returns the value dispatched in the 'Host' header for requests targeting this bucket.
func (b Bucket) Host() string {
	if b.PathStyle {
		return b.Region.Host()
	}

	return b.Name + "." + b.Region.Host()
}

// URL returns the fully-qualified URL for the object at the given path.
func (b Bucket) URL(path string) *url.URL {
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	if b.PathStyle {
		path = "/" + b.Name + path
	}

	return &url.URL{Scheme: b.Region.Scheme(), Host: b.Host(), Path: path}
}
