package s3val

import "time"

// ObjectAttrs represents the attributes usually attached to a remote object.
type ObjectAttrs struct {
	// Key is the identifier for the object; a unique path.
	Key string

	// ETag is the HTTP entity tag for the object.
	//
	// NOTE: For objects assembled by a multipart upload this is not a digest of the content.
	ETag string

	// Size is the size or content length of the object in bytes.
	Size int64

	// LastModified is the time the object was last updated (or created).
	LastModified time.Time
}
