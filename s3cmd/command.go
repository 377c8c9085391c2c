// Package s3cmd defines the closed set of object storage commands which may be dispatched by the s3kit client.
package s3cmd

import (
	"github.com/cloudbits/s3kit/s3val"
)

// Command is one object storage operation together with its payload, if any. The set of commands is closed; the
// unexported marker method means new variants may only be added in this package, which in turn forces the verb/payload
// tables below to be kept exhaustive.
//
// Commands are immutable once constructed, and owned by the caller for the duration of a single request.
type Command interface {
	isCommand()
}

// GetObject retrieves an object.
type GetObject struct{}

// HeadObject retrieves the headers (metadata) for an object without its body.
type HeadObject struct{}

// DeleteObject removes an object.
type DeleteObject struct{}

// ListObjects lists the objects in a bucket.
type ListObjects struct {
	// Prefix limits the listing to keys which begin with the given prefix.
	Prefix string

	// Delimiter groups keys e.g. '/' causes listing to only occur within a "directory".
	Delimiter string

	// ContinuationToken resumes a listing from where a previous truncated one finished.
	ContinuationToken string

	// MaxKeys limits the number of keys returned per listing, zero leaves the limit to the service.
	MaxKeys int
}

// GetBucketLocation retrieves the region the bucket lives in.
type GetBucketLocation struct{}

// PutObject stores an object.
type PutObject struct {
	// Content is the raw payload stored as the object; dispatched verbatim.
	Content []byte

	// ContentType is the media type recorded against the object.
	ContentType string
}

// GetObjectTagging retrieves the tag set attached to an object.
type GetObjectTagging struct{}

// PutObjectTagging replaces the tag set attached to an object.
type PutObjectTagging struct {
	// Tags is the serialized 'Tagging' document; dispatched verbatim. See 's3val.TagSet'.
	Tags []byte
}

// DeleteObjectTagging removes the tag set attached to an object.
type DeleteObjectTagging struct{}

// InitiateMultipartUpload starts a new multipart upload, the response carries the upload id used by the subsequent
// part/completion commands.
type InitiateMultipartUpload struct{}

// UploadPart uploads a single part of a multipart upload.
type UploadPart struct {
	// Content is the raw payload for this part; dispatched verbatim.
	Content []byte

	// Number dictates the ordering of the part upon completion.
	Number int

	// UploadID is the id of the upload being operated on.
	UploadID string
}

// CompleteMultipartUpload assembles the uploaded parts into the finished object.
type CompleteMultipartUpload struct {
	// UploadID is the id of the upload being operated on.
	UploadID string

	// Upload describes the parts the object is assembled from.
	Upload s3val.CompleteMultipartUpload
}

// AbortMultipartUpload abandons a multipart upload, cleaning up any uploaded parts.
type AbortMultipartUpload struct {
	// UploadID is the id of the upload being operated on.
	UploadID string
}

func (GetObject) isCommand()               {}
func (HeadObject) isCommand()              {}
func (DeleteObject) isCommand()            {}
func (ListObjects) isCommand()             {}
func (GetBucketLocation) isCommand()       {}
func (PutObject) isCommand()               {}
func (GetObjectTagging) isCommand()        {}
func (PutObjectTagging) isCommand()        {}
func (DeleteObjectTagging) isCommand()     {}
func (InitiateMultipartUpload) isCommand() {}
func (UploadPart) isCommand()              {}
func (CompleteMultipartUpload) isCommand() {}
func (AbortMultipartUpload) isCommand()    {}
