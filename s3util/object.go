// Package s3util provides higher level conveniences layered over the raw command client; buffered get/put, metadata
// retrieval, tagging, listing and multipart uploads.
package s3util

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/cloudbits/s3kit/s3cli"
	"github.com/cloudbits/s3kit/s3cmd"
	"github.com/cloudbits/s3kit/s3err"
	"github.com/cloudbits/s3kit/s3val"
)

// GetObjectOptions encapsulates the options available when using the 'GetObject' function.
type GetObjectOptions struct {
	// Client is the client used to perform the operation.
	//
	// NOTE: This attribute is required.
	Client *s3cli.Client

	// Bucket is the bucket being operated on.
	Bucket s3val.Bucket

	// Key is the key of the object being operated on.
	Key string
}

// GetObject downloads and buffers the entire object into memory.
func GetObject(ctx context.Context, opts GetObjectOptions) ([]byte, error) {
	body, status, err := opts.Client.FetchBody(ctx, s3cli.FetchBodyOptions{
		Bucket:  opts.Bucket,
		Path:    opts.Key,
		Command: s3cmd.GetObject{},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}

	if status != http.StatusOK {
		return nil, &s3err.HTTPStatusError{Status: status, Body: string(body)}
	}

	return body, nil
}

// PutObjectOptions encapsulates the options available when using the 'PutObject' function.
type PutObjectOptions struct {
	// Client is the client used to perform the operation.
	//
	// NOTE: This attribute is required.
	Client *s3cli.Client

	// Bucket is the bucket being operated on.
	Bucket s3val.Bucket

	// Key is the key of the object being operated on.
	Key string

	// Body is the raw content stored as the object.
	Body []byte

	// ContentType is the media type recorded against the object, defaults to 'application/octet-stream'.
	ContentType string
}

// PutObject stores the given object, returning its ETag.
func PutObject(ctx context.Context, opts PutObjectOptions) (string, error) {
	body, status, err := opts.Client.FetchBody(ctx, s3cli.FetchBodyOptions{
		Bucket:      opts.Bucket,
		Path:        opts.Key,
		Command:     s3cmd.PutObject{Content: opts.Body, ContentType: opts.ContentType},
		ExtractETag: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object: %w", err)
	}

	if status != http.StatusOK {
		return "", &s3err.HTTPStatusError{Status: status, Body: string(body)}
	}

	return string(body), nil
}

// DeleteObjectOptions encapsulates the options available when using the 'DeleteObject' function.
type DeleteObjectOptions struct {
	// Client is the client used to perform the operation.
	//
	// NOTE: This attribute is required.
	Client *s3cli.Client

	// Bucket is the bucket being operated on.
	Bucket s3val.Bucket

	// Key is the key of the object being operated on.
	Key string
}

// DeleteObject removes the given object; removing an object which does not exist is still a success.
func DeleteObject(ctx context.Context, opts DeleteObjectOptions) error {
	status, err := opts.Client.Execute(ctx, s3cli.ExecuteOptions{
		Bucket:  opts.Bucket,
		Path:    opts.Key,
		Command: s3cmd.DeleteObject{},
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}

	if status != http.StatusNoContent && status != http.StatusOK {
		return &s3err.HTTPStatusError{Status: status}
	}

	return nil
}

// HeadObjectOptions encapsulates the options available when using the 'HeadObject' function.
type HeadObjectOptions struct {
	// Client is the client used to perform the operation.
	//
	// NOTE: This attribute is required.
	Client *s3cli.Client

	// Bucket is the bucket being operated on.
	Bucket s3val.Bucket

	// Key is the key of the object being operated on.
	Key string
}

// HeadObject returns the attributes for the given object without downloading its body.
func HeadObject(ctx context.Context, opts HeadObjectOptions) (*s3val.ObjectAttrs, error) {
	header, status, err := opts.Client.FetchHeaders(ctx, s3cli.FetchHeadersOptions{
		Bucket:  opts.Bucket,
		Path:    opts.Key,
		Command: s3cmd.HeadObject{},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to head object: %w", err)
	}

	if status != http.StatusOK {
		return nil, &s3err.HTTPStatusError{Status: status}
	}

	attrs := s3val.ObjectAttrs{Key: opts.Key, ETag: header.Get("ETag")}

	if length := header.Get("Content-Length"); length != "" {
		attrs.Size, err = strconv.ParseInt(length, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse content length: %w", err)
		}
	}

	if modified := header.Get("Last-Modified"); modified != "" {
		attrs.LastModified, err = time.Parse(http.TimeFormat, modified)
		if err != nil {
			return nil, fmt.Errorf("failed to parse last modified time: %w", err)
		}
	}

	return &attrs, nil
}

// DownloadOptions encapsulates the options available when using the 'Download' function.
type DownloadOptions struct {
	// Client is the client used to perform the operation.
	//
	// NOTE: This attribute is required.
	Client *s3cli.Client

	// Bucket is the bucket being operated on.
	Bucket s3val.Bucket

	// Key is the key of the object being operated on.
	Key string

	// Sink receives the body of the object in a single write call.
	//
	// NOTE: This attribute is required.
	Sink io.Writer
}

// Download writes the body of the given object to the provided sink.
//
// NOTE: The body is handed to the sink before the status is inspected, an error response will therefore have written
// the error document to the sink.
func Download(ctx context.Context, opts DownloadOptions) error {
	status, err := opts.Client.StreamBody(ctx, s3cli.StreamBodyOptions{
		Bucket:  opts.Bucket,
		Path:    opts.Key,
		Command: s3cmd.GetObject{},
		Sink:    opts.Sink,
	})
	if err != nil {
		return fmt.Errorf("failed to download object: %w", err)
	}

	if status != http.StatusOK {
		return &s3err.HTTPStatusError{Status: status}
	}

	return nil
}
