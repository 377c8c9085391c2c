package s3util

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/cloudbits/s3kit/envvar"
	"github.com/cloudbits/s3kit/log"
	"github.com/cloudbits/s3kit/s3cli"
	"github.com/cloudbits/s3kit/s3cmd"
	"github.com/cloudbits/s3kit/s3err"
	"github.com/cloudbits/s3kit/s3val"
)

const (
	// DefaultPartSize is the part size used by 'Upload' when none is provided; bodies no larger than a single part
	// are stored with a single put.
	DefaultPartSize = 8 * 1024 * 1024

	// PartSizeEnvVar overrides the default part size, parsed as a number of bytes.
	PartSizeEnvVar = "S3KIT_UPLOAD_PART_SIZE"
)

// UploadOptions encapsulates the options available when using the 'Upload' function.
type UploadOptions struct {
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

	// PartSize overrides the size of the individual parts dispatched by a multipart upload.
	//
	// NOTE: The remote service rejects parts smaller than 5MiB, aside from the final part.
	PartSize int
}

// Upload stores the given object, switching to a multipart upload when the body exceeds a single part; a failed
// multipart upload is aborted before the error is returned. Returns the ETag of the stored object.
func Upload(ctx context.Context, opts UploadOptions) (string, error) {
	partSize := opts.PartSize
	if partSize == 0 {
		partSize = DefaultPartSize

		if override, ok := envvar.GetInt(PartSizeEnvVar); ok && override > 0 {
			partSize = override
		}
	}

	if len(opts.Body) <= partSize {
		return PutObject(ctx, PutObjectOptions{
			Client:      opts.Client,
			Bucket:      opts.Bucket,
			Key:         opts.Key,
			Body:        opts.Body,
			ContentType: opts.ContentType,
		})
	}

	id, err := createMultipartUpload(ctx, opts)
	if err != nil {
		return "", fmt.Errorf("failed to create multipart upload: %w", err)
	}

	etag, err := uploadParts(ctx, opts, id, partSize)
	if err == nil {
		return etag, nil
	}

	// Clean up whatever was uploaded, the remote service charges for unfinished uploads.
	if aerr := abortMultipartUpload(ctx, opts, id); aerr != nil {
		log.Warnf("(S3) Failed to abort multipart upload '%s': %s", id, aerr)
	}

	return "", err
}

func createMultipartUpload(ctx context.Context, opts UploadOptions) (string, error) {
	body, status, err := opts.Client.FetchBody(ctx, s3cli.FetchBodyOptions{
		Bucket:  opts.Bucket,
		Path:    opts.Key,
		Command: s3cmd.InitiateMultipartUpload{},
	})
	if err != nil {
		return "", err
	}

	if status != http.StatusOK {
		return "", &s3err.HTTPStatusError{Status: status, Body: string(body)}
	}

	var result s3val.InitiateMultipartUploadResult

	err = xml.Unmarshal(body, &result)
	if err != nil {
		return "", fmt.Errorf("failed to parse initiation document: %w", err)
	}

	return result.UploadID, nil
}

// uploadParts dispatches the body in part size pieces, then assembles the finished object.
func uploadParts(ctx context.Context, opts UploadOptions, id string, partSize int) (string, error) {
	parts := make([]s3val.Part, 0, (len(opts.Body)+partSize-1)/partSize)

	for number, offset := 1, 0; offset < len(opts.Body); number++ {
		end := min(offset+partSize, len(opts.Body))

		etag, status, err := opts.Client.FetchBody(ctx, s3cli.FetchBodyOptions{
			Bucket:      opts.Bucket,
			Path:        opts.Key,
			Command:     s3cmd.UploadPart{Content: opts.Body[offset:end], Number: number, UploadID: id},
			ExtractETag: true,
		})
		if err != nil {
			return "", fmt.Errorf("failed to upload part %d: %w", number, err)
		}

		if status != http.StatusOK {
			return "", &s3err.HTTPStatusError{Status: status, Body: string(etag)}
		}

		parts = append(parts, s3val.Part{Number: number, ETag: string(etag)})

		offset = end
	}

	return completeMultipartUpload(ctx, opts, id, parts)
}

func completeMultipartUpload(ctx context.Context, opts UploadOptions, id string, parts []s3val.Part) (string, error) {
	etag, status, err := opts.Client.FetchBody(ctx, s3cli.FetchBodyOptions{
		Bucket: opts.Bucket,
		Path:   opts.Key,
		Command: s3cmd.CompleteMultipartUpload{
			UploadID: id,
			Upload:   s3val.CompleteMultipartUpload{Parts: parts},
		},
		ExtractETag: true,
	})
	if err != nil {
		return "", fmt.Errorf("failed to complete multipart upload: %w", err)
	}

	if status != http.StatusOK {
		return "", &s3err.HTTPStatusError{Status: status, Body: string(etag)}
	}

	return string(etag), nil
}

func abortMultipartUpload(ctx context.Context, opts UploadOptions, id string) error {
	status, err := opts.Client.Execute(ctx, s3cli.ExecuteOptions{
		Bucket:  opts.Bucket,
		Path:    opts.Key,
		Command: s3cmd.AbortMultipartUpload{UploadID: id},
	})
	if err != nil {
		return err
	}

	if status != http.StatusNoContent && status != http.StatusOK {
		return &s3err.HTTPStatusError{Status: status}
	}

	return nil
}
