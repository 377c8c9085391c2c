package s3util

import (
	"context"
	"fmt"
	"net/http"

	"github.com/cloudbits/s3kit/s3cli"
	"github.com/cloudbits/s3kit/s3cmd"
	"github.com/cloudbits/s3kit/s3err"
	"github.com/cloudbits/s3kit/s3val"
)

// GetTagsOptions encapsulates the options available when using the 'GetTags' function.
type GetTagsOptions struct {
	// Client is the client used to perform the operation.
	//
	// NOTE: This attribute is required.
	Client *s3cli.Client

	// Bucket is the bucket being operated on.
	Bucket s3val.Bucket

	// Key is the key of the object being operated on.
	Key string
}

// GetTags returns the tag set attached to the given object.
func GetTags(ctx context.Context, opts GetTagsOptions) (s3val.TagSet, error) {
	body, status, err := opts.Client.FetchBody(ctx, s3cli.FetchBodyOptions{
		Bucket:  opts.Bucket,
		Path:    opts.Key,
		Command: s3cmd.GetObjectTagging{},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object tagging: %w", err)
	}

	if status != http.StatusOK {
		return nil, &s3err.HTTPStatusError{Status: status, Body: string(body)}
	}

	tags, err := s3val.ParseTagging(body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse tagging document: %w", err)
	}

	return tags, nil
}

// PutTagsOptions encapsulates the options available when using the 'PutTags' function.
type PutTagsOptions struct {
	// Client is the client used to perform the operation.
	//
	// NOTE: This attribute is required.
	Client *s3cli.Client

	// Bucket is the bucket being operated on.
	Bucket s3val.Bucket

	// Key is the key of the object being operated on.
	Key string

	// Tags is the tag set which will replace any existing tags on the object.
	Tags s3val.TagSet
}

// PutTags replaces the tag set attached to the given object.
func PutTags(ctx context.Context, opts PutTagsOptions) error {
	status, err := opts.Client.Execute(ctx, s3cli.ExecuteOptions{
		Bucket:  opts.Bucket,
		Path:    opts.Key,
		Command: s3cmd.PutObjectTagging{Tags: []byte(opts.Tags.String())},
	})
	if err != nil {
		return fmt.Errorf("failed to put object tagging: %w", err)
	}

	if status != http.StatusOK {
		return &s3err.HTTPStatusError{Status: status}
	}

	return nil
}

// DeleteTagsOptions encapsulates the options available when using the 'DeleteTags' function.
type DeleteTagsOptions struct {
	// Client is the client used to perform the operation.
	//
	// NOTE: This attribute is required.
	Client *s3cli.Client

	// Bucket is the bucket being operated on.
	Bucket s3val.Bucket

	// Key is the key of the object being operated on.
	Key string
}

// DeleteTags removes the tag set attached to the given object.
func DeleteTags(ctx context.Context, opts DeleteTagsOptions) error {
	status, err := opts.Client.Execute(ctx, s3cli.ExecuteOptions{
		Bucket:  opts.Bucket,
		Path:    opts.Key,
		Command: s3cmd.DeleteObjectTagging{},
	})
	if err != nil {
		return fmt.Errorf("failed to delete object tagging: %w", err)
	}

	if status != http.StatusNoContent && status != http.StatusOK {
		return &s3err.HTTPStatusError{Status: status}
	}

	return nil
}
