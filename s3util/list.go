package s3util

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"

	"github.com/cloudbits/s3kit/s3cli"
	"github.com/cloudbits/s3kit/s3cmd"
	"github.com/cloudbits/s3kit/s3err"
	"github.com/cloudbits/s3kit/s3val"
)

// ListObjectsOptions encapsulates the options available when using the 'ListObjects' function.
type ListObjectsOptions struct {
	// Client is the client used to perform the operation.
	//
	// NOTE: This attribute is required.
	Client *s3cli.Client

	// Bucket is the bucket being operated on.
	Bucket s3val.Bucket

	// Prefix limits the listing to keys which begin with the given prefix.
	Prefix string

	// Delimiter groups keys e.g. '/' causes listing to only occur within a "directory".
	Delimiter string
}

// ListObjects lists the objects in the given bucket, following continuation tokens until the listing is complete.
func ListObjects(ctx context.Context, opts ListObjectsOptions) ([]s3val.ObjectEntry, error) {
	var (
		objects []s3val.ObjectEntry
		token   string
	)

	for {
		body, status, err := opts.Client.FetchBody(ctx, s3cli.FetchBodyOptions{
			Bucket: opts.Bucket,
			Command: s3cmd.ListObjects{
				Prefix:            opts.Prefix,
				Delimiter:         opts.Delimiter,
				ContinuationToken: token,
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %w", err)
		}

		if status != http.StatusOK {
			return nil, &s3err.HTTPStatusError{Status: status, Body: string(body)}
		}

		var result s3val.ListBucketResult

		err = xml.Unmarshal(body, &result)
		if err != nil {
			return nil, fmt.Errorf("failed to parse listing document: %w", err)
		}

		objects = append(objects, result.Contents...)

		if !result.IsTruncated || result.NextContinuationToken == "" {
			return objects, nil
		}

		token = result.NextContinuationToken
	}
}

// LocationOptions encapsulates the options available when using the 'Location' function.
type LocationOptions struct {
	// Client is the client used to perform the operation.
	//
	// NOTE: This attribute is required.
	Client *s3cli.Client

	// Bucket is the bucket being operated on.
	Bucket s3val.Bucket
}

// Location returns the region the given bucket lives in.
//
// NOTE: Buckets in 'us-east-1' are reported with an empty location, matching the remote service.
func Location(ctx context.Context, opts LocationOptions) (string, error) {
	body, status, err := opts.Client.FetchBody(ctx, s3cli.FetchBodyOptions{
		Bucket:  opts.Bucket,
		Command: s3cmd.GetBucketLocation{},
	})
	if err != nil {
		return "", fmt.Errorf("failed to get bucket location: %w", err)
	}

	if status != http.StatusOK {
		return "", &s3err.HTTPStatusError{Status: status, Body: string(body)}
	}

	var constraint s3val.LocationConstraint

	err = xml.Unmarshal(body, &constraint)
	if err != nil {
		return "", fmt.Errorf("failed to parse location document: %w", err)
	}

	return constraint.Location, nil
}
