package s3cmd

import (
	"net/url"
	"strconv"
)

// Query returns the query parameters the given command is dispatched with; these select the sub-resource being
// operated on (e.g. '?tagging') or parameterize the operation itself.
func Query(command Command) url.Values {
	query := make(url.Values)

	switch cmd := command.(type) {
	case ListObjects:
		query.Set("list-type", "2")

		if cmd.Prefix != "" {
			query.Set("prefix", cmd.Prefix)
		}

		if cmd.Delimiter != "" {
			query.Set("delimiter", cmd.Delimiter)
		}

		if cmd.ContinuationToken != "" {
			query.Set("continuation-token", cmd.ContinuationToken)
		}

		if cmd.MaxKeys != 0 {
			query.Set("max-keys", strconv.Itoa(cmd.MaxKeys))
		}
	case GetBucketLocation:
		query.Set("location", "")
	case GetObjectTagging, PutObjectTagging, DeleteObjectTagging:
		query.Set("tagging", "")
	case InitiateMultipartUpload:
		query.Set("uploads", "")
	case UploadPart:
		query.Set("partNumber", strconv.Itoa(cmd.Number))
		query.Set("uploadId", cmd.UploadID)
	case CompleteMultipartUpload:
		query.Set("uploadId", cmd.UploadID)
	case AbortMultipartUpload:
		query.Set("uploadId", cmd.UploadID)
	}

	return query
}
