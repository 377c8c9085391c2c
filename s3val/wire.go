package s3val

import "time"

// InitiateMultipartUploadResult is the response document returned when starting a multipart upload.
type InitiateMultipartUploadResult struct {
	Bucket   string `xml:"Bucket"`
	Key      string `xml:"Key"`
	UploadID string `xml:"UploadId"`
}

// ObjectEntry is a single entry of a bucket listing.
type ObjectEntry struct {
	Key          string    `xml:"Key"`
	LastModified time.Time `xml:"LastModified"`
	ETag         string    `xml:"ETag"`
	Size         int64     `xml:"Size"`
}

// ListBucketResult is the bucket listing response document; s3kit always lists using version two semantics.
type ListBucketResult struct {
	Name                  string        `xml:"Name"`
	Prefix                string        `xml:"Prefix"`
	KeyCount              int           `xml:"KeyCount"`
	IsTruncated           bool          `xml:"IsTruncated"`
	NextContinuationToken string        `xml:"NextContinuationToken"`
	Contents              []ObjectEntry `xml:"Contents"`
}

// LocationConstraint is the response document returned by bucket location requests.
type LocationConstraint struct {
	Location string `xml:",chardata"`
}
