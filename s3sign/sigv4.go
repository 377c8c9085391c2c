package s3sign

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/cloudbits/s3kit/s3cmd"
	"github.com/cloudbits/s3kit/s3val"

	"github.com/aws/aws-sdk-go/aws/credentials"
	v4 "github.com/aws/aws-sdk-go/aws/signer/v4"
)

// SigV4 is a Producer which signs requests using AWS signature version four.
type SigV4 struct {
	signer *v4.Signer
}

var _ Producer = (*SigV4)(nil)

// NewSigV4 returns a new SigV4 producer using the given credentials.
func NewSigV4(creds *credentials.Credentials) *SigV4 {
	signer := v4.NewSigner(creds, func(signer *v4.Signer) {
		// S3 expects the object key to be signed without URI path escaping.
		signer.DisableURIPathEscaping = true
	})

	return &SigV4{signer: signer}
}

// NewSigV4WithStaticCredentials returns a new SigV4 producer using the given fixed key pair.
func NewSigV4WithStaticCredentials(accessKey, secretKey, sessionToken string) *SigV4 {
	return NewSigV4(credentials.NewStaticCredentials(accessKey, secretKey, sessionToken))
}

// Produce implements the 'Producer' interface, returning the signed header collection and fully-qualified URL for the
// given command dispatch.
func (s *SigV4) Produce(
	bucket s3val.Bucket,
	path string,
	command s3cmd.Command,
	when time.Time,
) (*url.URL, http.Header, error) {
	endpoint := bucket.URL(path)
	endpoint.RawQuery = s3cmd.Query(command).Encode()

	req, err := http.NewRequest(string(s3cmd.MethodOf(command)), endpoint.String(), nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request to sign: %w", err)
	}

	if contentType := s3cmd.ContentTypeOf(command); contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	var body io.ReadSeeker
	if payload := s3cmd.Payload(command); len(payload) != 0 {
		body = bytes.NewReader(payload)
	}

	_, err = s.signer.Sign(req, body, "s3", bucket.Region.Name(), when)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to sign request: %w", err)
	}

	header := req.Header.Clone()
	header.Set("Host", bucket.Host())

	return endpoint, header, nil
}
