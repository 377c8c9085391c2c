package s3util

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cloudbits/s3kit/s3cli"
	"github.com/cloudbits/s3kit/s3err"
	"github.com/cloudbits/s3kit/s3sign"
	"github.com/cloudbits/s3kit/s3val"
)

func newTestClient(t *testing.T, server *httptest.Server) (*s3cli.Client, s3val.Bucket) {
	client, err := s3cli.NewClient(s3cli.ClientOptions{Producer: &s3sign.Static{}})
	require.NoError(t, err)

	return client, s3val.NewBucketWithPathStyle("bucket", s3val.Region(server.URL))
}

func TestGetObject(t *testing.T) {
	handlers := make(s3cli.TestHandlers)
	handlers.Add(http.MethodGet, "/bucket/key", s3cli.NewTestHandler(t, http.StatusOK, []byte("value")))

	server := httptest.NewServer(http.HandlerFunc(handlers.Handle))
	defer server.Close()

	client, bucket := newTestClient(t, server)

	body, err := GetObject(context.Background(), GetObjectOptions{Client: client, Bucket: bucket, Key: "key"})
	require.NoError(t, err)
	require.Equal(t, []byte("value"), body)
}

func TestGetObjectNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(make(s3cli.TestHandlers).Handle))
	defer server.Close()

	client, bucket := newTestClient(t, server)

	_, err := GetObject(context.Background(), GetObjectOptions{Client: client, Bucket: bucket, Key: "missing"})
	require.True(t, s3err.IsHTTPStatusError(err))

	var statusErr *s3err.HTTPStatusError

	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusNotFound, statusErr.Status)
}

func TestPutObject(t *testing.T) {
	var received []byte

	handlers := make(s3cli.TestHandlers)
	handlers.Add(http.MethodPut, "/bucket/key", func(writer http.ResponseWriter, request *http.Request) {
		var err error

		received, err = io.ReadAll(request.Body)
		require.NoError(t, err)

		writer.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
		writer.WriteHeader(http.StatusOK)
	})

	server := httptest.NewServer(http.HandlerFunc(handlers.Handle))
	defer server.Close()

	client, bucket := newTestClient(t, server)

	etag, err := PutObject(context.Background(), PutObjectOptions{
		Client: client,
		Bucket: bucket,
		Key:    "key",
		Body:   []byte("value"),
	})
	require.NoError(t, err)
	require.Equal(t, `"d41d8cd98f00b204e9800998ecf8427e"`, etag)
	require.Equal(t, []byte("value"), received)
}

func TestDeleteObject(t *testing.T) {
	handlers := make(s3cli.TestHandlers)
	handlers.Add(http.MethodDelete, "/bucket/key", s3cli.NewTestHandler(t, http.StatusNoContent, nil))

	server := httptest.NewServer(http.HandlerFunc(handlers.Handle))
	defer server.Close()

	client, bucket := newTestClient(t, server)

	require.NoError(t, DeleteObject(context.Background(), DeleteObjectOptions{
		Client: client,
		Bucket: bucket,
		Key:    "key",
	}))
}

func TestHeadObject(t *testing.T) {
	lastModified := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)

	header := http.Header{}
	header.Set("ETag", `"abc123"`)
	header.Set("Content-Length", "42")
	header.Set("Last-Modified", lastModified.Format(http.TimeFormat))

	handlers := make(s3cli.TestHandlers)
	handlers.Add(http.MethodHead, "/bucket/key", s3cli.NewTestHandlerWithHeaders(t, http.StatusOK, header, nil))

	server := httptest.NewServer(http.HandlerFunc(handlers.Handle))
	defer server.Close()

	client, bucket := newTestClient(t, server)

	attrs, err := HeadObject(context.Background(), HeadObjectOptions{Client: client, Bucket: bucket, Key: "key"})
	require.NoError(t, err)
	require.Equal(t, "key", attrs.Key)
	require.Equal(t, `"abc123"`, attrs.ETag)
	require.Equal(t, int64(42), attrs.Size)
	require.True(t, lastModified.Equal(attrs.LastModified))
}

func TestHeadObjectNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(make(s3cli.TestHandlers).Handle))
	defer server.Close()

	client, bucket := newTestClient(t, server)

	_, err := HeadObject(context.Background(), HeadObjectOptions{Client: client, Bucket: bucket, Key: "missing"})
	require.True(t, s3err.IsHTTPStatusError(err))
}

func TestDownload(t *testing.T) {
	body := bytes.Repeat([]byte("abcd"), 1024)

	handlers := make(s3cli.TestHandlers)
	handlers.Add(http.MethodGet, "/bucket/key", s3cli.NewTestHandler(t, http.StatusOK, body))

	server := httptest.NewServer(http.HandlerFunc(handlers.Handle))
	defer server.Close()

	client, bucket := newTestClient(t, server)

	var sink bytes.Buffer

	err := Download(context.Background(), DownloadOptions{Client: client, Bucket: bucket, Key: "key", Sink: &sink})
	require.NoError(t, err)
	require.Equal(t, body, sink.Bytes())
}
