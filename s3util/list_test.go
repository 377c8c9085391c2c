package s3util

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cloudbits/s3kit/s3cli"
)

func TestListObjects(t *testing.T) {
	body := []byte(`<ListBucketResult>` +
		`<Name>bucket</Name>` +
		`<KeyCount>2</KeyCount>` +
		`<IsTruncated>false</IsTruncated>` +
		`<Contents><Key>a</Key><ETag>&quot;etag-a&quot;</ETag><Size>1</Size></Contents>` +
		`<Contents><Key>b</Key><ETag>&quot;etag-b&quot;</ETag><Size>2</Size></Contents>` +
		`</ListBucketResult>`)

	handlers := make(s3cli.TestHandlers)
	handlers.Add(http.MethodGet, "/bucket/", func(writer http.ResponseWriter, request *http.Request) {
		require.Equal(t, "2", request.URL.Query().Get("list-type"))
		require.Equal(t, "logs/", request.URL.Query().Get("prefix"))

		_, err := writer.Write(body)
		require.NoError(t, err)
	})

	server := httptest.NewServer(http.HandlerFunc(handlers.Handle))
	defer server.Close()

	client, bucket := newTestClient(t, server)

	objects, err := ListObjects(context.Background(), ListObjectsOptions{
		Client: client,
		Bucket: bucket,
		Prefix: "logs/",
	})
	require.NoError(t, err)
	require.Len(t, objects, 2)
	require.Equal(t, "a", objects[0].Key)
	require.Equal(t, `"etag-a"`, objects[0].ETag)
	require.Equal(t, int64(1), objects[0].Size)
	require.Equal(t, "b", objects[1].Key)
}

func TestListObjectsFollowsContinuationTokens(t *testing.T) {
	var requests int

	handlers := make(s3cli.TestHandlers)
	handlers.Add(http.MethodGet, "/bucket/", func(writer http.ResponseWriter, request *http.Request) {
		requests++

		var body string

		switch request.URL.Query().Get("continuation-token") {
		case "":
			body = `<ListBucketResult><IsTruncated>true</IsTruncated>` +
				`<NextContinuationToken>next</NextContinuationToken>` +
				`<Contents><Key>a</Key></Contents></ListBucketResult>`
		case "next":
			body = `<ListBucketResult><IsTruncated>false</IsTruncated>` +
				`<Contents><Key>b</Key></Contents></ListBucketResult>`
		default:
			writer.WriteHeader(http.StatusBadRequest)

			return
		}

		_, err := writer.Write([]byte(body))
		require.NoError(t, err)
	})

	server := httptest.NewServer(http.HandlerFunc(handlers.Handle))
	defer server.Close()

	client, bucket := newTestClient(t, server)

	objects, err := ListObjects(context.Background(), ListObjectsOptions{Client: client, Bucket: bucket})
	require.NoError(t, err)
	require.Equal(t, 2, requests)
	require.Len(t, objects, 2)
	require.Equal(t, "a", objects[0].Key)
	require.Equal(t, "b", objects[1].Key)
}

func TestLocation(t *testing.T) {
	type test struct {
		name     string
		body     string
		expected string
	}

	tests := []*test{
		{
			name:     "Explicit",
			body:     `<LocationConstraint>eu-west-1</LocationConstraint>`,
			expected: "eu-west-1",
		},
		{
			name: "USEast1Empty",
			body: `<LocationConstraint></LocationConstraint>`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			handlers := make(s3cli.TestHandlers)
			handlers.Add(http.MethodGet, "/bucket/", func(writer http.ResponseWriter, request *http.Request) {
				require.True(t, request.URL.Query().Has("location"))

				fmt.Fprint(writer, test.body)
			})

			server := httptest.NewServer(http.HandlerFunc(handlers.Handle))
			defer server.Close()

			client, bucket := newTestClient(t, server)

			location, err := Location(context.Background(), LocationOptions{Client: client, Bucket: bucket})
			require.NoError(t, err)
			require.Equal(t, test.expected, location)
		})
	}
}
