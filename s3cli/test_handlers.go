package s3cli

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// TestHandlers is a readability wrapper around a collection of endpoint handlers used to mock an object storage
// server.
type TestHandlers map[string]http.HandlerFunc

// Add the given handler for the provided method/path combination.
func (t TestHandlers) Add(method, path string, handler http.HandlerFunc) {
	t[method+":"+path] = handler
}

// Handle dispatches to the handler registered for the requests method/path, responding with a 404 when no handler is
// registered.
func (t TestHandlers) Handle(writer http.ResponseWriter, request *http.Request) {
	handler, ok := t[request.Method+":"+request.URL.Path]
	if !ok {
		writer.WriteHeader(http.StatusNotFound)

		return
	}

	handler(writer, request)
}

// NewTestHandler returns the most basic type of handler, one which responds with the given status code and body.
func NewTestHandler(t *testing.T, status int, body []byte) http.HandlerFunc {
	return NewTestHandlerWithHeaders(t, status, nil, body)
}

// NewTestHandlerWithHeaders returns a handler which attaches the given headers before responding with the given status
// code and body.
func NewTestHandlerWithHeaders(t *testing.T, status int, header http.Header, body []byte) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		for name, values := range header {
			for _, value := range values {
				writer.Header().Add(name, value)
			}
		}

		writer.WriteHeader(status)

		_, err := writer.Write(body)
		require.NoError(t, err)
	}
}

// NewTestInitiateUploadHandler returns a handler which responds with an 'InitiateMultipartUploadResult' document
// containing a freshly generated upload id, alongside the id itself so callers may assert the subsequent part/abort
// requests carry it.
func NewTestInitiateUploadHandler(t *testing.T, bucket, key string) (http.HandlerFunc, string) {
	id := uuid.NewString()

	handler := func(writer http.ResponseWriter, request *http.Request) {
		require.True(t, request.URL.Query().Has("uploads"))

		body := fmt.Sprintf(
			`<InitiateMultipartUploadResult><Bucket>%s</Bucket><Key>%s</Key><UploadId>%s</UploadId>`+
				`</InitiateMultipartUploadResult>`,
			bucket, key, id,
		)

		_, err := writer.Write([]byte(body))
		require.NoError(t, err)
	}

	return handler, id
}
