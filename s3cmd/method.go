package s3cmd

import (
	"fmt"
	"net/http"
)

// Method is a readability wrapper around the HTTP verb a command is dispatched with.
type Method string

const (
	MethodGet    Method = http.MethodGet
	MethodHead   Method = http.MethodHead
	MethodPut    Method = http.MethodPut
	MethodPost   Method = http.MethodPost
	MethodDelete Method = http.MethodDelete
)

// MethodOf returns the HTTP verb the given command is dispatched with. The mapping is fixed and total over the closed
// command set; an unknown command indicates a variant was added without extending this table and triggers a panic.
func MethodOf(command Command) Method {
	switch command.(type) {
	case GetObject, ListObjects, GetBucketLocation, GetObjectTagging:
		return MethodGet
	case HeadObject:
		return MethodHead
	case PutObject, PutObjectTagging, UploadPart:
		return MethodPut
	case InitiateMultipartUpload, CompleteMultipartUpload:
		return MethodPost
	case DeleteObject, DeleteObjectTagging, AbortMultipartUpload:
		return MethodDelete
	}

	panic(fmt.Sprintf("unhandled command %T", command))
}
