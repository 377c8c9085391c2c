package s3val

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Part is a single uploaded piece of a multipart upload.
type Part struct {
	// Number dictates the ordering of parts upon completion, it should be between 1-10,000.
	Number int `xml:"PartNumber"`

	// ETag is the entity tag returned when the part was uploaded.
	ETag string `xml:"ETag"`
}

// CompleteMultipartUpload describes the parts used to assemble a finished multipart upload.
type CompleteMultipartUpload struct {
	Parts []Part
}

// String returns the completion document dispatched to finish a multipart upload. Parts are emitted in part number
// order so the document is deterministic regardless of the order parts were uploaded in.
func (u CompleteMultipartUpload) String() string {
	parts := slices.Clone(u.Parts)

	slices.SortFunc(parts, func(a, b Part) int { return a.Number - b.Number })

	var builder strings.Builder

	builder.WriteString("<CompleteMultipartUpload>")

	for _, part := range parts {
		fmt.Fprintf(&builder, "<Part><PartNumber>%d</PartNumber><ETag>%s</ETag></Part>", part.Number, part.ETag)
	}

	builder.WriteString("</CompleteMultipartUpload>")

	return builder.String()
}
