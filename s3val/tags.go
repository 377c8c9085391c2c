package s3val

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// Tag is a single object tagging key/value pair.
type Tag struct {
	Key   string `xml:"Key"`
	Value string `xml:"Value"`
}

// TagSet is an ordered collection of object tags.
type TagSet []Tag

// String returns the 'Tagging' document for the tag set; this is the wire format dispatched by put-tagging requests.
func (t TagSet) String() string {
	var builder strings.Builder

	builder.WriteString("<Tagging><TagSet>")

	for _, tag := range t {
		builder.WriteString("<Tag><Key>")
		escape(&builder, tag.Key)
		builder.WriteString("</Key><Value>")
		escape(&builder, tag.Value)
		builder.WriteString("</Value></Tag>")
	}

	builder.WriteString("</TagSet></Tagging>")

	return builder.String()
}

// ParseTagging decodes a 'Tagging' document as returned by get-tagging requests.
func ParseTagging(data []byte) (TagSet, error) {
	type overlay struct {
		TagSet TagSet `xml:"TagSet>Tag"`
	}

	var decoded overlay

	err := xml.Unmarshal(data, &decoded)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal tagging document: %w", err)
	}

	return decoded.TagSet, nil
}

// escape writes the XML escaped form of the given value.
//
// NOTE: 'EscapeText' only errors when the underlying writer does, which a 'strings.Builder' never will.
func escape(builder *strings.Builder, value string) {
	_ = xml.EscapeText(builder, []byte(value))
}
