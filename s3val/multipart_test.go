package s3val

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompleteMultipartUploadString(t *testing.T) {
	upload := CompleteMultipartUpload{Parts: []Part{
		{Number: 1, ETag: `"abc"`},
		{Number: 2, ETag: `"def"`},
	}}

	expected := `<CompleteMultipartUpload>` +
		`<Part><PartNumber>1</PartNumber><ETag>"abc"</ETag></Part>` +
		`<Part><PartNumber>2</PartNumber><ETag>"def"</ETag></Part>` +
		`</CompleteMultipartUpload>`

	require.Equal(t, expected, upload.String())
}

func TestCompleteMultipartUploadStringOrdersParts(t *testing.T) {
	var (
		ordered  = CompleteMultipartUpload{Parts: []Part{{Number: 1, ETag: `"a"`}, {Number: 2, ETag: `"b"`}}}
		reversed = CompleteMultipartUpload{Parts: []Part{{Number: 2, ETag: `"b"`}, {Number: 1, ETag: `"a"`}}}
	)

	require.Equal(t, ordered.String(), reversed.String())

	// Sorting must not reorder the parts the caller supplied.
	require.Equal(t, []Part{{Number: 2, ETag: `"b"`}, {Number: 1, ETag: `"a"`}}, reversed.Parts)
}

func TestCompleteMultipartUploadStringEmpty(t *testing.T) {
	require.Equal(
		t,
		"<CompleteMultipartUpload></CompleteMultipartUpload>",
		CompleteMultipartUpload{}.String(),
	)
}
