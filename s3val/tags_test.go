package s3val

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTagSetString(t *testing.T) {
	type test struct {
		name     string
		tags     TagSet
		expected string
	}

	tests := []test{
		{
			name:     "Empty",
			expected: "<Tagging><TagSet></TagSet></Tagging>",
		},
		{
			name:     "Single",
			tags:     TagSet{{Key: "purpose", Value: "backup"}},
			expected: "<Tagging><TagSet><Tag><Key>purpose</Key><Value>backup</Value></Tag></TagSet></Tagging>",
		},
		{
			name: "Escaped",
			tags: TagSet{{Key: "a&b", Value: "<c>"}},
			expected: "<Tagging><TagSet><Tag><Key>a&amp;b</Key><Value>&lt;c&gt;</Value></Tag></TagSet>" +
				"</Tagging>",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, test.tags.String())
		})
	}
}

func TestParseTagging(t *testing.T) {
	document := `<Tagging><TagSet><Tag><Key>purpose</Key><Value>backup</Value></Tag>` +
		`<Tag><Key>owner</Key><Value>tools</Value></Tag></TagSet></Tagging>`

	tags, err := ParseTagging([]byte(document))
	require.NoError(t, err)
	require.Equal(t, TagSet{{Key: "purpose", Value: "backup"}, {Key: "owner", Value: "tools"}}, tags)
}

func TestParseTaggingRoundTrip(t *testing.T) {
	tags := TagSet{{Key: "purpose", Value: "backup"}}

	parsed, err := ParseTagging([]byte(tags.String()))
	require.NoError(t, err)
	require.Equal(t, tags, parsed)
}

func TestParseTaggingInvalid(t *testing.T) {
	_, err := ParseTagging([]byte("not-xml"))
	require.Error(t, err)
}
