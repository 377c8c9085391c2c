package s3val

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegionHost(t *testing.T) {
	type test struct {
		name     string
		region   Region
		expected string
	}

	tests := []test{
		{
			name:     "AWSDefaultRegion",
			region:   "us-east-1",
			expected: "s3.amazonaws.com",
		},
		{
			name:     "AWSNamedRegion",
			region:   "eu-west-1",
			expected: "s3-eu-west-1.amazonaws.com",
		},
		{
			name:     "Custom",
			region:   "custom-region",
			expected: "custom-region",
		},
		{
			name:     "CustomWithScheme",
			region:   "http://custom-region",
			expected: "custom-region",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.expected, test.region.Host())
		})
	}
}

func TestRegionScheme(t *testing.T) {
	require.Equal(t, "https", Region("custom-region").Scheme())
	require.Equal(t, "https", Region("eu-west-2").Scheme())
	require.Equal(t, "http", Region("http://custom-region").Scheme())
	require.Equal(t, "https", Region("https://custom-region").Scheme())
}

func TestRegionName(t *testing.T) {
	require.Equal(t, "eu-west-2", Region("eu-west-2").Name())
	require.Equal(t, "custom-region", Region("http://custom-region").Name())
}
