// Package s3val exposes the value types shared by the s3kit packages; regions, buckets, tag sets and the multipart
// upload vocabulary.
package s3val

import (
	"github.com/cloudbits/s3kit/netutil"
)

// Region identifies where a bucket lives; either a named AWS region, or the endpoint of an S3 compatible service.
// Custom endpoints may carry an explicit 'http://' prefix to opt out of transport level security.
type Region string

// awsHosts maps the named AWS regions to their S3 endpoints.
var awsHosts = map[Region]string{
	"us-east-1":      "s3.amazonaws.com",
	"us-east-2":      "s3-us-east-2.amazonaws.com",
	"us-west-1":      "s3-us-west-1.amazonaws.com",
	"us-west-2":      "s3-us-west-2.amazonaws.com",
	"ca-central-1":   "s3-ca-central-1.amazonaws.com",
	"eu-west-1":      "s3-eu-west-1.amazonaws.com",
	"eu-west-2":      "s3-eu-west-2.amazonaws.com",
	"eu-west-3":      "s3-eu-west-3.amazonaws.com",
	"eu-central-1":   "s3-eu-central-1.amazonaws.com",
	"ap-south-1":     "s3-ap-south-1.amazonaws.com",
	"ap-southeast-1": "s3-ap-southeast-1.amazonaws.com",
	"ap-southeast-2": "s3-ap-southeast-2.amazonaws.com",
	"ap-northeast-1": "s3-ap-northeast-1.amazonaws.com",
	"ap-northeast-2": "s3-ap-northeast-2.amazonaws.com",
	"sa-east-1":      "s3-sa-east-1.amazonaws.com",
}

// Host returns the endpoint host requests for this region are dispatched to.
func (r Region) Host() string {
	if host, ok := awsHosts[r]; ok {
		return host
	}

	return netutil.TrimSchema(string(r))
}

// Scheme returns the URL scheme used when dispatching requests; secure by default, insecure only when a custom
// endpoint explicitly opts out.
func (r Region) Scheme() string {
	if netutil.HasSchemaHTTP(string(r)) {
		return netutil.SchemeHTTP
	}

	return netutil.SchemeHTTPS
}

// Name returns the region name used when signing requests.
func (r Region) Name() string {
	return netutil.TrimSchema(string(r))
}
