package netutil

import "strings"

// TrimSchema trims known schema prefixes from the given host.
func TrimSchema(host string) string {
	host = strings.TrimPrefix(host, SchemeHTTP+"://")
	host = strings.TrimPrefix(host, SchemeHTTPS+"://")

	return host
}

// HasSchemaHTTP returns a boolean indicating whether the given host carries an explicit insecure schema prefix.
func HasSchemaHTTP(host string) bool {
	return strings.HasPrefix(host, SchemeHTTP+"://")
}
