package netutil

import "strings"

// headerNameSpecials are the non-alphanumeric characters permitted in a header field name by RFC 7230.
const headerNameSpecials = "!#$%&'*+-.^_`|~"

// ValidHeaderName returns a boolean indicating whether the given string is a valid HTTP header field name.
func ValidHeaderName(name string) bool {
	if name == "" {
		return false
	}

	for _, r := range name {
		alnum := (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !alnum && !strings.ContainsRune(headerNameSpecials, r) {
			return false
		}
	}

	return true
}

// ValidHeaderValue returns a boolean indicating whether the given string is a valid HTTP header field value; control
// characters other than horizontal tab are not wire-representable.
func ValidHeaderValue(value string) bool {
	for i := 0; i < len(value); i++ {
		b := value[i]
		if (b < ' ' && b != '\t') || b == 0x7f {
			return false
		}
	}

	return true
}
