package envvar

import (
	"fmt"
	"os"

	"github.com/cloudbits/s3kit/netutil"

	jsoniter "github.com/json-iterator/go"
)

// GetHTTPTimeouts returns the timeouts that should be used for a HTTP client from the environment or uses the provided
// default values.
//
// NOTE: This function does not guarantee that every field of the returned netutil.HTTPTimeouts is going to be non-nil,
// instead this is ensured by netutil.NewHTTPTransport().
func GetHTTPTimeouts(envVar string, defaults netutil.HTTPTimeouts) (netutil.HTTPTimeouts, error) {
	timeouts, err := getHTTPTimeoutsFromEnv(envVar)
	if err != nil {
		return netutil.HTTPTimeouts{}, fmt.Errorf("failed to get timeouts from environment: %w", err)
	}

	setIfNil(&timeouts.Dialer, defaults.Dialer)
	setIfNil(&timeouts.KeepAlive, defaults.KeepAlive)
	setIfNil(&timeouts.TransportIdleConn, defaults.TransportIdleConn)
	setIfNil(&timeouts.TransportContinue, defaults.TransportContinue)
	setIfNil(&timeouts.TransportResponseHeader, defaults.TransportResponseHeader)
	setIfNil(&timeouts.TransportTLSHandshake, defaults.TransportTLSHandshake)

	return timeouts, nil
}

// getHTTPTimeoutsFromEnv returns the timeouts that should be used for a HTTP client from the environment.
func getHTTPTimeoutsFromEnv(envVar string) (netutil.HTTPTimeouts, error) {
	env, ok := os.LookupEnv(envVar)
	if !ok {
		return netutil.HTTPTimeouts{}, nil
	}

	var timeouts netutil.HTTPTimeouts

	return timeouts, jsoniter.Unmarshal([]byte(env), &timeouts)
}

// setIfNil populates the pointer at 'to' with the given value if it's currently nil.
func setIfNil[T any](to **T, value *T) {
	if *to == nil {
		*to = value
	}
}
