package tutil

import (
	"os"
	"strings"
)

// IsIntegrationTest returns true when the MHS_TEST environment variable
// selects integration mode.
func IsIntegrationTest() bool {
	return strings.ToLower(os.Getenv("MHS_TEST")) == "integration"
}

// IntegrationServerURL returns the mhsapid server integration tests should
// run against, or "" when integration mode is off or MHS_SERVER_URL isn't
// set. Callers fall back to an in-process test server on "".
func IntegrationServerURL() string {
	if !IsIntegrationTest() {
		return ""
	}

	return os.Getenv("MHS_SERVER_URL")
}
