// version_test.go
package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGetUserAgentHeader verifies the product token and version reported to the server.
func TestGetUserAgentHeader(t *testing.T) {
	assert.Equal(t, "go-api-client-jamfpro/"+SDKVersion, GetUserAgentHeader())
}

// TestGetAppName verifies the application name used in logging context fields.
func TestGetAppName(t *testing.T) {
	assert.Equal(t, "go-api-client-jamfpro", GetAppName())
}
