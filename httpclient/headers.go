// httpclient/headers.go
package httpclient

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/deploymenttheory/go-api-client-jamfpro/headers/redact"
	"github.com/deploymenttheory/go-api-client-jamfpro/logger"
	"go.uber.org/zap"
)

// LogHeaders prints all the current headers in the http.Request using the zap logger.
// It uses the RedactSensitiveHeaderData function to redact sensitive data based on the
// hideSensitiveData flag.
func (c *Client) LogHeaders(req *http.Request, hideSensitiveData bool) {
	if c.Logger.GetLogLevel() <= logger.LogLevelDebug {
		redactedHeaders := http.Header{}

		for name, values := range req.Header {
			if len(values) > 0 {
				redactedValue := redact.RedactSensitiveHeaderData(hideSensitiveData, name, values[0])
				redactedHeaders.Set(name, redactedValue)
			}
		}

		c.Logger.Debug("HTTP Request Headers", zap.String("Headers", HeadersToString(redactedHeaders)))
	}
}

// HeadersToString converts a http.Header to a string for logging, with each header on a new
// line for readability.
func HeadersToString(headers http.Header) string {
	var headerStrings []string
	for name, values := range headers {
		headerStrings = append(headerStrings, fmt.Sprintf("%s: %s", name, strings.Join(values, ", ")))
	}
	return strings.Join(headerStrings, "\n")
}

// CheckDeprecationHeader checks the response headers for the Deprecation header and logs a
// warning if present.
func CheckDeprecationHeader(resp *http.Response, log logger.Logger) {
	deprecationHeader := resp.Header.Get("Deprecation")
	if deprecationHeader != "" {
		log.Warn("API endpoint is deprecated",
			zap.String("Date", deprecationHeader),
			zap.String("Endpoint", resp.Request.URL.String()),
		)
	}
}
