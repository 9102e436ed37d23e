// apiintegrations/jamfpro/headers.go
package jamfpro

import (
	"net/http"
	"strings"

	"github.com/deploymenttheory/go-api-client-jamfpro/version"
	"go.uber.org/zap"
)

// SetRequestHeaders populates the standard headers for a Jamf API request: the weighted
// Accept header, the endpoint appropriate Content-Type, the client User-Agent and the
// bearer token when one is held.
func (j *Integration) SetRequestHeaders(req *http.Request) {
	req.Header.Set("Accept", j.GetAcceptHeader())
	req.Header.Set("User-Agent", version.GetUserAgentHeader())

	if contentType := j.GetContentTypeHeader(req.URL.Path); contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if token, err := j.Token(); err == nil {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// GetContentTypeHeader determines the appropriate Content-Type header for a given API endpoint.
// Classic API endpoints under /JSSResource use XML and Jamf Pro API endpoints under /api use
// JSON. Package upload endpoints return an empty string so the multipart writer can set the
// boundary content type itself. Anything unrecognised falls back to JSON.
func (j *Integration) GetContentTypeHeader(endpoint string) string {
	if strings.HasPrefix(endpoint, "/api/v1/packages") && strings.HasSuffix(endpoint, "/upload") {
		j.Logger.Debug("Skipping Content-Type setting for package upload endpoint. Multipart request will set it directly with the boundary", zap.String("endpoint", endpoint))
		return ""
	}

	if strings.Contains(endpoint, "/JSSResource") {
		j.Logger.Debug("Content-Type for endpoint defaulting to XML for Classic API", zap.String("endpoint", endpoint))
		return "application/xml"
	} else if strings.Contains(endpoint, "/api") {
		j.Logger.Debug("Content-Type for endpoint defaulting to JSON for JamfPro API", zap.String("endpoint", endpoint))
		return "application/json"
	}

	j.Logger.Debug("Content-Type for endpoint not matched by any standard pattern, using default JSON", zap.String("endpoint", endpoint))
	return "application/json"
}

// GetAcceptHeader constructs and returns a weighted Accept header string for HTTP requests.
// The Accept header indicates the MIME types that the client can process and prioritizes them
// based on the quality factor (q) parameter. Higher q-values signal greater preference.
// This function specifies a range of MIME types with their respective weights, ensuring that
// the server is informed of the client's versatile content handling capabilities while
// indicating a preference for XML. The specified MIME types cover common content formats like
// images, JSON, XML, HTML, plain text, and certificates, with a fallback option for all other types.
func (j *Integration) GetAcceptHeader() string {
	weightedAcceptHeader := "application/x-x509-ca-cert;q=0.95," +
		"application/pkix-cert;q=0.94," +
		"application/pem-certificate-chain;q=0.93," +
		"application/octet-stream;q=0.8," + // For general binary files
		"image/png;q=0.75," +
		"image/jpeg;q=0.74," +
		"image/*;q=0.7," +
		"application/xml;q=0.65," +
		"text/xml;q=0.64," +
		"text/xml;charset=UTF-8;q=0.63," +
		"application/json;q=0.5," +
		"text/html;q=0.5," +
		"text/plain;q=0.4," +
		"*/*;q=0.05" // Fallback for any other types

	return weightedAcceptHeader
}
