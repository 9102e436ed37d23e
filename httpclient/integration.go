// httpclient/integration.go
package httpclient

import (
	"net/http"
)

// APIIntegration is the contract between the http client and an API implementation. It
// encapsulates authentication, domain resolution and the encoding rules of the target API,
// keeping the client itself free of any service specific behaviour.
type APIIntegration interface {
	Token() (string, error)
	Domain() string
	SetRequestHeaders(req *http.Request)

	// Utilities
	MarshalRequest(body interface{}, method string, endpoint string) ([]byte, error)
	MarshalMultipartRequest(fields map[string]string, files map[string]string) ([]byte, string, error)
	GetContentTypeHeader(endpoint string) string

	// Info
	AuthMethodDescriptor() string
}
