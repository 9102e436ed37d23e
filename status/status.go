// status.go
// This package provides utility functions for categorizing HTTP response status codes.
package status

import (
	"net/http"
)

// IsRedirectStatusCode reports whether the status code instructs the client to reissue
// the request against the URI named in the response's Location header. It covers both
// the temporary (302, 303, 307) and permanent (301, 308) redirect codes.
func IsRedirectStatusCode(statusCode int) bool {
	switch statusCode {
	case http.StatusMovedPermanently,
		http.StatusFound,
		http.StatusSeeOther,
		http.StatusTemporaryRedirect,
		http.StatusPermanentRedirect:
		return true
	default:
		return false
	}
}

// IsPermanentRedirect reports whether the status code is a permanent redirect (301 or 308),
// for which the rewritten URL may be remembered for subsequent requests.
func IsPermanentRedirect(statusCode int) bool {
	switch statusCode {
	case http.StatusMovedPermanently,
		http.StatusPermanentRedirect:
		return true
	default:
		return false
	}
}
