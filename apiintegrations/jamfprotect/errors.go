// apiintegrations/jamfprotect/errors.go
package jamfprotect

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotAuthenticated signals that a query was attempted while no API token is held.
// Authenticate must run first.
var ErrNotAuthenticated = errors.New("not authenticated: no api token held")

// AuthenticationError indicates a failed token acquisition attempt. Any previously held
// token remains usable when this is returned.
type AuthenticationError struct {
	StatusCode int
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("protect authentication failed with status code: %d", e.StatusCode)
}

// QueryError indicates a failed GraphQL query: either the endpoint rejected the request
// outright, or it answered 200 with GraphQL-level errors in the response body.
type QueryError struct {
	StatusCode int      // StatusCode is the HTTP status observed.
	Messages   []string // Messages holds the GraphQL error messages, empty for HTTP-level rejections.
}

func (e *QueryError) Error() string {
	if len(e.Messages) > 0 {
		return "graphql query failed: " + strings.Join(e.Messages, "; ")
	}
	return fmt.Sprintf("graphql query rejected with status code: %d", e.StatusCode)
}
