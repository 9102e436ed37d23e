// authenticationhandler/errors.go

package authenticationhandler

import (
	"errors"
	"fmt"
)

// ErrNotAuthenticated signals that an operation requiring a bearer token was attempted
// while no token is held. Authentication must run first.
var ErrNotAuthenticated = errors.New("not authenticated: no bearer token held")

// AuthenticationError indicates a failed token acquisition attempt. The session state
// is left untouched when this is returned.
type AuthenticationError struct {
	StatusCode int
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed with status code: %d", e.StatusCode)
}

// TokenRefreshError indicates a failed keep-alive refresh. The previously held token,
// if any, remains usable.
type TokenRefreshError struct {
	StatusCode int
}

func (e *TokenRefreshError) Error() string {
	return fmt.Sprintf("token refresh failed with status code: %d", e.StatusCode)
}

// TokenInvalidationError indicates the server rejected a token invalidation request.
// The local token is only cleared on a successful invalidation.
type TokenInvalidationError struct {
	StatusCode int
}

func (e *TokenInvalidationError) Error() string {
	return fmt.Sprintf("token invalidation failed with status code: %d", e.StatusCode)
}
