// authenticationhandler/authenticationhandler.go

package authenticationhandler

import (
	"sync"
	"time"

	"github.com/deploymenttheory/go-api-client-jamfpro/logger"
)

// Supported authentication methods.
const (
	AuthMethodBasicAuth = "basicauth"
	AuthMethodOAuth2    = "oauth2"
)

// AuthState tracks where the handler sits in the session lifecycle.
type AuthState int

const (
	// AuthStateUnauthenticated means no token has been acquired yet, or every acquisition attempt failed.
	AuthStateUnauthenticated AuthState = iota
	// AuthStateAuthenticated means a bearer token is held.
	AuthStateAuthenticated
	// AuthStateInvalidated means the token was invalidated server-side and cleared locally.
	AuthStateInvalidated
)

func (s AuthState) String() string {
	switch s {
	case AuthStateAuthenticated:
		return "authenticated"
	case AuthStateInvalidated:
		return "invalidated"
	default:
		return "unauthenticated"
	}
}

// AuthContext is an immutable snapshot of an acquired bearer token. Acquisition and
// refresh replace the value as a whole; nothing mutates it in place. Request headers
// are derived from a copy of this value, never from shared session state.
type AuthContext struct {
	Token   string    // Token holds the bearer token value.
	Expires time.Time // Expires indicates the server-declared expiry of the token.
}

// Valid reports whether the context holds a token whose remaining lifetime exceeds the buffer.
func (c AuthContext) Valid(buffer time.Duration) bool {
	return c.Token != "" && time.Until(c.Expires) >= buffer
}

// AuthTokenHandler manages the bearer-token session lifecycle.
type AuthTokenHandler struct {
	Credentials       ClientCredentials // Credentials holds the authentication credentials, immutable after construction.
	Logger            logger.Logger     // Logger provides structured logging capabilities.
	AuthMethod        string            // AuthMethod specifies the method of authentication, e.g. "basicauth" or "oauth2".
	InstanceName      string            // InstanceName represents the name of the instance the client is interacting with.
	HideSensitiveData bool              // HideSensitiveData controls redaction of token values in logs.

	tokenLock sync.Mutex  // tokenLock serializes token operations and guards current and state.
	current   AuthContext // current is the active auth context; the zero value means none is held.
	state     AuthState   // state is the session lifecycle state.
}

// ClientCredentials holds the credentials necessary for authentication.
type ClientCredentials struct {
	Username     string
	Password     string
	ClientID     string
	ClientSecret string
}

// TokenResponse represents the structure of a token response from the API.
type TokenResponse struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// NewAuthTokenHandler creates a new instance of AuthTokenHandler.
func NewAuthTokenHandler(log logger.Logger, authMethod string, credentials ClientCredentials, instanceName string, hideSensitiveData bool) *AuthTokenHandler {
	return &AuthTokenHandler{
		Logger:            log,
		AuthMethod:        authMethod,
		Credentials:       credentials,
		InstanceName:      instanceName,
		HideSensitiveData: hideSensitiveData,
	}
}

// Current returns the active auth context and whether one is held.
func (h *AuthTokenHandler) Current() (AuthContext, bool) {
	h.tokenLock.Lock()
	defer h.tokenLock.Unlock()
	return h.current, h.current.Token != ""
}

// State returns the session lifecycle state.
func (h *AuthTokenHandler) State() AuthState {
	h.tokenLock.Lock()
	defer h.tokenLock.Unlock()
	return h.state
}

// IsTokenValid reports whether the held token's remaining lifetime exceeds the buffer period.
// It is a read-only check: no acquisition or refresh happens implicitly.
func (h *AuthTokenHandler) IsTokenValid(buffer time.Duration) bool {
	h.tokenLock.Lock()
	defer h.tokenLock.Unlock()
	return h.current.Valid(buffer)
}
