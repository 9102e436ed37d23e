// apiintegrations/jamfpro/client.go
/* Package jamfpro provides a client for the Jamf Pro API. It bundles the shared http
client, the Jamf Pro integration and the authentication handler, and adds typed operations
for the resource endpoints on top of them. */
package jamfpro

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/deploymenttheory/go-api-client-jamfpro/authenticationhandler"
	"github.com/deploymenttheory/go-api-client-jamfpro/httpclient"
)

// Client is a high level client for the Jamf Pro API. One session is held per client
// instance; every resource operation reads from it through the integration.
type Client struct {
	HTTP *httpclient.Client // HTTP is the underlying request core, shared with the integration.

	auth        *authenticationhandler.AuthTokenHandler
	integration *Integration
}

// BuildClient assembles a Jamf Pro client from the supplied configuration. The integration
// and the authentication handler share the http client's logger and transport, so auth
// endpoint calls observe the same TLS, cookie and redirect behaviour as resource calls.
func BuildClient(config Config, populateDefaultValues bool) (*Client, error) {
	if config.Environment.InstanceName == "" {
		return nil, errors.New("instance name is required, please see documentation")
	}

	credentials := authenticationhandler.ClientCredentials{
		Username:     config.Auth.Username,
		Password:     config.Auth.Password,
		ClientID:     config.Auth.ClientID,
		ClientSecret: config.Auth.ClientSecret,
	}

	authMethod, err := authenticationhandler.DetermineAuthMethod(credentials)
	if err != nil {
		return nil, err
	}

	integration := &Integration{
		InstanceName:       config.Environment.InstanceName,
		OverrideBaseDomain: config.Environment.OverrideBaseDomain,
	}
	// httpclient.BuildClient reads the integration's auth method while logging its
	// own construction, so the handler must be wired before it runs; the shared
	// logger only exists afterwards and is attached below.
	integration.auth = authenticationhandler.NewAuthTokenHandler(
		nil,
		authMethod,
		credentials,
		config.Environment.InstanceName,
		config.Client.HideSensitiveData,
	)

	config.Client.Integration = integration
	httpClient, err := httpclient.BuildClient(config.Client, populateDefaultValues)
	if err != nil {
		return nil, err
	}

	integration.Logger = httpClient.Logger
	integration.auth.Logger = httpClient.Logger

	return &Client{
		HTTP:        httpClient,
		auth:        integration.auth,
		integration: integration,
	}, nil
}

// Authenticate acquires a bearer token using the configured authentication method and holds
// it for subsequent requests. Failures leave the session state untouched.
func (c *Client) Authenticate() error {
	switch c.integration.AuthMethodDescriptor() {
	case authenticationhandler.AuthMethodOAuth2:
		return c.auth.ObtainOAuthToken(c.HTTP.HTTPClient(), c.integration.Domain()+OAuthTokenEndpoint)
	default:
		return c.auth.BasicAuthTokenAcquisition(c.HTTP.HTTPClient(), c.integration.Domain()+BearerTokenEndpoint)
	}
}

// RefreshToken extends the current session via the keep-alive endpoint, replacing the held
// token with the one the server returns. The prior token stays usable on failure.
func (c *Client) RefreshToken() error {
	return c.auth.RefreshBearerToken(c.HTTP.HTTPClient(), c.integration.Domain()+TokenRefreshEndpoint)
}

// InvalidateToken revokes the current bearer token. Success is keyed to a 204 response, on
// which the local session state is cleared and moves to Invalidated.
func (c *Client) InvalidateToken() error {
	return c.auth.InvalidateBearerToken(c.HTTP.HTTPClient(), c.integration.Domain()+TokenInvalidateEndpoint)
}

// GetAuthDetails retrieves the authorization details associated with the current token.
func (c *Client) GetAuthDetails() (json.RawMessage, error) {
	return c.auth.GetAuthDetails(c.HTTP.HTTPClient(), c.integration.Domain()+AuthDetailsEndpoint)
}

// AuthState returns the session lifecycle state.
func (c *Client) AuthState() authenticationhandler.AuthState {
	return c.auth.State()
}

// IsTokenValid reports whether the held token outlives the configured refresh buffer period.
// It is a hook for callers to decide when to call RefreshToken; nothing refreshes implicitly.
func (c *Client) IsTokenValid() bool {
	return c.auth.IsTokenValid(c.HTTP.TokenRefreshBufferPeriod())
}

// TokenExpiry returns the expiry time of the held token, zero when none is held.
func (c *Client) TokenExpiry() time.Time {
	current, _ := c.auth.Current()
	return current.Expires
}
