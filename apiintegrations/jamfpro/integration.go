// apiintegrations/jamfpro/integration.go
package jamfpro

import (
	"github.com/deploymenttheory/go-api-client-jamfpro/authenticationhandler"
	"github.com/deploymenttheory/go-api-client-jamfpro/logger"
)

// Integration implements the httpclient.APIIntegration interface for the Jamf Pro API.
// It owns URL construction, request marshaling and header population for Jamf endpoints,
// and reads bearer tokens from the shared authentication handler.
type Integration struct {
	InstanceName       string        // InstanceName is the name of the Jamf instance.
	OverrideBaseDomain string        // OverrideBaseDomain overrides DefaultBaseDomain for URL construction when set.
	Logger             logger.Logger // Logger is the structured logger used for logging.

	auth *authenticationhandler.AuthTokenHandler
}

// Token returns the bearer token to attach to a resource request. It fails with
// ErrNotAuthenticated when no token is held, so no resource request is ever issued
// without one. Expiry is left to the server to judge.
func (j *Integration) Token() (string, error) {
	current, ok := j.auth.Current()
	if !ok {
		return "", authenticationhandler.ErrNotAuthenticated
	}
	return current.Token, nil
}

// Domain returns the base URL of the Jamf instance, e.g. "https://yourinstance.jamfcloud.com".
func (j *Integration) Domain() string {
	return "https://" + j.InstanceName + j.baseDomain()
}

// baseDomain returns the appropriate base domain for URL construction.
// It uses OverrideBaseDomain if set, otherwise falls back to DefaultBaseDomain.
func (j *Integration) baseDomain() string {
	if j.OverrideBaseDomain != "" {
		return j.OverrideBaseDomain
	}
	return DefaultBaseDomain
}

// AuthMethodDescriptor returns the authentication method in use, e.g. "basicauth" or "oauth2".
func (j *Integration) AuthMethodDescriptor() string {
	return j.auth.AuthMethod
}
