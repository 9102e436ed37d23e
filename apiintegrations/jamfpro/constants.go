// apiintegrations/jamfpro/constants.go
package jamfpro

// Endpoint constants represent the URL suffixes used for Jamf API token interactions.
const (
	APIName                 = "jamf pro"                      // APIName: represents the name of the API.
	DefaultBaseDomain       = ".jamfcloud.com"                // DefaultBaseDomain: represents the base domain for the jamf instance.
	OAuthTokenEndpoint      = "/api/oauth/token"              // OAuthTokenEndpoint: The endpoint to obtain an OAuth token.
	BearerTokenEndpoint     = "/api/v1/auth/token"            // BearerTokenEndpoint: The endpoint to obtain a bearer token.
	TokenRefreshEndpoint    = "/api/v1/auth/keep-alive"       // TokenRefreshEndpoint: The endpoint to refresh an existing token.
	TokenInvalidateEndpoint = "/api/v1/auth/invalidate-token" // TokenInvalidateEndpoint: The endpoint to invalidate an active token.
	AuthDetailsEndpoint     = "/api/v1/auth"                  // AuthDetailsEndpoint: The endpoint to inspect authorization details for the current token.
)

// DefaultPageSize is the page size applied to paginated list requests when the caller
// does not choose one.
const DefaultPageSize = 100
