// apiintegrations/jamfprotect/constants.go
package jamfprotect

import "time"

// Endpoint constants represent the URL suffixes used for Jamf Protect interactions.
const (
	APIName         = "jamf protect" // APIName: represents the name of the API.
	TokenEndpoint   = "/token"       // TokenEndpoint: The endpoint to obtain an API token from client credentials.
	GraphQLEndpoint = "/graphql"     // GraphQLEndpoint: The endpoint serving the Jamf Protect GraphQL API.
)

// DefaultTimeout bounds each request round trip.
const DefaultTimeout = 30 * time.Second
