// authenticationhandler/auth_method.go

/* Determines the authentication strategy from the provided credentials. OAuth2
client credentials are preferred over basic auth when both are usable. */

package authenticationhandler

import (
	"errors"
)

// DetermineAuthMethod determines the authentication method based on the provided credentials.
// It prefers strong authentication methods (OAuth2 client credentials) over basic auth.
// It returns "unknown" with an error describing every failed validation if no usable
// credential pair is provided.
func DetermineAuthMethod(credentials ClientCredentials) (string, error) {
	validClientID, validClientSecret, validUsername, validPassword := true, true, true, true
	clientIDErrMsg, clientSecretErrMsg, usernameErrMsg, passwordErrMsg := "", "", "", ""

	// Validate ClientID and ClientSecret for OAuth2 if provided
	if credentials.ClientID != "" || credentials.ClientSecret != "" {
		validClientID, clientIDErrMsg = IsValidClientID(credentials.ClientID)
		validClientSecret, clientSecretErrMsg = IsValidClientSecret(credentials.ClientSecret)
		if validClientID && validClientSecret {
			return AuthMethodOAuth2, nil
		}
	}

	// Validate Username and Password for basic auth if OAuth2 is not valid or not provided
	if credentials.Username != "" || credentials.Password != "" {
		validUsername, usernameErrMsg = IsValidUsername(credentials.Username)
		validPassword, passwordErrMsg = IsValidPassword(credentials.Password)
		if validUsername && validPassword {
			return AuthMethodBasicAuth, nil
		}
	}

	// Construct an error message if any of the provided fields are invalid
	errorMsg := "No valid credentials provided."
	if !validClientID && credentials.ClientID != "" {
		errorMsg += " " + clientIDErrMsg
	}
	if !validClientSecret && credentials.ClientSecret != "" {
		errorMsg += " " + clientSecretErrMsg
	}
	if !validUsername && credentials.Username != "" {
		errorMsg += " " + usernameErrMsg
	}
	if !validPassword && credentials.Password != "" {
		errorMsg += " " + passwordErrMsg
	}

	return "unknown", errors.New(errorMsg)
}
