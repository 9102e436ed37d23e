// authenticationhandler/auth_oauth.go

/* OAuth2 client-credentials support for the authentication handler. The flow populates
the same auth context as basic-auth acquisition, so everything downstream is agnostic
to how the bearer token was obtained. */

package authenticationhandler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/deploymenttheory/go-api-client-jamfpro/headers/redact"
	"go.uber.org/zap"
)

// OAuthResponse represents the response structure when obtaining an OAuth access token.
type OAuthResponse struct {
	AccessToken  string `json:"access_token"`            // AccessToken is the token that can be used in subsequent requests for authentication.
	ExpiresIn    int64  `json:"expires_in"`              // ExpiresIn specifies the duration in seconds after which the access token expires.
	TokenType    string `json:"token_type"`              // TokenType indicates the type of token, typically "Bearer".
	RefreshToken string `json:"refresh_token,omitempty"` // RefreshToken is used to obtain a new access token when the current one expires.
	Error        string `json:"error,omitempty"`         // Error contains details if an error occurs during the token acquisition process.
}

// ObtainOAuthToken fetches an OAuth access token using the stored client ID and client
// secret and stores it as the current auth context. A non-200 response surfaces as an
// AuthenticationError carrying the observed status code.
func (h *AuthTokenHandler) ObtainOAuthToken(httpClient *http.Client, oauthTokenEndpoint string) error {
	h.tokenLock.Lock()
	defer h.tokenLock.Unlock()

	data := url.Values{}
	data.Set("client_id", h.Credentials.ClientID)
	data.Set("client_secret", h.Credentials.ClientSecret)
	data.Set("grant_type", "client_credentials")

	h.Logger.Debug("Attempting to obtain OAuth token", zap.String("ClientID", h.Credentials.ClientID))

	req, err := http.NewRequest(http.MethodPost, oauthTokenEndpoint, strings.NewReader(data.Encode()))
	if err != nil {
		h.Logger.Error("Failed to create request for OAuth token", zap.Error(err))
		return err
	}
	req.Header.Add("Content-Type", "application/x-www-form-urlencoded")

	resp, err := httpClient.Do(req)
	if err != nil {
		h.Logger.Error("Failed to execute request for OAuth token", zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		h.Logger.Error("Failed to read response body", zap.Error(err))
		return err
	}

	oauthResp := &OAuthResponse{}
	if err = json.Unmarshal(bodyBytes, oauthResp); err != nil && resp.StatusCode == http.StatusOK {
		h.Logger.Error("Failed to decode OAuth response", zap.Error(err))
		return err
	}

	if resp.StatusCode != http.StatusOK {
		authErr := &AuthenticationError{StatusCode: resp.StatusCode}
		if oauthResp.Error != "" {
			h.Logger.LogAuthTokenError("oauth_token_acquisition_failed", "POST", oauthTokenEndpoint, resp.StatusCode, fmt.Errorf("%s: %s", authErr.Error(), oauthResp.Error))
		} else {
			h.Logger.LogAuthTokenError("oauth_token_acquisition_failed", "POST", oauthTokenEndpoint, resp.StatusCode, authErr)
		}
		return authErr
	}

	if oauthResp.Error != "" {
		h.Logger.Error("Error obtaining OAuth token", zap.String("Error", oauthResp.Error))
		return fmt.Errorf("error obtaining OAuth token: %s", oauthResp.Error)
	}

	if oauthResp.AccessToken == "" {
		h.Logger.Error("Empty access token received")
		return fmt.Errorf("empty access token received")
	}

	expiresIn := time.Duration(oauthResp.ExpiresIn) * time.Second
	expirationTime := time.Now().Add(expiresIn)

	redactedAccessToken := redact.RedactSensitiveHeaderData(h.HideSensitiveData, "AccessToken", oauthResp.AccessToken)
	h.Logger.Info("OAuth token obtained successfully", zap.String("AccessToken", redactedAccessToken), zap.Duration("ExpiresIn", expiresIn), zap.Time("ExpirationTime", expirationTime))

	h.current = AuthContext{Token: oauthResp.AccessToken, Expires: expirationTime}
	h.state = AuthStateAuthenticated

	return nil
}
