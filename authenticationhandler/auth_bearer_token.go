// authenticationhandler/auth_bearer_token.go
/* The authenticationhandler package focuses on the bearer-token session lifecycle
against the Jamf Pro auth endpoints: acquisition with basic auth, keep-alive refresh,
and server-side invalidation. The caller supplies the full endpoint URLs so the
handler itself stays API-agnostic. */

package authenticationhandler

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// BasicAuthTokenAcquisition fetches and stores a bearer token using the stored basic
// authentication credentials. A non-200 response leaves the session state untouched
// and returns an AuthenticationError carrying the observed status code.
func (h *AuthTokenHandler) BasicAuthTokenAcquisition(httpClient *http.Client, bearerTokenEndpoint string) error {
	h.tokenLock.Lock()
	defer h.tokenLock.Unlock()

	h.Logger.Debug("Attempting to obtain token for user", zap.String("Username", h.Credentials.Username))

	req, err := http.NewRequest(http.MethodPost, bearerTokenEndpoint, nil)
	if err != nil {
		h.Logger.LogError("authentication_request_creation_error", "POST", bearerTokenEndpoint, 0, "", err, "Failed to create new request for token")
		return err
	}
	req.SetBasicAuth(h.Credentials.Username, h.Credentials.Password)

	resp, err := httpClient.Do(req)
	if err != nil {
		h.Logger.LogError("authentication_request_error", "POST", bearerTokenEndpoint, 0, "", err, "Failed to make request for token")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		authErr := &AuthenticationError{StatusCode: resp.StatusCode}
		h.Logger.LogAuthTokenError("token_authentication_failed", "POST", bearerTokenEndpoint, resp.StatusCode, authErr)
		return authErr
	}

	tokenResp := &TokenResponse{}
	if err = json.NewDecoder(resp.Body).Decode(tokenResp); err != nil {
		h.Logger.Error("Failed to decode token response", zap.Error(err))
		return err
	}

	h.current = AuthContext{Token: tokenResp.Token, Expires: tokenResp.Expires}
	h.state = AuthStateAuthenticated
	h.Logger.Info("Token obtained successfully", zap.Time("Expiry", tokenResp.Expires), zap.Duration("Duration", time.Until(tokenResp.Expires)))

	return nil
}

// RefreshBearerToken refreshes the held token via the keep-alive endpoint and replaces
// the auth context with the server's new token. When no token is held the request goes
// out without an Authorization header and the server's rejection surfaces as a
// TokenRefreshError. A failed refresh leaves the prior context untouched.
func (h *AuthTokenHandler) RefreshBearerToken(httpClient *http.Client, tokenRefreshEndpoint string) error {
	h.tokenLock.Lock()
	defer h.tokenLock.Unlock()

	h.Logger.Debug("Attempting to refresh token", zap.String("URL", tokenRefreshEndpoint))

	req, err := http.NewRequest(http.MethodPost, tokenRefreshEndpoint, nil)
	if err != nil {
		h.Logger.Error("Failed to create new request for token refresh", zap.Error(err))
		return err
	}
	if h.current.Token != "" {
		req.Header.Add("Authorization", "Bearer "+h.current.Token)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		h.Logger.Error("Failed to make request for token refresh", zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		refreshErr := &TokenRefreshError{StatusCode: resp.StatusCode}
		h.Logger.LogAuthTokenError("token_refresh_failed", "POST", tokenRefreshEndpoint, resp.StatusCode, refreshErr)
		return refreshErr
	}

	tokenResp := &TokenResponse{}
	if err = json.NewDecoder(resp.Body).Decode(tokenResp); err != nil {
		h.Logger.Error("Failed to decode token response", zap.Error(err))
		return err
	}

	h.current = AuthContext{Token: tokenResp.Token, Expires: tokenResp.Expires}
	h.state = AuthStateAuthenticated
	h.Logger.Info("Token refreshed successfully", zap.Time("Expiry", tokenResp.Expires))

	return nil
}

// InvalidateBearerToken asks the server to invalidate the held token. Success is keyed
// to 204 exactly: the local context is cleared and the state moves to Invalidated so a
// stale token can never ride along on later requests. Any other status leaves the local
// state untouched and returns a TokenInvalidationError.
func (h *AuthTokenHandler) InvalidateBearerToken(httpClient *http.Client, tokenInvalidateEndpoint string) error {
	h.tokenLock.Lock()
	defer h.tokenLock.Unlock()

	h.Logger.Debug("Attempting to invalidate token", zap.String("URL", tokenInvalidateEndpoint))

	req, err := http.NewRequest(http.MethodPost, tokenInvalidateEndpoint, nil)
	if err != nil {
		h.Logger.Error("Failed to create new request for token invalidation", zap.Error(err))
		return err
	}
	if h.current.Token != "" {
		req.Header.Add("Authorization", "Bearer "+h.current.Token)
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		h.Logger.Error("Failed to make request for token invalidation", zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent {
		invalidationErr := &TokenInvalidationError{StatusCode: resp.StatusCode}
		h.Logger.LogAuthTokenError("token_invalidation_failed", "POST", tokenInvalidateEndpoint, resp.StatusCode, invalidationErr)
		return invalidationErr
	}

	h.current = AuthContext{}
	h.state = AuthStateInvalidated
	h.Logger.Info("Token invalidated successfully")

	return nil
}
