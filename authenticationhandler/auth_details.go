// authenticationhandler/auth_details.go

package authenticationhandler

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/deploymenttheory/go-api-client-jamfpro/response"
	"go.uber.org/zap"
)

// GetAuthDetails fetches the authorization details associated with the held bearer
// token and returns the raw JSON body. It fails with ErrNotAuthenticated before any
// network call when no token is held; a non-200 response surfaces as the parsed
// *response.APIError.
func (h *AuthTokenHandler) GetAuthDetails(httpClient *http.Client, authDetailsEndpoint string) (json.RawMessage, error) {
	current, ok := h.Current()
	if !ok {
		return nil, fmt.Errorf("cannot fetch auth details: %w", ErrNotAuthenticated)
	}

	req, err := http.NewRequest(http.MethodGet, authDetailsEndpoint, nil)
	if err != nil {
		h.Logger.Error("Failed to create request for auth details", zap.Error(err))
		return nil, err
	}
	req.Header.Add("Authorization", "Bearer "+current.Token)
	req.Header.Add("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		h.Logger.Error("Failed to make request for auth details", zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, response.HandleAPIErrorResponse(resp, h.Logger)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		h.Logger.Error("Failed to read auth details response", zap.Error(err))
		return nil, err
	}

	h.Logger.Debug("Auth details fetched successfully", zap.String("URL", authDetailsEndpoint))
	return json.RawMessage(body), nil
}
