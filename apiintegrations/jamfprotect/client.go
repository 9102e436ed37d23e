// apiintegrations/jamfprotect/client.go
/* Package jamfprotect provides a minimal client for the Jamf Protect API: API token
acquisition from client credentials and GraphQL query execution. Query results are
returned as raw JSON for the caller to shape. */
package jamfprotect

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/deploymenttheory/go-api-client-jamfpro/logger"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// Client is a Jamf Protect API client. The acquired API token is held under a lock and
// replaced as a whole on re-authentication, mirroring the session handling of the Jamf
// Pro client.
type Client struct {
	protectURL string
	clientID   string
	password   string
	http       *http.Client

	Logger logger.Logger // Logger is the structured logger used for logging.

	tokenLock sync.Mutex
	token     string
	expiry    time.Time
}

// tokenRequest is the wire payload for the Jamf Protect token endpoint.
type tokenRequest struct {
	ClientID string `json:"client_id"`
	Password string `json:"password"`
}

// tokenResponse represents the structure of a token response from the API.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// graphQLRequest is the wire payload for the GraphQL endpoint.
type graphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// BuildClient creates a new Jamf Protect client for the given tenant URL, e.g.
// "https://yourtenant.protect.jamfcloud.com".
func BuildClient(protectURL, clientID, password string, insecureSkipVerify bool, log logger.Logger) (*Client, error) {
	if protectURL == "" {
		return nil, errors.New("protect URL is required, please see documentation")
	}
	if clientID == "" || password == "" {
		return nil, errors.New("client id and password are required, please see documentation")
	}

	httpClient := &http.Client{
		Timeout: DefaultTimeout,
	}

	if insecureSkipVerify {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
		log.Warn("TLS certificate verification is disabled, traffic can be intercepted")
	}

	return &Client{
		protectURL: strings.TrimRight(protectURL, "/"),
		clientID:   clientID,
		password:   password,
		http:       httpClient,
		Logger:     log,
	}, nil
}

// Authenticate obtains an API token from the Jamf Protect token endpoint using the client
// credentials. A non-200 response returns an AuthenticationError and leaves any previously
// held token untouched.
func (c *Client) Authenticate() error {
	c.tokenLock.Lock()
	defer c.tokenLock.Unlock()

	endpoint := c.protectURL + TokenEndpoint
	c.Logger.Debug("Attempting to obtain Jamf Protect token", zap.String("ClientID", c.clientID))

	body, err := json.Marshal(tokenRequest{ClientID: c.clientID, Password: c.password})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		c.Logger.LogError("protect_authentication_request_creation_error", "POST", endpoint, 0, "", err, "Failed to create new request for token")
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.Logger.LogError("protect_authentication_request_error", "POST", endpoint, 0, "", err, "Failed to make request for token")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		authErr := &AuthenticationError{StatusCode: resp.StatusCode}
		c.Logger.LogAuthTokenError("protect_token_authentication_failed", "POST", endpoint, resp.StatusCode, authErr)
		return authErr
	}

	tokenResp := &tokenResponse{}
	if err := json.NewDecoder(resp.Body).Decode(tokenResp); err != nil {
		c.Logger.Error("Failed to decode token response", zap.Error(err))
		return err
	}

	c.token = tokenResp.AccessToken
	c.expiry = time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)
	c.Logger.Info("Jamf Protect token obtained successfully", zap.Time("Expiry", c.expiry))

	return nil
}

// TokenExpiry returns the expiry of the held API token, zero when none is held.
func (c *Client) TokenExpiry() time.Time {
	c.tokenLock.Lock()
	defer c.tokenLock.Unlock()
	return c.expiry
}

// ExecuteQuery runs a GraphQL query against the Jamf Protect tenant and returns the raw
// data payload. GraphQL-level errors in an otherwise successful response surface as a
// QueryError carrying every reported message.
func (c *Client) ExecuteQuery(query string, variables map[string]interface{}) (json.RawMessage, error) {
	token, err := c.currentToken()
	if err != nil {
		return nil, err
	}

	endpoint := c.protectURL + GraphQLEndpoint

	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		c.Logger.Error("Failed marshaling GraphQL request", zap.Error(err))
		return nil, err
	}

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		c.Logger.LogError("protect_graphql_request_creation_error", "POST", endpoint, 0, "", err, "Failed to create new request for GraphQL query")
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		c.Logger.LogError("protect_graphql_request_error", "POST", endpoint, 0, "", err, "Failed to make request for GraphQL query")
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Logger.Error("Failed to read GraphQL response", zap.Error(err))
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		queryErr := &QueryError{StatusCode: resp.StatusCode}
		c.Logger.LogError("protect_graphql_query_rejected", "POST", endpoint, resp.StatusCode, resp.Status, queryErr, string(respBody))
		return nil, queryErr
	}

	if errs := gjson.GetBytes(respBody, "errors"); errs.IsArray() && len(errs.Array()) > 0 {
		queryErr := &QueryError{StatusCode: resp.StatusCode, Messages: queryErrorMessages(errs)}
		c.Logger.Error("GraphQL query returned errors", zap.String("errors", errs.Raw))
		return nil, queryErr
	}

	data := gjson.GetBytes(respBody, "data")
	if !data.Exists() {
		return nil, nil
	}

	return json.RawMessage(data.Raw), nil
}

// currentToken returns the held API token, failing when none is held so no query is ever
// issued without one.
func (c *Client) currentToken() (string, error) {
	c.tokenLock.Lock()
	defer c.tokenLock.Unlock()

	if c.token == "" {
		return "", ErrNotAuthenticated
	}
	return c.token, nil
}

// queryErrorMessages flattens the message fields out of a GraphQL errors array.
func queryErrorMessages(errs gjson.Result) []string {
	var messages []string
	for _, e := range errs.Array() {
		if msg := e.Get("message"); msg.Exists() {
			messages = append(messages, msg.String())
		}
	}
	return messages
}
