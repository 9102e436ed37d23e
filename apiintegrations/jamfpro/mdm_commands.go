// apiintegrations/jamfpro/mdm_commands.go
package jamfpro

import (
	"encoding/json"
	"net/http"
	"net/url"
)

const uriMDMCommands = "/api/v1/mdm/commands"

// GetMDMCommands retrieves information about MDM commands issued by Jamf Pro. The query is
// scoped either by command uuids, sent as repeated uuids parameters, or by a client
// management id; uuids win when both are given. Supplying neither is reported as a
// MissingParametersError without issuing a request.
func (c *Client) GetMDMCommands(uuids []string, clientManagementID string) (json.RawMessage, error) {
	params := url.Values{}
	if len(uuids) > 0 {
		for _, u := range uuids {
			params.Add("uuids", u)
		}
	} else if clientManagementID != "" {
		params.Set("client-management-id", clientManagementID)
	} else {
		return nil, &MissingParametersError{
			Operation:  "get mdm commands",
			Parameters: []string{"uuids", "client-management-id"},
		}
	}

	endpoint := uriMDMCommands + "?" + params.Encode()

	var out json.RawMessage
	resp, err := c.HTTP.DoRequest(http.MethodGet, endpoint, nil, &out)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, resourceError(err, "get mdm commands", "", "")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &OperationRejectedError{Operation: "get mdm commands", StatusCode: resp.StatusCode}
	}

	return out, nil
}
