// apiintegrations/jamfpro/managed_software_updates.go
package jamfpro

import (
	"encoding/json"
	"net/http"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const uriManagedSoftwareUpdates = "/api/v1/macos-managed-software-updates"

// UpdateActionDownloadAndInstall is the update action applied when the payload does not
// choose one.
const UpdateActionDownloadAndInstall = "DOWNLOAD_AND_INSTALL"

// ManagedSoftwareUpdatePayload is the wire payload for sending macOS managed software
// updates. Exactly one of DeviceIDs and GroupID scopes the push; DeviceIDs wins when both
// are set, and the losing field is never transmitted.
type ManagedSoftwareUpdatePayload struct {
	MaxDeferrals            int      `json:"maxDeferrals"`
	Version                 string   `json:"version"`
	SkipVersionVerification bool     `json:"skipVersionVerification"`
	ApplyMajorUpdate        bool     `json:"applyMajorUpdate"`
	UpdateAction            string   `json:"updateAction"`
	ForceRestart            bool     `json:"forceRestart"`
	DeviceIDs               []string `json:"deviceIds,omitempty"`
	GroupID                 string   `json:"groupId,omitempty"`
}

// GetAvailableManagedSoftwareUpdates retrieves the macOS managed software updates available
// for deployment.
func (c *Client) GetAvailableManagedSoftwareUpdates() (json.RawMessage, error) {
	endpoint := uriManagedSoftwareUpdates + "/available-updates"

	var out json.RawMessage
	resp, err := c.HTTP.DoRequest(http.MethodGet, endpoint, nil, &out)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, resourceError(err, "get available managed software updates", "", "")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &OperationRejectedError{Operation: "get available managed software updates", StatusCode: resp.StatusCode}
	}

	return out, nil
}

// SendManagedSoftwareUpdates pushes a macOS managed software update command to the devices
// scoped by the payload. The payload must name device IDs or a group ID; neither being set
// is reported as a MissingParametersError without issuing a request. On success the server
// may still report per-device problems in an errors array, which is logged as a warning and
// returned to the caller with the rest of the body.
func (c *Client) SendManagedSoftwareUpdates(payload ManagedSoftwareUpdatePayload) (json.RawMessage, error) {
	if len(payload.DeviceIDs) > 0 {
		payload.GroupID = ""
	} else if payload.GroupID == "" {
		return nil, &MissingParametersError{
			Operation:  "send managed software updates",
			Parameters: []string{"deviceIds", "groupId"},
		}
	}

	if payload.UpdateAction == "" {
		payload.UpdateAction = UpdateActionDownloadAndInstall
	}

	endpoint := uriManagedSoftwareUpdates + "/send-updates"

	var out json.RawMessage
	resp, err := c.HTTP.DoRequest(http.MethodPost, endpoint, payload, &out)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, resourceError(err, "send managed software updates", "", "")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &OperationRejectedError{Operation: "send managed software updates", StatusCode: resp.StatusCode}
	}

	if errs := gjson.GetBytes(out, "errors"); errs.IsArray() && len(errs.Array()) > 0 {
		c.HTTP.Logger.Warn("Managed software updates sent with errors", zap.String("errors", errs.Raw))
	}

	return out, nil
}
