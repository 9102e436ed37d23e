// apiintegrations/jamfpro/computer_groups.go
package jamfpro

import "encoding/json"

const uriComputerGroups = "/api/v1/computer-groups"

// GetComputerGroups retrieves every computer group, walking all pages of the list endpoint.
func (c *Client) GetComputerGroups(opts ListOptions) ([]json.RawMessage, error) {
	return c.HTTP.DoPaginatedGet(uriComputerGroups, opts.values(), opts.pageSize())
}
