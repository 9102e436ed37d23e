// apiintegrations/jamfpro/computer_inventory.go
package jamfpro

import "encoding/json"

const uriComputersInventory = "/api/v1/computers-inventory"

// GetComputersInventory retrieves computer inventory records, walking all pages of the list
// endpoint. Sections narrow which inventory subsets the server returns and are sent as
// repeated section query parameters; none means the server default.
func (c *Client) GetComputersInventory(sections []string, opts ListOptions) ([]json.RawMessage, error) {
	params := opts.values()
	for _, section := range sections {
		params.Add("section", section)
	}

	return c.HTTP.DoPaginatedGet(uriComputersInventory, params, opts.pageSize())
}
