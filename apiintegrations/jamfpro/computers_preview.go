// apiintegrations/jamfpro/computers_preview.go
package jamfpro

import "encoding/json"

const uriComputersPreview = "/api/preview/computers"

// GetComputersPreview retrieves the computer list from the preview endpoint, walking all
// pages.
func (c *Client) GetComputersPreview(opts ListOptions) ([]json.RawMessage, error) {
	return c.HTTP.DoPaginatedGet(uriComputersPreview, opts.values(), opts.pageSize())
}
