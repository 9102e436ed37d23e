// apiintegrations/jamfpro/list_options.go
package jamfpro

import (
	"net/url"
	"strings"
)

// ListOptions carries the query parameters shared by the paginated list endpoints.
// The zero value lists everything with the default page size.
type ListOptions struct {
	PageSize int      // PageSize is the number of records per page; DefaultPageSize when zero.
	Sort     []string // Sort holds sort criteria such as "name:asc", comma joined on the wire.
	Filter   string   // Filter is an RSQL filter expression, passed through verbatim.
}

// pageSize returns the effective page size.
func (o ListOptions) pageSize() int {
	if o.PageSize > 0 {
		return o.PageSize
	}
	return DefaultPageSize
}

// values serializes the options into query parameters. Sort and filter are always present,
// serialized as empty strings when unset, which Jamf Pro treats the same as absent.
func (o ListOptions) values() url.Values {
	params := url.Values{}
	params.Set("sort", strings.Join(o.Sort, ","))
	params.Set("filter", o.Filter)
	return params
}
