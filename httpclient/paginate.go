// httpclient/paginate.go
package httpclient

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/deploymenttheory/go-api-client-jamfpro/response"
	"go.uber.org/zap"
)

// PaginatedListResponse models the envelope returned by paginated Jamf Pro list endpoints.
// Results are kept as raw JSON so that callers decide how, and whether, to decode each item.
type PaginatedListResponse struct {
	TotalCount int               `json:"totalCount"`
	Results    []json.RawMessage `json:"results"`
}

// DoPaginatedGet fetches every page of a paginated list endpoint and returns the accumulated
// results. The first request is issued without a page parameter, which Jamf Pro treats as
// page 0; follow-up requests walk pages 1 through totalCount/pageSize. When totalCount is an
// exact multiple of pageSize the final request returns an empty page, which is fetched and
// contributes nothing.
//
// The fetch is all-or-nothing: a failure on any page discards results gathered so far and
// returns an *InitialFetchError or *PageFetchError describing where the walk stopped.
// Transport errors are returned unwrapped.
//
// Query values in params are preserved on every request; page-size and page are managed by
// this function and overwrite any caller supplied values.
func (c *Client) DoPaginatedGet(endpoint string, params url.Values, pageSize int) ([]json.RawMessage, error) {
	log := c.Logger

	if pageSize <= 0 {
		return nil, log.Error("page size must be greater than zero", zap.Int("page_size", pageSize))
	}

	query := url.Values{}
	for key, values := range params {
		for _, value := range values {
			query.Add(key, value)
		}
	}
	query.Set("page-size", strconv.Itoa(pageSize))

	var first PaginatedListResponse
	resp, err := c.DoRequest(http.MethodGet, endpoint+"?"+query.Encode(), nil, &first)
	if resp != nil {
		resp.Body.Close()
	}
	if err != nil {
		var apiErr *response.APIError
		if errors.As(err, &apiErr) {
			return nil, &InitialFetchError{StatusCode: apiErr.StatusCode, Err: err}
		}
		return nil, err
	}

	results := make([]json.RawMessage, 0, first.TotalCount)
	results = append(results, first.Results...)

	totalPages := first.TotalCount / pageSize

	page := 0
	for page != totalPages {
		page++
		query.Set("page", strconv.Itoa(page))

		var next PaginatedListResponse
		resp, err := c.DoRequest(http.MethodGet, endpoint+"?"+query.Encode(), nil, &next)
		if resp != nil {
			resp.Body.Close()
		}
		if err != nil {
			var apiErr *response.APIError
			if errors.As(err, &apiErr) {
				return nil, &PageFetchError{Page: page, StatusCode: apiErr.StatusCode, Err: err}
			}
			return nil, err
		}

		results = append(results, next.Results...)
	}

	log.Debug("Paginated fetch complete",
		zap.String("endpoint", endpoint),
		zap.Int("total_count", first.TotalCount),
		zap.Int("pages_fetched", totalPages+1),
		zap.Int("results", len(results)))

	return results, nil
}
