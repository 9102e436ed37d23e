// apiintegrations/jamfpro/categories.go
package jamfpro

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const uriCategories = "/api/v1/categories"

// categoryRequest is the wire payload for category create and update calls.
type categoryRequest struct {
	Name     string `json:"name"`
	Priority int    `json:"priority"`
}

// GetCategories retrieves every category, walking all pages of the list endpoint.
func (c *Client) GetCategories(opts ListOptions) ([]json.RawMessage, error) {
	return c.HTTP.DoPaginatedGet(uriCategories, opts.values(), opts.pageSize())
}

// GetCategoryByID retrieves a single category record.
func (c *Client) GetCategoryByID(id string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/%s", uriCategories, id)

	var out json.RawMessage
	resp, err := c.HTTP.DoRequest(http.MethodGet, endpoint, nil, &out)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, resourceError(err, "get category", "category", id)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &OperationRejectedError{Operation: "get category", StatusCode: resp.StatusCode}
	}

	return out, nil
}

// CreateCategory creates a category record with the given name and priority, returning the
// record as the server stored it.
func (c *Client) CreateCategory(name string, priority int) (json.RawMessage, error) {
	payload := categoryRequest{Name: name, Priority: priority}

	var out json.RawMessage
	resp, err := c.HTTP.DoRequest(http.MethodPost, uriCategories, payload, &out)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, resourceError(err, "create category", "category", "")
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, &OperationRejectedError{Operation: "create category", StatusCode: resp.StatusCode}
	}

	return out, nil
}

// UpdateCategoryByID replaces the name and priority of an existing category record,
// returning the updated record.
func (c *Client) UpdateCategoryByID(id, name string, priority int) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/%s", uriCategories, id)
	payload := categoryRequest{Name: name, Priority: priority}

	var out json.RawMessage
	resp, err := c.HTTP.DoRequest(http.MethodPut, endpoint, payload, &out)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, resourceError(err, "update category", "category", id)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &OperationRejectedError{Operation: "update category", StatusCode: resp.StatusCode}
	}

	return out, nil
}

// DeleteCategoryByID removes a single category record.
func (c *Client) DeleteCategoryByID(id string) error {
	endpoint := fmt.Sprintf("%s/%s", uriCategories, id)

	resp, err := c.HTTP.DoRequest(http.MethodDelete, endpoint, nil, nil)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return resourceError(err, "delete category", "category", id)
	}
	if resp.StatusCode != http.StatusNoContent {
		return &OperationRejectedError{Operation: "delete category", StatusCode: resp.StatusCode}
	}

	return nil
}

// DeleteMultipleCategoriesByID removes multiple category records in a single call.
func (c *Client) DeleteMultipleCategoriesByID(ids []string) error {
	endpoint := fmt.Sprintf("%s/delete-multiple", uriCategories)
	payload := struct {
		IDs []string `json:"ids"`
	}{IDs: ids}

	resp, err := c.HTTP.DoRequest(http.MethodPost, endpoint, payload, nil)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return resourceError(err, "delete multiple categories", "category", "")
	}
	if resp.StatusCode != http.StatusNoContent {
		return &OperationRejectedError{Operation: "delete multiple categories", StatusCode: resp.StatusCode}
	}

	return nil
}

// GetCategoryHistory retrieves the history records of a category, walking all pages of the
// history endpoint.
func (c *Client) GetCategoryHistory(id string, opts ListOptions) ([]json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/%s/history", uriCategories, id)
	return c.HTTP.DoPaginatedGet(endpoint, opts.values(), opts.pageSize())
}

// CreateCategoryHistoryNote adds a note to the history of a category. A 404 means the
// category does not exist and a 503 means the history cannot be saved right now; both
// surface as typed errors, as does any other unexpected status.
func (c *Client) CreateCategoryHistoryNote(id, note string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/%s/history", uriCategories, id)
	payload := struct {
		Note string `json:"note"`
	}{Note: note}

	var out json.RawMessage
	resp, err := c.HTTP.DoRequest(http.MethodPost, endpoint, payload, &out)
	if resp != nil {
		defer resp.Body.Close()
	}
	if err != nil {
		return nil, resourceError(err, "create category history note", "category", id)
	}
	if resp.StatusCode != http.StatusCreated {
		return nil, &OperationRejectedError{Operation: "create category history note", StatusCode: resp.StatusCode}
	}

	return out, nil
}
