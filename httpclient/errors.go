// httpclient/errors.go
package httpclient

import "fmt"

// InitialFetchError reports a failed first request of a paginated fetch, before any page
// count is known.
type InitialFetchError struct {
	StatusCode int
	Err        error
}

func (e *InitialFetchError) Error() string {
	return fmt.Sprintf("initial paginated fetch failed with status code: %d", e.StatusCode)
}

func (e *InitialFetchError) Unwrap() error {
	return e.Err
}

// PageFetchError reports a failed follow-up page request of a paginated fetch. Page numbering
// matches the request's page parameter, so the first follow-up page is page 1.
type PageFetchError struct {
	Page       int
	StatusCode int
	Err        error
}

func (e *PageFetchError) Error() string {
	return fmt.Sprintf("paginated fetch of page %d failed with status code: %d", e.Page, e.StatusCode)
}

func (e *PageFetchError) Unwrap() error {
	return e.Err
}
