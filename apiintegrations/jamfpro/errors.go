// apiintegrations/jamfpro/errors.go
package jamfpro

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/deploymenttheory/go-api-client-jamfpro/response"
)

// NotFoundError is returned when a requested record does not exist, i.e. the server
// answered 404 for an operation addressing a specific ID.
type NotFoundError struct {
	Resource string // Resource names the record kind, e.g. "category".
	ID       string // ID is the identifier that failed to resolve.
	Err      error  // Err is the underlying API error carrying the raw response.
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Resource, e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// OperationRejectedError is returned when the server answers an operation with a status
// code other than the one that defines its success.
type OperationRejectedError struct {
	Operation  string // Operation names the rejected operation, e.g. "create category".
	StatusCode int    // StatusCode is the HTTP status observed.
	Err        error  // Err is the underlying API error when the status was a failure, nil otherwise.
}

func (e *OperationRejectedError) Error() string {
	return fmt.Sprintf("%s rejected with status code: %d", e.Operation, e.StatusCode)
}

func (e *OperationRejectedError) Unwrap() error {
	return e.Err
}

// MissingParametersError is returned when an operation is invoked without any member of a
// required parameter set. No request is issued in that case.
type MissingParametersError struct {
	Operation  string   // Operation names the operation that was missing its parameters.
	Parameters []string // Parameters lists the parameter set, at least one of which is required.
}

func (e *MissingParametersError) Error() string {
	return fmt.Sprintf("%s requires at least one of: %s", e.Operation, strings.Join(e.Parameters, ", "))
}

// resourceError maps a request failure onto the typed resource errors. A 404 for an
// operation addressing a specific ID becomes a NotFoundError, any other API failure becomes
// an OperationRejectedError, and transport level failures pass through unchanged.
func resourceError(err error, operation, resource, id string) error {
	var apiErr *response.APIError
	if !errors.As(err, &apiErr) {
		return err
	}

	if apiErr.StatusCode == http.StatusNotFound && id != "" {
		return &NotFoundError{Resource: resource, ID: id, Err: apiErr}
	}

	return &OperationRejectedError{Operation: operation, StatusCode: apiErr.StatusCode, Err: apiErr}
}
