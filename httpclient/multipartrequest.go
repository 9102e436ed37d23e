// httpclient/multipartrequest.go
package httpclient

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/deploymenttheory/go-api-client-jamfpro/response"
	"go.uber.org/zap"
)

// DoMultiPartRequest creates and executes a multipart/form-data HTTP request for file uploads
// and form fields. The multipart message body is built by the API integration, which owns the
// encoding rules of the target API, while this method handles authentication, concurrency
// control and response handling.
//
// Parameters:
//   - method: The HTTP method to use. Only POST and PUT are supported for multipart requests.
//   - endpoint: The API endpoint to which the request will be sent.
//   - fields: A map of additional form fields and their values to include in the multipart
//     message.
//   - files: A map of form field names to file paths. The files are read from disk and
//     included as file attachments.
//   - out: A pointer to a variable where the unmarshaled response will be stored.
//
// Returns:
//   - A pointer to the http.Response received from the server.
//   - An error if the request could not be sent or the response could not be processed.
//
// Note:
// The caller should handle closing the response body when the response is not nil to prevent
// resource leaks.
func (c *Client) DoMultiPartRequest(method, endpoint string, fields map[string]string, files map[string]string, out interface{}) (*http.Response, error) {
	log := c.Logger

	if method != http.MethodPost && method != http.MethodPut {
		return nil, log.Error("HTTP method not supported for multipart request", zap.String("method", method))
	}

	if _, err := c.Integration.Token(); err != nil {
		return nil, err
	}

	ctx, requestID, err := c.Concurrency.AcquireConcurrencyPermit(context.Background())
	if err != nil {
		return nil, log.Error("Failed to acquire concurrency permit", zap.Error(err))
	}

	defer c.Concurrency.ReleaseConcurrencyPermit(requestID)

	log.Debug("Executing multipart request", zap.String("method", method), zap.String("endpoint", endpoint))

	body, contentType, err := c.Integration.MarshalMultipartRequest(fields, files)
	if err != nil {
		return nil, err
	}

	url := c.Integration.Domain() + endpoint
	req, err := http.NewRequest(method, url, bytes.NewBuffer(body))
	if err != nil {
		log.Error("Failed to create HTTP request", zap.Error(err))
		return nil, err
	}

	c.Integration.SetRequestHeaders(req)
	req.Header.Set("Content-Type", contentType)
	c.LogHeaders(req, c.config.HideSensitiveData)
	req = req.WithContext(ctx)

	startTime := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Error("Failed to send request", zap.String("method", method), zap.String("endpoint", endpoint), zap.Error(err))
		return nil, err
	}

	duration := time.Since(startTime)
	log.Debug("Request sent successfully", zap.String("method", method), zap.String("endpoint", endpoint), zap.Int("status_code", resp.StatusCode), zap.Duration("duration", duration))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp, response.HandleAPISuccessResponse(resp, out, log)
	}

	return resp, response.HandleAPIErrorResponse(resp, log)
}
