// httpclient/request.go
package httpclient

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/deploymenttheory/go-api-client-jamfpro/response"
	"go.uber.org/zap"
)

// DoRequest constructs and executes an HTTP request based on the provided method, endpoint,
// request body, and output variable. Requests are executed exactly once, regardless of the
// idempotency of the method: transient failures and rate limits surface to the caller as
// errors rather than being retried internally.
//
// Parameters:
//   - method: The HTTP method to be used for the request. Supported methods are GET, PUT,
//     DELETE, HEAD, OPTIONS, TRACE, POST and PATCH.
//   - endpoint: The target API endpoint for the request. This should be a relative path that
//     will be appended to the base URL of the configured API integration.
//   - body: The payload for the request, which will be serialized by the API integration
//     based on the content type it selects for the endpoint. May be nil for methods that do
//     not send a payload.
//   - out: A pointer to an output variable where the response will be deserialized. May be
//     nil when the caller does not need the response body decoded.
//
// Returns:
//   - *http.Response: The HTTP response received from the server. On a non-2xx status this is
//     returned alongside the parsed API error so that callers can still inspect the status
//     and headers.
//   - error: An error object indicating failure during request execution. Transport errors
//     are returned as-is; HTTP error statuses are returned as a *response.APIError.
//
// Note:
//   - The caller is responsible for closing the response body when not nil to avoid resource
//     leaks.
//   - The function ensures concurrency control by acquiring and releasing a concurrency
//     permit around the request execution.
func (c *Client) DoRequest(method, endpoint string, body, out interface{}) (*http.Response, error) {
	log := c.Logger

	if !IsIdempotentHTTPMethod(method) && !IsNonIdempotentHTTPMethod(method) {
		return nil, log.Error("HTTP method not supported", zap.String("method", method))
	}

	resp, err := c.doRequest(context.Background(), method, endpoint, body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 400 {
		if resp.StatusCode >= 300 {
			log.Warn("Redirect response received", zap.Int("status_code", resp.StatusCode), zap.String("location", resp.Header.Get("Location")))
		}
		return resp, response.HandleAPISuccessResponse(resp, out, log)
	}

	return resp, response.HandleAPIErrorResponse(resp, log)
}

func (c *Client) doRequest(ctx context.Context, method, endpoint string, body interface{}) (*http.Response, error) {
	log := c.Logger

	if _, err := c.Integration.Token(); err != nil {
		return nil, err
	}

	ctx, requestID, err := c.Concurrency.AcquireConcurrencyPermit(ctx)
	if err != nil {
		return nil, log.Error("Failed to acquire concurrency permit", zap.Error(err))
	}

	defer c.Concurrency.ReleaseConcurrencyPermit(requestID)

	requestData, err := c.Integration.MarshalRequest(body, method, endpoint)
	if err != nil {
		return nil, err
	}

	url := c.Integration.Domain() + endpoint
	req, err := http.NewRequest(method, url, bytes.NewBuffer(requestData))
	if err != nil {
		return nil, err
	}

	c.Integration.SetRequestHeaders(req)
	req = req.WithContext(ctx)

	log.LogRequestStart("http_request_started", requestID.String(), "", method, url, req.Header)

	startTime := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Error("Failed to send request", zap.String("method", method), zap.String("endpoint", endpoint), zap.Error(err))
		return nil, err
	}

	duration := time.Since(startTime)

	if c.config.EnableConcurrencyManagement {
		c.Concurrency.EvaluateAndAdjustConcurrency(resp, duration)
		c.Concurrency.UpdateTTFBMetrics(duration)
		c.Concurrency.UpdateThroughputMetrics(resp.ContentLength, duration)
	}

	log.LogCookies("incoming", resp, method, endpoint)
	CheckDeprecationHeader(resp, log)

	log.LogRequestEnd("http_request_completed", method, url, resp.StatusCode, duration)

	return resp, nil
}
