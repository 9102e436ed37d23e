// httpclient/downloadrequest.go
package httpclient

import (
	"context"
	"io"
	"net/http"

	"github.com/deploymenttheory/go-api-client-jamfpro/response"
	"go.uber.org/zap"
)

// DoDownloadRequest performs a GET request against the given endpoint and streams the
// response body to the provided writer. It follows the same authentication, header setting
// and URL construction as DoRequest, but bypasses content type based unmarshalling so that
// payloads of any size can be written out without buffering them in memory.
//
// Note:
// The response body is fully consumed and closed before returning.
func (c *Client) DoDownloadRequest(endpoint string, out io.Writer) (*http.Response, error) {
	log := c.Logger

	if _, err := c.Integration.Token(); err != nil {
		return nil, err
	}

	ctx, requestID, err := c.Concurrency.AcquireConcurrencyPermit(context.Background())
	if err != nil {
		return nil, log.Error("Failed to acquire concurrency permit", zap.Error(err))
	}

	defer c.Concurrency.ReleaseConcurrencyPermit(requestID)

	url := c.Integration.Domain() + endpoint
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	c.Integration.SetRequestHeaders(req)
	req = req.WithContext(ctx)

	resp, err := c.http.Do(req)
	if err != nil {
		log.Error("Failed to send download request", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, response.HandleAPIErrorResponse(resp, log)
	}

	defer resp.Body.Close()
	if _, err := io.Copy(out, resp.Body); err != nil {
		return nil, err
	}

	return resp, nil
}
