package httpclient

import (
	"time"
)

// ModifyHTTPTimeout adjusts the timeout of the underlying HTTP client.
func (c *Client) ModifyHTTPTimeout(newTimeout time.Duration) {
	c.lock.Lock()
	defer c.lock.Unlock()
	c.http.Timeout = newTimeout
}
