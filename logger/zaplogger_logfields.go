// zaplogger_logfields.go
package logger

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/deploymenttheory/go-api-client-jamfpro/headers/redact"
	"go.uber.org/zap"
)

// sensitiveCookieNames lists cookie names whose values are never written to logs.
var sensitiveCookieNames = map[string]bool{
	"SessionID": true,
}

// LogRequestStart logs the initiation of an HTTP request, including the HTTP method, URL, and headers.
// Header values carrying credentials are redacted before they reach the log output.
// This method is intended to be called at the beginning of an HTTP request lifecycle.
func (d *defaultLogger) LogRequestStart(event string, requestID string, userID string, method string, url string, headers map[string][]string) {
	if d.logLevel > LogLevelInfo {
		return
	}
	redactedHeaders := make(map[string]string, len(headers))
	for key, values := range headers {
		redactedHeaders[key] = redact.RedactSensitiveHeaderData(true, key, strings.Join(values, ", "))
	}
	fields := []zap.Field{
		zap.String("event", event),
		zap.String("request_id", requestID),
		zap.String("user_id", userID),
		zap.String("method", method),
		zap.String("url", url),
		zap.Any("headers", redactedHeaders),
	}
	d.logger.Info("HTTP request started", fields...)
}

// LogRequestEnd logs the completion of an HTTP request, including the HTTP method, URL, status code, and duration.
// This method is intended to be called at the end of an HTTP request lifecycle.
func (d *defaultLogger) LogRequestEnd(event string, method string, url string, statusCode int, duration time.Duration) {
	if d.logLevel > LogLevelInfo {
		return
	}
	fields := []zap.Field{
		zap.String("event", event),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status_code", statusCode),
		zap.Duration("duration", duration),
	}
	d.logger.Info("HTTP request completed", fields...)
}

// LogError logs an error that occurs during the processing of an HTTP request, including the HTTP method,
// URL, status code, the server's status message, and the raw response body for diagnosis.
// This method is intended to be called when an error is encountered during an HTTP request lifecycle.
func (d *defaultLogger) LogError(event string, method string, url string, statusCode int, serverStatusMessage string, err error, rawResponse string) {
	if d.logLevel > LogLevelError {
		return
	}
	errorMessage := ""
	if err != nil {
		errorMessage = err.Error()
	}
	fields := []zap.Field{
		zap.String("event", event),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status_code", statusCode),
		zap.String("status_message", serverStatusMessage),
		zap.String("error_message", errorMessage),
		zap.String("raw_response", rawResponse),
	}
	d.logger.Error("Error during HTTP request", fields...)
}

// LogAuthTokenError logs a failure to obtain, refresh, or invalidate an authentication token.
// This method is intended to be called from the authentication flow when the token lifecycle breaks.
func (d *defaultLogger) LogAuthTokenError(event string, method string, url string, statusCode int, err error) {
	if d.logLevel > LogLevelError {
		return
	}
	errorMessage := ""
	if err != nil {
		errorMessage = err.Error()
	}
	fields := []zap.Field{
		zap.String("event", event),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status_code", statusCode),
		zap.String("error_message", errorMessage),
	}
	d.logger.Error("Authentication token error", fields...)
}

// LogCookies logs the cookies attached to an outgoing *http.Request or received on an *http.Response.
// The direction parameter distinguishes "incoming" from "outgoing" cookies. Values of sensitive cookies
// are redacted before logging.
func (d *defaultLogger) LogCookies(direction string, obj interface{}, method string, url string) {
	if d.logLevel > LogLevelDebug {
		return
	}
	var cookies []*http.Cookie
	switch v := obj.(type) {
	case *http.Request:
		cookies = v.Cookies()
	case *http.Response:
		cookies = v.Cookies()
	default:
		return
	}
	if len(cookies) == 0 {
		return
	}
	redactedCookies := make([]string, 0, len(cookies))
	for _, cookie := range cookies {
		value := cookie.Value
		if sensitiveCookieNames[cookie.Name] {
			value = "REDACTED"
		}
		redactedCookies = append(redactedCookies, fmt.Sprintf("%s=%s", cookie.Name, value))
	}
	fields := []zap.Field{
		zap.String("direction", direction),
		zap.String("method", method),
		zap.String("url", url),
		zap.Strings("cookies", redactedCookies),
	}
	d.logger.Debug("HTTP cookies", fields...)
}

// LogResponse logs the response received for an HTTP request, including the status code, response body,
// headers, and the total request duration. Response bodies can be large, so this logs at debug level only.
func (d *defaultLogger) LogResponse(event string, method string, url string, statusCode int, responseBody string, responseHeaders map[string][]string, duration time.Duration) {
	if d.logLevel > LogLevelDebug {
		return
	}
	fields := []zap.Field{
		zap.String("event", event),
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status_code", statusCode),
		zap.String("response_body", responseBody),
		zap.Any("response_headers", responseHeaders),
		zap.Duration("duration", duration),
	}
	d.logger.Debug("HTTP response received", fields...)
}
