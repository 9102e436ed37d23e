// cookiejar/cookiejar.go

/* The cookiejar package provides utility functions for managing cookies within an HTTP client
context in Go. This package aims to enhance HTTP client functionalities by offering cookie
handling capabilities, including initialization of a cookie jar, application of custom cookies,
redaction of sensitive cookies, and parsing of cookies from HTTP headers. */

package cookiejar

import (
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/deploymenttheory/go-api-client-jamfpro/logger"
	"go.uber.org/zap"
)

// SetupCookieJar initializes the HTTP client with a cookie jar if enabled in the configuration.
func SetupCookieJar(client *http.Client, enableCookieJar bool, log logger.Logger) error {
	if enableCookieJar {
		jar, err := cookiejar.New(nil) // nil options use default options
		if err != nil {
			log.Error("Failed to create cookie jar", zap.Error(err))
			return fmt.Errorf("setupCookieJar failed: %w", err)
		}
		client.Jar = jar
	}
	return nil
}

// ApplyCustomCookies seeds the client's cookie jar with the custom cookies supplied in the
// configuration, keyed to the instance URL so they travel with every request to that host.
// A jar is created on demand when the client does not have one yet. Only cookie names are
// logged; values stay out of the logs.
func ApplyCustomCookies(client *http.Client, rawURL string, cookies []*http.Cookie, log logger.Logger) error {
	if len(cookies) == 0 {
		return nil
	}

	if client.Jar == nil {
		if err := SetupCookieJar(client, true, log); err != nil {
			return err
		}
	}

	cookieURL, err := url.Parse(rawURL)
	if err != nil {
		log.Error("Failed to parse URL for custom cookies", zap.String("url", rawURL), zap.Error(err))
		return err
	}

	client.Jar.SetCookies(cookieURL, cookies)

	cookieNames := make([]string, 0, len(cookies))
	for _, cookie := range cookies {
		cookieNames = append(cookieNames, cookie.Name)
	}
	log.Debug("Applied custom cookies", zap.Strings("Cookies", cookieNames))

	return nil
}

// RedactSensitiveCookies redacts sensitive information from cookies.
// It takes a slice of *http.Cookie and returns a redacted slice of *http.Cookie.
func RedactSensitiveCookies(cookies []*http.Cookie) []*http.Cookie {
	// Define sensitive cookie names that should be redacted.
	sensitiveCookieNames := map[string]bool{
		"SessionID": true, // Example sensitive cookie name
		// More sensitive cookie names will be added as needed.
	}

	// Iterate over the cookies and redact sensitive ones.
	for _, cookie := range cookies {
		if _, found := sensitiveCookieNames[cookie.Name]; found {
			cookie.Value = "REDACTED"
		}
	}

	return cookies
}

// Utility function to convert cookies from http.Header to []*http.Cookie.
// This can be useful if cookies are stored in http.Header (e.g., from a response).
func CookiesFromHeader(header http.Header) []*http.Cookie {
	cookies := []*http.Cookie{}
	for _, cookieHeader := range header["Set-Cookie"] {
		if cookie := ParseCookieHeader(cookieHeader); cookie != nil {
			cookies = append(cookies, cookie)
		}
	}
	return cookies
}

// ParseCookieHeader parses a single Set-Cookie header and returns an *http.Cookie.
func ParseCookieHeader(header string) *http.Cookie {
	headerParts := strings.Split(header, ";")
	if len(headerParts) > 0 {
		cookieParts := strings.SplitN(headerParts[0], "=", 2)
		if len(cookieParts) == 2 {
			return &http.Cookie{Name: cookieParts[0], Value: cookieParts[1]}
		}
	}
	return nil
}
