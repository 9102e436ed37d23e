// httpclient/client.go
/* The httpclient package provides a configurable HTTP client tailored for interacting with
Jamf APIs. It supports bearer token and OAuth2 client credentials authentication through a
pluggable API integration, and is designed with a focus on concurrency management, structured
error handling, and flexible configuration options. The main Client structure encapsulates all
necessary components, like the API integration, the concurrency handler, and an embedded
standard HTTP client. */
package httpclient

import (
	"crypto/tls"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/deploymenttheory/go-api-client-jamfpro/concurrency"
	"github.com/deploymenttheory/go-api-client-jamfpro/cookiejar"
	"github.com/deploymenttheory/go-api-client-jamfpro/logger"
	"github.com/deploymenttheory/go-api-client-jamfpro/proxy"
	"github.com/deploymenttheory/go-api-client-jamfpro/redirecthandler"
	"go.uber.org/zap"
)

// Master struct/object
type Client struct {
	// Private
	config ClientConfig
	http   *http.Client
	lock   sync.Mutex

	// Exported
	Logger      logger.Logger
	Concurrency *concurrency.ConcurrencyHandler
	Integration APIIntegration
}

// Options/Variables for Client
type ClientConfig struct {
	Integration APIIntegration `json:"-"`

	// Log
	LogLevel            string `json:"log_level"`
	LogOutputFormat     string `json:"log_output_format"` // Use "json" for JSON format, "pretty" for human-readable format
	LogConsoleSeparator string `json:"log_console_separator"`
	ExportLogs          bool   `json:"export_logs"`
	LogExportPath       string `json:"log_export_path"`
	HideSensitiveData   bool   `json:"hide_sensitive_data"`

	// Cookies
	CookieJarEnabled bool           `json:"cookie_jar_enabled"`
	CustomCookies    []*http.Cookie `json:"custom_cookies"`

	// TLS. Certificate verification is on unless this is set.
	InsecureSkipVerify bool `json:"insecure_skip_verify"`

	// Proxy. Traffic goes direct unless a proxy URL is set.
	ProxyURL      string `json:"proxy_url"`
	ProxyUsername string `json:"proxy_username"`
	ProxyPassword string `json:"proxy_password"`

	// Timeouts
	CustomTimeout            time.Duration `json:"custom_timeout"`
	TokenRefreshBufferPeriod time.Duration `json:"token_refresh_buffer_period"`

	// Redirects
	FollowRedirects bool `json:"follow_redirects"`
	MaxRedirects    int  `json:"max_redirects"`

	// Concurrency
	MaxConcurrentRequests       int  `json:"max_concurrent_requests"`
	EnableConcurrencyManagement bool `json:"enable_concurrency_management"`
}

// BuildClient creates a new HTTP client with the provided configuration.
func BuildClient(config ClientConfig, populateDefaultValues bool) (*Client, error) {

	err := validateClientConfig(&config, populateDefaultValues)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %v", err)
	}

	// zap only knows "json" and "console" encodings.
	encoding := config.LogOutputFormat
	if encoding == "pretty" {
		encoding = "console"
	}

	parsedLogLevel := logger.ParseLogLevelFromString(config.LogLevel)
	log := logger.BuildLogger(parsedLogLevel, encoding, config.LogConsoleSeparator, config.ExportLogs, config.LogExportPath)
	log.SetLevel(parsedLogLevel)

	log.Info(fmt.Sprintf("initializing new http client, domain: %s", config.Integration.Domain()))

	httpClient := &http.Client{
		Timeout: config.CustomTimeout,
	}

	if config.InsecureSkipVerify {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
		log.Warn("TLS certificate verification is disabled, traffic can be intercepted")
	}

	if config.ProxyURL != "" {
		if err := proxy.SetupProxy(httpClient, config.ProxyURL, config.ProxyUsername, config.ProxyPassword, log); err != nil {
			log.Error("Failed to set up proxy", zap.Error(err))
			return nil, err
		}
	}

	if err := cookiejar.SetupCookieJar(httpClient, config.CookieJarEnabled, log); err != nil {
		log.Error("Failed to set up cookie jar", zap.Error(err))
		return nil, err
	}

	if len(config.CustomCookies) > 0 {
		if err := cookiejar.ApplyCustomCookies(httpClient, config.Integration.Domain(), config.CustomCookies, log); err != nil {
			log.Error("Failed to apply custom cookies", zap.Error(err))
			return nil, err
		}
	}

	if err := redirecthandler.SetupRedirectHandler(httpClient, config.FollowRedirects, config.MaxRedirects, log); err != nil {
		log.Error("Failed to set up redirect handler", zap.Error(err))
		return nil, err
	}

	concurrencyMetrics := &concurrency.ConcurrencyMetrics{}
	concurrencyHandler := concurrency.NewConcurrencyHandler(
		config.MaxConcurrentRequests,
		log,
		concurrencyMetrics,
	)

	client := &Client{
		config:      config,
		http:        httpClient,
		Logger:      log,
		Concurrency: concurrencyHandler,
		Integration: config.Integration,
	}

	log.Debug("New API client initialized",
		zap.String("Authentication Method", client.Integration.AuthMethodDescriptor()),
		zap.String("Logging Level", config.LogLevel),
		zap.String("Log Encoding Format", config.LogOutputFormat),
		zap.String("Log Separator", config.LogConsoleSeparator),
		zap.Bool("Hide Sensitive Data In Logs", config.HideSensitiveData),
		zap.Bool("Cookie Jar Enabled", config.CookieJarEnabled),
		zap.Bool("Skip TLS Verification", config.InsecureSkipVerify),
		zap.String("Proxy URL", config.ProxyURL),
		zap.Int("Max Concurrent Requests", config.MaxConcurrentRequests),
		zap.Bool("Enable Concurrency Management", config.EnableConcurrencyManagement),
		zap.Bool("Follow Redirects", config.FollowRedirects),
		zap.Int("Max Redirects", config.MaxRedirects),
		zap.Duration("Token Refresh Buffer Period", config.TokenRefreshBufferPeriod),
		zap.Duration("Custom Timeout", config.CustomTimeout),
	)

	return client, nil
}

// HTTPClient exposes the underlying standard library client so that integrations can reuse
// its transport, cookie jar and redirect policy for auth endpoint calls.
func (c *Client) HTTPClient() *http.Client {
	return c.http
}

// TokenRefreshBufferPeriod returns the configured buffer period used when judging whether a
// held token is close enough to expiry to be worth refreshing.
func (c *Client) TokenRefreshBufferPeriod() time.Duration {
	return c.config.TokenRefreshBufferPeriod
}
