// httpclient/config.go
// Description: This file contains functions to load http client configuration values from a
// JSON file or from environment variables.
package httpclient

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LoadConfigFromFile loads http client configuration settings from a JSON file. Duration
// fields are expressed as Go duration strings, e.g. "30s" or "2m".
func LoadConfigFromFile(filepath string) (*ClientConfig, error) {
	absPath, err := validateFilePath(filepath)
	if err != nil {
		return nil, fmt.Errorf("invalid file path: %v", err)
	}

	byteValue, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("could not read file: %v", err)
	}

	var file configFile
	if err := json.Unmarshal(byteValue, &file); err != nil {
		return nil, fmt.Errorf("could not unmarshal JSON: %v", err)
	}

	config := file.clientConfig()
	SetDefaultValuesClientConfig(config)

	return config, nil
}

// LoadConfigFromEnv loads http client configuration settings from environment variables,
// sourcing a .env file from the working directory first when one exists. Any variable that
// is not set falls back to the default values defined in the constants.
func LoadConfigFromEnv() (*ClientConfig, error) {
	_ = godotenv.Load()

	config := &ClientConfig{
		LogLevel:                    getEnvAsString("LOG_LEVEL", DefaultLogLevelString),
		LogOutputFormat:             getEnvAsString("LOG_OUTPUT_FORMAT", DefaultLogOutputFormatString),
		LogConsoleSeparator:         getEnvAsString("LOG_CONSOLE_SEPARATOR", DefaultLogConsoleSeparator),
		ExportLogs:                  getEnvAsBool("EXPORT_LOGS", DefaultExportLogs),
		LogExportPath:               getEnvAsString("LOG_EXPORT_PATH", DefaultLogExportPath),
		HideSensitiveData:           getEnvAsBool("HIDE_SENSITIVE_DATA", DefaultHideSensitiveData),
		CookieJarEnabled:            getEnvAsBool("COOKIE_JAR_ENABLED", DefaultCookieJarEnabled),
		InsecureSkipVerify:          getEnvAsBool("INSECURE_SKIP_VERIFY", DefaultInsecureSkipVerify),
		ProxyURL:                    getEnvAsString("PROXY_URL", ""),
		ProxyUsername:               getEnvAsString("PROXY_USERNAME", ""),
		ProxyPassword:               getEnvAsString("PROXY_PASSWORD", ""),
		CustomTimeout:               getEnvAsDuration("CUSTOM_TIMEOUT", DefaultCustomTimeout),
		TokenRefreshBufferPeriod:    getEnvAsDuration("TOKEN_REFRESH_BUFFER_PERIOD", DefaultTokenRefreshBufferPeriod),
		FollowRedirects:             getEnvAsBool("FOLLOW_REDIRECTS", DefaultFollowRedirects),
		MaxRedirects:                getEnvAsInt("MAX_REDIRECTS", DefaultMaxRedirects),
		MaxConcurrentRequests:       getEnvAsInt("MAX_CONCURRENT_REQUESTS", DefaultMaxConcurrentRequests),
		EnableConcurrencyManagement: getEnvAsBool("ENABLE_CONCURRENCY_MANAGEMENT", DefaultEnableConcurrencyManagement),
	}

	if customCookies := getEnvAsString("CUSTOM_COOKIES", ""); customCookies != "" {
		config.CustomCookies = parseCustomCookies(customCookies)
	}

	return config, nil
}

// configFile mirrors ClientConfig for file loading, with durations as strings so that config
// files can say "30s" rather than a nanosecond count.
type configFile struct {
	LogLevel                    string   `json:"log_level"`
	LogOutputFormat             string   `json:"log_output_format"`
	LogConsoleSeparator         string   `json:"log_console_separator"`
	ExportLogs                  bool     `json:"export_logs"`
	LogExportPath               string   `json:"log_export_path"`
	HideSensitiveData           bool     `json:"hide_sensitive_data"`
	CookieJarEnabled            bool     `json:"cookie_jar_enabled"`
	CustomCookies               []cookie `json:"custom_cookies"`
	InsecureSkipVerify          bool     `json:"insecure_skip_verify"`
	ProxyURL                    string   `json:"proxy_url"`
	ProxyUsername               string   `json:"proxy_username"`
	ProxyPassword               string   `json:"proxy_password"`
	CustomTimeout               string   `json:"custom_timeout"`
	TokenRefreshBufferPeriod    string   `json:"token_refresh_buffer_period"`
	FollowRedirects             bool     `json:"follow_redirects"`
	MaxRedirects                int      `json:"max_redirects"`
	MaxConcurrentRequests       int      `json:"max_concurrent_requests"`
	EnableConcurrencyManagement bool     `json:"enable_concurrency_management"`
}

type cookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (f *configFile) clientConfig() *ClientConfig {
	config := &ClientConfig{
		LogLevel:                    f.LogLevel,
		LogOutputFormat:             f.LogOutputFormat,
		LogConsoleSeparator:         f.LogConsoleSeparator,
		ExportLogs:                  f.ExportLogs,
		LogExportPath:               f.LogExportPath,
		HideSensitiveData:           f.HideSensitiveData,
		CookieJarEnabled:            f.CookieJarEnabled,
		InsecureSkipVerify:          f.InsecureSkipVerify,
		ProxyURL:                    f.ProxyURL,
		ProxyUsername:               f.ProxyUsername,
		ProxyPassword:               f.ProxyPassword,
		CustomTimeout:               parseDuration(f.CustomTimeout, DefaultCustomTimeout),
		TokenRefreshBufferPeriod:    parseDuration(f.TokenRefreshBufferPeriod, DefaultTokenRefreshBufferPeriod),
		FollowRedirects:             f.FollowRedirects,
		MaxRedirects:                f.MaxRedirects,
		MaxConcurrentRequests:       f.MaxConcurrentRequests,
		EnableConcurrencyManagement: f.EnableConcurrencyManagement,
	}

	for _, c := range f.CustomCookies {
		config.CustomCookies = append(config.CustomCookies, &http.Cookie{Name: c.Name, Value: c.Value})
	}

	return config
}

// parseCustomCookies parses a semicolon separated string of name=value pairs.
func parseCustomCookies(cookieStr string) []*http.Cookie {
	var cookies []*http.Cookie
	for _, pair := range strings.Split(cookieStr, ";") {
		kv := strings.SplitN(pair, "=", 2)
		if len(kv) == 2 {
			cookies = append(cookies, &http.Cookie{
				Name:  strings.TrimSpace(kv[0]),
				Value: strings.TrimSpace(kv[1]),
			})
		}
	}
	return cookies
}

func getEnvAsString(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		return parseDuration(value, defaultValue)
	}
	return defaultValue
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	if value == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
