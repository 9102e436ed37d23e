// httpclient/config_test.go
package httpclient

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromFile(t *testing.T) {
	configJSON := `{
		"log_level": "LogLevelDebug",
		"log_output_format": "console",
		"log_console_separator": "  ",
		"hide_sensitive_data": true,
		"cookie_jar_enabled": true,
		"custom_cookies": [{"name": "jpro-session", "value": "abc123"}],
		"insecure_skip_verify": true,
		"proxy_url": "http://proxy.internal:3128",
		"proxy_username": "proxy-user",
		"proxy_password": "proxy-pass",
		"custom_timeout": "30s",
		"token_refresh_buffer_period": "4m",
		"follow_redirects": true,
		"max_redirects": 8,
		"max_concurrent_requests": 3,
		"enable_concurrency_management": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(configJSON), 0600))

	config, err := LoadConfigFromFile(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, "LogLevelDebug", config.LogLevel)
	assert.Equal(t, "console", config.LogOutputFormat)
	assert.Equal(t, "  ", config.LogConsoleSeparator)
	assert.True(t, config.HideSensitiveData)
	assert.True(t, config.CookieJarEnabled)
	require.Len(t, config.CustomCookies, 1)
	assert.Equal(t, "jpro-session", config.CustomCookies[0].Name)
	assert.Equal(t, "abc123", config.CustomCookies[0].Value)
	assert.True(t, config.InsecureSkipVerify)
	assert.Equal(t, "http://proxy.internal:3128", config.ProxyURL)
	assert.Equal(t, "proxy-user", config.ProxyUsername)
	assert.Equal(t, "proxy-pass", config.ProxyPassword)
	assert.Equal(t, 30*time.Second, config.CustomTimeout)
	assert.Equal(t, 4*time.Minute, config.TokenRefreshBufferPeriod)
	assert.True(t, config.FollowRedirects)
	assert.Equal(t, 8, config.MaxRedirects)
	assert.Equal(t, 3, config.MaxConcurrentRequests)
	assert.True(t, config.EnableConcurrencyManagement)
}

func TestLoadConfigFromFile_AppliesDefaults(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{}`), 0600))

	config, err := LoadConfigFromFile(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, DefaultLogLevelString, config.LogLevel)
	assert.Equal(t, DefaultLogOutputFormatString, config.LogOutputFormat)
	assert.Equal(t, DefaultCustomTimeout, config.CustomTimeout)
	assert.Equal(t, DefaultTokenRefreshBufferPeriod, config.TokenRefreshBufferPeriod)
	assert.Equal(t, DefaultMaxConcurrentRequests, config.MaxConcurrentRequests)
}

func TestLoadConfigFromFile_RejectsNonJSONExtension(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{}`), 0600))

	_, err := LoadConfigFromFile(tmpFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid file path")
}

func TestLoadConfigFromFile_RejectsMalformedJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{"log_level": `), 0600))

	_, err := LoadConfigFromFile(tmpFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "could not unmarshal JSON")
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "LogLevelWarn")
	t.Setenv("LOG_OUTPUT_FORMAT", "json")
	t.Setenv("HIDE_SENSITIVE_DATA", "true")
	t.Setenv("CUSTOM_TIMEOUT", "45s")
	t.Setenv("MAX_CONCURRENT_REQUESTS", "4")
	t.Setenv("CUSTOM_COOKIES", "jpro-session=abc123; region=eu-west-1")
	t.Setenv("PROXY_URL", "http://proxy.internal:3128")

	config, err := LoadConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, "LogLevelWarn", config.LogLevel)
	assert.Equal(t, "json", config.LogOutputFormat)
	assert.True(t, config.HideSensitiveData)
	assert.Equal(t, 45*time.Second, config.CustomTimeout)
	assert.Equal(t, 4, config.MaxConcurrentRequests)
	assert.Equal(t, "http://proxy.internal:3128", config.ProxyURL)

	require.Len(t, config.CustomCookies, 2)
	assert.Equal(t, "jpro-session", config.CustomCookies[0].Name)
	assert.Equal(t, "abc123", config.CustomCookies[0].Value)
	assert.Equal(t, "region", config.CustomCookies[1].Name)
	assert.Equal(t, "eu-west-1", config.CustomCookies[1].Value)
}

func TestLoadConfigFromEnv_FallsBackToDefaults(t *testing.T) {
	for _, key := range []string{"LOG_LEVEL", "LOG_OUTPUT_FORMAT", "CUSTOM_TIMEOUT", "MAX_CONCURRENT_REQUESTS", "CUSTOM_COOKIES"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	config, err := LoadConfigFromEnv()
	require.NoError(t, err)

	assert.Equal(t, DefaultLogLevelString, config.LogLevel)
	assert.Equal(t, DefaultLogOutputFormatString, config.LogOutputFormat)
	assert.Equal(t, DefaultCustomTimeout, config.CustomTimeout)
	assert.Equal(t, DefaultMaxConcurrentRequests, config.MaxConcurrentRequests)
	assert.Empty(t, config.CustomCookies)
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	assert.True(t, getEnvAsBool("TEST_BOOL", false))

	t.Setenv("TEST_BOOL", "not-a-bool")
	assert.True(t, getEnvAsBool("TEST_BOOL", true))

	assert.False(t, getEnvAsBool("TEST_BOOL_UNSET", false))
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_INT", "7")
	assert.Equal(t, 7, getEnvAsInt("TEST_INT", 3))

	t.Setenv("TEST_INT", "seven")
	assert.Equal(t, 3, getEnvAsInt("TEST_INT", 3))

	assert.Equal(t, 3, getEnvAsInt("TEST_INT_UNSET", 3))
}

func TestGetEnvAsDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "90s")
	assert.Equal(t, 90*time.Second, getEnvAsDuration("TEST_DURATION", time.Minute))

	t.Setenv("TEST_DURATION", "ninety")
	assert.Equal(t, time.Minute, getEnvAsDuration("TEST_DURATION", time.Minute))

	assert.Equal(t, time.Minute, getEnvAsDuration("TEST_DURATION_UNSET", time.Minute))
}

func TestParseCustomCookies(t *testing.T) {
	cookies := parseCustomCookies("a=1; b=2;malformed")
	require.Len(t, cookies, 2)
	assert.Equal(t, "a", cookies[0].Name)
	assert.Equal(t, "1", cookies[0].Value)
	assert.Equal(t, "b", cookies[1].Name)
	assert.Equal(t, "2", cookies[1].Value)
}
