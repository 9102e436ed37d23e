// httpclient/config_validation_test.go
package httpclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateClientConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(config *ClientConfig)
		wantErr string
	}{
		{
			name:   "valid configuration",
			mutate: func(config *ClientConfig) {},
		},
		{
			name: "missing integration",
			mutate: func(config *ClientConfig) {
				config.Integration = nil
			},
			wantErr: "no api integration supplied",
		},
		{
			name: "unknown log level",
			mutate: func(config *ClientConfig) {
				config.LogLevel = "LogLevelChatty"
			},
			wantErr: "invalid log level",
		},
		{
			name: "unknown log output format",
			mutate: func(config *ClientConfig) {
				config.LogOutputFormat = "xml"
			},
			wantErr: "invalid log output format",
		},
		{
			name: "export enabled without path",
			mutate: func(config *ClientConfig) {
				config.ExportLogs = true
				config.LogExportPath = ""
			},
			wantErr: "log export path is required",
		},
		{
			name: "concurrency below one",
			mutate: func(config *ClientConfig) {
				config.MaxConcurrentRequests = 0
			},
			wantErr: "maximum concurrent requests cannot be less than 1",
		},
		{
			name: "negative timeout",
			mutate: func(config *ClientConfig) {
				config.CustomTimeout = -1 * time.Second
			},
			wantErr: "timeout cannot be less than 0 seconds",
		},
		{
			name: "negative refresh buffer",
			mutate: func(config *ClientConfig) {
				config.TokenRefreshBufferPeriod = -1 * time.Second
			},
			wantErr: "refresh buffer period cannot be less than 0 seconds",
		},
		{
			name: "redirects enabled without max redirects",
			mutate: func(config *ClientConfig) {
				config.FollowRedirects = true
				config.MaxRedirects = 0
			},
			wantErr: "max redirects cannot be less than 1",
		},
		{
			name: "proxy url with credentials",
			mutate: func(config *ClientConfig) {
				config.ProxyURL = "http://proxy.internal:3128"
				config.ProxyUsername = "proxy-user"
				config.ProxyPassword = "proxy-pass"
			},
		},
		{
			name: "malformed proxy url",
			mutate: func(config *ClientConfig) {
				config.ProxyURL = "proxy.internal:3128"
			},
			wantErr: "invalid proxy URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validTestConfig()
			tt.mutate(&config)

			err := validateClientConfig(&config, false)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestSetDefaultValuesClientConfig(t *testing.T) {
	config := &ClientConfig{}
	SetDefaultValuesClientConfig(config)

	assert.Equal(t, DefaultLogLevelString, config.LogLevel)
	assert.Equal(t, DefaultLogOutputFormatString, config.LogOutputFormat)
	assert.Equal(t, DefaultLogConsoleSeparator, config.LogConsoleSeparator)
	assert.Equal(t, DefaultLogExportPath, config.LogExportPath)
	assert.Equal(t, DefaultCustomTimeout, config.CustomTimeout)
	assert.Equal(t, DefaultTokenRefreshBufferPeriod, config.TokenRefreshBufferPeriod)
	assert.Equal(t, DefaultMaxRedirects, config.MaxRedirects)
	assert.Equal(t, DefaultMaxConcurrentRequests, config.MaxConcurrentRequests)
}

func TestSetDefaultValuesClientConfig_KeepsExplicitValues(t *testing.T) {
	config := &ClientConfig{
		LogLevel:              "LogLevelDebug",
		CustomTimeout:         time.Minute,
		MaxConcurrentRequests: 7,
	}
	SetDefaultValuesClientConfig(config)

	assert.Equal(t, "LogLevelDebug", config.LogLevel)
	assert.Equal(t, time.Minute, config.CustomTimeout)
	assert.Equal(t, 7, config.MaxConcurrentRequests)
}
