// zaplogger_config_test.go
package logger

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// TestConvertToZapLevel tests the conversion from custom LogLevel to zapcore.Level
func TestConvertToZapLevel(t *testing.T) {
	tests := []struct {
		name          string
		inputLevel    LogLevel
		expectedLevel zapcore.Level
	}{
		{"DebugLevel", LogLevelDebug, zap.DebugLevel},
		{"InfoLevel", LogLevelInfo, zap.InfoLevel},
		{"WarnLevel", LogLevelWarn, zap.WarnLevel},
		{"ErrorLevel", LogLevelError, zap.ErrorLevel},
		{"DPanicLevel", LogLevelDPanic, zap.DPanicLevel},
		{"PanicLevel", LogLevelPanic, zap.PanicLevel},
		{"FatalLevel", LogLevelFatal, zap.FatalLevel},
		{"UnknownLevel", LogLevel(999), zap.InfoLevel}, // Testing default case
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := convertToZapLevel(tt.inputLevel)
			assert.Equal(t, tt.expectedLevel, result)
		})
	}
}

// TestBuildLogger verifies logger construction for both supported encodings.
func TestBuildLogger(t *testing.T) {
	tests := []struct {
		name     string
		encoding string
		level    LogLevel
	}{
		{"JSONEncoding", "json", LogLevelInfo},
		{"ConsoleEncoding", "console", LogLevelDebug},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := BuildLogger(tt.level, tt.encoding, ", ", false, "")

			require.NotNil(t, log)
			assert.Equal(t, tt.level, log.GetLogLevel())
			assert.NotPanics(t, func() { log.Info("build check") })
		})
	}
}

// TestBuildLoggerWithExport verifies that enabling log export creates a log file under the
// configured export path.
func TestBuildLoggerWithExport(t *testing.T) {
	exportDir := t.TempDir()

	log := BuildLogger(LogLevelInfo, "json", ", ", true, exportDir)
	require.NotNil(t, log)
	log.Info("export check")

	files, err := os.ReadDir(exportDir)
	require.NoError(t, err)
	assert.NotEmpty(t, files, "A log file should be created under the export path")
}
