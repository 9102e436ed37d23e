// logger/zaplogger_logpath_test.go

package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnsureLogFilePath verifies the resolution rules for log export paths.
func TestEnsureLogFilePath(t *testing.T) {
	t.Run("DirectoryGetsTimestampedFilename", func(t *testing.T) {
		dir := t.TempDir()

		resolved, err := EnsureLogFilePath(dir)

		require.NoError(t, err)
		assert.Equal(t, dir, filepath.Dir(resolved))
		assert.True(t, strings.HasPrefix(filepath.Base(resolved), "log_"), "Filename should be timestamp based")
		assert.True(t, strings.HasSuffix(resolved, ".log"))
	})

	t.Run("ExistingFileUsedAsIs", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "client.log")
		require.NoError(t, os.WriteFile(file, nil, 0644))

		resolved, err := EnsureLogFilePath(file)

		require.NoError(t, err)
		assert.Equal(t, file, resolved)
	})

	t.Run("EmptyPathDefaultsToWorkingDirectory", func(t *testing.T) {
		resolved, err := EnsureLogFilePath("")

		require.NoError(t, err)
		assert.Equal(t, ".", filepath.Dir(resolved))
		assert.True(t, strings.HasSuffix(resolved, ".log"))
	})
}
