// logger/zaplogger_logpath.go

package logger

import (
	"os"
	"path/filepath"
	"time"
)

// timestampedLogFileName returns a log file name derived from the current time,
// so repeated runs do not clobber earlier exports.
func timestampedLogFileName() string {
	return "log_" + time.Now().Format("20060102_150405") + ".log"
}

// EnsureLogFilePath resolves a log export path into a concrete file path and makes sure
// its parent directory exists. An empty path resolves to a timestamped file in the current
// directory. A path naming a directory, or one that does not exist yet, gets a timestamped
// filename appended. A path naming an existing file is used as-is.
func EnsureLogFilePath(logPath string) (string, error) {
	if logPath == "" {
		logPath = filepath.Join(".", timestampedLogFileName())
	} else if info, err := os.Stat(logPath); os.IsNotExist(err) || (err == nil && info.IsDir()) {
		logPath = filepath.Join(logPath, timestampedLogFileName())
	} else if err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return "", err
	}

	return logPath, nil
}
