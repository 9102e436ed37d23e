package logger

import (
	"go.uber.org/zap/zapcore"
)

type customCore struct {
	zapcore.Core
}

// With adds structured context to the Core and keeps the custom wrapper in place.
func (c *customCore) With(fields []zapcore.Field) zapcore.Core {
	return &customCore{c.Core.With(fields)}
}

// Write serializes the Entry and any Fields supplied at the log site and writes them to their destination.
// The pid and application fields are moved to the end of the field list so that per-request fields stay
// at the front of each log line.
func (c *customCore) Write(entry zapcore.Entry, fields []zapcore.Field) error {
	var trailingFields []zapcore.Field
	var otherFields []zapcore.Field
	for _, field := range fields {
		if field.Key == "pid" || field.Key == "application" {
			trailingFields = append(trailingFields, field)
		} else {
			otherFields = append(otherFields, field)
		}
	}
	reorderedFields := append(otherFields, trailingFields...)

	return c.Core.Write(entry, reorderedFields)
}

// Check determines whether the supplied Entry should be logged.
func (c *customCore) Check(entry zapcore.Entry, checkedEntry *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	return c.Core.Check(entry, checkedEntry)
}

// Sync flushes buffered logs (if any).
func (c *customCore) Sync() error {
	return c.Core.Sync()
}
