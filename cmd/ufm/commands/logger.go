package commands

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/juju/loggo/v2"
)

const loggerModule = "ufm"

// Logger implements ufm.Logger on top of loggo.
type Logger struct {
	logger loggo.Logger
}

// NewLogger returns the CLI logger.
func NewLogger() *Logger {
	return &Logger{logger: loggo.GetLogger(loggerModule)}
}

// Debug implements ufm.Logger.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debugf("%s", formatMessage(msg, fields))
}

// Info implements ufm.Logger.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.logger.Infof("%s", formatMessage(msg, fields))
}

// Warn implements ufm.Logger.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warningf("%s", formatMessage(msg, fields))
}

// Error implements ufm.Logger.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.logger.Errorf("%s", formatMessage(msg, fields))
}

// ConfigureLogging sends log output to stderr. Verbose enables debug logs.
func ConfigureLogging(verbose bool) error {
	_, err := loggo.ReplaceDefaultWriter(loggo.NewSimpleWriter(os.Stderr, formatEntry))
	if err != nil {
		return fmt.Errorf("configuring log writer: %w", err)
	}

	level := "WARNING"
	if verbose {
		level = "DEBUG"
	}

	err = loggo.ConfigureLoggers("<root>=" + level)
	if err != nil {
		return fmt.Errorf("configuring log level: %w", err)
	}

	return nil
}

func formatEntry(entry loggo.Entry) string {
	return fmt.Sprintf("%s %s %s %s",
		entry.Timestamp.Format("15:04:05.000"), entry.Level, entry.Module, entry.Message)
}

// formatMessage appends fields to msg as sorted key=value pairs.
func formatMessage(msg string, fields map[string]interface{}) string {
	if len(fields) == 0 {
		return msg
	}

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	var builder strings.Builder

	builder.WriteString(msg)

	for _, key := range keys {
		fmt.Fprintf(&builder, " %s=%v", key, fields[key])
	}

	return builder.String()
}
