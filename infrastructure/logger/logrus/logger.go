// ABOUTME: Logrus-backed logger implementation for the CLI and host embeddings
// ABOUTME: Maps the core Logger interface onto logrus structured fields

package logrus

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger implements the core Logger interface on top of logrus.
type Logger struct {
	log *logrus.Logger
}

// New creates a logrus-backed logger writing to out at the given level.
// Unknown level names fall back to info.
func New(out io.Writer, level string) *Logger {
	log := logrus.New()
	log.SetOutput(out)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	log.SetLevel(parsed)

	return &Logger{log: log}
}

// Debug logs a debug message with structured fields
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Debug(msg)
}

// Info logs an info message with structured fields
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Info(msg)
}

// Warn logs a warning message with structured fields
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Warn(msg)
}

// Error logs an error message with structured fields
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.log.WithFields(logrus.Fields(fields)).Error(msg)
}
