// ABOUTME: Standard logger implementation using Go's standard log package
// ABOUTME: Renders structured fields as sorted key=value pairs

package standard

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
)

// StandardLogger implements the Logger interface using the standard library.
// Diagnostic output goes to stderr so it never mixes with exported data on
// stdout.
type StandardLogger struct {
	debug *log.Logger
	info  *log.Logger
	warn  *log.Logger
	error *log.Logger
}

// NewStandardLogger creates a new standard logger
func NewStandardLogger() *StandardLogger {
	return &StandardLogger{
		debug: log.New(os.Stderr, "[DEBUG] ", log.LstdFlags),
		info:  log.New(os.Stderr, "[INFO] ", log.LstdFlags),
		warn:  log.New(os.Stderr, "[WARN] ", log.LstdFlags),
		error: log.New(os.Stderr, "[ERROR] ", log.LstdFlags),
	}
}

// Debug logs a debug message
func (l *StandardLogger) Debug(msg string, fields map[string]interface{}) {
	logWithFields(l.debug, msg, fields)
}

// Info logs an info message
func (l *StandardLogger) Info(msg string, fields map[string]interface{}) {
	logWithFields(l.info, msg, fields)
}

// Warn logs a warning message
func (l *StandardLogger) Warn(msg string, fields map[string]interface{}) {
	logWithFields(l.warn, msg, fields)
}

// Error logs an error message
func (l *StandardLogger) Error(msg string, fields map[string]interface{}) {
	logWithFields(l.error, msg, fields)
}

// logWithFields logs a message with structured fields appended in key order
func logWithFields(logger *log.Logger, msg string, fields map[string]interface{}) {
	if len(fields) == 0 {
		logger.Println(msg)
		return
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, fields[k]))
	}

	logger.Printf("%s %s", msg, strings.Join(pairs, " "))
}
