// Package logger provides the console and file loggers used by xref runs.
//
// The console logger writes leveled, timestamped progress messages; the file
// logger keeps a per-run log under the configured log directory. Both are
// thread-safe: scan workers log concurrently.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// ConsoleLogger logs run progress to a writer with [HH:MM:SS] timestamps and
// level filtering. Color output is enabled automatically when the writer is
// a TTY; NO_COLOR is honored via the color library.
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mu          sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger writing to the provided writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive); empty or
// invalid levels default to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    normalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

// isTerminal reports whether the writer is a TTY that supports colors.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}
	if f, ok := w.(*os.File); ok && (f == os.Stdout || f == os.Stderr) {
		return isatty.IsTerminal(f.Fd()) && !color.NoColor
	}
	return false
}

// normalizeLogLevel lowercases and validates a level, defaulting to "info".
func normalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))

	validLevels := map[string]bool{
		"trace": true,
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if validLevels[normalized] {
		return normalized
	}
	return "info"
}

// shouldLog reports whether a message at the given level passes the filter.
func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// Tracef logs a formatted trace-level message (most verbose).
func (cl *ConsoleLogger) Tracef(format string, args ...any) {
	cl.logf("TRACE", format, args...)
}

// Debugf logs a formatted debug-level message.
func (cl *ConsoleLogger) Debugf(format string, args ...any) {
	cl.logf("DEBUG", format, args...)
}

// Infof logs a formatted info-level message.
func (cl *ConsoleLogger) Infof(format string, args ...any) {
	cl.logf("INFO", format, args...)
}

// Warnf logs a formatted warning-level message.
func (cl *ConsoleLogger) Warnf(format string, args ...any) {
	cl.logf("WARN", format, args...)
}

// Errorf logs a formatted error-level message.
func (cl *ConsoleLogger) Errorf(format string, args ...any) {
	cl.logf("ERROR", format, args...)
}

// logf writes one "[HH:MM:SS] [LEVEL] message" line if filtering allows it.
func (cl *ConsoleLogger) logf(level, format string, args ...any) {
	if cl.writer == nil {
		return
	}
	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mu.Lock()
	defer cl.mu.Unlock()

	message := fmt.Sprintf(format, args...)
	if cl.colorOutput {
		fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", timestamp(), colorizeLevel(level), message)
		return
	}
	fmt.Fprintf(cl.writer, "[%s] [%s] %s\n", timestamp(), level, message)
}

// colorizeLevel wraps a level name in its conventional ANSI color.
func colorizeLevel(level string) string {
	switch level {
	case "TRACE":
		return color.New(color.FgHiBlack).Sprint(level)
	case "DEBUG":
		return color.New(color.FgCyan).Sprint(level)
	case "INFO":
		return color.New(color.FgBlue).Sprint(level)
	case "WARN":
		return color.New(color.FgYellow).Sprint(level)
	case "ERROR":
		return color.New(color.FgRed).Sprint(level)
	default:
		return level
	}
}

func timestamp() string {
	return time.Now().Format("15:04:05")
}
