package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/harrison/xref/internal/filelock"
)

// FileLogger logs run events to a timestamped per-run file under a log
// directory and maintains a latest.log symlink pointing to the most recent
// run. The symlink rotation is guarded by a file lock so concurrent xref
// invocations sharing a log directory don't race each other.
type FileLogger struct {
	logDir   string
	runID    string
	runLog   *os.File
	runFile  string
	logLevel string
	mu       sync.Mutex
}

// NewFileLogger creates a FileLogger writing under logDir, creating the
// directory if needed. Each run gets a unique ID recorded in the log header
// and a file named run-<timestamp>-<id>.log.
func NewFileLogger(logDir, logLevel string) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	runID := uuid.New().String()[:8]
	runFile := filepath.Join(logDir, fmt.Sprintf("run-%s-%s.log", time.Now().Format("20060102-150405"), runID))

	file, err := os.OpenFile(runFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create run log file: %w", err)
	}

	if err := updateLatestSymlink(logDir, runFile); err != nil {
		file.Close()
		return nil, err
	}

	fl := &FileLogger{
		logDir:   logDir,
		runID:    runID,
		runLog:   file,
		runFile:  runFile,
		logLevel: normalizeLogLevel(logLevel),
	}

	fl.write(fmt.Sprintf("=== xref run %s ===\n", runID))
	fl.write(fmt.Sprintf("Started at: %s\n\n", time.Now().Format(time.RFC3339)))
	return fl, nil
}

// updateLatestSymlink points latest.log at the current run file, serialized
// against other processes via a lock file in the log directory.
func updateLatestSymlink(logDir, runFile string) error {
	lock := filelock.NewFileLock(filepath.Join(logDir, ".latest.lock"))
	if err := lock.Lock(); err != nil {
		return err
	}
	defer lock.Unlock()

	symlinkPath := filepath.Join(logDir, "latest.log")
	if _, err := os.Lstat(symlinkPath); err == nil {
		if err := os.Remove(symlinkPath); err != nil {
			return fmt.Errorf("failed to remove old symlink: %w", err)
		}
	}
	if err := os.Symlink(filepath.Base(runFile), symlinkPath); err != nil {
		return fmt.Errorf("failed to create symlink: %w", err)
	}
	return nil
}

// RunID returns this run's unique identifier.
func (fl *FileLogger) RunID() string {
	return fl.runID
}

// Path returns the run log file path.
func (fl *FileLogger) Path() string {
	return fl.runFile
}

// Tracef logs a formatted trace-level message.
func (fl *FileLogger) Tracef(format string, args ...any) {
	fl.logf("TRACE", format, args...)
}

// Debugf logs a formatted debug-level message.
func (fl *FileLogger) Debugf(format string, args ...any) {
	fl.logf("DEBUG", format, args...)
}

// Infof logs a formatted info-level message.
func (fl *FileLogger) Infof(format string, args ...any) {
	fl.logf("INFO", format, args...)
}

// Warnf logs a formatted warning-level message.
func (fl *FileLogger) Warnf(format string, args ...any) {
	fl.logf("WARN", format, args...)
}

// Errorf logs a formatted error-level message.
func (fl *FileLogger) Errorf(format string, args ...any) {
	fl.logf("ERROR", format, args...)
}

func (fl *FileLogger) logf(level, format string, args ...any) {
	if logLevelToInt(strings.ToLower(level)) < logLevelToInt(fl.logLevel) {
		return
	}
	message := fmt.Sprintf(format, args...)
	fl.write(fmt.Sprintf("[%s] [%s] %s\n", timestamp(), level, message))
}

func (fl *FileLogger) write(s string) {
	fl.mu.Lock()
	defer fl.mu.Unlock()
	if fl.runLog == nil {
		return
	}
	// Write errors to the log file are not worth failing a run over.
	_, _ = fl.runLog.WriteString(s)
}

// Close finalizes and closes the run log.
func (fl *FileLogger) Close() error {
	fl.write(fmt.Sprintf("\nFinished at: %s\n", time.Now().Format(time.RFC3339)))

	fl.mu.Lock()
	defer fl.mu.Unlock()
	if fl.runLog == nil {
		return nil
	}
	err := fl.runLog.Close()
	fl.runLog = nil
	return err
}
