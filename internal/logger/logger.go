// Package logger writes diagnostics to a debug file so they never interleave
// with the game's terminal output.
package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/palemoky/eleven/internal/config"
)

const (
	logFileName = "debug.log"
	maxLogSize  = 10 * 1024 * 1024
)

// Logger is a logrus logger bound to its debug file.
type Logger struct {
	*logrus.Logger

	file *os.File
	path string
}

// New opens (or rotates) <dir>/debug.log and returns a logger writing to it.
// An empty dir means ~/.eleven.
func New(cfg config.LogConfig) (*Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	logDir := cfg.Dir
	if logDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		logDir = filepath.Join(homeDir, ".eleven")
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logPath := filepath.Join(logDir, logFileName)
	f, err := openRotated(logDir, logPath)
	if err != nil {
		return nil, err
	}

	l := logrus.New()
	l.SetOutput(f)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, DisableColors: true})

	lg := &Logger{Logger: l, file: f, path: logPath}
	lg.WithField("path", logPath).Info("logger initialized")
	return lg, nil
}

// openRotated opens logPath for appending, first moving it aside if it has
// grown past maxLogSize.
func openRotated(logDir, logPath string) (*os.File, error) {
	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	if info, err := f.Stat(); err == nil && info.Size() > maxLogSize {
		_ = f.Close()
		backupPath := filepath.Join(logDir, fmt.Sprintf("%s.%d", logFileName, time.Now().Unix()))
		_ = os.Rename(logPath, backupPath)
		f, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to create new log file: %w", err)
		}
	}
	return f, nil
}

// Close closes the debug log file
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// Path returns the current log file path
func (l *Logger) Path() string {
	return l.path
}

// LogPanic logs a panic with stack trace
func (l *Logger) LogPanic(r any) {
	l.WithField("stack", string(debug.Stack())).Errorf("panic: %v", r)
}
