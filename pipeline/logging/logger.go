package logging

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// LogLevel represents the log level.
type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelWarn  LogLevel = "WARN"
	LogLevelError LogLevel = "ERROR"
)

var levelRank = map[LogLevel]int{
	LogLevelDebug: 0,
	LogLevelInfo:  1,
	LogLevelWarn:  2,
	LogLevelError: 3,
}

// LogEntry represents a structured log entry. File carries the audio file a
// message is about, so per-file failures can be diagnosed without halting or
// replaying the batch.
type LogEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Level     LogLevel  `json:"level"`
	Message   string    `json:"message"`
	Service   string    `json:"service"`
	File      string    `json:"file,omitempty"`
	Error     string    `json:"error,omitempty"`
}

// Logger writes structured JSON lines to a log file and echoes warnings and
// errors to stderr so batch problems are visible without tailing the log.
type Logger struct {
	file     *os.File
	mu       sync.Mutex
	service  string
	minLevel LogLevel
}

// NewLogger creates a logger appending to logPath. service names the emitting
// component; minLevel drops entries below it (empty means debug).
func NewLogger(logPath, service string, minLevel LogLevel) (*Logger, error) {
	logDir := filepath.Dir(logPath)
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	if minLevel == "" {
		minLevel = LogLevelDebug
	}

	return &Logger{
		file:     file,
		service:  service,
		minLevel: minLevel,
	}, nil
}

// Close closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

func (l *Logger) log(level LogLevel, message, file string, err error) {
	if levelRank[level] < levelRank[l.minLevel] {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entry := LogEntry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Service:   l.service,
		File:      file,
	}
	if err != nil {
		entry.Error = err.Error()
	}

	if jsonData, marshalErr := json.Marshal(entry); marshalErr == nil {
		_, _ = fmt.Fprintln(l.file, string(jsonData))
	} else {
		// Fallback to a minimal line if marshaling fails
		_, _ = fmt.Fprintf(l.file, "{\"timestamp\":%q,\"level\":%q,\"message\":%q,\"service\":%q}\n",
			time.Now().Format(time.RFC3339), level, message, l.service)
	}

	if levelRank[level] >= levelRank[LogLevelWarn] {
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s: %v\n", level, message, err)
		} else {
			fmt.Fprintf(os.Stderr, "%s: %s\n", level, message)
		}
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(message string) {
	l.log(LogLevelDebug, message, "", nil)
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Debug(fmt.Sprintf(format, args...))
}

// Info logs an info message.
func (l *Logger) Info(message string) {
	l.log(LogLevelInfo, message, "", nil)
}

// Infof logs a formatted info message.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// InfoFile logs an info message tied to one audio file.
func (l *Logger) InfoFile(file, message string) {
	l.log(LogLevelInfo, message, file, nil)
}

// Warn logs a warning message.
func (l *Logger) Warn(message string) {
	l.log(LogLevelWarn, message, "", nil)
}

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Warn(fmt.Sprintf(format, args...))
}

// WarnFile logs a warning tied to one audio file.
func (l *Logger) WarnFile(file, message string, err error) {
	l.log(LogLevelWarn, message, file, err)
}

// Error logs an error message.
func (l *Logger) Error(message string, err error) {
	l.log(LogLevelError, message, "", err)
}

// ErrorFile logs an error tied to one audio file.
func (l *Logger) ErrorFile(file, message string, err error) {
	l.log(LogLevelError, message, file, err)
}
