// Package logger provides a simple logging interface for sysmon components.
// It allows packages to log debug, info, warn, and error messages without
// being coupled to a specific logging implementation.
//
// The dashboard owns the terminal while it runs, so the standard library
// logger is redirected before the program starts (see RedirectForTUI).
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	// DebugEnv enables debug output when set to any non-empty value.
	DebugEnv = "SYSMON_DEBUG"
	// LogFileEnv overrides the debug log file used while the TUI is running.
	LogFileEnv = "SYSMON_LOG"
	// DefaultLogFile is the debug log file used when LogFileEnv is unset.
	DefaultLogFile = "sysmon-debug.log"
)

// Logger defines the interface for logging operations.
// All methods accept a format string and arguments, similar to fmt.Printf.
type Logger interface {
	Debug(format string, args ...interface{})
	Info(format string, args ...interface{})
	Warn(format string, args ...interface{})
	Error(format string, args ...interface{})
}

// DebugEnabled reports whether SYSMON_DEBUG is set.
func DebugEnabled() bool {
	return os.Getenv(DebugEnv) != ""
}

// envLogger implements Logger on top of the standard logger.
// Debug messages are only printed when SYSMON_DEBUG is set.
type envLogger struct {
	prefix string
}

// NewEnvLogger creates a logger that respects the SYSMON_DEBUG environment variable.
// The prefix is prepended to all log messages (e.g., "[sampler]" or "[procs]").
func NewEnvLogger(prefix string) Logger {
	return &envLogger{prefix: prefix}
}

func (l *envLogger) Debug(format string, args ...interface{}) {
	if DebugEnabled() {
		log.Printf(l.prefix+" "+format, args...)
	}
}

func (l *envLogger) Info(format string, args ...interface{}) {
	log.Printf(l.prefix+" "+format, args...)
}

func (l *envLogger) Warn(format string, args ...interface{}) {
	log.Printf(l.prefix+" WARN: "+format, args...)
}

func (l *envLogger) Error(format string, args ...interface{}) {
	log.Printf(l.prefix+" ERROR: "+format, args...)
}

// RedirectForTUI points the standard logger away from the terminal.
// With SYSMON_DEBUG set, output goes to SYSMON_LOG (or DefaultLogFile);
// otherwise it is discarded. The returned func restores stderr and closes
// the file.
func RedirectForTUI() (restore func(), err error) {
	if !DebugEnabled() {
		log.SetOutput(io.Discard)
		return func() { log.SetOutput(os.Stderr) }, nil
	}

	path := os.Getenv(LogFileEnv)
	if path == "" {
		path = DefaultLogFile
	}

	f, err := tea.LogToFile(path, "sysmon")
	if err != nil {
		return func() {}, fmt.Errorf("open debug log %s: %w", path, err)
	}
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}

// noopLogger implements Logger but discards all messages.
type noopLogger struct{}

// Noop returns a logger that discards all messages.
func Noop() Logger {
	return &noopLogger{}
}

func (l *noopLogger) Debug(format string, args ...interface{}) {}
func (l *noopLogger) Info(format string, args ...interface{})  {}
func (l *noopLogger) Warn(format string, args ...interface{})  {}
func (l *noopLogger) Error(format string, args ...interface{}) {}

// LogMessage represents a captured log message.
type LogMessage struct {
	Level   string
	Message string
}

// BufferLogger captures log messages for testing.
// Safe for use from a tea.Cmd goroutine and the test goroutine at once.
type BufferLogger struct {
	mu       sync.Mutex
	Messages []LogMessage
}

// NewBufferLogger creates a logger that captures messages for inspection.
func NewBufferLogger() *BufferLogger {
	return &BufferLogger{
		Messages: make([]LogMessage, 0),
	}
}

func (l *BufferLogger) record(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = append(l.Messages, LogMessage{Level: level, Message: fmt.Sprintf(format, args...)})
}

func (l *BufferLogger) Debug(format string, args ...interface{}) {
	l.record("debug", format, args...)
}

func (l *BufferLogger) Info(format string, args ...interface{}) {
	l.record("info", format, args...)
}

func (l *BufferLogger) Warn(format string, args ...interface{}) {
	l.record("warn", format, args...)
}

func (l *BufferLogger) Error(format string, args ...interface{}) {
	l.record("error", format, args...)
}

// HasLevel returns true if any message was logged at the given level.
func (l *BufferLogger) HasLevel(level string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, m := range l.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Clear removes all captured messages.
func (l *BufferLogger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.Messages = l.Messages[:0]
}

// defaultLogger is the package-level default logger.
var defaultLogger = NewEnvLogger("[sysmon]")

// Default returns the default logger for the package.
func Default() Logger {
	return defaultLogger
}

// SetDefault sets the default logger for the package.
func SetDefault(l Logger) {
	defaultLogger = l
}
