package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Category represents a log category
type Category string

const (
	CategoryAuth      Category = "auth"
	CategoryAPI       Category = "api"
	CategoryDB        Category = "db"
	CategoryStorage   Category = "storage"
	CategoryCache     Category = "cache"
	CategoryScheduler Category = "scheduler"
	CategoryStartup   Category = "startup"
)

// Level represents log level
type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// LogEntry represents a structured log entry
type LogEntry struct {
	Timestamp time.Time              `json:"timestamp"`
	Level     Level                  `json:"level"`
	Category  Category               `json:"category"`
	Action    string                 `json:"action"`
	Message   string                 `json:"message"`
	Data      map[string]interface{} `json:"data,omitempty"`
	UserID    string                 `json:"user_id,omitempty"`
	Duration  string                 `json:"duration,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

// Logger writes structured entries to per-category daily files and optionally
// to the console.
type Logger struct {
	mu      sync.Mutex
	logDir  string
	writers map[Category]*os.File
	console bool
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// Init initializes the default logger
func Init(logDir string, console bool) error {
	var err error
	once.Do(func() {
		defaultLogger, err = NewLogger(logDir, console)
	})
	return err
}

// NewLogger creates a new logger
func NewLogger(logDir string, console bool) (*Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &Logger{
		logDir:  logDir,
		writers: make(map[Category]*os.File),
		console: console,
	}, nil
}

// getWriter returns or creates a file writer for the category
func (l *Logger) getWriter(category Category) (io.Writer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	today := time.Now().Format("2006-01-02")
	filename := fmt.Sprintf("%s_%s.log", category, today)
	path := filepath.Join(l.logDir, filename)

	if writer, exists := l.writers[category]; exists {
		if info, err := writer.Stat(); err == nil && info.Name() == filename {
			return writer, nil
		}
		writer.Close()
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	l.writers[category] = file
	return file, nil
}

// Log writes a log entry
func (l *Logger) Log(entry LogEntry) {
	entry.Timestamp = time.Now()

	jsonData, err := json.Marshal(entry)
	if err != nil {
		fmt.Printf("Error marshaling log entry: %v\n", err)
		return
	}

	writer, err := l.getWriter(entry.Category)
	if err != nil {
		fmt.Printf("Error getting log writer: %v\n", err)
	} else {
		fmt.Fprintln(writer, string(jsonData))
	}

	if l.console {
		l.printToConsole(entry)
	}
}

// printToConsole prints formatted log to console
func (l *Logger) printToConsole(entry LogEntry) {
	timestamp := entry.Timestamp.Format("15:04:05.000")

	levelColors := map[Level]string{
		LevelDebug: "\033[36m", // Cyan
		LevelInfo:  "\033[32m", // Green
		LevelWarn:  "\033[33m", // Yellow
		LevelError: "\033[31m", // Red
	}
	reset := "\033[0m"

	fmt.Printf("%s[%s]%s [%s] [%s] %s: %s",
		levelColors[entry.Level],
		entry.Level,
		reset,
		timestamp,
		entry.Category,
		entry.Action,
		entry.Message,
	)

	if entry.UserID != "" {
		fmt.Printf(" (user: %s)", entry.UserID)
	}
	if entry.Duration != "" {
		fmt.Printf(" (duration: %s)", entry.Duration)
	}
	if entry.Error != "" {
		fmt.Printf(" ERROR: %s", entry.Error)
	}
	fmt.Println()
}

// Close closes all file writers
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, writer := range l.writers {
		writer.Close()
	}
	l.writers = make(map[Category]*os.File)
}

// Default returns the default logger
func Default() *Logger {
	if defaultLogger == nil {
		Init("logs", true)
	}
	return defaultLogger
}

// GetTypeName returns the Go type name of a value, for diagnostics.
func GetTypeName(v interface{}) string {
	return fmt.Sprintf("%T", v)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// Debug logs a debug entry in the given category
func Debug(category Category, action, message string, data map[string]interface{}) {
	Default().Log(LogEntry{Level: LevelDebug, Category: category, Action: action, Message: message, Data: data})
}

// Info logs an info entry in the given category
func Info(category Category, action, message string, data map[string]interface{}) {
	Default().Log(LogEntry{Level: LevelInfo, Category: category, Action: action, Message: message, Data: data})
}

// Warn logs a warning entry in the given category
func Warn(category Category, action, message string, data map[string]interface{}) {
	Default().Log(LogEntry{Level: LevelWarn, Category: category, Action: action, Message: message, Data: data})
}

// Error logs an error entry in the given category
func Error(category Category, action, message string, err error, data map[string]interface{}) {
	Default().Log(LogEntry{Level: LevelError, Category: category, Action: action, Message: message, Error: errString(err), Data: data})
}

// Auth logs authentication related events
func Auth(action, message string, data map[string]interface{}) {
	Info(CategoryAuth, action, message, data)
}

// AuthError logs authentication errors
func AuthError(action, message string, err error, data map[string]interface{}) {
	Error(CategoryAuth, action, message, err, data)
}

// Storage logs object storage events
func Storage(action, message string, data map[string]interface{}) {
	Info(CategoryStorage, action, message, data)
}

// StorageError logs object storage errors
func StorageError(action, message string, err error, data map[string]interface{}) {
	Error(CategoryStorage, action, message, err, data)
}

// Cache logs read-cache events
func Cache(action, message string, data map[string]interface{}) {
	Info(CategoryCache, action, message, data)
}

// CacheError logs read-cache errors
func CacheError(action, message string, err error, data map[string]interface{}) {
	Error(CategoryCache, action, message, err, data)
}

// Scheduler logs scheduler events
func Scheduler(action, message string, data map[string]interface{}) {
	Info(CategoryScheduler, action, message, data)
}

// SchedulerWarn logs scheduler warnings
func SchedulerWarn(action, message string, data map[string]interface{}) {
	Warn(CategoryScheduler, action, message, data)
}

// Startup logs startup events
func Startup(action, message string, data map[string]interface{}) {
	Info(CategoryStartup, action, message, data)
}

// StartupWarn logs startup warnings
func StartupWarn(action, message string, data map[string]interface{}) {
	Warn(CategoryStartup, action, message, data)
}

// StartupError logs startup errors
func StartupError(action, message string, err error, data map[string]interface{}) {
	Error(CategoryStartup, action, message, err, data)
}
