// Package logger is a small leveled logger that stays silent unless a log
// file is configured, since the terminal belongs to the TUI.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"
)

// Level represents a log level.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel parses a case-insensitive level name.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("invalid log level: %s", s)
	}
}

// Logger writes leveled lines to a single destination.
type Logger struct {
	mu     sync.Mutex
	level  Level
	logger *log.Logger
	file   *os.File
}

// Default is the process-wide logger.
var Default = New()

// New creates a logger configured from COCO_LOG_LEVEL and COCO_LOG_FILE.
func New() *Logger {
	l := &Logger{
		level:  LevelInfo,
		logger: log.New(io.Discard, "", log.LstdFlags),
	}
	if levelStr := os.Getenv("COCO_LOG_LEVEL"); levelStr != "" {
		if level, err := ParseLevel(levelStr); err == nil {
			l.level = level
		}
	}
	if path := os.Getenv("COCO_LOG_FILE"); path != "" {
		_ = l.OpenFile(path)
	}
	return l
}

// NewWithWriter creates a logger writing to w at the given level.
func NewWithWriter(w io.Writer, level Level) *Logger {
	return &Logger{level: level, logger: log.New(w, "", 0)}
}

// Configure applies a level name and optional file path, as read from config.
func (l *Logger) Configure(level, path string) error {
	if l == nil {
		return nil
	}
	if level != "" {
		parsed, err := ParseLevel(level)
		if err != nil {
			return err
		}
		l.SetLevel(parsed)
	}
	if path != "" {
		return l.OpenFile(path)
	}
	return nil
}

// OpenFile redirects output to path, appending.
func (l *Logger) OpenFile(path string) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		_ = l.file.Close()
	}
	l.file = f
	l.logger.SetOutput(f)
	return nil
}

// Close releases the log file, if any.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.logger.SetOutput(io.Discard)
	return err
}

func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.SetOutput(w)
}

func (l *Logger) Debug(format string, v ...any) { l.log(LevelDebug, format, v...) }
func (l *Logger) Info(format string, v ...any)  { l.log(LevelInfo, format, v...) }
func (l *Logger) Warn(format string, v ...any)  { l.log(LevelWarn, format, v...) }
func (l *Logger) Error(format string, v ...any) { l.log(LevelError, format, v...) }

func (l *Logger) log(level Level, format string, v ...any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}
	l.logger.Printf("[%s] %s", level, fmt.Sprintf(format, v...))
}

func Debug(format string, v ...any) { Default.Debug(format, v...) }
func Info(format string, v ...any)  { Default.Info(format, v...) }
func Warn(format string, v ...any)  { Default.Warn(format, v...) }
func Error(format string, v ...any) { Default.Error(format, v...) }

// Close closes the default logger.
func Close() error {
	return Default.Close()
}
