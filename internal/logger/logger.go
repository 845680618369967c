package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/rs/zerolog"
)

const (
	DefaultLogDir  = "folio-desktop/logs"
	DefaultLogFile = "desktop.log"
)

// Logger is a small structured logger over zerolog with key/value fields.
type Logger struct {
	zlog    zerolog.Logger
	file    *os.File
	writers []io.Writer
	level   zerolog.Level
	hasFile bool
}

type Option func(*Logger) error

// WithConsole enables console logging
func WithConsole() Option {
	return func(l *Logger) error {
		l.writers = append(l.writers, zerolog.ConsoleWriter{
			Out:        os.Stdout,
			TimeFormat: time.RFC3339,
		})
		return nil
	}
}

// WithWriter logs to an arbitrary writer in zerolog's JSON format
func WithWriter(w io.Writer) Option {
	return func(l *Logger) error {
		l.writers = append(l.writers, w)
		return nil
	}
}

// WithLevel sets the logging level
func WithLevel(level zerolog.Level) Option {
	return func(l *Logger) error {
		l.level = level
		return nil
	}
}

// WithFile sets up file logging with an explicit path
func WithFile(path string) Option {
	return func(l *Logger) error {
		l.hasFile = true
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		l.file = f
		l.writers = append(l.writers, zerolog.ConsoleWriter{
			Out:        f,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		})
		return nil
	}
}

// WithoutFile disables the default log file
func WithoutFile() Option {
	return func(l *Logger) error {
		l.hasFile = true
		return nil
	}
}

// DefaultLogPath returns the log file used when no file option is given
func DefaultLogPath() (string, error) {
	dataDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to get cache directory: %w", err)
	}
	return filepath.Join(dataDir, DefaultLogDir, DefaultLogFile), nil
}

// NewLogger creates a new logger with the given options
func NewLogger(opts ...Option) (*Logger, error) {
	l := &Logger{level: zerolog.InfoLevel}

	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, fmt.Errorf("failed to apply logger option: %w", err)
		}
	}

	if !l.hasFile {
		path, err := DefaultLogPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get default log path: %w", err)
		}
		if err := WithFile(path)(l); err != nil {
			return nil, fmt.Errorf("failed to apply logger option: %w", err)
		}
	}

	var out io.Writer = io.Discard
	switch len(l.writers) {
	case 0:
	case 1:
		out = l.writers[0]
	default:
		out = zerolog.MultiLevelWriter(l.writers...)
	}
	l.zlog = zerolog.New(out).Level(l.level).With().Timestamp().Logger()
	return l, nil
}

// Nop returns a logger that discards everything
func Nop() *Logger {
	return &Logger{zlog: zerolog.Nop(), level: zerolog.Disabled}
}

// Close closes the logger and any open files
func (l *Logger) Close() error {
	if l.file != nil {
		return l.file.Close()
	}
	return nil
}

// Level returns the configured level
func (l *Logger) Level() zerolog.Level {
	return l.level
}

// addSourceContext adds file and line information to the event
func addSourceContext(e *zerolog.Event) *zerolog.Event {
	_, file, line, ok := runtime.Caller(2)
	if ok {
		return e.Str("file", filepath.Base(file)).Int("line", line)
	}
	return e
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...interface{}) {
	event := addSourceContext(l.zlog.Debug())
	logFields(event, fields...)
	event.Msg(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...interface{}) {
	event := addSourceContext(l.zlog.Info())
	logFields(event, fields...)
	event.Msg(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...interface{}) {
	event := addSourceContext(l.zlog.Warn())
	logFields(event, fields...)
	event.Msg(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, err error, fields ...interface{}) {
	event := addSourceContext(l.zlog.Error())
	if err != nil {
		event = event.Err(err)
	}
	logFields(event, fields...)
	event.Msg(msg)
}

// Fatal logs a fatal message and exits
func (l *Logger) Fatal(msg string, err error, fields ...interface{}) {
	event := addSourceContext(l.zlog.Fatal())
	if err != nil {
		event = event.Err(err)
	}
	logFields(event, fields...)
	event.Msg(msg)
}

// logFields adds fields to the log event
func logFields(event *zerolog.Event, fields ...interface{}) {
	for i := 0; i < len(fields); i += 2 {
		if i+1 >= len(fields) {
			break
		}
		key, ok := fields[i].(string)
		if !ok {
			continue
		}
		event.Interface(key, fields[i+1])
	}
}
