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

type Logger struct {
	zlog zerolog.Logger
	file *os.File
}

type Option func(*Logger) error

// WithConsole enables human-readable logging on stderr
func WithConsole() Option {
	return func(l *Logger) error {
		consoleWriter := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}
		l.zlog = l.zlog.Output(consoleWriter)
		return nil
	}
}

// WithLevel sets the logging level
func WithLevel(level zerolog.Level) Option {
	return func(l *Logger) error {
		l.zlog = l.zlog.Level(level)
		return nil
	}
}

// WithLevelName sets the logging level from its name ("debug", "info", ...)
func WithLevelName(name string) Option {
	return func(l *Logger) error {
		if name == "" {
			return nil
		}
		level, err := zerolog.ParseLevel(name)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", name, err)
		}
		l.zlog = l.zlog.Level(level)
		return nil
	}
}

// WithWriter sends JSON log lines to w
func WithWriter(w io.Writer) Option {
	return func(l *Logger) error {
		l.zlog = l.zlog.Output(w)
		return nil
	}
}

// WithFile sets up file logging with an explicit path
func WithFile(path string) Option {
	return func(l *Logger) error {
		if path == "" {
			return nil
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		fileWriter := zerolog.ConsoleWriter{
			Out:        f,
			TimeFormat: time.RFC3339,
			NoColor:    true,
		}
		l.file = f
		l.zlog = l.zlog.Output(fileWriter)
		return nil
	}
}

// NewLogger creates a new logger with the given options.
// Without options it writes JSON lines to stderr at warn level.
func NewLogger(opts ...Option) (*Logger, error) {
	logger := &Logger{
		zlog: zerolog.New(os.Stderr).With().Timestamp().Logger().Level(zerolog.WarnLevel),
	}

	for _, opt := range opts {
		if err := opt(logger); err != nil {
			logger.Close()
			return nil, fmt.Errorf("failed to apply logger option: %w", err)
		}
	}

	return logger, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{zlog: zerolog.Nop()}
}

// Close closes the logger and any open files
func (l *Logger) Close() error {
	if l != nil && l.file != nil {
		return l.file.Close()
	}
	return nil
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
	if l == nil {
		return
	}
	event := addSourceContext(l.zlog.Debug())
	logFields(event, fields...)
	event.Msg(msg)
}

// Info logs an info message
func (l *Logger) Info(msg string, fields ...interface{}) {
	if l == nil {
		return
	}
	event := addSourceContext(l.zlog.Info())
	logFields(event, fields...)
	event.Msg(msg)
}

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...interface{}) {
	if l == nil {
		return
	}
	event := addSourceContext(l.zlog.Warn())
	logFields(event, fields...)
	event.Msg(msg)
}

// Error logs an error message
func (l *Logger) Error(msg string, err error, fields ...interface{}) {
	if l == nil {
		return
	}
	event := addSourceContext(l.zlog.Error())
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
		value := fields[i+1]
		event.Interface(key, value)
	}
}
