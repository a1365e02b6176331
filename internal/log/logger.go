package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var (
	isDebug = false
	logger  = NewLogger()
)

// Logger is a thin wrapper around a logrus entry so fields can be chained
type Logger struct {
	entry *logrus.Entry
}

// Field is a single key/value pair attached to a log line
type Field struct {
	Key   string
	Value interface{}
}

// F creates a Field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Option configures a Logger
type Option func(*logrus.Logger)

// WithOutput sends log lines to w
func WithOutput(w io.Writer) Option {
	return func(l *logrus.Logger) {
		l.SetOutput(w)
	}
}

// WithJSON switches to JSON formatted lines
func WithJSON() Option {
	return func(l *logrus.Logger) {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}
}

// WithLevel sets the minimum level that is written
func WithLevel(level logrus.Level) Option {
	return func(l *logrus.Logger) {
		l.SetLevel(level)
	}
}

// NewLogger creates a logger writing text lines to stderr at warn level.
// Stdout belongs to the console front end.
func NewLogger(opts ...Option) *Logger {
	base := logrus.New()
	base.SetOutput(os.Stderr)
	base.SetLevel(logrus.WarnLevel)
	base.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	for _, opt := range opts {
		opt(base)
	}
	return &Logger{entry: logrus.NewEntry(base)}
}

// SetDebug enables debug output on the package logger
func SetDebug(debug bool) {
	isDebug = debug
	if debug {
		logger.entry.Logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.entry.Logger.SetLevel(logrus.WarnLevel)
	}
}

// IsDebug reports whether debug output is enabled on the package logger
func IsDebug() bool {
	return isDebug
}

// SetOutput redirects the package logger
func SetOutput(w io.Writer) {
	logger.entry.Logger.SetOutput(w)
}

// Output returns the package logger's current destination
func Output() io.Writer {
	return logger.entry.Logger.Out
}

// With returns a copy of l carrying the given fields
func (l *Logger) With(fields ...Field) *Logger {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(data)}
}

func (l *Logger) Debug(args ...interface{})                 { l.entry.Debug(args...) }
func (l *Logger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }
func (l *Logger) Info(args ...interface{})                  { l.entry.Info(args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.entry.Infof(format, args...) }
func (l *Logger) Warn(args ...interface{})                  { l.entry.Warn(args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.entry.Warnf(format, args...) }
func (l *Logger) Error(args ...interface{})                 { l.entry.Error(args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }

// With returns the package logger carrying the given fields
func With(fields ...Field) *Logger {
	return logger.With(fields...)
}

// Debug logs a message with arguments
func Debug(msg string, args ...interface{}) {
	if isDebug {
		logger.Debugf(msg+": %v", args...)
	}
}

// Debugf logs a formatted message
func Debugf(format string, args ...interface{}) {
	if isDebug {
		logger.Debugf(format, args...)
	}
}

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}
