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

// Field is a single structured key/value attached to a log line.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Option configures a Logger.
type Option func(*logrus.Logger)

// WithOutput sends log lines to w instead of stderr.
func WithOutput(w io.Writer) Option {
	return func(l *logrus.Logger) {
		l.SetOutput(w)
	}
}

// WithJSON switches the logger to JSON lines.
func WithJSON() Option {
	return func(l *logrus.Logger) {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	}
}

// Logger writes diagnostics. The user-facing transcript never goes through
// it; it is for stderr diagnostics only.
type Logger struct {
	out *logrus.Logger
}

// NewLogger creates a Logger writing text lines to stderr.
func NewLogger(opts ...Option) *Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    true,
		TimestampFormat:  "2006-01-02 15:04:05",
		DisableColors:    true,
		QuoteEmptyFields: true,
	})
	l.SetLevel(levelFor(isDebug))
	for _, opt := range opts {
		opt(l)
	}
	return &Logger{out: l}
}

func levelFor(debug bool) logrus.Level {
	if debug {
		return logrus.DebugLevel
	}
	return logrus.InfoLevel
}

// SetDebug toggles debug output on the default logger and on every
// logger created afterwards.
func SetDebug(debug bool) {
	isDebug = debug
	logger.out.SetLevel(levelFor(debug))
}

// IsDebug reports whether debug output is enabled.
func IsDebug() bool {
	return isDebug
}

// SetOutput redirects the default logger.
func SetOutput(w io.Writer) {
	logger.out.SetOutput(w)
}

// SetLogger replaces the default logger and returns the previous one.
func SetLogger(l *Logger) *Logger {
	prev := logger
	logger = l
	return prev
}

// With returns an entry carrying fields.
func (l *Logger) With(fields ...Field) *Entry {
	l.syncLevel()
	return &Entry{e: logrus.NewEntry(l.out).WithFields(toLogrus(fields))}
}

func (l *Logger) entry() *Entry {
	return &Entry{e: logrus.NewEntry(l.out)}
}

func (l *Logger) Debug(args ...interface{}) {
	l.syncLevel()
	l.entry().Debug(args...)
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	l.syncLevel()
	l.entry().Debugf(format, args...)
}

func (l *Logger) Info(args ...interface{})                  { l.entry().Info(args...) }
func (l *Logger) Infof(format string, args ...interface{})  { l.entry().Infof(format, args...) }
func (l *Logger) Warn(args ...interface{})                  { l.entry().Warn(args...) }
func (l *Logger) Warnf(format string, args ...interface{})  { l.entry().Warnf(format, args...) }
func (l *Logger) Error(args ...interface{})                 { l.entry().Error(args...) }
func (l *Logger) Errorf(format string, args ...interface{}) { l.entry().Errorf(format, args...) }

// syncLevel keeps loggers built before SetDebug in step with the flag.
func (l *Logger) syncLevel() {
	if want := levelFor(isDebug); l.out.GetLevel() != want {
		l.out.SetLevel(want)
	}
}

// Entry is a log line under construction with attached fields.
type Entry struct {
	e *logrus.Entry
}

// With adds more fields to the entry.
func (e *Entry) With(fields ...Field) *Entry {
	return &Entry{e: e.e.WithFields(toLogrus(fields))}
}

func (e *Entry) Debug(args ...interface{})                 { e.e.Debug(args...) }
func (e *Entry) Debugf(format string, args ...interface{}) { e.e.Debugf(format, args...) }
func (e *Entry) Info(args ...interface{})                  { e.e.Info(args...) }
func (e *Entry) Infof(format string, args ...interface{})  { e.e.Infof(format, args...) }
func (e *Entry) Warn(args ...interface{})                  { e.e.Warn(args...) }
func (e *Entry) Warnf(format string, args ...interface{})  { e.e.Warnf(format, args...) }
func (e *Entry) Error(args ...interface{})                 { e.e.Error(args...) }
func (e *Entry) Errorf(format string, args ...interface{}) { e.e.Errorf(format, args...) }

func toLogrus(fields []Field) logrus.Fields {
	out := make(logrus.Fields, len(fields))
	for _, f := range fields {
		out[f.Key] = f.Value
	}
	return out
}

// LogWithFields returns an entry on the default logger carrying fields.
func LogWithFields(fields ...Field) *Entry {
	return logger.With(fields...)
}

func Info(args ...interface{}) {
	logger.Info(args...)
}

func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

// Debug logs a message when debug output is enabled
func Debug(args ...interface{}) {
	logger.Debug(args...)
}

// Debugf logs a formatted message when debug output is enabled
func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

// Warn logs a warning message
func Warn(args ...interface{}) {
	logger.Warn(args...)
}

// Warnf logs a formatted warning message
func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

// Error logs an error message
func Error(args ...interface{}) {
	logger.Error(args...)
}

// Errorf logs a formatted error message
func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}
