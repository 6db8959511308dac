package logging

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents the logging level
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// Logger wraps zap.Logger to provide a consistent interface
type Logger struct {
	zap   *zap.Logger
	level LogLevel
}

// NewLogger creates a new Zap-based logger
func NewLogger(level LogLevel, component string) *Logger {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(logLevelToZap(level))
	config.Development = false
	config.Encoding = "json"

	config.InitialFields = map[string]interface{}{
		"component": component,
		"service":   "ccnotify",
	}

	zapLogger, err := config.Build()
	if err != nil {
		// Fallback to development logger if production config fails
		zapLogger, _ = zap.NewDevelopment()
	}

	return &Logger{
		zap:   zapLogger,
		level: level,
	}
}

// GetLogLevel parses a log level string
func GetLogLevel(level string) LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}

// logLevelToZap converts our LogLevel to zap level
func logLevelToZap(level LogLevel) zapcore.Level {
	switch level {
	case DEBUG:
		return zapcore.DebugLevel
	case INFO:
		return zapcore.InfoLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Info logs info messages
func (l *Logger) Info(message string, args ...interface{}) {
	if len(args) == 0 {
		l.zap.Info(message)
	} else {
		l.zap.Sugar().Infof(message, args...)
	}
}

// Warn logs warning messages
func (l *Logger) Warn(message string, args ...interface{}) {
	if len(args) == 0 {
		l.zap.Warn(message)
	} else {
		l.zap.Sugar().Warnf(message, args...)
	}
}

// Error logs error messages
func (l *Logger) Error(message string, args ...interface{}) {
	if len(args) == 0 {
		l.zap.Error(message)
	} else {
		l.zap.Sugar().Errorf(message, args...)
	}
}

// Event-scoped logging helpers for better traceability
func (l *Logger) EventInfo(repo string, eventType string, message string, fields ...zap.Field) {
	allFields := append([]zap.Field{
		zap.String("repo", repo),
		zap.String("event_type", eventType),
	}, fields...)
	l.zap.Info(message, allFields...)
}

func (l *Logger) EventWarn(repo string, eventType string, message string, fields ...zap.Field) {
	allFields := append([]zap.Field{
		zap.String("repo", repo),
		zap.String("event_type", eventType),
	}, fields...)
	l.zap.Warn(message, allFields...)
}

func (l *Logger) EventError(repo string, eventType string, message string, err error, fields ...zap.Field) {
	allFields := append([]zap.Field{
		zap.String("repo", repo),
		zap.String("event_type", eventType),
		zap.Error(err),
	}, fields...)
	l.zap.Error(message, allFields...)
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() {
	l.zap.Sync()
}

// Global logger instance
var defaultLogger *Logger

// InitLogger initializes the global logger
func InitLogger(level string, component string) {
	logLevel := GetLogLevel(level)
	defaultLogger = NewLogger(logLevel, component)
}

// Global logging functions
func Info(message string, args ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.Info(message, args...)
	}
}

func Warn(message string, args ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.Warn(message, args...)
	}
}

func Error(message string, args ...interface{}) {
	if defaultLogger != nil {
		defaultLogger.Error(message, args...)
	}
}

// Event-scoped global helpers
func EventInfo(repo string, eventType string, message string, fields ...zap.Field) {
	if defaultLogger != nil {
		defaultLogger.EventInfo(repo, eventType, message, fields...)
	}
}

func EventWarn(repo string, eventType string, message string, fields ...zap.Field) {
	if defaultLogger != nil {
		defaultLogger.EventWarn(repo, eventType, message, fields...)
	}
}

func EventError(repo string, eventType string, message string, err error, fields ...zap.Field) {
	if defaultLogger != nil {
		defaultLogger.EventError(repo, eventType, message, err, fields...)
	}
}

// GetLogger returns the default logger instance
func GetLogger() *Logger {
	return defaultLogger
}

func init() {
	if defaultLogger == nil {
		level := os.Getenv("LOG_LEVEL")
		if level == "" {
			level = "info"
		}
		InitLogger(level, "CCNOTIFY")
	}
}
