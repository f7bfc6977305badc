package logger

import (
	"log"
	"os"
	"sync"

	"go.uber.org/zap"
)

var (
	logger *zap.SugaredLogger
	once   sync.Once
)

// Init initializes the global structured logger.
// ENV=production switches to the JSON production config.
func Init() {
	once.Do(func() {
		var base *zap.Logger
		var err error
		if os.Getenv("ENV") == "production" {
			base, err = zap.NewProduction()
		} else {
			base, err = zap.NewDevelopment()
		}
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}
		logger = base.Sugar()
	})
}

// L returns the global logger instance
func L() *zap.SugaredLogger {
	if logger == nil {
		Init()
	}
	return logger
}

// Close flushes the logger buffers (important for production to avoid losing log entries)
func Close() {
	if err := L().Sync(); err != nil {
		log.Printf("failed to flush log entries: %v", err)
	}
}

// Info logs a message with alternating key-value pairs.
func Info(msg string, args ...any) {
	L().Infow(msg, args...)
}

// Warn is a shorthand for L().Warnw
func Warn(msg string, args ...any) {
	L().Warnw(msg, args...)
}

// Error is a shorthand for L().Errorw
func Error(msg string, args ...any) {
	L().Errorw(msg, args...)
}

// Debug is a shorthand for L().Debugw
func Debug(msg string, args ...any) {
	L().Debugw(msg, args...)
}

// Fatal logs and exits.
func Fatal(msg string, args ...any) {
	L().Fatalw(msg, args...)
}
