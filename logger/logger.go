package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger represents a structured logger
type Logger struct {
	logger zerolog.Logger
}

var (
	// Default is the default logger instance
	Default *Logger
)

// Init initializes the logger. When debug is true the minimum level is
// forced to debug regardless of environment configuration.
func Init(debug bool) {
	level := getLogLevel()
	if debug {
		level = zerolog.DebugLevel
	}

	// Configure zerolog
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(level)

	// Line-oriented console output on stdout
	output := zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	}

	logger := zerolog.New(output).With().Timestamp().Logger()

	Default = &Logger{logger: logger}
}

// getLogLevel returns the log level from environment variables. An explicit
// LOG_LEVEL wins; otherwise a development environment defaults to debug and
// everything else to info.
func getLogLevel() zerolog.Level {
	levelStr := os.Getenv("LOG_LEVEL")
	if levelStr == "" {
		if os.Getenv("STOCKWATCH_ENVIRONMENT") == "development" {
			return zerolog.DebugLevel
		}
		return zerolog.InfoLevel
	}

	level, err := zerolog.ParseLevel(levelStr)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}

// WithField creates a new logger with a single field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{logger: l.logger.With().Interface(key, value).Logger()}
}

// Debug returns a debug event
func (l *Logger) Debug() *zerolog.Event {
	return l.logger.Debug()
}

// Info returns an info event
func (l *Logger) Info() *zerolog.Event {
	return l.logger.Info()
}

// Warn returns a warn event
func (l *Logger) Warn() *zerolog.Event {
	return l.logger.Warn()
}

// Error returns an error event
func (l *Logger) Error() *zerolog.Event {
	return l.logger.Error()
}

// ForFetcher creates a logger for the page fetcher
func ForFetcher() *Logger {
	return forComponent("fetcher")
}

// ForChecker creates a logger for the availability checker
func ForChecker() *Logger {
	return forComponent("checker")
}

// ForNotifier creates a logger for the notifier
func ForNotifier() *Logger {
	return forComponent("notifier")
}

func forComponent(name string) *Logger {
	if Default == nil {
		Init(false)
	}
	return Default.WithField("component", name)
}
