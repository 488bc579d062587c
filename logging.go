package main

import (
	"log/slog"
	"os"
)

var logger *slog.Logger

// initLogger sets up structured JSON logging on stderr, keeping stdout
// clean for the summaries themselves.
func initLogger(level slog.Level) {
	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewJSONHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// logInfo logs an info message with optional attributes
func logInfo(msg string, attrs ...any) {
	if logger != nil {
		logger.Info(msg, attrs...)
	}
}

// logWarn logs a warning message with optional attributes
func logWarn(msg string, attrs ...any) {
	if logger != nil {
		logger.Warn(msg, attrs...)
	}
}

// logError logs an error message with optional attributes
func logError(msg string, attrs ...any) {
	if logger != nil {
		logger.Error(msg, attrs...)
	}
}

// logDebug logs a debug message with optional attributes
func logDebug(msg string, attrs ...any) {
	if logger != nil {
		logger.Debug(msg, attrs...)
	}
}
