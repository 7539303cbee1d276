package logging

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "OCRFRONT_LOG_LEVEL"

// LogFileEnvVar redirects log output to a file instead of stderr. The
// interactive UI owns the terminal, so set this when debugging it.
const LogFileEnvVar = "OCRFRONT_LOG_FILE"

// Initialize creates a new logger with the specified level.
// If level is empty, it checks OCRFRONT_LOG_LEVEL environment variable.
// If neither is set, logging is disabled (silent mode).
func Initialize(level string) error {
	// If no level provided, check environment variable
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	// If still no level, use silent mode (nop logger)
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		zapLevel = zapcore.InfoLevel
	}

	output := "stderr"
	if path := os.Getenv(LogFileEnvVar); path != "" {
		output = path
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{output},
		ErrorOutputPaths: []string{"stderr"},
	}

	// Customize encoder for better readability
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from the OCRFRONT_LOG_LEVEL
// environment variable. This is the recommended way to initialize logging
// for CLI commands that want silent mode by default.
func InitializeFromEnv() error {
	return Initialize("")
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		// This ensures no unexpected log output in CLI commands
		logger = zap.NewNop()
	}
	return logger
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// Fatal logs a fatal message and exits
func Fatal(msg string, fields ...zap.Field) {
	GetLogger().Fatal(msg, fields...)
}

// LogCommandCompiled logs a freshly compiled command line
func LogCommandCompiled(commandLine string, tokens int) {
	Debug("Command compiled",
		zap.String("command", commandLine),
		zap.Int("tokens", tokens),
	)
}

// LogCompileError logs a configuration that could not be compiled
func LogCompileError(err error) {
	Warn("Command compilation failed", zap.Error(err))
}

// LogProcessStart logs a command handed to the shell
func LogProcessStart(commandLine string, edited bool) {
	Info("Process starting",
		zap.String("command", commandLine),
		zap.Bool("edited", edited),
	)
}

// LogProcessExit logs the outcome of a finished process
func LogProcessExit(outcome string, exitCode int, lines int, duration time.Duration) {
	Info("Process finished",
		zap.String("outcome", outcome),
		zap.Int("exit_code", exitCode),
		zap.Int("lines", lines),
		zap.Duration("duration", duration),
	)
}

// LogPresetEvent logs a preset being loaded, saved or deleted
func LogPresetEvent(name string, event string) {
	Info("Preset event",
		zap.String("preset", name),
		zap.String("event", event),
	)
}

// LogFileWrite logs a file written on the user's request
func LogFileWrite(kind string, path string, size int, err error) {
	if err != nil {
		Error("File write failed",
			zap.String("kind", kind),
			zap.String("path", path),
			zap.Error(err),
		)
		return
	}
	Info("File written",
		zap.String("kind", kind),
		zap.String("path", path),
		zap.Int("bytes", size),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
