// Package logging provides diagnostic structured logging for ocrfront.
//
// This is the developer-facing log, separate from the timestamped entries a
// user sees in the run log (see package logrelay). It wraps a global zap
// logger that stays silent unless OCRFRONT_LOG_LEVEL is set.
//
// # Log Levels
//
//   - Debug: command recompilation, relay traffic
//   - Info: process start and exit, preset and file events
//   - Warn: compile failures, truncated output streams
//   - Error: spawn failures, failed file writes
//
// # Structured Logging
//
//	logging.Info("Process starting",
//	    zap.String("command", line),
//	    zap.Bool("edited", true),
//	)
//
// # Configuration
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    fmt.Fprintln(os.Stderr, err)
//	}
//	defer logging.Sync()
//
// Output goes to stderr, or to the file named by OCRFRONT_LOG_FILE, which is
// the only useful destination while the full-screen interface is running.
package logging
