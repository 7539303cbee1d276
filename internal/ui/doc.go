// Package ui provides terminal output components for the ocrfront CLI.
//
// This package uses Lipgloss to render polished terminal output for the
// non-interactive commands. Unlike the interactive TUI, these components
// follow a "run once and exit" pattern: they render output but never take
// over the screen.
//
// # Architecture
//
// The package provides these component types:
//
//   - Header: Command banner showing the run title, command and parameters
//   - CommandBox: A compiled command line, whole or one token per line
//   - Result: Success/failure/warning boxes with styled details and hints
//   - Confirm: A yes/no prompt behind a warning box
//
// Log entries are rendered by RenderEntry with a blue timestamp and a
// level-coloured message. RunView ties these together for one run: it
// prints the header, follows a log relay until the run's outcome arrives
// and prints the result box.
//
// # Usage Pattern
//
//	done, err := sess.Run()
//	if err != nil {
//	    return err
//	}
//	view := ui.NewRunView(ui.RunViewConfig{
//	    Title:   "OCR Run",
//	    Command: sess.CommandText(),
//	})
//	view.PrintHeader()
//	outcome := view.Follow(sess.Relay(), done, history)
//
// # Logging Integration
//
// This package expects logging to be controlled via the OCRFRONT_LOG_LEVEL
// environment variable. When unset or empty, zap logging is silent, allowing
// the curated UI output to be displayed cleanly.
package ui
