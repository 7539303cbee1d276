package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/muurk/ocrfront/internal/logrelay"
	"github.com/muurk/ocrfront/internal/runner"
	"github.com/muurk/ocrfront/internal/urls"
)

// RunViewConfig holds configuration for a run view
type RunViewConfig struct {
	Title   string    // Run title (e.g., "OCR Run")
	Command string    // Command line being run
	Params  []Param   // Parameters to display in header
	Plain   bool      // Print unstyled "[HH:MM:SS] message" lines
	Quiet   bool      // Skip header and result boxes
	Output  io.Writer // Output writer (default: os.Stdout)
}

// RunView follows a single run in the terminal. It prints the header,
// streams the relay's entries as they arrive and prints a result box once
// the run's outcome is delivered.
type RunView struct {
	config RunViewConfig
	header *Header
	output io.Writer
	width  int
}

// NewRunView creates a view for one run.
func NewRunView(config RunViewConfig) *RunView {
	if config.Output == nil {
		config.Output = os.Stdout
	}

	width := GetTerminalWidth()
	header := NewHeader(config.Title, config.Command, config.Params)
	header.SetWidth(width)

	return &RunView{
		config: config,
		header: header,
		output: config.Output,
		width:  width,
	}
}

// SetWidth overrides the detected terminal width.
func (v *RunView) SetWidth(width int) *RunView {
	v.width = width
	v.header.SetWidth(width)
	return v
}

// PrintHeader prints the run header.
func (v *RunView) PrintHeader() {
	if v.config.Quiet {
		return
	}
	_, _ = fmt.Fprintln(v.output, v.header.Render())
	_, _ = fmt.Fprintln(v.output)
}

// Follow consumes relay until the outcome arrives on done, then drains
// whatever is still pending and prints the result. Every printed entry is
// also appended to history when it is non-nil.
func (v *RunView) Follow(relay *logrelay.Relay, done <-chan runner.Outcome, history *logrelay.History) runner.Outcome {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	result := make(chan runner.Outcome, 1)
	go func() {
		result <- <-done
		cancel()
	}()

	for {
		entries, err := relay.Wait(ctx)
		v.print(entries, history)
		if err != nil {
			break
		}
	}
	v.print(relay.DrainAll(), history)

	outcome := <-result
	v.PrintOutcome(outcome)
	return outcome
}

// PrintOutcome prints the result box for a finished run.
func (v *RunView) PrintOutcome(o runner.Outcome) {
	if v.config.Quiet {
		return
	}

	_, _ = fmt.Fprintln(v.output)
	switch o.Kind {
	case runner.Succeeded:
		r := NewSuccessResult(v.config.Title+" complete", []Param{
			{Key: "Exit code", Value: "0"},
			{Key: "Output lines", Value: fmt.Sprintf("%d", o.Lines)},
			{Key: "Duration", Value: o.Duration.Round(time.Millisecond).String()},
		})
		_, _ = fmt.Fprintln(v.output, r.SetWidth(v.width).Render())
	case runner.Failed:
		r := NewFailureResult(v.config.Title+" failed", o.Err, FailureHints(o))
		r.AddDetail("Exit code", fmt.Sprintf("%d", o.ExitCode))
		if o.Signal != "" {
			r.AddDetail("Signal", o.Signal)
		}
		r.AddDetail("Duration", o.Duration.Round(time.Millisecond).String())
		_, _ = fmt.Fprintln(v.output, r.SetWidth(v.width).Render())
	default:
		r := NewFailureResult(v.config.Title+" could not start", o.Err, FailureHints(o))
		_, _ = fmt.Fprintln(v.output, r.SetWidth(v.width).Render())
	}
}

func (v *RunView) print(entries []logrelay.Entry, history *logrelay.History) {
	if len(entries) == 0 {
		return
	}
	if history != nil {
		history.Append(entries...)
	}
	for _, e := range entries {
		line := RenderEntry(e)
		if v.config.Plain {
			line = logrelay.Format(e)
		}
		_, _ = fmt.Fprintln(v.output, line)
	}
}

// FailureHints returns troubleshooting suggestions for a failed outcome.
func FailureHints(o runner.Outcome) []string {
	switch {
	case o.Kind == runner.Errored:
		return []string{
			"Check that the shell is installed and on PATH",
			"Check the working directory exists",
		}
	case o.ExitCode == 127 || o.ExitCode == 9009:
		return []string{
			"The program was not found; install ocrmypdf or set --program",
			"Installation guide: " + urls.Installation,
		}
	case o.ExitCode == 1:
		return []string{
			"ocrmypdf rejected its arguments; review the command line",
		}
	case o.ExitCode == 2:
		return []string{
			"The input file is missing or is not a PDF or image",
		}
	case o.ExitCode == 3:
		return []string{
			"A required dependency (Tesseract, Ghostscript) is missing",
			"Installation guide: " + urls.Installation,
		}
	case o.ExitCode == 4:
		return []string{
			"The output file was not valid; try another output type",
		}
	case o.ExitCode == 5:
		return []string{
			"The input or output file could not be accessed",
		}
	case o.ExitCode == 6:
		return []string{
			"The PDF already has text; enable force OCR or skip text",
		}
	case o.ExitCode == 8:
		return []string{
			"The PDF is encrypted; decrypt it first",
		}
	case o.ExitCode == 130:
		return []string{
			"The run was interrupted",
		}
	case o.Signal != "":
		return []string{
			"The process was stopped by a signal (" + o.Signal + ")",
			"Large scans can exhaust memory; try fewer pages with --pages",
		}
	default:
		return []string{
			"Review the log above for the tool's own error message",
			"Exit codes: " + urls.ExitCodes,
		}
	}
}

// PrintWarning is a convenience function to print a warning result
func PrintWarning(out io.Writer, title string, details []Param) {
	_, _ = fmt.Fprintln(out, NewWarningResult(title, details).Render())
}
