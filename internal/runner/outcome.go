package runner

import (
	"fmt"
	"time"
)

// OutcomeKind is the terminal state of one run.
type OutcomeKind int

const (
	// Succeeded means the process exited with code 0.
	Succeeded OutcomeKind = iota
	// Failed means the process exited with a nonzero code.
	Failed
	// Errored means the process could not be run at all.
	Errored
)

func (k OutcomeKind) String() string {
	switch k {
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case Errored:
		return "errored"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is reported exactly once per run.
type Outcome struct {
	Kind     OutcomeKind
	ExitCode int           // Process exit code, 128+n when killed by signal n; -1 when Errored
	Signal   string        // Name of the signal that killed the process, if any
	Err      error         // *ExitError when Failed, the cause when Errored
	Lines    int           // Output lines relayed
	Duration time.Duration // Wall time from spawn to exit
}

// Success reports whether the run succeeded.
func (o Outcome) Success() bool {
	return o.Kind == Succeeded
}

func (o Outcome) String() string {
	switch o.Kind {
	case Succeeded:
		return "succeeded"
	case Failed:
		if o.Signal != "" {
			return fmt.Sprintf("failed (signal: %s)", o.Signal)
		}
		return fmt.Sprintf("failed (exit code %d)", o.ExitCode)
	default:
		return fmt.Sprintf("errored: %v", o.Err)
	}
}
