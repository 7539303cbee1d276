package runner

import "fmt"

// SpawnError means the shell could not be started.
type SpawnError struct {
	// Shell is the interpreter that failed to start
	Shell string
	// Underlying error
	Err error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to start %s: %v", e.Shell, e.Err)
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// ExitError means the command ran and exited with a nonzero code, or was
// killed by a signal.
type ExitError struct {
	Code   int
	Signal string
}

func (e *ExitError) Error() string {
	if e.Signal != "" {
		return fmt.Sprintf("killed by signal: %s", e.Signal)
	}
	return fmt.Sprintf("exit code %d", e.Code)
}

// StreamError means reading the command's output failed part way through.
type StreamError struct {
	Err error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("failed to read command output: %v", e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}
