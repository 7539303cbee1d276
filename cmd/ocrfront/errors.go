package main

import (
	"errors"
	"fmt"
)

// exitCodeError makes the process exit with code without printing
// anything further; the command has already reported the failure.
type exitCodeError struct {
	code int
}

func (e *exitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func asExitCode(err error, target **exitCodeError) bool {
	return errors.As(err, target)
}
