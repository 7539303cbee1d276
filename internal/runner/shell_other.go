//go:build !windows

package runner

import (
	"os/exec"
	"syscall"
)

// shellCommand builds "shell... commandLine" with the command text as one
// argument.
func shellCommand(shell []string, commandLine string) *exec.Cmd {
	args := append(append([]string(nil), shell[1:]...), commandLine)
	return exec.Command(shell[0], args...)
}

// exitSignal reports the signal that terminated the process, if any.
func exitSignal(err *exec.ExitError) (syscall.Signal, bool) {
	status, ok := err.Sys().(syscall.WaitStatus)
	if !ok || !status.Signaled() {
		return 0, false
	}
	return status.Signal(), true
}
