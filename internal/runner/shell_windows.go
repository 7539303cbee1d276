//go:build windows

package runner

import (
	"os/exec"
	"strings"
	"syscall"
)

// shellCommand passes the command text to cmd.exe verbatim. Go's default
// argument escaping would add backslashes before the compiler's quotes,
// which cmd.exe does not understand.
func shellCommand(shell []string, commandLine string) *exec.Cmd {
	cmd := exec.Command(shell[0])
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CmdLine: strings.Join(append(append([]string(nil), shell...), commandLine), " "),
	}
	return cmd
}

// exitSignal always reports false; Windows processes end with an exit code.
func exitSignal(*exec.ExitError) (syscall.Signal, bool) {
	return 0, false
}
