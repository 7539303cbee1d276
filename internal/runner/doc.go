// Package runner executes a rendered command line through the system shell
// and relays its output as log entries.
//
// The command text is handed to the shell unchanged ("sh -c" on Unix,
// "cmd /C" on Windows), so quoting applied by the compiler or by a manual
// edit is interpreted by the shell exactly as typed. Standard output and
// standard error share one pipe, which keeps their interleaving in the order
// the process wrote them.
//
// Every output line becomes a Success entry. When the process ends the
// runner pushes exactly one terminal entry:
//
//	exit 0        Success  "Command completed"
//	exit N        Error    "Command failed with exit code N"
//	spawn failure Error    "Error while executing command: <cause>"
//
// and reports the matching Outcome. Start returns immediately and does all
// of this on its own goroutine. There is no cancellation: a started process
// runs until it exits.
//
//	r := runner.New(runner.DefaultConfig(), relay, logger)
//	done := r.Start(`ocrmypdf -l eng "/in.pdf" "/out.pdf"`)
//	outcome := <-done
package runner
