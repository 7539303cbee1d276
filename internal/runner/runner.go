package runner

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/muurk/ocrfront/internal/logrelay"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Terminal log messages.
const (
	MsgCompleted   = "Command completed"
	MsgFailedFmt   = "Command failed with exit code %d"
	MsgSignaledFmt = "Command stopped by signal %d (%s)"
	MsgSpawnErrFmt = "Error while executing command: %v"
)

// Sink receives log entries. *logrelay.Relay implements it.
type Sink interface {
	Push(level logrelay.Level, message string)
}

// Config holds the configuration for command execution.
type Config struct {
	// Shell is the interpreter and its flag that precede the command text.
	// Default: ["sh", "-c"] on Unix, ["cmd", "/C"] on Windows
	Shell []string

	// Encoding names the character set of the command's output, using
	// WHATWG names ("utf-8", "gbk", "windows-1252", ...).
	// Default: "utf-8"
	Encoding string

	// Dir is the working directory. Empty means the current directory.
	Dir string
}

// DefaultConfig returns a Config with sensible defaults for the host OS.
func DefaultConfig() Config {
	shell := []string{"sh", "-c"}
	if runtime.GOOS == "windows" {
		shell = []string{"cmd", "/C"}
	}
	return Config{
		Shell:    shell,
		Encoding: "utf-8",
	}
}

// Runner runs one command line per call. It holds no per-run state, so a
// single Runner may be used for any number of runs.
type Runner struct {
	config Config
	sink   Sink
	logger *zap.Logger
}

// New creates a Runner that relays output to sink.
func New(config Config, sink Sink, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(config.Shell) == 0 {
		config.Shell = DefaultConfig().Shell
	}
	return &Runner{
		config: config,
		sink:   sink,
		logger: logger,
	}
}

// Start runs commandLine on a new goroutine and returns immediately. The
// returned channel delivers the outcome once and is then closed.
func (r *Runner) Start(commandLine string) <-chan Outcome {
	done := make(chan Outcome, 1)
	go func() {
		defer close(done)
		done <- r.Run(commandLine)
	}()
	return done
}

// Run executes commandLine and blocks until it exits.
//
// Steps:
//  1. Resolve the output decoder
//  2. Open one pipe for both stdout and stderr
//  3. Start the shell with the command text
//  4. Relay each decoded line as it arrives
//  5. Wait for exit and relay the terminal entry
func (r *Runner) Run(commandLine string) Outcome {
	startTime := time.Now()

	r.logger.Info("starting command",
		zap.Strings("shell", r.config.Shell),
		zap.String("command", commandLine),
		zap.String("encoding", r.config.Encoding),
	)

	decoder, err := newDecoder(r.config.Encoding)
	if err != nil {
		return r.errored(err, startTime)
	}

	pr, pw, err := os.Pipe()
	if err != nil {
		return r.errored(fmt.Errorf("failed to create output pipe: %w", err), startTime)
	}

	cmd := shellCommand(r.config.Shell, commandLine)
	cmd.Dir = r.config.Dir
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		pw.Close()
		pr.Close()
		return r.errored(&SpawnError{Shell: r.config.Shell[0], Err: err}, startTime)
	}

	// The child holds its own copy of the write end; closing ours lets the
	// reader see EOF once the child and its descendants exit.
	pw.Close()

	lines, readErr := r.relayLines(transform.NewReader(pr, decoder))
	pr.Close()

	waitErr := cmd.Wait()
	duration := time.Since(startTime)

	if readErr != nil {
		r.logger.Warn("output stream ended with error",
			zap.String("command", commandLine),
			zap.Error(readErr),
		)
	}

	exitCode := 0
	var sig syscall.Signal
	signal := ""
	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return r.errored(waitErr, startTime)
		}
		exitCode = exitErr.ExitCode()
		// A signalled process has no exit code; report 128+n like a shell
		if s, ok := exitSignal(exitErr); ok {
			sig, signal = s, s.String()
			exitCode = 128 + int(s)
		}
	}

	r.logger.Info("command exited",
		zap.Int("exit_code", exitCode),
		zap.String("signal", signal),
		zap.Int("lines", lines),
		zap.Duration("duration", duration),
	)

	if exitCode != 0 {
		if signal != "" {
			r.push(logrelay.Error, fmt.Sprintf(MsgSignaledFmt, int(sig), signal))
		} else {
			r.push(logrelay.Error, fmt.Sprintf(MsgFailedFmt, exitCode))
		}
		return Outcome{
			Kind:     Failed,
			ExitCode: exitCode,
			Signal:   signal,
			Err:      &ExitError{Code: exitCode, Signal: signal},
			Lines:    lines,
			Duration: duration,
		}
	}

	r.push(logrelay.Success, MsgCompleted)
	return Outcome{
		Kind:     Succeeded,
		Lines:    lines,
		Duration: duration,
	}
}

// relayLines pushes one Success entry per line until EOF. A final line
// without a trailing newline is relayed too.
func (r *Runner) relayLines(src io.Reader) (int, error) {
	br := bufio.NewReader(src)
	count := 0
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimRight(line, "\r\n")
			r.push(logrelay.Success, strings.ToValidUTF8(line, "\uFFFD"))
			count++
		}
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return count, &StreamError{Err: err}
		}
	}
}

func (r *Runner) errored(err error, startTime time.Time) Outcome {
	r.logger.Error("command could not be executed", zap.Error(err))
	r.push(logrelay.Error, fmt.Sprintf(MsgSpawnErrFmt, err))
	return Outcome{
		Kind:     Errored,
		ExitCode: -1,
		Err:      err,
		Duration: time.Since(startTime),
	}
}

func (r *Runner) push(level logrelay.Level, message string) {
	if r.sink != nil {
		r.sink.Push(level, message)
	}
}

// newDecoder returns a decoder that replaces undecodable bytes with U+FFFD.
func newDecoder(name string) (transform.Transformer, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.EqualFold(name, "utf-8") || strings.EqualFold(name, "utf8") {
		return unicode.UTF8.NewDecoder(), nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported output encoding %q: %w", name, err)
	}
	return enc.NewDecoder(), nil
}
