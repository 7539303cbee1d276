package session

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/muurk/ocrfront/internal/command"
	"github.com/muurk/ocrfront/internal/logrelay"
	"github.com/muurk/ocrfront/internal/ocrconfig"
	"github.com/muurk/ocrfront/internal/runner"
	"go.uber.org/zap"
)

// StartMessagePrefix begins the entry pushed before each run.
const StartMessagePrefix = "Starting command: "

var (
	// ErrRunInProgress is returned by Run under RejectWhileRunning while an
	// earlier run has not finished.
	ErrRunInProgress = errors.New("a command is already running")

	// ErrEmptyCommand is returned by Run when the command text is blank.
	ErrEmptyCommand = errors.New("command is empty")
)

// RunPolicy decides what Run does while another run is active.
type RunPolicy int

const (
	// RejectWhileRunning refuses a new run until the active one finishes.
	RejectWhileRunning RunPolicy = iota
	// AllowConcurrent starts every run. Runs share the relay and their
	// entries may interleave.
	AllowConcurrent
)

func (p RunPolicy) String() string {
	switch p {
	case RejectWhileRunning:
		return "reject"
	case AllowConcurrent:
		return "concurrent"
	default:
		return fmt.Sprintf("RunPolicy(%d)", int(p))
	}
}

// ParseRunPolicy parses "reject" or "concurrent".
func ParseRunPolicy(s string) (RunPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "reject":
		return RejectWhileRunning, nil
	case "concurrent", "allow":
		return AllowConcurrent, nil
	default:
		return RejectWhileRunning, fmt.Errorf("unknown run policy %q (want reject or concurrent)", s)
	}
}

// Options configures a Session.
type Options struct {
	// Program replaces the "ocrmypdf" program token.
	Program string
	// Runner configures the shell and output decoding.
	Runner runner.Config
	// Policy decides whether overlapping runs are allowed.
	Policy RunPolicy
	// Relay receives log entries. A new relay is created when nil.
	Relay *logrelay.Relay
	// Logger receives diagnostics. Default: no-op
	Logger *zap.Logger
}

// Compiled is the result of one recompilation.
type Compiled struct {
	Tokens []string
	Text   string
	Err    error
}

// Session is owned by the presentation layer. Its methods are safe for
// concurrent use, but configuration changes are expected to come from one
// goroutine.
type Session struct {
	mu       sync.Mutex
	opts     Options
	cfg      ocrconfig.OcrConfig
	compiled Compiled
	text     string
	edited   bool
	active   int
	subs     map[int]func(Compiled)
	nextSub  int
	relay    *logrelay.Relay
	logger   *zap.Logger
}

// New creates a session starting from cfg.
func New(cfg ocrconfig.OcrConfig, opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Relay == nil {
		opts.Relay = logrelay.NewRelay()
	}
	if len(opts.Runner.Shell) == 0 {
		defaults := runner.DefaultConfig()
		opts.Runner.Shell = defaults.Shell
		if opts.Runner.Encoding == "" {
			opts.Runner.Encoding = defaults.Encoding
		}
	}

	s := &Session{
		opts:   opts,
		cfg:    cfg.Clone(),
		subs:   make(map[int]func(Compiled)),
		relay:  opts.Relay,
		logger: opts.Logger,
	}
	s.compiled = s.compile()
	s.text = s.compiled.Text
	return s
}

// Relay returns the session's log relay.
func (s *Session) Relay() *logrelay.Relay {
	return s.relay
}

// Config returns a copy of the current configuration.
func (s *Session) Config() ocrconfig.OcrConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.Clone()
}

// Compiled returns the result of the latest compilation.
func (s *Session) Compiled() Compiled {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.compiled
}

// Update applies mutate to the configuration, recompiles the command,
// replaces the command text with the new compilation, and notifies every
// subscriber once. A compilation error leaves the previous command text in
// place and is reported through Compiled.Err.
//
// mutate receives a copy and runs without the session lock, so it may call
// other Session methods. Concurrent Updates are last-writer-wins.
func (s *Session) Update(mutate func(*ocrconfig.OcrConfig)) Compiled {
	cfg := s.Config()
	mutate(&cfg)

	s.mu.Lock()
	s.cfg = cfg
	s.compiled = s.compile()
	if s.compiled.Err == nil {
		s.text = s.compiled.Text
		s.edited = false
	}
	result := s.compiled
	subs := s.subscribers()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(result)
	}
	return result
}

// Subscribe registers fn to be called after every Update. The returned
// function removes the subscription.
func (s *Session) Subscribe(fn func(Compiled)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// CommandText returns the text Run will execute.
func (s *Session) CommandText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// SetCommandText replaces the command text with a manual edit. The edit
// lasts until the next Update or ResetCommand.
func (s *Session) SetCommandText(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = text
	s.edited = !command.Equivalent(text, s.compiled.Text)
}

// Edited reports whether the command text differs from the compiled
// command by more than whitespace.
func (s *Session) Edited() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.edited
}

// ResetCommand discards manual edits.
func (s *Session) ResetCommand() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = s.compiled.Text
	s.edited = false
}

// ClearCommand empties the command text.
func (s *Session) ClearCommand() {
	s.SetCommandText("")
}

// Running reports whether any run has not yet reported its outcome.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active > 0
}

// Run starts the current command text on a new runner and returns at once.
// The channel delivers the run's outcome and is then closed.
func (s *Session) Run() (<-chan runner.Outcome, error) {
	s.mu.Lock()
	text := strings.TrimSpace(s.text)
	if text == "" {
		s.mu.Unlock()
		return nil, ErrEmptyCommand
	}
	if s.active > 0 && s.opts.Policy == RejectWhileRunning {
		s.mu.Unlock()
		return nil, ErrRunInProgress
	}
	s.active++
	edited := s.edited
	s.mu.Unlock()

	s.logger.Info("launching run",
		zap.String("command", text),
		zap.Bool("edited", edited),
		zap.String("policy", s.opts.Policy.String()),
	)

	s.relay.Push(logrelay.Success, StartMessagePrefix+text)

	r := runner.New(s.opts.Runner, s.relay, s.logger)
	inner := r.Start(text)

	done := make(chan runner.Outcome, 1)
	go func() {
		defer close(done)
		outcome := <-inner
		s.mu.Lock()
		s.active--
		s.mu.Unlock()
		done <- outcome
	}()
	return done, nil
}

// ClearLog empties history and pushes the confirmation entry.
func (s *Session) ClearLog(history *logrelay.History) {
	history.Clear(s.relay)
}

// SaveLog writes history to path and reports the result in the log.
func (s *Session) SaveLog(history *logrelay.History, path string) error {
	if err := history.Save(path); err != nil {
		s.relay.Pushf(logrelay.Error, "Failed to save log: %v", err)
		return err
	}
	s.relay.Push(logrelay.Info, "Log saved to "+path)
	return nil
}

func (s *Session) compile() Compiled {
	tokens, err := command.CompileWith(s.cfg, command.Options{Program: s.opts.Program})
	if err != nil {
		s.logger.Debug("command compilation failed", zap.Error(err))
		return Compiled{Err: err}
	}
	return Compiled{Tokens: tokens, Text: command.Render(tokens)}
}

func (s *Session) subscribers() []func(Compiled) {
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]func(Compiled), len(ids))
	for i, id := range ids {
		out[i] = s.subs[id]
	}
	return out
}
