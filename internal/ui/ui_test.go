package ui

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/muurk/ocrfront/internal/logrelay"
	"github.com/muurk/ocrfront/internal/runner"
)

func TestRenderEntryContainsTimestampAndMessage(t *testing.T) {
	e := logrelay.Entry{
		Time:    time.Date(2024, 1, 1, 9, 5, 7, 0, time.Local),
		Level:   logrelay.Warning,
		Message: "page 3 has no text",
	}
	got := RenderEntry(e)
	if !strings.Contains(got, "[09:05:07]") {
		t.Errorf("RenderEntry() = %q, missing timestamp", got)
	}
	if !strings.Contains(got, "page 3 has no text") {
		t.Errorf("RenderEntry() = %q, missing message", got)
	}
}

func TestRenderEntriesOnePerLine(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.Local)
	entries := []logrelay.Entry{
		{Time: now, Level: logrelay.Info, Message: "first"},
		{Time: now, Level: logrelay.Error, Message: "second"},
	}
	got := RenderEntries(entries)
	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderEntries() produced %d lines, want 2: %q", len(lines), got)
	}
	if !strings.Contains(lines[0], "first") || !strings.Contains(lines[1], "second") {
		t.Errorf("RenderEntries() out of order: %q", got)
	}
	if RenderEntries(nil) != "" {
		t.Error("RenderEntries(nil) should be empty")
	}
}

func TestLevelStyleDistinguishesLevels(t *testing.T) {
	levels := []logrelay.Level{logrelay.Info, logrelay.Warning, logrelay.Error, logrelay.Success}
	for _, level := range levels {
		t.Run(level.String(), func(t *testing.T) {
			// Rendering must keep the text whatever the color profile.
			if got := LevelStyle(level).Render("x"); !strings.Contains(got, "x") {
				t.Errorf("LevelStyle(%v).Render lost text: %q", level, got)
			}
		})
	}
}

func TestHeaderRendersParamsInOrder(t *testing.T) {
	h := NewHeader("OCR Run", "ocrmypdf", []Param{
		{Key: "Input", Value: "a.pdf"},
		{Key: "Output", Value: "b.pdf"},
	}).SetWidth(80)

	got := h.Render()
	for _, want := range []string{"OCR RUN", "ocrmypdf", "Input:", "a.pdf", "Output:", "b.pdf"} {
		if !strings.Contains(got, want) {
			t.Errorf("Header.Render() missing %q", want)
		}
	}
	if strings.Index(got, "Input:") > strings.Index(got, "Output:") {
		t.Error("Header.Render() did not keep param order")
	}
}

func TestResultRender(t *testing.T) {
	tests := []struct {
		name   string
		result *Result
		want   []string
	}{
		{
			name:   "success",
			result: NewSuccessResult("done", []Param{{Key: "Lines", Value: "12"}}),
			want:   []string{"SUCCESS", "done", "Lines:", "12"},
		},
		{
			name:   "failure",
			result: NewFailureResult("broke", errors.New("exit 2"), []string{"check input"}),
			want:   []string{"FAILED", "broke", "exit 2", "Hints:", "check input"},
		},
		{
			name:   "warning",
			result: NewWarningResult("careful", nil),
			want:   []string{"WARNING", "careful"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.result.SetWidth(80).Render()
			for _, w := range tt.want {
				if !strings.Contains(got, w) {
					t.Errorf("Render() missing %q in:\n%s", w, got)
				}
			}
		})
	}
}

func TestCommandBoxTokens(t *testing.T) {
	got := NewCommandBox(`ocrmypdf "-" "-"`).
		SetTokens([]string{"ocrmypdf", `"-"`, `"-"`}).
		SetWidth(80).
		Render()
	for _, want := range []string{"Command", " 0  ocrmypdf", ` 2  "-"`} {
		if !strings.Contains(got, want) {
			t.Errorf("CommandBox.Render() missing %q in:\n%s", want, got)
		}
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"  yes  \n", true},
		{"n\n", false},
		{"\n", false},
		{"", false},
		{"y", true},
		{"sure\n", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			got := ConfirmEditedCommand(strings.NewReader(tt.input), &out, "ocrmypdf x y")
			if got != tt.want {
				t.Errorf("ConfirmEditedCommand(%q) = %v, want %v", tt.input, got, tt.want)
			}
			if !strings.Contains(out.String(), "[y/N]") {
				t.Error("prompt not written")
			}
		})
	}
}

func TestRunViewFollowPrintsEveryEntry(t *testing.T) {
	relay := logrelay.NewRelay()
	history := logrelay.NewHistory()
	done := make(chan runner.Outcome, 1)

	var out bytes.Buffer
	view := NewRunView(RunViewConfig{
		Title:   "OCR Run",
		Command: "true",
		Plain:   true,
		Quiet:   true,
		Output:  &out,
	})

	relay.Push(logrelay.Info, "Starting command: true")
	go func() {
		relay.Push(logrelay.Info, "line one")
		relay.Push(logrelay.Info, "line two")
		relay.Push(logrelay.Success, runner.MsgCompleted)
		done <- runner.Outcome{Kind: runner.Succeeded, Lines: 2}
	}()

	outcome := view.Follow(relay, done, history)
	if !outcome.Success() {
		t.Fatalf("Follow() outcome = %v, want success", outcome)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	want := []string{"Starting command: true", "line one", "line two", runner.MsgCompleted}
	if len(lines) != len(want) {
		t.Fatalf("printed %d lines, want %d: %q", len(lines), len(want), out.String())
	}
	for i, w := range want {
		if !strings.HasSuffix(lines[i], "] "+w) {
			t.Errorf("line %d = %q, want suffix %q", i, lines[i], w)
		}
	}
	if history.Len() != len(want) {
		t.Errorf("history has %d entries, want %d", history.Len(), len(want))
	}
	if relay.Len() != 0 {
		t.Errorf("relay still holds %d entries", relay.Len())
	}
}

func TestRunViewPrintOutcome(t *testing.T) {
	tests := []struct {
		name    string
		outcome runner.Outcome
		want    string
	}{
		{"succeeded", runner.Outcome{Kind: runner.Succeeded}, "SUCCESS"},
		{"failed", runner.Outcome{Kind: runner.Failed, ExitCode: 6, Err: &runner.ExitError{Code: 6}}, "already has text"},
		{"errored", runner.Outcome{Kind: runner.Errored, ExitCode: -1, Err: errors.New("no shell")}, "could not start"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			view := NewRunView(RunViewConfig{Title: "OCR Run", Output: &out}).SetWidth(100)
			view.PrintOutcome(tt.outcome)
			if !strings.Contains(out.String(), tt.want) {
				t.Errorf("PrintOutcome() missing %q in:\n%s", tt.want, out.String())
			}
		})
	}
}

func TestFailureHints(t *testing.T) {
	tests := []struct {
		name    string
		outcome runner.Outcome
		want    string
	}{
		{"errored", runner.Outcome{Kind: runner.Errored}, "shell"},
		{"not found", runner.Outcome{Kind: runner.Failed, ExitCode: 127}, "not found"},
		{"bad args", runner.Outcome{Kind: runner.Failed, ExitCode: 1}, "arguments"},
		{"encrypted", runner.Outcome{Kind: runner.Failed, ExitCode: 8}, "encrypted"},
		{"killed", runner.Outcome{Kind: runner.Failed, ExitCode: 137, Signal: "killed"}, "signal (killed)"},
		{"interrupted", runner.Outcome{Kind: runner.Failed, ExitCode: 130, Signal: "interrupt"}, "interrupted"},
		{"other", runner.Outcome{Kind: runner.Failed, ExitCode: 42}, "Review the log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hints := FailureHints(tt.outcome)
			if len(hints) == 0 || !strings.Contains(strings.Join(hints, " "), tt.want) {
				t.Errorf("FailureHints() = %v, want mention of %q", hints, tt.want)
			}
		})
	}
}

func TestFailureHintsLinkDocumentation(t *testing.T) {
	hints := FailureHints(runner.Outcome{Kind: runner.Failed, ExitCode: 3})
	if !strings.Contains(strings.Join(hints, " "), "https://") {
		t.Errorf("FailureHints(exit 3) = %v, want an installation link", hints)
	}
}

func TestPrintWarning(t *testing.T) {
	var out bytes.Buffer
	PrintWarning(&out, "Running an edited command", []Param{{Key: "Compiled", Value: "ocrmypdf -d"}})

	for _, want := range []string{"WARNING", "Running an edited command", "Compiled:", "ocrmypdf -d"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("PrintWarning() output missing %q:\n%s", want, out.String())
		}
	}
}
