package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/ocrfront/internal/logrelay"
	"github.com/muurk/ocrfront/internal/runner"
)

// entriesMsg carries one batch drained from the relay.
type entriesMsg []logrelay.Entry

// outcomeMsg reports a finished run.
type outcomeMsg runner.Outcome

// waitForEntries blocks until the relay has entries and delivers them as
// one message. Update re-arms it after every delivery, so exactly one wait
// is outstanding for the life of the program.
func waitForEntries(relay *logrelay.Relay) tea.Cmd {
	return func() tea.Msg {
		entries, err := relay.Wait(context.Background())
		if err != nil {
			return nil
		}
		return entriesMsg(entries)
	}
}

// waitForOutcome delivers the outcome of one run.
func waitForOutcome(done <-chan runner.Outcome) tea.Cmd {
	return func() tea.Msg {
		return outcomeMsg(<-done)
	}
}
