package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muurk/ocrfront/internal/logrelay"
)

// LevelStyle returns the message style for a log level.
func LevelStyle(level logrelay.Level) lipgloss.Style {
	switch level {
	case logrelay.Warning:
		return LogWarningStyle
	case logrelay.Error:
		return LogErrorStyle
	case logrelay.Success:
		return LogSuccessStyle
	default:
		return LogInfoStyle
	}
}

// RenderEntry renders one log entry as a styled "[HH:MM:SS] message" line.
func RenderEntry(e logrelay.Entry) string {
	return LogTimestampStyle.Render(e.Timestamp()) + " " + LevelStyle(e.Level).Render(e.Message)
}

// RenderEntries renders entries one per line, without a trailing newline.
func RenderEntries(entries []logrelay.Entry) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = RenderEntry(e)
	}
	return strings.Join(lines, "\n")
}
