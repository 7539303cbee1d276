package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Confirm displays a warning box listing warnings and asks a yes/no
// question on out, reading the answer from in. Only "y" or "yes"
// (case-insensitive) confirm; anything else, including EOF, declines.
func Confirm(in io.Reader, out io.Writer, title string, warnings []string, question string) bool {
	width := GetTerminalWidth()

	var lines []string

	titleLine := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true).
		Render(fmt.Sprintf("   %s  WARNING  ─  %s", WarningMarker, title))
	lines = append(lines, "", titleLine, "")

	for _, warning := range warnings {
		bulletStyle := lipgloss.NewStyle().Foreground(TextColor).Width(width - 10)
		lines = append(lines, bulletStyle.Render("   • "+warning))
	}
	lines = append(lines, "")

	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(WarningColor).
		Width(width-2).
		Padding(0, 2).
		Render(strings.Join(lines, "\n"))

	_, _ = fmt.Fprintln(out, box)
	_, _ = fmt.Fprintln(out)

	promptStyle := lipgloss.NewStyle().
		Foreground(WarningColor).
		Bold(true)
	_, _ = fmt.Fprint(out, promptStyle.Render(question+" [y/N]: "))

	input, err := bufio.NewReader(in).ReadString('\n')
	_, _ = fmt.Fprintln(out)
	if err != nil && input == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(input)) {
	case "y", "yes":
		return true
	}

	cancelStyle := lipgloss.NewStyle().Foreground(MutedColor)
	_, _ = fmt.Fprintln(out, cancelStyle.Render("  Operation cancelled."))
	_, _ = fmt.Fprintln(out)
	return false
}

// ConfirmEditedCommand asks before running a command line that was typed
// by hand instead of compiled from the configuration.
func ConfirmEditedCommand(in io.Reader, out io.Writer, command string) bool {
	return Confirm(in, out,
		"EDITED COMMAND",
		[]string{
			"This command line was edited by hand and no longer matches the configuration",
			"It will be passed to the shell exactly as written: " + command,
		},
		"Run it anyway?",
	)
}
