package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// CommandBox renders a compiled command line inside a bordered box.
type CommandBox struct {
	Title   string   // Box title (default: "Command")
	Command string   // Rendered command text
	Tokens  []string // When set, shown one per line instead of Command
	Width   int      // Terminal width
}

// NewCommandBox creates a command box for a rendered command line.
func NewCommandBox(command string) *CommandBox {
	return &CommandBox{
		Title:   "Command",
		Command: command,
		Width:   GetTerminalWidth(),
	}
}

// SetWidth sets the terminal width for responsive rendering
func (c *CommandBox) SetWidth(width int) *CommandBox {
	c.Width = width
	return c
}

// SetTokens switches the box to one-token-per-line display.
func (c *CommandBox) SetTokens(tokens []string) *CommandBox {
	c.Tokens = tokens
	return c
}

// Render returns the styled box as a string
func (c *CommandBox) Render() string {
	width := c.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}

	body := c.Command
	if len(c.Tokens) > 0 {
		lines := make([]string, len(c.Tokens))
		for i, tok := range c.Tokens {
			lines[i] = fmt.Sprintf("%2d  %s", i, tok)
		}
		body = strings.Join(lines, "\n")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		CommandTitleStyle.Render(c.Title),
		"",
		CommandTextStyle.Width(width-8).Render(body),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(MutedColor).
		Width(width-2).
		Padding(0, 2).
		Render(content)
}

// String implements fmt.Stringer
func (c *CommandBox) String() string {
	return c.Render()
}
