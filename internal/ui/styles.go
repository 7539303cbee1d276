package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette
var (
	// Primary colors
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple - headers, borders
	SuccessColor   = lipgloss.Color("#43BF6D") // Green - success, checkmarks
	ErrorColor     = lipgloss.Color("#FF5555") // Red - errors, X marks
	WarningColor   = lipgloss.Color("#FFA500") // Orange - warnings
	MutedColor     = lipgloss.Color("#626262") // Gray - secondary info
	TextColor      = lipgloss.Color("#FFFFFF") // White - main content
	TimestampColor = lipgloss.Color("#5F87FF") // Blue - log timestamps
)

// Layout constants
const (
	MinTerminalWidth = 60  // Minimum supported terminal width
	MaxContentWidth  = 100 // Maximum content width before capping
	DefaultPadding   = 2   // Default padding inside boxes
)

// Shared styles
var (
	// HeaderTitleStyle is for the main command title (e.g., "OCR RUN")
	HeaderTitleStyle = lipgloss.NewStyle().
				Foreground(TextColor).
				Bold(true).
				PaddingLeft(2)

	// HeaderCommandStyle is for the command line under the title
	HeaderCommandStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamKeyStyle is for parameter keys (e.g., "Input:")
	HeaderParamKeyStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				PaddingLeft(2)

	// HeaderParamValueStyle is for parameter values
	HeaderParamValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// SuccessTitleStyle is for the success result title
	SuccessTitleStyle = lipgloss.NewStyle().
				Foreground(SuccessColor).
				Bold(true)

	// ErrorTitleStyle is for the error result title
	ErrorTitleStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// ErrorMessageStyle is for error message text
	ErrorMessageStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// ResultKeyStyle is for result detail keys
	ResultKeyStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Width(15)

	// ResultValueStyle is for result detail values
	ResultValueStyle = lipgloss.NewStyle().
				Foreground(TextColor)

	// HintTitleStyle is for "Hints:" headers
	HintTitleStyle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Bold(true)

	// HintItemStyle is for hint bullet points
	HintItemStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	// CommandTitleStyle is for the "Command" box title
	CommandTitleStyle = lipgloss.NewStyle().
				Foreground(MutedColor).
				Bold(true)

	// CommandTextStyle is for the command text itself
	CommandTextStyle = lipgloss.NewStyle().
				Foreground(TextColor)
)

// Log line styles, one per level
var (
	LogTimestampStyle = lipgloss.NewStyle().Foreground(TimestampColor)
	LogInfoStyle      = lipgloss.NewStyle()
	LogWarningStyle   = lipgloss.NewStyle().Foreground(WarningColor)
	LogErrorStyle     = lipgloss.NewStyle().Foreground(ErrorColor)
	LogSuccessStyle   = lipgloss.NewStyle().Foreground(SuccessColor)
)

// Status markers
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
	WarningMarker = "⚠"
)

// GetTerminalWidth returns the current terminal width, with fallback
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width < MinTerminalWidth {
		return MinTerminalWidth
	}
	if width > MaxContentWidth {
		return MaxContentWidth
	}
	return width
}


// IsTerminal reports whether stdout is an interactive terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// RenderHorizontalDivider creates a horizontal line of the specified width
func RenderHorizontalDivider(width int, char string) string {
	if width < 0 {
		width = 0
	}
	return lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Render(strings.Repeat(char, width))
}
