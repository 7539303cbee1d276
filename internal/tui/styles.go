package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/ocrfront/internal/version"
)

// Application branding constants
const (
	AppName   = "OCRMYPDF FRONT-END"
	GitHubURL = "github.com/muurk/ocrfront"
)

// AppVersion returns the application version from the centralized version package
func AppVersion() string {
	return version.Version
}

// Layout constants for responsive terminal width
const (
	MinTerminalWidth  = 72 // Minimum supported terminal width
	MinTerminalHeight = 30 // Minimum height before the log pane collapses
	MinLogHeight      = 3  // Log pane never shrinks below this
)

// Color palette
var (
	PrimaryColor   = lipgloss.Color("#7D56F4") // Purple
	SecondaryColor = lipgloss.Color("#43BF6D") // Green
	WarningColor   = lipgloss.Color("#FFA500") // Orange
	ErrorColor     = lipgloss.Color("#FF0000") // Red

	TextColor      = lipgloss.Color("#FFFFFF") // White
	SubtleColor    = lipgloss.Color("#626262") // Gray
	BorderColor    = lipgloss.Color("#7D56F4") // Purple (same as primary)
	HighlightColor = lipgloss.Color("#43BF6D") // Green (same as secondary)
)

// Common styles
var (
	// Tab labels
	TabStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Padding(0, 2)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true).
			Underline(true).
			Padding(0, 2)

	// Option rows
	FieldStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Foreground(TextColor)

	SelectedFieldStyle = lipgloss.NewStyle().
				Foreground(HighlightColor).
				Bold(true)

	FieldValueStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// Pane titles
	PaneTitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Bold(true)

	FocusedPaneTitleStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)

	// Command pane
	EditedBadgeStyle = lipgloss.NewStyle().
				Foreground(WarningColor).
				Bold(true)

	CompileErrorStyle = lipgloss.NewStyle().
				Foreground(ErrorColor)

	// Status line
	StatusStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	RunningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	// Focused input style
	FocusedInputStyle = lipgloss.NewStyle().
				Foreground(PrimaryColor).
				Bold(true)
)

// BuildHeaderContent creates header content with app name and GitHub URL
func BuildHeaderContent() string {
	left := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true).
		Render(AppName + " v" + AppVersion())

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(GitHubURL)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}

// BuildFooterContent creates footer content with help text
func BuildFooterContent(helpText string) string {
	return lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(helpText)
}

// RenderApplicationContainer wraps a screen in the application frame: a
// header with name and version, the content, and a footer with help text,
// inside a border filling the terminal.
//
// Pattern:
//
//	func (m Model) View() string {
//	    content := m.buildContent()
//	    helpText := "context-specific help..."
//	    return RenderApplicationContainer(content, helpText, m.Width, m.Height)
//	}
func RenderApplicationContainer(content string, footerText string, terminalWidth int, terminalHeight int) string {
	if terminalWidth < MinTerminalWidth {
		terminalWidth = MinTerminalWidth
	}

	headerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4). // Leave room for outer border
		Padding(0, 1)

	footerStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(BorderColor).
		Width(terminalWidth-4).
		Padding(0, 1)

	contentStyle := lipgloss.NewStyle().
		Width(terminalWidth - 4)

	innerContent := lipgloss.JoinVertical(
		lipgloss.Left,
		headerStyle.Render(BuildHeaderContent()),
		contentStyle.Render(content),
		footerStyle.Render(BuildFooterContent(footerText)),
	)

	borderStyle := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(BorderColor).
		Width(terminalWidth - 2).
		AlignVertical(lipgloss.Top)
	if terminalHeight > 2 {
		borderStyle = borderStyle.Height(terminalHeight - 2)
	}

	return borderStyle.Render(innerContent)
}

// RenderTabs renders the tab bar with active highlighted.
func RenderTabs(active Tab) string {
	var tabs []string
	for _, t := range Tabs {
		if t == active {
			tabs = append(tabs, ActiveTabStyle.Render(t.String()))
		} else {
			tabs = append(tabs, TabStyle.Render(t.String()))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// RenderPaneTitle renders a pane heading, highlighted when focused.
func RenderPaneTitle(title string, focused bool) string {
	if focused {
		return FocusedPaneTitleStyle.Render("▸ " + title)
	}
	return PaneTitleStyle.Render("  " + title)
}
