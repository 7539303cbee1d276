package tui

import "github.com/charmbracelet/bubbles/key"

// appKeyMap defines key bindings for the main screen
type appKeyMap struct {
	Run          key.Binding
	ClearCommand key.Binding
	ResetCommand key.Binding
	ClearLog     key.Binding
	SaveLog      key.Binding
	NextPane     key.Binding
	PrevPane     key.Binding
	Up           key.Binding
	Down         key.Binding
	PrevTab      key.Binding
	NextTab      key.Binding
	Select       key.Binding
	Confirm      key.Binding
	Cancel       key.Binding
	Quit         key.Binding
	ForceQuit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k appKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Run, k.NextPane, k.Select, k.ClearCommand, k.ResetCommand, k.ClearLog, k.SaveLog, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k appKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevTab, k.NextTab, k.Select},
		{k.Run, k.ClearCommand, k.ResetCommand},
		{k.ClearLog, k.SaveLog, k.NextPane, k.PrevPane, k.Quit},
	}
}

// editKeyMap is shown while a text input has focus
type editKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k editKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Cancel}
}

// FullHelp returns keybindings for the expanded help view
func (k editKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Confirm, k.Cancel}}
}

func newAppKeyMap() appKeyMap {
	return appKeyMap{
		Run: key.NewBinding(
			key.WithKeys("ctrl+r", "f5"),
			key.WithHelp("ctrl+r", "run"),
		),
		ClearCommand: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "clear cmd"),
		),
		ResetCommand: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "reset cmd"),
		),
		ClearLog: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "clear log"),
		),
		SaveLog: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save log"),
		),
		NextPane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next pane"),
		),
		PrevPane: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev pane"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next tab"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter/space", "toggle/edit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
	}
}
