package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/ocrfront/internal/logrelay"
	"github.com/muurk/ocrfront/internal/ocrconfig"
	"github.com/muurk/ocrfront/internal/runner"
	"github.com/muurk/ocrfront/internal/session"
	"github.com/muurk/ocrfront/internal/ui"
)

// Pane is the region that receives keys.
type Pane int

const (
	PaneOptions Pane = iota
	PaneCommand
	PaneLog
)

const paneCount = 3

// Options configures the application model.
type Options struct {
	// LogDir is where "save log" suggests writing. Default: current directory
	LogDir string
	// Now stamps suggested log file names. Default: time.Now
	Now func() time.Time
}

// AppModel is the single screen of the front-end: option tabs, the
// editable command line and the log.
type AppModel struct {
	Session *session.Session
	History *logrelay.History

	// Navigation
	Focus  Pane
	Tab    Tab
	Cursor int // Row within the current tab

	// Inline text editing of an option
	Editing bool
	Input   textinput.Model

	// Save-log prompt
	SavingLog bool
	SaveInput textinput.Model

	Command    textarea.Model
	Log        viewport.Model
	CompileErr error

	// Run state
	Running     bool
	LastOutcome *runner.Outcome
	Status      string

	// UI state
	Width  int
	Height int

	Help     help.Model
	Keys     appKeyMap
	EditKeys editKeyMap

	feed *compiledFeed
	opts Options
}

// NewAppModel creates the application model around an existing session
// and log history.
func NewAppModel(sess *session.Session, history *logrelay.History, opts Options) AppModel {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if history == nil {
		history = logrelay.NewHistory()
	}

	input := textinput.New()
	input.CharLimit = 4096
	input.Width = 50
	input.PromptStyle = FocusedInputStyle

	saveInput := textinput.New()
	saveInput.CharLimit = 4096
	saveInput.Width = 50
	saveInput.Prompt = "Save log to: "
	saveInput.PromptStyle = FocusedInputStyle

	cmd := textarea.New()
	cmd.ShowLineNumbers = false
	cmd.Placeholder = "Command line"
	cmd.CharLimit = 0
	cmd.SetHeight(3)
	cmd.SetWidth(MinTerminalWidth - 6)
	cmd.SetValue(sess.CommandText())
	cmd.Blur()

	log := viewport.New(MinTerminalWidth-6, MinLogHeight)

	keys := newAppKeyMap()
	m := AppModel{
		Session:   sess,
		History:   history,
		Focus:     PaneOptions,
		Tab:       TabBasic,
		Input:     input,
		SaveInput: saveInput,
		Command:   cmd,
		Log:       log,
		Help:      help.New(),
		Keys:      keys,
		EditKeys:  editKeyMap{Confirm: keys.Confirm, Cancel: keys.Cancel},
		feed:      subscribeCompiled(sess),
		opts:      opts,
	}
	m.CompileErr = sess.Compiled().Err
	m.refreshLog()
	return m
}

// Close stops following the session's recompilations.
func (m AppModel) Close() {
	m.feed.unsubscribe()
}

// Init starts the relay consumer.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(waitForEntries(m.Session.Relay()), textarea.Blink)
}

// Update handles all messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.syncCommand()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.resize()
		return m, nil

	case entriesMsg:
		m.History.Append(msg...)
		m.refreshLog()
		return m, waitForEntries(m.Session.Relay())

	case outcomeMsg:
		outcome := runner.Outcome(msg)
		m.LastOutcome = &outcome
		m.Running = m.Session.Running()
		m.Status = "Last run " + outcome.String()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.Keys.ForceQuit) {
			return m, tea.Quit
		}
		if m.SavingLog {
			return m.updateSavePrompt(msg)
		}
		if m.Editing {
			return m.updateFieldInput(msg)
		}
		return m.handleKey(msg)
	}

	// Route everything else (cursor blink etc.) to the focused component
	var cmd tea.Cmd
	switch m.Focus {
	case PaneCommand:
		m.Command, cmd = m.Command.Update(msg)
	case PaneLog:
		m.Log, cmd = m.Log.Update(msg)
	}
	return m, cmd
}

// handleKey processes keys in normal mode
func (m AppModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Run):
		return m.run()

	case key.Matches(msg, m.Keys.ClearCommand):
		m.Session.ClearCommand()
		m.Command.SetValue("")
		m.Status = "Command cleared"
		return m, nil

	case key.Matches(msg, m.Keys.ResetCommand):
		m.Session.ResetCommand()
		m.Command.SetValue(m.Session.CommandText())
		m.Status = "Command reset to configuration"
		return m, nil

	case key.Matches(msg, m.Keys.ClearLog):
		m.Session.ClearLog(m.History)
		m.refreshLog()
		return m, nil

	case key.Matches(msg, m.Keys.SaveLog):
		m.SavingLog = true
		m.SaveInput.SetValue(m.suggestedLogPath())
		m.SaveInput.CursorEnd()
		return m, m.SaveInput.Focus()

	case key.Matches(msg, m.Keys.NextPane):
		return m.setFocus(Pane((int(m.Focus) + 1) % paneCount))

	case key.Matches(msg, m.Keys.PrevPane):
		return m.setFocus(Pane((int(m.Focus) + paneCount - 1) % paneCount))
	}

	switch m.Focus {
	case PaneOptions:
		return m.handleOptionsKey(msg)

	case PaneCommand:
		var cmd tea.Cmd
		m.Command, cmd = m.Command.Update(msg)
		if value := m.Command.Value(); value != m.Session.CommandText() {
			m.Session.SetCommandText(value)
		}
		return m, cmd

	case PaneLog:
		if key.Matches(msg, m.Keys.Quit) {
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.Log, cmd = m.Log.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleOptionsKey navigates and edits the option rows
func (m AppModel) handleOptionsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	fields := FieldsFor(m.Tab)

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Up):
		if m.Cursor > 0 {
			m.Cursor--
		}

	case key.Matches(msg, m.Keys.Down):
		if m.Cursor < len(fields)-1 {
			m.Cursor++
		}

	case key.Matches(msg, m.Keys.NextTab):
		m.Tab = Tabs[(int(m.Tab)+1)%len(Tabs)]
		m.Cursor = 0

	case key.Matches(msg, m.Keys.PrevTab):
		m.Tab = Tabs[(int(m.Tab)+len(Tabs)-1)%len(Tabs)]
		m.Cursor = 0

	case key.Matches(msg, m.Keys.Select):
		if m.Cursor >= len(fields) {
			return m, nil
		}
		f := fields[m.Cursor]
		switch f.Kind {
		case KindToggle:
			m.update(f.Toggle)
		case KindChoice:
			next := f.Next(m.Session.Config())
			m.update(func(c *ocrconfig.OcrConfig) { f.SetString(c, next) })
		case KindText:
			m.Editing = true
			m.Input.Prompt = f.Label + ": "
			m.Input.SetValue(f.GetString(m.Session.Config()))
			m.Input.CursorEnd()
			return m, m.Input.Focus()
		}
	}
	return m, nil
}

// updateFieldInput handles keys while an option's text input is open
func (m AppModel) updateFieldInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Confirm):
		fields := FieldsFor(m.Tab)
		if m.Cursor < len(fields) {
			f := fields[m.Cursor]
			value := m.Input.Value()
			m.update(func(c *ocrconfig.OcrConfig) { f.SetString(c, value) })
		}
		m.Editing = false
		m.Input.Blur()
		return m, nil

	case key.Matches(msg, m.Keys.Cancel):
		m.Editing = false
		m.Input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)
	return m, cmd
}

// updateSavePrompt handles keys while the save-log prompt is open
func (m AppModel) updateSavePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Confirm):
		path := strings.TrimSpace(m.SaveInput.Value())
		m.SavingLog = false
		m.SaveInput.Blur()
		if path == "" {
			m.Status = "Save cancelled"
			return m, nil
		}
		if err := m.Session.SaveLog(m.History, path); err != nil {
			m.Status = "Save failed"
		} else {
			m.Status = "Log saved"
		}
		return m, nil

	case key.Matches(msg, m.Keys.Cancel):
		m.SavingLog = false
		m.SaveInput.Blur()
		m.Status = "Save cancelled"
		return m, nil
	}

	var cmd tea.Cmd
	m.SaveInput, cmd = m.SaveInput.Update(msg)
	return m, cmd
}

// run starts the current command line
func (m AppModel) run() (tea.Model, tea.Cmd) {
	done, err := m.Session.Run()
	switch {
	case errors.Is(err, session.ErrRunInProgress):
		m.Session.Relay().Push(logrelay.Warning, "A command is already running")
		return m, nil
	case errors.Is(err, session.ErrEmptyCommand):
		m.Session.Relay().Push(logrelay.Warning, "The command line is empty")
		return m, nil
	case err != nil:
		m.Session.Relay().Push(logrelay.Error, err.Error())
		return m, nil
	}

	m.Running = true
	m.Status = "Running"
	if m.Session.Edited() {
		m.Status = "Running edited command"
	}
	return m, waitForOutcome(done)
}

// update applies an option change and refreshes the command pane
func (m *AppModel) update(mutate func(*ocrconfig.OcrConfig)) {
	m.Session.Update(mutate)
	m.syncCommand()
}

// syncCommand shows the latest recompilation, if one arrived, in the
// command pane.
func (m *AppModel) syncCommand() {
	compiled, ok := m.feed.take()
	if !ok {
		return
	}
	m.CompileErr = compiled.Err
	m.Command.SetValue(m.Session.CommandText())
}

func (m AppModel) setFocus(p Pane) (tea.Model, tea.Cmd) {
	m.Focus = p
	if p == PaneCommand {
		return m, m.Command.Focus()
	}
	m.Command.Blur()
	return m, nil
}

func (m *AppModel) refreshLog() {
	atBottom := m.Log.AtBottom()
	m.Log.SetContent(ui.RenderEntries(m.History.Entries()))
	if atBottom || m.Focus != PaneLog {
		m.Log.GotoBottom()
	}
}

// resize lays the panes out for the terminal size
func (m *AppModel) resize() {
	width := m.Width
	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	inner := width - 6

	m.Command.SetWidth(inner)
	m.Log.Width = inner
	m.Input.Width = inner - 20
	m.SaveInput.Width = inner - 20
	m.Help.Width = inner

	// Frame, tabs, longest tab, command pane, status and titles
	fixed := 6 + 2 + len(FieldsFor(TabBasic)) + 1 + m.Command.Height() + 3 + 2
	logHeight := m.Height - fixed
	if logHeight < MinLogHeight {
		logHeight = MinLogHeight
	}
	m.Log.Height = logHeight
	m.refreshLog()
}

func (m AppModel) suggestedLogPath() string {
	name := "ocrfront-" + m.opts.Now().Format("20060102-150405") + ".log"
	if m.opts.LogDir == "" {
		return name
	}
	return filepath.Join(m.opts.LogDir, name)
}

// View renders the screen
func (m AppModel) View() string {
	var helpText string
	if m.Editing || m.SavingLog {
		helpText = m.Help.View(m.EditKeys)
	} else {
		helpText = m.Help.View(m.Keys)
	}
	return RenderApplicationContainer(m.buildContent(), helpText, m.Width, m.Height)
}

func (m AppModel) buildContent() string {
	var b strings.Builder

	b.WriteString(RenderPaneTitle("Options", m.Focus == PaneOptions))
	b.WriteString("\n")
	b.WriteString(RenderTabs(m.Tab))
	b.WriteString("\n\n")
	b.WriteString(m.renderFields())
	b.WriteString("\n")

	title := "Command"
	if m.Session.Edited() {
		title += " " + EditedBadgeStyle.Render("(edited)")
	}
	b.WriteString(RenderPaneTitle(title, m.Focus == PaneCommand))
	b.WriteString("\n")
	b.WriteString(m.Command.View())
	b.WriteString("\n")
	if m.CompileErr != nil {
		b.WriteString(CompileErrorStyle.Render("✗ " + m.CompileErr.Error()))
	}
	b.WriteString("\n")

	b.WriteString(RenderPaneTitle(fmt.Sprintf("Log (%d)", m.History.Len()), m.Focus == PaneLog))
	b.WriteString("\n")
	b.WriteString(m.Log.View())
	b.WriteString("\n")

	switch {
	case m.SavingLog:
		b.WriteString(m.SaveInput.View())
	case m.Running:
		b.WriteString(RunningStyle.Render("● " + m.Status))
	default:
		b.WriteString(StatusStyle.Render(m.Status))
	}

	return b.String()
}

func (m AppModel) renderFields() string {
	cfg := m.Session.Config()
	fields := FieldsFor(m.Tab)
	rows := make([]string, 0, len(fields))

	for i, f := range fields {
		selected := m.Focus == PaneOptions && i == m.Cursor

		if selected && m.Editing {
			rows = append(rows, "  "+m.Input.View())
			continue
		}

		label := fmt.Sprintf("%-28s", f.Label)
		var row string
		if f.Kind == KindToggle {
			row = f.Value(cfg) + " " + label
		} else {
			row = label + " " + FieldValueStyle.Render(f.Value(cfg))
		}

		if selected {
			rows = append(rows, SelectedFieldStyle.Render("→ "+row))
		} else {
			rows = append(rows, FieldStyle.Render(row))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
