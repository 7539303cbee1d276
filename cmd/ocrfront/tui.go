package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/muurk/ocrfront/internal/logging"
	"github.com/muurk/ocrfront/internal/logrelay"
	"github.com/muurk/ocrfront/internal/session"
	"github.com/muurk/ocrfront/internal/tui"
)

var tuiOpts optionFlags

// tuiCmd launches the interactive interface
var tuiCmd = &cobra.Command{
	Use:   "tui [input] [output]",
	Short: "Launch the interactive interface",
	Long: `Launch the full-screen interface.

Options are edited on four tabs (Basic, Image, Advanced, Metadata); the
compiled command is shown below them and can be edited by hand before
running. The tool's output streams into the log pane.

This is also what runs when ocrfront is started without a command.
Set OCRFRONT_LOG_FILE when debugging, since the interface owns the terminal.`,
	Example: `  # Start with a file already chosen
  ocrfront tui scan.pdf

  # Start from a preset
  ocrfront tui --preset archive`,
	Args: cobra.MaximumNArgs(2),
	RunE: runTUI,
}

func init() {
	addOptionFlags(tuiCmd, &tuiOpts)
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry()
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(registry)
	if err != nil {
		return err
	}
	// The root command has no option flags of its own
	if cmd.Name() == "tui" {
		if err := tuiOpts.apply(cmd, args, &cfg); err != nil {
			return err
		}
		// A file named on the command line behaves like one picked in the interface
		if len(args) == 1 && cfg.OutputPath == "" {
			cfg.ApplyInput(cfg.InputPath)
		}
	}

	relay := logrelay.NewRelay()
	opts, err := sessionOptions(registry, relay)
	if err != nil {
		return err
	}
	sess := session.New(cfg, opts)
	stopLogging := sess.Subscribe(func(c session.Compiled) {
		if c.Err != nil {
			logging.LogCompileError(c.Err)
			return
		}
		logging.LogCommandCompiled(c.Text, len(c.Tokens))
	})
	defer stopLogging()

	model := tui.NewAppModel(sess, logrelay.NewHistory(), tui.Options{
		LogDir: logDir(registry),
	})
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("interface error: %w", err)
	}
	return nil
}
