package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/ocrfront/internal/command"
	"github.com/muurk/ocrfront/internal/logging"
	"github.com/muurk/ocrfront/internal/logrelay"
	"github.com/muurk/ocrfront/internal/ocrconfig"
	"github.com/muurk/ocrfront/internal/runner"
	"github.com/muurk/ocrfront/internal/session"
	"github.com/muurk/ocrfront/internal/ui"
)

var (
	runOpts    optionFlags
	runCommand string
	runSaveLog string
	runYes     bool
	runPlain   bool
	runQuiet   bool
)

// runCmd compiles and executes the command, streaming its log
var runCmd = &cobra.Command{
	Use:   "run [input] [output]",
	Short: "Run ocrmypdf and stream its log",
	Long: `Build the ocrmypdf command line, run it through the system shell and
stream its output as a timestamped log.

The command's standard output and standard error are merged in the order
they were written. ocrfront exits with the tool's own exit status.

--command replaces the compiled line with one written by hand. When it
differs from what the options would produce you are asked to confirm,
unless --yes is given.`,
	Example: `  # OCR a scan to PDF/A with English and French
  ocrfront run -l eng -l fra scan.pdf scan_ocr.pdf

  # Run a hand-written command and keep the log
  ocrfront run --command 'ocrmypdf --jobs 4 in.pdf out.pdf' --yes --save-log ocr.log`,
	Args: cobra.MaximumNArgs(2),
	RunE: runRun,
}

func init() {
	addOptionFlags(runCmd, &runOpts)
	runCmd.Flags().StringVar(&runCommand, "command", "", "Run this command line instead of the compiled one")
	runCmd.Flags().StringVar(&runSaveLog, "save-log", "", "Write the log to this file when the run ends")
	runCmd.Flags().BoolVarP(&runYes, "yes", "y", false, "Do not ask before running an edited command")
	runCmd.Flags().BoolVar(&runPlain, "plain", false, "Print unstyled log lines")
	runCmd.Flags().BoolVarP(&runQuiet, "quiet", "q", false, "Print only the log, without header and result boxes")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry()
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(registry)
	if err != nil {
		return err
	}
	if err := runOpts.apply(cmd, args, &cfg); err != nil {
		return err
	}

	relay := logrelay.NewRelay()
	opts, err := sessionOptions(registry, relay)
	if err != nil {
		return err
	}
	sess := session.New(cfg, opts)

	compiled := sess.Compiled()
	if compiled.Err != nil && runCommand == "" {
		logging.LogCompileError(compiled.Err)
		return compiled.Err
	}
	if compiled.Err == nil {
		logging.LogCommandCompiled(compiled.Text, len(compiled.Tokens))
	}

	if runCommand != "" {
		sess.SetCommandText(runCommand)
		if sess.Edited() && !runYes {
			if !ui.IsTerminal() {
				return errors.New("--command differs from the compiled command; pass --yes to run it")
			}
			if !ui.ConfirmEditedCommand(os.Stdin, cmd.OutOrStdout(), runCommand) {
				return nil
			}
		} else if sess.Edited() && !runQuiet && !runPlain && ui.IsTerminal() {
			ui.PrintWarning(cmd.OutOrStdout(), "Running an edited command", []ui.Param{
				{Key: "Compiled", Value: compiled.Text},
				{Key: "Running", Value: runCommand},
			})
		}
	}

	text := sess.CommandText()
	done, err := sess.Run()
	if err != nil {
		return err
	}
	logging.LogProcessStart(text, sess.Edited())

	view := ui.NewRunView(ui.RunViewConfig{
		Title:   "OCR Run",
		Command: text,
		Params:  runParams(cfg),
		Plain:   runPlain || !ui.IsTerminal(),
		Quiet:   runQuiet,
		Output:  cmd.OutOrStdout(),
	})
	view.PrintHeader()

	history := logrelay.NewHistory()
	outcome := view.Follow(relay, done, history)
	logging.LogProcessExit(outcome.Kind.String(), outcome.ExitCode, outcome.Lines, outcome.Duration)

	if runSaveLog != "" {
		saveErr := sess.SaveLog(history, runSaveLog)
		logging.LogFileWrite("log", runSaveLog, len(history.Text()), saveErr)
		for _, e := range relay.DrainAll() {
			if runPlain || !ui.IsTerminal() {
				fmt.Fprintln(cmd.OutOrStdout(), logrelay.Format(e))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.RenderEntry(e))
			}
		}
		if saveErr != nil && outcome.Success() {
			return saveErr
		}
	}

	if code := exitStatus(outcome); code != 0 {
		return &exitCodeError{code: code}
	}
	return nil
}

// exitStatus is the process exit status that mirrors outcome. The runner
// already maps signals to 128+n; anything that is not a valid status
// becomes 1.
func exitStatus(outcome runner.Outcome) int {
	switch outcome.Kind {
	case runner.Succeeded:
		return 0
	case runner.Failed:
		if outcome.ExitCode < 1 || outcome.ExitCode > 255 {
			return 1
		}
		return outcome.ExitCode
	default:
		return 1
	}
}

// runParams lists the options worth showing in the run header.
func runParams(cfg ocrconfig.OcrConfig) []ui.Param {
	names := make([]string, 0, len(cfg.Languages))
	for _, code := range ocrconfig.CanonicalLanguages(cfg.Languages) {
		names = append(names, ocrconfig.LanguageName(code))
	}

	params := []ui.Param{
		{Key: "Input", Value: orStdio(cfg.InputPath)},
		{Key: "Output", Value: orStdio(cfg.OutputPath)},
	}
	if len(names) > 0 {
		params = append(params, ui.Param{Key: "Languages", Value: strings.Join(names, ", ")})
	}
	if cfg.OutputType != "" {
		params = append(params, ui.Param{Key: "Output type", Value: string(cfg.OutputType)})
	}
	if cfg.Optimize != "" {
		params = append(params, ui.Param{Key: "Optimization", Value: cfg.Optimize})
	}
	if cfg.SidecarEnabled {
		params = append(params, ui.Param{Key: "Sidecar", Value: command.Sidecar(cfg.InputPath, cfg.SidecarName)})
	}
	return params
}

func orStdio(p string) string {
	if strings.TrimSpace(p) == "" {
		return "(standard stream)"
	}
	return p
}
