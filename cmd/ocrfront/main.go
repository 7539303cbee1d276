// Ocrfront is a front-end for the ocrmypdf command-line tool.
//
// It turns a set of OCR options into an ocrmypdf command line, lets the
// user review or hand-edit that line, runs it through the system shell and
// streams the tool's output into a timestamped, colour-coded log.
//
// Usage:
//
//	ocrfront [command] [flags]
//
// Running without arguments launches the interactive interface.
// See 'ocrfront --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/muurk/ocrfront/internal/logging"
	"github.com/muurk/ocrfront/internal/version"
)

func main() {
	// A missing .env is normal; only a malformed one is worth reporting
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "Warning: failed to load .env: %v\n", err)
	}

	// Silent unless OCRFRONT_LOG_LEVEL is set
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitCodeError
		if asExitCode(err, &exitErr) {
			logging.Sync()
			os.Exit(exitErr.code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logging.Sync()
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ocrfront",
	Short: "Front-end for the ocrmypdf OCR tool",
	Long: `A front-end for ocrmypdf.

Choose OCR languages, image clean-up, output type, optimization and
metadata; ocrfront builds the matching ocrmypdf command line, runs it and
shows the tool's output as a timestamped log.

Option sets can be stored as named presets in the configuration file.

If no command is specified, the interactive interface will launch automatically.`,
	Version: version.Version,
	Example: `  # Launch the interactive interface
  ocrfront

  # Print the command for an English scan
  ocrfront compile -l eng --input scan.pdf --auto-output

  # Run it and save the log
  ocrfront run -l eng --input scan.pdf --auto-output --save-log run.log

  # Start from a saved preset
  ocrfront run --preset archive --input scan.pdf --output scan_ocr.pdf`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: launch the TUI when no subcommand provided
		return runTUI(cmd, args)
	},
}

// Global flags
var (
	presetName string
	programArg string
	configPath string
)

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&presetName, "preset", "", "Start from a saved preset (default: the configured default preset)")
	rootCmd.PersistentFlags().StringVar(&programArg, "program", "", "Program placed first on the command line (default: ocrmypdf)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Configuration file (default: $OCRFRONT_CONFIG or the user config dir)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Full())
	},
}
