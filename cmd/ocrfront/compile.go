package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/muurk/ocrfront/internal/command"
	"github.com/muurk/ocrfront/internal/logging"
	"github.com/muurk/ocrfront/internal/ui"
)

var (
	compileOpts   optionFlags
	compileTokens bool
	compilePlain  bool
)

// compileCmd prints the command line without running it
var compileCmd = &cobra.Command{
	Use:   "compile [input] [output]",
	Short: "Print the ocrmypdf command for a set of options",
	Long: `Build the ocrmypdf command line for the given options and print it.

Options start from --preset (or the configured default preset) and are
overridden by any flag given here. Nothing is executed.

Paths are wrapped in double quotes without escaping, so a path that itself
contains a double quote produces a broken command line.`,
	Example: `  # Plain command for scripting
  ocrfront compile --plain -l eng+fra --deskew scan.pdf out.pdf

  # Show each token on its own line
  ocrfront compile --tokens --preset archive scan.pdf`,
	Args: cobra.MaximumNArgs(2),
	RunE: runCompile,
}

func init() {
	addOptionFlags(compileCmd, &compileOpts)
	compileCmd.Flags().BoolVar(&compileTokens, "tokens", false, "Show one token per line")
	compileCmd.Flags().BoolVar(&compilePlain, "plain", false, "Print the bare command line (default when not a terminal)")
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry()
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(registry)
	if err != nil {
		return err
	}
	if err := compileOpts.apply(cmd, args, &cfg); err != nil {
		return err
	}

	opts, err := sessionOptions(registry, nil)
	if err != nil {
		return err
	}

	tokens, err := command.CompileWith(cfg, command.Options{Program: opts.Program})
	if err != nil {
		logging.LogCompileError(err)
		return err
	}
	text := command.Render(tokens)
	logging.LogCommandCompiled(text, len(tokens))

	out := cmd.OutOrStdout()
	if compilePlain || !ui.IsTerminal() {
		if compileTokens {
			for _, tok := range tokens {
				fmt.Fprintln(out, tok)
			}
			return nil
		}
		fmt.Fprintln(out, text)
		return nil
	}

	box := ui.NewCommandBox(text)
	if compileTokens {
		box.SetTokens(tokens)
	}
	fmt.Fprintln(out, box.Render())
	return nil
}
