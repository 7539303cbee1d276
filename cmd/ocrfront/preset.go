package main

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/muurk/ocrfront/internal/command"
	"github.com/muurk/ocrfront/internal/config"
	"github.com/muurk/ocrfront/internal/logging"
)

var (
	presetSaveOpts    optionFlags
	presetDescription string
	presetMakeDefault bool
	presetInitForce   bool
)

// presetCmd groups the preset subcommands
var presetCmd = &cobra.Command{
	Use:   "preset",
	Short: "Manage saved option presets",
	Long: `Presets are named OCR option sets stored in the configuration file.

Any command accepts --preset NAME to start from a preset; flags given on
the command line override the preset's values.`,
}

var presetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved presets",
	Args:  cobra.NoArgs,
	RunE:  runPresetList,
}

var presetShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show a preset and the command it compiles to",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetShow,
}

var presetSaveCmd = &cobra.Command{
	Use:   "save NAME",
	Short: "Save options as a preset",
	Long: `Save an option set under NAME, replacing any preset of that name.

The options start from --preset (or the default preset) and are then
overridden by the flags given here.`,
	Example: `  # Bilingual archive preset
  ocrfront preset save archive -l chi_sim+eng --output-type pdfa-2 --deskew --rotate

  # Derive a preset from another and make it the default
  ocrfront preset save archive-en --preset archive -l eng --default`,
	Args: cobra.ExactArgs(1),
	RunE: runPresetSave,
}

var presetDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a preset",
	Args:  cobra.ExactArgs(1),
	RunE:  runPresetDelete,
}

var presetInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with example presets",
	Args:  cobra.NoArgs,
	RunE:  runPresetInit,
}

func init() {
	addOptionFlags(presetSaveCmd, &presetSaveOpts)
	presetSaveCmd.Flags().StringVar(&presetDescription, "description", "", "Short description shown by 'preset list'")
	presetSaveCmd.Flags().BoolVar(&presetMakeDefault, "default", false, "Load this preset when no --preset is given")

	presetInitCmd.Flags().BoolVar(&presetInitForce, "force", false, "Overwrite an existing configuration file")

	presetCmd.AddCommand(presetListCmd, presetShowCmd, presetSaveCmd, presetDeleteCmd, presetInitCmd)
	rootCmd.AddCommand(presetCmd)
}

func runPresetList(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry()
	if err != nil {
		return err
	}

	names := registry.PresetNames()
	out := cmd.OutOrStdout()
	if len(names) == 0 {
		fmt.Fprintln(out, "No presets saved.")
		fmt.Fprintln(out, "Use 'ocrfront preset save NAME' or 'ocrfront preset init' to create some.")
		return nil
	}

	defaultName := ""
	if registry.Preferences != nil {
		defaultName = registry.Preferences.DefaultPreset
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDEFAULT\tUPDATED\tDESCRIPTION")
	for _, name := range names {
		p := registry.GetPreset(name)
		marker := ""
		if name == defaultName {
			marker = "*"
		}
		updated := "-"
		if !p.Updated.IsZero() {
			updated = p.Updated.Format("2006-01-02 15:04")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, marker, updated, p.Description)
	}
	return w.Flush()
}

func runPresetShow(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry()
	if err != nil {
		return err
	}

	preset := registry.GetPreset(args[0])
	if preset == nil {
		return fmt.Errorf("preset %q not found", args[0])
	}

	data, err := yaml.Marshal(preset.Config)
	if err != nil {
		return fmt.Errorf("failed to marshal preset: %w", err)
	}

	opts, err := sessionOptions(registry, nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if preset.Description != "" {
		fmt.Fprintf(out, "# %s\n", preset.Description)
	}
	fmt.Fprint(out, string(data))

	text, err := command.CompileString(preset.Config, command.Options{Program: opts.Program})
	if err != nil {
		fmt.Fprintf(out, "\n# does not compile: %v\n", err)
		return nil
	}
	fmt.Fprintf(out, "\n# %s\n", text)
	return nil
}

func runPresetSave(cmd *cobra.Command, args []string) error {
	name := args[0]

	registry, err := loadRegistry()
	if err != nil {
		return err
	}
	cfg, err := resolveConfig(registry)
	if err != nil {
		return err
	}
	if err := presetSaveOpts.apply(cmd, nil, &cfg); err != nil {
		return err
	}
	cfg.Trim()

	if err := registry.SetPreset(name, presetDescription, cfg); err != nil {
		return err
	}
	if presetMakeDefault {
		if registry.Preferences == nil {
			registry.Preferences = config.NewRegistry().Preferences
		}
		registry.Preferences.DefaultPreset = name
	}
	if err := registry.Save(); err != nil {
		return err
	}

	logging.LogPresetEvent(name, "saved")
	fmt.Fprintf(cmd.OutOrStdout(), "Saved preset %q\n", name)
	return nil
}

func runPresetDelete(cmd *cobra.Command, args []string) error {
	name := args[0]

	registry, err := loadRegistry()
	if err != nil {
		return err
	}
	if !registry.DeletePreset(name) {
		return fmt.Errorf("preset %q not found", name)
	}
	if err := registry.Save(); err != nil {
		return err
	}

	logging.LogPresetEvent(name, "deleted")
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted preset %q\n", name)
	return nil
}

func runPresetInit(cmd *cobra.Command, args []string) error {
	if configPath != "" {
		if err := os.Setenv(config.ConfigPathEnvVar, configPath); err != nil {
			return err
		}
	}
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !presetInitForce {
		return fmt.Errorf("%s already exists; pass --force to overwrite it", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := config.CreateDefaultConfig(); err != nil {
		return err
	}
	logging.LogFileWrite("config", path, 0, nil)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote example presets to %s\n", path)
	return nil
}
