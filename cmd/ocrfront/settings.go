package main

import (
	"fmt"
	"os"

	"github.com/muurk/ocrfront/internal/config"
	"github.com/muurk/ocrfront/internal/logging"
	"github.com/muurk/ocrfront/internal/logrelay"
	"github.com/muurk/ocrfront/internal/ocrconfig"
	"github.com/muurk/ocrfront/internal/runner"
	"github.com/muurk/ocrfront/internal/session"
)

// loadRegistry loads the configuration registry, honouring --config.
func loadRegistry() (*config.Registry, error) {
	if configPath != "" {
		// GetConfigPath reads the override, so Save writes back to the same file
		if err := os.Setenv(config.ConfigPathEnvVar, configPath); err != nil {
			return nil, fmt.Errorf("failed to set config path: %w", err)
		}
	}
	registry, err := config.LoadRegistry()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return registry, nil
}

// resolveConfig returns the starting configuration: the --preset preset,
// else the default preset, else the built-in defaults.
func resolveConfig(registry *config.Registry) (ocrconfig.OcrConfig, error) {
	cfg, err := registry.ResolveConfig(presetName)
	if err != nil {
		return ocrconfig.OcrConfig{}, err
	}
	name := presetName
	if name == "" && registry.Preferences != nil {
		name = registry.Preferences.DefaultPreset
	}
	if name != "" {
		logging.LogPresetEvent(name, "loaded")
	}
	return cfg, nil
}

// sessionOptions builds session options from the stored preferences and
// the --program flag.
func sessionOptions(registry *config.Registry, relay *logrelay.Relay) (session.Options, error) {
	prefs := registry.Preferences
	if prefs == nil {
		prefs = config.NewRegistry().Preferences
	}

	policy, err := session.ParseRunPolicy(prefs.RunPolicy)
	if err != nil {
		return session.Options{}, fmt.Errorf("invalid run_policy in configuration: %w", err)
	}

	program := prefs.Program
	if programArg != "" {
		program = programArg
	}

	runCfg := runner.DefaultConfig()
	if len(prefs.Shell) > 0 {
		runCfg.Shell = prefs.Shell
	}
	if prefs.Encoding != "" {
		runCfg.Encoding = prefs.Encoding
	}

	return session.Options{
		Program: program,
		Runner:  runCfg,
		Policy:  policy,
		Relay:   relay,
		Logger:  logging.GetLogger(),
	}, nil
}

// logDir returns the preferred directory for saved logs.
func logDir(registry *config.Registry) string {
	if registry.Preferences == nil {
		return ""
	}
	return registry.Preferences.LogDir
}
