// Package config manages the ocrfront user configuration file.
//
// The file is YAML and stores named presets (complete OCR configurations the
// user can recall) and application preferences such as the program to run,
// the shell, the output encoding and the run policy.
//
// # Configuration File Location
//
// The configuration file is stored in platform-appropriate locations:
//   - Linux: $XDG_CONFIG_HOME/ocrfront/config.yaml or $HOME/.config/ocrfront/config.yaml
//   - macOS: $HOME/.config/ocrfront/config.yaml
//   - Windows: %LOCALAPPDATA%\ocrfront\config.yaml
//
// Setting OCRFRONT_CONFIG to a file path overrides the location.
//
// # Usage Example
//
//	registry, err := config.LoadRegistry()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	registry.SetPreset("archive", "PDF/A-2 with sidecar", cfg)
//
//	// Save changes atomically
//	if err := registry.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// The global registry uses sync.Once for safe initialization across goroutines.
// File operations are protected by a mutex to ensure atomic writes.
package config
