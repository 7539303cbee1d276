package config

import (
	"fmt"
	"sort"
	"time"

	"github.com/muurk/ocrfront/internal/ocrconfig"
)

// CurrentVersion is the config file format version.
const CurrentVersion = 1

// Registry represents the entire user configuration file.
type Registry struct {
	Version     int                `yaml:"version"`
	Presets     map[string]*Preset `yaml:"presets,omitempty"` // Keyed by preset name
	Preferences *Preferences       `yaml:"preferences,omitempty"`
}

// Preset is a named, saved OCR configuration.
type Preset struct {
	Description string              `yaml:"description,omitempty"`
	Config      ocrconfig.OcrConfig `yaml:"config"`
	Updated     time.Time           `yaml:"updated,omitempty"`
}

// Preferences represents application-wide user preferences.
type Preferences struct {
	Program       string   `yaml:"program,omitempty"`        // Executable placed first on the command line
	Shell         []string `yaml:"shell,omitempty"`          // Interpreter and flag, e.g. [sh, -c]
	Encoding      string   `yaml:"encoding,omitempty"`       // Output character set
	RunPolicy     string   `yaml:"run_policy,omitempty"`     // "reject" or "concurrent"
	DefaultPreset string   `yaml:"default_preset,omitempty"` // Preset loaded when none is named
	LogDir        string   `yaml:"log_dir,omitempty"`        // Default directory for saved logs
}

// NewRegistry creates a new Registry with default values.
func NewRegistry() *Registry {
	return &Registry{
		Version:     CurrentVersion,
		Presets:     make(map[string]*Preset),
		Preferences: defaultPreferences(),
	}
}

func defaultPreferences() *Preferences {
	return &Preferences{
		Program:   "ocrmypdf",
		Encoding:  "utf-8",
		RunPolicy: "reject",
	}
}

// GetPreset retrieves a preset by name.
// Returns nil if the preset doesn't exist in the registry.
func (r *Registry) GetPreset(name string) *Preset {
	return r.Presets[name]
}

// SetPreset stores cfg under name, replacing any existing preset.
func (r *Registry) SetPreset(name, description string, cfg ocrconfig.OcrConfig) error {
	if name == "" {
		return fmt.Errorf("preset name cannot be empty")
	}
	if err := ocrconfig.Validate(cfg); err != nil {
		return fmt.Errorf("preset %q: %w", name, err)
	}
	if r.Presets == nil {
		r.Presets = make(map[string]*Preset)
	}
	r.Presets[name] = &Preset{
		Description: description,
		Config:      cfg.Clone(),
		Updated:     time.Now(),
	}
	return nil
}

// DeletePreset removes a preset. It reports whether the preset existed.
func (r *Registry) DeletePreset(name string) bool {
	if _, ok := r.Presets[name]; !ok {
		return false
	}
	delete(r.Presets, name)
	if r.Preferences != nil && r.Preferences.DefaultPreset == name {
		r.Preferences.DefaultPreset = ""
	}
	return true
}

// PresetNames returns preset names in sorted order.
func (r *Registry) PresetNames() []string {
	names := make([]string, 0, len(r.Presets))
	for name := range r.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ResolveConfig returns the configuration of the named preset, or of the
// default preset when name is empty. With neither, it returns
// ocrconfig.Default().
func (r *Registry) ResolveConfig(name string) (ocrconfig.OcrConfig, error) {
	if name == "" && r.Preferences != nil {
		name = r.Preferences.DefaultPreset
	}
	if name == "" {
		return ocrconfig.Default(), nil
	}
	preset := r.GetPreset(name)
	if preset == nil {
		return ocrconfig.OcrConfig{}, fmt.Errorf("preset %q not found", name)
	}
	return preset.Config.Clone(), nil
}
