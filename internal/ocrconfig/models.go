package ocrconfig

import (
	"fmt"
	"strings"
)

// OutputType is the value passed to ocrmypdf's --output-type flag.
type OutputType string

const (
	OutputPDF   OutputType = "pdf"
	OutputPDFA  OutputType = "pdfa"
	OutputPDFA1 OutputType = "pdfa-1"
	OutputPDFA2 OutputType = "pdfa-2"
	OutputPDFA3 OutputType = "pdfa-3"
	OutputNone  OutputType = "none"
)

// OutputTypes lists every accepted output type in display order.
var OutputTypes = []OutputType{
	OutputPDF,
	OutputPDFA,
	OutputPDFA1,
	OutputPDFA2,
	OutputPDFA3,
	OutputNone,
}

// Valid reports whether t is one of OutputTypes.
func (t OutputType) Valid() bool {
	for _, known := range OutputTypes {
		if t == known {
			return true
		}
	}
	return false
}

func (t OutputType) String() string {
	return string(t)
}

// Optimization labels. Each maps to one -O level.
const (
	OptimizeNone       = "No optimization"
	OptimizeSafe       = "Safe lossless"
	OptimizeLossy      = "Lossy JPEG"
	OptimizeAggressive = "Aggressive lossy"
)

// OptimizeLabels lists the optimization labels in level order.
var OptimizeLabels = []string{
	OptimizeNone,
	OptimizeSafe,
	OptimizeLossy,
	OptimizeAggressive,
}

// optimizeAliases maps the Chinese labels onto the English ones so presets
// written with either set load.
var optimizeAliases = map[string]string{
	"不优化":        OptimizeNone,
	"安全无损优化":     OptimizeSafe,
	"有损 JPEG 优化": OptimizeLossy,
	"更激进的有损优化":   OptimizeAggressive,
}

// OptimizeLevel maps an optimization label to its -O level (0-3).
// Leading and trailing whitespace is ignored. The second result is false for
// any label outside the table.
func OptimizeLevel(label string) (int, bool) {
	label = strings.TrimSpace(label)
	if canonical, ok := optimizeAliases[label]; ok {
		label = canonical
	}
	for level, known := range OptimizeLabels {
		if label == known {
			return level, true
		}
	}
	return 0, false
}

// OptimizeLabel returns the label for a -O level.
func OptimizeLabel(level int) (string, error) {
	if level < 0 || level >= len(OptimizeLabels) {
		return "", fmt.Errorf("optimization level must be 0-%d, got %d", len(OptimizeLabels)-1, level)
	}
	return OptimizeLabels[level], nil
}

// ImageFlags are the independent image preprocessing switches.
type ImageFlags struct {
	Rotate           bool `yaml:"rotate,omitempty"`            // -r
	RemoveBackground bool `yaml:"remove_background,omitempty"` // --remove-background
	Deskew           bool `yaml:"deskew,omitempty"`            // -d
	Clean            bool `yaml:"clean,omitempty"`             // -c
	CleanFinal       bool `yaml:"clean_final,omitempty"`       // -i
}

// AdvancedFlags are the independent OCR behavior switches.
type AdvancedFlags struct {
	ForceOCR bool `yaml:"force_ocr,omitempty"` // -f
	SkipText bool `yaml:"skip_text,omitempty"` // -s
	RedoOCR  bool `yaml:"redo_ocr,omitempty"`  // --redo-ocr
}

// Metadata holds the optional document properties written into the output.
type Metadata struct {
	Title    string `yaml:"title,omitempty"`
	Author   string `yaml:"author,omitempty"`
	Subject  string `yaml:"subject,omitempty"`
	Keywords string `yaml:"keywords,omitempty"`
}

// OcrConfig is the single source of truth for one run.
// Empty InputPath or OutputPath means the standard stream.
type OcrConfig struct {
	Languages      []string      `yaml:"languages,omitempty"`
	Image          ImageFlags    `yaml:"image,omitempty"`
	OutputType     OutputType    `yaml:"output_type"`
	Optimize       string        `yaml:"optimize"`
	Advanced       AdvancedFlags `yaml:"advanced,omitempty"`
	SidecarEnabled bool          `yaml:"sidecar,omitempty"`
	SidecarName    string        `yaml:"sidecar_name,omitempty"`
	PageRange      string        `yaml:"pages,omitempty"`
	Metadata       Metadata      `yaml:"metadata,omitempty"`
	InputPath      string        `yaml:"input,omitempty"`
	OutputPath     string        `yaml:"output,omitempty"`
}

// Default returns the configuration a new session starts with:
// Simplified Chinese recognition, PDF/A output, safe lossless optimization.
func Default() OcrConfig {
	return OcrConfig{
		Languages:  []string{DefaultLanguage},
		OutputType: OutputPDFA,
		Optimize:   OptimizeSafe,
	}
}

// Clone returns a deep copy of c.
func (c OcrConfig) Clone() OcrConfig {
	out := c
	if c.Languages != nil {
		out.Languages = append([]string(nil), c.Languages...)
	}
	return out
}

// HasLanguage reports whether code is selected.
func (c OcrConfig) HasLanguage(code string) bool {
	for _, l := range c.Languages {
		if l == code {
			return true
		}
	}
	return false
}

// ToggleLanguage selects code if it is not selected and deselects it otherwise.
func (c *OcrConfig) ToggleLanguage(code string) {
	for i, l := range c.Languages {
		if l == code {
			c.Languages = append(c.Languages[:i:i], c.Languages[i+1:]...)
			return
		}
	}
	c.Languages = append(c.Languages, code)
}

// Trim strips surrounding whitespace from every free-text field.
func (c *OcrConfig) Trim() {
	c.OutputType = OutputType(strings.TrimSpace(string(c.OutputType)))
	c.Optimize = strings.TrimSpace(c.Optimize)
	c.SidecarName = strings.TrimSpace(c.SidecarName)
	c.PageRange = strings.TrimSpace(c.PageRange)
	c.Metadata.Title = strings.TrimSpace(c.Metadata.Title)
	c.Metadata.Author = strings.TrimSpace(c.Metadata.Author)
	c.Metadata.Subject = strings.TrimSpace(c.Metadata.Subject)
	c.Metadata.Keywords = strings.TrimSpace(c.Metadata.Keywords)
	c.InputPath = strings.TrimSpace(c.InputPath)
	c.OutputPath = strings.TrimSpace(c.OutputPath)
}
