package tui

import (
	"github.com/muurk/ocrfront/internal/ocrconfig"
)

// Tab is one page of options.
type Tab int

const (
	TabBasic Tab = iota
	TabImage
	TabAdvanced
	TabMetadata
)

// Tabs lists every tab in display order.
var Tabs = []Tab{TabBasic, TabImage, TabAdvanced, TabMetadata}

func (t Tab) String() string {
	switch t {
	case TabBasic:
		return "Basic"
	case TabImage:
		return "Image"
	case TabAdvanced:
		return "Advanced"
	case TabMetadata:
		return "Metadata"
	default:
		return "?"
	}
}

// FieldKind decides how a field is edited.
type FieldKind int

const (
	// KindToggle flips a boolean on enter or space.
	KindToggle FieldKind = iota
	// KindChoice cycles through a fixed list of values.
	KindChoice
	// KindText opens a text input; enter commits, esc cancels.
	KindText
)

// Field binds one row of the options pane to the configuration.
type Field struct {
	Label   string
	Kind    FieldKind
	Choices []string // KindChoice only

	// Exactly one of the accessor pairs is set, matching Kind.
	GetBool   func(ocrconfig.OcrConfig) bool
	Toggle    func(*ocrconfig.OcrConfig)
	GetString func(ocrconfig.OcrConfig) string
	SetString func(*ocrconfig.OcrConfig, string)
}

// Value renders the field's current value for display.
func (f Field) Value(cfg ocrconfig.OcrConfig) string {
	switch f.Kind {
	case KindToggle:
		if f.GetBool(cfg) {
			return "[x]"
		}
		return "[ ]"
	default:
		return f.GetString(cfg)
	}
}

// Next returns the choice after the current one, wrapping around. An
// unknown current value moves to the first choice.
func (f Field) Next(cfg ocrconfig.OcrConfig) string {
	current := f.GetString(cfg)
	for i, c := range f.Choices {
		if c == current {
			return f.Choices[(i+1)%len(f.Choices)]
		}
	}
	return f.Choices[0]
}

func toggle(label string, get func(ocrconfig.OcrConfig) bool, flip func(*ocrconfig.OcrConfig)) Field {
	return Field{Label: label, Kind: KindToggle, GetBool: get, Toggle: flip}
}

func text(label string, get func(ocrconfig.OcrConfig) string, set func(*ocrconfig.OcrConfig, string)) Field {
	return Field{Label: label, Kind: KindText, GetString: get, SetString: set}
}

func languageField(l ocrconfig.Language) Field {
	return toggle(l.Name+" ("+l.Code+")",
		func(c ocrconfig.OcrConfig) bool { return c.HasLanguage(l.Code) },
		func(c *ocrconfig.OcrConfig) { c.ToggleLanguage(l.Code) },
	)
}

func outputTypeChoices() []string {
	out := make([]string, len(ocrconfig.OutputTypes))
	for i, t := range ocrconfig.OutputTypes {
		out[i] = string(t)
	}
	return out
}

// FieldsFor returns the rows shown on tab.
func FieldsFor(tab Tab) []Field {
	switch tab {
	case TabBasic:
		var fields []Field
		for _, l := range ocrconfig.SupportedLanguages {
			fields = append(fields, languageField(l))
		}
		return append(fields,
			text("Input file",
				func(c ocrconfig.OcrConfig) string { return c.InputPath },
				func(c *ocrconfig.OcrConfig, v string) { c.ApplyInput(v) }),
			text("Output file",
				func(c ocrconfig.OcrConfig) string { return c.OutputPath },
				func(c *ocrconfig.OcrConfig, v string) { c.OutputPath = ocrconfig.CleanDroppedPath(v) }),
			Field{
				Label:     "Output type",
				Kind:      KindChoice,
				Choices:   outputTypeChoices(),
				GetString: func(c ocrconfig.OcrConfig) string { return string(c.OutputType) },
				SetString: func(c *ocrconfig.OcrConfig, v string) { c.OutputType = ocrconfig.OutputType(v) },
			},
			Field{
				Label:     "Optimization",
				Kind:      KindChoice,
				Choices:   ocrconfig.OptimizeLabels,
				GetString: func(c ocrconfig.OcrConfig) string { return c.Optimize },
				SetString: func(c *ocrconfig.OcrConfig, v string) { c.Optimize = v },
			},
		)

	case TabImage:
		return []Field{
			toggle("Rotate pages",
				func(c ocrconfig.OcrConfig) bool { return c.Image.Rotate },
				func(c *ocrconfig.OcrConfig) { c.Image.Rotate = !c.Image.Rotate }),
			toggle("Remove background",
				func(c ocrconfig.OcrConfig) bool { return c.Image.RemoveBackground },
				func(c *ocrconfig.OcrConfig) { c.Image.RemoveBackground = !c.Image.RemoveBackground }),
			toggle("Deskew",
				func(c ocrconfig.OcrConfig) bool { return c.Image.Deskew },
				func(c *ocrconfig.OcrConfig) { c.Image.Deskew = !c.Image.Deskew }),
			toggle("Clean pages",
				func(c ocrconfig.OcrConfig) bool { return c.Image.Clean },
				func(c *ocrconfig.OcrConfig) { c.Image.Clean = !c.Image.Clean }),
			toggle("Clean final output",
				func(c ocrconfig.OcrConfig) bool { return c.Image.CleanFinal },
				func(c *ocrconfig.OcrConfig) { c.Image.CleanFinal = !c.Image.CleanFinal }),
		}

	case TabAdvanced:
		return []Field{
			toggle("Force OCR",
				func(c ocrconfig.OcrConfig) bool { return c.Advanced.ForceOCR },
				func(c *ocrconfig.OcrConfig) { c.Advanced.ForceOCR = !c.Advanced.ForceOCR }),
			toggle("Skip pages with text",
				func(c ocrconfig.OcrConfig) bool { return c.Advanced.SkipText },
				func(c *ocrconfig.OcrConfig) { c.Advanced.SkipText = !c.Advanced.SkipText }),
			toggle("Redo OCR",
				func(c ocrconfig.OcrConfig) bool { return c.Advanced.RedoOCR },
				func(c *ocrconfig.OcrConfig) { c.Advanced.RedoOCR = !c.Advanced.RedoOCR }),
			toggle("Write sidecar text",
				func(c ocrconfig.OcrConfig) bool { return c.SidecarEnabled },
				func(c *ocrconfig.OcrConfig) { c.SidecarEnabled = !c.SidecarEnabled }),
			text("Sidecar name",
				func(c ocrconfig.OcrConfig) string { return c.SidecarName },
				func(c *ocrconfig.OcrConfig, v string) { c.SidecarName = v }),
			text("Pages",
				func(c ocrconfig.OcrConfig) string { return c.PageRange },
				func(c *ocrconfig.OcrConfig, v string) { c.PageRange = v }),
		}

	case TabMetadata:
		return []Field{
			text("Title",
				func(c ocrconfig.OcrConfig) string { return c.Metadata.Title },
				func(c *ocrconfig.OcrConfig, v string) { c.Metadata.Title = v }),
			text("Author",
				func(c ocrconfig.OcrConfig) string { return c.Metadata.Author },
				func(c *ocrconfig.OcrConfig, v string) { c.Metadata.Author = v }),
			text("Subject",
				func(c ocrconfig.OcrConfig) string { return c.Metadata.Subject },
				func(c *ocrconfig.OcrConfig, v string) { c.Metadata.Subject = v }),
			text("Keywords",
				func(c ocrconfig.OcrConfig) string { return c.Metadata.Keywords },
				func(c *ocrconfig.OcrConfig, v string) { c.Metadata.Keywords = v }),
		}
	}
	return nil
}
