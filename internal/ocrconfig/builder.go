package ocrconfig

import "strconv"

// Builder provides a fluent API for deriving a configuration from a baseline.
// Values are validated once, in Build.
//
// Example usage:
//
//	cfg, err := NewBuilder(Default()).
//	    Languages("chi_sim", "eng").
//	    Rotate(true).
//	    OptimizeLevel(2).
//	    Sidecar(true, "").
//	    Input("/scans/report.pdf").
//	    Build()
type Builder struct {
	cfg OcrConfig
}

// NewBuilder creates a builder starting from a copy of base.
func NewBuilder(base OcrConfig) *Builder {
	return &Builder{cfg: base.Clone()}
}

// Languages replaces the language selection.
func (b *Builder) Languages(codes ...string) *Builder {
	b.cfg.Languages = append([]string(nil), codes...)
	return b
}

// Rotate sets -r.
func (b *Builder) Rotate(on bool) *Builder {
	b.cfg.Image.Rotate = on
	return b
}

// RemoveBackground sets --remove-background.
func (b *Builder) RemoveBackground(on bool) *Builder {
	b.cfg.Image.RemoveBackground = on
	return b
}

// Deskew sets -d.
func (b *Builder) Deskew(on bool) *Builder {
	b.cfg.Image.Deskew = on
	return b
}

// Clean sets -c.
func (b *Builder) Clean(on bool) *Builder {
	b.cfg.Image.Clean = on
	return b
}

// CleanFinal sets -i.
func (b *Builder) CleanFinal(on bool) *Builder {
	b.cfg.Image.CleanFinal = on
	return b
}

// OutputType sets --output-type.
func (b *Builder) OutputType(t OutputType) *Builder {
	b.cfg.OutputType = t
	return b
}

// OptimizeLevel sets the optimization by -O level. Out-of-range levels are
// stored verbatim so Build reports them.
func (b *Builder) OptimizeLevel(level int) *Builder {
	label, err := OptimizeLabel(level)
	if err != nil {
		b.cfg.Optimize = strconv.Itoa(level)
		return b
	}
	b.cfg.Optimize = label
	return b
}

// ForceOCR sets -f.
func (b *Builder) ForceOCR(on bool) *Builder {
	b.cfg.Advanced.ForceOCR = on
	return b
}

// SkipText sets -s.
func (b *Builder) SkipText(on bool) *Builder {
	b.cfg.Advanced.SkipText = on
	return b
}

// RedoOCR sets --redo-ocr.
func (b *Builder) RedoOCR(on bool) *Builder {
	b.cfg.Advanced.RedoOCR = on
	return b
}

// Sidecar enables or disables the sidecar text file. An empty name derives
// the file name from the input.
func (b *Builder) Sidecar(enabled bool, name string) *Builder {
	b.cfg.SidecarEnabled = enabled
	b.cfg.SidecarName = name
	return b
}

// Pages sets the page selector passed to --pages.
func (b *Builder) Pages(pages string) *Builder {
	b.cfg.PageRange = pages
	return b
}

// Title sets --title.
func (b *Builder) Title(s string) *Builder {
	b.cfg.Metadata.Title = s
	return b
}

// Author sets --author.
func (b *Builder) Author(s string) *Builder {
	b.cfg.Metadata.Author = s
	return b
}

// Subject sets --subject.
func (b *Builder) Subject(s string) *Builder {
	b.cfg.Metadata.Subject = s
	return b
}

// Keywords sets --keywords.
func (b *Builder) Keywords(s string) *Builder {
	b.cfg.Metadata.Keywords = s
	return b
}

// Input sets the input path.
func (b *Builder) Input(path string) *Builder {
	b.cfg.InputPath = path
	return b
}

// Output sets the output path.
func (b *Builder) Output(path string) *Builder {
	b.cfg.OutputPath = path
	return b
}

// Build trims free-text fields, validates, and returns the configuration.
func (b *Builder) Build() (OcrConfig, error) {
	cfg := b.cfg.Clone()
	cfg.Trim()
	if err := Validate(cfg); err != nil {
		return OcrConfig{}, err
	}
	return cfg, nil
}
