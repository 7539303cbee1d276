package ocrconfig

import (
	"errors"
	"reflect"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if !reflect.DeepEqual(cfg.Languages, []string{"chi_sim"}) {
		t.Errorf("Default().Languages = %v, want [chi_sim]", cfg.Languages)
	}
	if cfg.OutputType != OutputPDFA {
		t.Errorf("Default().OutputType = %v, want pdfa", cfg.OutputType)
	}
	if cfg.Optimize != OptimizeSafe {
		t.Errorf("Default().Optimize = %q, want %q", cfg.Optimize, OptimizeSafe)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("Validate(Default()) error = %v", err)
	}
}

func TestOptimizeLevel(t *testing.T) {
	tests := []struct {
		label     string
		wantLevel int
		wantOK    bool
	}{
		{OptimizeNone, 0, true},
		{OptimizeSafe, 1, true},
		{OptimizeLossy, 2, true},
		{OptimizeAggressive, 3, true},
		{"  Safe lossless  ", 1, true},
		{"安全无损优化", 1, true},
		{"有损 JPEG 优化", 2, true},
		{"", 0, false},
		{"safe lossless", 0, false},
		{"1", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			level, ok := OptimizeLevel(tt.label)
			if ok != tt.wantOK {
				t.Fatalf("OptimizeLevel(%q) ok = %v, want %v", tt.label, ok, tt.wantOK)
			}
			if ok && level != tt.wantLevel {
				t.Errorf("OptimizeLevel(%q) = %d, want %d", tt.label, level, tt.wantLevel)
			}
		})
	}
}

func TestOptimizeLabel(t *testing.T) {
	for level, want := range OptimizeLabels {
		got, err := OptimizeLabel(level)
		if err != nil {
			t.Fatalf("OptimizeLabel(%d) error = %v", level, err)
		}
		if got != want {
			t.Errorf("OptimizeLabel(%d) = %q, want %q", level, got, want)
		}
	}

	if _, err := OptimizeLabel(4); err == nil {
		t.Error("OptimizeLabel(4) should fail")
	}
	if _, err := OptimizeLabel(-1); err == nil {
		t.Error("OptimizeLabel(-1) should fail")
	}
}

func TestOutputTypeValid(t *testing.T) {
	for _, ot := range OutputTypes {
		if !ot.Valid() {
			t.Errorf("%q should be valid", ot)
		}
	}
	for _, ot := range []OutputType{"", "PDFA", "pdfa-4", "tiff"} {
		if ot.Valid() {
			t.Errorf("%q should be invalid", ot)
		}
	}
}

func TestCanonicalLanguages(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"empty", nil, nil},
		{"single", []string{"eng"}, []string{"eng"}},
		{"table order", []string{"eng", "chi_sim"}, []string{"chi_sim", "eng"}},
		{"already ordered", []string{"chi_sim", "eng"}, []string{"chi_sim", "eng"}},
		{"duplicates", []string{"eng", "eng", "jpn"}, []string{"eng", "jpn"}},
		{"unknown codes last", []string{"ita", "spa", "eng", "nld"}, []string{"eng", "spa", "ita", "nld"}},
		{"blank dropped", []string{"", "fra"}, []string{"fra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CanonicalLanguages(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CanonicalLanguages(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestLanguageName(t *testing.T) {
	if got := LanguageName("jpn"); got != "Japanese" {
		t.Errorf("LanguageName(jpn) = %q, want Japanese", got)
	}
	if got := LanguageName("xyz"); got != "xyz" {
		t.Errorf("LanguageName(xyz) = %q, want xyz", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	cfg := Default()
	clone := cfg.Clone()
	clone.Languages[0] = "eng"

	if cfg.Languages[0] != "chi_sim" {
		t.Errorf("mutating clone changed original: %v", cfg.Languages)
	}
}

func TestToggleLanguage(t *testing.T) {
	cfg := Default()
	shared := cfg.Languages

	cfg.ToggleLanguage("eng")
	if !cfg.HasLanguage("eng") || !cfg.HasLanguage("chi_sim") {
		t.Fatalf("after toggling eng on: %v", cfg.Languages)
	}

	cfg.ToggleLanguage("chi_sim")
	if cfg.HasLanguage("chi_sim") {
		t.Errorf("chi_sim should be off: %v", cfg.Languages)
	}
	if shared[0] != "chi_sim" {
		t.Errorf("toggle modified a shared backing array: %v", shared)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*OcrConfig)
		wantErr bool
		field   string
	}{
		{"default", func(*OcrConfig) {}, false, ""},
		{"empty output type", func(c *OcrConfig) { c.OutputType = "" }, true, "output_type"},
		{"bad output type", func(c *OcrConfig) { c.OutputType = "docx" }, true, "output_type"},
		{"bad optimize", func(c *OcrConfig) { c.Optimize = "Maximum" }, true, "optimize"},
		{"chinese optimize label", func(c *OcrConfig) { c.Optimize = "不优化" }, false, ""},
		{"language with plus", func(c *OcrConfig) { c.Languages = []string{"eng+deu"} }, true, "languages"},
		{"free text never rejected", func(c *OcrConfig) { c.PageRange = "1-3,x" }, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := Validate(cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil {
				return
			}
			vErr, ok := err.(*ValidationError)
			if !ok {
				t.Fatalf("error type = %T, want *ValidationError", err)
			}
			if vErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", vErr.Field, tt.field)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Error("errors.Is(err, ErrInvalidConfig) = false")
			}
		})
	}
}

func TestDefaultOutputPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"/scans/report.pdf", "/scans/report_ocr.pdf"},
		{"scan.tif", "scan_ocr.tif"},
		{"/scans/noext", "/scans/noext_ocr"},
		{"/a.b/c.d.png", "/a.b/c.d_ocr.png"},
	}
	for _, tt := range tests {
		if got := DefaultOutputPath(tt.in); got != tt.want {
			t.Errorf("DefaultOutputPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCleanDroppedPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/a/b.pdf", "/a/b.pdf"},
		{"{/my docs/b.pdf}", "/my docs/b.pdf"},
		{"  '/my docs/b.pdf'  ", "/my docs/b.pdf"},
		{`"/x y.pdf"`, "/x y.pdf"},
		{"{", "{"},
	}
	for _, tt := range tests {
		if got := CleanDroppedPath(tt.in); got != tt.want {
			t.Errorf("CleanDroppedPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyInput(t *testing.T) {
	cfg := Default()
	cfg.OutputPath = "/old/out.pdf"
	cfg.ApplyInput("{/scans/my file.pdf}")

	if cfg.InputPath != "/scans/my file.pdf" {
		t.Errorf("InputPath = %q", cfg.InputPath)
	}
	if cfg.OutputPath != "/scans/my file_ocr.pdf" {
		t.Errorf("OutputPath = %q", cfg.OutputPath)
	}
}
