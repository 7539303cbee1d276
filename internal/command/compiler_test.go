package command

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/muurk/ocrfront/internal/ocrconfig"
)

func baseConfig() ocrconfig.OcrConfig {
	return ocrconfig.OcrConfig{
		Languages:  []string{"eng"},
		OutputType: ocrconfig.OutputPDFA,
		Optimize:   ocrconfig.OptimizeSafe,
		InputPath:  "/in.pdf",
	}
}

func TestCompileEndToEnd(t *testing.T) {
	got, err := CompileString(baseConfig(), Options{})
	if err != nil {
		t.Fatalf("CompileString() error = %v", err)
	}

	want := `ocrmypdf -l eng --output-type pdfa -O 1 "/in.pdf" "-"`
	if got != want {
		t.Errorf("CompileString() =\n%s\nwant\n%s", got, want)
	}
}

func TestCompileDefaultConfig(t *testing.T) {
	tokens, err := Compile(ocrconfig.Default())
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	want := []string{"ocrmypdf", "-l", "chi_sim", "--output-type", "pdfa", "-O", "1", `"-"`, `"-"`}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("Compile(Default()) = %v, want %v", tokens, want)
	}
}

func TestCompileAllFlags(t *testing.T) {
	cfg := ocrconfig.OcrConfig{
		Languages:      []string{"eng", "chi_sim"},
		Image:          ocrconfig.ImageFlags{Rotate: true, RemoveBackground: true, Deskew: true, Clean: true, CleanFinal: true},
		OutputType:     ocrconfig.OutputPDFA3,
		Optimize:       ocrconfig.OptimizeAggressive,
		Advanced:       ocrconfig.AdvancedFlags{ForceOCR: true, SkipText: true, RedoOCR: true},
		SidecarEnabled: true,
		PageRange:      "1-3,7",
		Metadata:       ocrconfig.Metadata{Title: "Annual Report", Author: "Finance", Subject: "2024", Keywords: "tax, audit"},
		InputPath:      "/docs/report.pdf",
		OutputPath:     "/docs/report_ocr.pdf",
	}

	got, err := CompileString(cfg, Options{})
	if err != nil {
		t.Fatalf("CompileString() error = %v", err)
	}

	want := strings.Join([]string{
		"ocrmypdf",
		"-l chi_sim+eng",
		"-r --remove-background -d -c -i",
		"--output-type pdfa-3",
		"-O 3",
		"-f -s --redo-ocr",
		`--sidecar "/docs/report.txt"`,
		`--pages "1-3,7"`,
		`--title "Annual Report" --author "Finance" --subject "2024" --keywords "tax, audit"`,
		`"/docs/report.pdf" "/docs/report_ocr.pdf"`,
	}, " ")
	if got != want {
		t.Errorf("CompileString() =\n%s\nwant\n%s", got, want)
	}
}

func TestCompileIsDeterministic(t *testing.T) {
	cfg := baseConfig()
	cfg.Languages = []string{"spa", "eng", "jpn"}
	cfg.SidecarEnabled = true
	cfg.Metadata.Title = "x"
	snapshot := cfg.Clone()

	first, err := Compile(cfg)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	second, err := Compile(cfg)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Compile() not deterministic:\n%v\n%v", first, second)
	}
	if !reflect.DeepEqual(cfg, snapshot) {
		t.Errorf("Compile() mutated its input: %+v", cfg)
	}
}

func TestCompileLanguages(t *testing.T) {
	tests := []struct {
		name      string
		languages []string
		want      string // empty means no -l flag
	}{
		{"empty omits flag", nil, ""},
		{"empty slice omits flag", []string{}, ""},
		{"selection order", []string{"chi_sim", "eng"}, "chi_sim+eng"},
		{"canonical order", []string{"eng", "chi_sim"}, "chi_sim+eng"},
		{"duplicates collapse", []string{"deu", "deu"}, "deu"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			cfg.Languages = tt.languages

			tokens, err := Compile(cfg)
			if err != nil {
				t.Fatalf("Compile() error = %v", err)
			}

			idx := indexOf(tokens, "-l")
			if tt.want == "" {
				if idx >= 0 {
					t.Errorf("unexpected -l flag in %v", tokens)
				}
				return
			}
			if idx < 0 || idx+1 >= len(tokens) {
				t.Fatalf("missing -l flag in %v", tokens)
			}
			if tokens[idx+1] != tt.want {
				t.Errorf("-l %s, want -l %s", tokens[idx+1], tt.want)
			}
		})
	}
}

func TestCompileOptimizeMapping(t *testing.T) {
	for level, label := range ocrconfig.OptimizeLabels {
		cfg := baseConfig()
		cfg.Optimize = label

		tokens, err := Compile(cfg)
		if err != nil {
			t.Fatalf("Compile(%q) error = %v", label, err)
		}
		idx := indexOf(tokens, "-O")
		if idx < 0 || tokens[idx+1] != string(rune('0'+level)) {
			t.Errorf("label %q compiled to %v, want -O %d", label, tokens, level)
		}
	}
}

func TestCompileConfigErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ocrconfig.OcrConfig)
		field  string
	}{
		{"unknown optimize label", func(c *ocrconfig.OcrConfig) { c.Optimize = "Best" }, "optimize"},
		{"empty optimize label", func(c *ocrconfig.OcrConfig) { c.Optimize = "" }, "optimize"},
		{"unknown output type", func(c *ocrconfig.OcrConfig) { c.OutputType = "pdfx" }, "output_type"},
		{"empty output type", func(c *ocrconfig.OcrConfig) { c.OutputType = "" }, "output_type"},
		{"language code with a space", func(c *ocrconfig.OcrConfig) { c.Languages = []string{"eng fra"} }, "languages"},
		{"language code with a plus", func(c *ocrconfig.OcrConfig) { c.Languages = []string{"chi_sim+eng"} }, "languages"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig()
			tt.mutate(&cfg)

			tokens, err := Compile(cfg)
			if err == nil {
				t.Fatalf("Compile() = %v, want error", tokens)
			}

			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("error type = %T, want *ConfigError", err)
			}
			if cfgErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", cfgErr.Field, tt.field)
			}
			if !errors.Is(err, ocrconfig.ErrInvalidConfig) {
				t.Error("errors.Is(err, ErrInvalidConfig) = false")
			}
		})
	}
}

func TestCompileProgramOverride(t *testing.T) {
	tokens, err := CompileWith(baseConfig(), Options{Program: "/opt/ocrmypdf/bin/ocrmypdf"})
	if err != nil {
		t.Fatalf("CompileWith() error = %v", err)
	}
	if tokens[0] != "/opt/ocrmypdf/bin/ocrmypdf" {
		t.Errorf("program token = %q", tokens[0])
	}
}

func TestCompileStdioPlaceholders(t *testing.T) {
	cfg := baseConfig()
	cfg.InputPath = "  "
	cfg.OutputPath = ""

	tokens, err := Compile(cfg)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	n := len(tokens)
	if tokens[n-2] != `"-"` || tokens[n-1] != `"-"` {
		t.Errorf("positional tokens = %v, want \"-\" \"-\"", tokens[n-2:])
	}
}

func TestCompileQuotingIsNaive(t *testing.T) {
	cfg := baseConfig()
	cfg.Metadata.Title = `The "Best" Report`

	tokens, err := Compile(cfg)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	idx := indexOf(tokens, "--title")
	if got := tokens[idx+1]; got != `"The "Best" Report"` {
		t.Errorf("title token = %s", got)
	}
}

func TestSidecar(t *testing.T) {
	tests := []struct {
		name  string
		input string
		side  string
		want  string
	}{
		{"derived from input", "/docs/report.pdf", "", "/docs/report.txt"},
		{"name without extension", "/docs/report.pdf", "out", "/docs/out.txt"},
		{"name with extension", "/docs/report.pdf", "notes.md", "/docs/notes.md"},
		{"relative input without dir", "report.pdf", "", "./report.txt"},
		{"relative name without dir", "scan.tif", "out", "./out.txt"},
		{"empty input", "", "", "./.txt"},
		{"root directory", "/report.pdf", "", "/report.txt"},
		{"windows separators", `C:\scans\a b.pdf`, "", "C:/scans/a b.txt"},
		{"multi dot input", "/x/archive.tar.gz", "", "/x/archive.tar.txt"},
		{"hidden name", "/x/.profile", "", "/x/.profile.txt"},
		{"absolute name", "/docs/report.pdf", "/tmp/side", "/tmp/side.txt"},
		{"name with subdir", "/docs/report.pdf", "text/out", "/docs/text/out.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sidecar(tt.input, tt.side); got != tt.want {
				t.Errorf("Sidecar(%q, %q) = %q, want %q", tt.input, tt.side, got, tt.want)
			}
		})
	}
}

func TestCompileSidecarToken(t *testing.T) {
	cfg := baseConfig()
	cfg.InputPath = "/docs/report.pdf"
	cfg.SidecarEnabled = true

	tokens, err := Compile(cfg)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	idx := indexOf(tokens, "--sidecar")
	if idx < 0 {
		t.Fatalf("no --sidecar in %v", tokens)
	}
	if tokens[idx+1] != `"/docs/report.txt"` {
		t.Errorf("sidecar token = %s, want \"/docs/report.txt\"", tokens[idx+1])
	}

	cfg.SidecarName = "out"
	tokens, _ = Compile(cfg)
	if got := tokens[indexOf(tokens, "--sidecar")+1]; got != `"/docs/out.txt"` {
		t.Errorf("sidecar token = %s, want \"/docs/out.txt\"", got)
	}

	cfg.SidecarEnabled = false
	tokens, _ = Compile(cfg)
	if indexOf(tokens, "--sidecar") >= 0 {
		t.Errorf("sidecar emitted while disabled: %v", tokens)
	}
}

func TestRenderSplitRoundTrip(t *testing.T) {
	configs := map[string]ocrconfig.OcrConfig{
		"default": ocrconfig.Default(),
		"spaces everywhere": {
			Languages:      []string{"fra", "deu"},
			Image:          ocrconfig.ImageFlags{Deskew: true, Clean: true},
			OutputType:     ocrconfig.OutputPDF,
			Optimize:       ocrconfig.OptimizeLossy,
			Advanced:       ocrconfig.AdvancedFlags{SkipText: true},
			SidecarEnabled: true,
			SidecarName:    "my notes",
			PageRange:      "1, 3-5",
			Metadata:       ocrconfig.Metadata{Title: "A  B", Keywords: "one two three"},
			InputPath:      "/My Scans/in put.pdf",
			OutputPath:     "/My Scans/out put.pdf",
		},
	}

	for name, cfg := range configs {
		t.Run(name, func(t *testing.T) {
			tokens, err := Compile(cfg)
			if err != nil {
				t.Fatalf("Compile() error = %v", err)
			}

			split := Split(Render(tokens))
			want := append([]string(nil), tokens...)
			sort.Strings(split)
			sort.Strings(want)
			if !reflect.DeepEqual(split, want) {
				t.Errorf("Split(Render()) multiset =\n%q\nwant\n%q", split, want)
			}
		})
	}
}

func indexOf(tokens []string, s string) int {
	for i, tok := range tokens {
		if tok == s {
			return i
		}
	}
	return -1
}
