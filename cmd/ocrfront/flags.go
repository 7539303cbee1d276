package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/muurk/ocrfront/internal/ocrconfig"
)

// optionFlags mirrors the OCR options on the command line. Only flags the
// user actually set are applied, so a preset's values survive otherwise.
type optionFlags struct {
	languages  []string
	outputType string
	optimize   int

	rotate           bool
	removeBackground bool
	deskew           bool
	clean            bool
	cleanFinal       bool

	forceOCR bool
	skipText bool
	redoOCR  bool

	sidecar     bool
	sidecarName string
	pages       string

	title    string
	author   string
	subject  string
	keywords string

	input      string
	output     string
	autoOutput bool
}

func addOptionFlags(cmd *cobra.Command, f *optionFlags) {
	flags := cmd.Flags()

	flags.StringSliceVarP(&f.languages, "language", "l", nil, "OCR language codes, repeatable or joined with + (e.g. eng+fra)")
	flags.StringVar(&f.outputType, "output-type", "", "Output type: pdf, pdfa, pdfa-1, pdfa-2, pdfa-3, none")
	flags.IntVarP(&f.optimize, "optimize", "O", 1, "Optimization level 0-3")

	flags.BoolVar(&f.rotate, "rotate", false, "Rotate pages to the correct orientation")
	flags.BoolVar(&f.removeBackground, "remove-background", false, "Remove page backgrounds")
	flags.BoolVar(&f.deskew, "deskew", false, "Deskew crooked pages")
	flags.BoolVar(&f.clean, "clean", false, "Clean pages before OCR")
	flags.BoolVar(&f.cleanFinal, "clean-final", false, "Clean pages and keep the cleaned images")

	flags.BoolVar(&f.forceOCR, "force-ocr", false, "Rasterize and OCR every page")
	flags.BoolVar(&f.skipText, "skip-text", false, "Skip pages that already have text")
	flags.BoolVar(&f.redoOCR, "redo-ocr", false, "Replace existing OCR text")

	flags.BoolVar(&f.sidecar, "sidecar", false, "Write recognized text to a sidecar file")
	flags.StringVar(&f.sidecarName, "sidecar-name", "", "Sidecar file name (default: <input>.txt)")
	flags.StringVar(&f.pages, "pages", "", "Pages to OCR, e.g. 1,3-5")

	flags.StringVar(&f.title, "title", "", "PDF title metadata")
	flags.StringVar(&f.author, "author", "", "PDF author metadata")
	flags.StringVar(&f.subject, "subject", "", "PDF subject metadata")
	flags.StringVar(&f.keywords, "keywords", "", "PDF keywords metadata")

	flags.StringVar(&f.input, "input", "", "Input PDF or image (default: standard input)")
	flags.StringVar(&f.output, "output", "", "Output file (default: standard output)")
	flags.BoolVar(&f.autoOutput, "auto-output", false, "Derive the output name from the input (<name>_ocr<ext>)")
}

// apply writes every flag the user set onto cfg through an ocrconfig
// Builder, so the result is trimmed and validated the same way a preset is.
// Positional arguments are the input and output paths. cfg is left untouched
// on error.
func (f *optionFlags) apply(cmd *cobra.Command, args []string, cfg *ocrconfig.OcrConfig) error {
	changed := cmd.Flags().Changed
	b := ocrconfig.NewBuilder(*cfg)

	if changed("language") {
		b.Languages(splitLanguages(f.languages)...)
	}
	if changed("output-type") {
		b.OutputType(ocrconfig.OutputType(f.outputType))
	}
	if changed("optimize") {
		b.OptimizeLevel(f.optimize)
	}

	bools := []struct {
		name string
		set  func(bool) *ocrconfig.Builder
		on   bool
	}{
		{"rotate", b.Rotate, f.rotate},
		{"remove-background", b.RemoveBackground, f.removeBackground},
		{"deskew", b.Deskew, f.deskew},
		{"clean", b.Clean, f.clean},
		{"clean-final", b.CleanFinal, f.cleanFinal},
		{"force-ocr", b.ForceOCR, f.forceOCR},
		{"skip-text", b.SkipText, f.skipText},
		{"redo-ocr", b.RedoOCR, f.redoOCR},
	}
	for _, flag := range bools {
		if changed(flag.name) {
			flag.set(flag.on)
		}
	}

	if changed("sidecar") || changed("sidecar-name") {
		enabled, name := cfg.SidecarEnabled, cfg.SidecarName
		if changed("sidecar") {
			enabled = f.sidecar
		}
		if changed("sidecar-name") {
			name = f.sidecarName
		}
		b.Sidecar(enabled, name)
	}

	strs := []struct {
		name  string
		set   func(string) *ocrconfig.Builder
		value string
	}{
		{"pages", b.Pages, f.pages},
		{"title", b.Title, f.title},
		{"author", b.Author, f.author},
		{"subject", b.Subject, f.subject},
		{"keywords", b.Keywords, f.keywords},
	}
	for _, flag := range strs {
		if changed(flag.name) {
			flag.set(flag.value)
		}
	}

	input, output := cfg.InputPath, cfg.OutputPath
	if changed("input") {
		input = ocrconfig.CleanDroppedPath(f.input)
	}
	if changed("output") {
		output = ocrconfig.CleanDroppedPath(f.output)
	}
	if len(args) > 0 {
		if changed("input") {
			return fmt.Errorf("input given both as --input and as an argument")
		}
		input = ocrconfig.CleanDroppedPath(args[0])
	}
	if len(args) > 1 {
		if changed("output") {
			return fmt.Errorf("output given both as --output and as an argument")
		}
		output = ocrconfig.CleanDroppedPath(args[1])
	}
	if f.autoOutput && strings.TrimSpace(output) == "" {
		output = ocrconfig.DefaultOutputPath(input)
	}
	b.Input(input).Output(output)

	built, err := b.Build()
	if err != nil {
		return err
	}
	*cfg = built
	return nil
}

// splitLanguages accepts both "-l eng -l fra" and "-l eng+fra".
func splitLanguages(values []string) []string {
	var out []string
	for _, v := range values {
		for _, code := range strings.Split(v, "+") {
			if code = strings.TrimSpace(code); code != "" {
				out = append(out, code)
			}
		}
	}
	return out
}
