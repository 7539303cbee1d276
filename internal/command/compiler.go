package command

import (
	"errors"
	"path"
	"strconv"
	"strings"

	"github.com/muurk/ocrfront/internal/ocrconfig"
)

// DefaultProgram is the executable name placed first on the command line.
const DefaultProgram = "ocrmypdf"

// StdioPlaceholder stands for standard input or output.
const StdioPlaceholder = "-"

// Options adjusts compilation.
type Options struct {
	// Program replaces the program token. Default: "ocrmypdf"
	Program string
}

// Compile turns cfg into ocrmypdf tokens using the default program name.
func Compile(cfg ocrconfig.OcrConfig) ([]string, error) {
	return CompileWith(cfg, Options{})
}

// CompileWith validates cfg and turns it into tokens. Values that may
// contain spaces come back already wrapped in double quotes.
func CompileWith(cfg ocrconfig.OcrConfig, opts Options) ([]string, error) {
	program := strings.TrimSpace(opts.Program)
	if program == "" {
		program = DefaultProgram
	}

	checked := cfg.Clone()
	checked.Trim()
	if err := ocrconfig.Validate(checked); err != nil {
		return nil, newConfigError(err)
	}
	outputType := checked.OutputType
	level, _ := ocrconfig.OptimizeLevel(checked.Optimize)

	tokens := []string{program}

	if langs := ocrconfig.CanonicalLanguages(cfg.Languages); len(langs) > 0 {
		tokens = append(tokens, "-l", strings.Join(langs, "+"))
	}

	tokens = appendIf(tokens, cfg.Image.Rotate, "-r")
	tokens = appendIf(tokens, cfg.Image.RemoveBackground, "--remove-background")
	tokens = appendIf(tokens, cfg.Image.Deskew, "-d")
	tokens = appendIf(tokens, cfg.Image.Clean, "-c")
	tokens = appendIf(tokens, cfg.Image.CleanFinal, "-i")

	tokens = append(tokens, "--output-type", string(outputType))
	tokens = append(tokens, "-O", strconv.Itoa(level))

	tokens = appendIf(tokens, cfg.Advanced.ForceOCR, "-f")
	tokens = appendIf(tokens, cfg.Advanced.SkipText, "-s")
	tokens = appendIf(tokens, cfg.Advanced.RedoOCR, "--redo-ocr")

	input := strings.TrimSpace(cfg.InputPath)
	if cfg.SidecarEnabled {
		tokens = append(tokens, "--sidecar", Quote(Sidecar(input, strings.TrimSpace(cfg.SidecarName))))
	}

	tokens = appendValue(tokens, "--pages", cfg.PageRange)
	tokens = appendValue(tokens, "--title", cfg.Metadata.Title)
	tokens = appendValue(tokens, "--author", cfg.Metadata.Author)
	tokens = appendValue(tokens, "--subject", cfg.Metadata.Subject)
	tokens = appendValue(tokens, "--keywords", cfg.Metadata.Keywords)

	tokens = append(tokens, Quote(orStdio(input)), Quote(orStdio(strings.TrimSpace(cfg.OutputPath))))
	return tokens, nil
}

// Render joins tokens with single spaces.
func Render(tokens []string) string {
	return strings.Join(tokens, " ")
}

// CompileString is Render(CompileWith(cfg, opts)).
func CompileString(cfg ocrconfig.OcrConfig, opts Options) (string, error) {
	tokens, err := CompileWith(cfg, opts)
	if err != nil {
		return "", err
	}
	return Render(tokens), nil
}

// Sidecar resolves the sidecar text file path for input. An empty name is
// derived from the input's base name; a name without an extension gets
// ".txt". The file sits in the input's directory, or "." when the input has
// none. Backslashes are normalized so the result always uses forward slashes.
func Sidecar(input, name string) string {
	input = toSlash(input)
	name = toSlash(name)

	dir, base := ".", input
	if i := strings.LastIndex(input, "/"); i >= 0 {
		dir, base = input[:i], input[i+1:]
		if dir == "" {
			dir = "/"
		}
	}

	if name == "" {
		name = strings.TrimSuffix(base, extension(base)) + ".txt"
	} else if extension(path.Base(name)) == "" {
		name += ".txt"
	}

	switch {
	case strings.HasPrefix(name, "/"):
		return name
	case strings.HasSuffix(dir, "/"):
		return dir + name
	default:
		return dir + "/" + name
	}
}

// extension returns the file extension of base, treating a leading dot as
// part of the name (".profile" has no extension).
func extension(base string) string {
	if !strings.Contains(strings.TrimLeft(base, "."), ".") {
		return ""
	}
	return path.Ext(base)
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}

// Quote wraps s in double quotes without escaping.
func Quote(s string) string {
	return `"` + s + `"`
}

func newConfigError(err error) error {
	var vErr *ocrconfig.ValidationError
	if errors.As(err, &vErr) {
		return &ConfigError{Field: vErr.Field, Value: vErr.Value, Err: err}
	}
	return &ConfigError{Err: err}
}

func appendIf(tokens []string, on bool, flag string) []string {
	if on {
		return append(tokens, flag)
	}
	return tokens
}

func appendValue(tokens []string, flag, value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return tokens
	}
	return append(tokens, flag, Quote(value))
}

func orStdio(p string) string {
	if p == "" {
		return StdioPlaceholder
	}
	return p
}
