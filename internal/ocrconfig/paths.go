package ocrconfig

import (
	"path/filepath"
	"strings"
)

// DefaultOutputPath derives an output file name next to the input:
// "/scans/a.pdf" becomes "/scans/a_ocr.pdf". It returns "" for an empty input.
func DefaultOutputPath(input string) string {
	if input == "" {
		return ""
	}
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_ocr" + ext
}

// CleanDroppedPath removes the braces some terminals and file managers put
// around a dropped or pasted path containing spaces, along with surrounding
// whitespace and quotes.
func CleanDroppedPath(p string) string {
	p = strings.TrimSpace(p)
	if len(p) >= 2 && strings.HasPrefix(p, "{") && strings.HasSuffix(p, "}") {
		p = p[1 : len(p)-1]
	}
	if len(p) >= 2 {
		if (p[0] == '\'' && p[len(p)-1] == '\'') || (p[0] == '"' && p[len(p)-1] == '"') {
			p = p[1 : len(p)-1]
		}
	}
	return p
}

// ApplyInput sets the input path and, as the file picker does, replaces the
// output path with the default derived from it.
func (c *OcrConfig) ApplyInput(input string) {
	c.InputPath = CleanDroppedPath(input)
	c.OutputPath = DefaultOutputPath(c.InputPath)
}
