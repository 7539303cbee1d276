// Package command compiles an ocrconfig.OcrConfig into an ocrmypdf command
// line.
//
// Compile is pure and deterministic: the same configuration always yields
// the same token sequence, and the configuration is never modified. Render
// joins tokens with single spaces for display and for shell execution.
//
//	tokens, err := command.Compile(cfg)
//	if err != nil {
//	    // *command.ConfigError: an enumerated field held an unknown value
//	}
//	line := command.Render(tokens)
//	// ocrmypdf -l eng --output-type pdfa -O 1 "/in.pdf" "-"
//
// # Quoting
//
// Values that may contain spaces (sidecar path, pages, metadata, input and
// output) are wrapped in double quotes. Embedded double quotes are not
// escaped; a value containing one produces a command the shell will parse
// differently. This matches the format existing users rely on.
//
// # Token order
//
//  1. program
//  2. -l with codes joined by "+" (omitted when no language is selected)
//  3. -r, --remove-background, -d, -c, -i
//  4. --output-type
//  5. -O
//  6. -f, -s, --redo-ocr
//  7. --sidecar
//  8. --pages
//  9. --title, --author, --subject, --keywords
//  10. input, output
package command
