package command

import (
	"strings"
	"unicode"
)

// Split breaks a rendered command line into tokens on whitespace, keeping a
// double-quoted group together as one token with its quotes intact. It is
// the inverse of Render for compiler output. An unterminated quote runs to
// the end of the line.
func Split(line string) []string {
	var (
		tokens  []string
		current strings.Builder
		quoted  bool
		pending bool
	)

	for _, r := range line {
		switch {
		case r == '"':
			quoted = !quoted
			current.WriteRune(r)
			pending = true
		case unicode.IsSpace(r) && !quoted:
			if pending {
				tokens = append(tokens, current.String())
				current.Reset()
				pending = false
			}
		default:
			current.WriteRune(r)
			pending = true
		}
	}
	if pending {
		tokens = append(tokens, current.String())
	}
	return tokens
}

// Equivalent reports whether two command lines split into the same tokens.
// Whitespace differences between tokens are ignored.
func Equivalent(a, b string) bool {
	ta, tb := Split(a), Split(b)
	if len(ta) != len(tb) {
		return false
	}
	for i := range ta {
		if ta[i] != tb[i] {
			return false
		}
	}
	return true
}
