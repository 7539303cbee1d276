// Package urls holds links to external documentation shown in failure
// hints and command help.
package urls
