// Package format provides output formatting utilities for CLI display.
//
// Centralises presentation concerns (column alignment, colourised status
// lines) so command implementations focus on their own logic. Colour is
// handled by fatih/color, which honours NO_COLOR and non-terminal output
// on its own.
package format

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jpl-au/licenser/internal/license"
)

var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	idColor      = color.New(color.FgCyan, color.Bold)
)

// Success prints a green status line.
func Success(w io.Writer, format string, args ...any) {
	successColor.Fprintf(w, format+"\n", args...)
}

// Warn prints a yellow status line.
func Warn(w io.Writer, format string, args ...any) {
	warnColor.Fprintf(w, format+"\n", args...)
}

// Licenses prints the license table with aligned identifier and name columns.
func Licenses(w io.Writer, licenses []license.License) {
	maxID := 0
	for _, l := range licenses {
		if len(l.ID) > maxID {
			maxID = len(l.ID)
		}
	}
	for _, l := range licenses {
		idColor.Fprintf(w, "%-*s", maxID, l.ID)
		fmt.Fprintf(w, "  %s\n", l.Name)
	}
}

// Paths prints one path per line.
func Paths(w io.Writer, paths []string) {
	for _, p := range paths {
		fmt.Fprintln(w, p)
	}
}

// ModifiedCount prints the header injection summary.
func ModifiedCount(w io.Writer, n int) {
	switch n {
	case 0:
		Warn(w, "no files modified")
	case 1:
		Success(w, "1 file modified")
	default:
		Success(w, "%d files modified", n)
	}
}
