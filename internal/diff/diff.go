// Package diff renders the difference between a file's current content and
// the content a header injection would produce. Used by the --dry-run flag
// to preview changes without writing.
package diff

import (
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is the number of unchanged lines shown around changes.
// Longer equal runs are collapsed with "...".
const contextLines = 3

var (
	addColor = color.New(color.FgGreen)
	delColor = color.New(color.FgRed)
)

// Result holds diff output for one file.
type Result struct {
	Path string // file the diff applies to
	Diff string // plain line diff, +/- prefixed
}

// Compute returns a line diff between old and new content.
func Compute(path, oldContent, newContent string) Result {
	dmp := diffmatchpatch.New()
	d := dmp.DiffMain(oldContent, newContent, false)
	d = dmp.DiffCleanupSemantic(d)

	return Result{Path: path, Diff: format(d)}
}

// Format returns the diff with an optional color layer for terminals.
func (r Result) Format(colour bool) string {
	if !colour {
		return r.Diff
	}
	var b strings.Builder
	for _, line := range strings.SplitAfter(r.Diff, "\n") {
		switch {
		case strings.HasPrefix(line, "+"):
			b.WriteString(addColor.Sprint(line))
		case strings.HasPrefix(line, "-"):
			b.WriteString(delColor.Sprint(line))
		default:
			b.WriteString(line)
		}
	}
	return b.String()
}

// format renders diffmatchpatch output as prefixed lines, collapsing long
// unchanged sections.
func format(diffs []diffmatchpatch.Diff) string {
	var b strings.Builder
	for _, d := range diffs {
		lines := strings.Split(strings.TrimSuffix(d.Text, "\n"), "\n")
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			writePrefixed(&b, "+", lines)
		case diffmatchpatch.DiffDelete:
			writePrefixed(&b, "-", lines)
		case diffmatchpatch.DiffEqual:
			if len(lines) > 2*contextLines {
				writePrefixed(&b, " ", lines[:contextLines])
				b.WriteString("...\n")
				writePrefixed(&b, " ", lines[len(lines)-contextLines:])
			} else {
				writePrefixed(&b, " ", lines)
			}
		}
	}
	return b.String()
}

func writePrefixed(b *strings.Builder, prefix string, lines []string) {
	for _, line := range lines {
		b.WriteString(prefix)
		b.WriteString(line)
		b.WriteString("\n")
	}
}
