// Package glob resolves the file patterns accepted by the --headers flag.
//
// Patterns are forward-slash delimited regardless of platform and support
// three segment forms: literal names, wildcard segments containing * and ?,
// and the recursive marker ** which matches zero or more directory levels.
// This is deliberately not a general-purpose glob library - no character
// classes, no brace expansion, no escape syntax.
package glob

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Segment reports whether a single directory entry name matches a wildcard
// segment. * matches any run of characters (including none), ? matches
// exactly one character, and every other character is literal - metacharacters
// like . and + are quoted so "a.b" never matches "aXb". Matching is anchored
// and case-sensitive.
func Segment(name, pattern string) bool {
	var b strings.Builder
	b.WriteString("^")
	for _, r := range pattern {
		switch r {
		case '*':
			b.WriteString(".*")
		case '?':
			b.WriteString(".")
		default:
			b.WriteString(regexp.QuoteMeta(string(r)))
		}
	}
	b.WriteString("$")

	re, err := regexp.Compile(b.String())
	if err != nil {
		// Cannot happen: everything outside * and ? is quoted. A failed
		// compile is a non-match, consistent with the walk's best-effort
		// policy.
		return false
	}
	return re.MatchString(name)
}

// listing is the outcome of reading one directory during the walk.
//
// The walk never propagates I/O errors: a directory that cannot be read
// (permission denied, race-deleted, not a directory) yields ok=false and
// the branch contributes nothing. Modelling this as a result type rather
// than a discarded error keeps the silent-failure policy visible and
// testable.
type listing struct {
	entries []fs.DirEntry
	ok      bool
}

// list reads the entries of dir. Entries are read fresh on every visit;
// the walk reflects filesystem state at visit time. Variable so tests can
// inject failures.
var list = func(dir string) listing {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return listing{ok: false}
	}
	return listing{entries: entries, ok: true}
}

// Resolve walks the tree under base and returns the files matching pattern.
//
// Results contain files only, never directories, in filesystem enumeration
// order. An unreadable directory silently prunes that branch. Duplicates can
// occur when consecutive ** segments reach the same file through different
// expansions; they are preserved as-is.
func Resolve(base, pattern string) []string {
	segments := strings.Split(pattern, "/")
	var matches []string
	resolve(base, segments, 0, &matches)
	return matches
}

// ResolveAll resolves each pattern against base and concatenates the results.
func ResolveAll(base string, patterns []string) []string {
	var matches []string
	for _, p := range patterns {
		matches = append(matches, Resolve(base, p)...)
	}
	return matches
}

// resolve explores dir against segments[depth:], appending matched files.
//
// The (dir, depth) cursor makes the ** expansion explicit: the recursive
// marker is handled by once re-evaluating the same directory against the
// next segment (zero levels consumed) and by descending into every
// subdirectory without advancing the cursor (one more level consumed).
// The zero-level branch is what lets "a/**/*.ts" match files directly
// inside a/.
func resolve(dir string, segments []string, depth int, out *[]string) {
	if depth >= len(segments) {
		return
	}

	l := list(dir)
	if !l.ok {
		return
	}

	segment := segments[depth]
	if segment == "**" {
		resolve(dir, segments, depth+1, out)
		for _, entry := range l.entries {
			if entry.IsDir() {
				resolve(filepath.Join(dir, entry.Name()), segments, depth, out)
			}
		}
		return
	}

	last := depth == len(segments)-1
	for _, entry := range l.entries {
		if !Segment(entry.Name(), segment) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		switch {
		case last && !entry.IsDir():
			*out = append(*out, path)
		case !last && entry.IsDir():
			resolve(path, segments, depth+1, out)
		}
	}
}
