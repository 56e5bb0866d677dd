// Package header rewrites source files to carry an SPDX header comment.
//
// The header is a two-line block (license identifier, copyright) followed by
// a blank line, prepended to the file - or inserted after the shebang when
// the file starts with an interpreter directive. Files that already carry an
// SPDX-License-Identifier are left untouched, so repeated runs are
// idempotent.
package header

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Marker identifies a file that already carries an SPDX header.
const Marker = "SPDX-License-Identifier"

// Header holds the values written into the injected comment block.
// Recomputed per invocation, never persisted.
type Header struct {
	SPDX string
	Name string
	Year string
}

// markers maps file extensions to their line comment marker.
// Extensions not listed use the C-style default.
var markers = map[string]string{
	".py":   "#",
	".sh":   "#",
	".bash": "#",
	".rb":   "#",
	".pl":   "#",
	".yaml": "#",
	".yml":  "#",
	".toml": "#",
	".mk":   "#",
	".r":    "#",
	".el":   ";",
	".lisp": ";",
	".clj":  ";",
	".sql":  "--",
	".lua":  "--",
	".hs":   "--",
	".vim":  "\"",
	".bat":  "REM",
}

const defaultMarker = "//"

// markerFor returns the comment marker for a file path based on extension.
func markerFor(path string) string {
	if m, ok := markers[strings.ToLower(filepath.Ext(path))]; ok {
		return m
	}
	return defaultMarker
}

// Block renders the header comment block for a file path.
func (h Header) Block(path string) string {
	m := markerFor(path)
	return fmt.Sprintf("%s %s: %s\n%s Copyright (c) %s %s\n\n", m, Marker, h.SPDX, m, h.Year, h.Name)
}

// Plan computes the rewritten content for a single file without touching it.
// ok is false when the file is unreadable or already carries the marker.
func Plan(path string, h Header) (before, after string, ok bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", false
	}
	content := string(data)
	if strings.Contains(content, Marker) {
		return "", "", false
	}

	block := h.Block(path)
	if strings.HasPrefix(content, "#!") {
		// The interpreter directive must stay the physical first line.
		if i := strings.IndexByte(content, '\n'); i >= 0 {
			return content, content[:i+1] + block + content[i+1:], true
		}
		return content, content + "\n" + block, true
	}
	return content, block + content, true
}

// Apply injects the header into every file in files and returns the number
// of files actually modified. Unreadable files and files that already carry
// a header are skipped silently and not counted - the operation degrades
// gracefully per file and never fails as a whole.
func Apply(files []string, h Header) int {
	modified := 0
	for _, path := range files {
		if apply(path, h) {
			modified++
		}
	}
	return modified
}

func apply(path string, h Header) bool {
	_, after, ok := Plan(path, h)
	if !ok {
		return false
	}

	perm := os.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}
	if err := os.WriteFile(path, []byte(after), perm); err != nil {
		return false
	}
	return true
}
