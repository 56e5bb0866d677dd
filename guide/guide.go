// Package guide provides access to embedded help pages used by the CLI's
// built-in documentation system.
package guide

import (
	"embed"
	"strings"
)

//go:embed *.md
var files embed.FS

// Get returns the content of a guide page by name. If name is empty the
// default "guide" page is returned.
func Get(name string) (string, error) {
	if name == "" {
		name = "guide"
	}
	data, err := files.ReadFile(name + ".md")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// List returns the available guide page names (without the .md suffix).
func List() ([]string, error) {
	entries, err := files.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".md"))
	}
	return names, nil
}
