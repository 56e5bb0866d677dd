// Package license provides the static SPDX license template table.
//
// Templates are embedded in the binary so the tool works offline. Each
// template is plain text with {{.Name}} and {{.Year}} placeholders; most
// license bodies use them in the copyright line, while public-domain
// dedications (Unlicense, 0BSD) may not reference them at all.
package license

import (
	"embed"
	"fmt"
	"sort"
	"strings"
	"text/template"
)

//go:embed templates/*.tmpl
var templates embed.FS

// ids maps lowercased lookup keys to canonical SPDX identifiers.
// Built once at init from the embedded template set.
var ids = map[string]string{}

// names maps canonical SPDX identifiers to full license names.
var names = map[string]string{
	"0BSD":         "BSD Zero Clause License",
	"Apache-2.0":   "Apache License 2.0",
	"BSD-2-Clause": "BSD 2-Clause \"Simplified\" License",
	"BSD-3-Clause": "BSD 3-Clause \"New\" or \"Revised\" License",
	"ISC":          "ISC License",
	"MIT":          "MIT License",
	"Unlicense":    "The Unlicense",
	"WTFPL":        "Do What The F*ck You Want To Public License",
	"Zlib":         "zlib License",
}

func init() {
	entries, err := templates.ReadDir("templates")
	if err != nil {
		panic("license: embedded templates unreadable: " + err.Error())
	}
	for _, e := range entries {
		id := strings.TrimSuffix(e.Name(), ".tmpl")
		ids[strings.ToLower(id)] = id
	}
}

// License describes one entry of the template table.
type License struct {
	ID   string `json:"id"`   // canonical SPDX identifier, e.g. "Apache-2.0"
	Name string `json:"name"` // full license name
}

// All returns the available licenses sorted by identifier.
func All() []License {
	out := make([]License, 0, len(ids))
	for _, id := range ids {
		out = append(out, License{ID: id, Name: names[id]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// IDs returns the canonical SPDX identifiers sorted alphabetically.
func IDs() []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Canonical resolves a case-insensitive identifier to its canonical SPDX
// form ("mit" -> "MIT"). Returns an error naming the available identifiers
// when the license is unknown.
func Canonical(id string) (string, error) {
	if c, ok := ids[strings.ToLower(id)]; ok {
		return c, nil
	}
	return "", fmt.Errorf("unknown license %q (available: %s)", id, strings.Join(IDs(), ", "))
}

// values feeds the template placeholders.
type values struct {
	Name string
	Year string
}

// Render returns the full license text for id with name and year
// substituted. The id lookup is case-insensitive.
func Render(id, name, year string) (string, error) {
	canonical, err := Canonical(id)
	if err != nil {
		return "", err
	}

	data, err := templates.ReadFile("templates/" + canonical + ".tmpl")
	if err != nil {
		return "", fmt.Errorf("read template %s: %w", canonical, err)
	}

	tmpl, err := template.New(canonical).Parse(string(data))
	if err != nil {
		return "", fmt.Errorf("parse template %s: %w", canonical, err)
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, values{Name: name, Year: year}); err != nil {
		return "", fmt.Errorf("render template %s: %w", canonical, err)
	}
	return b.String(), nil
}
